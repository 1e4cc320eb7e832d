package interfaces

import (
	"context"

	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type UseCase interface {
	EnsureSeedRepository(ctx context.Context, input *model.EnsureSeedInput) (*model.SeedRepository, error)
	RefreshBranchSHA(ctx context.Context, fullName types.RepoFullName, branch types.BranchName) (types.CommitSHA, error)
	CreateCandidateRepository(ctx context.Context, input *model.CreateCandidateInput) (*model.RemoteRepository, error)
	CreateRepositoryAccessToken(ctx context.Context, input *model.CreateAccessTokenInput) (*model.AccessToken, error)
	ArchiveRepository(ctx context.Context, fullName types.RepoFullName) error
	GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error)
}
