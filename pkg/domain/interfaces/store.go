package interfaces

import (
	"context"

	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

//go:generate moq -out ../mock/repository_store_mock.go -pkg mock . RepositoryStore

// RepositoryStore keeps records of provisioned repositories and issued tokens. Get methods
// return repository.ErrNotFound when the record does not exist.
type RepositoryStore interface {
	PutSeed(ctx context.Context, seed *model.SeedRecord) error
	GetSeed(ctx context.Context, fullName types.RepoFullName) (*model.SeedRecord, error)

	PutCandidate(ctx context.Context, candidate *model.CandidateRecord) error
	GetCandidate(ctx context.Context, fullName types.RepoFullName) (*model.CandidateRecord, error)

	PutAccessToken(ctx context.Context, token *model.AccessTokenRecord) error
	ListAccessTokens(ctx context.Context, repoID types.GitHubRepoID) ([]*model.AccessTokenRecord, error)
}
