package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp GitMirror

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHubApp is the authenticated gateway to the hosting API. Every method resolves the
// installation token by itself.
type GitHubApp interface {
	InstallationToken(ctx context.Context) (*model.AccessToken, error)
	CreateScopedToken(ctx context.Context, req *model.ScopedTokenRequest) (*model.AccessToken, error)
	GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error)
	// ForInstallation returns a client of the same app acting as another installation.
	ForInstallation(installID types.GitHubAppInstallID) GitHubApp

	GetRepository(ctx context.Context, ref model.RepoRef) (*model.RemoteRepository, error)
	CreateOrgRepository(ctx context.Context, org string, input *CreateOrgRepositoryInput) (*model.RemoteRepository, error)
	GenerateFromTemplate(ctx context.Context, template model.RepoRef, input *GenerateRepositoryInput) (*model.RemoteRepository, error)
	UpdateRepository(ctx context.Context, ref model.RepoRef, update *model.RepositoryUpdate) (*model.RemoteRepository, error)
	RenameBranch(ctx context.Context, ref model.RepoRef, from, to types.BranchName) error
	GetBranchSHA(ctx context.Context, ref model.RepoRef, branch types.BranchName) (types.CommitSHA, error)
}

type CreateOrgRepositoryInput struct {
	Name        string
	Description string
}

type GenerateRepositoryInput struct {
	Owner string
	Name  string
}

// GitMirror copies one branch of a source repository into a destination repository.
type GitMirror interface {
	CloneAndPush(ctx context.Context, input *model.MirrorInput) (*model.MirrorResult, error)
}
