package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/mock"
	"github.com/m-mizutani/repobroker/pkg/infra"
	"github.com/m-mizutani/repobroker/pkg/infra/git"
	"github.com/m-mizutani/repobroker/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// git CLI mirror is available by default
		_, ok := clients.GitMirror().(*git.Client)
		gt.True(t, ok)
		// hosting API, audit sink and store are nil without configuration
		gt.V(t, clients.GitHubApp()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.RepositoryStore()).Equal(nil)
	})

	t.Run("WithGitHubApp option sets GitHub App client", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		clients := infra.New(infra.WithGitHubApp(mockGH))
		gt.V(t, clients.GitHubApp()).Equal(mockGH)
	})

	t.Run("WithGitMirror option replaces git client", func(t *testing.T) {
		mockMirror := &mock.GitMirrorMock{}
		clients := infra.New(infra.WithGitMirror(mockMirror))
		gt.V(t, clients.GitMirror()).Equal(mockMirror)
	})

	t.Run("WithBigQuery option sets BigQuery client", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{}
		clients := infra.New(infra.WithBigQuery(mockBQ))
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}
		mockBQ := &mock.BigQueryMock{}
		store := memory.New()

		clients := infra.New(
			infra.WithGitHubApp(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithRepositoryStore(store),
		)

		gt.V(t, clients.GitHubApp()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.RepositoryStore()).Equal(store)
	})
}
