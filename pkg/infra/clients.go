package infra

import (
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/infra/git"
)

type Clients struct {
	githubApp       interfaces.GitHubApp
	gitMirror       interfaces.GitMirror
	bqClient        interfaces.BigQuery
	repositoryStore interfaces.RepositoryStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		gitMirror: git.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) GitMirror() interfaces.GitMirror {
	return x.gitMirror
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) RepositoryStore() interfaces.RepositoryStore {
	return x.repositoryStore
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithGitMirror(mirror interfaces.GitMirror) Option {
	return func(x *Clients) {
		x.gitMirror = mirror
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithRepositoryStore(store interfaces.RepositoryStore) Option {
	return func(x *Clients) {
		x.repositoryStore = store
	}
}
