package usecase

import (
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/infra"
)

const (
	DefaultSeedPrefix      = "afterquery-seed"
	DefaultCandidatePrefix = "afterquery-candidate"
	DefaultGitHost         = "https://github.com"

	seedSuffixLen      = 8
	candidateSuffixLen = 6
)

type UseCase struct {
	clients *infra.Clients

	organization    string
	seedPrefix      string
	candidatePrefix string
	gitHost         string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOrganization sets the organization that owns seed and candidate repositories.
func WithOrganization(org string) Option {
	return func(x *UseCase) {
		x.organization = org
	}
}

func WithSeedPrefix(prefix string) Option {
	return func(x *UseCase) {
		x.seedPrefix = prefix
	}
}

func WithCandidatePrefix(prefix string) Option {
	return func(x *UseCase) {
		x.candidatePrefix = prefix
	}
}

// WithGitHost sets the web base URL used for git transport and canonical source URLs.
func WithGitHost(host string) Option {
	return func(x *UseCase) {
		x.gitHost = host
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		seedPrefix:      DefaultSeedPrefix,
		candidatePrefix: DefaultCandidatePrefix,
		gitHost:         DefaultGitHost,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
