package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra/git"
	"github.com/m-mizutani/repobroker/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Provisioning struct {
	organization    string
	seedPrefix      string
	candidatePrefix string
	gitHost         string
	gitPath         string

	targetInstallationID types.GitHubAppInstallID
}

func (x *Provisioning) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "Organization that owns seed and candidate repositories",
			Category:    "Provisioning",
			Destination: &x.organization,
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_ORG", "GITHUB_ORG"),
		},
		&cli.StringFlag{
			Name:        "seed-prefix",
			Usage:       "Name prefix of seed repositories",
			Category:    "Provisioning",
			Destination: &x.seedPrefix,
			Sources:     cli.EnvVars("REPOBROKER_SEED_PREFIX", "GITHUB_SEED_PREFIX"),
			Value:       usecase.DefaultSeedPrefix,
		},
		&cli.StringFlag{
			Name:        "candidate-prefix",
			Usage:       "Name prefix of candidate repositories",
			Category:    "Provisioning",
			Destination: &x.candidatePrefix,
			Sources:     cli.EnvVars("REPOBROKER_CANDIDATE_PREFIX", "GITHUB_CANDIDATE_PREFIX"),
			Value:       usecase.DefaultCandidatePrefix,
		},
		&cli.StringFlag{
			Name:        "git-host",
			Usage:       "Web base URL of the git host used for transport and canonical URLs",
			Category:    "Provisioning",
			Destination: &x.gitHost,
			Sources:     cli.EnvVars("REPOBROKER_GIT_HOST"),
			Value:       usecase.DefaultGitHost,
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Category:    "Provisioning",
			Destination: &x.gitPath,
			Sources:     cli.EnvVars("REPOBROKER_GIT_PATH"),
			Value:       "git",
		},
		&cli.Int64Flag{
			Name:        "target-installation-id",
			Usage:       "Provision into the organization of another installation of the same app",
			Category:    "Provisioning",
			Destination: (*int64)(&x.targetInstallationID),
			Sources:     cli.EnvVars("REPOBROKER_TARGET_INSTALLATION_ID"),
		},
	}
}

// Validate checks the settings required by operations that create repositories.
func (x *Provisioning) Validate() error {
	if x.organization == "" && x.targetInstallationID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "github-org or target-installation-id is required")
	}
	return nil
}

func (x *Provisioning) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithOrganization(x.organization),
		usecase.WithSeedPrefix(x.seedPrefix),
		usecase.WithCandidatePrefix(x.candidatePrefix),
		usecase.WithGitHost(x.gitHost),
	}
}

// TargetInstallationID returns the installation to switch to, or 0 when unset.
func (x *Provisioning) TargetInstallationID() types.GitHubAppInstallID {
	return x.targetInstallationID
}

func (x *Provisioning) NewGitMirror() *git.Client {
	return git.New(git.WithPath(x.gitPath))
}

func (x *Provisioning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Organization", x.organization),
		slog.String("SeedPrefix", x.seedPrefix),
		slog.String("CandidatePrefix", x.candidatePrefix),
		slog.String("GitHost", x.gitHost),
		slog.String("GitPath", x.gitPath),
		slog.Int64("TargetInstallationID", int64(x.targetInstallationID)),
	)
}
