package cli

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func candidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "candidate",
		Usage: "Manage candidate repositories",
		Commands: []*cli.Command{
			candidateCreateCommand(),
			candidateTokenCommand(),
		},
	}
}

func candidateCreateCommand() *cli.Command {
	var (
		p      provisioner
		seed   string
		slug   string
		branch string
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Generate a candidate repository from a seed template",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "Seed repository (owner/name)",
				Destination: &seed,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "slug",
				Usage:       "Slug of the candidate used in the repository name",
				Destination: &slug,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Default branch of the seed repository",
				Destination: &branch,
				Value:       types.DefaultBranch.String(),
			},
		}, p.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := p.provisioning.Validate(); err != nil {
				return err
			}
			uc, err := p.UseCase(ctx)
			if err != nil {
				return err
			}

			repo, err := uc.CreateCandidateRepository(ctx, &model.CreateCandidateInput{
				SeedFullName:  types.RepoFullName(seed),
				Slug:          slug,
				DefaultBranch: types.BranchName(branch),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create candidate repository")
			}

			return printJSON(c.Root().Writer, repo)
		},
	}
}

type tokenOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func candidateTokenCommand() *cli.Command {
	var (
		p           provisioner
		repoID      int64
		permissions []string
	)

	return &cli.Command{
		Name:  "token",
		Usage: "Issue an access token restricted to one repository",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "repo-id",
				Usage:       "Repository ID",
				Destination: &repoID,
				Required:    true,
			},
			&cli.StringSliceFlag{
				Name:        "permission",
				Aliases:     []string{"p"},
				Usage:       "Permission as name=level, e.g. contents=write (default: contents=write, metadata=read)",
				Destination: &permissions,
			},
		}, p.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			perms, err := parsePermissions(permissions)
			if err != nil {
				return err
			}

			uc, err := p.UseCase(ctx)
			if err != nil {
				return err
			}

			token, err := uc.CreateRepositoryAccessToken(ctx, &model.CreateAccessTokenInput{
				RepoID:      types.GitHubRepoID(repoID),
				Permissions: perms,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create repository access token")
			}

			// The raw token goes to stdout only.
			return printJSON(c.Root().Writer, &tokenOutput{
				Token:     string(token.Token),
				ExpiresAt: token.ExpiresAt,
			})
		},
	}
}

func parsePermissions(values []string) (types.Permissions, error) {
	if len(values) == 0 {
		return nil, nil
	}

	perms := types.Permissions{}
	for _, v := range values {
		name, level, ok := strings.Cut(v, "=")
		if !ok || name == "" || level == "" {
			return nil, goerr.Wrap(types.ErrValidationFailed, "permission must be name=level", goerr.V("permission", v))
		}
		perms[name] = level
	}
	return perms, nil
}
