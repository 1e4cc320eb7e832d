package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Manage seed repositories",
		Commands: []*cli.Command{
			seedCreateCommand(),
			seedSHACommand(),
		},
	}
}

func seedCreateCommand() *cli.Command {
	var (
		p      provisioner
		source string
		branch string
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Create a seed template repository mirroring a source repository",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "Source repository (owner/name or URL)",
				Destination: &source,
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

			seed, err := uc.EnsureSeedRepository(ctx, &model.EnsureSeedInput{
				Source: source,
				Branch: types.BranchName(branch),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to ensure seed repository")
			}

			return printJSON(c.Root().Writer, seed)
		},
	}
}

func seedSHACommand() *cli.Command {
	var (
		p      provisioner
		repo   string
		branch string
	)

	return &cli.Command{
		Name:  "sha",
		Usage: "Print the head commit SHA of a branch",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository (owner/name)",
				Destination: &repo,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch name",
				Destination: &branch,
				Value:       types.DefaultBranch.String(),
			},
		}, p.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := p.UseCase(ctx)
			if err != nil {
				return err
			}

			sha, err := uc.RefreshBranchSHA(ctx, types.RepoFullName(repo), types.BranchName(branch))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, sha)
			return err
		},
	}
}
