package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func repoCommand() *cli.Command {
	var (
		p    provisioner
		repo string
	)

	return &cli.Command{
		Name:  "repo",
		Usage: "Manage provisioned repositories",
		Commands: []*cli.Command{
			{
				Name:  "archive",
				Usage: "Archive a repository",
				Flags: slice.Flatten([]cli.Flag{
					&cli.StringFlag{
						Name:        "repo",
						Aliases:     []string{"r"},
						Usage:       "Repository (owner/name)",
						Destination: &repo,
						Required:    true,
					},
				}, p.Flags()),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := p.UseCase(ctx)
					if err != nil {
						return err
					}
					return uc.ArchiveRepository(ctx, types.RepoFullName(repo))
				},
			},
		},
	}
}
