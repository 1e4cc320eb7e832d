package cli

import (
	"context"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func installationCommand() *cli.Command {
	var (
		p              provisioner
		installationID int64
	)

	return &cli.Command{
		Name:  "installation",
		Usage: "Inspect GitHub App installations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the account of an installation",
				Flags: slice.Flatten([]cli.Flag{
					&cli.Int64Flag{
						Name:        "installation-id",
						Usage:       "Installation ID (default: the configured installation)",
						Destination: &installationID,
					},
				}, p.Flags()),
				Action: func(ctx context.Context, c *cli.Command) error {
					uc, err := p.UseCase(ctx)
					if err != nil {
						return err
					}

					id := types.GitHubAppInstallID(installationID)
					if id == 0 {
						id = p.githubApp.InstallationID()
					}

					installation, err := uc.GetInstallation(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(c.Root().Writer, installation)
				},
			},
		},
	}
}
