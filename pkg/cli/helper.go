package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repobroker/pkg/cli/config"
	"github.com/m-mizutani/repobroker/pkg/infra"
	"github.com/m-mizutani/repobroker/pkg/usecase"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// provisioner is the set of configurations shared by commands that call the workflow.
type provisioner struct {
	githubApp    config.GitHubApp
	provisioning config.Provisioning
	firestore    config.Firestore
	bigQuery     config.BigQuery
	sentry       config.Sentry
}

func (x *provisioner) Flags() []cli.Flag {
	return slice.Flatten(
		x.githubApp.Flags(),
		x.provisioning.Flags(),
		x.firestore.Flags(),
		x.bigQuery.Flags(),
		x.sentry.Flags(),
	)
}

func (x *provisioner) UseCase(ctx context.Context) (*usecase.UseCase, error) {
	logging.From(ctx).Debug("building use case",
		slog.Any("GitHubApp", &x.githubApp),
		slog.Any("Provisioning", &x.provisioning),
		slog.Any("Firestore", &x.firestore),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Sentry", &x.sentry),
	)

	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	ghApp, err := x.githubApp.New()
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHubApp(ghApp),
		infra.WithGitMirror(x.provisioning.NewGitMirror()),
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	if store, err := x.firestore.NewRepositoryStore(ctx); err != nil {
		return nil, err
	} else if store != nil {
		infraOptions = append(infraOptions, infra.WithRepositoryStore(store))
	}

	uc := usecase.New(infra.New(infraOptions...), x.provisioning.Options()...)
	if id := x.provisioning.TargetInstallationID(); id != 0 {
		return uc.WithInstallation(ctx, id)
	}
	return uc, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}
