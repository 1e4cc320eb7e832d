package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

const defaultBigQueryTableID = "provision_event"

type BigQuery struct {
	projectID       types.GoogleProjectID
	datasetID       types.BQDatasetID
	tableID         types.BQTableID
	credentialsFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID of audit events (optional)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("REPOBROKER_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID of audit events",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("REPOBROKER_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID of audit events",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("REPOBROKER_BIGQUERY_TABLE_ID"),
			Value:       defaultBigQueryTableID,
		},
		&cli.StringFlag{
			Name:        "bigquery-credentials-file",
			Usage:       "Service account credentials file for BigQuery",
			Category:    "BigQuery",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("REPOBROKER_BIGQUERY_CREDENTIALS_FILE"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error if BigQuery is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.credentialsFile != "" {
		options = append(options, option.WithCredentialsFile(x.credentialsFile))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Bool("CredentialsFile", x.credentialsFile != ""),
	)
}
