package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  types.GoogleProjectID
	databaseID types.FirestoreDatabaseID
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID of provisioning records (optional)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("REPOBROKER_FIRESTORE_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("REPOBROKER_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: (*string)(&x.databaseID),
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

// NewRepositoryStore returns nil without error if Firestore is not configured.
func (x *Firestore) NewRepositoryStore(ctx context.Context) (interfaces.RepositoryStore, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}
