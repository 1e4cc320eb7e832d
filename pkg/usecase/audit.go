package usecase

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/utils/errutil"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

const auditTimeout = 30 * time.Second

// emitEvent appends an audit row. It never fails the calling operation and is not canceled with
// the caller, so a failure caused by a canceled request is still recorded.
func (x *UseCase) emitEvent(ctx context.Context, event *model.ProvisionEvent) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	reqID, ctx := logging.CtxRequestID(ctx)
	event.EventID = uuid.NewString()
	event.RequestID = string(reqID)
	event.Timestamp = logging.CtxTime(ctx).UTC()

	auditCtx := logging.With(logging.InheritContextValues(context.Background(), ctx), logging.From(ctx))
	auditCtx, cancel := context.WithTimeout(auditCtx, auditTimeout)
	defer cancel()

	if err := insertEvent(auditCtx, bq, event); err != nil {
		errutil.HandleError(ctx, "failed to insert provision event", err)
	}
}

func insertEvent(ctx context.Context, bq interfaces.BigQuery, event *model.ProvisionEvent) error {
	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, bq, event)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, event, interfaces.WithRetry(schemaUpdated)); err != nil {
		return goerr.Wrap(err, "failed to insert provision event to BigQuery",
			goerr.V("event_id", event.EventID),
			goerr.V("type", event.Type),
		)
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, event *model.ProvisionEvent) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(event)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer event schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
			TimePartitioning: &bigquery.TimePartitioning{
				Field: "timestamp",
				Type:  bigquery.DayPartitioningType,
			},
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
