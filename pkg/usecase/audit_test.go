package usecase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/usecase"
)

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	ctx := context.Background()
	event := &model.ProvisionEvent{EventID: "ev1", Type: model.EventSeedReady}
	schema := gt.R1(bqs.Infer(event)).NoError(t)

	t.Run("create table when missing", func(t *testing.T) {
		bq := newBigQueryMock()
		got, updated, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, event)
		gt.NoError(t, err)
		gt.False(t, updated)
		gt.True(t, bqs.Equal(got, schema))

		calls := bq.CreateTableCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Md.TimePartitioning.Field).Equal("timestamp")
	})

	t.Run("keep table when schema matches", func(t *testing.T) {
		bq := newBigQueryMock()
		bq.GetMetadataFunc = func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return &bigquery.TableMetadata{Schema: schema, ETag: "etag"}, nil
		}

		_, updated, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, event)
		gt.NoError(t, err)
		gt.False(t, updated)
		gt.A(t, bq.CreateTableCalls()).Length(0)
		gt.A(t, bq.UpdateTableCalls()).Length(0)
	})

	t.Run("merge schema when columns are missing", func(t *testing.T) {
		bq := newBigQueryMock()
		bq.GetMetadataFunc = func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return &bigquery.TableMetadata{
				Schema: bigquery.Schema{
					{Name: "event_id", Type: bigquery.StringFieldType},
				},
				ETag: "etag",
			}, nil
		}
		bq.UpdateTableFunc = func(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
			return nil
		}

		got, updated, err := usecase.CreateOrUpdateBigQueryTableForTest(ctx, bq, event)
		gt.NoError(t, err)
		gt.True(t, updated)
		gt.A(t, got).Length(len(schema))

		calls := bq.UpdateTableCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].ETag).Equal("etag")
	})
}
