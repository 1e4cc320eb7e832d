package bq_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra/bq"
	"github.com/m-mizutani/repobroker/pkg/utils/testutil"
)

func newEvent() *model.ProvisionEvent {
	return &model.ProvisionEvent{
		EventID:      uuid.NewString(),
		RequestID:    "req-1",
		Type:         model.EventSeedReady,
		State:        model.ProvisionReady,
		RepoFullName: "assessments/seed-acme-widgets-1234abcd",
		RepoID:       555,
		Source:       "https://github.com/acme/widgets",
		Timestamp:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewRow(t *testing.T) {
	event := newEvent()
	schema := gt.R1(bqs.Infer(event)).NoError(t)

	row := gt.R1(bq.NewRow(schema, event)).NoError(t)
	values, insertID, err := row.Save()
	gt.NoError(t, err)
	gt.V(t, insertID).Equal(event.EventID)
	gt.V(t, values["type"]).Equal(bigquery.Value("seed_ready"))
	gt.V(t, values["repo_id"]).Equal(bigquery.Value(json.Number("555")))
	gt.V(t, values["timestamp"]).Equal(bigquery.Value("2026-03-01T12:00:00Z"))

	t.Run("columns outside of schema are dropped", func(t *testing.T) {
		narrow := bigquery.Schema{{Name: "type", Type: bigquery.StringFieldType}}
		row := gt.R1(bq.NewRow(narrow, event)).NoError(t)
		values, _, err := row.Save()
		gt.NoError(t, err)
		gt.V(t, len(values)).Equal(1)
	})

	t.Run("non object data is rejected", func(t *testing.T) {
		_, err := bq.NewRow(schema, []string{"a"})
		gt.Error(t, err)
	})
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("audit_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	md, err := client.GetMetadata(ctx)
	gt.NoError(t, err)
	gt.V(t, md).Equal(nil)

	event := newEvent()
	schema := gt.R1(bqs.Infer(event)).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, event, interfaces.WithRetry(true)))
}
