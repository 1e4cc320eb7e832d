package bq

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	insertRetryLimit = 3
	insertRetryWait  = 2 * time.Second
)

type Client struct {
	bqClient *bigquery.Client
	dataset  string
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID.String(),
		tableID:  tableID,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// Insert implements interfaces.BigQuery. Right after a schema update the streaming API may
// reject new columns for a while, so WithRetry(true) retries a few times.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...interfaces.BigQueryInsertOption) error {
	var cfg interfaces.BigQueryInsertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	row, err := NewRow(schema, data)
	if err != nil {
		return err
	}

	inserter := x.table().Inserter()
	var lastErr error
	for i := 0; i < insertRetryLimit; i++ {
		if lastErr = inserter.Put(ctx, row); lastErr == nil {
			return nil
		}
		if !cfg.EnableRetry {
			break
		}

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "insert canceled", goerr.V("table", x.tableID))
		case <-time.After(insertRetryWait * time.Duration(i+1)):
		}
	}

	return goerr.Wrap(lastErr, "failed to insert row", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}

// Row is a JSON encoded record restricted to the top level columns of a schema.
type Row struct {
	values   map[string]bigquery.Value
	insertID string
}

var _ bigquery.ValueSaver = (*Row)(nil)

type insertIDProvider interface {
	InsertID() string
}

// NewRow converts data into a row through its JSON representation. If data has an InsertID
// method, the value is used for best effort deduplication.
func NewRow(schema bigquery.Schema, data any) (*Row, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal row", goerr.V("data", data))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded map[string]any
	if err := dec.Decode(&decoded); err != nil {
		return nil, goerr.Wrap(err, "row must be a JSON object", goerr.V("raw", string(raw)))
	}

	row := &Row{values: make(map[string]bigquery.Value, len(schema))}
	for _, field := range schema {
		if v, ok := decoded[field.Name]; ok {
			row.values[field.Name] = v
		}
	}
	if p, ok := data.(insertIDProvider); ok {
		row.insertID = p.InsertID()
	}

	return row, nil
}

// Save implements bigquery.ValueSaver.
func (x *Row) Save() (map[string]bigquery.Value, string, error) {
	return x.values, x.insertID, nil
}
