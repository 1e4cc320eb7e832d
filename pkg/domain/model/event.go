package model

import (
	"time"

	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type ProvisionEventType string

const (
	EventSeedReady        ProvisionEventType = "seed_ready"
	EventSeedFailed       ProvisionEventType = "seed_failed"
	EventCandidateCreated ProvisionEventType = "candidate_created"
	EventTokenIssued      ProvisionEventType = "token_issued"
	EventRepoArchived     ProvisionEventType = "repo_archived"
)

// ProvisionEvent is an audit row. It never carries token values, only digests.
type ProvisionEvent struct {
	EventID      string             `json:"event_id" bigquery:"event_id"`
	RequestID    string             `json:"request_id" bigquery:"request_id"`
	Type         ProvisionEventType `json:"type" bigquery:"type"`
	State        ProvisionState     `json:"state" bigquery:"state"`
	RepoFullName types.RepoFullName `json:"repo_full_name" bigquery:"repo_full_name"`
	RepoID       types.GitHubRepoID `json:"repo_id" bigquery:"repo_id"`
	Source       string             `json:"source" bigquery:"source"`
	TokenDigest  string             `json:"token_digest" bigquery:"token_digest"`
	Error        string             `json:"error" bigquery:"error"`
	Timestamp    time.Time          `json:"timestamp" bigquery:"timestamp"`
}

// InsertID is used as the streaming insert id.
func (x *ProvisionEvent) InsertID() string {
	return x.EventID
}
