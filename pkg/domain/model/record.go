package model

import (
	"time"

	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type SeedRecord struct {
	FullName        types.RepoFullName `json:"full_name" firestore:"full_name"`
	RepoID          types.GitHubRepoID `json:"repo_id" firestore:"repo_id"`
	CanonicalSource string             `json:"canonical_source" firestore:"canonical_source"`
	DefaultBranch   types.BranchName   `json:"default_branch" firestore:"default_branch"`
	HeadSHA         types.CommitSHA    `json:"head_sha" firestore:"head_sha"`
	State           ProvisionState     `json:"state" firestore:"state"`
	CreatedAt       time.Time          `json:"created_at" firestore:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" firestore:"updated_at"`
}

type CandidateRecord struct {
	FullName      types.RepoFullName `json:"full_name" firestore:"full_name"`
	RepoID        types.GitHubRepoID `json:"repo_id" firestore:"repo_id"`
	SeedFullName  types.RepoFullName `json:"seed_full_name" firestore:"seed_full_name"`
	DefaultBranch types.BranchName   `json:"default_branch" firestore:"default_branch"`
	Archived      bool               `json:"archived" firestore:"archived"`
	CreatedAt     time.Time          `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" firestore:"updated_at"`
}

// AccessTokenRecord keeps only the digest of an issued token.
type AccessTokenRecord struct {
	Digest      string             `json:"digest" firestore:"digest"`
	RepoID      types.GitHubRepoID `json:"repo_id" firestore:"repo_id"`
	Permissions types.Permissions  `json:"permissions" firestore:"permissions"`
	ExpiresAt   time.Time          `json:"expires_at" firestore:"expires_at"`
	IssuedAt    time.Time          `json:"issued_at" firestore:"issued_at"`
}
