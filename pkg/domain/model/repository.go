package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

// RemoteRepository is a snapshot of a repository returned by the hosting API.
type RemoteRepository struct {
	ID            types.GitHubRepoID `json:"id"`
	FullName      types.RepoFullName `json:"full_name"`
	HTMLURL       string             `json:"html_url,omitempty"`
	DefaultBranch types.BranchName   `json:"default_branch"`
	CloneURL      string             `json:"clone_url,omitempty"`
}

func (x *RemoteRepository) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrMalformedResponse, "repository id is missing", goerr.V("full_name", x.FullName))
	}
	if _, _, ok := x.FullName.Split(); !ok {
		return goerr.Wrap(types.ErrMalformedResponse, "repository full name is missing or invalid", goerr.V("full_name", x.FullName))
	}
	return nil
}

// SeedRepository is the result of seed provisioning.
type SeedRepository struct {
	Repository      RemoteRepository `json:"repository"`
	HeadSHA         types.CommitSHA  `json:"head_sha"`
	CanonicalSource string           `json:"canonical_source"`
}

// Installation describes the account a GitHub App installation belongs to.
type Installation struct {
	ID                  types.GitHubAppInstallID `json:"id"`
	TargetType          string                   `json:"target_type"`
	AccountLogin        string                   `json:"account_login"`
	AccountID           int64                    `json:"account_id"`
	AccountAvatarURL    string                   `json:"account_avatar_url,omitempty"`
	AccountHTMLURL      string                   `json:"account_html_url,omitempty"`
	InstallationHTMLURL string                   `json:"installation_html_url,omitempty"`
}

func (x *Installation) IsOrganization() bool {
	return x.TargetType == "Organization"
}
