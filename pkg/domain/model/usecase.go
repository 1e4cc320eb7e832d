package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

var (
	ptnValidBranch = regexp.MustCompile(`^[^\s~^:?*\[\\]+$`)
	ptnValidSlug   = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
)

func validateBranch(branch types.BranchName) error {
	if branch == "" {
		return nil
	}
	if !ptnValidBranch.MatchString(string(branch)) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid branch name", goerr.V("branch", branch))
	}
	return nil
}

type EnsureSeedInput struct {
	// Source is "owner/name" or a repository URL.
	Source string
	// Branch overrides the source default branch when set.
	Branch types.BranchName
}

func (x *EnsureSeedInput) Validate() error {
	if _, err := ParseRepoRef(x.Source); err != nil {
		return err
	}
	return validateBranch(x.Branch)
}

type CreateCandidateInput struct {
	SeedFullName types.RepoFullName
	// Slug is used as given in the candidate name.
	Slug          string
	DefaultBranch types.BranchName
}

func (x *CreateCandidateInput) Validate() error {
	if _, _, ok := x.SeedFullName.Split(); !ok {
		return goerr.Wrap(types.ErrValidationFailed, "seed repository must be owner/name", goerr.V("seed", x.SeedFullName))
	}
	if !ptnValidSlug.MatchString(x.Slug) {
		return goerr.Wrap(types.ErrValidationFailed, "slug must be letters, digits, '.', '_' or '-'", goerr.V("slug", x.Slug))
	}
	return validateBranch(x.DefaultBranch)
}

type CreateAccessTokenInput struct {
	RepoID      types.GitHubRepoID
	Permissions types.Permissions
}

func (x *CreateAccessTokenInput) Validate() error {
	if x.RepoID <= 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository ID must be positive", goerr.V("repo_id", x.RepoID))
	}
	for k, v := range x.Permissions {
		if k == "" || v == "" {
			return goerr.Wrap(types.ErrValidationFailed, "permission name and level are required",
				goerr.V("name", k), goerr.V("level", v))
		}
	}
	return nil
}

// ScopedTokenRequest narrows an installation token. Empty fields are omitted from the request.
type ScopedTokenRequest struct {
	Repositories  []string             `json:"repositories,omitempty"`
	RepositoryIDs []types.GitHubRepoID `json:"repository_ids,omitempty"`
	Permissions   types.Permissions    `json:"permissions,omitempty"`
}

func (x *ScopedTokenRequest) IsEmpty() bool {
	return x == nil || (len(x.Repositories) == 0 && len(x.RepositoryIDs) == 0 && len(x.Permissions) == 0)
}

// RepositoryUpdate is a partial update of repository settings. Nil fields are not sent.
type RepositoryUpdate struct {
	IsTemplate    *bool
	Private       *bool
	Archived      *bool
	DefaultBranch *types.BranchName
}
