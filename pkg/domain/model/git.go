package model

import (
	"net/url"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

const gitCredentialUser = "x-access-token"

// GitRemote is a transport URL of a repository. When Token is set, it is embedded as an inline
// credential and the URL must never be printed as is; use Redacted for diagnostics.
type GitRemote struct {
	BaseURL  string
	FullName types.RepoFullName
	Token    types.InstallationToken
}

func (x GitRemote) build() (*url.URL, error) {
	u, err := url.Parse(x.BaseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid git base URL", goerr.V("base_url", x.BaseURL))
	}
	if _, _, ok := x.FullName.Split(); !ok {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid repository full name", goerr.V("full_name", x.FullName))
	}

	u.Path = path.Join("/", u.Path, x.FullName.String()+".git")
	if x.Token != "" {
		u.User = url.UserPassword(gitCredentialUser, string(x.Token))
	}
	return u, nil
}

// URL returns the transport URL including the credential.
func (x GitRemote) URL() (string, error) {
	u, err := x.build()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Redacted returns the transport URL with the credential masked.
func (x GitRemote) Redacted() string {
	u, err := x.build()
	if err != nil {
		return "<invalid remote>"
	}
	return u.Redacted()
}

type MirrorInput struct {
	Source            GitRemote
	SourceBranch      types.BranchName
	Destination       GitRemote
	DestinationBranch types.BranchName
}

func (x *MirrorInput) Validate() error {
	if x.SourceBranch == "" || x.DestinationBranch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "source and destination branch are required",
			goerr.V("source_branch", x.SourceBranch),
			goerr.V("destination_branch", x.DestinationBranch),
		)
	}
	if _, err := x.Source.URL(); err != nil {
		return err
	}
	if _, err := x.Destination.URL(); err != nil {
		return err
	}
	return nil
}

type MirrorResult struct {
	// HeadSHA is the commit pushed to the destination branch. Empty if it could not be read from
	// the working clone.
	HeadSHA types.CommitSHA
}
