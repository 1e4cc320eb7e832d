package types

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
)

type (
	GitHubAppID        int64
	GitHubAppInstallID int64
	GitHubRepoID       int64
	RepoFullName       string
	BranchName         string
	CommitSHA          string

	// GitHubAppPrivateKey is the PEM encoded private key of the GitHub App. It may arrive base64 or
	// escape encoded from the environment; see ghapp.NormalizePrivateKey.
	GitHubAppPrivateKey string

	// AppAssertionToken is the RS256 signed JWT proving the app identity.
	AppAssertionToken string

	// InstallationToken is an opaque bearer token issued for an installation, optionally scoped
	// to repositories and permissions.
	InstallationToken string
)

const DefaultBranch BranchName = "main"

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x AppAssertionToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AppAssertionToken) String() string {
	return "***********"
}

func (x InstallationToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x InstallationToken) String() string {
	return "***********"
}

// Digest returns hex encoded SHA-256 of the raw token. Only the digest is allowed to be stored.
func (x InstallationToken) Digest() string {
	sum := sha256.Sum256([]byte(x))
	return hex.EncodeToString(sum[:])
}

func (x RepoFullName) String() string { return string(x) }

// Split returns owner and name. ok is false if the name does not have exactly one separator.
func (x RepoFullName) Split() (owner, name string, ok bool) {
	owner, name, found := strings.Cut(string(x), "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}

func (x BranchName) String() string { return string(x) }
func (x CommitSHA) String() string  { return string(x) }

// Permissions maps an installation permission name (e.g. "contents") to its access level.
type Permissions map[string]string

// DefaultCandidatePermissions is granted to a candidate repository token unless specified.
func DefaultCandidatePermissions() Permissions {
	return Permissions{
		"contents": "write",
		"metadata": "read",
	}
}
