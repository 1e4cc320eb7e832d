package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

func (x RepoRef) FullName() types.RepoFullName {
	return types.RepoFullName(x.Owner + "/" + x.Name)
}

// CanonicalURL returns the web URL of the repository under webBaseURL, e.g.
// https://github.com/acme/widgets.
func (x RepoRef) CanonicalURL(webBaseURL string) string {
	return strings.TrimRight(webBaseURL, "/") + "/" + x.Owner + "/" + x.Name
}

// ParseRepoRef accepts "owner/name", "https://host/owner/name" and either form with a
// trailing ".git". Extra path segments after the name are ignored.
func ParseRepoRef(source string) (RepoRef, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "repository reference cannot be empty")
	}

	path := trimmed
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "invalid repository URL",
				goerr.V("source", source),
				goerr.V("error", err.Error()),
			)
		}
		path = u.Path
	}

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 {
		return RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "repository reference must include owner and name",
			goerr.V("source", source),
		)
	}

	ref := RepoRef{
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}
	if ref.Name == "" {
		return RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "repository name is empty", goerr.V("source", source))
	}
	return ref, nil
}

const defaultSlug = "repo"

var ptnNonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slugify collapses every run of non alphanumeric characters into a single hyphen and lowercases
// the result. An input without any alphanumeric character yields "repo".
func Slugify(value string) string {
	slug := strings.ToLower(strings.Trim(ptnNonAlnum.ReplaceAllString(value, "-"), "-"))
	if slug == "" {
		return defaultSlug
	}
	return slug
}

// NewRepoName builds "<prefix>-<slug>-<suffix>" where suffix is suffixLen random hex characters.
func NewRepoName(prefix, slug string, suffixLen int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	if suffixLen > 0 && suffixLen < len(suffix) {
		suffix = suffix[:suffixLen]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, slug, suffix)
}
