package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

func TestParseRepoRef(t *testing.T) {
	testCases := map[string]struct {
		input string
		owner string
		name  string
		isErr bool
	}{
		"owner/name":         {input: "acme/widgets", owner: "acme", name: "widgets"},
		"https URL":          {input: "https://github.com/acme/widgets", owner: "acme", name: "widgets"},
		"https URL with git": {input: "https://github.com/acme/widgets.git", owner: "acme", name: "widgets"},
		"http URL":           {input: "http://ghe.example.com/acme/widgets/", owner: "acme", name: "widgets"},
		"extra segments":     {input: "https://github.com/acme/widgets/tree/main", owner: "acme", name: "widgets"},
		"surrounding space":  {input: "  acme/widgets.git  ", owner: "acme", name: "widgets"},
		"single segment":     {input: "widgets", isErr: true},
		"URL without name":   {input: "https://github.com/acme", isErr: true},
		"empty":              {input: "", isErr: true},
		"only .git":          {input: "acme/.git", isErr: true},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			ref, err := model.ParseRepoRef(tc.input)
			if tc.isErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrValidationFailed))
				return
			}
			gt.NoError(t, err)
			gt.V(t, ref.Owner).Equal(tc.owner)
			gt.V(t, ref.Name).Equal(tc.name)
		})
	}
}

func TestRepoRefCanonicalURL(t *testing.T) {
	ref := model.RepoRef{Owner: "acme", Name: "widgets"}
	gt.V(t, ref.CanonicalURL("https://github.com/")).Equal("https://github.com/acme/widgets")
	gt.V(t, ref.FullName()).Equal(types.RepoFullName("acme/widgets"))
}

func TestSlugify(t *testing.T) {
	testCases := map[string]string{
		"Acme Corp!!":         "acme-corp",
		"acme-widgets":        "acme-widgets",
		"--Foo__Bar..baz--":   "foo-bar-baz",
		"MixedCASE123":        "mixedcase123",
		"!!!":                 "repo",
		"":                    "repo",
		"日本語":                 "repo",
		"octo/hello world.go": "octo-hello-world-go",
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			gt.V(t, model.Slugify(input)).Equal(expected)
		})
	}
}

func TestNewRepoName(t *testing.T) {
	name := model.NewRepoName("seed", "acme-widgets", 8)
	gt.True(t, strings.HasPrefix(name, "seed-acme-widgets-"))
	suffix := strings.TrimPrefix(name, "seed-acme-widgets-")
	gt.V(t, len(suffix)).Equal(8)
	gt.V(t, strings.Trim(suffix, "0123456789abcdef")).Equal("")

	other := model.NewRepoName("seed", "acme-widgets", 8)
	gt.V(t, other).NotEqual(name)
}
