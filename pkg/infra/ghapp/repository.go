package ghapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type repositoryPayload struct {
	ID            flexibleID `json:"id"`
	FullName      string     `json:"full_name"`
	HTMLURL       string     `json:"html_url"`
	DefaultBranch string     `json:"default_branch"`
	CloneURL      string     `json:"clone_url"`
}

func (x *repositoryPayload) toModel() (*model.RemoteRepository, error) {
	repo := &model.RemoteRepository{
		ID:            types.GitHubRepoID(x.ID),
		FullName:      types.RepoFullName(x.FullName),
		HTMLURL:       x.HTMLURL,
		DefaultBranch: types.BranchName(x.DefaultBranch),
		CloneURL:      x.CloneURL,
	}
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// installationRequest builds a request authorized by the default installation token.
func (x *Client) installationRequest(ctx context.Context, method, path string, body any, expected ...int) (apiRequest, error) {
	token, err := x.InstallationToken(ctx)
	if err != nil {
		return apiRequest{}, err
	}
	return apiRequest{
		method:   method,
		path:     path,
		cred:     installationCredential(token.Token),
		body:     body,
		expected: expected,
	}, nil
}

func (x *Client) repositoryCall(ctx context.Context, method, path string, body any, expected ...int) (*model.RemoteRepository, error) {
	req, err := x.installationRequest(ctx, method, path, body, expected...)
	if err != nil {
		return nil, err
	}

	var payload repositoryPayload
	if _, err := x.do(ctx, req, &payload); err != nil {
		return nil, err
	}
	repo, err := payload.toModel()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid repository in response", goerr.V("method", method), goerr.V("path", path))
	}
	return repo, nil
}

func (x *Client) GetRepository(ctx context.Context, ref model.RepoRef) (*model.RemoteRepository, error) {
	repo, err := x.repositoryCall(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", ref.Owner, ref.Name), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo", ref.FullName()))
	}
	return repo, nil
}

func (x *Client) CreateOrgRepository(ctx context.Context, org string, input *interfaces.CreateOrgRepositoryInput) (*model.RemoteRepository, error) {
	body := &github.Repository{
		Name:        github.String(input.Name),
		Private:     github.Bool(true),
		Visibility:  github.String("private"),
		AutoInit:    github.Bool(false),
		Description: github.String(input.Description),
	}

	repo, err := x.repositoryCall(ctx, http.MethodPost, fmt.Sprintf("/orgs/%s/repos", org), body,
		http.StatusCreated, http.StatusAccepted)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository", goerr.V("org", org), goerr.V("name", input.Name))
	}
	return repo, nil
}

func (x *Client) GenerateFromTemplate(ctx context.Context, template model.RepoRef, input *interfaces.GenerateRepositoryInput) (*model.RemoteRepository, error) {
	body := &github.TemplateRepoRequest{
		Owner:              github.String(input.Owner),
		Name:               github.String(input.Name),
		Private:            github.Bool(true),
		IncludeAllBranches: github.Bool(false),
	}

	repo, err := x.repositoryCall(ctx, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/generate", template.Owner, template.Name), body,
		http.StatusCreated, http.StatusAccepted)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate repository from template",
			goerr.V("template", template.FullName()),
			goerr.V("name", input.Name),
		)
	}
	return repo, nil
}

func (x *Client) UpdateRepository(ctx context.Context, ref model.RepoRef, update *model.RepositoryUpdate) (*model.RemoteRepository, error) {
	body := &github.Repository{
		IsTemplate: update.IsTemplate,
		Private:    update.Private,
		Archived:   update.Archived,
	}
	if update.DefaultBranch != nil {
		body.DefaultBranch = github.String(update.DefaultBranch.String())
	}

	repo, err := x.repositoryCall(ctx, http.MethodPatch, fmt.Sprintf("/repos/%s/%s", ref.Owner, ref.Name), body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update repository", goerr.V("repo", ref.FullName()))
	}
	return repo, nil
}

type renameBranchRequest struct {
	NewName string `json:"new_name"`
}

func (x *Client) RenameBranch(ctx context.Context, ref model.RepoRef, from, to types.BranchName) error {
	req, err := x.installationRequest(ctx, http.MethodPost,
		fmt.Sprintf("/repos/%s/%s/branches/%s/rename", ref.Owner, ref.Name, from),
		&renameBranchRequest{NewName: to.String()},
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return err
	}

	if _, err := x.do(ctx, req, nil); err != nil {
		return goerr.Wrap(err, "failed to rename branch",
			goerr.V("repo", ref.FullName()),
			goerr.V("from", from),
			goerr.V("to", to),
		)
	}
	return nil
}

func (x *Client) GetBranchSHA(ctx context.Context, ref model.RepoRef, branch types.BranchName) (types.CommitSHA, error) {
	req, err := x.installationRequest(ctx, http.MethodGet,
		fmt.Sprintf("/repos/%s/%s/git/ref/heads/%s", ref.Owner, ref.Name, branch), nil)
	if err != nil {
		return "", err
	}

	var gitRef github.Reference
	if _, err := x.do(ctx, req, &gitRef); err != nil {
		return "", goerr.Wrap(err, "failed to get branch reference",
			goerr.V("repo", ref.FullName()),
			goerr.V("branch", branch),
		)
	}

	sha := gitRef.GetObject().GetSHA()
	if sha == "" {
		return "", goerr.Wrap(types.ErrMalformedResponse, "branch reference has no commit SHA",
			goerr.V("repo", ref.FullName()),
			goerr.V("branch", branch),
		)
	}
	return types.CommitSHA(sha), nil
}
