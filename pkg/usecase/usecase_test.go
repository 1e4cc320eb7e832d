package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/mock"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra"
	"github.com/m-mizutani/repobroker/pkg/usecase"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

const testOrg = "assessments"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeHost is a stateful hosting API backed by GitHubAppMock.
type fakeHost struct {
	mu       sync.Mutex
	repos    map[types.RepoFullName]*model.RemoteRepository
	branches map[types.RepoFullName]map[types.BranchName]types.CommitSHA
	template map[types.RepoFullName]bool
	nextID   types.GitHubRepoID
	tokenSeq int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		repos:    map[types.RepoFullName]*model.RemoteRepository{},
		branches: map[types.RepoFullName]map[types.BranchName]types.CommitSHA{},
		template: map[types.RepoFullName]bool{},
		nextID:   1000,
	}
}

func (h *fakeHost) addRepo(fullName types.RepoFullName, defaultBranch types.BranchName, sha types.CommitSHA) *model.RemoteRepository {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	repo := &model.RemoteRepository{
		ID:            h.nextID,
		FullName:      fullName,
		HTMLURL:       "https://github.com/" + fullName.String(),
		DefaultBranch: defaultBranch,
	}
	h.repos[fullName] = repo
	h.branches[fullName] = map[types.BranchName]types.CommitSHA{}
	if sha != "" {
		h.branches[fullName][defaultBranch] = sha
	}
	return repo
}

func notFound(path string) error {
	return &types.APIError{Method: http.MethodGet, Path: path, StatusCode: http.StatusNotFound, Body: `{"message":"Not Found"}`}
}

func (h *fakeHost) mock() *mock.GitHubAppMock {
	return &mock.GitHubAppMock{
		InstallationTokenFunc: func(ctx context.Context) (*model.AccessToken, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.tokenSeq++
			return &model.AccessToken{
				Token:     types.InstallationToken("ghs_installation_" + strings.Repeat("x", h.tokenSeq)),
				ExpiresAt: testNow.Add(time.Hour),
			}, nil
		},
		GetRepositoryFunc: func(ctx context.Context, ref model.RepoRef) (*model.RemoteRepository, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			repo, ok := h.repos[ref.FullName()]
			if !ok {
				return nil, notFound("/repos/" + ref.FullName().String())
			}
			copied := *repo
			return &copied, nil
		},
		CreateOrgRepositoryFunc: func(ctx context.Context, org string, input *interfaces.CreateOrgRepositoryInput) (*model.RemoteRepository, error) {
			// A new empty repository reports "main" until content is pushed.
			return h.addRepo(types.RepoFullName(org+"/"+input.Name), "main", ""), nil
		},
		RenameBranchFunc: func(ctx context.Context, ref model.RepoRef, from, to types.BranchName) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			branches := h.branches[ref.FullName()]
			branches[to] = branches[from]
			delete(branches, from)
			h.repos[ref.FullName()].DefaultBranch = to
			return nil
		},
		UpdateRepositoryFunc: func(ctx context.Context, ref model.RepoRef, update *model.RepositoryUpdate) (*model.RemoteRepository, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			repo, ok := h.repos[ref.FullName()]
			if !ok {
				return nil, notFound("/repos/" + ref.FullName().String())
			}
			if update.DefaultBranch != nil {
				repo.DefaultBranch = *update.DefaultBranch
			}
			if update.IsTemplate != nil {
				h.template[ref.FullName()] = *update.IsTemplate
			}
			copied := *repo
			return &copied, nil
		},
		GetBranchSHAFunc: func(ctx context.Context, ref model.RepoRef, branch types.BranchName) (types.CommitSHA, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			sha, ok := h.branches[ref.FullName()][branch]
			if !ok {
				return "", notFound("/repos/" + ref.FullName().String() + "/git/ref/heads/" + branch.String())
			}
			return sha, nil
		},
	}
}

// mirror returns a GitMirrorMock that copies the source branch head into the destination.
func (h *fakeHost) mirror() *mock.GitMirrorMock {
	return &mock.GitMirrorMock{
		CloneAndPushFunc: func(ctx context.Context, input *model.MirrorInput) (*model.MirrorResult, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			sha := h.branches[input.Source.FullName][input.SourceBranch]
			h.branches[input.Destination.FullName][input.DestinationBranch] = sha
			return &model.MirrorResult{HeadSHA: sha}, nil
		},
	}
}

func newBigQueryMock() *mock.BigQueryMock {
	return &mock.BigQueryMock{
		GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return nil, nil
		},
		CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
			return nil
		},
		InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any, opts ...interfaces.BigQueryInsertOption) error {
			return nil
		},
	}
}

func insertedEvents(bq *mock.BigQueryMock) []*model.ProvisionEvent {
	var events []*model.ProvisionEvent
	for _, call := range bq.InsertCalls() {
		if ev, ok := call.Data.(*model.ProvisionEvent); ok {
			events = append(events, ev)
		}
	}
	return events
}

func newUseCase(clients *infra.Clients) *usecase.UseCase {
	return usecase.New(clients, usecase.WithOrganization(testOrg))
}

func testContext() context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
}

func TestNew(t *testing.T) {
	var uc interfaces.UseCase = usecase.New(infra.New())
	gt.V(t, uc).NotEqual(nil)
}
