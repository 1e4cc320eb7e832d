package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/repository"
)

type store struct {
	mu         sync.RWMutex
	seeds      map[types.RepoFullName]model.SeedRecord
	candidates map[types.RepoFullName]model.CandidateRecord
	tokens     map[string]model.AccessTokenRecord
}

// New creates a new in-memory repository store
func New() interfaces.RepositoryStore {
	return &store{
		seeds:      make(map[types.RepoFullName]model.SeedRecord),
		candidates: make(map[types.RepoFullName]model.CandidateRecord),
		tokens:     make(map[string]model.AccessTokenRecord),
	}
}

func (r *store) PutSeed(ctx context.Context, seed *model.SeedRecord) error {
	if seed.FullName == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "seed full name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeds[seed.FullName] = *seed
	return nil
}

func (r *store) GetSeed(ctx context.Context, fullName types.RepoFullName) (*model.SeedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seed, ok := r.seeds[fullName]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "seed not found", goerr.V("full_name", fullName))
	}
	return &seed, nil
}

func (r *store) PutCandidate(ctx context.Context, candidate *model.CandidateRecord) error {
	if candidate.FullName == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "candidate full name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates[candidate.FullName] = *candidate
	return nil
}

func (r *store) GetCandidate(ctx context.Context, fullName types.RepoFullName) (*model.CandidateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidate, ok := r.candidates[fullName]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "candidate not found", goerr.V("full_name", fullName))
	}
	return &candidate, nil
}

func (r *store) PutAccessToken(ctx context.Context, token *model.AccessTokenRecord) error {
	if token.Digest == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "token digest is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	record := *token
	record.Permissions = copyPermissions(token.Permissions)
	r.tokens[token.Digest] = record
	return nil
}

func (r *store) ListAccessTokens(ctx context.Context, repoID types.GitHubRepoID) ([]*model.AccessTokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tokens []*model.AccessTokenRecord
	for _, token := range r.tokens {
		if token.RepoID == repoID {
			record := token
			record.Permissions = copyPermissions(token.Permissions)
			tokens = append(tokens, &record)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].IssuedAt.Before(tokens[j].IssuedAt)
	})

	return tokens, nil
}

func copyPermissions(src types.Permissions) types.Permissions {
	if src == nil {
		return nil
	}
	dst := make(types.Permissions, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
