package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/repository"
)

// TestAll runs all test cases for RepositoryStore
// This is the main entry point for testing any RepositoryStore implementation
func TestAll(t *testing.T, store interfaces.RepositoryStore) {
	t.Run("SeedRecord", func(t *testing.T) {
		TestSeedRecord(t, store)
	})
	t.Run("CandidateRecord", func(t *testing.T) {
		TestCandidateRecord(t, store)
	})
	t.Run("AccessTokenRecord", func(t *testing.T) {
		TestAccessTokenRecord(t, store)
	})
}

func uniqueFullName(prefix string) types.RepoFullName {
	return types.RepoFullName(fmt.Sprintf("org-%s/%s-%s", uuid.New().String()[:8], prefix, uuid.New().String()[:8]))
}

// TestSeedRecord tests put, get and overwrite of SeedRecord
func TestSeedRecord(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()
	fullName := uniqueFullName("seed")
	now := time.Now().UTC().Truncate(time.Millisecond)

	seed := &model.SeedRecord{
		FullName:        fullName,
		RepoID:          1001,
		CanonicalSource: "https://github.com/acme/widgets",
		DefaultBranch:   "main",
		State:           model.ProvisionSeedCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	gt.NoError(t, store.PutSeed(ctx, seed))

	got := gt.R1(store.GetSeed(ctx, fullName)).NoError(t)
	gt.V(t, got.RepoID).Equal(seed.RepoID)
	gt.V(t, got.CanonicalSource).Equal(seed.CanonicalSource)
	gt.V(t, got.State).Equal(model.ProvisionSeedCreated)
	gt.True(t, got.CreatedAt.Equal(now))

	// Update to ready
	seed.State = model.ProvisionReady
	seed.HeadSHA = "aa218f56b14c9653891f9e74264a383fa43fefbd"
	gt.NoError(t, store.PutSeed(ctx, seed))

	got = gt.R1(store.GetSeed(ctx, fullName)).NoError(t)
	gt.V(t, got.State).Equal(model.ProvisionReady)
	gt.V(t, got.HeadSHA).Equal(seed.HeadSHA)

	// Not found
	_, err := store.GetSeed(ctx, uniqueFullName("missing"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestCandidateRecord tests put and get of CandidateRecord
func TestCandidateRecord(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()
	fullName := uniqueFullName("candidate")
	now := time.Now().UTC().Truncate(time.Millisecond)

	candidate := &model.CandidateRecord{
		FullName:      fullName,
		RepoID:        2002,
		SeedFullName:  uniqueFullName("seed"),
		DefaultBranch: "develop",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	gt.NoError(t, store.PutCandidate(ctx, candidate))

	got := gt.R1(store.GetCandidate(ctx, fullName)).NoError(t)
	gt.V(t, got.RepoID).Equal(candidate.RepoID)
	gt.V(t, got.SeedFullName).Equal(candidate.SeedFullName)
	gt.V(t, got.DefaultBranch).Equal(types.BranchName("develop"))
	gt.False(t, got.Archived)

	candidate.Archived = true
	gt.NoError(t, store.PutCandidate(ctx, candidate))
	got = gt.R1(store.GetCandidate(ctx, fullName)).NoError(t)
	gt.True(t, got.Archived)

	_, err := store.GetCandidate(ctx, uniqueFullName("missing"))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestAccessTokenRecord tests put and list of AccessTokenRecord by repository ID
func TestAccessTokenRecord(t *testing.T, store interfaces.RepositoryStore) {
	ctx := context.Background()
	repoID := types.GitHubRepoID(time.Now().UnixNano())
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := &model.AccessTokenRecord{
		Digest:      types.InstallationToken("ghs_" + uuid.NewString()).Digest(),
		RepoID:      repoID,
		Permissions: types.DefaultCandidatePermissions(),
		IssuedAt:    now,
		ExpiresAt:   now.Add(time.Hour),
	}
	second := &model.AccessTokenRecord{
		Digest:      types.InstallationToken("ghs_" + uuid.NewString()).Digest(),
		RepoID:      repoID,
		Permissions: types.Permissions{"contents": "read"},
		IssuedAt:    now.Add(time.Minute),
		ExpiresAt:   now.Add(time.Hour + time.Minute),
	}
	other := &model.AccessTokenRecord{
		Digest:   types.InstallationToken("ghs_" + uuid.NewString()).Digest(),
		RepoID:   repoID + 1,
		IssuedAt: now,
	}

	gt.NoError(t, store.PutAccessToken(ctx, second))
	gt.NoError(t, store.PutAccessToken(ctx, first))
	gt.NoError(t, store.PutAccessToken(ctx, other))

	tokens := gt.R1(store.ListAccessTokens(ctx, repoID)).NoError(t)
	gt.A(t, tokens).Length(2)
	gt.V(t, tokens[0].Digest).Equal(first.Digest)
	gt.V(t, tokens[0].Permissions["contents"]).Equal("write")
	gt.V(t, tokens[1].Digest).Equal(second.Digest)

	// Empty digest is rejected
	gt.Error(t, store.PutAccessToken(ctx, &model.AccessTokenRecord{RepoID: repoID}))

	// No records
	empty := gt.R1(store.ListAccessTokens(ctx, repoID+100)).NoError(t)
	gt.A(t, empty).Length(0)
}
