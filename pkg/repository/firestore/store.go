package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionSeed        = "seed"
	collectionCandidate   = "candidate"
	collectionAccessToken = "access_token"
)

type store struct {
	client *firestore.Client
}

// ToFirestoreID converts a repository full name to a Firestore-safe document ID
// Uses colon (:) as separator since GitHub owner names cannot contain colons
func ToFirestoreID(fullName types.RepoFullName) (string, error) {
	owner, name, ok := fullName.Split()
	if !ok {
		return "", goerr.Wrap(repository.ErrInvalidInput, "full name must be owner/name",
			goerr.V("full_name", fullName),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(name, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("full_name", fullName),
		)
	}

	return owner + ":" + name, nil
}

func (r *store) put(ctx context.Context, collection string, fullName types.RepoFullName, data any) error {
	docID, err := ToFirestoreID(fullName)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(collection).Doc(docID).Set(ctx, data); err != nil {
		return goerr.Wrap(err, "failed to put document",
			goerr.V("collection", collection),
			goerr.V("full_name", fullName),
		)
	}
	return nil
}

func (r *store) get(ctx context.Context, collection string, fullName types.RepoFullName, dst any) error {
	docID, err := ToFirestoreID(fullName)
	if err != nil {
		return err
	}

	snap, err := r.client.Collection(collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "document not found",
				goerr.V("collection", collection),
				goerr.V("full_name", fullName),
			)
		}
		return goerr.Wrap(err, "failed to get document",
			goerr.V("collection", collection),
			goerr.V("full_name", fullName),
		)
	}

	if err := snap.DataTo(dst); err != nil {
		return goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection),
			goerr.V("full_name", fullName),
		)
	}
	return nil
}

func (r *store) PutSeed(ctx context.Context, seed *model.SeedRecord) error {
	return r.put(ctx, collectionSeed, seed.FullName, seed)
}

func (r *store) GetSeed(ctx context.Context, fullName types.RepoFullName) (*model.SeedRecord, error) {
	var seed model.SeedRecord
	if err := r.get(ctx, collectionSeed, fullName, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (r *store) PutCandidate(ctx context.Context, candidate *model.CandidateRecord) error {
	return r.put(ctx, collectionCandidate, candidate.FullName, candidate)
}

func (r *store) GetCandidate(ctx context.Context, fullName types.RepoFullName) (*model.CandidateRecord, error) {
	var candidate model.CandidateRecord
	if err := r.get(ctx, collectionCandidate, fullName, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// PutAccessToken stores the record under its digest. The raw token is never part of the record.
func (r *store) PutAccessToken(ctx context.Context, token *model.AccessTokenRecord) error {
	if token.Digest == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "token digest is empty")
	}

	if _, err := r.client.Collection(collectionAccessToken).Doc(token.Digest).Set(ctx, token); err != nil {
		return goerr.Wrap(err, "failed to put access token record", goerr.V("repo_id", token.RepoID))
	}
	return nil
}

func (r *store) ListAccessTokens(ctx context.Context, repoID types.GitHubRepoID) ([]*model.AccessTokenRecord, error) {
	iter := r.client.Collection(collectionAccessToken).
		Where("repo_id", "==", int64(repoID)).
		Documents(ctx)
	defer iter.Stop()

	var tokens []*model.AccessTokenRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate access tokens", goerr.V("repo_id", repoID))
		}

		var token model.AccessTokenRecord
		if err := doc.DataTo(&token); err != nil {
			return nil, goerr.Wrap(err, "failed to decode access token record", goerr.V("repo_id", repoID))
		}
		tokens = append(tokens, &token)
	}

	// Sorted here to avoid requiring a composite index
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].IssuedAt.Before(tokens[j].IssuedAt)
	})

	return tokens, nil
}
