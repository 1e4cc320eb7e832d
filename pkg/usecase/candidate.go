package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

// CreateCandidateRepository generates a repository from a seed template.
func (x *UseCase) CreateCandidateRepository(ctx context.Context, input *model.CreateCandidateInput) (*model.RemoteRepository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.organization == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is not configured")
	}
	gh := x.clients.GitHubApp()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	seedRef, err := refOf(input.SeedFullName)
	if err != nil {
		return nil, err
	}

	name := model.NewRepoName(x.candidatePrefix, input.Slug, candidateSuffixLen)
	repo, err := gh.GenerateFromTemplate(ctx, seedRef, &interfaces.GenerateRepositoryInput{
		Owner: x.organization,
		Name:  name,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate candidate repository",
			goerr.V("seed", input.SeedFullName),
			goerr.V("name", name),
		)
	}

	branch := input.DefaultBranch
	if branch == "" {
		branch = types.DefaultBranch
	}

	if store := x.clients.RepositoryStore(); store != nil {
		now := logging.CtxTime(ctx).UTC()
		if err := store.PutCandidate(ctx, &model.CandidateRecord{
			FullName:      repo.FullName,
			RepoID:        repo.ID,
			SeedFullName:  input.SeedFullName,
			DefaultBranch: branch,
			CreatedAt:     now,
			UpdatedAt:     now,
		}); err != nil {
			logging.From(ctx).Warn("failed to save candidate record", "candidate", repo.FullName, "error", err)
		}
	}

	x.emitEvent(ctx, &model.ProvisionEvent{
		Type:         model.EventCandidateCreated,
		State:        model.ProvisionReady,
		RepoFullName: repo.FullName,
		RepoID:       repo.ID,
		Source:       input.SeedFullName.String(),
	})
	logging.From(ctx).Info("candidate repository created",
		"candidate", repo.FullName,
		"seed", input.SeedFullName,
	)

	return repo, nil
}

// CreateRepositoryAccessToken mints a token restricted to a single repository. The token is never
// cached; only its digest is recorded.
func (x *UseCase) CreateRepositoryAccessToken(ctx context.Context, input *model.CreateAccessTokenInput) (*model.AccessToken, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	gh := x.clients.GitHubApp()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	permissions := input.Permissions
	if len(permissions) == 0 {
		permissions = types.DefaultCandidatePermissions()
	}

	token, err := gh.CreateScopedToken(ctx, &model.ScopedTokenRequest{
		RepositoryIDs: []types.GitHubRepoID{input.RepoID},
		Permissions:   permissions,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository access token", goerr.V("repo_id", input.RepoID))
	}

	digest := token.Token.Digest()
	if store := x.clients.RepositoryStore(); store != nil {
		if err := store.PutAccessToken(ctx, &model.AccessTokenRecord{
			Digest:      digest,
			RepoID:      input.RepoID,
			Permissions: permissions,
			ExpiresAt:   token.ExpiresAt,
			IssuedAt:    logging.CtxTime(ctx).UTC(),
		}); err != nil {
			logging.From(ctx).Warn("failed to save access token record", "repo_id", input.RepoID, "error", err)
		}
	}

	x.emitEvent(ctx, &model.ProvisionEvent{
		Type:        model.EventTokenIssued,
		RepoID:      input.RepoID,
		TokenDigest: digest,
	})
	logging.From(ctx).Info("repository access token issued",
		"repo_id", input.RepoID,
		"digest", digest,
		"expires_at", token.ExpiresAt,
	)

	return token, nil
}
