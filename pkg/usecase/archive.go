package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/repository"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

// ArchiveRepository marks a repository as archived. The default branch recorded for the repository
// is pinned in the same request when known.
func (x *UseCase) ArchiveRepository(ctx context.Context, fullName types.RepoFullName) error {
	gh := x.clients.GitHubApp()
	if gh == nil {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	ref, err := refOf(fullName)
	if err != nil {
		return err
	}

	archived := true
	update := &model.RepositoryUpdate{Archived: &archived}

	var candidate *model.CandidateRecord
	if store := x.clients.RepositoryStore(); store != nil {
		candidate, err = store.GetCandidate(ctx, fullName)
		switch {
		case err == nil:
			branch := candidate.DefaultBranch
			update.DefaultBranch = &branch
		case errors.Is(err, repository.ErrNotFound):
			candidate = nil
		default:
			logging.From(ctx).Warn("failed to get candidate record", "repo", fullName, "error", err)
			candidate = nil
		}
	}

	repo, err := gh.UpdateRepository(ctx, ref, update)
	if err != nil {
		return goerr.Wrap(err, "failed to archive repository", goerr.V("repo", fullName))
	}

	if candidate != nil {
		candidate.Archived = true
		candidate.UpdatedAt = logging.CtxTime(ctx).UTC()
		if err := x.clients.RepositoryStore().PutCandidate(ctx, candidate); err != nil {
			logging.From(ctx).Warn("failed to update candidate record", "repo", fullName, "error", err)
		}
	}

	x.emitEvent(ctx, &model.ProvisionEvent{
		Type:         model.EventRepoArchived,
		RepoFullName: repo.FullName,
		RepoID:       repo.ID,
	})
	logging.From(ctx).Info("repository archived", "repo", fullName)

	return nil
}
