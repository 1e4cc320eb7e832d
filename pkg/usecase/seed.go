package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

// EnsureSeedRepository creates a private template repository in the organization that mirrors
// one branch of the source repository. Remote resources created before a failure are left as is.
func (x *UseCase) EnsureSeedRepository(ctx context.Context, input *model.EnsureSeedInput) (*model.SeedRepository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.organization == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization is not configured")
	}

	sourceRef, err := model.ParseRepoRef(input.Source)
	if err != nil {
		return nil, err
	}
	destBranch := input.Branch
	if destBranch == "" {
		destBranch = types.DefaultBranch
	}

	p := &seedProvision{
		uc:         x,
		source:     sourceRef,
		canonical:  sourceRef.CanonicalURL(x.gitHost),
		destBranch: destBranch,
		state:      model.ProvisionRequested,
	}

	logger := logging.From(ctx).With("source", p.canonical)
	ctx = logging.With(ctx, logger)

	seed, err := p.run(ctx)
	if err != nil {
		x.handleSeedFailure(ctx, p, err)
		return nil, err
	}

	x.emitEvent(ctx, &model.ProvisionEvent{
		Type:         model.EventSeedReady,
		State:        p.state,
		RepoFullName: seed.Repository.FullName,
		RepoID:       seed.Repository.ID,
		Source:       p.canonical,
	})
	logger.Info("seed repository is ready",
		"seed", seed.Repository.FullName,
		"head_sha", seed.HeadSHA,
	)

	return seed, nil
}

// seedProvision holds the progress of one seed provisioning request.
type seedProvision struct {
	uc         *UseCase
	source     model.RepoRef
	canonical  string
	destBranch types.BranchName
	state      model.ProvisionState
	seed       *model.RemoteRepository
}

func (p *seedProvision) advance(ctx context.Context, state model.ProvisionState) {
	p.state = state
	logging.From(ctx).Debug("seed provisioning advanced", "state", state)
}

func (p *seedProvision) run(ctx context.Context) (*model.SeedRepository, error) {
	gh := p.uc.clients.GitHubApp()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	source, err := gh.GetRepository(ctx, p.source)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, goerr.Wrap(err, "Source repository not found or inaccessible",
				goerr.V("source", p.canonical),
			)
		}
		return nil, goerr.Wrap(err, "failed to get source repository", goerr.V("source", p.canonical))
	}
	sourceBranch := source.DefaultBranch
	if sourceBranch == "" {
		sourceBranch = types.DefaultBranch
	}
	p.advance(ctx, model.ProvisionSourceVerified)

	name := model.NewRepoName(p.uc.seedPrefix, model.Slugify(p.source.Owner+"-"+p.source.Name), seedSuffixLen)
	seed, err := gh.CreateOrgRepository(ctx, p.uc.organization, &interfaces.CreateOrgRepositoryInput{
		Name:        name,
		Description: "Seed mirror of " + p.canonical,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create seed repository",
			goerr.V("org", p.uc.organization),
			goerr.V("name", name),
		)
	}
	p.seed = seed
	p.advance(ctx, model.ProvisionSeedCreated)
	p.uc.saveSeed(ctx, p, "")

	token, err := gh.InstallationToken(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation token for mirroring")
	}

	mirror := p.uc.clients.GitMirror()
	if mirror == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "git mirror is not configured")
	}
	if _, err := mirror.CloneAndPush(ctx, &model.MirrorInput{
		Source: model.GitRemote{
			BaseURL:  p.uc.gitHost,
			FullName: source.FullName,
			Token:    token.Token,
		},
		SourceBranch: sourceBranch,
		Destination: model.GitRemote{
			BaseURL:  p.uc.gitHost,
			FullName: seed.FullName,
			Token:    token.Token,
		},
		DestinationBranch: p.destBranch,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to mirror source repository",
			goerr.V("seed", seed.FullName),
			goerr.V("source_branch", sourceBranch),
		)
	}
	p.advance(ctx, model.ProvisionContentMirrored)

	seedRef, err := refOf(seed.FullName)
	if err != nil {
		return nil, err
	}

	current, err := gh.GetRepository(ctx, seedRef)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get seed repository", goerr.V("seed", seed.FullName))
	}
	// an unreported default branch is taken to be the pushed one
	currentBranch := current.DefaultBranch
	if currentBranch == "" {
		currentBranch = p.destBranch
	}
	if currentBranch != p.destBranch {
		if err := gh.RenameBranch(ctx, seedRef, currentBranch, p.destBranch); err != nil {
			return nil, goerr.Wrap(err, "failed to rename seed default branch",
				goerr.V("seed", seed.FullName),
				goerr.V("from", currentBranch),
				goerr.V("to", p.destBranch),
			)
		}
	}

	isTemplate, private := true, true
	destBranch := p.destBranch
	updated, err := gh.UpdateRepository(ctx, seedRef, &model.RepositoryUpdate{
		IsTemplate:    &isTemplate,
		Private:       &private,
		DefaultBranch: &destBranch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to promote seed repository to template", goerr.V("seed", seed.FullName))
	}
	if updated.DefaultBranch == "" {
		updated.DefaultBranch = p.destBranch
	}
	p.seed = updated
	p.advance(ctx, model.ProvisionTemplatePromoted)

	sha, err := gh.GetBranchSHA(ctx, seedRef, p.destBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve seed head commit",
			goerr.V("seed", seed.FullName),
			goerr.V("branch", p.destBranch),
		)
	}
	p.advance(ctx, model.ProvisionReady)
	p.uc.saveSeed(ctx, p, sha)

	return &model.SeedRepository{
		Repository:      *updated,
		HeadSHA:         sha,
		CanonicalSource: p.canonical,
	}, nil
}

// handleSeedFailure reports a failed provisioning. A repository created before the failure is not
// removed; it is logged and recorded so that it can be reconciled later.
func (x *UseCase) handleSeedFailure(ctx context.Context, p *seedProvision, err error) {
	event := &model.ProvisionEvent{
		Type:   model.EventSeedFailed,
		State:  p.state,
		Source: p.canonical,
		Error:  err.Error(),
	}

	if p.state.HasRemoteSideEffect() && p.seed != nil {
		event.RepoFullName = p.seed.FullName
		event.RepoID = p.seed.ID
		logging.From(ctx).Warn("seed provisioning failed, repository is left behind",
			"seed", p.seed.FullName,
			"state", p.state,
			"error", err,
		)
		x.saveSeed(ctx, p, "")
	}

	x.emitEvent(ctx, event)
}

func (x *UseCase) saveSeed(ctx context.Context, p *seedProvision, sha types.CommitSHA) {
	store := x.clients.RepositoryStore()
	if store == nil || p.seed == nil {
		return
	}

	now := logging.CtxTime(ctx).UTC()
	record := &model.SeedRecord{
		FullName:        p.seed.FullName,
		RepoID:          p.seed.ID,
		CanonicalSource: p.canonical,
		DefaultBranch:   p.destBranch,
		HeadSHA:         sha,
		State:           p.state,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if existing, err := store.GetSeed(ctx, record.FullName); err == nil {
		record.CreatedAt = existing.CreatedAt
	}

	if err := store.PutSeed(ctx, record); err != nil {
		logging.From(ctx).Warn("failed to save seed record", "seed", record.FullName, "error", err)
	}
}

// RefreshBranchSHA returns the head commit of a branch.
func (x *UseCase) RefreshBranchSHA(ctx context.Context, fullName types.RepoFullName, branch types.BranchName) (types.CommitSHA, error) {
	gh := x.clients.GitHubApp()
	if gh == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	ref, err := refOf(fullName)
	if err != nil {
		return "", err
	}
	if branch == "" {
		branch = types.DefaultBranch
	}

	sha, err := gh.GetBranchSHA(ctx, ref, branch)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get branch SHA",
			goerr.V("repo", fullName),
			goerr.V("branch", branch),
		)
	}

	return sha, nil
}

func refOf(fullName types.RepoFullName) (model.RepoRef, error) {
	owner, name, ok := fullName.Split()
	if !ok {
		return model.RepoRef{}, goerr.Wrap(types.ErrValidationFailed, "repository must be owner/name",
			goerr.V("repo", fullName),
		)
	}
	return model.RepoRef{Owner: owner, Name: name}, nil
}
