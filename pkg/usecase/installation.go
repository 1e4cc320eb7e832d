package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

// GetInstallation returns the account an installation belongs to.
func (x *UseCase) GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
	gh := x.clients.GitHubApp()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App client is not configured")
	}

	installation, err := gh.GetInstallation(ctx, installID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get installation", goerr.V("installation_id", installID))
	}
	return installation, nil
}

// WithInstallation returns a UseCase that provisions into the organization owning installID.
// Tokens are minted for that installation and the organization is taken from its account.
func (x *UseCase) WithInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*UseCase, error) {
	if installID <= 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "installation ID must be positive", goerr.V("installation_id", installID))
	}

	installation, err := x.GetInstallation(ctx, installID)
	if err != nil {
		return nil, err
	}
	if !installation.IsOrganization() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "installation is not on an organization",
			goerr.V("installation_id", installID),
			goerr.V("target_type", installation.TargetType),
			goerr.V("account", installation.AccountLogin),
		)
	}

	derived := *x
	derived.organization = installation.AccountLogin
	derived.clients = infra.New(
		infra.WithGitHubApp(x.clients.GitHubApp().ForInstallation(installID)),
		infra.WithGitMirror(x.clients.GitMirror()),
		infra.WithBigQuery(x.clients.BigQuery()),
		infra.WithRepositoryStore(x.clients.RepositoryStore()),
	)

	logging.From(ctx).Info("switched installation",
		"installation_id", installID,
		"organization", installation.AccountLogin,
	)
	return &derived, nil
}
