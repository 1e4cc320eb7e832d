package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id             types.GitHubAppID
	privateKey     types.GitHubAppPrivateKey `masq:"secret"`
	installationID types.GitHubAppInstallID
	baseURL        string
	timeoutSeconds float64
	userAgent      string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_APP_ID", "GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM, base64 encoded PEM or escaped PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_APP_PRIVATE_KEY", "GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID of the organization",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installationID),
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_APP_INSTALLATION_ID", "GITHUB_APP_INSTALLATION_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-api-base-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub App",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_API_BASE_URL", "GITHUB_API_BASE_URL"),
			Value:       ghapp.DefaultBaseURL,
		},
		&cli.FloatFlag{
			Name:        "github-http-timeout-seconds",
			Usage:       "Timeout of each GitHub API request in seconds",
			Category:    "GitHub App",
			Destination: &x.timeoutSeconds,
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_HTTP_TIMEOUT_SECONDS", "GITHUB_HTTP_TIMEOUT_SECONDS"),
			Value:       ghapp.DefaultTimeout.Seconds(),
		},
		&cli.StringFlag{
			Name:        "github-user-agent",
			Usage:       "User-Agent header sent to GitHub API",
			Category:    "GitHub App",
			Destination: &x.userAgent,
			Sources:     cli.EnvVars("REPOBROKER_GITHUB_USER_AGENT"),
		},
	}
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	if x.timeoutSeconds <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub HTTP timeout must be positive",
			goerr.V("timeout_seconds", x.timeoutSeconds),
		)
	}

	options := []ghapp.Option{
		ghapp.WithBaseURL(x.baseURL),
		ghapp.WithTimeout(x.Timeout()),
	}
	if x.userAgent != "" {
		options = append(options, ghapp.WithUserAgent(x.userAgent))
	}

	return ghapp.New(x.id, x.privateKey, x.installationID, options...)
}

// Timeout returns the per request timeout. Fractional seconds are kept.
func (x *GitHubApp) Timeout() time.Duration {
	return time.Duration(x.timeoutSeconds * float64(time.Second))
}

func (x *GitHubApp) InstallationID() types.GitHubAppInstallID {
	return x.installationID
}

func (x *GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallationID", int64(x.installationID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
		slog.Float64("TimeoutSeconds", x.timeoutSeconds),
	)
}
