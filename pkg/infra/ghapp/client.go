package ghapp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/interfaces"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

const (
	DefaultBaseURL = "https://api.github.com"
	DefaultTimeout = 15 * time.Second
)

// Client talks to the hosting API as one installation of the GitHub App.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID

	signer *signer
	tokens *tokenCache

	baseURL    *url.URL
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	now        func() time.Time
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client) error

// WithClock replaces the clock used for assertion and token expiry.
func WithClock(now func() time.Time) Option {
	return func(x *Client) error {
		x.now = now
		return nil
	}
}

func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		u, err := parseBaseURL(baseURL)
		if err != nil {
			return err
		}
		x.baseURL = u
		return nil
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) error {
		if timeout <= 0 {
			return goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", timeout))
		}
		x.timeout = timeout
		return nil
	}
}

func WithUserAgent(userAgent string) Option {
	return func(x *Client) error {
		x.userAgent = userAgent
		return nil
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) error {
		x.httpClient = client
		return nil
	}
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid API base URL", goerr.V("base_url", baseURL))
	}
	return u, nil
}

// New creates a client for installID. The private key is normalized and parsed here so that an
// unusable key fails at startup.
func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, installID types.GitHubAppInstallID, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}

	key, err := parsePrivateKey(pem)
	if err != nil {
		return nil, err
	}

	baseURL, err := parseBaseURL(DefaultBaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		appID:      appID,
		installID:  installID,
		tokens:     &tokenCache{},
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		userAgent:  defaultUserAgent,
		httpClient: http.DefaultClient,
		now:        time.Now,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	client.signer = newSigner(appID, key, func() time.Time { return client.now() })

	return client, nil
}

// WithInstallation returns a client bound to another installation of the same app. The signer
// and HTTP settings are shared; the default token cache is not.
func (x *Client) WithInstallation(installID types.GitHubAppInstallID) *Client {
	derived := *x
	derived.installID = installID
	derived.tokens = &tokenCache{}
	return &derived
}

// ForInstallation implements interfaces.GitHubApp.
func (x *Client) ForInstallation(installID types.GitHubAppInstallID) interfaces.GitHubApp {
	return x.WithInstallation(installID)
}

func (x *Client) InstallID() types.GitHubAppInstallID {
	return x.installID
}
