package ghapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
)

const tokenRefreshMargin = 60 * time.Second

// tokenCache holds the unscoped installation token. The lock only guards the field; it is not
// held while a new token is being issued, so concurrent refreshes may issue duplicates.
type tokenCache struct {
	mutex   sync.Mutex
	current *model.AccessToken
}

func (x *tokenCache) get() *model.AccessToken {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.current
}

func (x *tokenCache) set(token *model.AccessToken) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.current = token
}

// AppAssertion returns the signed app assertion, reusing the previous one while it is fresh.
func (x *Client) AppAssertion() (*model.AppAssertion, error) {
	return x.signer.assertion()
}

// InstallationToken returns the default installation token. It is issued again only when less
// than a minute of validity remains.
func (x *Client) InstallationToken(ctx context.Context) (*model.AccessToken, error) {
	if cached := x.tokens.get(); cached.FreshAt(x.now(), tokenRefreshMargin) {
		return cached, nil
	}

	token, err := x.issueToken(ctx, nil)
	if err != nil {
		return nil, err
	}
	x.tokens.set(token)

	logging.From(ctx).Debug("installation token refreshed",
		slog.Any("install_id", x.installID),
		slog.Time("expires_at", token.ExpiresAt),
	)
	return token, nil
}

// CreateScopedToken issues a token restricted by req. The token is returned to the caller only
// and never cached.
func (x *Client) CreateScopedToken(ctx context.Context, req *model.ScopedTokenRequest) (*model.AccessToken, error) {
	if req.IsEmpty() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "scoped token requires repositories or permissions")
	}
	return x.issueToken(ctx, req)
}

type accessTokenPayload struct {
	Token     any `json:"token"`
	ExpiresAt any `json:"expires_at"`
}

func (x *Client) issueToken(ctx context.Context, scope *model.ScopedTokenRequest) (*model.AccessToken, error) {
	assertion, err := x.signer.assertion()
	if err != nil {
		return nil, err
	}

	req := apiRequest{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/app/installations/%d/access_tokens", x.installID),
		cred:     appCredential(assertion.Token),
		expected: []int{http.StatusOK, http.StatusCreated},
	}
	if !scope.IsEmpty() {
		req.body = scope
	}

	var payload accessTokenPayload
	if _, err := x.do(ctx, req, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to issue installation token", goerr.V("install_id", x.installID))
	}

	token, ok := payload.Token.(string)
	if !ok || token == "" {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation token is missing in response",
			goerr.V("install_id", x.installID))
	}
	expiresAtStr, ok := payload.ExpiresAt.(string)
	if !ok {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation token expiry is missing in response",
			goerr.V("install_id", x.installID))
	}
	expiresAt, err := time.Parse(time.RFC3339, expiresAtStr)
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation token expiry is not ISO-8601",
			goerr.V("install_id", x.installID),
			goerr.V("expires_at", expiresAtStr),
		)
	}

	return &model.AccessToken{
		Token:     types.InstallationToken(token),
		ExpiresAt: expiresAt,
	}, nil
}
