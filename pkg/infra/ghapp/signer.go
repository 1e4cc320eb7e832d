package ghapp

import (
	"crypto/rsa"
	"encoding/base64"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

const (
	pemHeaderMarker = "-----BEGIN"

	// issued-at is backdated to tolerate clock skew on the API side
	assertionBackdate = 60 * time.Second
	assertionLifetime = 9 * time.Minute
	assertionMargin   = 30 * time.Second
)

// NormalizePrivateKey accepts a PEM key as is, with escaped newlines, base64 encoded, or with
// escape sequences, and returns the PEM bytes.
func NormalizePrivateKey(raw types.GitHubAppPrivateKey) ([]byte, error) {
	key := strings.TrimSpace(string(raw))
	if key == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "private key is empty")
	}

	if strings.Contains(key, `\n`) {
		key = strings.ReplaceAll(key, `\n`, "\n")
	}
	if strings.Contains(key, pemHeaderMarker) {
		return []byte(key), nil
	}

	if decoded, err := base64.StdEncoding.DecodeString(key); err == nil && strings.Contains(string(decoded), pemHeaderMarker) {
		return []byte(strings.TrimSpace(string(decoded))), nil
	}

	if unescaped, err := strconv.Unquote(`"` + strings.ReplaceAll(key, "\n", `\n`) + `"`); err == nil && strings.Contains(unescaped, pemHeaderMarker) {
		return []byte(unescaped), nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "private key is not PEM, base64 encoded PEM nor escaped PEM")
}

func parsePrivateKey(raw types.GitHubAppPrivateKey) (*rsa.PrivateKey, error) {
	pem, err := NormalizePrivateKey(raw)
	if err != nil {
		return nil, err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse private key", goerr.V("error", err.Error()))
	}
	return key, nil
}

// signer builds the app assertion and keeps the last one until it is close to expiry.
// Concurrent callers may mint two assertions at the same time; both are valid.
type signer struct {
	appID types.GitHubAppID
	rsa   *ghinstallation.RSASigner
	now   func() time.Time

	mutex  sync.Mutex
	cached *model.AppAssertion
}

func newSigner(appID types.GitHubAppID, key *rsa.PrivateKey, now func() time.Time) *signer {
	return &signer{
		appID: appID,
		rsa:   ghinstallation.NewRSASigner(jwt.SigningMethodRS256, key),
		now:   now,
	}
}

func (x *signer) assertion() (*model.AppAssertion, error) {
	now := x.now()

	x.mutex.Lock()
	cached := x.cached
	x.mutex.Unlock()
	if cached.FreshAt(now, assertionMargin) {
		return cached, nil
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(int64(x.appID), 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-assertionBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionLifetime)),
	}
	signed, err := x.rsa.Sign(claims)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to sign app assertion", goerr.V("error", err.Error()))
	}

	assertion := &model.AppAssertion{
		Token:     types.AppAssertionToken(signed),
		IssuedAt:  now,
		ExpiresAt: now.Add(assertionLifetime),
	}

	x.mutex.Lock()
	x.cached = assertion
	x.mutex.Unlock()

	return assertion, nil
}
