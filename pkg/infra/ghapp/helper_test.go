package ghapp_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/infra/ghapp"
)

const (
	testAppID     = types.GitHubAppID(123)
	testInstallID = types.GitHubAppInstallID(42)
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
	testKeyPEM  string
)

func privateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = key
		testKeyPEM = string(pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		}))
	})
	return testKey, testKeyPEM
}

type testClock struct {
	mutex sync.Mutex
	now   time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (x *testClock) Now() time.Time {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.now
}

func (x *testClock) Advance(d time.Duration) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.now = x.now.Add(d)
}

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Accept        string
	UserAgent     string
	Body          string
}

// fakeAPI is a minimal hosting API. Token issuance is always available; tests register other
// endpoints on Mux.
type fakeAPI struct {
	*httptest.Server
	Mux   *http.ServeMux
	t     *testing.T
	clock *testClock

	mutex    sync.Mutex
	issued   int
	requests []recordedRequest
}

func newFakeAPI(t *testing.T, clock *testClock) *fakeAPI {
	api := &fakeAPI{
		Mux:   http.NewServeMux(),
		t:     t,
		clock: clock,
	}
	api.Mux.HandleFunc("POST /app/installations/{id}/access_tokens", api.issueToken)

	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		api.mutex.Lock()
		api.requests = append(api.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Accept:        r.Header.Get("Accept"),
			UserAgent:     r.Header.Get("User-Agent"),
			Body:          string(body),
		})
		api.mutex.Unlock()

		api.Mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.Close)

	return api
}

func (x *fakeAPI) issueToken(w http.ResponseWriter, r *http.Request) {
	key, _ := privateKey(x.t)
	assertion := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(assertion, &claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}); err != nil || claims.Issuer != "123" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	x.mutex.Lock()
	x.issued++
	n := x.issued
	x.mutex.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"token":      fmt.Sprintf("ghs_token_%d", n),
		"expires_at": x.clock.Now().Add(time.Hour).Format(time.RFC3339),
	})
}

func (x *fakeAPI) Issued() int {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	return x.issued
}

func (x *fakeAPI) Requests(method, path string) []recordedRequest {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	var found []recordedRequest
	for _, req := range x.requests {
		if req.Method == method && req.Path == path {
			found = append(found, req)
		}
	}
	return found
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, api *fakeAPI, clock *testClock, options ...ghapp.Option) *ghapp.Client {
	t.Helper()
	_, pemKey := privateKey(t)
	options = append([]ghapp.Option{
		ghapp.WithBaseURL(api.URL),
		ghapp.WithClock(clock.Now),
	}, options...)
	return gt.R1(ghapp.New(testAppID, types.GitHubAppPrivateKey(pemKey), testInstallID, options...)).NoError(t)
}
