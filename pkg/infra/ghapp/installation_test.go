package ghapp_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

func TestGetInstallation(t *testing.T) {
	clock := newTestClock()
	api := newFakeAPI(t, clock)
	api.Mux.HandleFunc("GET /app/installations/77", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":          77,
			"target_type": "Organization",
			"html_url":    "https://github.com/organizations/acme/settings/installations/77",
			"account": map[string]any{
				"login":      "acme",
				"id":         "9001",
				"avatar_url": "https://avatars.example.com/acme",
			},
		})
	})
	api.Mux.HandleFunc("GET /app/installations/78", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":      78,
			"account": map[string]any{"login": 1, "id": 2},
		})
	})
	client := newClient(t, api, clock)

	installation := gt.R1(client.GetInstallation(context.Background(), 77)).NoError(t)
	gt.V(t, installation.AccountLogin).Equal("acme")
	gt.V(t, installation.AccountID).Equal(int64(9001))
	gt.True(t, installation.IsOrganization())

	reqs := api.Requests(http.MethodGet, "/app/installations/77")
	gt.A(t, reqs).Length(1)
	gt.True(t, strings.HasPrefix(reqs[0].Authorization, "Bearer "))

	_, err := client.GetInstallation(context.Background(), 78)
	gt.Error(t, err)
	gt.V(t, types.KindOf(err)).Equal(types.ErrorKindMalformedResponse)
}

func TestWithInstallation(t *testing.T) {
	clock := newTestClock()
	api := newFakeAPI(t, clock)
	client := newClient(t, api, clock)

	_ = gt.R1(client.InstallationToken(context.Background())).NoError(t)

	other := client.WithInstallation(99)
	gt.V(t, other.InstallID()).Equal(types.GitHubAppInstallID(99))
	gt.V(t, client.InstallID()).Equal(types.GitHubAppInstallID(42))

	token := gt.R1(other.InstallationToken(context.Background())).NoError(t)
	gt.V(t, token.Token).Equal(types.InstallationToken("ghs_token_2"))
	gt.A(t, api.Requests(http.MethodPost, "/app/installations/99/access_tokens")).Length(1)

	third := client.ForInstallation(77)
	_ = gt.R1(third.InstallationToken(context.Background())).NoError(t)
	gt.A(t, api.Requests(http.MethodPost, "/app/installations/77/access_tokens")).Length(1)
	gt.A(t, api.Requests(http.MethodPost, "/app/installations/42/access_tokens")).Length(1)
}
