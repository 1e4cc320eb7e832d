package ghapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/model"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
)

type installationPayload struct {
	ID         flexibleID `json:"id"`
	TargetType string     `json:"target_type"`
	HTMLURL    string     `json:"html_url"`
	Account    *struct {
		Login     any        `json:"login"`
		ID        flexibleID `json:"id"`
		AvatarURL string     `json:"avatar_url"`
		HTMLURL   string     `json:"html_url"`
	} `json:"account"`
}

// GetInstallation fetches the account an installation belongs to. It is authorized by the app
// assertion, so any installation of the app can be looked up.
func (x *Client) GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
	assertion, err := x.signer.assertion()
	if err != nil {
		return nil, err
	}

	req := apiRequest{
		method: http.MethodGet,
		path:   fmt.Sprintf("/app/installations/%d", installID),
		cred:   appCredential(assertion.Token),
	}

	var payload installationPayload
	if _, err := x.do(ctx, req, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to get installation", goerr.V("install_id", installID))
	}

	if payload.Account == nil {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation has no account", goerr.V("install_id", installID))
	}
	login, ok := payload.Account.Login.(string)
	if !ok || login == "" {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation account login is not a string",
			goerr.V("install_id", installID))
	}
	if payload.Account.ID == 0 {
		return nil, goerr.Wrap(types.ErrMalformedResponse, "installation account id is missing",
			goerr.V("install_id", installID))
	}

	id := types.GitHubAppInstallID(payload.ID)
	if id == 0 {
		id = installID
	}

	return &model.Installation{
		ID:                  id,
		TargetType:          payload.TargetType,
		AccountLogin:        login,
		AccountID:           int64(payload.Account.ID),
		AccountAvatarURL:    payload.Account.AvatarURL,
		AccountHTMLURL:      payload.Account.HTMLURL,
		InstallationHTMLURL: payload.HTMLURL,
	}, nil
}
