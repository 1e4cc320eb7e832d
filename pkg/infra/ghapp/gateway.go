package ghapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repobroker/pkg/domain/types"
	"github.com/m-mizutani/repobroker/pkg/utils/logging"
	"github.com/m-mizutani/repobroker/pkg/utils/safe"
)

const (
	acceptHeader     = "application/vnd.github+json"
	defaultUserAgent = "repobroker/seed-manager"
)

// credential is either an app assertion (sent as Bearer) or an installation token (sent as token).
type credential struct {
	value    string
	appLevel bool
}

func appCredential(token types.AppAssertionToken) credential {
	return credential{value: string(token), appLevel: true}
}

func installationCredential(token types.InstallationToken) credential {
	return credential{value: string(token)}
}

func (x credential) header() string {
	if x.appLevel {
		return "Bearer " + x.value
	}
	return "token " + x.value
}

type apiRequest struct {
	method   string
	path     string
	cred     credential
	body     any
	expected []int
}

// do sends one request and decodes the response body into out when out is not nil. When expected
// statuses are given, any other status is an error; otherwise any non-2xx status is.
func (x *Client) do(ctx context.Context, req apiRequest, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	gh := github.NewClient(x.httpClient)
	gh.BaseURL = x.baseURL
	gh.UserAgent = x.userAgent

	httpReq, err := gh.NewRequest(req.method, strings.TrimPrefix(req.path, "/"), req.body)
	if err != nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "failed to build hosting API request",
			goerr.V("method", req.method),
			goerr.V("path", req.path),
			goerr.V("error", err.Error()),
		)
	}
	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Authorization", req.cred.header())

	resp, err := gh.BareDo(ctx, httpReq)
	if resp == nil || resp.Response == nil {
		msg := "no response"
		if err != nil {
			msg = err.Error()
		}
		return 0, goerr.Wrap(types.ErrHostingAPI, "hosting API request failed",
			goerr.V("method", req.method),
			goerr.V("path", req.path),
			goerr.V("error", msg),
		)
	}

	raw, readErr := readBody(resp.Response, err)
	if readErr != nil {
		return resp.StatusCode, goerr.Wrap(types.ErrHostingAPI, "failed to read hosting API response",
			goerr.V("method", req.method),
			goerr.V("path", req.path),
			goerr.V("status", resp.StatusCode),
			goerr.V("error", readErr.Error()),
		)
	}

	logging.From(ctx).Debug("hosting API response",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
	)

	if !statusAccepted(resp.StatusCode, req.expected) {
		apiErr := &types.APIError{
			Method:     req.method,
			Path:       req.path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
		return resp.StatusCode, goerr.Wrap(apiErr, "hosting API rejected request",
			goerr.V("method", req.method),
			goerr.V("path", req.path),
			goerr.V("status", resp.StatusCode),
			goerr.V("expected", req.expected),
		)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, goerr.Wrap(types.ErrMalformedResponse, "failed to decode hosting API response",
				goerr.V("method", req.method),
				goerr.V("path", req.path),
				goerr.V("error", err.Error()),
			)
		}
	}

	return resp.StatusCode, nil
}

// readBody returns the response body. go-github consumes the body of 202 responses into
// AcceptedError and restores it for other error statuses.
func readBody(resp *http.Response, doErr error) ([]byte, error) {
	var accepted *github.AcceptedError
	if errors.As(doErr, &accepted) {
		return accepted.Raw, nil
	}

	defer safe.Close(resp.Body)
	return io.ReadAll(resp.Body)
}

func statusAccepted(status int, expected []int) bool {
	if len(expected) > 0 {
		return slices.Contains(expected, status)
	}
	return 200 <= status && status < 300
}

// flexibleID decodes an integer that some endpoints return as a JSON string.
type flexibleID int64

func (x *flexibleID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return goerr.Wrap(types.ErrMalformedResponse, "id is not an integer", goerr.V("value", string(data)))
	}
	*x = flexibleID(v)
	return nil
}
