/*
Package backend contains the HTTP client for the remote WeatherWorks authentication backend.

The backend owns users and sessions; this front-end only relays login attempts to it.
The client carries a cookie jar so that session cookies set by the backend are included
on subsequent calls, matching a browser's credentials-included fetch behavior.
*/
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"

	"weatherworks/internal/pkg/errs"
	"weatherworks/internal/pkg/logx"

	"github.com/rs/zerolog"
)

// Client issues authentication requests against the backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient constructs a Client for the given base URL (no trailing slash).
// The underlying http.Client uses a cookie jar so backend session cookies survive
// across calls. No timeout is set on the client itself; callers bound each request
// with a context instead.
func NewClient(baseURL string) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New with nil options never fails today; guard anyway.
		logx.Warn("Cookie jar initialization failed, continuing without one.", "error", err.Error())
	}

	clientLogger := logx.Logger().With().Str("component", "backend").Logger()

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		logger:  clientLogger,
	}
}

// loginRequest is the JSON body of the login call, field name fixed by the backend contract.
type loginRequest struct {
	UserName string `json:"userName"`
}

// Login posts the user name to {base}/users/login and reports whether the backend
// created a session. Session creation is signalled strictly by HTTP 201; any other
// 2xx or 3xx status is treated as non-success without an error. A 401 produces a
// distinct unauthorized error, other 4xx/5xx statuses an upstream-status error,
// and transport failures an unreachable error wrapping the cause.
// The request lifetime is bound to ctx.
func (c *Client) Login(ctx context.Context, userName string) (bool, error) {
	body, err := json.Marshal(loginRequest{UserName: userName})
	if err != nil {
		return false, errs.NewError(errs.ErrUnknown, err)
	}

	url := c.baseURL + "/users/login"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, errs.NewError(errs.ErrUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info().Str("url", url).Str("user_name", userName).Msg("Sending login request to backend.")

	res, err := c.http.Do(req)
	if err != nil {
		return false, errs.NewError(errs.ErrBackendUnreachable, err)
	}
	defer res.Body.Close()

	c.logger.Info().Str("url", url).Int("status", res.StatusCode).Msg("Backend login response received.")

	switch {
	case res.StatusCode == http.StatusCreated:
		return true, nil
	case res.StatusCode == http.StatusUnauthorized:
		return false, errs.NewError(errs.ErrBackendUnauthorized)
	case res.StatusCode >= 400:
		return false, errs.NewError(errs.ErrBackendStatus, res.StatusCode)
	default:
		return false, nil
	}
}
