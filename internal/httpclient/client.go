// Package httpclient is the single request-sending abstraction used by all
// Gurtar API calls. It attaches bearer credentials from the session store,
// normalizes transport failures, and transparently retries a request once
// after refreshing an expired access token.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/gurtar/gurtarctl/internal/logger"
	"github.com/gurtar/gurtarctl/internal/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	loginPath   = "/auth/login"
	refreshPath = "/auth/refresh"
)

// refreshExempt reports whether a 401 from path means the credentials
// themselves were rejected, so refreshing the access token cannot help.
func refreshExempt(path string) bool {
	return path == loginPath || path == refreshPath
}

// Client wraps *http.Client with the Gurtar request pipeline. A single
// shared instance serves every API call in the process.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	store   *session.Store

	// refresh coalesces concurrent token refreshes into one in-flight
	// call; every 401-failing request waits on the same result.
	refresh singleflight.Group

	mu       sync.Mutex
	onExpire []func()
}

type Params struct {
	fx.In

	Config *config.APIConfig
	Store  *session.Store
}

// NewClient creates the shared HTTP client.
func NewClient(params Params) *Client {
	timeout := params.Config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(params.Config.BaseURL, "/"),
		headers: params.Config.Headers,
		store:   params.Store,
	}
}

// OnSessionExpired registers a cleanup hook that runs whenever the client
// declares the session unrecoverable (missing refresh token or failed
// refresh). The credential store is already cleared when hooks run.
func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = append(c.onExpire, fn)
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// GetRaw performs a GET request and returns the raw response body. Used for
// binary payloads such as statistics exports.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	data, err := c.doJSON(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	data, err := c.doJSON(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	data, err := c.doJSON(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return decode(data, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}
	return c.Do(ctx, method, path, nil, payload)
}

// Do sends one request through the full pipeline. The body is a buffered
// byte slice so the one-shot retry after a token refresh can resend it.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	return c.do(ctx, method, path, query, body, false)
}

// do is the request pipeline. The retried parameter is threaded explicitly
// through the call chain: a request is retried at most once, and only after
// a successful refresh.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, retried bool) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("request transport failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	data, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusBadRequest {
		return data, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried && !refreshExempt(path) {
		if err := c.refreshSession(ctx); err != nil {
			return nil, err
		}
		// The retried request re-reads the store, so it carries the
		// refreshed bearer token.
		return c.do(ctx, method, path, query, body, true)
	}

	return nil, classify(resp.StatusCode, data)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	// Attach the bearer header only when a token exists; a stale or empty
	// bearer value is never sent.
	if token := c.store.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// refreshSession exchanges the stored refresh token for a new access token.
// Concurrent callers share a single in-flight refresh via singleflight; the
// failure path clears local state before propagating ErrSessionExpired.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, shared := c.refresh.Do("refresh", func() (any, error) {
		refreshToken := c.store.RefreshToken()
		if refreshToken == "" {
			return nil, fmt.Errorf("no refresh token available")
		}

		payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
		if err != nil {
			return nil, err
		}
		data, err := c.do(ctx, http.MethodPost, refreshPath, nil, payload, true)
		if err != nil {
			return nil, err
		}

		var resp struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("unreadable refresh response: %w", err)
		}
		if resp.AccessToken == "" {
			return nil, fmt.Errorf("refresh response missing access token")
		}

		c.store.SetAccessToken(resp.AccessToken)
		if resp.RefreshToken != "" {
			c.store.SetRefreshToken(resp.RefreshToken)
		}
		if user := session.ExtractUser(resp.AccessToken); user != nil {
			c.store.SetUser(user)
		}
		logger.Debug("access token refreshed")
		return nil, nil
	})
	if shared {
		logger.Debug("refresh shared with concurrent request")
	}
	if err != nil {
		logger.Info("token refresh failed, expiring session", zap.Error(err))
		c.ExpireSession()
		return ErrSessionExpired
	}
	return nil
}

// ExpireSession clears the credential store and runs every registered
// cleanup hook. It is the shared teardown for explicit logout and for
// unrecoverable refresh failures.
func (c *Client) ExpireSession() {
	c.store.Clear()
	c.mu.Lock()
	hooks := make([]func(), len(c.onExpire))
	copy(hooks, c.onExpire)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

// classify normalizes a failed response: a structured error body is
// propagated unchanged, everything else collapses into the generic server
// or unknown classes.
func classify(status int, body []byte) error {
	if len(body) > 0 {
		var apiErr APIError
		if err := json.Unmarshal(body, &apiErr); err == nil && (apiErr.StatusCode != 0 || apiErr.Code != "" || len(apiErr.Messages) > 0) {
			if apiErr.StatusCode == 0 {
				apiErr.StatusCode = status
			}
			return &apiErr
		}
	}
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrServer, status)
	}
	return fmt.Errorf("%w: status %d", ErrUnknown, status)
}

func decode(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
