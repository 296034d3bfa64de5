package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/gurtar/gurtarctl/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(&config.StorageConfig{})
	client := NewClient(Params{
		Config: &config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		Store:  store,
	})
	return client, store
}

func signedAccessToken(t *testing.T, id, email, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	}))
	store.SetAccessToken("token-1")

	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))
	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, "yes", out["ok"])
}

func TestClient_OmitsBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, map[string]string{})
	}))

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	assert.Empty(t, gotAuth, "no Authorization header without a stored token")
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_QueryParamsEncoded(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]string{})
	}))

	query := url.Values{}
	query.Set("page", "2")
	query.Set("search", "coffee shop")
	require.NoError(t, client.Get(context.Background(), "/admin/users", query, nil))

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "coffee shop", gotQuery.Get("search"))
}

func TestClient_NetworkError(t *testing.T) {
	store := session.NewStore(&config.StorageConfig{})
	client := NewClient(Params{
		Config: &config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Store:  store,
	})

	err := client.Get(context.Background(), "/ping", nil, nil)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_RefreshesOnceAndRetries(t *testing.T) {
	newAccess := signedAccessToken(t, "u1", "a@b.com", "admin")

	var refreshCalls, pingCalls atomic.Int64
	var secondAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  newAccess,
				"refresh_token": "refresh-2",
			})
		case "/ping":
			if pingCalls.Add(1) == 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
				return
			}
			secondAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	store.SetAccessToken("stale-token")
	store.SetRefreshToken("refresh-1")

	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))

	assert.Equal(t, "yes", out["ok"])
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, pingCalls.Load())
	assert.Equal(t, "Bearer "+newAccess, secondAuth, "retry must carry the refreshed token")
	assert.Equal(t, newAccess, store.AccessToken())
	assert.Equal(t, "refresh-2", store.RefreshToken())
	require.NotNil(t, store.User(), "refresh re-derives the cached user from the new token")
	assert.Equal(t, "u1", store.User().ID)
}

func TestClient_RetriedRequestNotRefreshedAgain(t *testing.T) {
	newAccess := signedAccessToken(t, "u1", "a@b.com", "admin")

	var refreshCalls, pingCalls atomic.Int64
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			writeJSON(w, http.StatusOK, map[string]string{"access_token": newAccess})
		case "/ping":
			pingCalls.Add(1)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	store.SetAccessToken("stale-token")
	store.SetRefreshToken("refresh-1")

	err := client.Get(context.Background(), "/ping", nil, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "second 401 surfaces the server error as-is")
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, pingCalls.Load())
}

func TestClient_NoRefreshTokenExpiresSession(t *testing.T) {
	var refreshCalls atomic.Int64
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls.Add(1)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
	}))
	store.SetAccessToken("stale-token")

	var hookRuns int
	client.OnSessionExpired(func() { hookRuns++ })

	err := client.Get(context.Background(), "/ping", nil, nil)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.EqualValues(t, 0, refreshCalls.Load(), "without a refresh token no refresh call is attempted")
	assert.Empty(t, store.AccessToken(), "expiry clears the credential store")
	assert.Equal(t, 1, hookRuns)
}

func TestClient_FailedRefreshExpiresSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
	}))
	store.SetAccessToken("stale-token")
	store.SetRefreshToken("stale-refresh")

	var hookRuns int
	client.OnSessionExpired(func() { hookRuns++ })

	err := client.Get(context.Background(), "/ping", nil, nil)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Equal(t, 1, hookRuns)
}

func TestClient_ConcurrentRefreshesCoalesce(t *testing.T) {
	newAccess := signedAccessToken(t, "u1", "a@b.com", "admin")

	var refreshCalls atomic.Int64
	var mu sync.Mutex
	staleSeen := map[string]bool{}
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			time.Sleep(100 * time.Millisecond)
			writeJSON(w, http.StatusOK, map[string]string{"access_token": newAccess})
		default:
			mu.Lock()
			stale := r.Header.Get("Authorization") == "Bearer stale-token"
			if stale {
				staleSeen[r.URL.Path] = true
			}
			mu.Unlock()
			if stale {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
		}
	}))
	store.SetAccessToken("stale-token")
	store.SetRefreshToken("refresh-1")

	var wg sync.WaitGroup
	errs := make([]error, 4)
	paths := []string{"/a", "/b", "/c", "/d"}
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			errs[i] = client.Get(context.Background(), p, nil, nil)
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %s", paths[i])
	}
	assert.EqualValues(t, 1, refreshCalls.Load(), "concurrent 401s must share one refresh")
}

func TestClient_LoginRejectionNeverRefreshes(t *testing.T) {
	var refreshCalls atomic.Int64
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls.Add(1)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Invalid credentials", "error": "Unauthorized"})
	}))
	// A leftover refresh token must not mask a rejected login.
	store.SetRefreshToken("refresh-1")

	err := client.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.com", "password": "nope"}, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.EqualValues(t, 0, refreshCalls.Load())
}

func TestClient_StructuredErrorPassthrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"statusCode": 400,
			"message":    []string{"email must be an email", "password is too short"},
			"error":      "Bad Request",
		})
	}))

	err := client.Post(context.Background(), "/auth/login", map[string]string{}, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Bad Request", apiErr.Code)
	assert.Equal(t, []string{"email must be an email", "password is too short"}, apiErr.Messages)
	assert.Equal(t, "email must be an email; password is too short", apiErr.Error())
}

func TestClient_UnstructuredFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "bare 500", status: http.StatusInternalServerError, body: "boom", want: ErrServer},
		{name: "bare 502", status: http.StatusBadGateway, body: "", want: ErrServer},
		{name: "bare 404", status: http.StatusNotFound, body: "missing", want: ErrUnknown},
		{name: "non-error json body", status: http.StatusTeapot, body: `{"foo":1}`, want: ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := client.Get(context.Background(), "/thing", nil, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_CustomHeadersApplied(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Tenant")
		writeJSON(w, http.StatusOK, map[string]string{})
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Params{
		Config: &config.APIConfig{
			BaseURL: srv.URL + "/",
			Headers: map[string]string{"X-Tenant": "gurtar"},
		},
		Store: session.NewStore(&config.StorageConfig{}),
	})

	require.NoError(t, client.Get(context.Background(), "/ping", nil, nil))
	assert.Equal(t, "gurtar", gotHeader)
}
