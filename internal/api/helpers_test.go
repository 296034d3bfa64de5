package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/gurtar/gurtarctl/internal/httpclient"
	"github.com/gurtar/gurtarctl/internal/session"
)

// testEnv wires a full service stack against an httptest backend, mirroring
// the production fx graph without fx.
type testEnv struct {
	client *httpclient.Client
	store  *session.Store
	sess   *session.Manager
	cache  *Cache
	auth   *AuthService
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(&config.StorageConfig{})
	client := httpclient.NewClient(httpclient.Params{
		Config: &config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		Store:  store,
	})
	sess := session.NewManager(store)
	cache := NewCache()
	auth := NewAuthService(AuthServiceParams{
		Client:  client,
		Store:   store,
		Session: sess,
		Cache:   cache,
	})
	return &testEnv{client: client, store: store, sess: sess, cache: cache, auth: auth}
}

// loginAs seeds the environment with an authenticated session.
func (e *testEnv) loginAs(t *testing.T, id, email, role string) {
	t.Helper()
	e.store.SetAccessToken(testToken(t, id, email, role))
	e.store.SetRefreshToken("refresh-1")
	e.store.SetUser(&session.User{ID: id, Email: email, Role: session.Role(role)})
	e.sess.Initialize()
}

// newTestEnvBrokenTransport targets a port nothing listens on, so every
// request fails at the transport layer.
func newTestEnvBrokenTransport(t *testing.T) *testEnv {
	t.Helper()
	store := session.NewStore(&config.StorageConfig{})
	client := httpclient.NewClient(httpclient.Params{
		Config: &config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		Store:  store,
	})
	sess := session.NewManager(store)
	cache := NewCache()
	auth := NewAuthService(AuthServiceParams{Client: client, Store: store, Session: sess, Cache: cache})
	return &testEnv{client: client, store: store, sess: sess, cache: cache, auth: auth}
}

func decodeBody(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func testToken(t *testing.T, id, email, role string) string {
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

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func listEnvelope[T any](data []T, total, page, limit int) ListResponse[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return ListResponse[T]{
		Data: data,
		Meta: Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	}
}
