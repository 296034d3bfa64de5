package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gurtar/gurtarctl/internal/httpclient"
	"github.com/gurtar/gurtarctl/internal/logger"
	"github.com/gurtar/gurtarctl/internal/messages"
	"github.com/gurtar/gurtarctl/internal/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// AuthService orchestrates login, logout and refresh against the Gurtar
// auth endpoints, keeping the credential store and session state in sync.
type AuthService struct {
	client *httpclient.Client
	store  *session.Store
	sess   *session.Manager
	cache  *Cache
}

type AuthServiceParams struct {
	fx.In

	Client  *httpclient.Client
	Store   *session.Store
	Session *session.Manager
	Cache   *Cache
}

// NewAuthService creates the auth service and wires session-expiry cleanup
// into the HTTP client: when a refresh is unrecoverable, the cache is
// dropped and the session reset without any caller involvement.
func NewAuthService(params AuthServiceParams) *AuthService {
	s := &AuthService{
		client: params.Client,
		store:  params.Store,
		sess:   params.Session,
		cache:  params.Cache,
	}
	params.Client.OnSessionExpired(func() {
		params.Cache.Clear()
		params.Session.SetUser(nil)
	})
	return s
}

// Initialize hydrates the session from the credential store. Run once at
// startup, before any guarded command executes.
func (s *AuthService) Initialize() {
	s.sess.Initialize()
}

// Session exposes the session manager for observers (the dashboard guard).
func (s *AuthService) Session() *session.Manager {
	return s.sess
}

// Login authenticates against the backend. On success the identity decoded
// from the issued access token is persisted along with both tokens and the
// session becomes authenticated. On any failure the session is reset to
// anonymous with a user-safe error message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.User, error) {
	var resp AuthResponse
	err := s.client.Post(ctx, EndpointLogin, LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		s.failLogin(loginMessage(err))
		return nil, loginError(err)
	}

	user := session.ExtractUser(resp.AccessToken)
	if user == nil {
		// The server accepted the credentials but issued a token the
		// client cannot read. Integration bug, not user error.
		logger.Error("login succeeded but access token is undecodable")
		s.failLogin(messages.UnknownError)
		return nil, ErrInvalidToken
	}

	s.store.SetAccessToken(resp.AccessToken)
	s.store.SetRefreshToken(resp.RefreshToken)
	s.sess.SetUser(user)
	s.sess.SetAuthenticated(true)
	s.sess.SetError("")
	logger.Info("logged in", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *AuthService) failLogin(msg string) {
	s.sess.SetUser(nil)
	s.sess.SetAuthenticated(false)
	s.sess.SetError(msg)
}

// Logout tells the server to drop the session, best effort. Local cleanup
// is unconditional: whatever happens on the wire, the credential store is
// cleared and the session ends anonymous.
func (s *AuthService) Logout(ctx context.Context) {
	defer func() {
		s.client.ExpireSession()
		s.sess.SetError("")
	}()

	if err := s.client.Post(ctx, EndpointLogout, nil, nil); err != nil {
		logger.Warn("logout request failed, clearing local session anyway", zap.Error(err))
	}
}

// Refresh exchanges the stored refresh token for a new access token. It
// fails immediately when no refresh token is stored. A new refresh token is
// persisted only if the server returned one.
func (s *AuthService) Refresh(ctx context.Context) (*AuthResponse, error) {
	refreshToken := s.store.RefreshToken()
	if refreshToken == "" {
		return nil, httpclient.ErrSessionExpired
	}

	var resp AuthResponse
	if err := s.client.Post(ctx, EndpointRefresh, map[string]string{"refresh_token": refreshToken}, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		s.store.SetAccessToken(resp.AccessToken)
		if resp.RefreshToken != "" {
			s.store.SetRefreshToken(resp.RefreshToken)
		}
		if user := session.ExtractUser(resp.AccessToken); user != nil {
			s.store.SetUser(user)
		}
	}
	return &resp, nil
}

// RequireAuth returns the current user, or ErrNotAuthenticated when the
// initialized session is anonymous. Guarded commands call it before doing
// any work.
func (s *AuthService) RequireAuth() (*session.User, error) {
	state := s.sess.Snapshot()
	if !state.IsInitialized || !state.IsAuthenticated || state.User == nil {
		return nil, ErrNotAuthenticated
	}
	return state.User, nil
}

func loginError(err error) error {
	if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	return err
}

// loginMessage maps a login failure onto user-safe copy; raw transport
// errors never reach the UI.
func loginMessage(err error) string {
	switch {
	case errors.Is(err, httpclient.ErrNetwork):
		return messages.NetworkError
	case errors.Is(err, httpclient.ErrServer):
		return messages.ServerError
	}
	if apiErr, ok := httpclient.AsAPIError(err); ok {
		if apiErr.StatusCode == http.StatusUnauthorized {
			return messages.LoginError
		}
		// Structured API messages are already user-safe.
		return apiErr.Error()
	}
	return messages.UnknownError
}
