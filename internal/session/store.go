package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/gurtar/gurtarctl/internal/logger"
	"go.uber.org/zap"
)

// credentials is the on-disk shape of the stored session. All three fields
// are written together on every change so a reader can never observe a
// partially cleared file.
type credentials struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// Store persists the access token, refresh token and cached user identity
// across process restarts. Absence of a value is a normal state, never an
// error. When no storage path is configured (or the file cannot be used)
// the store degrades to process-local memory.
type Store struct {
	mu    sync.Mutex
	path  string
	creds credentials
}

// NewStore creates a credential store backed by cfg.Path. A missing or
// unreadable file simply yields an empty store.
func NewStore(cfg *config.StorageConfig) *Store {
	s := &Store{path: cfg.Path}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		logger.Debug("ignoring unreadable credentials file", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.creds = creds
}

// persist writes the full credential triple. Write-to-temp plus rename keeps
// the file whole even if the process dies mid-write.
func (s *Store) persist() {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		logger.Debug("cannot create credentials directory", zap.Error(err))
		return
	}
	data, err := json.MarshalIndent(&s.creds, "", "  ")
	if err != nil {
		logger.Debug("cannot encode credentials", zap.Error(err))
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		logger.Debug("cannot write credentials file", zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Debug("cannot replace credentials file", zap.Error(err))
	}
}

// AccessToken returns the stored access token, or "" when absent.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.AccessToken
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.RefreshToken
}

// User returns the cached user identity, or nil when absent. A cached user
// without an access token is treated as absent.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds.AccessToken == "" || s.creds.User == nil {
		return nil
	}
	u := *s.creds.User
	return &u
}

// SetAccessToken overwrites the stored access token.
func (s *Store) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.AccessToken = token
	s.persist()
}

// SetRefreshToken overwrites the stored refresh token.
func (s *Store) SetRefreshToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.RefreshToken = token
	s.persist()
}

// SetUser overwrites the cached user identity.
func (s *Store) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.creds.User = nil
	} else {
		copied := *u
		s.creds.User = &copied
	}
	s.persist()
}

// Clear removes all three fields in one step.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = credentials{}
	if s.path == "" {
		return
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Debug("cannot remove credentials file", zap.Error(err))
	}
}
