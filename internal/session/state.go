package session

import (
	"sync"
)

// State is the in-memory session snapshot consumed by the CLI and the
// dashboard. IsAuthenticated implies User != nil. IsInitialized flips to
// true after the first hydration from the credential store and never
// reverts.
type State struct {
	User            *User
	IsAuthenticated bool
	IsInitialized   bool
	Err             string
}

// Observer receives a state snapshot after every mutation.
type Observer func(State)

// Manager owns the session state. It is mutated only by the auth service
// and by Initialize; everything else reads snapshots. The manager is an
// injected dependency, not ambient package state, so its lifecycle is
// explicit and tests can run isolated instances.
type Manager struct {
	mu        sync.Mutex
	store     *Store
	state     State
	observers []Observer
}

// NewManager creates a session manager over the given credential store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Initialize hydrates the session from the credential store. Both a cached
// user and an access token must be present for the session to start
// authenticated. Safe to call more than once; only the first call can
// change IsInitialized.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.store.User()
	token := m.store.AccessToken()

	if user != nil && token != "" {
		m.state = State{User: user, IsAuthenticated: true, IsInitialized: true}
	} else {
		m.state = State{IsInitialized: true}
	}
	m.notifyLocked()
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetUser updates the session identity. A non-nil user is persisted to the
// credential store; nil clears the store entirely, making "log out" and
// "drop identity" the same code path.
func (m *Manager) SetUser(user *User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user != nil {
		m.store.SetUser(user)
	} else {
		m.store.Clear()
	}
	m.state.User = user
	if user == nil {
		m.state.IsAuthenticated = false
	}
	m.notifyLocked()
}

// SetAuthenticated updates the authenticated flag.
func (m *Manager) SetAuthenticated(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.IsAuthenticated = v
	m.notifyLocked()
}

// SetError records a user-safe error message, or clears it with "".
func (m *Manager) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Err = msg
	m.notifyLocked()
}

// Subscribe registers an observer called with a snapshot after every
// mutation. Observers run synchronously; they must not call back into the
// manager.
func (m *Manager) Subscribe(fn Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) notifyLocked() {
	for _, fn := range m.observers {
		fn(m.state)
	}
}
