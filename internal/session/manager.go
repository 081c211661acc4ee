package session

import (
	"context"
	"sync"

	"github.com/PlanarStandardMTG/planar-cli/internal/logging"
	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// Manager is the auth session context: process-wide reactive state derived
// from the stored session token. It has exactly two observable states,
// logged out (no valid token) and logged in (valid unexpired token, with a
// decoded user projection available). There is no partially-authenticated
// state: any decode failure clears the token and reports logged out.
//
// The Manager is constructed once at app start and injected into consumers;
// it is not ambient global state.
type Manager struct {
	store *Store
	log   logging.Logger

	mu       sync.RWMutex
	loggedIn bool
	user     *models.User

	unsubscribe func()
}

// NewManager binds a Manager to its token store. Call Init before use and
// Close when done.
func NewManager(store *Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Init derives the initial auth state from the store and subscribes to
// token-slot changes so external writes (another process sharing the store,
// a login flow, a 401-triggered clear) re-derive the state. Expired or
// malformed stored tokens are removed.
func (m *Manager) Init(ctx context.Context) error {
	token, err := m.store.Get(ctx)
	if err != nil {
		return err
	}
	m.applyToken(ctx, token)

	m.unsubscribe = m.store.Subscribe(func(token string) {
		m.applyToken(context.Background(), token)
	})

	return nil
}

// Close cancels the store subscription.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// applyToken is the single re-derivation function: it maps a token value to
// a logged-in or logged-out state. An invalid or expired token is cleared
// from the store; the resulting notification re-enters here with "" and
// settles on logged out.
func (m *Manager) applyToken(ctx context.Context, token string) {
	if token == "" {
		m.setState(false, nil)
		return
	}

	claims, err := DecodeToken(token)
	if err != nil {
		m.log.Warn(ctx, "clearing unusable session token", "reason", err.Error())
		m.setState(false, nil)
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear session token", "error", clearErr.Error())
		}
		return
	}

	m.setState(true, claims.User())
}

func (m *Manager) setState(loggedIn bool, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = loggedIn
	m.user = user
}

// Login stores a freshly issued token and flips to the logged-in state.
// The token must pass the shape check; decode failures surface as errors
// and leave the session logged out.
func (m *Manager) Login(ctx context.Context, token string) error {
	claims, err := DecodeToken(token)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, token); err != nil {
		return err
	}
	// Set already re-derived state via the subscription; setting again is
	// harmless and keeps Login correct even before Init.
	m.setState(true, claims.User())
	return nil
}

// Logout clears the token and flips to the logged-out state.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// IsLoggedIn reports whether a valid session is present.
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loggedIn
}

// User returns the decoded user projection, or nil when logged out. The
// returned value is read-only derived state; it is recomputed whenever the
// token changes and never persisted separately.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAdmin reports whether the current session carries the admin flag.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Admin
}
