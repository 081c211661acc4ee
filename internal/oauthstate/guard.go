// Package oauthstate implements the CSRF state guard for the Challonge
// OAuth handshake. A single one-time random value binds the outbound
// authorization redirect to its callback; the value lives in ephemeral
// process-scoped storage and is consumed on the first verification
// attempt, match or not.
package oauthstate

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// StateKey is the ephemeral slot name for the pending authorization state.
const StateKey = "challonge_oauth_state"

// ephemeralStore is the tab-scoped storage the guard writes its one live
// value into. MemoryStore is the in-process implementation.
type ephemeralStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStore is a process-lifetime key/value store. Nothing in it
// survives a restart, which is exactly the lifetime the CSRF state needs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Guard generates and verifies the one-time OAuth state value.
type Guard struct {
	store ephemeralStore
}

// NewGuard builds a Guard over the given ephemeral store.
func NewGuard(store ephemeralStore) *Guard {
	return &Guard{store: store}
}

// Generate produces 32 cryptographically random bytes, stores their hex
// encoding as the pending state, and returns it for embedding in the
// authorization URL. A second Generate before verification replaces the
// pending value: there is at most one live state per flow.
func (g *Guard) Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	state := hex.EncodeToString(buf)
	g.store.Set(StateKey, state)
	return state, nil
}

// Retain stores a server-issued state as the pending value. The connect
// endpoint mints the state embedded in its authorization URL; retaining it
// here lets Verify bind the later callback to that exact handshake.
func (g *Guard) Retain(state string) {
	g.store.Set(StateKey, state)
}

// Verify compares received against the stored state and reports whether
// they match. It fails closed when no state is pending. The stored value
// is always deleted, pass or fail, so a state can never be replayed.
//
// The comparison is deliberately constant-time over the contents: lengths
// are checked first (a length mismatch already fails without leaking
// position information), then every byte pair is XOR-accumulated. Do not
// replace this with a short-circuiting equality check.
func (g *Guard) Verify(received string) bool {
	stored, ok := g.store.Get(StateKey)
	g.store.Delete(StateKey)

	if !ok {
		return false
	}
	if len(received) != len(stored) {
		return false
	}

	var result byte
	for i := 0; i < len(received); i++ {
		result |= received[i] ^ stored[i]
	}
	return result == 0
}
