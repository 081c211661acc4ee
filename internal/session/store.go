// Package session owns the bearer token lifecycle on the client: the
// durable single-slot token store and the reactive auth state derived
// from it.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

// TokenKey is the durable slot the session token lives under. The name is
// part of the client's persisted-state contract; do not rename it.
const TokenKey = "authToken"

// ErrInvalidTokenFormat is returned when a value that is not a three-segment
// token is offered for storage.
var ErrInvalidTokenFormat = errors.New("invalid token format")

// Store is the session store adapter: one persistent token slot on top of
// the local key/value table, with change notifications for subscribers.
//
// Reads are self-healing: a stored value that no longer passes the token
// shape check is deleted and reported as absent rather than handed out.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs map[int]func(token string)
	next int
}

// NewStore wraps db as a session store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, subs: make(map[int]func(string))}
}

// Get returns the stored token, or "" when no valid token is present.
// A malformed stored value is cleared before returning "".
func (s *Store) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, TokenKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	if !securex.IsValidJWTFormat(token) {
		if err := s.Clear(ctx); err != nil {
			return "", err
		}
		return "", nil
	}

	return token, nil
}

// Set validates the token shape and persists it, then notifies subscribers.
func (s *Store) Set(ctx context.Context, token string) error {
	if !securex.IsValidJWTFormat(token) {
		return ErrInvalidTokenFormat
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, TokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	s.notify(token)
	return nil
}

// Clear deletes the token slot unconditionally and notifies subscribers.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	s.notify("")
	return nil
}

// Subscribe registers fn to run whenever the token slot changes. Only the
// token key triggers notifications; fn receives the new value ("" after a
// clear). The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(token string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(token string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(token)
	}
}
