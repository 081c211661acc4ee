// Package ratelimit implements an in-memory sliding-window throttle for
// client-side actions. It is a UX guard against accidental hammering
// (double-clicked submits, tight retry loops); the backend enforces the
// real limits. State lives in process memory and resets on restart.
package ratelimit

import (
	"sync"
	"time"
)

// timeNow is a test seam for the limiter's clock.
var timeNow = time.Now

// Limiter tracks attempt timestamps per action key and permits an action
// only while the number of attempts inside the trailing window stays below
// the configured maximum.
type Limiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
}

// New creates a Limiter allowing maxAttempts per window for each key.
func New(maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether another attempt for key is permitted right now.
// Expired timestamps are discarded first; on permit the current instant is
// recorded against the key.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := timeNow()
	recent := l.attempts[key][:0:0]
	for _, ts := range l.attempts[key] {
		if now.Sub(ts) < l.window {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.maxAttempts {
		l.attempts[key] = recent
		return false
	}

	l.attempts[key] = append(recent, now)
	return true
}

// Reset clears the history for one key. Called after a successful attempt
// so legitimate follow-up actions are not punished.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// ClearAll drops every key's history.
func (l *Limiter) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = make(map[string][]time.Time)
}
