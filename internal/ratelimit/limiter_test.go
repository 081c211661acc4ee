package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setClock pins the limiter clock to a controllable instant.
func setClock(t *testing.T, at *time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return *at }
	t.Cleanup(func() { timeNow = orig })
}

func TestAllowUpToMaxThenDeny(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, &now)

	l := New(5, 5*time.Minute)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("login"), "attempt %d should pass", i+1)
	}
	assert.False(t, l.Allow("login"), "sixth attempt must be denied")
}

func TestWindowSlides(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, &now)

	l := New(2, time.Minute)

	require.True(t, l.Allow("api-call"))
	require.True(t, l.Allow("api-call"))
	require.False(t, l.Allow("api-call"))

	// Advance past the window; old attempts fall out.
	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("api-call"))
}

func TestResetClearsSingleKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, &now)

	l := New(1, time.Minute)

	require.True(t, l.Allow("login"))
	require.True(t, l.Allow("register"))
	require.False(t, l.Allow("login"))

	l.Reset("login")

	assert.True(t, l.Allow("login"))
	assert.False(t, l.Allow("register"), "other keys keep their history")
}

func TestClearAll(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, &now)

	l := New(1, time.Minute)
	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("b"))

	l.ClearAll()

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, &now)

	l := New(1, time.Minute)
	require.True(t, l.Allow("login"))
	assert.True(t, l.Allow("api-call"))
}
