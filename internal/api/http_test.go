package api

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PlanarStandardMTG/planar-cli/internal/logging"
	"github.com/PlanarStandardMTG/planar-cli/internal/ratelimit"
	"github.com/PlanarStandardMTG/planar-cli/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const testToken = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0.c2ln"

func setupStore(t *testing.T) *session.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return session.NewStore(db)
}

func testLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, serverURL string) (*HTTPClient, *session.Store) {
	t.Helper()
	store := setupStore(t)
	limiter := ratelimit.New(100, 30*time.Second)
	return NewHTTPClient(serverURL, "development", store, limiter, testLogger()), store
}

func TestRequestSendsSecureHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, testToken))

	resp, err := c.Request(ctx, http.MethodGet, "/api/users/me", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "XMLHttpRequest", got.Get("X-Requested-With"))
	assert.Equal(t, "no-store", got.Get("Cache-Control"))
	assert.Equal(t, "Bearer "+testToken, got.Get("Authorization"))
}

func TestRequestOmitsBearerWhenLoggedOut(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	resp, err := c.Request(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, got.Get("Authorization"))
}

func TestRequestRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	store := setupStore(t)
	limiter := ratelimit.New(2, time.Minute)
	c := NewHTTPClient(srv.URL, "development", store, limiter, testLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		resp, err := c.Request(ctx, http.MethodGet, "/", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	_, err := c.Request(ctx, http.MethodGet, "/", nil)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRequestEnforcesHTTPSInProduction(t *testing.T) {
	store := setupStore(t)
	limiter := ratelimit.New(100, time.Minute)
	c := NewHTTPClient("http://planar.example", ModeProduction, store, limiter, testLogger())

	_, err := c.Request(context.Background(), http.MethodGet, "/api/matches", nil)
	assert.ErrorIs(t, err, ErrInsecureTransport)
}

func TestRequestRejectsNonJSONContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html></html>")
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.Request(context.Background(), http.MethodGet, "/", nil)
	assert.ErrorIs(t, err, ErrUnexpectedContentType)
}

func TestRequestNetworkFailureIsGeneric(t *testing.T) {
	c, _ := newTestClient(t, "http://127.0.0.1:1") // nothing listens here

	_, err := c.Request(context.Background(), http.MethodGet, "/", nil)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotContains(t, err.Error(), "127.0.0.1", "transport detail must not leak")
}

func TestUnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"session expired"}`)
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, testToken))

	hookFired := false
	c.SetOnUnauthorized(func() { hookFired = true })

	_, err := c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookFired)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "401 must destroy the local session")
}

func TestServerErrorMessageIsSanitized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"<script>alert(1)</script>bad input"}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.Me(context.Background())
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)

	assert.Equal(t, http.StatusBadRequest, serverErr.Status)
	assert.NotContains(t, serverErr.Message, "<script>")
	assert.Contains(t, serverErr.Message, "bad input")
}

func TestResponseTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pad":"`))
		pad := strings.Repeat("x", 1024)
		for written := 0; written <= maxResponseBytes; written += len(pad) {
			w.Write([]byte(pad))
		}
		w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestRequestScrubsDangerousBodyKeys(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	payload := map[string]any{
		"winnerId":  "abc",
		"__proto__": map[string]any{"admin": true},
	}
	resp, err := c.Request(context.Background(), http.MethodPost, "/api/matches", payload)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, body, "winnerId")
	assert.NotContains(t, body, "__proto__")
}

func TestLoginAndAuthenticatedFollowUp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"token":%q}`, testToken)
	})
	var gotAuth string
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"u1","username":"jace","elo":1480,"admin":false}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, store := newTestClient(t, srv.URL)
	ctx := context.Background()

	token, err := c.Login(ctx, "jace@example.com", "digest")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, token))

	user, err := c.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, "jace", user.Username)
	assert.Equal(t, 1480, user.Elo)
	assert.Equal(t, "Bearer "+testToken, gotAuth, "bearer header attaches automatically")
}

func TestMatchesPaginationParams(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"matches":[],"pagination":{"limit":20,"offset":40,"total":3,"hasMore":false}}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	resp, err := c.Matches(context.Background(), 20, 40)
	require.NoError(t, err)

	assert.Equal(t, "limit=20&offset=40", query)
	assert.Equal(t, 3, resp.Pagination.Total)
}
