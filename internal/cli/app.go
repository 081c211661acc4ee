// Package cli implements the interactive terminal client for the Planar
// Standard platform.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PlanarStandardMTG/planar-cli/internal/api"
	"github.com/PlanarStandardMTG/planar-cli/internal/config"
	"github.com/PlanarStandardMTG/planar-cli/internal/logging"
	"github.com/PlanarStandardMTG/planar-cli/internal/oauthstate"
	"github.com/PlanarStandardMTG/planar-cli/internal/ratelimit"
	"github.com/PlanarStandardMTG/planar-cli/internal/session"
)

// App wires the client together: configuration, the secure API client, the
// session manager, the OAuth guard and the auth throttle. Commands are
// methods on App; the REPL dispatches to them.
type App struct {
	config      *config.Config
	log         logging.Logger
	client      api.Client
	session     *session.Manager
	guard       *oauthstate.Guard
	authLimiter *ratelimit.Limiter
	reader      *bufio.Reader
	out         io.Writer
	db          *sql.DB
}

// NewApp builds a ready-to-run App from cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(os.Stderr, slog.LevelWarn)

	db, err := session.OpenDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	store := session.NewStore(db)
	manager := session.NewManager(store, log)
	if err := manager.Init(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	apiLimiter := ratelimit.New(cfg.APIMaxAttempts, cfg.APIRateWindow)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.Mode, store, apiLimiter, log)

	app := &App{
		config:      cfg,
		log:         log,
		client:      client,
		session:     manager,
		guard:       oauthstate.NewGuard(oauthstate.NewMemoryStore()),
		authLimiter: ratelimit.New(cfg.AuthMaxAttempts, cfg.AuthRateWindow),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		db:          db,
	}

	// A 401 already tears down the session via the store; the hook only
	// tells the user why the prompt changed.
	client.SetOnUnauthorized(func() {
		app.printf("Session expired, please log in again.\n")
	})

	return app, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the session subscription and the local store.
func (a *App) Close() {
	a.session.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

// status renders the prompt suffix: username and admin marker when logged in.
func (a *App) status() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	s := user.Username
	if user.Admin {
		s += "*"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}
