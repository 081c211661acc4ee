package api

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// Client is the backend API surface the UI layer depends on. HTTPClient is
// the production implementation; tests substitute fakes.
type Client interface {
	Login(ctx context.Context, email, passwordHash string) (string, error)
	Register(ctx context.Context, email, passwordHash, username string) error

	Me(ctx context.Context) (*models.User, error)
	AdminUsers(ctx context.Context) ([]models.User, error)

	CreateMatch(ctx context.Context, player1ID, player2ID string) (*models.Match, error)
	Matches(ctx context.Context, limit, offset int) (*models.MatchesResponse, error)
	UserMatches(ctx context.Context, limit, offset int) (*models.MatchesResponse, error)
	CompleteMatch(ctx context.Context, matchID, winnerID string) (*models.Match, error)

	ChallongeConnect(ctx context.Context) (*models.ChallongeAuthorization, error)
	ChallongeCallback(ctx context.Context, code, state string) (*models.ChallongeCallbackResponse, error)
	ChallongeStatus(ctx context.Context) (*models.ChallongeStatus, error)
	ChallongeRefresh(ctx context.Context) (*models.ChallongeRefreshResponse, error)
	ChallongeDisconnect(ctx context.Context) (*models.ChallongeDisconnectResponse, error)

	Tournaments(ctx context.Context) (*models.TournamentsResponse, error)
	JoinTournament(ctx context.Context, tournamentID string) error
	LeaveTournament(ctx context.Context, tournamentID string) error
}

var _ Client = (*HTTPClient)(nil)
