package api

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// ChallongeConnect starts the OAuth handshake and returns the
// authorization URL the user must visit.
func (c *HTTPClient) ChallongeConnect(ctx context.Context) (*models.ChallongeAuthorization, error) {
	var resp models.ChallongeAuthorization
	if err := c.get(ctx, "/api/challonge/connect", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChallongeCallback exchanges the authorization code for tokens. The state
// must already have been verified against the local guard before calling.
func (c *HTTPClient) ChallongeCallback(ctx context.Context, code, state string) (*models.ChallongeCallbackResponse, error) {
	req := models.ChallongeCallbackRequest{Code: code, State: state}

	var resp models.ChallongeCallbackResponse
	if err := c.post(ctx, "/api/challonge/callback", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChallongeStatus reports the current account link.
func (c *HTTPClient) ChallongeStatus(ctx context.Context) (*models.ChallongeStatus, error) {
	var resp models.ChallongeStatus
	if err := c.get(ctx, "/api/challonge/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChallongeRefresh forces a token refresh on the backend.
func (c *HTTPClient) ChallongeRefresh(ctx context.Context) (*models.ChallongeRefreshResponse, error) {
	var resp models.ChallongeRefreshResponse
	if err := c.post(ctx, "/api/challonge/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChallongeDisconnect unlinks the Challonge account.
func (c *HTTPClient) ChallongeDisconnect(ctx context.Context) (*models.ChallongeDisconnectResponse, error) {
	var resp models.ChallongeDisconnectResponse
	if err := c.del(ctx, "/api/challonge/disconnect", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tournaments lists tournaments mirrored from the bracket service.
func (c *HTTPClient) Tournaments(ctx context.Context) (*models.TournamentsResponse, error) {
	var resp models.TournamentsResponse
	if err := c.get(ctx, "/api/challonge/tournaments", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// JoinTournament registers the authenticated user as a participant.
func (c *HTTPClient) JoinTournament(ctx context.Context, tournamentID string) error {
	return c.post(ctx, "/api/challonge/tournaments/"+tournamentID+"/join", nil, nil)
}

// LeaveTournament withdraws the authenticated user.
func (c *HTTPClient) LeaveTournament(ctx context.Context, tournamentID string) error {
	return c.del(ctx, "/api/challonge/tournaments/"+tournamentID+"/leave", nil)
}
