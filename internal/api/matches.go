package api

import (
	"context"
	"fmt"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// CreateMatch records a new match between two players.
func (c *HTTPClient) CreateMatch(ctx context.Context, player1ID, player2ID string) (*models.Match, error) {
	req := models.CreateMatchRequest{Player1ID: player1ID, Player2ID: player2ID}

	var match models.Match
	if err := c.post(ctx, "/api/matches", req, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// Matches lists all matches, newest first, windowed by limit/offset.
func (c *HTTPClient) Matches(ctx context.Context, limit, offset int) (*models.MatchesResponse, error) {
	return c.listMatches(ctx, "/api/matches", limit, offset)
}

// UserMatches lists the authenticated user's matches.
func (c *HTTPClient) UserMatches(ctx context.Context, limit, offset int) (*models.MatchesResponse, error) {
	return c.listMatches(ctx, "/api/matches/user", limit, offset)
}

func (c *HTTPClient) listMatches(ctx context.Context, path string, limit, offset int) (*models.MatchesResponse, error) {
	var resp models.MatchesResponse
	url := fmt.Sprintf("%s?limit=%d&offset=%d", path, limit, offset)
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteMatch records the winner of a match, triggering the ELO update
// server-side.
func (c *HTTPClient) CompleteMatch(ctx context.Context, matchID, winnerID string) (*models.Match, error) {
	req := models.CompleteMatchRequest{WinnerID: winnerID}

	var match models.Match
	if err := c.post(ctx, "/api/matches/"+matchID+"/complete", req, &match); err != nil {
		return nil, err
	}
	return &match, nil
}
