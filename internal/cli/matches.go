package cli

import (
	"context"
	"strconv"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

const defaultPageSize = 20

// Matches lists recent matches across all players, newest first.
func (a *App) Matches(ctx context.Context) error {
	return a.listMatches(ctx, a.client.Matches)
}

// MyMatches lists the current user's matches.
func (a *App) MyMatches(ctx context.Context) error {
	return a.listMatches(ctx, a.client.UserMatches)
}

func (a *App) listMatches(ctx context.Context, fetch func(ctx context.Context, limit, offset int) (*models.MatchesResponse, error)) error {
	offsetText, err := getSimpleText(a.reader, "Enter offset (empty for 0)", a.out)
	if err != nil {
		return err
	}
	offset := 0
	if offsetText != "" {
		offset, err = strconv.Atoi(offsetText)
		if err != nil || offset < 0 {
			a.printf("Offset must be a non-negative number.\n")
			return nil
		}
	}

	resp, err := fetch(ctx, defaultPageSize, offset)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if len(resp.Matches) == 0 {
		a.printf("No matches found.\n")
		return nil
	}

	for _, m := range resp.Matches {
		a.printMatch(&m)
	}
	a.printf("Showing %d of %d matches", len(resp.Matches), resp.Pagination.Total)
	if resp.Pagination.HasMore {
		a.printf(" (more available, offset %d)", resp.Pagination.Offset+resp.Pagination.Limit)
	}
	a.printf("\n")
	return nil
}

func (a *App) printMatch(m *models.Match) {
	p1, p2 := m.Player1ID, m.Player2ID
	if m.Player1 != nil {
		p1 = securex.SanitizeText(m.Player1.Username)
	}
	if m.Player2 != nil {
		p2 = securex.SanitizeText(m.Player2.Username)
	}

	if m.Winner == nil {
		a.printf("%s  %s vs %s  (in progress)\n", m.ID, p1, p2)
		return
	}

	result := "draw"
	switch *m.Winner {
	case m.Player1ID:
		result = "winner: " + p1
	case m.Player2ID:
		result = "winner: " + p2
	}
	a.printf("%s  %s vs %s  %s\n", m.ID, p1, p2, result)
	if m.Player1EloChange != nil && m.Player2EloChange != nil {
		a.printf("    elo: %+d / %+d\n", *m.Player1EloChange, *m.Player2EloChange)
	}
}

// CreateMatch prompts for both player ids and records a new match.
// Both ids must be canonical UUIDs; nothing is sent otherwise.
func (a *App) CreateMatch(ctx context.Context) error {
	player1, err := getSimpleText(a.reader, "Enter player 1 id", a.out)
	if err != nil {
		return err
	}
	player2, err := getSimpleText(a.reader, "Enter player 2 id", a.out)
	if err != nil {
		return err
	}
	if !securex.IsValidUUID(player1) || !securex.IsValidUUID(player2) {
		a.printf("Player ids must be canonical UUIDs.\n")
		return nil
	}

	match, err := a.client.CreateMatch(ctx, player1, player2)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("Match created: %s\n", match.ID)
	return nil
}

// CompleteMatch prompts for a match id and the winner id and records the
// result. Ids must be canonical UUIDs.
func (a *App) CompleteMatch(ctx context.Context) error {
	matchID, err := getSimpleText(a.reader, "Enter match id", a.out)
	if err != nil {
		return err
	}
	winnerID, err := getSimpleText(a.reader, "Enter winner id", a.out)
	if err != nil {
		return err
	}
	if !securex.IsValidUUID(matchID) || !securex.IsValidUUID(winnerID) {
		a.printf("Ids must be canonical UUIDs.\n")
		return nil
	}

	match, err := a.client.CompleteMatch(ctx, matchID, winnerID)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	a.printMatch(match)
	return nil
}
