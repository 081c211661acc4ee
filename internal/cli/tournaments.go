package cli

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

// Tournaments lists the tournaments mirrored from the bracket service.
func (a *App) Tournaments(ctx context.Context) error {
	resp, err := a.client.Tournaments(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if len(resp.Tournaments) == 0 {
		a.printf("No tournaments found.\n")
		return nil
	}

	for _, t := range resp.Tournaments {
		marker := " "
		if t.IsParticipant {
			marker = "*"
		}
		a.printf("%s %s  %s  [%s]  %d players\n",
			marker, t.ID, securex.SanitizeText(t.Name), t.State, t.ParticipantCount)
	}
	a.printf("%d tournaments, * marks the ones you joined.\n", resp.Count)
	return nil
}

// JoinTournament prompts for a tournament id and signs the current user up.
func (a *App) JoinTournament(ctx context.Context) error {
	id, err := a.promptTournamentID()
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	if err := a.client.JoinTournament(ctx, id); err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("Joined tournament %s.\n", id)
	return nil
}

// LeaveTournament prompts for a tournament id and withdraws the current user.
func (a *App) LeaveTournament(ctx context.Context) error {
	id, err := a.promptTournamentID()
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	if err := a.client.LeaveTournament(ctx, id); err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("Left tournament %s.\n", id)
	return nil
}

func (a *App) promptTournamentID() (string, error) {
	id, err := getSimpleText(a.reader, "Enter tournament id", a.out)
	if err != nil {
		return "", err
	}
	if !securex.IsValidUUID(id) {
		a.printf("Tournament id must be a canonical UUID.\n")
		return "", nil
	}
	return id, nil
}
