package cli

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

// WhoAmI fetches and prints the current user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.client.Me(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("%s (id %s), elo %d", securex.SanitizeText(user.Username), user.ID, user.Elo)
	if user.Admin {
		a.printf(", admin")
	}
	a.printf("\n")
	return nil
}

// AdminUsers lists every registered user. The backend enforces the admin
// requirement; the local check only saves a doomed round trip.
func (a *App) AdminUsers(ctx context.Context) error {
	if !a.isAdmin() {
		a.printf("Admin privileges required.\n")
		return nil
	}

	users, err := a.client.AdminUsers(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	for _, u := range users {
		admin := ""
		if u.Admin {
			admin = "  admin"
		}
		a.printf("%s  %s  elo %d%s\n", u.ID, securex.SanitizeText(u.Username), u.Elo, admin)
	}
	a.printf("%d users.\n", len(users))
	return nil
}
