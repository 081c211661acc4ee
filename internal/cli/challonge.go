package cli

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

// ChallongeStatus shows whether the account is linked to Challonge and
// when the current token expires.
func (a *App) ChallongeStatus(ctx context.Context) error {
	status, err := a.client.ChallongeStatus(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if !status.Connected {
		a.printf("Challonge account not connected. Use 'connect' to link one.\n")
		return nil
	}

	a.printf("Challonge account connected since %s.\n", status.ConnectedSince)
	if status.IsExpired {
		a.printf("Token expired at %s, use 'refresh'.\n", status.ExpiresAt)
	} else if status.ExpiresAt != "" {
		a.printf("Token valid until %s.\n", status.ExpiresAt)
	}
	if status.Scope != "" {
		a.printf("Scope: %s\n", securex.SanitizeText(status.Scope))
	}
	return nil
}

// ChallongeConnect starts the OAuth handshake: it fetches the authorization
// URL from the backend, retains the state value for the callback, and tells
// the user to open the URL in a browser.
//
// The URL is sanitized before display. A backend that hands out a
// javascript: or data: URL gets an error, not a printed link.
func (a *App) ChallongeConnect(ctx context.Context) error {
	auth, err := a.client.ChallongeConnect(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	safeURL := securex.SanitizeURL(auth.AuthorizationURL)
	if safeURL == "" {
		a.printf("Received an unsafe authorization URL, aborting.\n")
		return nil
	}

	a.guard.Retain(auth.State)

	a.printf("Open this URL in your browser to authorize:\n%s\n", safeURL)
	a.printf("Then run 'callback' with the code and state from the redirect.\n")
	return nil
}

// ChallongeCallback finishes the OAuth handshake. The user pastes the code
// and state query parameters from the redirect URL; the state must match
// the one retained by connect or the exchange is refused.
func (a *App) ChallongeCallback(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter authorization code", a.out)
	if err != nil {
		return err
	}
	state, err := getSimpleText(a.reader, "Enter state", a.out)
	if err != nil {
		return err
	}
	if code == "" || state == "" {
		a.printf("Both code and state are required.\n")
		return nil
	}

	if !a.guard.Verify(state) {
		a.printf("State mismatch, possible CSRF attempt. Start over with 'connect'.\n")
		return nil
	}

	resp, err := a.client.ChallongeCallback(ctx, code, state)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if resp.Connected {
		a.printf("Challonge account connected, token valid until %s.\n", resp.ExpiresAt)
	} else {
		a.printf("Challonge connection failed.\n")
	}
	return nil
}

// ChallongeRefresh exchanges the stored refresh token for a new access token.
func (a *App) ChallongeRefresh(ctx context.Context) error {
	resp, err := a.client.ChallongeRefresh(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("Token refreshed, valid until %s.\n", resp.ExpiresAt)
	return nil
}

// ChallongeDisconnect unlinks the Challonge account.
func (a *App) ChallongeDisconnect(ctx context.Context) error {
	resp, err := a.client.ChallongeDisconnect(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if resp.Message != "" {
		a.printf("%s\n", securex.SanitizeText(resp.Message))
	} else {
		a.printf("Challonge account disconnected.\n")
	}
	return nil
}
