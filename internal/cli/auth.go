package cli

import (
	"context"
	"errors"

	"github.com/PlanarStandardMTG/planar-cli/internal/api"
	"github.com/PlanarStandardMTG/planar-cli/internal/cryptox"
	"github.com/PlanarStandardMTG/planar-cli/internal/securex"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, username and password, validates each
// locally, and attempts to create a new account.
//
// Validation failures and throttled attempts are reported without touching
// the network. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if !securex.IsValidEmail(email) {
		a.printf("Invalid email address.\n")
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username (3-20 characters, letters, digits, _ or -)", a.out)
	if err != nil {
		return err
	}
	if !securex.IsValidUsername(username) {
		a.printf("Invalid username.\n")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(password)

	if !securex.IsValidPassword(string(password)) {
		a.printf("Password must be between 8 and 128 characters.\n")
		return nil
	}

	if !a.authLimiter.Allow("register") {
		a.printf("Too many attempts, please wait before trying again.\n")
		return nil
	}

	digest := cryptox.HashPassword(string(password))
	if err := a.client.Register(ctx, email, digest, username); err != nil {
		a.printAPIError(err)
		return err
	}

	a.printf("Account created, you can now log in.\n")
	return nil
}

// Login prompts for credentials, validates them locally, authenticates
// against the backend and installs the returned token into the session.
//
// A successful login resets the auth throttle so earlier failed attempts
// do not count against future ones. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if !securex.IsValidEmail(email) {
		a.printf("Invalid email address.\n")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(password)

	if !securex.IsValidPassword(string(password)) {
		a.printf("Password must be between 8 and 128 characters.\n")
		return nil
	}

	if !a.authLimiter.Allow("login") {
		a.printf("Too many attempts, please wait before trying again.\n")
		return nil
	}

	digest := cryptox.HashPassword(string(password))
	token, err := a.client.Login(ctx, email, digest)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.printf("Login failed: received an unusable token.\n")
		return err
	}

	a.authLimiter.Reset("login")
	if user := a.session.User(); user != nil {
		a.printf("Logged in as %s.\n", user.Username)
	}
	return nil
}

// Logout clears the stored token and the in-memory session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// printAPIError renders an API failure for the user. Server-provided
// messages were already sanitized by the transport layer; transport
// failures map to fixed phrasings that never echo backend internals.
func (a *App) printAPIError(err error) {
	var serverErr *api.ServerError
	switch {
	case errors.Is(err, api.ErrRateLimited):
		a.printf("Too many requests, please slow down.\n")
	case errors.Is(err, api.ErrUnauthorized):
		a.printf("Not authorized, please log in.\n")
	case errors.Is(err, api.ErrNetwork):
		a.printf("Network error occurred.\n")
	case errors.As(err, &serverErr):
		a.printf("Request failed: %s\n", serverErr.Message)
	default:
		a.printf("Request failed: %s\n", securex.SanitizeText(err.Error()))
	}
}
