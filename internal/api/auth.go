package api

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// Login exchanges credentials for a session token. passwordHash is the
// client-side digest, never the plain password.
func (c *HTTPClient) Login(ctx context.Context, email, passwordHash string) (string, error) {
	req := models.LoginRequest{Email: email, PasswordHash: passwordHash}

	var resp models.LoginResponse
	if err := c.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. The caller logs in separately afterwards.
func (c *HTTPClient) Register(ctx context.Context, email, passwordHash, username string) error {
	req := models.LoginRequest{Email: email, PasswordHash: passwordHash, Username: username}
	return c.post(ctx, "/api/auth/register", req, nil)
}
