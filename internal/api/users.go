package api

import (
	"context"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
)

// Me returns the authenticated user's profile.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminUsers lists every user. Requires the admin flag on the session.
func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	var resp models.UsersResponse
	if err := c.get(ctx, "/api/admin/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}
