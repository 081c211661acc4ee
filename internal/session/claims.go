package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/PlanarStandardMTG/planar-cli/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims mirrors the payload of the session token issued by the backend.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	Elo      int    `json:"elo"`
}

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// DecodeToken decodes the token payload without verifying the signature.
// The client holds no signing key; the backend rejects forged tokens on
// every request, so the decode exists only to project display state.
//
// Every failure mode — wrong segment count, bad padding, non-JSON payload,
// missing or past exp — yields an error; callers treat them all the same
// (clear the token, report logged out).
func DecodeToken(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	if !claims.ExpiresAt.After(timeNow()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// User projects the claims into the profile DTO used for display. The
// result is a view of the token, never a source of truth.
func (c *Claims) User() *models.User {
	return &models.User{
		ID:       c.UserID,
		Username: c.Username,
		Elo:      c.Elo,
		Admin:    c.Admin,
	}
}
