// Package models holds the data transfer objects of the Planar Standard
// REST contract. The client only reads and writes these over the wire;
// their lifecycle is owned by the backend.
package models

// User is the profile record returned by /api/auth/me and /api/users/me.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Elo      int    `json:"elo"`
	Admin    bool   `json:"admin"`
}

// UsersResponse wraps the admin user listing.
type UsersResponse struct {
	Users []User `json:"users"`
}

// LoginRequest is the body of POST /api/auth/login and /api/auth/register.
// PasswordHash carries the client-side SHA-256 digest, never the plain
// password. Username is only set on registration.
type LoginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Username     string `json:"username,omitempty"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
