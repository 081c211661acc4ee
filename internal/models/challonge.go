package models

// ChallongeAuthorization is returned by GET /api/challonge/connect and
// starts the OAuth handshake. State must round-trip through the callback
// untouched.
type ChallongeAuthorization struct {
	AuthorizationURL string `json:"authorizationUrl"`
	State            string `json:"state"`
}

// ChallongeCallbackRequest is the body of POST /api/challonge/callback.
type ChallongeCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// ChallongeCallbackResponse reports the outcome of the code exchange.
type ChallongeCallbackResponse struct {
	Success   bool   `json:"success"`
	Connected bool   `json:"connected"`
	ExpiresAt string `json:"expiresAt"`
}

// ChallongeStatus describes the current account link.
type ChallongeStatus struct {
	Connected      bool   `json:"connected"`
	ExpiresAt      string `json:"expiresAt,omitempty"`
	IsExpired      bool   `json:"isExpired,omitempty"`
	Scope          string `json:"scope,omitempty"`
	ConnectedSince string `json:"connectedSince,omitempty"`
}

// ChallongeRefreshResponse is returned by POST /api/challonge/refresh.
type ChallongeRefreshResponse struct {
	Success   bool   `json:"success"`
	ExpiresAt string `json:"expiresAt"`
	Scope     string `json:"scope"`
}

// ChallongeDisconnectResponse is returned by DELETE /api/challonge/disconnect.
type ChallongeDisconnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
