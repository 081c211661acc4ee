package models

// Match is a recorded game between two players. Winner and the ELO deltas
// stay nil until the match is completed.
type Match struct {
	ID               string  `json:"id"`
	Player1ID        string  `json:"player1Id"`
	Player2ID        string  `json:"player2Id"`
	Winner           *string `json:"winner"`
	Player1EloChange *int    `json:"player1EloChange"`
	Player2EloChange *int    `json:"player2EloChange"`
	CreatedAt        string  `json:"createdAt"`
	CompletedAt      *string `json:"completedAt"`
	Player1          *User   `json:"player1,omitempty"`
	Player2          *User   `json:"player2,omitempty"`
}

// CreateMatchRequest is the body of POST /api/matches. Both ids must be
// canonical UUIDs.
type CreateMatchRequest struct {
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
}

// CompleteMatchRequest is the body of POST /api/matches/:id/complete.
type CompleteMatchRequest struct {
	WinnerID string `json:"winnerId"`
}

// Pagination describes the window of a paginated listing.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// MatchesResponse is returned by GET /api/matches and /api/matches/user.
type MatchesResponse struct {
	Matches    []Match    `json:"matches"`
	Pagination Pagination `json:"pagination"`
}
