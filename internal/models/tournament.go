package models

// Tournament states reported by the bracket service.
const (
	TournamentPending        = "pending"
	TournamentUnderway       = "underway"
	TournamentAwaitingReview = "awaiting_review"
	TournamentComplete       = "complete"
)

// Tournament is a bracket-service tournament mirrored by the backend.
type Tournament struct {
	ID                    string  `json:"id"`
	ChallongeID           string  `json:"challongeId"`
	UserID                *string `json:"userId"`
	Name                  string  `json:"name"`
	TournamentType        string  `json:"tournamentType"`
	URL                   string  `json:"url"`
	State                 string  `json:"state"`
	StartsAt              string  `json:"startsAt"`
	GameName              string  `json:"gameName"`
	ParticipantCount      int     `json:"participantCount"`
	LastSyncedAt          string  `json:"lastSyncedAt"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
	IsParticipant         bool    `json:"isParticipant,omitempty"`
	UserChallongeUsername *string `json:"userChallongeUsername,omitempty"`
}

// TournamentsResponse is returned by GET /api/challonge/tournaments.
type TournamentsResponse struct {
	Tournaments []Tournament `json:"tournaments"`
	Count       int          `json:"count"`
}
