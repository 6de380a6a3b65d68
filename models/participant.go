package models

import "time"

// RegistrationStatus tracks whether an entrant made it onto the roster.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
)

// Participant is an individual entrant of a solo tournament.
type Participant struct {
	ID           int                `json:"id" db:"id"`
	TournamentID int                `json:"tournament_id" db:"tournament_id"`
	Name         string             `json:"name" db:"name"`
	Email        *string            `json:"email,omitempty" db:"email"`
	Status       RegistrationStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
}

func (p *Participant) Entrant() Entrant {
	return Entrant{ID: p.ID, Name: p.Name}
}

// Entrant is the view of a participant or team that the fixture generator
// and the standings table work with.
type Entrant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
