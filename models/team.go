package models

import "time"

type Team struct {
	ID           int                `json:"id" db:"id"`
	TournamentID int                `json:"tournament_id" db:"tournament_id"`
	Name         string             `json:"name" db:"name"`
	Status       RegistrationStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`

	Players []Player `json:"players,omitempty" db:"-"`
}

func (t *Team) Entrant() Entrant {
	return Entrant{ID: t.ID, Name: t.Name}
}

// Player belongs to exactly one team. Jersey numbers are unique within a team.
type Player struct {
	ID           int       `json:"id" db:"id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	Name         string    `json:"name" db:"name"`
	JerseyNumber *int      `json:"jersey_number,omitempty" db:"jersey_number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
