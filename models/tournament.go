package models

import (
	"errors"
	"fmt"
	"time"
)

// TournamentType says whether a tournament is contested by individuals or teams.
type TournamentType string

const (
	TournamentSolo TournamentType = "solo"
	TournamentTeam TournamentType = "team"
)

// TournamentFormat selects the fixture generator.
type TournamentFormat string

const (
	FormatRoundRobin        TournamentFormat = "round_robin"
	FormatLeague            TournamentFormat = "league"
	FormatSingleElimination TournamentFormat = "single_elimination"
	FormatKnockout          TournamentFormat = "knockout"
	FormatDoubleElimination TournamentFormat = "double_elimination"
	FormatGroupStage        TournamentFormat = "group_stage"
	FormatSwiss             TournamentFormat = "swiss"
)

var knownFormats = map[TournamentFormat]struct{}{
	FormatRoundRobin:        {},
	FormatLeague:            {},
	FormatSingleElimination: {},
	FormatKnockout:          {},
	FormatDoubleElimination: {},
	FormatGroupStage:        {},
	FormatSwiss:             {},
}

// Normalize returns the format itself when it is known and round_robin
// otherwise. The boolean reports whether the input was recognised.
func (f TournamentFormat) Normalize() (TournamentFormat, bool) {
	if _, ok := knownFormats[f]; ok {
		return f, true
	}
	return FormatRoundRobin, false
}

// IsElimination reports whether draws in this format must be settled on the pitch.
func (f TournamentFormat) IsElimination() bool {
	switch f {
	case FormatSingleElimination, FormatKnockout, FormatDoubleElimination:
		return true
	}
	return false
}

// ScoringSystem is the points policy applied by the standings table.
type ScoringSystem string

const (
	ScoringWinBased  ScoringSystem = "win_based"
	ScoringGoalBased ScoringSystem = "goal_based"
)

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	StatusDraft            TournamentStatus = "draft"
	StatusRegistrationOpen TournamentStatus = "registration_open"
	StatusInProgress       TournamentStatus = "in_progress"
	StatusCompleted        TournamentStatus = "completed"
	StatusCancelled        TournamentStatus = "cancelled"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusRegistrationOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SoloTournamentConfig holds the capacity of an individual tournament.
type SoloTournamentConfig struct {
	MaxParticipants int `json:"max_participants" validate:"gte=2"`
}

// TeamTournamentConfig holds the capacity of a team tournament.
type TeamTournamentConfig struct {
	MaxTeams          int `json:"max_teams" validate:"gte=2"`
	MaxPlayersPerTeam int `json:"max_players_per_team" validate:"gte=1"`
}

var (
	ErrTournamentConfigMissing  = errors.New("tournament capacity config is missing")
	ErrTournamentConfigMismatch = errors.New("tournament capacity config does not match tournament type")
	ErrTournamentTypeInvalid    = errors.New("tournament type must be solo or team")
)

type Tournament struct {
	ID                   int              `json:"id" db:"id"`
	Name                 string           `json:"name" db:"name"`
	Description          *string          `json:"description,omitempty" db:"description"`
	OrganizerID          int              `json:"organizer_id" db:"organizer_id"`
	Type                 TournamentType   `json:"type" db:"type"`
	Format               TournamentFormat `json:"format" db:"format"`
	ScoringSystem        ScoringSystem    `json:"scoring_system" db:"scoring_system"`
	Status               TournamentStatus `json:"status" db:"status"`
	StartDate            *time.Time       `json:"start_date,omitempty" db:"start_date"`
	RegistrationDeadline *time.Time       `json:"registration_deadline,omitempty" db:"registration_deadline"`
	Location             *string          `json:"location,omitempty" db:"location"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`

	// Exactly one of these is set, matching Type.
	Solo *SoloTournamentConfig `json:"solo,omitempty" db:"-"`
	Team *TeamTournamentConfig `json:"team,omitempty" db:"-"`
}

// Validate checks the capacity variant against the tournament type.
func (t *Tournament) Validate() error {
	switch t.Type {
	case TournamentSolo:
		if t.Solo == nil {
			return fmt.Errorf("%w: solo tournament needs max_participants", ErrTournamentConfigMissing)
		}
		if t.Team != nil {
			return fmt.Errorf("%w: solo tournament cannot carry team limits", ErrTournamentConfigMismatch)
		}
	case TournamentTeam:
		if t.Team == nil {
			return fmt.Errorf("%w: team tournament needs max_teams and max_players_per_team", ErrTournamentConfigMissing)
		}
		if t.Solo != nil {
			return fmt.Errorf("%w: team tournament cannot carry max_participants", ErrTournamentConfigMismatch)
		}
	default:
		return fmt.Errorf("%w: got %q", ErrTournamentTypeInvalid, t.Type)
	}
	return nil
}

// Capacity is the maximum number of entrants the tournament accepts.
func (t *Tournament) Capacity() int {
	switch {
	case t.Solo != nil:
		return t.Solo.MaxParticipants
	case t.Team != nil:
		return t.Team.MaxTeams
	}
	return 0
}

// MatchKind returns which match table the tournament's fixtures live in.
func (t *Tournament) MatchKind() MatchKind {
	if t.Type == TournamentSolo {
		return MatchKindSolo
	}
	return MatchKindTeam
}

// Room is the broadcast room viewers of this tournament subscribe to.
func (t *Tournament) Room() string {
	return TournamentRoom(t.ID)
}

func TournamentRoom(tournamentID int) string {
	return fmt.Sprintf("tournament_%d", tournamentID)
}
