// Package repositories defines the storage contracts of the tournament
// engine and their Postgres implementations. An in-memory implementation of
// the same contracts lives in repositories/memory.
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Shamsear/kickoff/models"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name conflict for this organizer")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrTeamNotFound           = errors.New("team not found")
	ErrEntrantNameConflict    = errors.New("entrant name already registered in this tournament")
	ErrJerseyNumberConflict   = errors.New("jersey number already used in this team")
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchEntrantInvalid    = errors.New("match references an unknown entrant")
	ErrSubMatchPlayerInvalid  = errors.New("leg references an unknown player")
)

type ListTournamentsFilter struct {
	OrganizerID *int
	Status      *models.TournamentStatus
	Type        *models.TournamentType
	Limit       int
	Offset      int
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error)
	UpdateStatus(ctx context.Context, id int, status models.TournamentStatus) error
	Delete(ctx context.Context, id int) error
	// ListDueToStart returns tournaments still open for registration whose
	// start date is at or before now.
	ListDueToStart(ctx context.Context, now time.Time) ([]*models.Tournament, error)
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Participant, error)
	UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error
	CountByTournament(ctx context.Context, tournamentID int) (int, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	// GetByID loads the team together with its players.
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByTournament(ctx context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Team, error)
	UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error
	CountByTournament(ctx context.Context, tournamentID int) (int, error)
	AddPlayer(ctx context.Context, player *models.Player) error
	ListPlayers(ctx context.Context, teamID int) ([]models.Player, error)
}

// MatchRepository stores fixtures of both kinds. The kind selects the
// team or solo table; ids are only unique within a kind.
type MatchRepository interface {
	// CreateBatch inserts all matches or none and fills in their ids.
	CreateBatch(ctx context.Context, kind models.MatchKind, matches []*models.Match) error
	// GetByID loads a match; team matches come with their legs.
	GetByID(ctx context.Context, kind models.MatchKind, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, kind models.MatchKind, tournamentID int) ([]*models.Match, error)
	CountByTournament(ctx context.Context, kind models.MatchKind, tournamentID int) (int, error)
	// SaveResult writes the result fields of m and replaces every leg of the
	// match, with the participant rows derived from them, by legs. The whole
	// replacement is atomic and serialised per match.
	SaveResult(ctx context.Context, kind models.MatchKind, m *models.Match, legs []models.SubMatch) error
	UpdateStatus(ctx context.Context, kind models.MatchKind, id int, status models.MatchStatus) error
	// Reset returns a match to scheduled, clearing its result and legs.
	Reset(ctx context.Context, kind models.MatchKind, id int) (*models.Match, error)
	Delete(ctx context.Context, kind models.MatchKind, id int) error
	ListSubMatches(ctx context.Context, parentMatchID int) ([]models.SubMatch, error)
	ListMatchParticipants(ctx context.Context, matchID int) ([]models.MatchParticipant, error)
}

// LegParticipants derives the two per-player rows of each leg.
func LegParticipants(matchID int, legs []models.SubMatch) []models.MatchParticipant {
	rows := make([]models.MatchParticipant, 0, len(legs)*2)
	for _, leg := range legs {
		rows = append(rows,
			models.MatchParticipant{MatchID: matchID, SubMatchID: leg.ID, PlayerID: leg.Team1PlayerID, TeamID: leg.Team1ID, Goals: leg.Team1PlayerGoals},
			models.MatchParticipant{MatchID: matchID, SubMatchID: leg.ID, PlayerID: leg.Team2PlayerID, TeamID: leg.Team2ID, Goals: leg.Team2PlayerGoals},
		)
	}
	return rows
}

