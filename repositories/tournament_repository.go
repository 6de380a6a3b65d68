package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Shamsear/kickoff/models"
	"github.com/jmoiron/sqlx"
)

const tournamentColumns = `
	id, name, description, organizer_id, type, format, scoring_system, status,
	start_date, registration_deadline, location,
	max_participants, max_teams, max_players_per_team, created_at`

// tournamentRow is the flat table shape; the capacity columns fold into the
// tagged Solo/Team variant.
type tournamentRow struct {
	models.Tournament
	MaxParticipants   *int `db:"max_participants"`
	MaxTeams          *int `db:"max_teams"`
	MaxPlayersPerTeam *int `db:"max_players_per_team"`
}

func (row *tournamentRow) toModel() *models.Tournament {
	t := row.Tournament
	switch t.Type {
	case models.TournamentSolo:
		if row.MaxParticipants != nil {
			t.Solo = &models.SoloTournamentConfig{MaxParticipants: *row.MaxParticipants}
		}
	case models.TournamentTeam:
		if row.MaxTeams != nil && row.MaxPlayersPerTeam != nil {
			t.Team = &models.TeamTournamentConfig{MaxTeams: *row.MaxTeams, MaxPlayersPerTeam: *row.MaxPlayersPerTeam}
		}
	}
	return &t
}

type postgresTournamentRepository struct {
	db *sqlx.DB
}

func NewPostgresTournamentRepository(db *sqlx.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	var maxParticipants, maxTeams, maxPlayers *int
	if t.Solo != nil {
		maxParticipants = &t.Solo.MaxParticipants
	}
	if t.Team != nil {
		maxTeams = &t.Team.MaxTeams
		maxPlayers = &t.Team.MaxPlayersPerTeam
	}

	query := `
		INSERT INTO tournaments (
			name, description, organizer_id, type, format, scoring_system, status,
			start_date, registration_deadline, location,
			max_participants, max_teams, max_players_per_team
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		t.Name, t.Description, t.OrganizerID, t.Type, t.Format, t.ScoringSystem, t.Status,
		t.StartDate, t.RegistrationDeadline, t.Location,
		maxParticipants, maxTeams, maxPlayers,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return constraintError(err, map[string]error{
			"tournaments_organizer_name_key": ErrTournamentNameConflict,
		})
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	var row tournamentRow
	err := r.db.GetContext(ctx, &row, `SELECT`+tournamentColumns+` FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, ErrTournamentNotFound)
	}
	return row.toModel(), nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT` + tournamentColumns + ` FROM tournaments WHERE 1=1`)

	args := []interface{}{}
	placeholder := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.OrganizerID != nil {
		qb.WriteString(" AND organizer_id = " + placeholder(*filter.OrganizerID))
	}
	if filter.Status != nil {
		qb.WriteString(" AND status = " + placeholder(*filter.Status))
	}
	if filter.Type != nil {
		qb.WriteString(" AND type = " + placeholder(*filter.Type))
	}
	qb.WriteString(" ORDER BY start_date DESC NULLS LAST, id DESC")
	if filter.Limit > 0 {
		qb.WriteString(" LIMIT " + placeholder(filter.Limit))
	}
	if filter.Offset > 0 {
		qb.WriteString(" OFFSET " + placeholder(filter.Offset))
	}

	var rows []tournamentRow
	if err := r.db.SelectContext(ctx, &rows, qb.String(), args...); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return tournamentsFromRows(rows), nil
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, id int, status models.TournamentStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update tournament status: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) ListDueToStart(ctx context.Context, now time.Time) ([]*models.Tournament, error) {
	query := `SELECT` + tournamentColumns + `
		FROM tournaments
		WHERE status = $1 AND start_date IS NOT NULL AND start_date <= $2
		ORDER BY start_date, id`

	var rows []tournamentRow
	if err := r.db.SelectContext(ctx, &rows, query, models.StatusRegistrationOpen, now); err != nil {
		return nil, fmt.Errorf("list tournaments due to start: %w", err)
	}
	return tournamentsFromRows(rows), nil
}

func tournamentsFromRows(rows []tournamentRow) []*models.Tournament {
	out := make([]*models.Tournament, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out
}
