package repositories

import (
	"context"
	"fmt"

	"github.com/Shamsear/kickoff/models"
	"github.com/jmoiron/sqlx"
)

var teamConstraints = map[string]error{
	"teams_tournament_name_key": ErrEntrantNameConflict,
	"teams_tournament_id_fkey":  ErrTournamentNotFound,
	"players_team_jersey_key":   ErrJerseyNumberConflict,
	"players_team_id_fkey":      ErrTeamNotFound,
}

type postgresTeamRepository struct {
	db *sqlx.DB
}

func NewPostgresTeamRepository(db *sqlx.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (tournament_id, name, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, team.TournamentID, team.Name, team.Status).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return constraintError(err, teamConstraints)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	var team models.Team
	query := `SELECT id, tournament_id, name, status, created_at FROM teams WHERE id = $1`
	if err := r.db.GetContext(ctx, &team, query, id); err != nil {
		return nil, notFound(err, ErrTeamNotFound)
	}

	players, err := r.ListPlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Players = players
	return &team, nil
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Team, error) {
	query := `
		SELECT id, tournament_id, name, status, created_at
		FROM teams
		WHERE tournament_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY id`

	teams := make([]*models.Team, 0)
	if err := r.db.SelectContext(ctx, &teams, query, tournamentID, status); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (r *postgresTeamRepository) UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update team status: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) CountByTournament(ctx context.Context, tournamentID int) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM teams WHERE tournament_id = $1`, tournamentID); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return n, nil
}

func (r *postgresTeamRepository) AddPlayer(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (team_id, name, jersey_number)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, player.TeamID, player.Name, player.JerseyNumber).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return constraintError(err, teamConstraints)
	}
	return nil
}

func (r *postgresTeamRepository) ListPlayers(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `
		SELECT id, team_id, name, jersey_number, created_at
		FROM players
		WHERE team_id = $1
		ORDER BY id`

	players := make([]models.Player, 0)
	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}
