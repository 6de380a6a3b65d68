package repositories

import (
	"context"
	"fmt"

	"github.com/Shamsear/kickoff/models"
	"github.com/jmoiron/sqlx"
)

var participantConstraints = map[string]error{
	"participants_tournament_name_key": ErrEntrantNameConflict,
	"participants_tournament_id_fkey":  ErrTournamentNotFound,
}

type postgresParticipantRepository struct {
	db *sqlx.DB
}

func NewPostgresParticipantRepository(db *sqlx.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (tournament_id, name, email, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, p.TournamentID, p.Name, p.Email, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return constraintError(err, participantConstraints)
	}
	return nil
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	var p models.Participant
	query := `SELECT id, tournament_id, name, email, status, created_at FROM participants WHERE id = $1`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, notFound(err, ErrParticipantNotFound)
	}
	return &p, nil
}

func (r *postgresParticipantRepository) ListByTournament(ctx context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Participant, error) {
	query := `
		SELECT id, tournament_id, name, email, status, created_at
		FROM participants
		WHERE tournament_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY id`

	participants := make([]*models.Participant, 0)
	if err := r.db.SelectContext(ctx, &participants, query, tournamentID, status); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) UpdateStatus(ctx context.Context, id int, status models.RegistrationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE participants SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update participant status: %w", err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) CountByTournament(ctx context.Context, tournamentID int) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM participants WHERE tournament_id = $1`, tournamentID); err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return n, nil
}
