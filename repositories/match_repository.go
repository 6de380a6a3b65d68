package repositories

import (
	"context"
	"fmt"

	"github.com/Shamsear/kickoff/models"
	"github.com/jmoiron/sqlx"
)

// matchTable describes where matches of one kind live. Team and solo
// fixtures share every column except the two side references.
type matchTable struct {
	name  string
	side1 string
	side2 string
}

var matchTables = map[models.MatchKind]matchTable{
	models.MatchKindTeam: {name: "matches", side1: "team1_id", side2: "team2_id"},
	models.MatchKindSolo: {name: "solo_matches", side1: "participant1_id", side2: "participant2_id"},
}

func tableFor(kind models.MatchKind) (matchTable, error) {
	t, ok := matchTables[kind]
	if !ok {
		return matchTable{}, fmt.Errorf("unknown match kind %q", kind)
	}
	return t, nil
}

func (t matchTable) columns() string {
	return fmt.Sprintf(`
		id, tournament_id, round, round_name, match_number,
		%s AS entrant1_id, %s AS entrant2_id,
		score1, score2, penalties1, penalties2, status, winner_id,
		scheduled_date, venue, notes, has_sub_matches,
		is_tiebreaker, parent_tiebreaker_match_id, tiebreaker_type,
		created_at, updated_at`, t.side1, t.side2)
}

func (t matchTable) constraints() map[string]error {
	return map[string]error{
		t.name + "_tournament_id_fkey":              ErrTournamentNotFound,
		t.name + "_" + t.side1 + "_fkey":            ErrMatchEntrantInvalid,
		t.name + "_" + t.side2 + "_fkey":            ErrMatchEntrantInvalid,
		t.name + "_winner_id_fkey":                  ErrMatchEntrantInvalid,
		t.name + "_parent_tiebreaker_match_id_fkey": ErrMatchNotFound,
	}
}

var legConstraints = map[string]error{
	"sub_matches_parent_match_id_fkey":  ErrMatchNotFound,
	"sub_matches_team1_player_id_fkey":  ErrSubMatchPlayerInvalid,
	"sub_matches_team2_player_id_fkey":  ErrSubMatchPlayerInvalid,
	"sub_matches_winner_player_id_fkey": ErrSubMatchPlayerInvalid,
	"match_participants_player_id_fkey": ErrSubMatchPlayerInvalid,
}

const subMatchColumns = `
	id, parent_match_id, tournament_id, match_order, team1_id, team2_id,
	team1_player_id, team2_player_id, team1_player_goals, team2_player_goals,
	winner_player_id, status, created_at`

type postgresMatchRepository struct {
	db *sqlx.DB
}

func NewPostgresMatchRepository(db *sqlx.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, kind models.MatchKind, matches []*models.Match) error {
	if len(matches) == 0 {
		return nil
	}
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			tournament_id, round, round_name, match_number, %s, %s,
			status, scheduled_date, venue, notes,
			is_tiebreaker, parent_tiebreaker_match_id, tiebreaker_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`, table.name, table.side1, table.side2)

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, m := range matches {
			err := tx.QueryRowxContext(ctx, query,
				m.TournamentID, m.Round, m.RoundName, m.MatchNumber, m.Entrant1ID, m.Entrant2ID,
				m.Status, m.ScheduledDate, m.Venue, m.Notes,
				m.IsTiebreaker, m.ParentTiebreakerMatchID, m.TiebreakerType,
			).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
			if err != nil {
				return constraintError(err, table.constraints())
			}
			m.Kind = kind
		}
		return nil
	})
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, kind models.MatchKind, id int) (*models.Match, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var m models.Match
	query := `SELECT` + table.columns() + ` FROM ` + table.name + ` WHERE id = $1`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, notFound(err, ErrMatchNotFound)
	}
	m.Kind = kind

	if kind == models.MatchKindTeam {
		legs, err := listSubMatches(ctx, r.db, id)
		if err != nil {
			return nil, err
		}
		m.SubMatches = legs
	}
	return &m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, kind models.MatchKind, tournamentID int) ([]*models.Match, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT` + table.columns() + ` FROM ` + table.name + `
		WHERE tournament_id = $1
		ORDER BY round, match_number, id`

	matches := make([]*models.Match, 0)
	if err := r.db.SelectContext(ctx, &matches, query, tournamentID); err != nil {
		return nil, fmt.Errorf("list %s: %w", table.name, err)
	}
	for _, m := range matches {
		m.Kind = kind
	}
	return matches, nil
}

func (r *postgresMatchRepository) CountByTournament(ctx context.Context, kind models.MatchKind, tournamentID int) (int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table.name+` WHERE tournament_id = $1`, tournamentID); err != nil {
		return 0, fmt.Errorf("count %s: %w", table.name, err)
	}
	return n, nil
}

func (r *postgresMatchRepository) SaveResult(ctx context.Context, kind models.MatchKind, m *models.Match, legs []models.SubMatch) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	if kind != models.MatchKindTeam && len(legs) > 0 {
		return fmt.Errorf("%s cannot have legs", table.name)
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockMatch(ctx, tx, table, m.ID); err != nil {
			return err
		}

		if kind == models.MatchKindTeam {
			if err := deleteLegs(ctx, tx, m.ID); err != nil {
				return err
			}
			for i := range legs {
				if err := insertLeg(ctx, tx, &legs[i]); err != nil {
					return err
				}
			}
			if len(legs) > 0 {
				_, err := tx.NamedExecContext(ctx, `
					INSERT INTO match_participants (match_id, sub_match_id, player_id, team_id, goals)
					VALUES (:match_id, :sub_match_id, :player_id, :team_id, :goals)`,
					LegParticipants(m.ID, legs))
				if err != nil {
					return constraintError(err, legConstraints)
				}
			}
		}

		m.HasSubMatches = len(legs) > 0
		query := fmt.Sprintf(`
			UPDATE %s
			SET score1 = $1, score2 = $2, penalties1 = $3, penalties2 = $4,
				status = $5, winner_id = $6, notes = $7, has_sub_matches = $8,
				updated_at = NOW()
			WHERE id = $9
			RETURNING updated_at`, table.name)
		err := tx.QueryRowxContext(ctx, query,
			m.Score1, m.Score2, m.Penalties1, m.Penalties2,
			m.Status, m.WinnerID, m.Notes, m.HasSubMatches, m.ID,
		).Scan(&m.UpdatedAt)
		if err != nil {
			return constraintError(notFound(err, ErrMatchNotFound), table.constraints())
		}
		m.SubMatches = legs
		return nil
	})
}

func (r *postgresMatchRepository) UpdateStatus(ctx context.Context, kind models.MatchKind, id int, status models.MatchStatus) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `UPDATE `+table.name+` SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update %s status: %w", table.name, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Reset(ctx context.Context, kind models.MatchKind, id int) (*models.Match, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var m models.Match
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockMatch(ctx, tx, table, id); err != nil {
			return err
		}
		if kind == models.MatchKindTeam {
			if err := deleteLegs(ctx, tx, id); err != nil {
				return err
			}
		}
		query := `
			UPDATE ` + table.name + `
			SET score1 = NULL, score2 = NULL, penalties1 = NULL, penalties2 = NULL,
				status = $1, winner_id = NULL, notes = NULL, has_sub_matches = FALSE,
				updated_at = NOW()
			WHERE id = $2
			RETURNING` + table.columns()
		return notFound(tx.GetContext(ctx, &m, query, models.MatchScheduled, id), ErrMatchNotFound)
	})
	if err != nil {
		return nil, err
	}
	m.Kind = kind
	return &m, nil
}

func (r *postgresMatchRepository) Delete(ctx context.Context, kind models.MatchKind, id int) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+table.name+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table.name, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) ListSubMatches(ctx context.Context, parentMatchID int) ([]models.SubMatch, error) {
	return listSubMatches(ctx, r.db, parentMatchID)
}

func (r *postgresMatchRepository) ListMatchParticipants(ctx context.Context, matchID int) ([]models.MatchParticipant, error) {
	rows := make([]models.MatchParticipant, 0)
	query := `
		SELECT id, match_id, sub_match_id, player_id, team_id, goals
		FROM match_participants
		WHERE match_id = $1
		ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, fmt.Errorf("list match participants: %w", err)
	}
	return rows, nil
}

// lockMatch takes the row lock that serialises result writes on one match.
func lockMatch(ctx context.Context, exec SQLExecutor, table matchTable, id int) error {
	var locked int
	err := exec.GetContext(ctx, &locked, `SELECT id FROM `+table.name+` WHERE id = $1 FOR UPDATE`, id)
	return notFound(err, ErrMatchNotFound)
}

func deleteLegs(ctx context.Context, exec SQLExecutor, parentMatchID int) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM match_participants WHERE match_id = $1`, parentMatchID); err != nil {
		return fmt.Errorf("delete match participants: %w", err)
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM sub_matches WHERE parent_match_id = $1`, parentMatchID); err != nil {
		return fmt.Errorf("delete sub matches: %w", err)
	}
	return nil
}

func insertLeg(ctx context.Context, exec SQLExecutor, leg *models.SubMatch) error {
	query := `
		INSERT INTO sub_matches (
			parent_match_id, tournament_id, match_order, team1_id, team2_id,
			team1_player_id, team2_player_id, team1_player_goals, team2_player_goals,
			winner_player_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := exec.QueryRowxContext(ctx, query,
		leg.ParentMatchID, leg.TournamentID, leg.MatchOrder, leg.Team1ID, leg.Team2ID,
		leg.Team1PlayerID, leg.Team2PlayerID, leg.Team1PlayerGoals, leg.Team2PlayerGoals,
		leg.WinnerPlayerID, leg.Status,
	).Scan(&leg.ID, &leg.CreatedAt)
	if err != nil {
		return constraintError(err, legConstraints)
	}
	return nil
}

func listSubMatches(ctx context.Context, exec SQLExecutor, parentMatchID int) ([]models.SubMatch, error) {
	legs := make([]models.SubMatch, 0)
	query := `SELECT` + subMatchColumns + ` FROM sub_matches WHERE parent_match_id = $1 ORDER BY match_order`
	if err := exec.SelectContext(ctx, &legs, query, parentMatchID); err != nil {
		return nil, fmt.Errorf("list sub matches: %w", err)
	}
	return legs, nil
}
