package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Shamsear/kickoff/brackets"
	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories"
)

// ResultOutcome is a saved result and whatever it set in motion.
type ResultOutcome struct {
	Match       *models.Match   `json:"match"`
	Tiebreakers []*models.Match `json:"tiebreakers,omitempty"`
	NextRound   []*models.Match `json:"next_round,omitempty"`
}

// MatchDetail is a match with its per-player rows.
type MatchDetail struct {
	*models.Match
	Participants []models.MatchParticipant `json:"participants,omitempty"`
}

type MatchService interface {
	ListMatches(ctx context.Context, tournamentID int) ([]*models.Match, error)
	GetMatch(ctx context.Context, tournamentID, matchID int) (*MatchDetail, error)
	SaveResult(ctx context.Context, userID, tournamentID, matchID int, input ResultInput) (*ResultOutcome, error)
	StartMatch(ctx context.Context, userID, tournamentID, matchID int) (*models.Match, error)
	ResetMatch(ctx context.Context, userID, tournamentID, matchID int) (*models.Match, error)
	DeleteMatch(ctx context.Context, userID, tournamentID, matchID int) error
}

type matchService struct {
	tournaments repositories.TournamentRepository
	teams       repositories.TeamRepository
	matches     repositories.MatchRepository
	brackets    *bracketKeeper
	notifier    realtime.Notifier
	metrics     *metrics.Metrics
	logger      *logging.Logger
}

func newMatchService(d Deps, b *bracketKeeper) MatchService {
	return &matchService{
		tournaments: d.Tournaments,
		teams:       d.Teams,
		matches:     d.Matches,
		brackets:    b,
		notifier:    d.Notifier,
		metrics:     d.Metrics,
		logger:      d.Logger.With("service", "match"),
	}
}

// NewMatchService builds a standalone match service. Use New when a
// FixtureService must share its bracket lock.
func NewMatchService(d Deps) MatchService {
	d = d.withDefaults()
	return newMatchService(d, newBracketKeeper(d))
}

// tournamentMatch loads a match through the tournament it belongs to; the
// tournament type selects the match table.
func (s *matchService) tournamentMatch(ctx context.Context, t *models.Tournament, matchID int) (*models.Match, error) {
	m, err := s.matches.GetByID(ctx, t.MatchKind(), matchID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if m.TournamentID != t.ID {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	t, err := getTournament(ctx, s.tournaments, tournamentID)
	if err != nil {
		return nil, err
	}
	list, err := s.matches.ListByTournament(ctx, t.MatchKind(), t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if list == nil {
		return []*models.Match{}, nil
	}
	return list, nil
}

func (s *matchService) GetMatch(ctx context.Context, tournamentID, matchID int) (*MatchDetail, error) {
	t, err := getTournament(ctx, s.tournaments, tournamentID)
	if err != nil {
		return nil, err
	}
	m, err := s.tournamentMatch(ctx, t, matchID)
	if err != nil {
		return nil, err
	}
	detail := &MatchDetail{Match: m}
	if m.Kind == models.MatchKindTeam && m.HasSubMatches {
		rows, err := s.matches.ListMatchParticipants(ctx, m.ID)
		if err != nil {
			return nil, handleRepositoryError(err)
		}
		detail.Participants = rows
	}
	return detail, nil
}

func (s *matchService) SaveResult(ctx context.Context, userID, tournamentID, matchID int, input ResultInput) (*ResultOutcome, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	if input.TiebreakerType != nil && !t.Format.IsElimination() {
		return nil, fmt.Errorf("%w: format is %s", ErrTiebreakerNotApplicable, t.Format)
	}
	m, err := s.tournamentMatch(ctx, t, matchID)
	if err != nil {
		return nil, err
	}
	if m.Kind == models.MatchKindSolo && len(input.SubMatches) > 0 {
		return nil, fmt.Errorf("%w: solo matches have no legs", ErrValidationFailed)
	}

	res, err := resolveResult(m, t.ScoringSystem, input)
	if err != nil {
		return nil, err
	}
	if err := s.checkLegPlayers(ctx, m, res.legs); err != nil {
		return nil, err
	}

	m.Score1, m.Score2 = &res.score1, &res.score2
	m.Penalties1, m.Penalties2 = res.penalties1, res.penalties2
	m.WinnerID = res.winnerID
	m.Status = models.MatchCompleted
	if input.Notes != nil {
		m.Notes = input.Notes
	}
	err = s.brackets.rewrite(ctx, t, m, res.winnerID == nil, func() error {
		if err := s.matches.SaveResult(ctx, m.Kind, m, res.legs); err != nil {
			return handleRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ResultsSaved.WithLabelValues(string(res.mode)).Inc()
	s.logger.InfoContext(ctx, "match result saved",
		"tournament_id", t.ID, "match_id", m.ID, "mode", res.mode,
		"score1", res.score1, "score2", res.score2, "legs", len(res.legs))

	outcome := &ResultOutcome{Match: m}

	if res.drawn() && input.TiebreakerType != nil && !m.IsTiebreaker {
		series, err := s.brackets.tiebreakers(ctx, t, m, *input.TiebreakerType)
		if err != nil {
			s.logger.ErrorContext(ctx, "tiebreaker creation failed", "tournament_id", t.ID, "match_id", m.ID, "error", err)
		}
		outcome.Tiebreakers = series
	}

	if t.Format.IsElimination() {
		next, err := s.brackets.advance(ctx, t)
		switch {
		case err == nil:
			outcome.NextRound = next
		case errors.Is(err, brackets.ErrRoundIncomplete), errors.Is(err, brackets.ErrBracketComplete):
			s.logger.DebugContext(ctx, "bracket not advanced", "tournament_id", t.ID, "reason", err)
		default:
			s.logger.WarnContext(ctx, "bracket advancement failed", "tournament_id", t.ID, "error", err)
		}
	}

	s.notifier.Notify(ctx, t.ID, realtime.EventMatchScoreUpdated, m)
	s.notifier.Notify(ctx, t.ID, realtime.EventStandingsUpdated, map[string]int{"tournament_id": t.ID})
	return outcome, nil
}

// checkLegPlayers makes sure each leg fields a player of the right team.
func (s *matchService) checkLegPlayers(ctx context.Context, m *models.Match, legs []models.SubMatch) error {
	if len(legs) == 0 {
		return nil
	}
	home, err := s.playerIDs(ctx, m.Entrant1ID)
	if err != nil {
		return err
	}
	away, err := s.playerIDs(ctx, m.Entrant2ID)
	if err != nil {
		return err
	}
	for _, leg := range legs {
		if !slices.Contains(home, leg.Team1PlayerID) {
			return fmt.Errorf("%w: leg %d player %d is not on team %d", ErrPlayerNotOnTeam, leg.MatchOrder, leg.Team1PlayerID, m.Entrant1ID)
		}
		if !slices.Contains(away, leg.Team2PlayerID) {
			return fmt.Errorf("%w: leg %d player %d is not on team %d", ErrPlayerNotOnTeam, leg.MatchOrder, leg.Team2PlayerID, m.Entrant2ID)
		}
	}
	return nil
}

func (s *matchService) playerIDs(ctx context.Context, teamID int) ([]int, error) {
	players, err := s.teams.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids, nil
}

func (s *matchService) StartMatch(ctx context.Context, userID, tournamentID, matchID int) (*models.Match, error) {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	m, err := s.tournamentMatch(ctx, t, matchID)
	if err != nil {
		return nil, err
	}
	switch m.Status {
	case models.MatchLive:
		return m, nil
	case models.MatchCompleted:
		return nil, fmt.Errorf("%w: match %d is already completed, reset it first", ErrInvalidMatchTransition, m.ID)
	}
	if err := s.matches.UpdateStatus(ctx, m.Kind, m.ID, models.MatchLive); err != nil {
		return nil, handleRepositoryError(err)
	}
	m.Status = models.MatchLive
	s.notifier.Notify(ctx, t.ID, realtime.EventMatchStarted, m)
	return m, nil
}

func (s *matchService) ResetMatch(ctx context.Context, userID, tournamentID, matchID int) (*models.Match, error) {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	m, err := s.tournamentMatch(ctx, t, matchID)
	if err != nil {
		return nil, err
	}
	var reset *models.Match
	err = s.brackets.rewrite(ctx, t, m, false, func() error {
		var err error
		if reset, err = s.matches.Reset(ctx, m.Kind, m.ID); err != nil {
			return handleRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "match reset", "tournament_id", t.ID, "match_id", m.ID, "previous_status", m.Status)
	s.notifier.Notify(ctx, t.ID, realtime.EventMatchReset, reset)
	s.notifier.Notify(ctx, t.ID, realtime.EventStandingsUpdated, map[string]int{"tournament_id": t.ID})
	return reset, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, userID, tournamentID, matchID int) error {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return err
	}
	if isClosed(t) {
		return fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	m, err := s.tournamentMatch(ctx, t, matchID)
	if err != nil {
		return err
	}
	err = s.brackets.rewrite(ctx, t, m, false, func() error {
		if err := s.matches.Delete(ctx, m.Kind, m.ID); err != nil {
			return handleRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "match deleted", "tournament_id", t.ID, "match_id", m.ID)
	s.notifier.Notify(ctx, t.ID, realtime.EventMatchDeleted, map[string]int{"tournament_id": t.ID, "match_id": m.ID})
	s.notifier.Notify(ctx, t.ID, realtime.EventStandingsUpdated, map[string]int{"tournament_id": t.ID})
	return nil
}
