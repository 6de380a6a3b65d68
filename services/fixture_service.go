package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Shamsear/kickoff/brackets"
	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories"
)

type FixtureService interface {
	// GenerateFixtures draws the opening fixtures from the approved roster.
	// It runs once per tournament.
	GenerateFixtures(ctx context.Context, userID, tournamentID int) ([]*models.Match, error)
	// AdvanceBracket appends the next elimination round once the current one
	// is decided.
	AdvanceBracket(ctx context.Context, userID, tournamentID int) ([]*models.Match, error)
}

// bracketKeeper owns every write that numbers new matches of a tournament:
// the opening draw, later elimination rounds and tiebreaker series. Each
// runs under the tournament's lock and re-reads the stored matches first.
type bracketKeeper struct {
	matches  repositories.MatchRepository
	entrants repositories.EntrantLister
	notifier realtime.Notifier
	metrics  *metrics.Metrics
	logger   *logging.Logger
	now      func() time.Time
	rand     func() *rand.Rand
	locks    *keyedMutex
}

func newBracketKeeper(d Deps) *bracketKeeper {
	return &bracketKeeper{
		matches:  d.Matches,
		entrants: d.Entrants,
		notifier: d.Notifier,
		metrics:  d.Metrics,
		logger:   d.Logger.With("service", "fixtures"),
		now:      d.Now,
		rand:     d.Rand,
		locks:    newKeyedMutex(),
	}
}

func (b *bracketKeeper) draw() *rand.Rand {
	if b.rand == nil {
		return nil
	}
	return b.rand()
}

func (b *bracketKeeper) generate(ctx context.Context, t *models.Tournament) ([]*models.Match, error) {
	unlock := b.locks.lock(t.ID)
	defer unlock()

	kind := t.MatchKind()
	existing, err := b.matches.CountByTournament(ctx, kind, t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: tournament %d has %d matches", ErrFixturesAlreadyGenerated, t.ID, existing)
	}

	roster, err := b.entrants.ListEntrants(ctx, t)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if _, known := brackets.ForFormat(t.Format); !known {
		b.logger.WarnContext(ctx, "unknown tournament format, generating round robin", "tournament_id", t.ID, "format", t.Format)
	}

	matches, err := brackets.Generate(ctx, brackets.GenerateBracketParams{
		Tournament: t,
		Entrants:   roster,
		Rand:       b.draw(),
		Now:        b.now(),
	})
	if err != nil {
		return nil, err
	}
	if err := b.matches.CreateBatch(ctx, kind, matches); err != nil {
		return nil, handleRepositoryError(err)
	}

	b.metrics.FixturesGenerated.WithLabelValues(string(t.Format)).Add(float64(len(matches)))
	b.logger.InfoContext(ctx, "fixtures generated", "tournament_id", t.ID, "format", t.Format, "entrants", len(roster), "matches", len(matches))
	b.notifier.Notify(ctx, t.ID, realtime.EventFixturesGenerated, map[string]any{"tournament_id": t.ID, "matches": matches})
	return matches, nil
}

// advance appends the next round. NextRound only ever pairs the round after
// the latest stored one, so a second caller holding the lock after the
// first finds the round already present and gets ErrRoundIncomplete.
func (b *bracketKeeper) advance(ctx context.Context, t *models.Tournament) ([]*models.Match, error) {
	unlock := b.locks.lock(t.ID)
	defer unlock()

	kind := t.MatchKind()
	stored, err := b.matches.ListByTournament(ctx, kind, t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	roster, err := b.entrants.ListEntrants(ctx, t)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	pairings, err := brackets.NextRound(t, roster, stored)
	if err != nil {
		return nil, err
	}
	matches := brackets.BuildMatches(t, pairings, maxMatchNumber(stored)+1, b.now())
	if err := b.matches.CreateBatch(ctx, kind, matches); err != nil {
		return nil, handleRepositoryError(err)
	}

	b.metrics.BracketRounds.Inc()
	round := 0
	if len(matches) > 0 {
		round = matches[0].Round
	}
	b.logger.InfoContext(ctx, "bracket advanced", "tournament_id", t.ID, "round", round, "matches", len(matches))
	b.notifier.Notify(ctx, t.ID, realtime.EventBracketAdvanced, map[string]any{"tournament_id": t.ID, "round": round, "matches": matches})
	return matches, nil
}

// tiebreakers creates the series settling a drawn parent match unless one
// already exists.
func (b *bracketKeeper) tiebreakers(ctx context.Context, t *models.Tournament, parent *models.Match, kind models.TiebreakerType) ([]*models.Match, error) {
	unlock := b.locks.lock(t.ID)
	defer unlock()

	stored, err := b.matches.ListByTournament(ctx, parent.Kind, t.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTiebreakerCreation, err)
	}
	for _, m := range stored {
		if m.ParentTiebreakerMatchID != nil && *m.ParentTiebreakerMatchID == parent.ID {
			return nil, nil
		}
	}

	series, err := brackets.TiebreakerMatches(parent, kind, maxMatchNumber(stored)+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTiebreakerCreation, err)
	}
	if err := b.matches.CreateBatch(ctx, parent.Kind, series); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTiebreakerCreation, err)
	}

	b.metrics.TiebreakersCreated.Add(float64(len(series)))
	b.logger.InfoContext(ctx, "tiebreakers created", "tournament_id", t.ID, "parent_match_id", parent.ID, "type", kind, "matches", len(series))
	b.notifier.Notify(ctx, t.ID, realtime.EventTiebreakersCreated, map[string]any{"parent_match_id": parent.ID, "matches": series})
	return series, nil
}

// rewrite runs write, which changes or clears the result of m, under the
// tournament's lock. It refuses when a later elimination round was already
// drawn from the current results. The tiebreaker series of m is dropped
// first unless keepSeries is set.
func (b *bracketKeeper) rewrite(ctx context.Context, t *models.Tournament, m *models.Match, keepSeries bool, write func() error) error {
	unlock := b.locks.lock(t.ID)
	defer unlock()

	stored, err := b.matches.ListByTournament(ctx, m.Kind, t.ID)
	if err != nil {
		return handleRepositoryError(err)
	}

	var series []*models.Match
	for _, other := range stored {
		if other.IsTiebreaker {
			if other.ParentTiebreakerMatchID != nil && *other.ParentTiebreakerMatchID == m.ID {
				series = append(series, other)
			}
			continue
		}
		if t.Format.IsElimination() && other.Round > m.Round {
			return fmt.Errorf("%w: round %d was drawn from round %d results", ErrInvalidMatchTransition, other.Round, m.Round)
		}
	}

	if !keepSeries {
		for _, tb := range series {
			if err := b.matches.Delete(ctx, tb.Kind, tb.ID); err != nil && !errors.Is(err, repositories.ErrMatchNotFound) {
				return handleRepositoryError(err)
			}
			b.notifier.Notify(ctx, t.ID, realtime.EventMatchDeleted, map[string]int{"tournament_id": t.ID, "match_id": tb.ID})
		}
		if len(series) > 0 {
			b.logger.InfoContext(ctx, "tiebreakers dropped", "tournament_id", t.ID, "parent_match_id", m.ID, "matches", len(series))
		}
	}
	return write()
}

type fixtureService struct {
	tournaments repositories.TournamentRepository
	brackets    *bracketKeeper
}

func newFixtureService(d Deps, b *bracketKeeper) FixtureService {
	return &fixtureService{tournaments: d.Tournaments, brackets: b}
}

// NewFixtureService builds a standalone fixture service. Use New when a
// MatchService must share its bracket lock.
func NewFixtureService(d Deps) FixtureService {
	d = d.withDefaults()
	return newFixtureService(d, newBracketKeeper(d))
}

func (s *fixtureService) GenerateFixtures(ctx context.Context, userID, tournamentID int) ([]*models.Match, error) {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	return s.brackets.generate(ctx, t)
}

func (s *fixtureService) AdvanceBracket(ctx context.Context, userID, tournamentID int) ([]*models.Match, error) {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrTournamentClosed, t.Status)
	}
	matches, err := s.brackets.advance(ctx, t)
	if errors.Is(err, brackets.ErrBracketNotStarted) {
		return nil, fmt.Errorf("%w: %w", ErrFixturesNotGenerated, err)
	}
	return matches, err
}
