package services

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
)

func TestGenerateFixturesRoundRobin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	tour := env.tournament(t, models.TournamentSolo, models.FormatRoundRobin, models.ScoringWinBased)
	env.participants(t, tour.ID, "A", "B", "C", "D")

	matches, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	require.Len(t, matches, 6)

	seen := map[[2]int]bool{}
	for i, m := range matches {
		assert.Equal(t, i+1, m.MatchNumber)
		assert.Equal(t, models.MatchKindSolo, m.Kind)
		assert.NotZero(t, m.ID)
		pair := [2]int{min(m.Entrant1ID, m.Entrant2ID), max(m.Entrant1ID, m.Entrant2ID)}
		assert.False(t, seen[pair], "pair %v repeated", pair)
		seen[pair] = true
	}

	_, err = env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	assert.ErrorIs(t, err, ErrFixturesAlreadyGenerated)

	assert.InDelta(t, 6, testutil.ToFloat64(env.metrics.FixturesGenerated.WithLabelValues("round_robin")), 0)
	assert.Contains(t, env.notifier.types(), realtime.EventFixturesGenerated)
}

func TestGenerateFixturesNeedsTwoEntrants(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tour := env.tournament(t, models.TournamentTeam, models.FormatKnockout, models.ScoringWinBased)
	env.teams(t, tour.ID, "Lonely")

	_, err := env.svc.Fixtures.GenerateFixtures(context.Background(), organizer, tour.ID)
	assert.ErrorIs(t, err, ErrInsufficientEntrants)

	n, err := env.store.Matches().CountByTournament(context.Background(), models.MatchKindTeam, tour.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGenerateFixturesOnlyForOrganizer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tour := env.tournament(t, models.TournamentTeam, models.FormatKnockout, models.ScoringWinBased)
	env.teams(t, tour.ID, "Reds", "Blues")

	_, err := env.svc.Fixtures.GenerateFixtures(context.Background(), organizer+1, tour.ID)
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}

func TestKnockoutOfFiveAdvancesFromResults(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	tour := env.tournament(t, models.TournamentTeam, models.FormatKnockout, models.ScoringWinBased)
	env.teams(t, tour.ID, "A", "B", "C", "D", "E")

	first, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	require.Len(t, first, 2, "five entrants give two matches and a bye")
	for _, m := range first {
		assert.Equal(t, "Quarter-Final", m.RoundName, "three rounds are needed for five entrants")
	}

	_, err = env.svc.Fixtures.AdvanceBracket(ctx, organizer, tour.ID)
	assert.ErrorIs(t, err, ErrRoundIncomplete)

	out := env.homeWin(t, tour.ID, first[0])
	assert.Empty(t, out.NextRound, "round one is still open")

	out = env.homeWin(t, tour.ID, first[1])
	require.Len(t, out.NextRound, 1, "two winners and the bye make three entrants")
	semi := out.NextRound[0]
	assert.Equal(t, 2, semi.Round)
	assert.Equal(t, "Semi-Final", semi.RoundName)
	assert.Equal(t, 3, semi.MatchNumber)
	assert.Equal(t, first[0].Entrant1ID, semi.Entrant1ID)
	assert.Equal(t, first[1].Entrant1ID, semi.Entrant2ID)

	out = env.homeWin(t, tour.ID, semi)
	require.Len(t, out.NextRound, 1)
	final := out.NextRound[0]
	assert.Equal(t, "Final", final.RoundName)
	assert.Equal(t, semi.Entrant1ID, final.Entrant1ID)

	played := map[int]bool{}
	for _, m := range first {
		played[m.Entrant1ID], played[m.Entrant2ID] = true, true
	}
	assert.False(t, played[final.Entrant2ID], "the round one bye meets the semi-final winner")

	out = env.homeWin(t, tour.ID, final)
	assert.Empty(t, out.NextRound)
	_, err = env.svc.Fixtures.AdvanceBracket(ctx, organizer, tour.ID)
	assert.ErrorIs(t, err, ErrBracketComplete)

	all, err := env.svc.Matches.ListMatches(ctx, tour.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.InDelta(t, 2, testutil.ToFloat64(env.metrics.BracketRounds), 0)
}

func TestAdvanceBracketIsSerialised(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	tour := env.tournament(t, models.TournamentSolo, models.FormatSingleElimination, models.ScoringGoalBased)
	env.participants(t, tour.ID, "A", "B", "C", "D")

	first, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	// Write results straight to the store so nothing advances yet.
	for _, m := range first {
		m.Score1, m.Score2 = intPtr(2), intPtr(0)
		m.WinnerID = intPtr(m.Entrant1ID)
		m.Status = models.MatchCompleted
		require.NoError(t, env.store.Matches().SaveResult(ctx, m.Kind, m, nil))
	}

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := env.svc.Fixtures.AdvanceBracket(ctx, organizer, tour.ID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	all, err := env.svc.Matches.ListMatches(ctx, tour.ID)
	require.NoError(t, err)
	require.Len(t, roundOf(all, 2), 1)
	assert.Equal(t, "Round 2", roundOf(all, 2)[0].RoundName)
}

func TestAdvanceBracketRejectsOtherFormats(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	league := env.tournament(t, models.TournamentSolo, models.FormatLeague, models.ScoringWinBased)
	env.participants(t, league.ID, "A", "B")
	_, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, league.ID)
	require.NoError(t, err)
	_, err = env.svc.Fixtures.AdvanceBracket(ctx, organizer, league.ID)
	assert.ErrorIs(t, err, ErrBracketNotElimination)

	swiss := env.tournament(t, models.TournamentSolo, models.FormatSwiss, models.ScoringWinBased)
	env.participants(t, swiss.ID, "A", "B")
	_, err = env.svc.Fixtures.AdvanceBracket(ctx, organizer, swiss.ID)
	assert.ErrorIs(t, err, ErrSwissPairingUnsupported)

	knockout := env.tournament(t, models.TournamentSolo, models.FormatKnockout, models.ScoringWinBased)
	_, err = env.svc.Fixtures.AdvanceBracket(ctx, organizer, knockout.ID)
	assert.ErrorIs(t, err, ErrFixturesNotGenerated)
}
