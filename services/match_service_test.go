package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
)

type squadFixture struct {
	env   *testEnv
	tour  *models.Tournament
	match *models.Match
	home  []int
	away  []int
}

// newSquadFixture sets up a two-team knockout with three players a side and
// its single Final.
func newSquadFixture(t *testing.T, scoring models.ScoringSystem) *squadFixture {
	t.Helper()
	env := newTestEnv(t)
	tour := env.tournament(t, models.TournamentTeam, models.FormatKnockout, scoring)
	ids := env.teams(t, tour.ID, "Reds", "Blues")

	matches, err := env.svc.Fixtures.GenerateFixtures(context.Background(), organizer, tour.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	m := matches[0]

	players := map[int][]int{
		ids[0]: env.players(t, tour.ID, ids[0], "R1", "R2", "R3"),
		ids[1]: env.players(t, tour.ID, ids[1], "B1", "B2", "B3"),
	}
	return &squadFixture{env: env, tour: tour, match: m, home: players[m.Entrant1ID], away: players[m.Entrant2ID]}
}

func (f *squadFixture) legs(goals ...[2]int) []LegInput {
	out := make([]LegInput, len(goals))
	for i, g := range goals {
		out[i] = LegInput{
			Team1PlayerID: f.home[i], Team2PlayerID: f.away[i],
			Team1PlayerGoals: *Score(g[0]), Team2PlayerGoals: *Score(g[1]),
		}
	}
	return out
}

func TestSaveResultThreeLegDrawCreatesTiebreakers(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	ctx := context.Background()
	bestOf3 := models.TiebreakerBestOf3

	in := ResultInput{SubMatches: f.legs([2]int{2, 1}, [2]int{0, 0}, [2]int{1, 3}), TiebreakerType: &bestOf3}
	out, err := f.env.svc.Matches.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, in)
	require.NoError(t, err)

	assert.Equal(t, 4, *out.Match.Score1)
	assert.Equal(t, 4, *out.Match.Score2)
	assert.Nil(t, out.Match.WinnerID)
	assert.Equal(t, models.MatchCompleted, out.Match.Status)
	assert.True(t, out.Match.HasSubMatches)

	require.Len(t, out.Tiebreakers, 3)
	for i, tb := range out.Tiebreakers {
		assert.True(t, tb.IsTiebreaker)
		assert.Equal(t, f.match.ID, *tb.ParentTiebreakerMatchID)
		assert.Equal(t, f.match.Round, tb.Round)
		assert.Equal(t, f.match.MatchNumber+1+i, tb.MatchNumber)
		assert.Equal(t, fmt.Sprintf("Final - Tiebreaker %d", i+1), tb.RoundName)
	}
	assert.Empty(t, out.NextRound)

	// Resubmitting the same draw keeps the existing series.
	again, err := f.env.svc.Matches.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, in)
	require.NoError(t, err)
	assert.Empty(t, again.Tiebreakers)

	all, err := f.env.svc.Matches.ListMatches(ctx, f.tour.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.InDelta(t, 3, testutil.ToFloat64(f.env.metrics.TiebreakersCreated), 0)
	assert.Contains(t, f.env.notifier.types(), realtime.EventTiebreakersCreated)
}

func TestSaveResultReplacesLegs(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringGoalBased)
	ctx := context.Background()

	_, err := f.env.svc.Matches.SaveResult(ctx, organizer, f.tour.ID, f.match.ID,
		ResultInput{SubMatches: f.legs([2]int{1, 0}, [2]int{2, 2}, [2]int{0, 1})})
	require.NoError(t, err)

	out, err := f.env.svc.Matches.SaveResult(ctx, organizer, f.tour.ID, f.match.ID,
		ResultInput{SubMatches: f.legs([2]int{3, 0}, [2]int{1, 1})})
	require.NoError(t, err)
	assert.Equal(t, 4, *out.Match.Score1)
	assert.Equal(t, 1, *out.Match.Score2)
	assert.Equal(t, f.match.Entrant1ID, *out.Match.WinnerID)

	detail, err := f.env.svc.Matches.GetMatch(ctx, f.tour.ID, f.match.ID)
	require.NoError(t, err)
	require.Len(t, detail.SubMatches, 2)
	assert.Equal(t, 3, detail.SubMatches[0].Team1PlayerGoals)
	assert.Len(t, detail.Participants, 4)
}

func TestSaveResultRejectsBeforeWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bestOf1 := models.TiebreakerBestOf1
	bad := ScoreValue("x")

	tests := []struct {
		name  string
		input func(f *squadFixture) ResultInput
		want  error
	}{
		{"non numeric goals", func(*squadFixture) ResultInput {
			return ResultInput{Team1PlayerGoals: &bad, Team2PlayerGoals: Score(1)}
		}, ErrInvalidScore},
		{"player from the other team", func(f *squadFixture) ResultInput {
			legs := f.legs([2]int{1, 0})
			legs[0].Team1PlayerID = f.away[0]
			return ResultInput{SubMatches: legs}
		}, ErrPlayerNotOnTeam},
		{"missing player id", func(f *squadFixture) ResultInput {
			legs := f.legs([2]int{1, 0})
			legs[0].Team2PlayerID = 0
			return ResultInput{SubMatches: legs}
		}, ErrValidationFailed},
		{"unknown tiebreaker type", func(*squadFixture) ResultInput {
			tb := models.TiebreakerType("best_of_5")
			return ResultInput{Team1PlayerGoals: Score(1), Team2PlayerGoals: Score(1), TiebreakerType: &tb}
		}, ErrValidationFailed},
		{"valid", func(*squadFixture) ResultInput {
			return ResultInput{Team1PlayerGoals: Score(1), Team2PlayerGoals: Score(1), TiebreakerType: &bestOf1}
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newSquadFixture(t, models.ScoringWinBased)
			_, err := f.env.svc.Matches.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, tt.input(f))
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)

			m, err := f.env.svc.Matches.GetMatch(ctx, f.tour.ID, f.match.ID)
			require.NoError(t, err)
			assert.Equal(t, models.MatchScheduled, m.Status)
			assert.Nil(t, m.Score1)
		})
	}
}

func TestSaveResultTiebreakerOnlyInKnockouts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	tour := env.tournament(t, models.TournamentSolo, models.FormatLeague, models.ScoringGoalBased)
	env.participants(t, tour.ID, "Ana", "Bo")
	matches, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)

	bestOf1 := models.TiebreakerBestOf1
	_, err = env.svc.Matches.SaveResult(ctx, organizer, tour.ID, matches[0].ID,
		ResultInput{Score1: Score(1), Score2: Score(1), TiebreakerType: &bestOf1})
	assert.ErrorIs(t, err, ErrTiebreakerNotApplicable)

	out, err := env.svc.Matches.SaveResult(ctx, organizer, tour.ID, matches[0].ID, ResultInput{Score1: Score(1), Score2: Score(1)})
	require.NoError(t, err)
	assert.Empty(t, out.Tiebreakers)
	assert.Nil(t, out.Match.WinnerID)
}

func TestTiebreakerWinnerCarriesBracketForward(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	tour := env.tournament(t, models.TournamentSolo, models.FormatKnockout, models.ScoringGoalBased)
	env.participants(t, tour.ID, "A", "B", "C", "D")

	first, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	require.Len(t, first, 2)

	bestOf1 := models.TiebreakerBestOf1
	drawn, err := env.svc.Matches.SaveResult(ctx, organizer, tour.ID, first[0].ID,
		ResultInput{Score1: Score(2), Score2: Score(2), TiebreakerType: &bestOf1})
	require.NoError(t, err)
	require.Len(t, drawn.Tiebreakers, 1)

	decided, err := env.svc.Matches.SaveResult(ctx, organizer, tour.ID, first[1].ID, ResultInput{Score1: Score(3), Score2: Score(0)})
	require.NoError(t, err)
	assert.Empty(t, decided.NextRound, "the drawn match is not settled yet")

	tb := drawn.Tiebreakers[0]
	settled, err := env.svc.Matches.SaveResult(ctx, organizer, tour.ID, tb.ID, ResultInput{Score1: Score(0), Score2: Score(1)})
	require.NoError(t, err)
	require.Len(t, settled.NextRound, 1)

	final := settled.NextRound[0]
	assert.Equal(t, "Round 2", final.RoundName)
	assert.Equal(t, first[0].Entrant2ID, final.Entrant1ID, "the tiebreaker winner goes through")
	assert.Equal(t, first[1].Entrant1ID, final.Entrant2ID)
}

func TestMatchStateMachine(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	ctx := context.Background()
	svc := f.env.svc.Matches

	live, err := svc.StartMatch(ctx, organizer, f.tour.ID, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchLive, live.Status)

	_, err = svc.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, ResultInput{Team1PlayerGoals: Score(2), Team2PlayerGoals: Score(1)})
	require.NoError(t, err)

	_, err = svc.StartMatch(ctx, organizer, f.tour.ID, f.match.ID)
	assert.ErrorIs(t, err, ErrInvalidMatchTransition)

	out, err := svc.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, ResultInput{Team1PlayerGoals: Score(0), Team2PlayerGoals: Score(1)})
	require.NoError(t, err, "completed results can be corrected")
	assert.Equal(t, f.match.Entrant2ID, *out.Match.WinnerID)

	_, err = svc.StartMatch(ctx, organizer+1, f.tour.ID, f.match.ID)
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}

func TestResetMatchClearsResultAndLegs(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	ctx := context.Background()
	svc := f.env.svc.Matches
	notes := "played in the rain"

	_, err := svc.SaveResult(ctx, organizer, f.tour.ID, f.match.ID,
		ResultInput{SubMatches: f.legs([2]int{1, 0}, [2]int{0, 0}), Notes: &notes})
	require.NoError(t, err)

	reset, err := svc.ResetMatch(ctx, organizer, f.tour.ID, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchScheduled, reset.Status)
	assert.Nil(t, reset.Score1)
	assert.Nil(t, reset.Score2)
	assert.Nil(t, reset.WinnerID)
	assert.Nil(t, reset.Notes)
	assert.False(t, reset.HasSubMatches)

	legs, err := f.env.store.Matches().ListSubMatches(ctx, f.match.ID)
	require.NoError(t, err)
	assert.Empty(t, legs)
	rows, err := f.env.store.Matches().ListMatchParticipants(ctx, f.match.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.Contains(t, f.env.notifier.types(), realtime.EventMatchReset)
}

func TestDeleteMatch(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	ctx := context.Background()

	require.NoError(t, f.env.svc.Matches.DeleteMatch(ctx, organizer, f.tour.ID, f.match.ID))
	_, err := f.env.svc.Matches.GetMatch(ctx, f.tour.ID, f.match.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)
	assert.ErrorIs(t, f.env.svc.Matches.DeleteMatch(ctx, organizer, f.tour.ID, f.match.ID), ErrMatchNotFound)
}

func TestMatchesAreScopedByTournament(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	other := f.env.tournament(t, models.TournamentTeam, models.FormatLeague, models.ScoringWinBased)

	_, err := f.env.svc.Matches.GetMatch(context.Background(), other.ID, f.match.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSaveResultBroadcasts(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)

	_, err := f.env.svc.Matches.SaveResult(context.Background(), organizer, f.tour.ID, f.match.ID,
		ResultInput{Team1PlayerGoals: Score(1), Team2PlayerGoals: Score(0)})
	require.NoError(t, err)

	types := f.env.notifier.types()
	assert.Contains(t, types, realtime.EventMatchScoreUpdated)
	assert.Contains(t, types, realtime.EventStandingsUpdated)
	assert.InDelta(t, 1, testutil.ToFloat64(f.env.metrics.ResultsSaved.WithLabelValues("single_leg")), 0)
}

func TestEarlierRoundIsFrozenOnceNextRoundIsDrawn(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.svc.Matches
	tour := env.tournament(t, models.TournamentSolo, models.FormatKnockout, models.ScoringWinBased)
	env.participants(t, tour.ID, "A", "B", "C", "D")

	first, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	require.Len(t, first, 2)

	_, err = svc.SaveResult(ctx, organizer, tour.ID, first[0].ID, ResultInput{Score1: Score(2), Score2: Score(0)})
	require.NoError(t, err)
	out, err := svc.SaveResult(ctx, organizer, tour.ID, first[1].ID, ResultInput{Score1: Score(2), Score2: Score(0)})
	require.NoError(t, err)
	require.Len(t, out.NextRound, 1)
	final := out.NextRound[0]

	_, err = svc.SaveResult(ctx, organizer, tour.ID, first[0].ID, ResultInput{Score1: Score(0), Score2: Score(2)})
	assert.ErrorIs(t, err, ErrInvalidMatchTransition)
	_, err = svc.ResetMatch(ctx, organizer, tour.ID, first[1].ID)
	assert.ErrorIs(t, err, ErrInvalidMatchTransition)
	assert.ErrorIs(t, svc.DeleteMatch(ctx, organizer, tour.ID, first[0].ID), ErrInvalidMatchTransition)

	kept, err := svc.GetMatch(ctx, tour.ID, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first[0].Entrant1ID, *kept.WinnerID)
	kept, err = svc.GetMatch(ctx, tour.ID, first[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, kept.Status)

	// Dropping the Final frees round one; the redrawn Final follows the new winner.
	require.NoError(t, svc.DeleteMatch(ctx, organizer, tour.ID, final.ID))
	out, err = svc.SaveResult(ctx, organizer, tour.ID, first[0].ID, ResultInput{Score1: Score(0), Score2: Score(2)})
	require.NoError(t, err)
	require.Len(t, out.NextRound, 1)
	assert.Equal(t, first[0].Entrant2ID, out.NextRound[0].Entrant1ID)
	assert.Equal(t, first[1].Entrant1ID, out.NextRound[0].Entrant2ID)
}

func TestRedecidedParentDropsItsTiebreakers(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.svc.Matches
	tour := env.tournament(t, models.TournamentSolo, models.FormatKnockout, models.ScoringWinBased)
	env.participants(t, tour.ID, "A", "B", "C", "D")

	first, err := env.svc.Fixtures.GenerateFixtures(ctx, organizer, tour.ID)
	require.NoError(t, err)
	parent := first[0]

	tiebreakers := func() []*models.Match {
		all, err := svc.ListMatches(ctx, tour.ID)
		require.NoError(t, err)
		var out []*models.Match
		for _, m := range all {
			if m.IsTiebreaker {
				out = append(out, m)
			}
		}
		return out
	}

	bestOf3 := models.TiebreakerBestOf3
	drawn, err := svc.SaveResult(ctx, organizer, tour.ID, parent.ID, ResultInput{Score1: Score(1), Score2: Score(1), TiebreakerType: &bestOf3})
	require.NoError(t, err)
	require.Len(t, drawn.Tiebreakers, 3)

	_, err = svc.SaveResult(ctx, organizer, tour.ID, parent.ID, ResultInput{Score1: Score(2), Score2: Score(2)})
	require.NoError(t, err)
	assert.Len(t, tiebreakers(), 3, "a level result keeps the series")

	_, err = svc.SaveResult(ctx, organizer, tour.ID, parent.ID, ResultInput{Score1: Score(3), Score2: Score(1)})
	require.NoError(t, err)
	assert.Empty(t, tiebreakers())
	assert.Contains(t, env.notifier.types(), realtime.EventMatchDeleted)

	bestOf1 := models.TiebreakerBestOf1
	drawn, err = svc.SaveResult(ctx, organizer, tour.ID, parent.ID, ResultInput{Score1: Score(1), Score2: Score(1), TiebreakerType: &bestOf1})
	require.NoError(t, err)
	require.Len(t, drawn.Tiebreakers, 1)

	_, err = svc.ResetMatch(ctx, organizer, tour.ID, parent.ID)
	require.NoError(t, err)
	assert.Empty(t, tiebreakers())
}

func TestClosedTournamentResultsAreFrozen(t *testing.T) {
	t.Parallel()
	f := newSquadFixture(t, models.ScoringWinBased)
	ctx := context.Background()
	svc := f.env.svc.Matches

	_, err := svc.SaveResult(ctx, organizer, f.tour.ID, f.match.ID, ResultInput{Team1PlayerGoals: Score(2), Team2PlayerGoals: Score(0)})
	require.NoError(t, err)
	for _, status := range []models.TournamentStatus{models.StatusRegistrationOpen, models.StatusInProgress, models.StatusCompleted} {
		_, err := f.env.svc.Tournaments.UpdateStatus(ctx, organizer, f.tour.ID, UpdateStatusInput{Status: status})
		require.NoError(t, err)
	}

	_, err = svc.ResetMatch(ctx, organizer, f.tour.ID, f.match.ID)
	assert.ErrorIs(t, err, ErrTournamentClosed)
	assert.ErrorIs(t, svc.DeleteMatch(ctx, organizer, f.tour.ID, f.match.ID), ErrTournamentClosed)

	m, err := svc.GetMatch(ctx, f.tour.ID, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, m.Status)
	assert.Equal(t, f.match.Entrant1ID, *m.WinnerID)
}
