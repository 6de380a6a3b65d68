package standings

import (
	"testing"

	"github.com/Shamsear/kickoff/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Entrant{ID: 1, Name: "A"}
	bob   = models.Entrant{ID: 2, Name: "B"}
	cara  = models.Entrant{ID: 3, Name: "C"}
)

func played(id, e1, e2, s1, s2 int) *models.Match {
	return &models.Match{
		ID:         id,
		Entrant1ID: e1,
		Entrant2ID: e2,
		Score1:     &s1,
		Score2:     &s2,
		Status:     models.MatchCompleted,
	}
}

func TestComputeThreeWayScenario(t *testing.T) {
	t.Parallel()

	matches := []*models.Match{
		played(1, alice.ID, bob.ID, 3, 1),
		played(2, alice.ID, cara.ID, 1, 1),
		played(3, bob.ID, cara.ID, 2, 0),
	}

	table := Compute([]models.Entrant{alice, bob, cara}, matches, models.ScoringWinBased)

	want := []models.Standing{
		{EntrantID: 1, Name: "A", Position: 1, Points: 4, MatchesPlayed: 2, Wins: 1, Draws: 1,
			GoalsFor: 4, GoalsAgainst: 2, GoalDifference: 2, CleanSheets: 0,
			FormGuide: []models.Outcome{models.OutcomeWin, models.OutcomeDraw}},
		{EntrantID: 2, Name: "B", Position: 2, Points: 3, MatchesPlayed: 2, Wins: 1, Losses: 1,
			GoalsFor: 3, GoalsAgainst: 3, GoalDifference: 0, CleanSheets: 1,
			FormGuide: []models.Outcome{models.OutcomeLoss, models.OutcomeWin}},
		{EntrantID: 3, Name: "C", Position: 3, Points: 1, MatchesPlayed: 2, Draws: 1, Losses: 1,
			GoalsFor: 1, GoalsAgainst: 3, GoalDifference: -2, CleanSheets: 0,
			FormGuide: []models.Outcome{models.OutcomeDraw, models.OutcomeLoss}},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeScoringPolicies(t *testing.T) {
	t.Parallel()

	matches := []*models.Match{played(1, alice.ID, bob.ID, 2, 1)}
	roster := []models.Entrant{alice, bob}

	win := Compute(roster, matches, models.ScoringWinBased)
	require.Len(t, win, 2)
	assert.Equal(t, 3, win[0].Points)
	assert.Equal(t, 0, win[1].Points)
	assert.Zero(t, win[0].Draws+win[1].Draws)

	goal := Compute(roster, matches, models.ScoringGoalBased)
	assert.Equal(t, alice.ID, goal[0].EntrantID)
	assert.Equal(t, 2, goal[0].Points)
	assert.Equal(t, 1, goal[1].Points)
	assert.Equal(t, 1, goal[0].Wins)
	assert.Equal(t, 1, goal[1].Losses)
	assert.Equal(t, []models.Outcome{models.OutcomeLoss}, goal[1].FormGuide)
}

func TestComputeUnknownPolicyScoresAsWinBased(t *testing.T) {
	t.Parallel()

	table := Compute([]models.Entrant{alice, bob}, []*models.Match{played(1, 1, 2, 1, 1)}, "")
	assert.Equal(t, 1, table[0].Points)
	assert.Equal(t, 1, table[1].Points)
}

func TestComputeIsIdempotent(t *testing.T) {
	t.Parallel()

	roster := []models.Entrant{alice, bob, cara}
	matches := []*models.Match{
		played(1, 1, 2, 0, 4),
		played(2, 2, 3, 1, 1),
		played(3, 3, 1, 2, 5),
	}
	first := Compute(roster, matches, models.ScoringGoalBased)
	second := Compute(roster, matches, models.ScoringGoalBased)
	assert.Equal(t, first, second)
}

func TestComputeGoalConservation(t *testing.T) {
	t.Parallel()

	roster := []models.Entrant{alice, bob, cara, {ID: 4, Name: "D"}}
	matches := []*models.Match{
		played(1, 1, 2, 3, 2),
		played(2, 3, 4, 0, 0),
		played(3, 1, 3, 1, 4),
		played(4, 2, 4, 7, 1),
	}

	table := Compute(roster, matches, models.ScoringWinBased)
	var gf, ga int
	for _, s := range table {
		assert.Equal(t, s.GoalsFor-s.GoalsAgainst, s.GoalDifference, s.Name)
		gf += s.GoalsFor
		ga += s.GoalsAgainst
	}
	assert.Equal(t, gf, ga)
}

func TestComputeStableForEqualKeys(t *testing.T) {
	t.Parallel()

	dave := models.Entrant{ID: 4, Name: "D"}
	roster := []models.Entrant{cara, alice, dave, bob}
	matches := []*models.Match{
		played(1, cara.ID, alice.ID, 1, 1),
		played(2, dave.ID, bob.ID, 1, 1),
	}

	table := Compute(roster, matches, models.ScoringWinBased)
	got := []int{table[0].EntrantID, table[1].EntrantID, table[2].EntrantID, table[3].EntrantID}
	assert.Equal(t, []int{cara.ID, alice.ID, dave.ID, bob.ID}, got)
	for i, s := range table {
		assert.Equal(t, i+1, s.Position)
	}
}

func TestComputeSkipsUnfinishedAndTiebreakers(t *testing.T) {
	t.Parallel()

	parent := 1
	live := played(2, alice.ID, bob.ID, 5, 0)
	live.Status = models.MatchLive
	scheduled := &models.Match{ID: 3, Entrant1ID: alice.ID, Entrant2ID: bob.ID, Status: models.MatchScheduled}
	tiebreaker := played(4, alice.ID, bob.ID, 1, 0)
	tiebreaker.IsTiebreaker = true
	tiebreaker.ParentTiebreakerMatchID = &parent
	stranger := played(5, alice.ID, 99, 9, 0)

	table := Compute([]models.Entrant{alice, bob}, []*models.Match{
		played(1, alice.ID, bob.ID, 2, 2), live, scheduled, tiebreaker, stranger, nil,
	}, models.ScoringWinBased)

	for _, s := range table {
		assert.Equal(t, 1, s.MatchesPlayed, s.Name)
		assert.Equal(t, 1, s.Points, s.Name)
		assert.Equal(t, 2, s.GoalsFor, s.Name)
	}
}

func TestComputeTreatsMissingScoresAsZero(t *testing.T) {
	t.Parallel()

	m := &models.Match{ID: 1, Entrant1ID: alice.ID, Entrant2ID: bob.ID, Status: models.MatchCompleted}
	three := 3
	m.Score1 = &three

	table := Compute([]models.Entrant{alice, bob}, []*models.Match{m}, models.ScoringWinBased)
	assert.Equal(t, alice.ID, table[0].EntrantID)
	assert.Equal(t, 3, table[0].GoalsFor)
	assert.Equal(t, 1, table[0].CleanSheets)
	assert.Equal(t, 0, table[1].GoalsFor)
	assert.Equal(t, 0, table[1].CleanSheets)
}

func TestComputeIncludesEntrantsWithoutMatches(t *testing.T) {
	t.Parallel()

	table := Compute([]models.Entrant{alice, bob, cara}, []*models.Match{played(1, alice.ID, bob.ID, 0, 1)}, models.ScoringWinBased)
	require.Len(t, table, 3)
	idle := rowFor(t, table, cara.ID)
	// Level on points with alice, cara ranks above her on goal difference.
	assert.Equal(t, 2, idle.Position)
	assert.Equal(t, alice.ID, table[2].EntrantID)
	assert.Zero(t, idle.MatchesPlayed)
	assert.Zero(t, idle.Points)
	assert.Empty(t, idle.FormGuide)
	assert.NotNil(t, idle.FormGuide)
}

func rowFor(t *testing.T, table []models.Standing, entrantID int) models.Standing {
	t.Helper()
	for _, row := range table {
		if row.EntrantID == entrantID {
			return row
		}
	}
	t.Fatalf("entrant %d missing from table", entrantID)
	return models.Standing{}
}
