// Package standings folds completed matches into a ranked table and derives
// tournament-wide statistics from it. Everything here is pure: callers load
// the roster and the match list, and get back freshly computed values.
package standings

import (
	"sort"

	"github.com/Shamsear/kickoff/models"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Compute builds the standings table for the roster. Only completed,
// non-tiebreaker matches between two rostered entrants count. Rows are
// ordered by points, goal difference and goals scored, all descending;
// entrants level on all three keep their roster order.
func Compute(entrants []models.Entrant, matches []*models.Match, policy models.ScoringSystem) []models.Standing {
	table := make([]models.Standing, len(entrants))
	index := make(map[int]*models.Standing, len(entrants))
	for i, e := range entrants {
		table[i] = models.Standing{EntrantID: e.ID, Name: e.Name, FormGuide: []models.Outcome{}}
		index[e.ID] = &table[i]
	}

	for _, m := range matches {
		if m == nil || m.Status != models.MatchCompleted || m.IsTiebreaker {
			continue
		}
		home, away := index[m.Entrant1ID], index[m.Entrant2ID]
		if home == nil || away == nil || home == away {
			continue
		}
		goals1, goals2 := m.Goals()
		record(home, goals1, goals2, policy)
		record(away, goals2, goals1, policy)
	}

	for i := range table {
		table[i].GoalDifference = table[i].GoalsFor - table[i].GoalsAgainst
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

func record(s *models.Standing, scored, conceded int, policy models.ScoringSystem) {
	s.MatchesPlayed++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	if conceded == 0 {
		s.CleanSheets++
	}

	outcome := outcomeOf(scored, conceded)
	switch outcome {
	case models.OutcomeWin:
		s.Wins++
	case models.OutcomeDraw:
		s.Draws++
	default:
		s.Losses++
	}
	s.FormGuide = append(s.FormGuide, outcome)

	if policy == models.ScoringGoalBased {
		s.Points += scored
		return
	}
	switch outcome {
	case models.OutcomeWin:
		s.Points += pointsWin
	case models.OutcomeDraw:
		s.Points += pointsDraw
	}
}

func outcomeOf(scored, conceded int) models.Outcome {
	switch {
	case scored > conceded:
		return models.OutcomeWin
	case scored == conceded:
		return models.OutcomeDraw
	default:
		return models.OutcomeLoss
	}
}
