package standings

import "github.com/Shamsear/kickoff/models"

// Summarize computes tournament statistics from the match list and a table
// produced by Compute over the same matches. Tiebreaker matches are ignored
// so the figures agree with the table.
func Summarize(matches []*models.Match, table []models.Standing) models.TournamentStatistics {
	var stats models.TournamentStatistics

	draws := 0
	for _, m := range matches {
		if m == nil || m.Status != models.MatchCompleted || m.IsTiebreaker {
			continue
		}
		g1, g2 := m.Goals()
		stats.CompletedMatches++
		stats.TotalGoals += g1 + g2
		if g1 == g2 {
			draws++
		}
		if g1 == 0 || g2 == 0 {
			stats.MatchesWithShutout++
		}

		if stats.HighestScoringMatch == nil || g1+g2 > stats.HighestScoringMatch.Goals {
			stats.HighestScoringMatch = &models.MatchRecord{MatchID: m.ID, Goals: g1 + g2}
		}
		margin := abs(g1 - g2)
		if stats.BiggestVictory == nil || margin > stats.BiggestVictory.Margin {
			stats.BiggestVictory = &models.MatchRecord{MatchID: m.ID, Margin: margin}
		}
	}

	if stats.CompletedMatches > 0 {
		n := float64(stats.CompletedMatches)
		stats.AvgGoalsPerMatch = float64(stats.TotalGoals) / n
		stats.DrawPercentage = float64(draws) / n * 100
		stats.DecisivePercentage = float64(stats.CompletedMatches-draws) / n * 100
	}

	stats.TopScorer = topScorer(table)
	stats.BestDefense = bestDefense(table)
	stats.MostWins = mostWins(table)
	return stats
}

func topScorer(table []models.Standing) *models.EntrantStat {
	var best *models.Standing
	for i := range table {
		if best == nil || table[i].GoalsFor > best.GoalsFor {
			best = &table[i]
		}
	}
	if best == nil || best.GoalsFor == 0 {
		return nil
	}
	return &models.EntrantStat{
		EntrantID:     best.EntrantID,
		Name:          best.Name,
		Value:         best.GoalsFor,
		MatchesPlayed: best.MatchesPlayed,
		PerMatch:      perMatch(best.GoalsFor, best.MatchesPlayed),
	}
}

// Fewest goals conceded among entrants that have played.
func bestDefense(table []models.Standing) *models.EntrantStat {
	var best *models.Standing
	for i := range table {
		if table[i].MatchesPlayed == 0 {
			continue
		}
		if best == nil || table[i].GoalsAgainst < best.GoalsAgainst {
			best = &table[i]
		}
	}
	if best == nil {
		return nil
	}
	return &models.EntrantStat{
		EntrantID:     best.EntrantID,
		Name:          best.Name,
		Value:         best.GoalsAgainst,
		MatchesPlayed: best.MatchesPlayed,
		CleanSheets:   best.CleanSheets,
	}
}

func mostWins(table []models.Standing) *models.EntrantStat {
	var best *models.Standing
	for i := range table {
		if best == nil || table[i].Wins > best.Wins {
			best = &table[i]
		}
	}
	if best == nil || best.Wins == 0 {
		return nil
	}
	return &models.EntrantStat{
		EntrantID:     best.EntrantID,
		Name:          best.Name,
		Value:         best.Wins,
		MatchesPlayed: best.MatchesPlayed,
		WinPercentage: perMatch(best.Wins, best.MatchesPlayed) * 100,
	}
}

func perMatch(v, played int) float64 {
	if played == 0 {
		return 0
	}
	return float64(v) / float64(played)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
