package brackets

import (
	"fmt"
	"slices"

	"github.com/Shamsear/kickoff/models"
)

// NextRound derives the next elimination round from stored results. The
// winners of the latest round are paired in match order, followed by the
// entrant who sat that round out on a bye. Tiebreaker matches only serve to
// settle drawn parents and never form rounds of their own.
func NextRound(t *models.Tournament, roster []models.Entrant, matches []*models.Match) ([]*BracketMatch, error) {
	switch t.Format {
	case models.FormatSingleElimination, models.FormatKnockout, models.FormatDoubleElimination:
	case models.FormatSwiss:
		return nil, ErrSwissPairingUnsupported
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotElimination, t.Format)
	}

	rounds, tiebreakers := splitRounds(matches)
	if len(rounds) == 0 {
		return nil, ErrBracketNotStarted
	}

	latest := slices.Max(mapsKeys(rounds))
	alive := entrantIDs(roster)
	for r := 1; r <= latest; r++ {
		played := rounds[r]
		next := make([]int, 0, len(played)+1)
		for _, m := range played {
			winner, ok := MatchWinner(m, tiebreakers[m.ID])
			if !ok {
				return nil, fmt.Errorf("%w: round %d match %d", ErrRoundIncomplete, r, m.MatchNumber)
			}
			next = append(next, winner)
		}
		next = append(next, byes(alive, played)...)
		alive = next
	}

	if len(alive) < 2 {
		return nil, ErrBracketComplete
	}

	prefix := ""
	if t.Format == models.FormatDoubleElimination {
		prefix = winnersPrefix
	}
	round := latest + 1
	name := prefix + eliminationRoundName(t, round, TotalRounds(len(roster)))
	return pairRound(alive, round, name), nil
}

// MatchWinner returns the entrant who goes through from a completed match.
// A level match is settled by its tiebreaker series.
func MatchWinner(m *models.Match, tiebreakers []*models.Match) (int, bool) {
	if m.Status != models.MatchCompleted {
		return 0, false
	}
	if m.WinnerID != nil {
		return *m.WinnerID, true
	}
	if len(tiebreakers) == 0 {
		return 0, false
	}

	games := len(tiebreakers)
	if kind := tiebreakers[0].TiebreakerType; kind != nil && kind.Games() > 0 {
		games = kind.Games()
	}
	needed := games/2 + 1

	wins := make(map[int]int, 2)
	for _, tb := range tiebreakers {
		if tb.Status != models.MatchCompleted || tb.WinnerID == nil {
			continue
		}
		wins[*tb.WinnerID]++
		if wins[*tb.WinnerID] >= needed {
			return *tb.WinnerID, true
		}
	}
	return 0, false
}

func splitRounds(matches []*models.Match) (map[int][]*models.Match, map[int][]*models.Match) {
	rounds := make(map[int][]*models.Match)
	tiebreakers := make(map[int][]*models.Match)
	for _, m := range matches {
		if m.IsTiebreaker {
			if m.ParentTiebreakerMatchID != nil {
				tiebreakers[*m.ParentTiebreakerMatchID] = append(tiebreakers[*m.ParentTiebreakerMatchID], m)
			}
			continue
		}
		rounds[m.Round] = append(rounds[m.Round], m)
	}
	for _, ms := range rounds {
		slices.SortStableFunc(ms, byMatchNumber)
	}
	for _, ms := range tiebreakers {
		slices.SortStableFunc(ms, byMatchNumber)
	}
	return rounds, tiebreakers
}

func byMatchNumber(a, b *models.Match) int {
	return a.MatchNumber - b.MatchNumber
}

// byes returns, in order, the entrants still alive who played no match.
func byes(alive []int, played []*models.Match) []int {
	var out []int
	for _, id := range alive {
		if !slices.ContainsFunc(played, func(m *models.Match) bool { return m.Involves(id) }) {
			out = append(out, id)
		}
	}
	return out
}

func mapsKeys(m map[int][]*models.Match) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
