package brackets

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/Shamsear/kickoff/models"
)

type SingleEliminationGenerator struct {
	prefix string
}

func NewSingleEliminationGenerator() BracketGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket draws the entrants at random and pairs them for round one.
// An odd entrant out gets a bye and joins round two without playing. Later
// rounds are produced by NextRound from real results.
func (g *SingleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	n := len(params.Entrants)
	if n < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientEntrants, n)
	}

	ids := entrantIDs(shuffled(params.Entrants, params.Rand))
	name := g.prefix + eliminationRoundName(params.Tournament, 1, TotalRounds(n))
	return pairRound(ids, 1, name), nil
}

// TotalRounds is the number of knockout rounds needed for n entrants when
// byes carry odd entrants forward: ceil(log2 n).
func TotalRounds(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// RoundName labels round r of a bracket with totalRounds rounds.
func RoundName(round, totalRounds int) string {
	switch {
	case round == totalRounds || totalRounds <= 1:
		return "Final"
	case round == totalRounds-1:
		return "Semi-Final"
	case round == totalRounds-2:
		return "Quarter-Final"
	case round == 1:
		return "First Round"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}

// Solo brackets are labelled by round number only.
func eliminationRoundName(t *models.Tournament, round, totalRounds int) string {
	if t != nil && t.Type == models.TournamentSolo {
		return fmt.Sprintf("Round %d", round)
	}
	return RoundName(round, totalRounds)
}

func pairRound(ids []int, round int, name string) []*BracketMatch {
	pairs, _ := pairConsecutive(ids)
	matches := make([]*BracketMatch, 0, len(pairs))
	for i, p := range pairs {
		matches = append(matches, &BracketMatch{
			Round:        round,
			OrderInRound: i + 1,
			RoundName:    name,
			Entrant1ID:   p[0],
			Entrant2ID:   p[1],
		})
	}
	return matches
}
