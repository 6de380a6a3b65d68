package brackets

import (
	"context"
	"fmt"
)

type RoundRobinGenerator struct {
	label string
}

// NewRoundRobinGenerator pairs every entrant with every other entrant once,
// labelling all matches with the given round name.
func NewRoundRobinGenerator(label string) BracketGenerator {
	return &RoundRobinGenerator{label: label}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

func (g *RoundRobinGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	if len(params.Entrants) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientEntrants, len(params.Entrants))
	}
	return roundRobin(entrantIDs(params.Entrants), 1, g.label, 0), nil
}

// roundRobin emits the pair (i, j) for every i < j in input order.
func roundRobin(ids []int, round int, label string, orderOffset int) []*BracketMatch {
	matches := make([]*BracketMatch, 0, len(ids)*(len(ids)-1)/2)
	order := orderOffset
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			order++
			matches = append(matches, &BracketMatch{
				Round:        round,
				OrderInRound: order,
				RoundName:    label,
				Entrant1ID:   ids[i],
				Entrant2ID:   ids[j],
			})
		}
	}
	return matches
}
