package brackets

import (
	"context"
	"fmt"
)

type SwissGenerator struct{}

func NewSwissGenerator() BracketGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

// GenerateBracket pairs a random draw for round one. Subsequent swiss rounds
// are not generated.
func (g *SwissGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	if len(params.Entrants) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientEntrants, len(params.Entrants))
	}
	return pairRound(entrantIDs(shuffled(params.Entrants, params.Rand)), 1, "Round 1"), nil
}
