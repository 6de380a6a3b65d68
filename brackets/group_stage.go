package brackets

import (
	"context"
	"fmt"
)

const groupSize = 4

type GroupStageGenerator struct {
	size int
}

func NewGroupStageGenerator(size int) BracketGenerator {
	if size < 2 {
		size = groupSize
	}
	return &GroupStageGenerator{size: size}
}

func (g *GroupStageGenerator) GetName() string {
	return "GroupStage"
}

// GenerateBracket draws entrants into groups of g.size (the last group may be
// smaller) and plays a round robin inside each group.
func (g *GroupStageGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	n := len(params.Entrants)
	if n < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientEntrants, n)
	}

	ids := entrantIDs(shuffled(params.Entrants, params.Rand))
	var matches []*BracketMatch
	for group := 0; group*g.size < n; group++ {
		end := min((group+1)*g.size, n)
		matches = append(matches, roundRobin(ids[group*g.size:end], 1, GroupLabel(group), len(matches))...)
	}
	return matches, nil
}

// GroupLabel names the group at index i: A..Z, then AA, AB, ...
func GroupLabel(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return "Group " + name
}
