package brackets

const winnersPrefix = "Winners "

// NewDoubleEliminationGenerator builds the winners bracket only. Losers
// bracket generation is not supported.
func NewDoubleEliminationGenerator() BracketGenerator {
	return &DoubleEliminationGenerator{SingleEliminationGenerator{prefix: winnersPrefix}}
}

type DoubleEliminationGenerator struct {
	SingleEliminationGenerator
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}
