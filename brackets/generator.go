package brackets

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Shamsear/kickoff/models"
)

var (
	ErrInsufficientEntrants    = errors.New("at least two entrants are required to generate fixtures")
	ErrNotElimination          = errors.New("format does not advance round by round")
	ErrBracketNotStarted       = errors.New("bracket has no matches yet")
	ErrRoundIncomplete         = errors.New("current round still has undecided matches")
	ErrBracketComplete         = errors.New("bracket is already decided")
	ErrSwissPairingUnsupported = errors.New("swiss pairing beyond round one is not supported")
)

// BracketMatch is a pairing produced by a generator before it is numbered,
// scheduled and turned into a stored match.
type BracketMatch struct {
	Round        int
	OrderInRound int
	RoundName    string
	Entrant1ID   int
	Entrant2ID   int
}

type GenerateBracketParams struct {
	Tournament *models.Tournament
	Entrants   []models.Entrant
	// Rand drives the shuffle of elimination, group and swiss draws.
	// A nil Rand uses the package-level source.
	Rand *rand.Rand
	// Now anchors the placeholder schedule when the tournament has no start date.
	Now time.Time
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error)

	GetName() string
}

// ForFormat returns the generator for a format. Unknown formats get the
// round robin generator; the second value reports whether that fallback
// happened.
func ForFormat(format models.TournamentFormat) (BracketGenerator, bool) {
	normalized, known := format.Normalize()
	switch normalized {
	case models.FormatLeague:
		return NewRoundRobinGenerator("League Play"), known
	case models.FormatSingleElimination, models.FormatKnockout:
		return NewSingleEliminationGenerator(), known
	case models.FormatDoubleElimination:
		return NewDoubleEliminationGenerator(), known
	case models.FormatGroupStage:
		return NewGroupStageGenerator(groupSize), known
	case models.FormatSwiss:
		return NewSwissGenerator(), known
	default:
		return NewRoundRobinGenerator("Round Robin"), known
	}
}

// Generate builds the opening fixtures of a tournament: every match for
// round robin, league and group formats, round one for elimination and swiss.
func Generate(ctx context.Context, params GenerateBracketParams) ([]*models.Match, error) {
	if params.Tournament == nil {
		return nil, errors.New("tournament is required")
	}
	if len(params.Entrants) < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientEntrants, len(params.Entrants))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generator, _ := ForFormat(params.Tournament.Format)
	pairings, err := generator.GenerateBracket(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", generator.GetName(), err)
	}
	return BuildMatches(params.Tournament, pairings, 1, params.Now), nil
}

// BuildMatches numbers pairings from firstNumber on and gives each one its
// placeholder date and the tournament venue.
func BuildMatches(t *models.Tournament, pairings []*BracketMatch, firstNumber int, now time.Time) []*models.Match {
	if now.IsZero() {
		now = time.Now()
	}
	matches := make([]*models.Match, 0, len(pairings))
	for i, p := range pairings {
		number := firstNumber + i
		matches = append(matches, &models.Match{
			Kind:          t.MatchKind(),
			TournamentID:  t.ID,
			Round:         p.Round,
			RoundName:     p.RoundName,
			MatchNumber:   number,
			Entrant1ID:    p.Entrant1ID,
			Entrant2ID:    p.Entrant2ID,
			Status:        models.MatchScheduled,
			ScheduledDate: ScheduleDate(t.StartDate, now, number),
			Venue:         t.Location,
		})
	}
	return matches
}

func shuffled(entrants []models.Entrant, r *rand.Rand) []models.Entrant {
	out := make([]models.Entrant, len(entrants))
	copy(out, entrants)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}
	return out
}

// pairConsecutive pairs (0,1), (2,3), ... and returns the unpaired entrant
// of an odd-sized list as the bye.
func pairConsecutive(ids []int) (pairs [][2]int, bye *int) {
	for i := 0; i+1 < len(ids); i += 2 {
		pairs = append(pairs, [2]int{ids[i], ids[i+1]})
	}
	if len(ids)%2 == 1 {
		last := ids[len(ids)-1]
		bye = &last
	}
	return pairs, bye
}

func entrantIDs(entrants []models.Entrant) []int {
	ids := make([]int, len(entrants))
	for i, e := range entrants {
		ids[i] = e.ID
	}
	return ids
}
