package brackets

import (
	"fmt"

	"github.com/Shamsear/kickoff/models"
)

// TiebreakerMatches builds the follow-up series for a drawn knockout match.
// The new matches share the parent's round, date and venue and are numbered
// from firstNumber on.
func TiebreakerMatches(parent *models.Match, kind models.TiebreakerType, firstNumber int) ([]*models.Match, error) {
	games := kind.Games()
	if games == 0 {
		return nil, fmt.Errorf("unknown tiebreaker type %q", kind)
	}

	roundName := parent.RoundName
	if roundName == "" {
		roundName = "Match"
	}
	parentID := parent.ID
	tbType := kind

	matches := make([]*models.Match, 0, games)
	for i := 1; i <= games; i++ {
		matches = append(matches, &models.Match{
			Kind:                    parent.Kind,
			TournamentID:            parent.TournamentID,
			Round:                   parent.Round,
			RoundName:               fmt.Sprintf("%s - Tiebreaker %d", roundName, i),
			MatchNumber:             firstNumber + i - 1,
			Entrant1ID:              parent.Entrant1ID,
			Entrant2ID:              parent.Entrant2ID,
			Status:                  models.MatchScheduled,
			ScheduledDate:           parent.ScheduledDate,
			Venue:                   parent.Venue,
			IsTiebreaker:            true,
			ParentTiebreakerMatchID: &parentID,
			TiebreakerType:          &tbType,
		})
	}
	return matches, nil
}
