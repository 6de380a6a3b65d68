package repositories

import (
	"context"
	"fmt"

	"github.com/Shamsear/kickoff/models"
)

// EntrantLister returns the approved roster of a tournament in registration
// order, whichever kind of entrant the tournament uses.
type EntrantLister interface {
	ListEntrants(ctx context.Context, t *models.Tournament) ([]models.Entrant, error)
}

type entrantLister struct {
	participants ParticipantRepository
	teams        TeamRepository
}

// NewEntrantLister works over any participant and team repositories, so the
// Postgres and in-memory backends share it.
func NewEntrantLister(participants ParticipantRepository, teams TeamRepository) EntrantLister {
	return &entrantLister{participants: participants, teams: teams}
}

func (l *entrantLister) ListEntrants(ctx context.Context, t *models.Tournament) ([]models.Entrant, error) {
	approved := models.RegistrationApproved

	switch t.Type {
	case models.TournamentSolo:
		participants, err := l.participants.ListByTournament(ctx, t.ID, &approved)
		if err != nil {
			return nil, err
		}
		entrants := make([]models.Entrant, 0, len(participants))
		for _, p := range participants {
			entrants = append(entrants, p.Entrant())
		}
		return entrants, nil

	case models.TournamentTeam:
		teams, err := l.teams.ListByTournament(ctx, t.ID, &approved)
		if err != nil {
			return nil, err
		}
		entrants := make([]models.Entrant, 0, len(teams))
		for _, team := range teams {
			entrants = append(entrants, team.Entrant())
		}
		return entrants, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrTournamentTypeInvalid, t.Type)
}
