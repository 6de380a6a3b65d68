package memory

import (
	"context"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

type participantRepo struct{ *Store }

func (r participantRepo) Create(_ context.Context, p *models.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[p.TournamentID]; !ok {
		return repositories.ErrTournamentNotFound
	}
	for _, existing := range r.participants {
		if existing.TournamentID == p.TournamentID && existing.Name == p.Name {
			return repositories.ErrEntrantNameConflict
		}
	}
	p.ID = r.id("participants")
	p.CreatedAt = r.now()
	r.participants[p.ID] = cloneParticipant(p)
	return nil
}

func (r participantRepo) GetByID(_ context.Context, id int) (*models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	return cloneParticipant(p), nil
}

func (r participantRepo) ListByTournament(_ context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.participants, func(p *models.Participant) bool {
		return p.TournamentID == tournamentID && (status == nil || p.Status == *status)
	}, cloneParticipant), nil
}

func (r participantRepo) UpdateStatus(_ context.Context, id int, status models.RegistrationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return repositories.ErrParticipantNotFound
	}
	p.Status = status
	return nil
}

func (r participantRepo) CountByTournament(_ context.Context, tournamentID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.participants {
		if p.TournamentID == tournamentID {
			n++
		}
	}
	return n, nil
}

type teamRepo struct{ *Store }

func (r teamRepo) Create(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[team.TournamentID]; !ok {
		return repositories.ErrTournamentNotFound
	}
	for _, existing := range r.teams {
		if existing.TournamentID == team.TournamentID && existing.Name == team.Name {
			return repositories.ErrEntrantNameConflict
		}
	}
	team.ID = r.id("teams")
	team.CreatedAt = r.now()
	r.teams[team.ID] = cloneTeam(team)
	return nil
}

func (r teamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	out := cloneTeam(team)
	out.Players = r.playersOf(id)
	return out, nil
}

func (r teamRepo) ListByTournament(_ context.Context, tournamentID int, status *models.RegistrationStatus) ([]*models.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.teams, func(t *models.Team) bool {
		return t.TournamentID == tournamentID && (status == nil || t.Status == *status)
	}, cloneTeam), nil
}

func (r teamRepo) UpdateStatus(_ context.Context, id int, status models.RegistrationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.Status = status
	return nil
}

func (r teamRepo) CountByTournament(_ context.Context, tournamentID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, t := range r.teams {
		if t.TournamentID == tournamentID {
			n++
		}
	}
	return n, nil
}

func (r teamRepo) AddPlayer(_ context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[player.TeamID]; !ok {
		return repositories.ErrTeamNotFound
	}
	if player.JerseyNumber != nil {
		for _, existing := range r.players {
			if existing.TeamID == player.TeamID && existing.JerseyNumber != nil && *existing.JerseyNumber == *player.JerseyNumber {
				return repositories.ErrJerseyNumberConflict
			}
		}
	}
	player.ID = r.id("players")
	player.CreatedAt = r.now()
	r.players[player.ID] = clonePlayer(player)
	return nil
}

func (r teamRepo) ListPlayers(_ context.Context, teamID int) ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.playersOf(teamID), nil
}

// playersOf expects the read lock to be held.
func (r teamRepo) playersOf(teamID int) []models.Player {
	ptrs := sortedValues(r.players, func(p *models.Player) bool { return p.TeamID == teamID }, clonePlayer)
	players := make([]models.Player, 0, len(ptrs))
	for _, p := range ptrs {
		players = append(players, *p)
	}
	return players
}
