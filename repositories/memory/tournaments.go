package memory

import (
	"context"
	"time"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

type tournamentRepo struct{ *Store }

func (r tournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tournaments {
		if existing.OrganizerID == t.OrganizerID && existing.Name == t.Name {
			return repositories.ErrTournamentNameConflict
		}
	}
	t.ID = r.id("tournaments")
	t.CreatedAt = r.now()
	r.tournaments[t.ID] = cloneTournament(t)
	return nil
}

func (r tournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return cloneTournament(t), nil
}

func (r tournamentRepo) List(_ context.Context, filter repositories.ListTournamentsFilter) ([]*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := sortedValues(r.tournaments, func(t *models.Tournament) bool {
		switch {
		case filter.OrganizerID != nil && t.OrganizerID != *filter.OrganizerID:
			return false
		case filter.Status != nil && t.Status != *filter.Status:
			return false
		case filter.Type != nil && t.Type != *filter.Type:
			return false
		}
		return true
	}, cloneTournament)

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []*models.Tournament{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r tournamentRepo) UpdateStatus(_ context.Context, id int, status models.TournamentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.Status = status
	return nil
}

// Delete cascades to the roster and the fixtures like the foreign keys do.
func (r tournamentRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.tournaments, id)

	for pid, p := range r.participants {
		if p.TournamentID == id {
			delete(r.participants, pid)
		}
	}
	for tid, team := range r.teams {
		if team.TournamentID != id {
			continue
		}
		delete(r.teams, tid)
		for plid, pl := range r.players {
			if pl.TeamID == tid {
				delete(r.players, plid)
			}
		}
	}
	for kind, table := range r.matches {
		for mid, m := range table {
			if m.TournamentID == id {
				r.dropMatch(kind, mid)
			}
		}
	}
	return nil
}

func (r tournamentRepo) ListDueToStart(_ context.Context, now time.Time) ([]*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.tournaments, func(t *models.Tournament) bool {
		return t.Status == models.StatusRegistrationOpen && t.StartDate != nil && !t.StartDate.After(now)
	}, cloneTournament), nil
}
