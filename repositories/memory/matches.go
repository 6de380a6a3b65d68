package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

type matchRepo struct{ *Store }

func (r matchRepo) table(kind models.MatchKind) (map[int]*models.Match, error) {
	table, ok := r.matches[kind]
	if !ok {
		return nil, fmt.Errorf("unknown match kind %q", kind)
	}
	return table, nil
}

func (r matchRepo) entrantExists(kind models.MatchKind, id int) bool {
	if kind == models.MatchKindTeam {
		_, ok := r.teams[id]
		return ok
	}
	_, ok := r.participants[id]
	return ok
}

func (r matchRepo) CreateBatch(_ context.Context, kind models.MatchKind, matches []*models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(kind)
	if err != nil {
		return err
	}
	// Validate everything first so a rejected batch leaves no rows behind.
	for _, m := range matches {
		if _, ok := r.tournaments[m.TournamentID]; !ok {
			return repositories.ErrTournamentNotFound
		}
		if !r.entrantExists(kind, m.Entrant1ID) || !r.entrantExists(kind, m.Entrant2ID) {
			return repositories.ErrMatchEntrantInvalid
		}
		if m.ParentTiebreakerMatchID != nil {
			if _, ok := table[*m.ParentTiebreakerMatchID]; !ok {
				return repositories.ErrMatchNotFound
			}
		}
	}

	now := r.now()
	for _, m := range matches {
		m.ID = r.id(string(kind) + "_matches")
		m.Kind = kind
		m.CreatedAt = now
		m.UpdatedAt = now
		table[m.ID] = cloneMatch(m)
	}
	return nil
}

func (r matchRepo) GetByID(_ context.Context, kind models.MatchKind, id int) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	m, ok := table[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	out := cloneMatch(m)
	if kind == models.MatchKindTeam {
		out.SubMatches = r.legsOf(id)
	}
	return out, nil
}

func (r matchRepo) ListByTournament(_ context.Context, kind models.MatchKind, tournamentID int) ([]*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	out := sortedValues(table, func(m *models.Match) bool { return m.TournamentID == tournamentID }, cloneMatch)
	slices.SortStableFunc(out, byMatchOrder)
	return out, nil
}

func (r matchRepo) CountByTournament(_ context.Context, kind models.MatchKind, tournamentID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, err := r.table(kind)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range table {
		if m.TournamentID == tournamentID {
			n++
		}
	}
	return n, nil
}

// SaveResult replaces the legs and updates the match under the store lock,
// so no reader sees a mix of old and new legs.
func (r matchRepo) SaveResult(_ context.Context, kind models.MatchKind, m *models.Match, legs []models.SubMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(kind)
	if err != nil {
		return err
	}
	stored, ok := table[m.ID]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	if kind != models.MatchKindTeam && len(legs) > 0 {
		return fmt.Errorf("solo matches cannot have legs")
	}
	for _, leg := range legs {
		if !r.playerExists(leg.Team1PlayerID) || !r.playerExists(leg.Team2PlayerID) {
			return repositories.ErrSubMatchPlayerInvalid
		}
	}

	if kind == models.MatchKindTeam {
		r.dropLegs(m.ID)
		now := r.now()
		for i := range legs {
			legs[i].ID = r.id("sub_matches")
			legs[i].CreatedAt = now
			r.subMatches[legs[i].ID] = cloneSubMatch(&legs[i])
		}
		for _, row := range repositories.LegParticipants(m.ID, legs) {
			row.ID = r.id("match_participants")
			r.matchPlayers[row.ID] = cloneMatchParticipant(&row)
		}
	}

	m.HasSubMatches = len(legs) > 0
	m.UpdatedAt = r.now()

	stored.Score1 = copyInt(m.Score1)
	stored.Score2 = copyInt(m.Score2)
	stored.Penalties1 = copyInt(m.Penalties1)
	stored.Penalties2 = copyInt(m.Penalties2)
	stored.Status = m.Status
	stored.WinnerID = copyInt(m.WinnerID)
	stored.Notes = copyString(m.Notes)
	stored.HasSubMatches = m.HasSubMatches
	stored.UpdatedAt = m.UpdatedAt

	m.SubMatches = legs
	return nil
}

func (r matchRepo) UpdateStatus(_ context.Context, kind models.MatchKind, id int, status models.MatchStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(kind)
	if err != nil {
		return err
	}
	m, ok := table[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Status = status
	m.UpdatedAt = r.now()
	return nil
}

func (r matchRepo) Reset(_ context.Context, kind models.MatchKind, id int) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	m, ok := table[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	r.dropLegs(id)

	m.Score1, m.Score2 = nil, nil
	m.Penalties1, m.Penalties2 = nil, nil
	m.WinnerID = nil
	m.Notes = nil
	m.HasSubMatches = false
	m.Status = models.MatchScheduled
	m.UpdatedAt = r.now()
	return cloneMatch(m), nil
}

func (r matchRepo) Delete(_ context.Context, kind models.MatchKind, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.table(kind)
	if err != nil {
		return err
	}
	if _, ok := table[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.dropMatch(kind, id)
	return nil
}

func (r matchRepo) ListSubMatches(_ context.Context, parentMatchID int) ([]models.SubMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.legsOf(parentMatchID), nil
}

func (r matchRepo) ListMatchParticipants(_ context.Context, matchID int) ([]models.MatchParticipant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ptrs := sortedValues(r.matchPlayers, func(mp *models.MatchParticipant) bool { return mp.MatchID == matchID }, cloneMatchParticipant)
	out := make([]models.MatchParticipant, 0, len(ptrs))
	for _, mp := range ptrs {
		out = append(out, *mp)
	}
	return out, nil
}

func (r matchRepo) playerExists(id int) bool {
	_, ok := r.players[id]
	return ok
}

// legsOf expects the read lock to be held.
func (r matchRepo) legsOf(parentMatchID int) []models.SubMatch {
	ptrs := sortedValues(r.subMatches, func(sm *models.SubMatch) bool { return sm.ParentMatchID == parentMatchID }, cloneSubMatch)
	slices.SortStableFunc(ptrs, func(a, b *models.SubMatch) int { return a.MatchOrder - b.MatchOrder })
	legs := make([]models.SubMatch, 0, len(ptrs))
	for _, sm := range ptrs {
		legs = append(legs, *sm)
	}
	return legs
}

// dropLegs removes the legs of a team match and their participant rows.
// The write lock must be held.
func (s *Store) dropLegs(parentMatchID int) {
	for id, mp := range s.matchPlayers {
		if mp.MatchID == parentMatchID {
			delete(s.matchPlayers, id)
		}
	}
	for id, sm := range s.subMatches {
		if sm.ParentMatchID == parentMatchID {
			delete(s.subMatches, id)
		}
	}
}

// dropMatch deletes a match with its legs and its tiebreaker series. The
// write lock must be held.
func (s *Store) dropMatch(kind models.MatchKind, id int) {
	table := s.matches[kind]
	delete(table, id)
	if kind == models.MatchKindTeam {
		s.dropLegs(id)
	}
	for childID, child := range table {
		if child.ParentTiebreakerMatchID != nil && *child.ParentTiebreakerMatchID == id {
			s.dropMatch(kind, childID)
		}
	}
}
