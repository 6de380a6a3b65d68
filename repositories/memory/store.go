// Package memory is an in-process implementation of the repository
// contracts, used for development and as the test double of the services.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

// Store keeps every table in maps behind one lock. Values are copied on the
// way in and out so callers never share memory with the store.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID map[string]int

	tournaments  map[int]*models.Tournament
	participants map[int]*models.Participant
	teams        map[int]*models.Team
	players      map[int]*models.Player
	matches      map[models.MatchKind]map[int]*models.Match
	subMatches   map[int]*models.SubMatch
	matchPlayers map[int]*models.MatchParticipant
}

func NewStore() *Store {
	return &Store{
		now:          time.Now,
		nextID:       make(map[string]int),
		tournaments:  make(map[int]*models.Tournament),
		participants: make(map[int]*models.Participant),
		teams:        make(map[int]*models.Team),
		players:      make(map[int]*models.Player),
		matches: map[models.MatchKind]map[int]*models.Match{
			models.MatchKindTeam: make(map[int]*models.Match),
			models.MatchKindSolo: make(map[int]*models.Match),
		},
		subMatches:   make(map[int]*models.SubMatch),
		matchPlayers: make(map[int]*models.MatchParticipant),
	}
}

func (s *Store) Tournaments() repositories.TournamentRepository { return tournamentRepo{s} }

func (s *Store) Participants() repositories.ParticipantRepository { return participantRepo{s} }

func (s *Store) Teams() repositories.TeamRepository { return teamRepo{s} }

func (s *Store) Matches() repositories.MatchRepository { return matchRepo{s} }

// id hands out serial ids per table. Callers hold the write lock.
func (s *Store) id(table string) int {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedValues[T any](m map[int]*T, keep func(*T) bool, clone func(*T) *T) []*T {
	keys := make([]int, 0, len(m))
	for k, v := range m {
		if keep(v) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, clone(m[k]))
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTournament(t *models.Tournament) *models.Tournament {
	c := *t
	c.Description = copyString(t.Description)
	c.Location = copyString(t.Location)
	c.StartDate = copyTime(t.StartDate)
	c.RegistrationDeadline = copyTime(t.RegistrationDeadline)
	if t.Solo != nil {
		solo := *t.Solo
		c.Solo = &solo
	}
	if t.Team != nil {
		team := *t.Team
		c.Team = &team
	}
	return &c
}

func cloneParticipant(p *models.Participant) *models.Participant {
	c := *p
	c.Email = copyString(p.Email)
	return &c
}

func cloneTeam(t *models.Team) *models.Team {
	c := *t
	c.Players = nil
	return &c
}

func clonePlayer(p *models.Player) *models.Player {
	c := *p
	c.JerseyNumber = copyInt(p.JerseyNumber)
	return &c
}

func cloneMatch(m *models.Match) *models.Match {
	c := *m
	c.Score1 = copyInt(m.Score1)
	c.Score2 = copyInt(m.Score2)
	c.Penalties1 = copyInt(m.Penalties1)
	c.Penalties2 = copyInt(m.Penalties2)
	c.WinnerID = copyInt(m.WinnerID)
	c.Venue = copyString(m.Venue)
	c.Notes = copyString(m.Notes)
	c.ParentTiebreakerMatchID = copyInt(m.ParentTiebreakerMatchID)
	if m.TiebreakerType != nil {
		tb := *m.TiebreakerType
		c.TiebreakerType = &tb
	}
	c.SubMatches = nil
	return &c
}

func cloneSubMatch(sm *models.SubMatch) *models.SubMatch {
	c := *sm
	c.WinnerPlayerID = copyInt(sm.WinnerPlayerID)
	return &c
}

func cloneMatchParticipant(mp *models.MatchParticipant) *models.MatchParticipant {
	c := *mp
	return &c
}

func byMatchOrder(a, b *models.Match) int {
	if a.Round != b.Round {
		return cmp.Compare(a.Round, b.Round)
	}
	if a.MatchNumber != b.MatchNumber {
		return cmp.Compare(a.MatchNumber, b.MatchNumber)
	}
	return cmp.Compare(a.ID, b.ID)
}
