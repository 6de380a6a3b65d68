package services

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories/memory"
	"github.com/Shamsear/kickoff/storage"
)

const organizer = 1

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type sentEvent struct {
	TournamentID int
	Type         realtime.EventType
	Payload      any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(_ context.Context, tournamentID int, event realtime.EventType, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{TournamentID: tournamentID, Type: event, Payload: payload})
}

func (n *recordingNotifier) types() []realtime.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]realtime.EventType, len(n.events))
	for i, e := range n.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	store    *memory.Store
	svc      *Services
	notifier *recordingNotifier
	uploader *storage.MemoryUploader
	metrics  *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uploader, err := storage.NewMemoryUploader("https://files.test")
	require.NoError(t, err)

	store := memory.NewStore()
	env := &testEnv{
		store:    store,
		notifier: &recordingNotifier{},
		uploader: uploader,
		metrics:  metrics.New(),
	}
	env.svc = New(Deps{
		Tournaments:  store.Tournaments(),
		Participants: store.Participants(),
		Teams:        store.Teams(),
		Matches:      store.Matches(),
		Notifier:     env.notifier,
		Uploader:     uploader,
		Metrics:      env.metrics,
		Logger:       logging.NewNop(),
		Now:          func() time.Time { return fixedNow },
		Rand:         func() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) },
	})
	return env
}

func (e *testEnv) tournament(t *testing.T, typ models.TournamentType, format models.TournamentFormat, scoring models.ScoringSystem) *models.Tournament {
	t.Helper()
	in := CreateTournamentInput{
		Name:          "Cup " + string(format) + " " + string(typ) + " " + string(scoring),
		Type:          typ,
		Format:        string(format),
		ScoringSystem: scoring,
	}
	capacity := 16
	if typ == models.TournamentSolo {
		in.MaxParticipants = &capacity
	} else {
		players := 5
		in.MaxTeams = &capacity
		in.MaxPlayersPerTeam = &players
	}
	tour, err := e.svc.Tournaments.CreateTournament(context.Background(), organizer, in)
	require.NoError(t, err)
	return tour
}

// teams registers approved teams and returns their ids.
func (e *testEnv) teams(t *testing.T, tournamentID int, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, name := range names {
		team, err := e.svc.Registration.AddTeam(context.Background(), organizer, tournamentID, AddTeamInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, team.ID)
	}
	return ids
}

func (e *testEnv) participants(t *testing.T, tournamentID int, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, name := range names {
		p, err := e.svc.Registration.AddParticipant(context.Background(), organizer, tournamentID, AddParticipantInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

func (e *testEnv) players(t *testing.T, tournamentID, teamID int, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, name := range names {
		p, err := e.svc.Registration.AddPlayer(context.Background(), organizer, tournamentID, teamID, AddPlayerInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

// homeWin records a 1-0 win for the first side of a team match.
func (e *testEnv) homeWin(t *testing.T, tournamentID int, m *models.Match) *ResultOutcome {
	t.Helper()
	out, err := e.svc.Matches.SaveResult(context.Background(), organizer, tournamentID, m.ID, ResultInput{
		Team1PlayerGoals: Score(1), Team2PlayerGoals: Score(0),
	})
	require.NoError(t, err)
	return out
}

func roundOf(matches []*models.Match, round int) []*models.Match {
	var out []*models.Match
	for _, m := range matches {
		if m.Round == round && !m.IsTiebreaker {
			out = append(out, m)
		}
	}
	return out
}
