package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

// handleRepositoryError turns storage errors into service errors. Anything
// unrecognised is reported as ErrPersistence.
func handleRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrParticipantNotFound):
		return ErrParticipantNotFound
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrTournamentNameConflict):
		return ErrTournamentNameConflict
	case errors.Is(err, repositories.ErrEntrantNameConflict):
		return ErrEntrantNameConflict
	case errors.Is(err, repositories.ErrJerseyNumberConflict):
		return ErrJerseyNumberConflict
	case errors.Is(err, repositories.ErrSubMatchPlayerInvalid):
		return ErrPlayerNotOnTeam
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func getTournament(ctx context.Context, repo repositories.TournamentRepository, id int) (*models.Tournament, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	return t, nil
}

// getOwnedTournament loads a tournament and checks that userID organises it.
func getOwnedTournament(ctx context.Context, repo repositories.TournamentRepository, userID, id int) (*models.Tournament, error) {
	t, err := getTournament(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if t.OrganizerID != userID {
		return nil, fmt.Errorf("%w: only the organizer can manage tournament %d", ErrForbiddenOperation, id)
	}
	return t, nil
}

func isClosed(t *models.Tournament) bool {
	return t.Status == models.StatusCompleted || t.Status == models.StatusCancelled
}

var allowedTransitions = map[models.TournamentStatus][]models.TournamentStatus{
	models.StatusDraft:            {models.StatusRegistrationOpen, models.StatusCancelled},
	models.StatusRegistrationOpen: {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress:       {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:        {},
	models.StatusCancelled:        {},
}

func isValidStatusTransition(current, next models.TournamentStatus) bool {
	if current == next {
		return true
	}
	for _, allowed := range allowedTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

func maxMatchNumber(matches []*models.Match) int {
	highest := 0
	for _, m := range matches {
		highest = max(highest, m.MatchNumber)
	}
	return highest
}

// keyedMutex serialises work per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int]*keyedLock)}
}

func (k *keyedMutex) lock(key int) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
