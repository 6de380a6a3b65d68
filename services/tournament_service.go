package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories"
)

type ListTournamentsFilter = repositories.ListTournamentsFilter

type CreateTournamentInput struct {
	Name                 string                `json:"name" validate:"required,min=3,max=100"`
	Description          *string               `json:"description,omitempty" validate:"omitempty,max=2000"`
	Type                 models.TournamentType `json:"type" validate:"required,oneof=solo team"`
	Format               string                `json:"format" validate:"required,max=50"`
	ScoringSystem        models.ScoringSystem  `json:"scoring_system,omitempty" validate:"omitempty,oneof=win_based goal_based"`
	StartDate            *time.Time            `json:"start_date,omitempty"`
	RegistrationDeadline *time.Time            `json:"registration_deadline,omitempty"`
	Location             *string               `json:"location,omitempty" validate:"omitempty,max=200"`

	MaxParticipants   *int `json:"max_participants,omitempty" validate:"omitempty,gte=2,lte=1024"`
	MaxTeams          *int `json:"max_teams,omitempty" validate:"omitempty,gte=2,lte=1024"`
	MaxPlayersPerTeam *int `json:"max_players_per_team,omitempty" validate:"omitempty,gte=1,lte=100"`
}

type UpdateStatusInput struct {
	Status models.TournamentStatus `json:"status" validate:"required"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error)
	UpdateStatus(ctx context.Context, userID, id int, input UpdateStatusInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, userID, id int) error
	// StartDueTournaments moves tournaments whose start date has passed from
	// registration_open to in_progress and reports how many moved.
	StartDueTournaments(ctx context.Context) (int, error)
}

type tournamentService struct {
	tournaments repositories.TournamentRepository
	notifier    realtime.Notifier
	logger      *logging.Logger
	now         func() time.Time
}

func NewTournamentService(d Deps) TournamentService {
	d = d.withDefaults()
	return &tournamentService{
		tournaments: d.Tournaments,
		notifier:    d.Notifier,
		logger:      d.Logger.With("service", "tournament"),
		now:         d.Now,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if input.StartDate != nil && input.RegistrationDeadline != nil && input.RegistrationDeadline.After(*input.StartDate) {
		return nil, fmt.Errorf("%w: registration_deadline must not be after start_date", ErrValidationFailed)
	}

	format, known := models.TournamentFormat(strings.ToLower(strings.TrimSpace(input.Format))).Normalize()
	if !known {
		s.logger.WarnContext(ctx, "unknown tournament format, using round robin", "format", input.Format)
	}
	scoring := input.ScoringSystem
	if scoring == "" {
		scoring = models.ScoringWinBased
	}

	t := &models.Tournament{
		Name:                 strings.TrimSpace(input.Name),
		Description:          input.Description,
		OrganizerID:          organizerID,
		Type:                 input.Type,
		Format:               format,
		ScoringSystem:        scoring,
		Status:               models.StatusDraft,
		StartDate:            input.StartDate,
		RegistrationDeadline: input.RegistrationDeadline,
		Location:             input.Location,
	}
	if input.MaxParticipants != nil {
		t.Solo = &models.SoloTournamentConfig{MaxParticipants: *input.MaxParticipants}
	}
	if input.MaxTeams != nil || input.MaxPlayersPerTeam != nil {
		if input.MaxTeams == nil || input.MaxPlayersPerTeam == nil {
			return nil, fmt.Errorf("%w: max_teams and max_players_per_team go together", ErrTournamentConfigRejected)
		}
		t.Team = &models.TeamTournamentConfig{MaxTeams: *input.MaxTeams, MaxPlayersPerTeam: *input.MaxPlayersPerTeam}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTournamentConfigRejected, err)
	}

	if err := s.tournaments.Create(ctx, t); err != nil {
		return nil, handleRepositoryError(err)
	}
	s.logger.InfoContext(ctx, "tournament created", "tournament_id", t.ID, "organizer_id", organizerID, "format", t.Format)
	return t, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	return getTournament(ctx, s.tournaments, id)
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidStatus, *filter.Status)
	}
	list, err := s.tournaments.List(ctx, filter)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if list == nil {
		return []*models.Tournament{}, nil
	}
	return list, nil
}

func (s *tournamentService) UpdateStatus(ctx context.Context, userID, id int, input UpdateStatusInput) (*models.Tournament, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrTournamentInvalidStatus, input.Status)
	}
	t, err := getOwnedTournament(ctx, s.tournaments, userID, id)
	if err != nil {
		return nil, err
	}
	if !isValidStatusTransition(t.Status, input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTournamentInvalidStatusTransition, t.Status, input.Status)
	}
	if t.Status == input.Status {
		return t, nil
	}
	if err := s.tournaments.UpdateStatus(ctx, id, input.Status); err != nil {
		return nil, handleRepositoryError(err)
	}
	previous := t.Status
	t.Status = input.Status
	s.notifier.Notify(ctx, t.ID, realtime.EventTournamentStatus, map[string]any{"tournament_id": t.ID, "status": t.Status})
	s.logger.InfoContext(ctx, "tournament status changed", "tournament_id", t.ID, "from", previous, "to", t.Status)
	return t, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, userID, id int) error {
	if _, err := getOwnedTournament(ctx, s.tournaments, userID, id); err != nil {
		return err
	}
	if err := s.tournaments.Delete(ctx, id); err != nil {
		return handleRepositoryError(err)
	}
	s.logger.InfoContext(ctx, "tournament deleted", "tournament_id", id)
	return nil
}

func (s *tournamentService) StartDueTournaments(ctx context.Context) (int, error) {
	due, err := s.tournaments.ListDueToStart(ctx, s.now())
	if err != nil {
		return 0, handleRepositoryError(err)
	}

	started := 0
	var errs []error
	for _, t := range due {
		if err := s.tournaments.UpdateStatus(ctx, t.ID, models.StatusInProgress); err != nil {
			errs = append(errs, fmt.Errorf("tournament %d: %w", t.ID, handleRepositoryError(err)))
			continue
		}
		started++
		s.notifier.Notify(ctx, t.ID, realtime.EventTournamentStatus, map[string]any{"tournament_id": t.ID, "status": models.StatusInProgress})
		s.logger.InfoContext(ctx, "tournament started on schedule", "tournament_id", t.ID)
	}
	return started, errors.Join(errs...)
}
