package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
)

type AddParticipantInput struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	// Pending registers the entrant without approving it.
	Pending bool `json:"pending,omitempty"`
}

type AddTeamInput struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Pending bool   `json:"pending,omitempty"`
}

type AddPlayerInput struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	JerseyNumber *int   `json:"jersey_number,omitempty" validate:"omitempty,gte=0,lte=999"`
}

// RegistrationService manages the roster. The roster is frozen once
// fixtures exist, except for players joining a registered team.
type RegistrationService interface {
	AddParticipant(ctx context.Context, userID, tournamentID int, input AddParticipantInput) (*models.Participant, error)
	ListParticipants(ctx context.Context, tournamentID int) ([]*models.Participant, error)
	ApproveParticipant(ctx context.Context, userID, tournamentID, participantID int) (*models.Participant, error)

	AddTeam(ctx context.Context, userID, tournamentID int, input AddTeamInput) (*models.Team, error)
	ListTeams(ctx context.Context, tournamentID int) ([]*models.Team, error)
	ApproveTeam(ctx context.Context, userID, tournamentID, teamID int) (*models.Team, error)
	AddPlayer(ctx context.Context, userID, tournamentID, teamID int, input AddPlayerInput) (*models.Player, error)
}

type registrationService struct {
	tournaments  repositories.TournamentRepository
	participants repositories.ParticipantRepository
	teams        repositories.TeamRepository
	matches      repositories.MatchRepository
	logger       *logging.Logger
}

func NewRegistrationService(d Deps) RegistrationService {
	d = d.withDefaults()
	return &registrationService{
		tournaments:  d.Tournaments,
		participants: d.Participants,
		teams:        d.Teams,
		matches:      d.Matches,
		logger:       d.Logger.With("service", "registration"),
	}
}

// openRoster loads an organizer's tournament of the given type and checks
// that its roster can still change.
func (s *registrationService) openRoster(ctx context.Context, userID, tournamentID int, want models.TournamentType) (*models.Tournament, error) {
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.Type != want {
		return nil, fmt.Errorf("%w: tournament %d is %s", ErrWrongEntrantKind, t.ID, t.Type)
	}
	if t.Status != models.StatusDraft && t.Status != models.StatusRegistrationOpen {
		return nil, fmt.Errorf("%w: status is %s", ErrRegistrationClosed, t.Status)
	}
	n, err := s.matches.CountByTournament(ctx, t.MatchKind(), t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: roster is locked", ErrFixturesAlreadyGenerated)
	}
	return t, nil
}

func registrationStatus(pending bool) models.RegistrationStatus {
	if pending {
		return models.RegistrationPending
	}
	return models.RegistrationApproved
}

func (s *registrationService) AddParticipant(ctx context.Context, userID, tournamentID int, input AddParticipantInput) (*models.Participant, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	t, err := s.openRoster(ctx, userID, tournamentID, models.TournamentSolo)
	if err != nil {
		return nil, err
	}
	count, err := s.participants.CountByTournament(ctx, t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if count >= t.Capacity() {
		return nil, fmt.Errorf("%w: %d of %d places taken", ErrTournamentFull, count, t.Capacity())
	}

	p := &models.Participant{
		TournamentID: t.ID,
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		Status:       registrationStatus(input.Pending),
	}
	if err := s.participants.Create(ctx, p); err != nil {
		return nil, handleRepositoryError(err)
	}
	s.logger.InfoContext(ctx, "participant registered", "tournament_id", t.ID, "participant_id", p.ID, "status", p.Status)
	return p, nil
}

func (s *registrationService) ListParticipants(ctx context.Context, tournamentID int) ([]*models.Participant, error) {
	if _, err := getTournament(ctx, s.tournaments, tournamentID); err != nil {
		return nil, err
	}
	list, err := s.participants.ListByTournament(ctx, tournamentID, nil)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if list == nil {
		return []*models.Participant{}, nil
	}
	return list, nil
}

func (s *registrationService) ApproveParticipant(ctx context.Context, userID, tournamentID, participantID int) (*models.Participant, error) {
	if _, err := s.openRoster(ctx, userID, tournamentID, models.TournamentSolo); err != nil {
		return nil, err
	}
	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if p.TournamentID != tournamentID {
		return nil, ErrParticipantNotFound
	}
	if p.Status == models.RegistrationApproved {
		return p, nil
	}
	if err := s.participants.UpdateStatus(ctx, p.ID, models.RegistrationApproved); err != nil {
		return nil, handleRepositoryError(err)
	}
	p.Status = models.RegistrationApproved
	return p, nil
}

func (s *registrationService) AddTeam(ctx context.Context, userID, tournamentID int, input AddTeamInput) (*models.Team, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	t, err := s.openRoster(ctx, userID, tournamentID, models.TournamentTeam)
	if err != nil {
		return nil, err
	}
	count, err := s.teams.CountByTournament(ctx, t.ID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if count >= t.Capacity() {
		return nil, fmt.Errorf("%w: %d of %d places taken", ErrTournamentFull, count, t.Capacity())
	}

	team := &models.Team{
		TournamentID: t.ID,
		Name:         strings.TrimSpace(input.Name),
		Status:       registrationStatus(input.Pending),
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, handleRepositoryError(err)
	}
	s.logger.InfoContext(ctx, "team registered", "tournament_id", t.ID, "team_id", team.ID, "status", team.Status)
	return team, nil
}

func (s *registrationService) ListTeams(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	if _, err := getTournament(ctx, s.tournaments, tournamentID); err != nil {
		return nil, err
	}
	list, err := s.teams.ListByTournament(ctx, tournamentID, nil)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if list == nil {
		return []*models.Team{}, nil
	}
	return list, nil
}

func (s *registrationService) ApproveTeam(ctx context.Context, userID, tournamentID, teamID int) (*models.Team, error) {
	if _, err := s.openRoster(ctx, userID, tournamentID, models.TournamentTeam); err != nil {
		return nil, err
	}
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if team.TournamentID != tournamentID {
		return nil, ErrTeamNotFound
	}
	if team.Status == models.RegistrationApproved {
		return team, nil
	}
	if err := s.teams.UpdateStatus(ctx, team.ID, models.RegistrationApproved); err != nil {
		return nil, handleRepositoryError(err)
	}
	team.Status = models.RegistrationApproved
	return team, nil
}

// AddPlayer stays open after fixtures are generated so that squads can be
// completed before legs are recorded.
func (s *registrationService) AddPlayer(ctx context.Context, userID, tournamentID, teamID int, input AddPlayerInput) (*models.Player, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.Type != models.TournamentTeam || t.Team == nil {
		return nil, fmt.Errorf("%w: tournament %d is %s", ErrWrongEntrantKind, t.ID, t.Type)
	}
	if isClosed(t) {
		return nil, fmt.Errorf("%w: status is %s", ErrRegistrationClosed, t.Status)
	}
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if team.TournamentID != t.ID {
		return nil, ErrTeamNotFound
	}
	if len(team.Players) >= t.Team.MaxPlayersPerTeam {
		return nil, fmt.Errorf("%w: %d of %d players", ErrTeamFull, len(team.Players), t.Team.MaxPlayersPerTeam)
	}

	player := &models.Player{TeamID: team.ID, Name: strings.TrimSpace(input.Name), JerseyNumber: input.JerseyNumber}
	if err := s.teams.AddPlayer(ctx, player); err != nil {
		return nil, handleRepositoryError(err)
	}
	return player, nil
}
