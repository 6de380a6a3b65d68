package services

import (
	"errors"

	"github.com/Shamsear/kickoff/brackets"
)

// Errors shared by the services and mapped to HTTP statuses by the handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// validation and business rules
	ErrValidationFailed         = errors.New("validation failed")
	ErrInvalidScore             = errors.New("invalid score")
	ErrInsufficientEntrants     = brackets.ErrInsufficientEntrants
	ErrTournamentFull           = errors.New("tournament is full")
	ErrTeamFull                 = errors.New("team has no free player slots")
	ErrRegistrationClosed       = errors.New("tournament no longer accepts entrants")
	ErrPlayerNotOnTeam          = errors.New("player does not belong to the team")
	ErrWrongEntrantKind         = errors.New("entrant kind does not match the tournament type")
	ErrTiebreakerNotApplicable  = errors.New("tiebreaker matches only apply to knockout formats")
	ErrSwissPairingUnsupported  = brackets.ErrSwissPairingUnsupported
	ErrBracketNotElimination    = brackets.ErrNotElimination
	ErrStandingsExportDisabled  = errors.New("standings export is not configured")
	ErrTournamentInvalidStatus  = errors.New("invalid tournament status provided")
	ErrTournamentConfigRejected = errors.New("tournament capacity settings are invalid")
	ErrTournamentClosed         = errors.New("tournament is completed or cancelled")

	// conflicts and state
	ErrTournamentNameConflict            = errors.New("tournament name already exists for this organizer")
	ErrEntrantNameConflict               = errors.New("an entrant with this name is already registered")
	ErrJerseyNumberConflict              = errors.New("jersey number is already taken in this team")
	ErrTournamentInvalidStatusTransition = errors.New("invalid tournament status transition")
	ErrFixturesAlreadyGenerated          = errors.New("fixtures have already been generated")
	ErrFixturesNotGenerated              = errors.New("fixtures have not been generated yet")
	ErrInvalidMatchTransition            = errors.New("invalid match status transition")
	ErrRoundIncomplete                   = brackets.ErrRoundIncomplete
	ErrBracketComplete                   = brackets.ErrBracketComplete

	// auth
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// missing entities
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrMatchNotFound       = errors.New("match not found")

	// infrastructure
	ErrPersistence        = errors.New("storage operation failed")
	ErrTiebreakerCreation = errors.New("failed to create tiebreaker matches")
	ErrStandingsExport    = errors.New("failed to export standings")
)
