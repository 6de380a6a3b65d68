// Package services orchestrates the tournament engine: it checks ownership
// and lifecycle rules, drives fixture generation and result processing, and
// publishes live updates.
package services

import (
	"math/rand/v2"
	"time"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories"
	"github.com/Shamsear/kickoff/storage"
)

// Deps are the collaborators shared by every service. Notifier, Uploader,
// Metrics, Logger, Now and Rand may be left nil.
type Deps struct {
	Tournaments  repositories.TournamentRepository
	Participants repositories.ParticipantRepository
	Teams        repositories.TeamRepository
	Matches      repositories.MatchRepository
	Entrants     repositories.EntrantLister

	Notifier realtime.Notifier
	// Uploader receives standings exports. Without one, export is disabled.
	Uploader storage.FileUploader
	Metrics  *metrics.Metrics
	Logger   *logging.Logger

	Now func() time.Time
	// Rand returns the source for a draw. Nil draws use the global source.
	Rand func() *rand.Rand
}

type Services struct {
	Tournaments  TournamentService
	Registration RegistrationService
	Fixtures     FixtureService
	Matches      MatchService
	Standings    StandingsService
}

func New(d Deps) *Services {
	d = d.withDefaults()
	brackets := newBracketKeeper(d)
	return &Services{
		Tournaments:  NewTournamentService(d),
		Registration: NewRegistrationService(d),
		Fixtures:     newFixtureService(d, brackets),
		Matches:      newMatchService(d, brackets),
		Standings:    NewStandingsService(d),
	}
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = realtime.NopNotifier{}
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Logger == nil {
		d.Logger = logging.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Entrants == nil {
		d.Entrants = repositories.NewEntrantLister(d.Participants, d.Teams)
	}
	return d
}
