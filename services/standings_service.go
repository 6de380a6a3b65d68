package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/repositories"
	"github.com/Shamsear/kickoff/standings"
	"github.com/Shamsear/kickoff/storage"
)

// StandingsView is the table of a tournament as of GeneratedAt.
type StandingsView struct {
	Tournament  *models.Tournament          `json:"tournament"`
	Standings   []models.Standing           `json:"standings"`
	Statistics  models.TournamentStatistics `json:"statistics"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type StandingsService interface {
	// GetStandings recomputes the table from every stored match.
	GetStandings(ctx context.Context, tournamentID int) (*StandingsView, error)
	// ExportStandings publishes a JSON snapshot of the table to object storage.
	ExportStandings(ctx context.Context, userID, tournamentID int) (*ExportResult, error)
}

type standingsService struct {
	tournaments repositories.TournamentRepository
	matches     repositories.MatchRepository
	entrants    repositories.EntrantLister
	uploader    storage.FileUploader
	metrics     *metrics.Metrics
	logger      *logging.Logger
	now         func() time.Time
}

func NewStandingsService(d Deps) StandingsService {
	d = d.withDefaults()
	return &standingsService{
		tournaments: d.Tournaments,
		matches:     d.Matches,
		entrants:    d.Entrants,
		uploader:    d.Uploader,
		metrics:     d.Metrics,
		logger:      d.Logger.With("service", "standings"),
		now:         d.Now,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, tournamentID int) (*StandingsView, error) {
	t, err := getTournament(ctx, s.tournaments, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, t)
}

func (s *standingsService) compute(ctx context.Context, t *models.Tournament) (*StandingsView, error) {
	var (
		roster  []models.Entrant
		matches []*models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.entrants.ListEntrants(gctx, t)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matches.ListByTournament(gctx, t.MatchKind(), t.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, handleRepositoryError(err)
	}

	start := time.Now()
	table := standings.Compute(roster, matches, t.ScoringSystem)
	stats := standings.Summarize(matches, table)
	metrics.ObserveSince(s.metrics.StandingsComputeSec, start)

	return &StandingsView{
		Tournament:  t,
		Standings:   table,
		Statistics:  stats,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *standingsService) ExportStandings(ctx context.Context, userID, tournamentID int) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrStandingsExportDisabled
	}
	t, err := getOwnedTournament(ctx, s.tournaments, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	view, err := s.compute(ctx, t)
	if err != nil {
		return nil, err
	}

	body, err := sonic.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrStandingsExport, err)
	}
	key := storage.NewObjectKey(fmt.Sprintf("standings/%d", t.ID), ".json")
	uploaded, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStandingsExport, err)
	}

	s.logger.InfoContext(ctx, "standings exported", "tournament_id", t.ID, "key", uploaded.Key, "bytes", len(body))
	return &ExportResult{Key: uploaded.Key, URL: uploaded.Location}, nil
}
