// Package scheduler runs the periodic tournament lifecycle job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Shamsear/kickoff/logging"
)

// Starter moves tournaments whose start date has passed into play.
type Starter interface {
	StartDueTournaments(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron    *cron.Cron
	starter Starter
	logger  *logging.Logger
	timeout time.Duration
}

// New schedules the lifecycle job on spec, a standard five field cron
// expression or a descriptor such as "@every 30s".
func New(spec string, starter Starter, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Scheduler{
		starter: starter,
		logger:  logger.With("component", "scheduler"),
		timeout: 30 * time.Second,
	}
	s.cron = cron.New(
		cron.WithLogger(cronLogger{s.logger}),
		cron.WithChain(cron.Recover(cronLogger{s.logger}), cron.SkipIfStillRunning(cronLogger{s.logger})),
	)
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce performs a single lifecycle pass.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started, err := s.starter.StartDueTournaments(ctx)
	if err != nil {
		s.logger.Error("starting due tournaments failed", "started", started, "error", err)
		return
	}
	if started > 0 {
		s.logger.Info("tournaments started", "count", started)
	}
}

// Start runs one pass right away, then follows the schedule until ctx ends.
// It returns once the running job, if any, has finished.
func (s *Scheduler) Start(ctx context.Context) {
	s.RunOnce()
	s.cron.Start()
	s.logger.Info("scheduler started", "entries", len(s.cron.Entries()))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
