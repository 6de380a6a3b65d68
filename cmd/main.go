package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Shamsear/kickoff/config"
	"github.com/Shamsear/kickoff/db"
	"github.com/Shamsear/kickoff/handlers"
	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/metrics"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/repositories"
	"github.com/Shamsear/kickoff/repositories/memory"
	api "github.com/Shamsear/kickoff/routes"
	"github.com/Shamsear/kickoff/scheduler"
	"github.com/Shamsear/kickoff/services"
	"github.com/Shamsear/kickoff/storage"
)

const shutdownTimeout = 15 * time.Second

// repositorySet is what a storage backend hands to the services.
type repositorySet struct {
	tournaments  repositories.TournamentRepository
	participants repositories.ParticipantRepository
	teams        repositories.TeamRepository
	matches      repositories.MatchRepository
	close        func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(level)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	logger.Info("configuration loaded", "port", cfg.ServerPort, "backend", cfg.StorageBackend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	uploader, exports, err := newUploader(ctx, cfg, logger)
	if err != nil {
		return err
	}

	m := metrics.New()

	pubSub := realtime.NewPubSub(logger)
	defer func() {
		if err := pubSub.Close(); err != nil {
			logger.Error("failed to close pub/sub", "error", err)
		}
	}()

	hub := realtime.NewHub(realtime.HubOptions{
		Logger:         logger,
		Dropped:        m.BroadcastsDropped,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	go hub.Run(ctx)
	if err := realtime.Relay(ctx, pubSub, hub); err != nil {
		return fmt.Errorf("subscribe websocket relay: %w", err)
	}
	notifier := realtime.NewWatermillNotifier(pubSub, logger, m.BroadcastsDropped)
	logger.Info("websocket hub started")

	svc := services.New(services.Deps{
		Tournaments:  repos.tournaments,
		Participants: repos.participants,
		Teams:        repos.teams,
		Matches:      repos.matches,
		Notifier:     notifier,
		Uploader:     uploader,
		Metrics:      m,
		Logger:       logger,
	})
	logger.Info("services initialized")

	schedulerDone := make(chan struct{})
	if cfg.StatusCron != "" {
		sched, err := scheduler.New(cfg.StatusCron, svc.Tournaments, logger)
		if err != nil {
			return err
		}
		go func() {
			defer close(schedulerDone)
			sched.Start(ctx)
		}()
	} else {
		close(schedulerDone)
		logger.Info("lifecycle scheduler disabled")
	}

	router := api.NewRouter(api.Handlers{
		Tournaments:  handlers.NewTournamentHandler(svc.Tournaments),
		Registration: handlers.NewRegistrationHandler(svc.Registration),
		Fixtures:     handlers.NewFixtureHandler(svc.Fixtures),
		Matches:      handlers.NewMatchHandler(svc.Matches),
		Standings:    handlers.NewStandingsHandler(svc.Standings),
		WebSocket:    handlers.NewWebSocketHandler(hub, svc.Tournaments, logger),
	}, api.Options{
		JWTSecret:      []byte(cfg.JWTSecretKey),
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        m.Handler(),
		Exports:        exports,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     logger.StdLog(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		_ = server.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	stop()
	<-schedulerDone
	notifier.Wait()
	logger.Info("server stopped")
	return nil
}

func openRepositories(cfg *config.Config, logger *logging.Logger) (*repositorySet, error) {
	if cfg.StorageBackend == config.BackendMemory {
		store := memory.NewStore()
		logger.Warn("using in-memory storage, data is lost on restart")
		return &repositorySet{
			tournaments:  store.Tournaments(),
			participants: store.Participants(),
			teams:        store.Teams(),
			matches:      store.Matches(),
			close:        func() error { return nil },
		}, nil
	}

	conn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := db.MigrateUp(conn.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}
		logger.Info("database schema is up to date")
	}
	return postgresRepositories(conn), nil
}

func postgresRepositories(conn *sqlx.DB) *repositorySet {
	return &repositorySet{
		tournaments:  repositories.NewPostgresTournamentRepository(conn),
		participants: repositories.NewPostgresParticipantRepository(conn),
		teams:        repositories.NewPostgresTeamRepository(conn),
		matches:      repositories.NewPostgresMatchRepository(conn),
		close:        conn.Close,
	}
}

// newUploader picks Cloudflare R2 when it is fully configured. Otherwise
// exports stay in memory and are served by the returned handler.
func newUploader(ctx context.Context, cfg *config.Config, logger *logging.Logger) (storage.FileUploader, http.Handler, error) {
	r2 := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	if r2.Complete() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, r2)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized", "bucket", cfg.R2BucketName)
		return uploader, nil, nil
	}

	uploader, err := storage.NewMemoryUploader(fmt.Sprintf("http://localhost:%d/exports", cfg.ServerPort))
	if err != nil {
		return nil, nil, err
	}
	logger.Warn("R2 is not configured, standings exports are kept in memory")
	return uploader, uploader, nil
}
