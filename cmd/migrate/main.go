// Command migrate manages the database schema.
//
//	migrate up            apply every pending migration
//	migrate down [n]      roll back n migrations (all when n is omitted)
//	migrate version       print the current version
//	migrate force <v>     mark version v as applied without running it
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"

	"github.com/Shamsear/kickoff/db"
	"github.com/Shamsear/kickoff/logging"
)

func main() {
	_ = godotenv.Load()
	logger := logging.NewJSON(logging.LevelInfo)
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up | down [n] | version | force <version>")
		os.Exit(2)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Error("DATABASE_URL environment variable is not set")
		os.Exit(1)
	}

	conn, err := db.Connect(dsn, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	m, err := db.NewMigrator(conn.DB)
	if err != nil {
		logger.Error("failed to create migrator", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if err := execute(m, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("no migrations applied")
	case err != nil:
		logger.Error("failed to read schema version", "error", err)
		os.Exit(1)
	default:
		logger.Info("schema version", "version", version, "dirty", dirty)
	}
}

func execute(m *migrate.Migrate, command string, args []string) error {
	var err error
	switch command {
	case "up":
		err = m.Up()
	case "down":
		if len(args) == 0 {
			err = m.Down()
			break
		}
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n <= 0 {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		err = m.Steps(-n)
	case "version":
		return nil
	case "force":
		if len(args) == 0 {
			return errors.New("force needs a version")
		}
		v, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		err = m.Force(v)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
