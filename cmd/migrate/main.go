package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go-gin-activities/config"
	"go-gin-activities/internal/database/migrations"
	"go-gin-activities/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "", "Migration command: up, down, version, force")
		steps   = flag.Int("steps", 0, "Number of migration steps (for up/down)")
		version = flag.Int("version", 0, "Migration version (for force)")
	)
	flag.Parse()

	if *command == "" {
		fmt.Println("Usage: go run ./cmd/migrate -command [up|down|version|force] [options]")
		fmt.Println("Commands:")
		fmt.Println("  up             - Apply all pending migrations")
		fmt.Println("  down           - Rollback migrations")
		fmt.Println("  version        - Show current migration version")
		fmt.Println("  force          - Force set migration version")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("  -steps N       - Number of steps for up/down")
		fmt.Println("  -version N     - Version number for force")
		os.Exit(1)
	}

	log := logger.WithComponent("migrate")
	cfg := config.LoadConfig()

	if err := run(log, cfg.Database.URL("pgx5"), *command, *steps, *version); err != nil {
		log.Fatal("Migration failed", zap.String("command", *command), zap.Error(err))
	}
}

func run(log *zap.Logger, databaseURL, command string, steps, version int) error {
	m, err := migrations.New(databaseURL)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("Failed to close migration instance", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	switch command {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migration up: %w", err)
		}
		log.Info("Migrations applied successfully")

	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Steps(-1) // 預設退一步
		}
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to rollback")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migration down: %w", err)
		}
		log.Info("Migrations rolled back successfully")

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		log.Info("Current migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))

	case "force":
		if version == 0 {
			return errors.New("version number required for force command")
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force migration: %w", err)
		}
		log.Info("Migration version forced", zap.Int("version", version))

	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
