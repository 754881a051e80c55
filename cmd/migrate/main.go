package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"upload-relay/internal/adapters/repository/postgres"
	"upload-relay/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		source string
		up     bool
		down   bool
	)

	flag.StringVar(&source, "source", "db/migrations", "Path to migrations directory")
	flag.BoolVar(&up, "up", false, "Run up migrations")
	flag.BoolVar(&down, "down", false, "Run down migrations")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if up == down {
		logger.Error("exactly one of -up or -down is required")
		os.Exit(2)
	}

	var cfg config.DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	if !cfg.Enabled() {
		logger.Error("DB_HOST is required")
		os.Exit(1)
	}

	if err := run(cfg, source, up, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.DatabaseConfig, source string, up bool, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", source), "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	direction, apply := "up", m.Up
	if !up {
		direction, apply = "down", m.Down
	}

	logger.Info("running migrations", "direction", direction, "source", source)
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", "direction", direction)
			return nil
		}
		return fmt.Errorf("failed to run %s migrations: %w", direction, err)
	}
	logger.Info("migrations completed", "direction", direction)
	return nil
}
