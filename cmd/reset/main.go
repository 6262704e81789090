package main

import (
	"context"
	"flag"
	"os"

	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/export"
	"github.com/lifedrawing-art/backend/internal/repository"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/pkg/logger"
)

// Replaces the live platform data with the parsed tables document.
// DESTRUCTIVE: every seeded table is truncated first. Import run history
// is kept so failed loads stay visible.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	tablesPath := flag.String("tables", cfg.Export.OutputPath, "path to the parsed tables document")
	confirm := flag.Bool("yes", false, "confirm the destructive reset")
	flag.Parse()

	if !*confirm {
		log.Error().Msg("Refusing to reset without -yes; this truncates all seeded tables")
		os.Exit(1)
	}

	tables, err := export.LoadTables(*tablesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *tablesPath).Msg("Failed to load tables document")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	repos := repository.New(db)
	services := service.NewServices(repos, cfg, log)

	run, err := services.Seed.Reset(context.Background(), tables, *tablesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Reset failed")
	}

	log.Info().
		Str("run_id", run.ID).
		Str("status", string(run.Status)).
		Int("total_rows", run.TotalRows).
		Int("loaded_rows", run.LoadedRows).
		Msg("Reset complete")
}
