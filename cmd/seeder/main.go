package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kennedia_site/internal/adapters/observability"
	"kennedia_site/internal/app"
	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
	"kennedia_site/internal/shared"
	mysqlrepo "kennedia_site/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()
	logger.Info().Str("seed_file", cfg.SeedFile).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	var (
		c   domain.Catalog
		err error
	)
	if cfg.SeedFile != "" {
		c, err = catalog.LoadFile(cfg.SeedFile)
	} else {
		c, err = catalog.LoadSeed()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("load seed failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("db.Ping failed")
	}
	logger.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	rep, err := app.NewSeedService(repo, cfg.SeedWorkers).Seed(ctx, c)
	if err != nil {
		logger.Error().Err(err).Msg("seeding finished with errors")
	}
	logger.Info().
		Int("cities", rep.Cities).
		Int("hotels", rep.Hotels).
		Int("restaurants", rep.Restaurants).
		Int("warnings", len(rep.Warnings)).
		Msg("seeding completed")
	if err != nil {
		cancel()
		log.Fatal().Msg("seeder failed")
	}
}
