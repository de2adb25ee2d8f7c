package main

import (
	"context"
	"errors"
	"os"

	"gyneco-record-service/internal/config"
	"gyneco-record-service/internal/database"
	"gyneco-record-service/internal/domain/repositories"
	"gyneco-record-service/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("gyneco-record-service", os.Getenv("GYNECO_LOG_LEVEL"))

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database setup failed")
	}

	ctx := context.Background()

	// First call opens the store, runs migrations and seeds the default
	// studio row, so a failure here surfaces before any real work.
	studio, err := db.GetStudioSettings(ctx)
	switch {
	case errors.Is(err, repositories.ErrUnsupported):
		logger.Info().Str("backend", string(cfg.Backend)).Msg("store ready (no studio settings on this backend)")
	case err != nil:
		logger.Fatal().Err(err).Msg("store initialization failed")
	default:
		logger.Info().
			Str("backend", string(cfg.Backend)).
			Str("studio", studio.Name).
			Msg("store ready")
	}

	count, err := db.CountTodayAppointments(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("appointment count failed")
	}
	logger.Info().Int64("appointments_today", count).Msg("schedule")
}
