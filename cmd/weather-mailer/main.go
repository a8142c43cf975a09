package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"weather-mailer/internal/config"
	"weather-mailer/internal/services"
)

// Single-shot batch job: one invocation fetches the weather, derives the
// outfit advice and sends at most one notification. Scheduling is external
// (cron, CI timer); any unrecoverable failure exits non-zero.
func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Daily Weather & Outfit Mailer")

	// Load configuration; required settings are validated before any
	// network activity.
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	pipeline := services.NewPipeline(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := pipeline.Run(ctx); err != nil {
		logger.Error("Run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("Notification sent")
}
