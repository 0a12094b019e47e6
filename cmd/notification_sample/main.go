// Command notification_sample prints the newest notifications of one category with full content.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"storeInspect/internal/config"
	"storeInspect/internal/logging"
	"storeInspect/internal/report"
	"storeInspect/internal/runner"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))
		log.Error().Err(err).Msg("load config")
		return
	}
	log := logging.New(os.Stderr, cfg.Log.Level)
	log.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	// Failures are already reported by the runner; the tool still exits 0.
	_ = runner.New(cfg.Database, os.Stdout, log).Run(context.Background(), "notification_sample", report.NotificationSample(cfg.Reports.SampleCategory, cfg.Reports.SampleLimit))
}
