// Package main is the entry point for gridrealm.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridrealm/internal/game"
	"github.com/samdwyer/gridrealm/internal/logger"
	"github.com/samdwyer/gridrealm/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "note: .env file not loaded: %v\n", err)
	}

	log := logger.New()
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	g, err := game.New(game.ConfigFromEnv(), log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize game")
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Fatal("game error")
	}
}

// setupOTelEnv maps our custom env vars onto the standard OTEL_* ones.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GRIDREALM_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDREALM_DATASET")
	if dataset == "" {
		dataset = "gridrealm"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
