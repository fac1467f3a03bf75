// Package main runs the form service: it loads the profile's config, wires
// the engine with samber/do, serves the API and drains on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	adapthttp "github.com/jsamuelsen11/project-collector/internal/adapters/http"
	"github.com/jsamuelsen11/project-collector/internal/adapters/storage"
	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-collector/internal/ports"

	"github.com/samber/do/v2"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

var errNoProfile = errors.New("APP_PROFILE is required (local, dev, test or prod)")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "form service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local development convenience and may be absent.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errNoProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading %s config: %w", profile, err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer flush(logger, otel)

	injector := wire(ctx, cfg, logger, otel.Metrics)

	// Resolving the server builds the whole graph, which rehydrates the
	// draft slot before the first request.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring form service: %w", err)
	}

	backend := do.MustInvoke[storage.Backend](injector)
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("closing draft store", logging.Operation("storage.Close"), logging.Err(err))
		}
	}()

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, c := range healthCheckers(injector) {
		registry.Register(c)
	}

	logger.Info("form service ready",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("slot", cfg.Form.Slot),
		slog.String("collector", cfg.Collector.Endpoint),
	)

	if err := server.Run(ctx, drainTimeout); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("form service stopped")
	return nil
}

// flush gives exporters a bounded window to push what they hold. The signal
// context is already done by now, so it gets a fresh one.
func flush(logger *slog.Logger, otel *telemetry.Providers) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", logging.Operation("telemetry.Shutdown"), logging.Err(err))
	}
}
