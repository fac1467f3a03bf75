package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/project-collector/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/project-collector/internal/adapters/storage"
	"github.com/jsamuelsen11/project-collector/internal/app"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// engine is the form service plus the resources it holds for one
// invocation.
type engine struct {
	svc     ports.FormService
	backend storage.Backend
}

// openEngine loads configuration and wires the form service over the
// configured draft slot. Telemetry stays off in the CLI; metrics are nil.
func openEngine(ctx context.Context, profile, configDir string, logOut io.Writer) (*engine, error) {
	var opts []config.Option
	if configDir != "" {
		opts = append(opts, config.WithConfigDir(configDir))
	}

	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, &configError{err: fmt.Errorf("loading config: %w", err)}
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	ctx = logging.WithLogger(ctx, logger)

	backend, err := storage.Open(ctx, cfg.Storage, cfg.Form.Slot)
	if err != nil {
		return nil, fmt.Errorf("opening draft store: %w", err)
	}

	store := app.NewStore(ctx, backend, submission.NewID, logger, nil)
	client := acl.NewCollectorClient(httpclient.New(&cfg.Collector, "collector", nil, logger), logger)
	pipeline := app.NewPipeline(store, client, cfg.Form.SubmitTimeout, logger, nil)

	logger.DebugContext(ctx, "engine ready",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("slot", cfg.Form.Slot),
	)

	return &engine{
		svc:     app.NewFormService(store, pipeline, logger),
		backend: backend,
	}, nil
}

// Close releases the draft store.
func (e *engine) Close() error {
	if err := e.backend.Close(); err != nil {
		return fmt.Errorf("closing draft store: %w", err)
	}
	return nil
}
