package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/project-collector/internal/adapters/http"
	"github.com/jsamuelsen11/project-collector/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-collector/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/project-collector/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/project-collector/internal/adapters/storage"
	"github.com/jsamuelsen11/project-collector/internal/app"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/health"
	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// collectorPeer names the collector in client spans, metrics and health.
const collectorPeer = "collector"

// wire registers every provider of the form service. Providers are lazy;
// nothing is built until the server is resolved.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, metrics)

	// Engine: draft slot, collector delivery, store, pipeline, service.
	do.Provide(i, func(do.Injector) (storage.Backend, error) {
		return storage.Open(ctx, cfg.Storage, cfg.Form.Slot)
	})
	do.Provide(i, func(do.Injector) (*acl.CollectorClient, error) {
		return acl.NewCollectorClient(httpclient.New(&cfg.Collector, collectorPeer, metrics, logger), logger), nil
	})
	do.Provide(i, func(i do.Injector) (*app.Store, error) {
		backend, err := do.Invoke[storage.Backend](i)
		if err != nil {
			return nil, err
		}
		return app.NewStore(ctx, backend, submission.NewID, logger, metrics), nil
	})
	do.Provide(i, func(i do.Injector) (*app.Pipeline, error) {
		return app.NewPipeline(
			do.MustInvoke[*app.Store](i),
			do.MustInvoke[*acl.CollectorClient](i),
			cfg.Form.SubmitTimeout, logger, metrics,
		), nil
	})
	do.Provide(i, func(i do.Injector) (ports.FormService, error) {
		return app.NewFormService(do.MustInvoke[*app.Store](i), do.MustInvoke[*app.Pipeline](i), logger), nil
	})

	// Transport: health, handlers, middleware chain, server.
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
	do.Provide(i, func(i do.Injector) (http.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewFormHandler(do.MustInvoke[ports.FormService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[http.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return i
}

// healthCheckers lists the dependencies readiness reports on.
func healthCheckers(i do.Injector) []ports.HealthChecker {
	return []ports.HealthChecker{
		do.MustInvoke[storage.Backend](i),
		do.MustInvoke[*acl.CollectorClient](i),
	}
}
