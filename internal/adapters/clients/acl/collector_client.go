package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/project-collector/internal/adapters/clients/acl/collector"
	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

var (
	_ ports.CollectorClient = (*CollectorClient)(nil)
	_ ports.HealthChecker   = (*CollectorClient)(nil)
)

// CollectorClient is the outbound adapter for the remote collector. It
// implements [ports.CollectorClient] with one POST per submission, translated
// through [collector.ToSubmissionDTO].
//
// The underlying [httpclient.Client] provides circuit breaking, dial-failure
// retry, OpenTelemetry tracing, and the breaker-based health check.
type CollectorClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCollectorClient creates a CollectorClient that posts to the client's
// configured endpoint.
func NewCollectorClient(client *httpclient.Client, logger *slog.Logger) *CollectorClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CollectorClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Submit sends rec to the collector. Errors wrap [domain.ErrSubmissionTransport].
func (c *CollectorClient) Submit(ctx context.Context, rec submission.Record) error {
	dto, err := collector.ToSubmissionDTO(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSubmissionTransport, err)
	}

	if err := c.req.Post(ctx, dto); err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "submission delivered",
		slog.Int("resources", len(rec.FilledResources())),
	)
	return nil
}

// Name returns the identifier used in the health registry.
func (c *CollectorClient) Name() string {
	return c.req.Client().Name()
}

// HealthCheck reports the collector's availability from the circuit breaker
// state; no network call is made. This reports downstream status only: the
// form keeps accepting edits while the collector is failing.
func (c *CollectorClient) HealthCheck(ctx context.Context) error {
	return c.req.Client().HealthCheck(ctx)
}
