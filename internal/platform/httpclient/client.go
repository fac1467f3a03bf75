// Package httpclient delivers payloads to the remote collector over HTTP.
//
// A delivery passes through these stages, outermost first:
//
//	breaker → rate limit → trace headers → client span → dial retry → net/http
//
// Usage:
//
//	client := httpclient.New(&cfg.Collector, "collector", metrics, logger)
//	resp, err := client.Post(ctx, "application/json", payload)
//
// Inbound middleware tags the context so outbound calls carry the same IDs:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
)

// StatusError reports a non-2xx response. It is produced only when the
// client is configured to require a success status.
type StatusError struct {
	StatusCode int
	Service    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered HTTP %d", e.Service, e.StatusCode)
}

// Client posts payloads to a single configured endpoint.
type Client struct {
	http          *http.Client
	endpoint      string
	name          string
	requireStatus bool
	breaker       *gobreaker.CircuitBreaker[*http.Response]
	limiter       *rate.Limiter // nil disables rate limiting
	retry         retryPolicy
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// New builds a Client from the collector configuration. The name labels
// spans, metrics and breaker logs. Nil metrics skip recording and a nil
// logger discards output.
func New(cfg *config.CollectorConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		http:          &http.Client{Timeout: cfg.Timeout},
		endpoint:      cfg.Endpoint,
		name:          name,
		requireStatus: cfg.RequireSuccessStatus,
		breaker:       newBreaker(name, cfg.CircuitBreaker, logger),
		limiter:       limiter,
		retry:         newRetryPolicy(cfg.Retry),
		metrics:       metrics,
		logger:        logger,
	}
}

// Post sends payload to the endpoint with the given content type.
//
// When a response arrives it is returned with an open body the caller must
// close, even if err is a *StatusError. Breaker rejections, rate-limit
// cancellation and transport failures return a nil response.
func (c *Client) Post(ctx context.Context, contentType string, payload []byte) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limit: %w", err)
			}
		}

		spanCtx, span := c.startSpan(ctx, http.MethodPost)
		defer span.End()

		newRequest := func() (*http.Request, error) {
			req, err := http.NewRequestWithContext(spanCtx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
			if err != nil {
				return nil, fmt.Errorf("creating request: %w", err)
			}
			req.Header.Set("Content-Type", contentType)
			setTraceHeaders(spanCtx, req.Header)
			return req, nil
		}

		resp, err := c.send(spanCtx, newRequest)
		if err == nil {
			err = c.checkStatus(resp)
		}
		endSpan(span, resp, err)
		return resp, err
	})

	c.record(ctx, http.MethodPost, start, resp, err)
	return resp, err
}

// Endpoint returns the configured collector URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Name returns the downstream identifier. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

func (c *Client) checkStatus(resp *http.Response) error {
	if !c.requireStatus || resp == nil {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Service: c.name}
	}
	return nil
}
