package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
)

// jitter is the maximum deviation applied to a backoff delay, as a fraction.
const jitter = 0.25

// retryPolicy bounds redelivery of a payload whose connection never opened.
type retryPolicy struct {
	attempts int
	base     time.Duration
	ceiling  time.Duration
	factor   float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts: max(cfg.MaxAttempts, 1),
		base:     cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

// delay returns the pause before retry n (1 for the first retry): exponential
// growth capped at the ceiling, then jittered by up to ±25%.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.base)*math.Pow(p.factor, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send performs the exchange, building a fresh request per attempt. Only dial
// failures are retried: once a connection opens the collector may already
// hold the payload.
func (c *Client) send(ctx context.Context, newRequest func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := range c.retry.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		req, err := newRequest()
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !dialFailed(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, attempt int, cause error) error {
	wait := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying delivery",
		logging.Operation("httpclient.Post"),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		logging.Err(cause),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// dialFailed reports whether err happened before a connection was
// established. Cancellation never counts.
func dialFailed(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
