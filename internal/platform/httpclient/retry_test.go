package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/project-collector/internal/platform/config"
)

func TestNewRetryPolicy_AtLeastOneAttempt(t *testing.T) {
	t.Parallel()

	if got := newRetryPolicy(config.RetryConfig{MaxAttempts: 0}).attempts; got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
	if got := newRetryPolicy(config.RetryConfig{MaxAttempts: 4}).attempts; got != 4 {
		t.Errorf("attempts = %d, want 4", got)
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := retryPolicy{base: 100 * time.Millisecond, ceiling: 500 * time.Millisecond, factor: 2}

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{retry: 1, want: 100 * time.Millisecond},
		{retry: 2, want: 200 * time.Millisecond},
		{retry: 3, want: 400 * time.Millisecond},
		{retry: 4, want: 500 * time.Millisecond},
		{retry: 12, want: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("retry %d", tt.retry), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.want) * (1 - jitter))
			hi := time.Duration(float64(tt.want) * (1 + jitter))
			for range 200 {
				if d := p.delay(tt.retry); d < lo || d > hi {
					t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.retry, d, lo, hi)
				}
			}
		})
	}
}

func TestDialFailed(t *testing.T) {
	t.Parallel()

	dial := &net.OpError{Op: "dial", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil},
		{name: "canceled", err: context.Canceled},
		{name: "deadline", err: fmt.Errorf("post: %w", context.DeadlineExceeded)},
		{name: "dial", err: dial, want: true},
		{name: "dial inside url error", err: &url.Error{Op: "Post", URL: "http://x", Err: dial}, want: true},
		{name: "read", err: &net.OpError{Op: "read", Err: errors.New("connection reset")}},
		{name: "write", err: &net.OpError{Op: "write", Err: errors.New("broken pipe")}},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dialFailed(tt.err); got != tt.want {
				t.Errorf("dialFailed(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	if got := outcome(nil, errors.New("x")); got != outcomeError {
		t.Errorf("outcome(nil, err) = %q, want %q", got, outcomeError)
	}
	if got := outcome(nil, fmt.Errorf("wrapped: %w", gobreaker.ErrOpenState)); got != outcomeCircuitOpen {
		t.Errorf("outcome(open) = %q, want %q", got, outcomeCircuitOpen)
	}
}
