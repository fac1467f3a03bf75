package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-collector/internal/app/future"
	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// DefaultSubmitTimeout bounds one submission when no timeout is configured.
const DefaultSubmitTimeout = 10 * time.Second

// Pipeline gates, transmits, and recovers one submission at a time. A
// second Submit while one is in flight is rejected rather than queued.
type Pipeline struct {
	store   *Store
	client  ports.CollectorClient
	timeout time.Duration
	logger  *slog.Logger
	metrics *telemetry.Metrics
	now     func() time.Time

	inFlight atomic.Bool

	mu         sync.Mutex
	lastResult *ports.SubmissionResult
}

// NewPipeline creates a Pipeline reading from store and sending through
// client. A non-positive timeout falls back to DefaultSubmitTimeout.
// metrics may be nil.
func NewPipeline(
	store *Store,
	client ports.CollectorClient,
	timeout time.Duration,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &Pipeline{
		store:   store,
		client:  client,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Submitting reports whether a submission is in flight.
func (p *Pipeline) Submitting() bool {
	return p.inFlight.Load()
}

// LastResult returns the outcome of the most recent completed attempt, or
// nil if no request has been made yet.
func (p *Pipeline) LastResult() *ports.SubmissionResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastResult
}

// Submit runs the full pipeline:
//
//  1. reject if another submission is in flight
//  2. validate every field and every resource that will be sent; reject
//     with a validation error if anything fails or a gating field is empty
//  3. send the record, racing the collector call against the timeout
//  4. on success reset the project fields; on failure leave the record as is
//
// The returned result is nil when nothing was sent.
func (p *Pipeline) Submit(ctx context.Context) (*ports.SubmissionResult, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrSubmissionInProgress
	}
	defer p.inFlight.Store(false)

	rec := p.store.Record()
	state := submission.ValidateAll(rec)
	p.store.ApplyValidation(state)

	if err := gate(rec, state); err != nil {
		p.logger.InfoContext(ctx, "submission rejected by validation", logging.Err(err))
		p.recordMetrics(ctx, "rejected", 0)
		return nil, err
	}

	p.logger.InfoContext(ctx, "submitting project",
		slog.String("title", rec.Title),
		slog.Int("resources", len(rec.FilledResources())),
	)

	start := p.now()
	fut := future.Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.client.Submit(ctx, rec)
	})
	_, err := fut.Await(p.timeout, p.discardLate(ctx))
	elapsed := p.now().Sub(start)

	if err != nil {
		err = p.classify(err)
		result := &ports.SubmissionResult{
			Status:      ports.SubmissionFailed,
			Notice:      NoticeSubmissionFailed,
			Err:         err,
			CompletedAt: p.now(),
		}
		p.setLastResult(result)

		p.logger.ErrorContext(ctx, "submission failed",
			logging.Operation("Submit"),
			slog.Duration("elapsed", elapsed),
			logging.Err(err),
		)
		p.recordMetrics(ctx, resultLabel(err), elapsed)
		return result, err
	}

	p.store.ResetProjectFields(ctx)

	result := &ports.SubmissionResult{
		Status:       ports.SubmissionSucceeded,
		Acknowledged: true,
		Notice:       NoticeSubmitted,
		CompletedAt:  p.now(),
	}
	p.setLastResult(result)

	p.logger.InfoContext(ctx, "submission succeeded", slog.Duration("elapsed", elapsed))
	p.recordMetrics(ctx, "success", elapsed)
	return result, nil
}

// gate enforces strict gating: every recorded error blocks, and so does an
// empty gating field even if its rule produced no message.
func gate(rec submission.Record, state submission.ValidationState) error {
	if err := state.AsError(); err != nil {
		return err
	}
	if !submission.IsSubmittable(rec) {
		return &domain.ValidationError{
			Fields: map[string]string{"record": "required fields are missing"},
		}
	}
	return nil
}

// classify maps a collector or deadline error onto the submission sentinels.
func (p *Pipeline) classify(err error) error {
	switch {
	case errors.Is(err, future.ErrDeadline):
		return fmt.Errorf("no response within %s: %w", p.timeout, domain.ErrSubmissionTimeout)
	case errors.Is(err, domain.ErrSubmissionTransport):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrSubmissionTransport, err)
	}
}

// discardLate returns the callback that receives a collector result arriving
// after the deadline. The result is only logged; the pipeline has already
// reported a timeout and released the in-flight guard.
func (p *Pipeline) discardLate(ctx context.Context) func(future.Result[struct{}]) {
	return func(r future.Result[struct{}]) {
		p.logger.WarnContext(ctx, "discarding late collector result",
			logging.Operation("Submit"),
			logging.Err(r.Err),
		)
	}
}

func (p *Pipeline) setLastResult(r *ports.SubmissionResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastResult = r
}

func (p *Pipeline) recordMetrics(ctx context.Context, result string, elapsed time.Duration) {
	if p.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	p.metrics.SubmissionTotal.Add(ctx, 1, attrs)
	if result != "rejected" {
		p.metrics.SubmissionDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}

func resultLabel(err error) string {
	if errors.Is(err, domain.ErrSubmissionTimeout) {
		return "timeout"
	}
	return "transport_error"
}
