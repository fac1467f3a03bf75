// Package future provides a single-value asynchronous computation that can be
// raced against a deadline.
//
// The computation starts immediately in its own goroutine. Await returns
// whichever finishes first, the computation or the deadline. When the
// deadline wins, the computation's context is canceled and its eventual
// result is handed to a discard callback instead of being dropped silently,
// so a late completion can never be mistaken for a live one.
package future

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrDeadline is returned by Await when the deadline fires before the
// computation completes.
var ErrDeadline = errors.New("future: deadline exceeded")

// Result holds the outcome of a computation.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a computation started by Go.
type Future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	result Result[T]

	awaitOnce sync.Once
}

// Go starts fn in a new goroutine. The context passed to fn keeps the values
// of ctx (logger, trace span) but not its cancellation: only the deadline in
// Await cancels the computation.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f := &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)
		val, err := fn(runCtx)
		f.result = Result[T]{Value: val, Err: err}
	}()

	return f
}

// Done returns a channel closed once the computation has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the computation finishes or timeout elapses.
//
// When the computation wins, its value and error are returned. When the
// deadline wins, Await cancels the computation and returns ErrDeadline; if
// discard is non-nil it is called from a separate goroutine with the late
// result once the computation returns. A non-positive timeout waits without
// a deadline.
//
// Await must be called at most once; later calls return ErrDeadline
// without waiting.
func (f *Future[T]) Await(timeout time.Duration, discard func(Result[T])) (T, error) {
	var zero T
	first := false
	f.awaitOnce.Do(func() { first = true })
	if !first {
		return zero, ErrDeadline
	}

	if timeout <= 0 {
		<-f.done
		f.cancel()
		return f.result.Value, f.result.Err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		f.cancel()
		return f.result.Value, f.result.Err
	case <-timer.C:
		f.cancel()
		go func() {
			<-f.done
			if discard != nil {
				discard(f.result)
			}
		}()
		return zero, ErrDeadline
	}
}
