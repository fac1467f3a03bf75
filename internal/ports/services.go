package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

// FormService defines the service port for the form state & submission engine.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI). Every mutating method persists the record before it returns
// and yields the resulting FormState.
type FormService interface {
	// Snapshot returns the current form state without mutating anything.
	Snapshot(ctx context.Context) FormState

	// SetField replaces a scalar field (change trigger). The field is
	// validated only if it has been touched before.
	// Returns domain.ErrValidation for an unknown field.
	SetField(ctx context.Context, field submission.Field, value string) (FormState, error)

	// BlurField validates a scalar field and marks it touched (blur trigger).
	// Returns domain.ErrValidation for an unknown field.
	BlurField(ctx context.Context, field submission.Field) (FormState, error)

	// AddResource appends a blank resource item with a fresh id.
	AddResource(ctx context.Context) (submission.ResourceItem, FormState)

	// UpdateResource replaces the remark or link of a resource item.
	// Returns domain.ErrNotFound if no item has the id.
	UpdateResource(ctx context.Context, id string, field submission.ResourceField, value string) (FormState, error)

	// BlurResource validates a resource item's link and marks it touched.
	// Returns domain.ErrNotFound if no item has the id.
	BlurResource(ctx context.Context, id string) (FormState, error)

	// RemoveResource deletes a resource item.
	// Returns domain.ErrNotFound if no item has the id.
	RemoveResource(ctx context.Context, id string) (FormState, error)

	// MoveResource moves a resource item to position; out-of-range positions
	// clamp. Returns domain.ErrNotFound if no item has the id.
	MoveResource(ctx context.Context, id string, position int) (FormState, error)

	// Submit validates the whole record and, if it passes, sends it to the
	// collector. On success the project fields are reset. The returned state
	// carries the SubmissionResult in LastResult whenever a request was made.
	// Returns domain.ErrValidation when the gate rejects the record,
	// domain.ErrSubmissionInProgress when another submission is in flight,
	// and errors wrapping domain.ErrSubmissionTimeout or
	// domain.ErrSubmissionTransport when delivery fails.
	Submit(ctx context.Context) (FormState, error)

	// ResetAll discards the record, clears the durable slot, and starts fresh.
	ResetAll(ctx context.Context) FormState

	// ResetProjectFields clears everything except the identity fields.
	ResetProjectFields(ctx context.Context) FormState
}

// Notice is a user-facing title/description pair for the notification
// collaborator.
type Notice struct {
	Title       string
	Description string
}

// FormState is everything the rendering collaborator consumes.
type FormState struct {
	Record     submission.Record
	Validation submission.ValidationState
	Progress   submission.Progress
	Submitting bool
	LastResult *SubmissionResult

	// Notice is set by operations that announce their outcome
	// (resets and submissions).
	Notice *Notice
}

// SubmissionStatus is the outcome of one submission attempt.
type SubmissionStatus string

const (
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// SubmissionResult describes the last completed submission attempt.
type SubmissionResult struct {
	Status SubmissionStatus

	// Acknowledged is true when the collector call completed without error
	// or timeout. The response itself is never read.
	Acknowledged bool

	Notice      Notice
	Err         error
	CompletedAt time.Time
}
