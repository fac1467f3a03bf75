package ports

import (
	"context"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

// CollectorClient defines the client port for the remote collector endpoint.
// Implemented by the collector adapter; called by the submission pipeline.
// The endpoint is opaque: it receives one POST per submission and its
// response body carries no meaning.
type CollectorClient interface {
	// Submit sends the record to the collector. A nil error is the only
	// success signal. Returns an error wrapping domain.ErrSubmissionTransport
	// when the request could not be delivered.
	Submit(ctx context.Context, record submission.Record) error
}
