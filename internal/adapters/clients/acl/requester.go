package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
)

// maxDrainSize bounds how much of an ignored response body is read so the
// connection can be reused.
const maxDrainSize = 64 << 10

// Requester owns the outbound lifecycle of a collector delivery, from JSON
// encoding to error translation. The collector's response body carries no
// meaning, so it is drained and discarded.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Post marshals body to JSON and delivers it to the configured endpoint. A
// nil return means the exchange completed; see httpclient.Client.Post for
// when a non-2xx status counts as failure.
func (r *Requester) Post(ctx context.Context, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling POST body: %w", err)
	}

	resp, err := r.client.Post(ctx, "application/json", payload)
	if resp != nil {
		defer r.drain(ctx, resp)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "delivery failed",
			slog.String("url", r.client.Endpoint()),
			slog.Int("bytes", len(payload)),
			logging.Err(err),
		)
		return TranslateError(err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		// Opaque endpoint: the exchange completed, so this is still delivered.
		r.logger.WarnContext(ctx, "collector returned non-success status",
			slog.String("url", r.client.Endpoint()),
			slog.Int("status", resp.StatusCode),
		)
	}
	return nil
}

// Client returns the underlying HTTP client.
func (r *Requester) Client() *httpclient.Client {
	return r.client
}

// drain reads and closes the response body, logging on close failure.
func (r *Requester) drain(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			logging.Err(err),
		)
	}
}
