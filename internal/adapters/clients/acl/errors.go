// Package acl implements the Anti-Corruption Layer between the domain record
// and the remote collector. The wire shape and its translation live in the
// acl/collector subpackage; request execution and error mapping live here.
package acl

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
)

// TranslateError maps an outbound failure to a domain error. Every result
// wraps domain.ErrSubmissionTransport; a breaker rejection also wraps
// domain.ErrUnavailable. Context errors are kept in the chain so callers can
// tell a canceled call apart.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %w: %w", domain.ErrSubmissionTransport, domain.ErrUnavailable, err)
	case errors.As(err, &statusErr):
		return fmt.Errorf("%w: collector answered %d: %w", domain.ErrSubmissionTransport, statusErr.StatusCode, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: request abandoned: %w", domain.ErrSubmissionTransport, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrSubmissionTransport, err)
	}
}
