// Package logging builds the slog loggers used across the collector and
// carries them through contexts. Every handler built here runs attributes
// through the masq redaction in redact_handler.go, so contributor identity
// never reaches log output in clear text.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//
// Error logs name the operation and the affected identifiers and end with
// the error chain:
//
//	logger.ErrorContext(ctx, "failed to move resource",
//	    logging.Operation("MoveResource"),
//	    slog.String("resource_id", id),
//	    logging.Err(err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Attribute keys shared by every log line that carries them.
const (
	KeyOperation = "operation"
	KeyError     = "error"
)

type contextKey struct{}

// New returns a logger writing to w. The level is one of debug, info, warn
// or error and falls back to info. Format "text" selects the text handler;
// anything else writes JSON. Debug loggers include source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to its slog.Level, case-insensitively.
// Unknown names yield slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Operation names the application operation a log line belongs to.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Err attaches the full error chain.
func Err(err error) slog.Attr {
	return slog.Any(KeyError, err)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
