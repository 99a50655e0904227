// Package logging builds the service's slog loggers and carries the
// request-scoped logger through contexts.
//
// Services log failures with the operation and the stage or project IDs
// involved, and pass the whole error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "stage operation failed",
//	    slog.String("operation", "Move"),
//	    slog.Int64("stage_id", id),
//	    slog.Any("error", err),
//	)
//
// Behind the HTTP logging middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type contextKey struct{}

// New returns a logger writing to w at the given level ("debug", "info",
// "warn" or "error"; anything else means info). format picks the handler:
// "text" for logfmt, "pretty" for colored tint output on a terminal, and
// JSON otherwise. Every format redacts credentials, and debug adds the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "pretty":
		handler = tint.NewHandler(w, &tint.Options{
			Level:       lvl,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
			TimeFormat:  time.TimeOnly,
		})
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ParseLevel maps a case-insensitive level name to its slog.Level. Unknown
// names, including "", parse as info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
