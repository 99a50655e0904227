package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// Logging stores a logger tagged with the request and correlation IDs in the
// request context and logs a "request started" and a "request completed"
// record around the handler. With debug enabled the redacted request
// headers are logged too.
//
// The completion level is Error for 5xx, Warn for 4xx and Info otherwise.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()

			log := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, log)
			target := []slog.Attr{slog.String("method", r.Method), slog.String("path", r.URL.Path)}

			log.LogAttrs(ctx, slog.LevelInfo, "request started", target...)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			log.LogAttrs(ctx, levelFor(rw.status), "request completed", append(target,
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(began)),
			)...)
		})
	}
}

func levelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	if status >= http.StatusBadRequest {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// routePattern is the chi pattern that matched r, such as
// "/api/v1/stages/{id}". It is empty until routing has run and for
// requests no route matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
