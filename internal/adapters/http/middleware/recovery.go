package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// errPanic is reported to the client in place of the panic value.
var errPanic = errors.New("handler panic")

// Recovery converts a handler panic into a logged stack trace and a 500
// problem response. If the handler already started writing, the partial
// response is left as is. http.ErrAbortHandler keeps propagating so net/http
// can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				if v := recover(); v != nil {
					recovered(logger, rw, r, v)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func recovered(logger *slog.Logger, rw *responseWriter, r *http.Request, v any) {
	if err, isErr := v.(error); isErr && errors.Is(err, http.ErrAbortHandler) {
		panic(v)
	}

	if logger == nil {
		logger = logging.FromContext(r.Context())
	}
	logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
	)

	if !rw.started {
		dto.WriteErrorResponse(rw, r, errPanic)
	}
}
