// Package middleware holds the inbound HTTP middleware. The server installs
// it in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout
//
// Authenticate and RequireRole are mounted per route group by the router.
package middleware

import "net/http"

// responseWriter remembers what went out so Logging, OpenTelemetry and
// Recovery can inspect it after the handler returns. status reads 200 until
// the handler says otherwise.
type responseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the status and delegates to the wrapped writer. Only
// the first call takes effect, whether it comes from WriteHeader or from an
// implicit 200 on Write.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.started {
		rw.started, rw.status = true, code
		rw.ResponseWriter.WriteHeader(code)
	}
}

// Write delegates to the wrapped writer and counts the bytes sent.
func (rw *responseWriter) Write(p []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap returns the wrapped writer so that http.ResponseController and
// interface checks such as http.Flusher work through the wrapper.
func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }
