package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/stageboard/internal/platform/httpclient"
)

// maxIDLength bounds inbound request and correlation IDs. Longer or
// non-printable values are replaced rather than echoed into logs.
const maxIDLength = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a copy of ctx carrying the request ID. It also stores
// the ID via httpclient.WithRequestID, so calls to the project API forward it
// in the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// WithCorrelationID returns a copy of ctx carrying the correlation ID, which
// httpclient forwards as X-Correlation-ID. Unlike the request ID it is meant
// to survive hops, so a caller's value is kept whenever it is well-formed.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that settles the X-Request-ID of each request.
// A well-formed inbound header is reused; otherwise a random UUID is
// assigned. The ID is stored in the request context and echoed on the
// response:
//
//	X-Request-ID: 0b5c5f0e-6f0a-4a4b-9a52-2b9a1f0f6d11
func RequestID() func(http.Handler) http.Handler {
	return propagateID(httpclient.HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID returns middleware that settles the X-Correlation-ID of each
// request. A well-formed inbound header is kept; otherwise the request ID is
// reused, so a request that starts a conversation correlates with itself.
// It has to be mounted after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(httpclient.HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

// propagateID stores and echoes header, using fallback when the inbound value
// is missing or malformed.
func propagateID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := acceptID(r.Header.Get(header))
			if !ok {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// acceptID reports whether an inbound ID is printable ASCII of sane length.
func acceptID(id string) (string, bool) {
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	for _, c := range []byte(id) {
		if c <= ' ' || c > '~' {
			return "", false
		}
	}
	return id, true
}
