package middleware

import (
	"net/http"
	"slices"
)

// Chain composes middlewares into a single middleware. The first argument
// becomes the outermost one: it sees the request first and the response
// last. This matches the reading order:
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))(handler)
//
// is equivalent to:
//
//	Recovery(logger)(RequestID()(Logging(logger)(handler)))
//
// A nil entry is skipped, so an authenticator that is disabled by config can
// be passed as is.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, wrap := range slices.Backward(middlewares) {
			if wrap != nil {
				h = wrap(h)
			}
		}
		return h
	}
}
