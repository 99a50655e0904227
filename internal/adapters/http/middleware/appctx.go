package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/stageboard/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// appctx.RequestContext. The stage service retrieves it with
// appctx.FromContext to memoize stage reads and to queue the reassignments
// of a drain, which are undone together if one fails.
//
// Mount it after CorrelationID, so the RequestContext's embedded context
// carries both IDs into the actions it runs, and before OpenTelemetry.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(ctx, appctx.New(ctx))))
		})
	}
}
