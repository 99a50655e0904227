package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/stageboard/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/stageboard/internal/adapters/http/middleware"

// Span attribute keys. These follow the pre-1.21 HTTP conventions that
// dashboards for this service already query.
const (
	spanMethod = attribute.Key("http.method")
	spanURL    = attribute.Key("http.url")
	spanRoute  = attribute.Key("http.route")
	spanStatus = attribute.Key("http.status_code")
)

// OpenTelemetry opens a server span per request and, when metrics is not
// nil, records the request count and latency.
//
// The span is named after the chi route pattern once routing has happened,
// so /api/v1/stages/7/move and /api/v1/stages/9/move land in the same series.
// The tracer and propagator are read from the otel globals on every request
// so tests can swap them.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()

			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(parent, spanName(r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(spanMethod.String(r.Method), spanURL.String(r.URL.String())),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := routePattern(r)
			finishSpan(span, r.Method, route, rw.status)
			if metrics != nil {
				countRequest(ctx, metrics, r.Method, route, rw.status, time.Since(began))
			}
		})
	}
}

func spanName(method, target string) string {
	return "HTTP " + method + " " + target
}

// finishSpan renames the span to its route and marks server faults. 4xx
// answers are the caller's problem and leave the status unset.
func finishSpan(span trace.Span, method, route string, status int) {
	if route != "" {
		span.SetName(spanName(method, route))
		span.SetAttributes(spanRoute.String(route))
	}
	span.SetAttributes(spanStatus.Int(status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

func countRequest(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, took time.Duration) {
	outcome := "success"
	if status >= http.StatusBadRequest {
		outcome = "error"
	}

	set := metric.WithAttributeSet(attribute.NewSet(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(outcome),
	))
	metrics.ServerRequestTotal.Add(ctx, 1, set)
	metrics.ServerRequestDuration.Record(ctx, took.Seconds(), set)
}
