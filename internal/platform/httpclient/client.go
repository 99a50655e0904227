// Package httpclient is the outbound HTTP client for the remote project
// record API. A call goes through the circuit breaker, then the optional
// rate limiter, then a traced send loop that retries replayable requests.
//
//	client := httpclient.New(&cfg.Projects.Client, "project-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/api/v1/projects/7", http.NoBody)
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs placed in the context by the inbound
// middleware are copied onto every outbound request.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/telemetry"
)

// Header names set on outbound requests.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

const tracerName = "github.com/jsamuelsen11/stageboard/internal/platform/httpclient"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
)

// WithRequestID stores the inbound request ID for propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores the inbound correlation ID for propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// Client talks to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	policy  backoffPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Client for the downstream called name. metrics may be nil.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		name:    name,
		breaker: newBreaker(name, cfg.CircuitBreaker, logger),
		policy:  newBackoffPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A response whose status is not retryable comes back with a
// nil error. When retries run out on a retryable status, the last response
// is returned together with an error. In both cases the caller closes the
// body. Breaker rejections and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}
		c.decorate(ctx, req)
		return c.traced(ctx, req)
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream in health reports.
func (c *Client) Name() string { return c.name }

// HealthCheck reports the breaker state. It never touches the network.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in state %v", c.name, state)
	}
}

// decorate copies identity headers from ctx and adds the bearer token unless
// the caller set its own Authorization header.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	for key, header := range map[ctxKey]string{
		requestIDKey:     HeaderRequestID,
		correlationIDKey: HeaderCorrelationID,
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(header, id)
		}
	}
	if c.token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// traced wraps the retry loop in a client span and injects W3C trace
// context into the request headers.
func (c *Client) traced(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
			attribute.Bool("http.replayable", replayable(req)),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.send(ctx, req.WithContext(ctx))
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	return uint32(min(max(int64(v), 0), math.MaxUint32))
}
