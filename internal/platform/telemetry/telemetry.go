// Package telemetry wires OpenTelemetry tracing and metrics. Spans and
// metrics print to stdout during development and go to an OTLP/HTTP
// collector in production.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics.RecordStageMutation(ctx, "MoveStage", 3)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrUnsupportedExporter reports an exporter name Setup does not know.
var ErrUnsupportedExporter = errors.New("unsupported telemetry exporter")

// Providers owns the SDK providers Setup installed. A disabled
// configuration yields a Providers with every field nil, which is still
// safe to Shutdown and whose nil Metrics records nothing.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds tracer and meter providers for cfg, installs them as the
// otel globals together with W3C trace-context and baggage propagation, and
// registers the stageboard instruments.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	spans, err := spanExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	points, err := metricExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, errors.Join(err, spans.Shutdown(ctx))
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		Meter:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(points)), sdkmetric.WithResource(res)),
	}
	if p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// collector splits an OTLP endpoint URL into the host:port the exporters
// want and whether TLS is off.
func collector(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errors.New("otlp exporter requires an endpoint")
	}
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		return u.Host, u.Scheme != "https", nil
	}
	return endpoint, true, nil
}

func spanExporter(ctx context.Context, name, endpoint string) (sdktrace.SpanExporter, error) {
	switch name {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, insecure, err := collector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, name)
}

func metricExporter(ctx context.Context, name, endpoint string) (sdkmetric.Exporter, error) {
	switch name {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, insecure, err := collector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, name)
}
