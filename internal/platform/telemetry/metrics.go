package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// meterScope names the meter that owns every stageboard instrument.
const meterScope = "github.com/jsamuelsen11/stageboard"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("stage.operation")
)

// Metrics holds the registered instruments. A nil *Metrics is valid and
// records nothing through RecordStageMutation; other callers check for nil.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// StageMutationTotal counts committed create, move and delete operations.
	StageMutationTotal metric.Int64Counter
	// StageRenumberRows is how many sibling rows one mutation rewrote.
	StageRenumberRows metric.Int64Histogram
}

// RecordStageMutation counts one committed mutation of the given kind and
// how many rows it renumbered.
func (m *Metrics) RecordStageMutation(ctx context.Context, operation string, rowsRenumbered int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrOperation.String(operation))
	m.StageMutationTotal.Add(ctx, 1, attrs)
	m.StageRenumberRows.Record(ctx, int64(rowsRenumbered), attrs)
}

// NewMetrics registers the stageboard instruments on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterScope, metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))

	var (
		m   Metrics
		err error
	)
	seconds := func(name, desc string) metric.Float64Histogram {
		h, e := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if e != nil && err == nil {
			err = fmt.Errorf("registering %s: %w", name, e)
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, e := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if e != nil && err == nil {
			err = fmt.Errorf("registering %s: %w", name, e)
		}
		return c
	}

	m.ServerRequestDuration = seconds("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = count("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.ClientRequestDuration = seconds("http.client.request.duration", "Duration of calls to the project API")
	m.ClientRequestTotal = count("http.client.request.total", "Calls to the project API", "{request}")
	m.StageMutationTotal = count("stage.mutation.total", "Committed stage create, move and delete operations", "{mutation}")

	rows, e := meter.Int64Histogram("stage.renumber.rows",
		metric.WithDescription("Sibling rows rewritten by one stage mutation"),
		metric.WithUnit("{row}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 25, 50, 100),
	)
	if e != nil && err == nil {
		err = fmt.Errorf("registering stage.renumber.rows: %w", e)
	}
	m.StageRenumberRows = rows

	if err != nil {
		return nil, err
	}
	return &m, nil
}
