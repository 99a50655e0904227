package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	require.NoError(t, err)
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

// Setup replaces otel globals, so the enabled cases run serially.
func TestSetup_Exporters(t *testing.T) {
	prevTP, prevMP, prevProp := otel.GetTracerProvider(), otel.GetMeterProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
		otel.SetTextMapPropagator(prevProp)
	})

	for _, cfg := range []config.TelemetryConfig{
		{Enabled: true, Exporter: telemetry.ExporterStdout, ServiceName: "stageboard"},
		{Enabled: true, Exporter: telemetry.ExporterOTLP, Endpoint: "http://localhost:4318", ServiceName: "stageboard"},
		{Enabled: true, Exporter: telemetry.ExporterOTLP, Endpoint: "localhost:4318", ServiceName: "stageboard"},
	} {
		p, err := telemetry.Setup(context.Background(), cfg)
		require.NoError(t, err, "%+v", cfg)
		require.NotNil(t, p.Metrics)

		assert.Same(t, p.Tracer, otel.GetTracerProvider())
		assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())

		// Nothing listens on the OTLP endpoint, so the final flush may fail.
		_ = p.Shutdown(context.Background())
	}
}

func TestSetup_Rejects(t *testing.T) {
	t.Parallel()

	_, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: true, Exporter: "zipkin"})
	require.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)

	_, err = telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP})
	require.ErrorContains(t, err, "requires an endpoint")
}

func TestRecordStageMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "stageboard")
	require.NoError(t, err)

	metrics.RecordStageMutation(ctx, "MoveStage", 3)
	metrics.RecordStageMutation(ctx, "MoveStage", 1)
	metrics.RecordStageMutation(ctx, "CreateStage", 0)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	mutations := map[string]int64{}
	var rows int64
	var records uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				if m.Name != "stage.mutation.total" {
					continue
				}
				for _, dp := range data.DataPoints {
					op, _ := dp.Attributes.Value(telemetry.AttrOperation)
					mutations[op.AsString()] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					rows += dp.Sum
					records += dp.Count
				}
			}
		}
	}

	assert.Equal(t, map[string]int64{"MoveStage": 2, "CreateStage": 1}, mutations)
	assert.Equal(t, int64(4), rows)
	assert.Equal(t, uint64(3), records)
}

func TestRecordStageMutation_NilMetrics(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics
	assert.NotPanics(t, func() { metrics.RecordStageMutation(context.Background(), "DeleteStage", 2) })
}
