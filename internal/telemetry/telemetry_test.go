package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	t.Parallel()
	tracer, shutdown, err := Setup(context.Background(), "", "dev")
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "x")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_WithEndpoint(t *testing.T) {
	t.Parallel()
	tracer, shutdown, err := Setup(context.Background(), "http://127.0.0.1:4318", "1.2.3")
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "x")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestSetup_InvalidEndpoint(t *testing.T) {
	t.Parallel()
	_, _, err := Setup(context.Background(), "http://", "dev")
	assert.Error(t, err)
}

func TestExporterOptions_Invalid(t *testing.T) {
	t.Parallel()
	for _, endpoint := range []string{"http://", "https:///v1/traces", "grpc://collector:4317"} {
		_, err := exporterOptions(endpoint)
		assert.Error(t, err, endpoint)
	}
}

func TestSetup_BareEndpoint(t *testing.T) {
	t.Parallel()
	tracer, shutdown, err := Setup(context.Background(), "collector:4318", "dev")
	require.NoError(t, err)
	assert.NotNil(t, tracer)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestExporterOptions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		endpoint string
		want     int
	}{
		{"collector:4318", 2},
		{"localhost:4318", 2},
		{"10.0.0.5:4318", 2},
		{"https://collector.example.com", 1},
		{"http://collector:4318", 2},
		{"https://collector.example.com/otlp/v1/traces", 2},
	}
	for _, tt := range tests {
		opts, err := exporterOptions(tt.endpoint)
		require.NoError(t, err, tt.endpoint)
		assert.Len(t, opts, tt.want, tt.endpoint)
	}
}

func TestNewTracerProvider_Exports(t *testing.T) {
	t.Parallel()
	exporter := tracetest.NewInMemoryExporter()
	tp, err := newTracerProvider(context.Background(), exporter, "1.0.0")
	require.NoError(t, err)

	_, span := tp.Tracer(ServiceName).Start(context.Background(), "phase root-zone")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "phase root-zone", spans[0].Name)
	assert.Equal(t, ServiceName, serviceName(spans[0]))
	require.NoError(t, tp.Shutdown(context.Background()))
}

func serviceName(span tracetest.SpanStub) string {
	for _, kv := range span.Resource.Attributes() {
		if kv.Key == "service.name" {
			return kv.Value.AsString()
		}
	}
	return ""
}
