package telemetry

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName identifies azdns in exported traces.
const ServiceName = "azdns"

// Shutdown flushes and stops the exporter.
type Shutdown func(context.Context) error

// Setup returns a tracer exporting to endpoint over OTLP/HTTP. An empty
// endpoint yields a no-op tracer.
func Setup(ctx context.Context, endpoint, version string) (trace.Tracer, Shutdown, error) {
	if endpoint == "" {
		return noop.NewTracerProvider().Tracer(ServiceName), func(context.Context) error { return nil }, nil
	}

	opts, err := exporterOptions(endpoint)
	if err != nil {
		return nil, nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry: create exporter: %w", err)
	}

	tp, err := newTracerProvider(ctx, exporter, version)
	if err != nil {
		return nil, nil, err
	}
	return tp.Tracer(ServiceName), tp.Shutdown, nil
}

func newTracerProvider(ctx context.Context, exporter sdktrace.SpanExporter, version string) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// exporterOptions accepts either an http(s) URL or a bare host:port.
// A bare endpoint parses as an opaque URL with the host as scheme, so
// anything without a host is treated as host:port.
func exporterOptions(endpoint string) ([]otlptracehttp.Option, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https" && parsed.Host == "") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("telemetry: unsupported OTLP scheme %q: %s", parsed.Scheme, endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("telemetry: invalid OTLP endpoint: %s", endpoint)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(parsed.Host)}
	if parsed.Path != "" && parsed.Path != "/" {
		opts = append(opts, otlptracehttp.WithURLPath(parsed.Path))
	}
	if parsed.Scheme == "http" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts, nil
}
