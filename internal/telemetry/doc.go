// Package telemetry configures OpenTelemetry tracing for a run.
//
// Tracing is optional: without an OTLP endpoint Setup returns a no-op tracer
// and nothing is exported.
package telemetry
