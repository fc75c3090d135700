// Package tracing configures the OpenTelemetry tracer used to time the
// load, build and commit phases of a validation run.
package tracing
