package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName identifies the validator in exported spans.
const ServiceName = "abilitygraph"

// Span names and attribute keys recorded by a validation run.
const (
	SpanRun    = "ability.run"
	SpanLoad   = "ability.load"
	SpanBuild  = "ability.build"
	SpanCommit = "ability.commit"

	AttrRunID       = "ability.run_id"
	AttrPaths       = "ability.paths"
	AttrComponents  = "ability.components"
	AttrReferences  = "ability.references"
	AttrDiagnostics = "ability.diagnostics"
	AttrState       = "ability.state"
)

// Config configures the tracing subsystem.
type Config struct {
	// Enabled controls whether tracing is active.
	// When false, a no-op tracer is returned.
	Enabled bool

	// Exporter selects the export backend: "stdout" or "none".
	Exporter string
}

// Provider wraps the SDK tracer provider, or a no-op tracer when tracing
// is disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewProvider creates the tracer provider. The stdout exporter writes
// pretty-printed spans to w.
func NewProvider(cfg Config, w io.Writer) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer("noop")}, nil
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
		)),
	}

	switch cfg.Exporter {
	case "stdout", "":
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(w),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		// A CLI run is short; export synchronously so nothing is lost on exit.
		opts = append(opts, sdktrace.WithSyncer(exporter))
	case "none":
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}

	provider := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(ServiceName),
	}, nil
}

// Tracer returns the configured tracer. It is safe to use when tracing is
// disabled.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.provider != nil
}

// Shutdown flushes pending spans and shuts down the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Shutdown(ctx)
	}
	return nil
}
