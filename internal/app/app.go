package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/abilitygraph/internal/ability"
	"github.com/specialistvlad/abilitygraph/internal/config"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/report"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// App encapsulates the application's dependencies, configuration, and the
// outcome of its last run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	tracer trace.Tracer

	report  *report.Report
	ability *ability.Ability
}

// Option customises an App.
type Option func(*App)

// WithTracer sets the tracer used for the run's spans. The default tracer
// records nothing.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *App) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// NewApp is the constructor for the main application. Reports go to outW
// and logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Report returns the report of the last run, or nil.
func (a *App) Report() *report.Report {
	return a.report
}

// Ability returns the ability committed by the last run, or nil when the
// run failed.
func (a *App) Ability() *ability.Ability {
	return a.ability
}
