package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/abilitygraph/internal/builder"
	"github.com/specialistvlad/abilitygraph/internal/report"
	"github.com/specialistvlad/abilitygraph/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidAbility is returned by Run when the ability files describe a
// graph that fails validation. The report lists every diagnostic.
var ErrInvalidAbility = errors.New("ability is invalid")

// Run loads, builds, validates and commits the configured ability files and
// writes the report to the App's output.
func (a *App) Run(ctx context.Context) (err error) {
	runID := uuid.New().String()
	logger := a.logger.With("run_id", runID)
	ctx = a.Context(ctx)

	ctx, span := a.tracer.Start(ctx, tracing.SpanRun,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(tracing.AttrRunID, runID),
			attribute.StringSlice(tracing.AttrPaths, a.config.Paths),
		),
	)
	defer func() { endSpan(span, err) }()

	logger.Debug("App.Run method started.", "paths", a.config.Paths)
	a.report, a.ability = nil, nil

	loadCtx, loadSpan := a.tracer.Start(ctx, tracing.SpanLoad)
	model, err := a.loader.Load(loadCtx, a.config.Paths...)
	endSpan(loadSpan, err)
	if err != nil {
		return fmt.Errorf("failed to load ability files: %w", err)
	}
	logger.Debug("Ability files loaded.",
		"types", len(model.Types),
		"components", len(model.Components),
		"references", len(model.References),
	)

	buildCtx, buildSpan := a.tracer.Start(ctx, tracing.SpanBuild, trace.WithAttributes(
		attribute.Int(tracing.AttrComponents, len(model.Components)),
		attribute.Int(tracing.AttrReferences, len(model.References)),
	))
	res, err := builder.Build(buildCtx, model)
	endSpan(buildSpan, err)
	if err != nil {
		return fmt.Errorf("failed to build ability: %w", err)
	}

	commitCtx, commitSpan := a.tracer.Start(ctx, tracing.SpanCommit)
	ab, commitErr := res.Registry.Commit(commitCtx)
	if commitErr != nil {
		a.report = report.FromDiagnostics(res.Registry.State(), res.Registry.Diagnostics(), res.Origin)
		logger.Info("Ability validation failed.", "diagnostics", len(a.report.Diagnostics))
	} else {
		a.ability = ab
		a.report = report.FromAbility(ab)
		logger.Info("Ability validation succeeded.", "components", len(a.report.Components))
	}
	commitSpan.SetAttributes(
		attribute.String(tracing.AttrState, a.report.State),
		attribute.Int(tracing.AttrDiagnostics, len(a.report.Diagnostics)),
	)
	endSpan(commitSpan, commitErr)

	if err := a.report.Write(a.outW, report.Format(a.config.ReportFormat)); err != nil {
		return err
	}
	if commitErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAbility, commitErr)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
