package quest

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "quest"

// startQuestSpan creates the span for engine start.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startQuestSpan(ctx context.Context, engine *Engine) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "quest.start")
	addEngineAttributes(span, engine)

	return ctx, span
}

// startFireSpan creates the span for one Fire call.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startFireSpan(ctx context.Context, engine *Engine, event string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "quest.fire")
	addEngineAttributes(span, engine)
	span.SetAttributes(attribute.String("event", event))

	return ctx, span
}

// addEngineAttributes adds engine metadata to a span.
func addEngineAttributes(span trace.Span, engine *Engine) {
	span.SetAttributes(
		attribute.String("quest", engine.Definition().Name()),
		attribute.String("instance_id", engine.InstanceID()),
		attribute.String("state", engine.Current()),
	)
}

// recordTransition annotates a Fire span with the transition taken.
func recordTransition(span trace.Span, from, to string) {
	span.SetAttributes(
		attribute.Bool("matched", true),
		attribute.String("from_state", from),
		attribute.String("to_state", to),
	)
}

// endSpan records the operation outcome on the span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "completed")
	}

	span.End()
}
