package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yesoreyeram/thittam/pkg/observer"
)

// Observer implements observer.Observer and records telemetry data for
// solve run events: one span per run plus the run/improvement counters.
type Observer struct {
	provider *Provider

	// active spans keyed by run ID
	spans  map[string]trace.Span
	starts map[string]time.Time
}

// NewObserver creates a telemetry observer on top of a provider.
func NewObserver(provider *Provider) *Observer {
	return &Observer{
		provider: provider,
		spans:    make(map[string]trace.Span),
		starts:   make(map[string]time.Time),
	}
}

// OnEvent handles solve events and records telemetry data
func (o *Observer) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventSolveStart:
		o.handleSolveStart(ctx, event)
	case observer.EventImprovement:
		o.handleImprovement(ctx, event)
	case observer.EventSolveEnd:
		o.handleSolveEnd(ctx, event)
	}
}

func (o *Observer) handleSolveStart(ctx context.Context, event observer.Event) {
	if tracer := o.provider.Tracer(); tracer != nil {
		_, span := tracer.Start(ctx, "solver.solve",
			trace.WithAttributes(
				attribute.String("run.id", event.RunID),
				attribute.String("problem", event.Problem),
				attribute.String("solver", event.Solver),
			),
		)
		o.spans[event.RunID] = span
	}
	o.starts[event.RunID] = event.Timestamp
	o.provider.RecordRunStart(ctx, event.Problem, event.Solver)
}

func (o *Observer) handleImprovement(ctx context.Context, event observer.Event) {
	o.provider.RecordImprovement(ctx, event.Problem, event.Solver, event.Makespan)
	if span, ok := o.spans[event.RunID]; ok {
		span.AddEvent("improvement", trace.WithAttributes(
			attribute.Float64("makespan", event.Makespan),
		))
	}
}

func (o *Observer) handleSolveEnd(ctx context.Context, event observer.Event) {
	elapsed := event.ElapsedTime
	if elapsed == 0 {
		if start, ok := o.starts[event.RunID]; ok {
			elapsed = time.Since(start)
		}
	}
	delete(o.starts, event.RunID)

	success := event.Status == observer.StatusSolved
	o.provider.RecordRunEnd(ctx, event.Problem, event.Solver, success, elapsed)

	if span, ok := o.spans[event.RunID]; ok {
		delete(o.spans, event.RunID)
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "")
			span.SetAttributes(attribute.Float64("makespan", event.Makespan))
		}
		span.End()
	}
}
