package telemetry

import (
	"context"

	"go.eeva.app/hub/internal/core/ports"
)

var _ ports.Tracer = (*NoOpTracer)(nil)

// NoOpTracer is used when no OTLP endpoint is configured. The context passed
// to Start is returned unchanged.
type NoOpTracer struct{}

// NewNoOpTracer creates a NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns ctx and a span that discards everything recorded on it.
func (*NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discardSpan{}
}

type discardSpan struct{}

func (discardSpan) End()                     {}
func (discardSpan) RecordError(error)        {}
func (discardSpan) SetAttribute(string, any) {}
