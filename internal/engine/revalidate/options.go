package revalidate

import (
	"context"
	"time"

	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

// Option configures a Coordinator.
type Option func(*options)

type options struct {
	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics
}

func defaultOptions() options {
	return options{
		logger:  nopLogger{},
		tracer:  nopTracer{},
		metrics: nopMetrics{},
	}
}

// WithLogger reports fetch failures to l.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer wraps every run in a span of t.
func WithTracer(t ports.Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithMetrics records run outcomes in m.
func WithMetrics(m ports.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End() {}
func (nopSpan) RecordError(error) {}
func (nopSpan) SetAttribute(string, any) {}

type nopMetrics struct{}

func (nopMetrics) ObserveRevalidation(domain.CacheKey, domain.Outcome, time.Duration) {}
func (nopMetrics) ObserveRequest(string, int) {}
