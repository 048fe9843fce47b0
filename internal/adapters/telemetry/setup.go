package telemetry

import (
	"context"

	"go.eeva.app/hub/internal/build"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.trai.ch/zerr"
)

// ServiceName identifies the hub in exported traces.
const ServiceName = "eeva-hub"

// Setup returns the tracer for cfg and a shutdown func flushing pending spans.
//
// Export is opt-in: without an OTLP endpoint a NoOpTracer is returned and no
// global provider is registered.
func Setup(ctx context.Context, cfg domain.TelemetryConfig) (ports.Tracer, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if cfg.OTLPEndpoint == "" {
		return NewNoOpTracer(), noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	if err != nil {
		return nil, noop, zerr.With(zerr.Wrap(err, domain.ErrTelemetrySetupFailed.Error()), "endpoint", cfg.OTLPEndpoint)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(build.Version),
		),
	)
	if err != nil {
		return nil, noop, zerr.Wrap(err, domain.ErrTelemetrySetupFailed.Error())
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return NewOTelTracer(ServiceName), tp.Shutdown, nil
}
