// Package telemetry sets up the OpenTelemetry tracer provider and the W3C
// trace context propagator shared by the API and the front desk client.
package telemetry

import (
	"context"

	"suitenest/internal/pkg/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider returns an SDK provider that always assigns trace ids.
// Spans are not exported; their ids tie log lines together across processes.
func NewTracerProvider(cfg config.TraceConfig, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	}
	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

func NewPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// Install makes tp and prop the process-wide defaults picked up by otelhttp.
// The returned func flushes and stops the provider.
func Install(tp *sdktrace.TracerProvider, prop propagation.TextMapPropagator) func(context.Context) error {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(prop)
	return tp.Shutdown
}
