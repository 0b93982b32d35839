package bootstrap

import (
	"context"

	"suitenest/internal/pkg/config"
	"suitenest/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewSDKTracerProvider,
		NewTracerProvider,
		telemetry.NewPropagator,
	),
	fx.Invoke(installTracing),
)

func NewSDKTracerProvider(cfg config.Config) *sdktrace.TracerProvider {
	return telemetry.NewTracerProvider(cfg.Trace)
}

func NewTracerProvider(tp *sdktrace.TracerProvider) trace.TracerProvider {
	return tp
}

func installTracing(lc fx.Lifecycle, tp *sdktrace.TracerProvider, prop propagation.TextMapPropagator) {
	shutdown := telemetry.Install(tp, prop)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
}
