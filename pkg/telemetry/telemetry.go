// Package telemetry wires OpenTelemetry tracing. Without a configured
// tracking endpoint the global provider stays a no-op, so instrumented code
// pays nothing.
package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/eligius-health/eligius/pkg/version"
)

// scope is the instrumentation scope name for all spans in this module.
const scope = "github.com/eligius-health/eligius"

// Setup installs the global tracer provider and returns a shutdown function.
// With an empty endpoint, tracing is disabled via a no-op provider.
func Setup(endpoint string, logger *slog.Logger) func(context.Context) error {
	if endpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }
	}

	res := sdkresource.NewSchemaless(
		attribute.String("service.name", version.AppName),
		attribute.String("service.version", version.GitCommit),
		attribute.String("tracking.endpoint", endpoint),
	)
	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)

	logger.Info("Tracing enabled", slog.String("endpoint", endpoint))
	return tp.Shutdown
}

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(scope)
}

// StartSpan opens a child span with the module tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan closes a span, recording err when set.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
