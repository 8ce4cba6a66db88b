// Package tracing provides OpenTelemetry spans for alert and record operations.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
)

const tracerName = "github.com/pratik-mahalle/fraudguard"

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Init installs the global tracer provider.
// An empty endpoint leaves the default no-op provider in place.
func Init(ctx context.Context, endpoint, service, version string, log *logger.Logger) (ShutdownFunc, error) {
	if endpoint == "" {
		log.Info("Tracing disabled (no OTLP endpoint configured)")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(service),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.WithFields(map[string]interface{}{"endpoint": endpoint}).Info("Tracing enabled")
	return tp.Shutdown, nil
}

// StartSpan starts a span named name under the package tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

// RecordError marks the span as failed. A nil error is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func AlertID(id string) attribute.KeyValue {
	return attribute.String("alert.id", id)
}

func Action(action string) attribute.KeyValue {
	return attribute.String("alert.action", action)
}

func Status(status string) attribute.KeyValue {
	return attribute.String("alert.status", status)
}

func RecordID(id string) attribute.KeyValue {
	return attribute.String("record.id", id)
}

func Search(term string) attribute.KeyValue {
	return attribute.String("filter.search", term)
}

func RiskFilter(filter string) attribute.KeyValue {
	return attribute.String("filter.risk", filter)
}

func ResultCount(n int) attribute.KeyValue {
	return attribute.Int("result.count", n)
}
