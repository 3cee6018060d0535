// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	jaegerPropagator "go.opentelemetry.io/contrib/propagators/jaeger"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// NewTracer sets up the global otel tracer provider based on the config.
// Preference order for exporters is gRPC endpoint, HTTP endpoint, stdout.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("tenant-context-service")
		return t
	}

	var exporter sdktrace.SpanExporter
	var err error

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case config.OtelGRPCEndpoint != "":
		exporter, err = otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(config.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		))
	case config.OtelHTTPEndpoint != "":
		exporter, err = otlptrace.New(ctx, otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(config.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		))
	default:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}

	if err != nil {
		config.Logger.Errorf("failed to create span exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer("tenant-context-service")
		return t
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaegerPropagator.Jaeger{},
		),
	)

	t.tracer = tp.Tracer("tenant-context-service")

	return t
}

// NewNoopTracer returns a tracer that records nothing, for tests.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer("tenant-context-service"),
	}
}
