// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	trace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/provisioning-service/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Config struct {
	Enabled      bool
	GRPCEndpoint string
	HTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.Enabled = enabled
	c.GRPCEndpoint = grpcEndpoint
	c.HTTPEndpoint = httpEndpoint
	c.Logger = logger

	return c
}

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets up the global otel tracer provider and returns a tracer for
// the service. When tracing is disabled a noop tracer is returned.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("github.com/canonical/provisioning-service")
		return t
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		cfg.Logger.Errorf("failed to create otel exporter, falling back to stdout: %v", err)
		exporter, _ = stdouttrace.New()
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	t.tracer = provider.Tracer("github.com/canonical/provisioning-service")

	return t
}

func newExporter(cfg *Config) (sdktrace.SpanExporter, error) {
	ctx := context.Background()

	if cfg.GRPCEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(cfg.GRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(cfg.HTTPEndpoint),
		otlptracehttp.WithInsecure(),
	)
}
