// Package telemetry wraps analysis phases in OpenTelemetry spans. Without
// an exporter endpoint every span is a no-op.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"instfusion/internal/log"
)

const tracerName = "instfusion"

// Config selects the exporter.
type Config struct {
	Endpoint string // OTLP/HTTP host:port, "" disables export
	Service  string
	Insecure bool
}

// Provider hands out phase spans.
type Provider struct {
	tp       trace.TracerProvider
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

// Init builds a Provider from cfg.
func Init(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Endpoint == "" {
		return FromProvider(noop.NewTracerProvider()), nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: exporter %s: %w", cfg.Endpoint, err)
	}
	service := cfg.Service
	if service == "" {
		service = tracerName
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", service))),
	)
	p := FromProvider(tp)
	p.shutdown = tp.Shutdown
	log.Debug(log.CLIModule, "telemetry enabled", "endpoint", cfg.Endpoint, "service", service)
	return p, nil
}

// FromProvider wraps an existing tracer provider. Shutdown of the
// provider stays with the caller.
func FromProvider(tp trace.TracerProvider) *Provider {
	return &Provider{tp: tp, tracer: tp.Tracer(tracerName)}
}

// Phase starts a span named name. The returned end function records err,
// if non-nil, and ends the span.
func (p *Provider) Phase(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	ctx, span := p.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}
