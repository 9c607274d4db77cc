// Package tracing builds the OpenTelemetry tracer provider for a run.
package tracing

import (
	"context"
	"fmt"

	"github.com/grafana/go-redblack/internal/cfg"
	"go.opentelemetry.io/otel/exporters/jaeger"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "go-redblack"

// Provider returns the tracer provider configured by opts and a function
// that flushes and shuts it down.
func Provider(opts cfg.TracingOptions) (trace.TracerProvider, func(context.Context) error, error) {
	switch opts.Kind {
	case cfg.TracingKindNone:
		return trace.NewNoopTracerProvider(), func(context.Context) error { return nil }, nil
	case cfg.TracingKindJaeger:
		tp, err := JaegerProvider(opts.URL)
		if err != nil {
			return nil, nil, err
		}
		return tp, tp.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unsupported tracing kind '%s'", opts.Kind)
	}
}

func JaegerProvider(url string) (*sdktrace.TracerProvider, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		return nil, fmt.Errorf("failed to create jaeger exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp)), nil
}
