package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// ErrUnknownExporter is returned for an unsupported --metric-exporter value.
var ErrUnknownExporter = errors.New("unknown metric exporter")

func newResource() *resource.Resource {
	return resource.NewSchemaless(
		semconv.ServiceNameKey.String("bfsbench"),
		semconv.ServiceVersionKey.String(version),
	)
}

// initTracing installs a global tracer provider that writes spans as JSON to w.
// The returned function flushes and stops it.
func initTracing(w io.Writer) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(newResource()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// initMeter installs a global meter provider for the engine instruments.
// "prometheus" registers them on reg next to the harness metrics, so they end
// up in --metrics-file; "stdout" prints them to w on shutdown.
func initMeter(exporter string, reg prometheus.Registerer, w io.Writer) (func(context.Context) error, error) {
	var reader sdkmetric.Reader
	switch exporter {
	case "prometheus":
		exp, err := promexporter.New(promexporter.WithRegisterer(reg))
		if err != nil {
			return nil, fmt.Errorf("create prometheus exporter: %w", err)
		}
		reader = exp
	case "stdout":
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout metric exporter: %w", err)
		}
		reader = sdkmetric.NewPeriodicReader(exp)
	case "none":
		return func(context.Context) error { return nil }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(newResource()),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
