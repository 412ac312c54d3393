// Package otelmetrics exports query metrics to an OTEL collector, with
// a no-op fallback when no collector is configured.
package otelmetrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "shelterboard"
	serviceVersion = "1.0.0"
)

// Exporter reports dashboard query traffic to an OTEL collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	queriesTotal  metric.Int64Counter
	recordsTotal  metric.Int64Counter
	queryDuration metric.Float64Histogram
}

// NewExporter creates an OTLP gRPC metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("metrics exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	queriesTotal, err := meter.Int64Counter(
		"shelterboard_queries_total",
		metric.WithDescription("Filter queries executed against the backing store"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queries counter: %w", err)
	}

	recordsTotal, err := meter.Int64Counter(
		"shelterboard_records_returned_total",
		metric.WithDescription("Records returned by filter queries"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records counter: %w", err)
	}

	queryDuration, err := meter.Float64Histogram(
		"shelterboard_query_duration_seconds",
		metric.WithDescription("Backing-store query latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		queriesTotal:  queriesTotal,
		recordsTotal:  recordsTotal,
		queryDuration: queryDuration,
	}, nil
}

func (e *Exporter) RecordQuery(ctx context.Context, resultCount int, duration time.Duration, failed bool) {
	attrs := metric.WithAttributes(attribute.Bool("failed", failed))
	e.queriesTotal.Add(ctx, 1, attrs)
	e.recordsTotal.Add(ctx, int64(resultCount))
	e.queryDuration.Record(ctx, duration.Seconds(), attrs)
}

func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
