package otelmetrics

import (
	"context"
	"time"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordQuery(ctx context.Context, resultCount int, duration time.Duration, failed bool) {
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
