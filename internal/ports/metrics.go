package ports

import (
	"context"
	"time"
)

// QueryMetrics records read traffic against the backing store.
// Implementations must tolerate being called on the request path.
type QueryMetrics interface {
	RecordQuery(ctx context.Context, resultCount int, duration time.Duration, failed bool)
	Close(ctx context.Context) error
}
