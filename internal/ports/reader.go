// Package ports defines the interfaces between the dashboard and its
// adapters (storage, metrics).
package ports

import (
	"context"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

// Reader is the single read operation the dashboard needs from a
// backing store: evaluate a filter, return the matching records.
// Integrators implement this once; resolve.Reader adapts clients that
// expose the operation under a historical name instead.
type Reader interface {
	Read(ctx context.Context, f outcomes.Filter) ([]outcomes.Record, error)
}
