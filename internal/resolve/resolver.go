// Package resolve adapts an arbitrary backing-store client to the
// ports.Reader contract. Historically the upstream client class was
// unstable: the read operation appeared under a handful of different
// names, sometimes only on a nested collection object. Rather than
// reflecting over method names at runtime, the probe is expressed as an
// ordered list of candidate single-method interfaces, so a method with
// the wrong signature simply fails the interface check instead of
// blowing up on first call.
package resolve

import (
	"context"
	"fmt"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
	"github.com/graziososalvare/shelterboard/internal/ports"
)

type readFunc func(context.Context, outcomes.Filter) ([]outcomes.Record, error)

func (f readFunc) Read(ctx context.Context, q outcomes.Filter) ([]outcomes.Record, error) {
	return f(ctx, q)
}

// Candidate method shapes, in historical precedence order. Each mirrors
// one of the names the upstream client was known to use.
type (
	retriever interface {
		Retrieve(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	readAller interface {
		ReadAll(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	getter interface {
		Get(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	getAller interface {
		GetAll(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	finder interface {
		Find(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	fetcher interface {
		Fetch(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	fetchAller interface {
		FetchAll(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	recordReader interface {
		ReadRecords(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}
	recordGetter interface {
		GetRecords(context.Context, outcomes.Filter) ([]outcomes.Record, error)
	}

	// Nested accessors: clients that only expose the read operation on
	// an inner collection or database handle.
	collectionProvider interface{ Collection() any }
	databaseProvider   interface{ Database() any }
)

// Reader resolves a usable read operation on client. The probe order is
// fixed: the explicit Reader contract first, then the candidate method
// names, then a Collection or Database accessor whose result exposes
// Find. If nothing matches, the error names the expected contract and
// the caller should treat it as fatal.
func Reader(client any) (ports.Reader, error) {
	switch c := client.(type) {
	case ports.Reader:
		return c, nil
	case retriever:
		return readFunc(c.Retrieve), nil
	case readAller:
		return readFunc(c.ReadAll), nil
	case getter:
		return readFunc(c.Get), nil
	case getAller:
		return readFunc(c.GetAll), nil
	case finder:
		return readFunc(c.Find), nil
	case fetcher:
		return readFunc(c.Fetch), nil
	case fetchAller:
		return readFunc(c.FetchAll), nil
	case recordReader:
		return readFunc(c.ReadRecords), nil
	case recordGetter:
		return readFunc(c.GetRecords), nil
	}

	if p, ok := client.(collectionProvider); ok {
		if f, ok := p.Collection().(finder); ok {
			return readFunc(f.Find), nil
		}
	}
	if p, ok := client.(databaseProvider); ok {
		if f, ok := p.Database().(finder); ok {
			return readFunc(f.Find), nil
		}
	}

	return nil, fmt.Errorf(
		"resolve: %T exposes no usable read method: want Read, Retrieve, ReadAll, Get, GetAll, Find, Fetch, FetchAll, ReadRecords or GetRecords with signature func(context.Context, outcomes.Filter) ([]outcomes.Record, error), or a Collection()/Database() accessor whose result has such a Find",
		client,
	)
}
