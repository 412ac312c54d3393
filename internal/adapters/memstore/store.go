// Package memstore is an in-memory Reader implementation used in tests
// and in development mode, optionally seeded from a CSV export of the
// shelter's outcomes data.
package memstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/jszwec/csvutil"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

type Store struct {
	mu      sync.RWMutex
	records []outcomes.Record
}

func New() *Store {
	return &Store{}
}

// Read returns copies of all records matching the filter, in insertion
// order.
func (s *Store) Read(ctx context.Context, f outcomes.Filter) ([]outcomes.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]outcomes.Record, 0)
	for _, r := range s.records {
		if !f.Matches(r) {
			continue
		}
		cp := make(outcomes.Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

// Add appends records, assigning an _id to any record without one.
func (s *Store) Add(records ...outcomes.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if _, ok := r["_id"]; !ok {
			r["_id"] = uuid.NewString()
		}
		s.records = append(s.records, r)
	}
}

// csvRow maps the columns of an Austin Animal Center style outcomes
// export. Columns not listed here are ignored by the decoder.
type csvRow struct {
	AnimalID       string `csv:"animal_id"`
	Name           string `csv:"name"`
	AnimalType     string `csv:"animal_type"`
	Breed          string `csv:"breed"`
	Color          string `csv:"color"`
	AgeUponOutcome string `csv:"age_upon_outcome"`
	SexUponOutcome string `csv:"sex_upon_outcome"`
	OutcomeType    string `csv:"outcome_type"`
	OutcomeSubtype string `csv:"outcome_subtype"`
	DateOfBirth    string `csv:"date_of_birth"`
}

func (row csvRow) record() outcomes.Record {
	return outcomes.Record{
		"animal_id":        row.AnimalID,
		"name":             row.Name,
		"animal_type":      row.AnimalType,
		"breed":            row.Breed,
		"color":            row.Color,
		"age_upon_outcome": row.AgeUponOutcome,
		"sex_upon_outcome": row.SexUponOutcome,
		"outcome_type":     row.OutcomeType,
		"outcome_subtype":  row.OutcomeSubtype,
		"date_of_birth":    row.DateOfBirth,
	}
}

// LoadCSV seeds the store from a CSV file and returns the number of
// rows loaded.
func (s *Store) LoadCSV(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	var rows []csvRow
	if err := dec.Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode csv: %w", err)
	}

	for _, row := range rows {
		s.Add(row.record())
	}
	return len(rows), nil
}

// DecodeCSV parses a CSV export without storing it, for callers that
// forward the rows elsewhere (the seed command).
func DecodeCSV(path string) ([]outcomes.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []csvRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	records := make([]outcomes.Record, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}
