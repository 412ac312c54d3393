// Package outcomes holds the domain model for animal-outcome records:
// the tabular dataset shown by the dashboard, the filter sent to the
// backing store, and the chart aggregation derived from displayed rows.
// Pure data transformations, no I/O.
package outcomes

import (
	"fmt"
	"sort"
)

// Record is one animal-outcome entry as a field-to-value mapping.
type Record map[string]any

// ExpectedColumns is the stable column set the table always shows.
// Records missing any of these get a nil placeholder during Normalize.
var ExpectedColumns = []string{
	"_id",
	"name",
	"animal_id",
	"animal_type",
	"breed",
	"color",
	"age_upon_outcome",
	"sex_upon_outcome",
	"outcome_type",
	"outcome_subtype",
	"date_of_birth",
}

// Dataset is the in-memory tabular snapshot currently displayed.
// It is regenerated wholesale on every query, never mutated in place.
type Dataset struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// EmptyDataset returns a dataset with the expected columns and no rows.
// This is the fallback shape for every failed fetch.
func EmptyDataset() Dataset {
	cols := make([]string, len(ExpectedColumns))
	copy(cols, ExpectedColumns)
	return Dataset{Columns: cols, Records: []Record{}}
}

// Normalize turns raw store output into a Dataset with a stable column
// set: every expected column is present on every record (nil when the
// source omitted it), extra source columns are preserved and appended to
// the column list in sorted order, and _id values are stringified.
func Normalize(records []Record) Dataset {
	ds := EmptyDataset()
	if len(records) == 0 {
		return ds
	}

	expected := make(map[string]bool, len(ExpectedColumns))
	for _, c := range ExpectedColumns {
		expected[c] = true
	}

	extraSet := map[string]bool{}
	out := make([]Record, 0, len(records))
	for _, src := range records {
		r := make(Record, len(src))
		for k, v := range src {
			r[k] = v
			if !expected[k] {
				extraSet[k] = true
			}
		}
		for _, c := range ExpectedColumns {
			if _, ok := r[c]; !ok {
				r[c] = nil
			}
		}
		if id, ok := r["_id"]; ok && id != nil {
			if _, isString := id.(string); !isString {
				r["_id"] = fmt.Sprintf("%v", id)
			}
		}
		out = append(out, r)
	}

	extras := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extras = append(extras, k)
	}
	sort.Strings(extras)

	ds.Columns = append(ds.Columns, extras...)
	ds.Records = out
	return ds
}

// fieldString renders a record value for comparison and bucketing.
// Nil and missing values come back as ok=false.
func fieldString(r Record, field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprintf("%v", v), true
}
