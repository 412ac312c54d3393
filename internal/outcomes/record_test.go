package outcomes

import (
	"reflect"
	"testing"
)

func TestNormalize_EmptyInputKeepsExpectedColumns(t *testing.T) {
	ds := Normalize(nil)
	if !reflect.DeepEqual(ds.Columns, ExpectedColumns) {
		t.Errorf("expected columns %v, got %v", ExpectedColumns, ds.Columns)
	}
	if len(ds.Records) != 0 {
		t.Errorf("expected no records, got %d", len(ds.Records))
	}
}

func TestNormalize_SynthesizesMissingColumns(t *testing.T) {
	ds := Normalize([]Record{{"name": "Rex", "animal_type": "Dog"}})
	if len(ds.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(ds.Records))
	}
	r := ds.Records[0]
	for _, c := range ExpectedColumns {
		if _, ok := r[c]; !ok {
			t.Errorf("expected column %q to be present", c)
		}
	}
	if r["breed"] != nil {
		t.Errorf("expected synthesized breed to be nil, got %v", r["breed"])
	}
	if r["name"] != "Rex" {
		t.Errorf("expected name preserved, got %v", r["name"])
	}
}

func TestNormalize_PreservesExtraColumnsSorted(t *testing.T) {
	ds := Normalize([]Record{
		{"name": "Rex", "zeta": 1},
		{"name": "Bella", "alpha": 2},
	})
	wantTail := []string{"alpha", "zeta"}
	gotTail := ds.Columns[len(ExpectedColumns):]
	if !reflect.DeepEqual(gotTail, wantTail) {
		t.Errorf("expected extra columns %v, got %v", wantTail, gotTail)
	}
	if ds.Records[0]["zeta"] != 1 {
		t.Errorf("expected extra value preserved, got %v", ds.Records[0]["zeta"])
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	src := []Record{{"name": "Rex"}}
	Normalize(src)
	if len(src[0]) != 1 {
		t.Errorf("input record was mutated: %v", src[0])
	}
}

func TestNormalize_StringifiesID(t *testing.T) {
	ds := Normalize([]Record{{"_id": 12345}})
	if ds.Records[0]["_id"] != "12345" {
		t.Errorf("expected stringified _id, got %v (%T)", ds.Records[0]["_id"], ds.Records[0]["_id"])
	}
}

func TestEmptyDataset_IsIsolatedCopy(t *testing.T) {
	a := EmptyDataset()
	a.Columns[0] = "mutated"
	b := EmptyDataset()
	if b.Columns[0] != "_id" {
		t.Error("EmptyDataset must not share its column slice across calls")
	}
}
