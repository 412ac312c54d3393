package memstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.Add(
		outcomes.Record{"name": "Rex", "animal_type": "Dog", "breed": "German Shepherd", "sex_upon_outcome": "Intact Male", "outcome_type": "Adoption"},
		outcomes.Record{"name": "Bella", "animal_type": "Dog", "breed": "Labrador Retriever Mix", "sex_upon_outcome": "Spayed Female", "outcome_type": "Transfer"},
		outcomes.Record{"name": "Milo", "animal_type": "Cat", "breed": "Domestic Shorthair", "sex_upon_outcome": "Neutered Male", "outcome_type": "Adoption"},
	)
	return s
}

func TestRead_EmptyFilterReturnsAll(t *testing.T) {
	s := seededStore(t)
	records, err := s.Read(context.Background(), outcomes.Filter{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestRead_BreedSubstringCaseInsensitive(t *testing.T) {
	s := seededStore(t)
	f := outcomes.BuildFilter("All", "All", "shepherd", nil)
	records, err := s.Read(context.Background(), f)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 1 || records[0]["name"] != "Rex" {
		t.Errorf("expected only Rex, got %v", records)
	}
}

func TestRead_CombinedFilter(t *testing.T) {
	s := seededStore(t)
	f := outcomes.BuildFilter("Dog", "Adoption", "", []string{"Intact Male"})
	records, err := s.Read(context.Background(), f)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 1 || records[0]["name"] != "Rex" {
		t.Errorf("expected only Rex, got %v", records)
	}
}

func TestRead_ReturnsCopies(t *testing.T) {
	s := seededStore(t)
	records, _ := s.Read(context.Background(), outcomes.Filter{})
	records[0]["name"] = "mutated"
	again, _ := s.Read(context.Background(), outcomes.Filter{})
	for _, r := range again {
		if r["name"] == "mutated" {
			t.Fatal("Read must return copies, store was mutated through a result")
		}
	}
}

func TestAdd_AssignsID(t *testing.T) {
	s := New()
	s.Add(outcomes.Record{"name": "Rex"})
	records, _ := s.Read(context.Background(), outcomes.Filter{})
	if id, ok := records[0]["_id"].(string); !ok || id == "" {
		t.Errorf("expected generated _id, got %v", records[0]["_id"])
	}
}

const sampleCSV = `age_upon_outcome,animal_id,animal_type,breed,color,date_of_birth,name,outcome_subtype,outcome_type,sex_upon_outcome,location_lat
2 years,A721033,Dog,German Shepherd,Black/Tan,2014-04-09,Rex,,Adoption,Intact Male,30.75
1 year,A664290,Cat,Domestic Shorthair Mix,Orange,2016-01-11,Milo,SCRP,Transfer,Neutered Male,30.53
`

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New()
	n, err := s.LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows loaded, got %d", n)
	}

	f := outcomes.BuildFilter("Dog", "All", "", nil)
	records, _ := s.Read(context.Background(), f)
	if len(records) != 1 || records[0]["name"] != "Rex" {
		t.Errorf("expected Rex from csv, got %v", records)
	}
	if records[0]["date_of_birth"] != "2014-04-09" {
		t.Errorf("expected date_of_birth mapped, got %v", records[0]["date_of_birth"])
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	s := New()
	if _, err := s.LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomes.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	records, err := DecodeCSV(path)
	if err != nil {
		t.Fatalf("DecodeCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1]["outcome_subtype"] != "SCRP" {
		t.Errorf("expected outcome_subtype mapped, got %v", records[1]["outcome_subtype"])
	}
}
