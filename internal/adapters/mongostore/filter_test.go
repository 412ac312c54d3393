package mongostore

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

func TestToBSON_Empty(t *testing.T) {
	q := toBSON(outcomes.Filter{})
	if len(q) != 0 {
		t.Errorf("expected empty query, got %v", q)
	}
}

func TestToBSON_Equals(t *testing.T) {
	f := outcomes.BuildFilter("Dog", "All", "", nil)
	q := toBSON(f)
	if got := q["animal_type"]; got != "Dog" {
		t.Errorf("expected plain equality on animal_type, got %v", got)
	}
	if _, ok := q["outcome_type"]; ok {
		t.Error("All sentinel must not constrain outcome_type")
	}
}

func TestToBSON_ContainsIsCaseInsensitiveRegex(t *testing.T) {
	f := outcomes.BuildFilter("All", "All", "shepherd", nil)
	q := toBSON(f)
	want := bson.M{"$regex": "shepherd", "$options": "i"}
	if !reflect.DeepEqual(q["breed"], want) {
		t.Errorf("expected %v, got %v", want, q["breed"])
	}
}

func TestToBSON_AnyOfBecomesIn(t *testing.T) {
	f := outcomes.BuildFilter("All", "All", "", []string{"Intact Male", "Neutered Male"})
	q := toBSON(f)
	want := bson.M{"$in": []string{"Intact Male", "Neutered Male"}}
	if !reflect.DeepEqual(q["sex_upon_outcome"], want) {
		t.Errorf("expected %v, got %v", want, q["sex_upon_outcome"])
	}
}

func TestFromBSON_StringifiesObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	r := fromBSON(bson.M{"_id": id, "name": "Rex"})
	if r["_id"] != id.Hex() {
		t.Errorf("expected hex string id, got %v", r["_id"])
	}
	if r["name"] != "Rex" {
		t.Errorf("expected name preserved, got %v", r["name"])
	}
}
