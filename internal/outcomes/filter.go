package outcomes

import "strings"

// All is the dropdown sentinel meaning "no constraint on this field".
const All = "All"

// Condition constrains a single field. Exactly one member is set:
// AnyOf wins over Contains, Contains wins over Equals.
type Condition struct {
	Equals   string
	Contains string
	AnyOf    []string
}

// Filter is the structured constraint object sent to the backing
// store's read operation. An empty filter matches everything.
type Filter map[string]Condition

// BuildFilter maps the four dashboard controls into a Filter.
// "All" or empty category values add no constraint; a breed substring is
// matched case-insensitively; a non-empty sex selection becomes a
// value-in-set constraint. Unknown values are not validated and simply
// produce zero-match filters.
func BuildFilter(animalType, outcomeType, breedText string, sexes []string) Filter {
	f := Filter{}
	if animalType != "" && animalType != All {
		f["animal_type"] = Condition{Equals: animalType}
	}
	if outcomeType != "" && outcomeType != All {
		f["outcome_type"] = Condition{Equals: outcomeType}
	}
	if breedText != "" {
		f["breed"] = Condition{Contains: breedText}
	}
	if len(sexes) > 0 {
		f["sex_upon_outcome"] = Condition{AnyOf: sexes}
	}
	return f
}

// Matches reports whether the record satisfies every condition.
func (f Filter) Matches(r Record) bool {
	for field, cond := range f {
		v, ok := fieldString(r, field)
		if !ok {
			return false
		}
		switch {
		case len(cond.AnyOf) > 0:
			found := false
			for _, want := range cond.AnyOf {
				if v == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case cond.Contains != "":
			if !strings.Contains(strings.ToLower(v), strings.ToLower(cond.Contains)) {
				return false
			}
		default:
			if v != cond.Equals {
				return false
			}
		}
	}
	return true
}
