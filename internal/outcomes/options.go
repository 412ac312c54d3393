package outcomes

import "sort"

// Options holds the dropdown choices offered by the dashboard,
// computed from the baseline snapshot fetched at startup.
type Options struct {
	AnimalTypes  []string `json:"animal_types"`
	OutcomeTypes []string `json:"outcome_types"`
	SexValues    []string `json:"sex_values"`
}

// OptionsFrom collects the distinct non-empty values of the three
// categorical columns. The two exact-match dropdowns are prefixed with
// the "All" sentinel; the multi-select sex control is not.
func OptionsFrom(ds Dataset) Options {
	return Options{
		AnimalTypes:  append([]string{All}, distinct(ds, "animal_type")...),
		OutcomeTypes: append([]string{All}, distinct(ds, "outcome_type")...),
		SexValues:    distinct(ds, "sex_upon_outcome"),
	}
}

func distinct(ds Dataset, field string) []string {
	seen := map[string]bool{}
	for _, r := range ds.Records {
		if v, ok := fieldString(r, field); ok && v != "" {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
