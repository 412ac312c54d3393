package outcomes

import (
	"sort"
	"strings"
)

const chartTitle = "Outcome Type Distribution"

// UnknownBucket collects rows with a missing or empty outcome_type.
const UnknownBucket = "Unknown"

// Chart is a bar chart of outcome-type counts, derived strictly from
// the rows currently displayed in the table.
type Chart struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Counts []int64  `json:"counts"`
}

// OutcomeChart buckets the dataset's rows by outcome_type. Rows without
// one land in the Unknown bucket. Bars are ordered by count descending,
// ties broken by label, so re-renders are stable. An empty dataset
// yields an empty chart with a "no data" title, never an error.
func OutcomeChart(ds Dataset) Chart {
	if len(ds.Records) == 0 {
		return Chart{Title: chartTitle + " (no data)"}
	}

	counts := map[string]int64{}
	for _, r := range ds.Records {
		label := UnknownBucket
		if v, ok := fieldString(r, "outcome_type"); ok && strings.TrimSpace(v) != "" {
			label = v
		}
		counts[label]++
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	chart := Chart{Title: chartTitle, Labels: labels, Counts: make([]int64, len(labels))}
	for i, l := range labels {
		chart.Counts[i] = counts[l]
	}
	return chart
}
