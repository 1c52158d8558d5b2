// Package report scores dataset samples in bulk and renders the
// results as summary statistics and scatter charts.
package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Score is one method applied to one sample. A non-empty Err means the
// sample could not be scored; Value is meaningless in that case.
type Score struct {
	Kind       string  `json:"kind"`
	Sample     string  `json:"sample"`
	Index      int     `json:"index"`
	Method     string  `json:"method"`
	Value      float64 `json:"value"`
	Components int     `json:"components"`
	Err        string  `json:"error,omitempty"`
}

// Summary aggregates the scores of one method over one kind.
type Summary struct {
	Kind   string  `json:"kind"`
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Failed int     `json:"failed"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize groups scores by kind and method and computes per-group
// statistics, in first-appearance order. Failed scores count toward
// Failed but not toward the statistics; StdDev is 0 for groups with
// fewer than two usable scores.
func Summarize(scores []Score) []Summary {
	type key struct{ kind, method string }

	values := make(map[key][]float64)
	failed := make(map[key]int)
	seen := make(map[key]bool)
	var order []key

	for _, s := range scores {
		k := key{kind: s.Kind, method: s.Method}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
		if s.Err != "" {
			failed[k]++
			continue
		}
		values[k] = append(values[k], s.Value)
	}

	summaries := make([]Summary, 0, len(order))
	for _, k := range order {
		vals := values[k]
		sum := Summary{
			Kind:   k.kind,
			Method: k.method,
			Count:  len(vals),
			Failed: failed[k],
		}
		if len(vals) > 0 {
			sum.Mean = stat.Mean(vals, nil)
			sum.Min = floats.Min(vals)
			sum.Max = floats.Max(vals)
		}
		if len(vals) > 1 {
			sum.StdDev = stat.StdDev(vals, nil)
		}
		summaries = append(summaries, sum)
	}
	return summaries
}
