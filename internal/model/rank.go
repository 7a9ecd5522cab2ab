package model

import (
	"math"
	"slices"
)

// RankMap maps every page of a graph to a PageRank estimate.
// A completed RankMap has non-negative values that sum to 1.
type RankMap map[Page]float64

// Sum returns the total of all values.
// Pages are summed in ascending order so the result is reproducible.
func (r RankMap) Sum() float64 {
	total := 0.0
	for _, p := range r.Pages() {
		total += r[p]
	}
	return total
}

// Normalize returns a copy of r scaled so that its values sum to 1.
// A map whose values sum to zero is returned as an unscaled copy.
func (r RankMap) Normalize() RankMap {
	total := r.Sum()
	out := make(RankMap, len(r))
	for p, v := range r {
		if total == 0 {
			out[p] = v
			continue
		}
		out[p] = v / total
	}
	return out
}

// Pages returns the keys of r in ascending order.
func (r RankMap) Pages() []Page {
	pages := make([]Page, 0, len(r))
	for p := range r {
		pages = append(pages, p)
	}
	slices.Sort(pages)
	return pages
}

// MaxAbsDiff returns the largest absolute difference between r and other
// over the union of their pages. A page missing from one side counts as 0.
func (r RankMap) MaxAbsDiff(other RankMap) float64 {
	maxDiff := 0.0
	for p, v := range r {
		maxDiff = math.Max(maxDiff, math.Abs(v-other[p]))
	}
	for p, v := range other {
		if _, ok := r[p]; !ok {
			maxDiff = math.Max(maxDiff, math.Abs(v))
		}
	}
	return maxDiff
}
