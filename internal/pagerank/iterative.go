package pagerank

import (
	"maps"

	"github.com/nao1215/linkrank/internal/model"
)

const (
	// DefaultTolerance is the per-page change below which ranks are settled.
	DefaultTolerance = 0.001

	// DefaultMaxIterations bounds the number of update rounds.
	DefaultMaxIterations = 10000
)

// IterateResult is the outcome of the fixed-point solver.
type IterateResult struct {
	// Ranks holds the converged ranks, rescaled to sum to 1.
	Ranks model.RankMap

	// Iterations is the number of update rounds performed.
	Iterations int
}

// iterateOptions holds the tunables of Iterate.
type iterateOptions struct {
	tolerance     float64
	maxIterations int
}

// IterateOption configures Iterate.
type IterateOption func(*iterateOptions)

// WithTolerance sets the convergence threshold.
// Non-positive values are ignored.
func WithTolerance(tolerance float64) IterateOption {
	return func(o *iterateOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// WithMaxIterations sets the iteration bound.
// Non-positive values are ignored.
func WithMaxIterations(maxIterations int) IterateOption {
	return func(o *iterateOptions) {
		if maxIterations > 0 {
			o.maxIterations = maxIterations
		}
	}
}

// Iterate estimates PageRank by repeated application of the update
//
//	PR(p) = (1-d)/N + sum over q linking to p of d*PR(q)/outdegree(q)
//	                + sum over sinks s != p of d/N
//
// starting from 1/N for every page. Within a round pages are updated in
// place in ascending order, so a page later in the order already sees the
// new ranks of the pages before it. Iteration stops once no page changed by
// tolerance or more since the previous round, and the result is rescaled
// to sum to 1.
//
// Sinks add d/N per sink rather than d*PR(s)/N. The final rescale absorbs
// the extra mass this introduces.
func Iterate(g *model.Graph, damping float64, opts ...IterateOption) (*IterateResult, error) {
	if err := validate(g.Len(), damping); err != nil {
		return nil, err
	}

	o := iterateOptions{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	pages := g.Pages()
	sinkCount := len(g.Sinks())
	n := float64(len(pages))

	ranks := make(model.RankMap, len(pages))
	for _, p := range pages {
		ranks[p] = 1 / n
	}

	var delta float64
	for i := 1; i <= o.maxIterations; i++ {
		previous := maps.Clone(ranks)

		for _, p := range pages {
			rank := (1 - damping) / n
			for _, q := range g.Inbound(p) {
				rank += damping * ranks[q] / float64(g.OutDegree(q))
			}

			otherSinks := sinkCount
			if g.IsSink(p) {
				otherSinks--
			}
			rank += float64(otherSinks) * damping / n

			ranks[p] = rank
		}

		delta = ranks.MaxAbsDiff(previous)
		if delta < o.tolerance {
			return &IterateResult{
				Ranks:      ranks.Normalize(),
				Iterations: i,
			}, nil
		}
	}

	return nil, &ConvergenceError{
		Iterations: o.maxIterations,
		Delta:      delta,
		Tolerance:  o.tolerance,
	}
}

// Deviation returns the largest absolute per-page difference between two
// estimates of the same graph.
func Deviation(a, b model.RankMap) float64 {
	return a.MaxAbsDiff(b)
}
