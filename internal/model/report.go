package model

import (
	"time"
)

// RankReport is the result of one ranking run over a corpus.
// It is filled in step by step by the pipeline and consumed by the
// report writers.
//
// Design decision: Like the rank maps themselves, the report is owned by
// the run that created it. Each estimator writes only its own fields, so
// the two methods never share mutable state.
type RankReport struct {
	// === Corpus Information ===

	// Corpus is the directory the graph was built from.
	Corpus string `json:"corpus"`

	// DateRanked is the timestamp when the run started.
	DateRanked time.Time `json:"date_ranked"`

	// Graph is the link graph built from the corpus.
	// It is excluded from JSON; PageCount, LinkCount and Sinks summarize it.
	Graph *Graph `json:"-"`

	// PageCount is the number of pages in the corpus.
	PageCount int `json:"page_count"`

	// LinkCount is the number of in-corpus links after filtering.
	LinkCount int `json:"link_count"`

	// Sinks lists the pages without outbound links.
	Sinks []Page `json:"sinks"`

	// === Parameters ===

	// Damping is the probability of following a link instead of jumping.
	Damping float64 `json:"damping"`

	// Samples is the number of random surfer steps simulated.
	Samples int `json:"samples"`

	// Seed is the seed of the random source used for sampling.
	Seed uint64 `json:"seed"`

	// === Sampling Estimator ===

	// SamplingRanks holds the visit-frequency estimates.
	SamplingRanks RankMap `json:"sampling_ranks,omitempty"`

	// Visits holds the raw visit count per page.
	Visits map[Page]int `json:"visits,omitempty"`

	// === Iterative Estimator ===

	// IterativeRanks holds the fixed-point estimates.
	IterativeRanks RankMap `json:"iterative_ranks,omitempty"`

	// Iterations is the number of update rounds until convergence.
	Iterations int `json:"iterations"`

	// === Comparison ===

	// MaxDeviation is the largest absolute difference between the two
	// estimates for any single page.
	MaxDeviation float64 `json:"max_deviation"`

	// === Status ===

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// PerformedSteps lists the names of the pipeline steps that ran.
	PerformedSteps []string `json:"performed_steps"`

	// Error holds the last step error, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewRankReport creates an empty report for the given corpus directory.
func NewRankReport(corpus string) *RankReport {
	return &RankReport{
		Corpus:         corpus,
		DateRanked:     time.Now(),
		Sinks:          make([]Page, 0),
		PerformedSteps: make([]string, 0),
	}
}

// SetGraph attaches g to the report and records its summary figures.
func (r *RankReport) SetGraph(g *Graph) {
	r.Graph = g
	r.PageCount = g.Len()
	r.LinkCount = g.LinkCount()
	r.Sinks = g.Sinks()
}

// HasSampling reports whether the sampling estimate is present.
func (r *RankReport) HasSampling() bool {
	return r.SamplingRanks != nil
}

// HasIteration reports whether the iterative estimate is present.
func (r *RankReport) HasIteration() bool {
	return r.IterativeRanks != nil
}
