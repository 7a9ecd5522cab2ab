// Package pagerank estimates PageRank over a model.Graph.
//
// Two independent estimators are provided:
//   - Sampler: a random surfer Monte Carlo simulation. Ranks are the visit
//     frequency of every page over a fixed number of steps.
//   - Iterate: a fixed-point solver that repeatedly applies the PageRank
//     update until no page changes by more than a tolerance.
//
// Both consume the same immutable graph and return their own RankMap, so
// they can run in any order.
//
// # Randomness
//
// The Sampler never touches a global random source. Callers pass a
// *rand.Rand, which makes runs reproducible when the source is seeded:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	res, err := pagerank.NewSampler(rng).Sample(g, 0.85, 10000)
//
// # Termination
//
// Iterate is bounded by a maximum iteration count. When the bound is hit
// before the ranks settle, it returns a *ConvergenceError that matches
// ErrNotConverged with errors.Is.
package pagerank
