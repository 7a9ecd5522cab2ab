// Package model defines the core data structures used throughout linkrank.
//
// This package contains the following main types:
//   - Page: A corpus page, identified by its file name
//   - Graph: The immutable link graph built from a corpus directory
//   - RankMap: A PageRank estimate for every page in a Graph
//   - RankReport: The combined result of one ranking run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The crawler, pagerank, pipeline and report packages all need
// these types, so centralizing them prevents import cycles.
package model
