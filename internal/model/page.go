package model

import (
	"slices"
)

// Page identifies a corpus page by its file name (e.g. "1.html").
type Page string

// Graph is a directed link graph over the pages of a corpus.
//
// Every link target is itself a page of the graph; links to pages outside
// the corpus and self-links are discarded by NewGraph. Pages are kept in
// ascending order so that every iteration over a Graph is deterministic.
//
// A Graph is never modified after construction and may be shared freely.
type Graph struct {
	// pages holds every page in ascending order.
	pages []Page

	// links maps a page to its sorted, de-duplicated outbound links.
	links map[Page][]Page

	// inbound maps a page to the sorted pages that link to it.
	inbound map[Page][]Page
}

// NewGraph builds a Graph from raw adjacency data.
// Every key of raw becomes a page. Link targets that are not keys, links
// from a page to itself, and duplicate links are dropped.
func NewGraph(raw map[Page][]Page) *Graph {
	g := &Graph{
		pages:   make([]Page, 0, len(raw)),
		links:   make(map[Page][]Page, len(raw)),
		inbound: make(map[Page][]Page, len(raw)),
	}

	for p := range raw {
		g.pages = append(g.pages, p)
	}
	slices.Sort(g.pages)

	for _, p := range g.pages {
		targets := make([]Page, 0, len(raw[p]))
		for _, t := range raw[p] {
			if t == p {
				continue
			}
			if _, ok := raw[t]; !ok {
				continue
			}
			targets = append(targets, t)
		}
		slices.Sort(targets)
		targets = slices.Compact(targets)
		g.links[p] = targets

		for _, t := range targets {
			g.inbound[t] = append(g.inbound[t], p)
		}
	}

	// Sources were visited in ascending order, so inbound lists are sorted.
	return g
}

// Pages returns every page of the graph in ascending order.
// The returned slice is a copy.
func (g *Graph) Pages() []Page {
	return slices.Clone(g.pages)
}

// Len returns the number of pages in the graph.
func (g *Graph) Len() int {
	return len(g.pages)
}

// Has reports whether p is a page of the graph.
func (g *Graph) Has(p Page) bool {
	_, ok := g.links[p]
	return ok
}

// Links returns the outbound links of p in ascending order.
// It returns nil if p has no links or is not part of the graph.
func (g *Graph) Links(p Page) []Page {
	return slices.Clone(g.links[p])
}

// LinksTo reports whether from has an outbound link to to.
func (g *Graph) LinksTo(from, to Page) bool {
	_, found := slices.BinarySearch(g.links[from], to)
	return found
}

// OutDegree returns the number of outbound links of p.
func (g *Graph) OutDegree(p Page) int {
	return len(g.links[p])
}

// IsSink reports whether p is a page without outbound links.
func (g *Graph) IsSink(p Page) bool {
	return g.Has(p) && len(g.links[p]) == 0
}

// Sinks returns every sink page in ascending order.
func (g *Graph) Sinks() []Page {
	sinks := make([]Page, 0)
	for _, p := range g.pages {
		if len(g.links[p]) == 0 {
			sinks = append(sinks, p)
		}
	}
	return sinks
}

// Inbound returns the pages linking to p in ascending order.
func (g *Graph) Inbound(p Page) []Page {
	return slices.Clone(g.inbound[p])
}

// LinkCount returns the total number of links in the graph.
func (g *Graph) LinkCount() int {
	total := 0
	for _, targets := range g.links {
		total += len(targets)
	}
	return total
}
