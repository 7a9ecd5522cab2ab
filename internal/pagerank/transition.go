package pagerank

import (
	"fmt"

	"github.com/nao1215/linkrank/internal/model"
)

// Distribution is a probability distribution over the pages of a graph.
// Every page has an entry and the entries sum to 1.
type Distribution = model.RankMap

// Transition returns the probability of the random surfer moving from page
// to every page of g in a single step.
//
// From a sink the surfer jumps to any page with probability 1/N and the
// damping factor is ignored. Otherwise every page gets (1-damping)/N, and
// each outbound link of page gets an extra damping/outdegree on top.
func Transition(g *model.Graph, page model.Page, damping float64) (Distribution, error) {
	if err := validate(g.Len(), damping); err != nil {
		return nil, err
	}
	if !g.Has(page) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}
	return transition(g, page, damping), nil
}

// transition is Transition without argument checks.
func transition(g *model.Graph, page model.Page, damping float64) Distribution {
	n := float64(g.Len())
	dist := make(Distribution, g.Len())

	if g.IsSink(page) {
		for _, p := range g.Pages() {
			dist[p] = 1 / n
		}
		return dist
	}

	share := damping / float64(g.OutDegree(page))
	for _, p := range g.Pages() {
		dist[p] = (1 - damping) / n
		if g.LinksTo(page, p) {
			dist[p] += share
		}
	}
	return dist
}
