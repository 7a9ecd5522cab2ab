package pagerank

import (
	"fmt"
	"math/rand/v2"

	"github.com/nao1215/linkrank/internal/model"
)

// SampleResult is the outcome of a random surfer simulation.
type SampleResult struct {
	// Ranks holds visits divided by the sample count for every page.
	Ranks model.RankMap

	// Visits holds the raw visit count for every page.
	Visits map[model.Page]int

	// Samples is the number of steps simulated.
	Samples int
}

// Sampler estimates PageRank by simulating a random surfer.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler drawing from rng.
// The Sampler is not safe for concurrent use because rng is not.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample walks n steps over g, starting at a uniformly random page.
// Each step counts a visit to the current page, then draws the next page
// from the current page's transition distribution.
//
// n must be at least 1.
func (s *Sampler) Sample(g *model.Graph, damping float64, n int) (*SampleResult, error) {
	if err := validate(g.Len(), damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, n)
	}

	pages := g.Pages()
	visits := make(map[model.Page]int, len(pages))
	for _, p := range pages {
		visits[p] = 0
	}

	current := pages[s.rng.IntN(len(pages))]
	for range n {
		visits[current]++
		current = s.draw(pages, transition(g, current, damping))
	}

	ranks := make(model.RankMap, len(pages))
	for _, p := range pages {
		ranks[p] = float64(visits[p]) / float64(n)
	}

	return &SampleResult{
		Ranks:   ranks,
		Visits:  visits,
		Samples: n,
	}, nil
}

// draw picks a page with probability equal to its weight in dist.
// Pages are walked in the given order; if rounding leaves the cumulative
// weight just short of the drawn value, the last page with a positive
// weight is returned.
func (s *Sampler) draw(pages []model.Page, dist Distribution) model.Page {
	r := s.rng.Float64()
	cumulative := 0.0
	last := pages[len(pages)-1]
	for _, p := range pages {
		w := dist[p]
		if w <= 0 {
			continue
		}
		cumulative += w
		last = p
		if r < cumulative {
			return p
		}
	}
	return last
}
