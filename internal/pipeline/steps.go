package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/nao1215/linkrank/internal/config"
	"github.com/nao1215/linkrank/internal/crawler"
	"github.com/nao1215/linkrank/internal/model"
	"github.com/nao1215/linkrank/internal/pagerank"
)

// errNoGraph is returned by estimator steps that run before the crawl step.
var errNoGraph = errors.New("no graph: the crawl step must run first")

// CrawlStep builds the link graph from the report's corpus directory.
type CrawlStep struct {
	builder *crawler.Builder
}

// NewCrawlStep creates a crawl step using builder.
func NewCrawlStep(builder *crawler.Builder) *CrawlStep {
	return &CrawlStep{builder: builder}
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do builds the graph and attaches it to the report.
// An empty corpus is an error because no estimator can rank zero pages.
func (s *CrawlStep) Do(ctx context.Context, report *model.RankReport) error {
	g, err := s.builder.Build(ctx, report.Corpus)
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		return pagerank.ErrEmptyCorpus
	}
	report.SetGraph(g)
	return nil
}

// SampleStep runs the random surfer estimator.
type SampleStep struct {
	damping float64
	samples int
	seed    uint64
	logger  *slog.Logger
}

// NewSampleStep creates a sampling step. A zero seed is replaced with one
// derived from the current time when the step runs.
func NewSampleStep(damping float64, samples int, seed uint64, logger *slog.Logger) *SampleStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SampleStep{
		damping: damping,
		samples: samples,
		seed:    seed,
		logger:  logger,
	}
}

// Name returns the step name.
func (s *SampleStep) Name() string {
	return "sample"
}

// Do samples the graph and records ranks, visits and the seed used.
func (s *SampleStep) Do(_ context.Context, report *model.RankReport) error {
	if report.Graph == nil {
		return errNoGraph
	}

	seed := s.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // Seed only needs to vary between runs
	}
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // Simulation, not cryptography

	res, err := pagerank.NewSampler(rng).Sample(report.Graph, s.damping, s.samples)
	if err != nil {
		return err
	}

	report.Damping = s.damping
	report.Samples = res.Samples
	report.Seed = seed
	report.SamplingRanks = res.Ranks
	report.Visits = res.Visits

	s.logger.Debug("sampling finished", "samples", res.Samples, "seed", seed)
	return nil
}

// IterateStep runs the fixed-point estimator.
type IterateStep struct {
	damping float64
	opts    []pagerank.IterateOption
	logger  *slog.Logger
}

// NewIterateStep creates an iterative step.
func NewIterateStep(damping float64, logger *slog.Logger, opts ...pagerank.IterateOption) *IterateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &IterateStep{
		damping: damping,
		opts:    opts,
		logger:  logger,
	}
}

// Name returns the step name.
func (s *IterateStep) Name() string {
	return "iterate"
}

// Do iterates the graph to convergence and records the ranks.
func (s *IterateStep) Do(_ context.Context, report *model.RankReport) error {
	if report.Graph == nil {
		return errNoGraph
	}

	res, err := pagerank.Iterate(report.Graph, s.damping, s.opts...)
	if err != nil {
		return err
	}

	report.Damping = s.damping
	report.IterativeRanks = res.Ranks
	report.Iterations = res.Iterations

	s.logger.Debug("iteration converged", "iterations", res.Iterations)
	return nil
}

// CompareStep records how far the two estimates are apart.
// It does nothing unless both estimates are present.
type CompareStep struct{}

// NewCompareStep creates a comparison step.
func NewCompareStep() *CompareStep {
	return &CompareStep{}
}

// Name returns the step name.
func (s *CompareStep) Name() string {
	return "compare"
}

// Do sets report.MaxDeviation.
func (s *CompareStep) Do(_ context.Context, report *model.RankReport) error {
	if !report.HasSampling() || !report.HasIteration() {
		return nil
	}
	report.MaxDeviation = pagerank.Deviation(report.SamplingRanks, report.IterativeRanks)
	return nil
}

// DefaultPipeline creates the standard crawl, sample, iterate, compare pipeline
// from cfg.
func DefaultPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	var extractor crawler.LinkExtractor = crawler.NewRegexpExtractor()
	if cfg.Parser == config.ParserHTML {
		extractor = crawler.NewHTMLExtractor()
	}

	builder := crawler.NewBuilder(
		crawler.WithExtension(cfg.Extension),
		crawler.WithExtractor(extractor),
		crawler.WithLogger(logger),
	)

	p := New(WithLogger(logger))
	p.AddSteps(
		NewCrawlStep(builder),
		NewSampleStep(cfg.Damping, cfg.Samples, cfg.Seed, logger),
		NewIterateStep(cfg.Damping, logger,
			pagerank.WithTolerance(cfg.Tolerance),
			pagerank.WithMaxIterations(cfg.MaxIterations),
		),
		NewCompareStep(),
	)
	return p
}
