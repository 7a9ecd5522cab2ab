package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/linkrank/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// report from previous steps.
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the report to modify.
	Do(ctx context.Context, report *model.RankReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Failed steps are logged and their errors
// are recorded in the report, but subsequent steps still execute.
//
// The default is to stop, because every step after a failed crawl would
// fail as well.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps in order against report.
//
// Cancellation is checked between steps. A step error is wrapped with the
// step name and stored in report.Error. Unless continueOnError is set, the
// first failure ends the run and is returned. report.Elapsed always covers
// the whole run.
func (p *Pipeline) Execute(ctx context.Context, report *model.RankReport) error {
	start := time.Now()
	defer func() {
		report.Elapsed = time.Since(start)
	}()

	logger := p.logger.With("corpus", report.Corpus)

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("ranking cancelled", "before", step.Name(), "reason", err)
			p.recordError(report, err)
			return err
		}

		stepStart := time.Now()
		logger.Info("running step", "step", step.Name())

		if err := step.Do(ctx, report); err != nil {
			err = fmt.Errorf("%s step: %w", step.Name(), err)
			logger.Error("step failed", "step", step.Name(), "error", err)
			p.recordError(report, err)

			if !p.continueOnError {
				return err
			}
			continue
		}

		report.PerformedSteps = append(report.PerformedSteps, step.Name())
		logger.Debug("step finished",
			append([]any{"step", step.Name(), "elapsed", time.Since(stepStart)}, progress(report)...)...,
		)
	}

	return nil
}

// recordError stores err in the report for the writers.
func (p *Pipeline) recordError(report *model.RankReport, err error) {
	report.Error = err
	report.ErrorMessage = err.Error()
}

// progress returns log attributes describing what the report holds so far.
func progress(report *model.RankReport) []any {
	attrs := []any{"pages", report.PageCount, "links", report.LinkCount}
	if report.HasSampling() {
		attrs = append(attrs, "samples", report.Samples)
	}
	if report.HasIteration() {
		attrs = append(attrs, "iterations", report.Iterations)
	}
	return attrs
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
