package pagerank

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when the graph has no pages.
	// Every estimator divides by the page count, so an empty corpus has no ranks.
	ErrEmptyCorpus = errors.New("empty corpus: no pages to rank")

	// ErrInvalidDamping is returned when the damping factor is outside [0, 1].
	ErrInvalidDamping = errors.New("invalid damping factor: must be between 0 and 1")

	// ErrInvalidSamples is returned when the sample count is less than one.
	ErrInvalidSamples = errors.New("invalid sample count: must be at least 1")

	// ErrUnknownPage is returned when a transition is requested from a page
	// that is not part of the graph.
	ErrUnknownPage = errors.New("page is not part of the corpus")

	// ErrNotConverged is returned when the iterative estimator exceeds its
	// iteration bound.
	ErrNotConverged = errors.New("pagerank did not converge")
)

// ConvergenceError describes an iterative run that hit its iteration bound.
type ConvergenceError struct {
	// Iterations is the number of update rounds performed.
	Iterations int

	// Delta is the largest absolute rank change in the final round.
	Delta float64

	// Tolerance is the threshold Delta had to fall below.
	Tolerance float64
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations (last change %.6f, tolerance %.6f)",
		ErrNotConverged, e.Iterations, e.Delta, e.Tolerance)
}

// Unwrap returns ErrNotConverged so callers can use errors.Is.
func (e *ConvergenceError) Unwrap() error {
	return ErrNotConverged
}

// validate checks the arguments shared by every estimator.
func validate(pageCount int, damping float64) error {
	if pageCount == 0 {
		return ErrEmptyCorpus
	}
	// The negated form also rejects NaN.
	if !(damping >= 0 && damping <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, damping)
	}
	return nil
}
