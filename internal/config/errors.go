package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoCorpus is returned when no corpus directory is specified.
	ErrNoCorpus = errors.New("no corpus specified: provide a corpus directory")

	// ErrInvalidDamping is returned when the damping factor is outside [0, 1].
	ErrInvalidDamping = errors.New("invalid damping factor: must be between 0 and 1")

	// ErrInvalidSamples is returned when the sample count is less than one.
	// Sampling ranks are visit counts divided by the sample count.
	ErrInvalidSamples = errors.New("invalid sample count: must be at least 1")

	// ErrInvalidMaxIterations is returned when the iteration bound is not positive.
	ErrInvalidMaxIterations = errors.New("invalid max iterations: must be positive")

	// ErrInvalidTolerance is returned when the convergence tolerance is not positive.
	ErrInvalidTolerance = errors.New("invalid tolerance: must be positive")

	// ErrInvalidExtension is returned when the page extension is empty.
	// An empty extension would treat every file as a page.
	ErrInvalidExtension = errors.New("invalid extension: must not be empty")

	// ErrUnknownParser is returned when the link parser name is not recognized.
	ErrUnknownParser = errors.New("unknown parser: must be \"regexp\" or \"html\"")

	// ErrUnknownLogFormat is returned when the log format is neither "text" nor "json".
	ErrUnknownLogFormat = errors.New("unknown log format: must be \"text\" or \"json\"")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
