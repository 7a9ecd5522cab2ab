package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDamping is the classic PageRank damping factor: the surfer
	// follows a link 85% of the time and jumps to a random page otherwise.
	DefaultDamping = 0.85

	// DefaultSamples is the number of random surfer steps.
	// 10000 keeps sampling noise around a percent on small corpora.
	DefaultSamples = 10000

	// DefaultMaxIterations bounds the iterative estimator.
	// Well-formed corpora converge in tens of iterations.
	DefaultMaxIterations = 10000

	// DefaultTolerance is the per-page change below which ranks are settled.
	DefaultTolerance = 0.001

	// DefaultExtension marks a file as a corpus page.
	DefaultExtension = ".html"

	// ParserRegexp selects the fixed regular expression link extractor.
	ParserRegexp = "regexp"

	// ParserHTML selects the x/net/html tokenizer link extractor.
	ParserHTML = "html"

	// DefaultParser is the link extractor used when none is configured.
	DefaultParser = ParserRegexp

	// LogFormatText writes logs as key=value text.
	LogFormatText = "text"

	// LogFormatJSON writes one JSON object per log record.
	LogFormatJSON = "json"

	// DefaultLogFormat is the log format used when none is configured.
	DefaultLogFormat = LogFormatText

	// AppName is the application name used for XDG directory paths.
	AppName = "linkrank"
)

// Config holds all configuration options for linkrank.
// This struct is populated from defaults, the configuration file and CLI
// flags, in that order, and passed through the application explicitly.
type Config struct {
	// Corpus is the directory containing the pages to rank.
	Corpus string

	// Damping is the probability of following a link rather than jumping
	// to a random page. Must be in [0, 1].
	Damping float64

	// Samples is the number of random surfer steps for the sampling estimator.
	Samples int

	// Seed seeds the random source of the sampling estimator.
	// Zero means a seed is chosen at run time.
	Seed uint64

	// MaxIterations bounds the iterative estimator. Exceeding it is reported
	// as a convergence failure.
	MaxIterations int

	// Tolerance is the convergence threshold of the iterative estimator.
	Tolerance float64

	// Extension is the file name suffix that marks a corpus page.
	Extension string

	// Parser selects the link extractor: ParserRegexp or ParserHTML.
	Parser string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// LogFormat selects the log encoding: LogFormatText or LogFormatJSON.
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Extension:     DefaultExtension,
		Parser:        DefaultParser,
		LogFormat:     DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for linkrank.
// On Linux: ~/.config/linkrank
// On macOS: ~/Library/Application Support/linkrank
// On Windows: %APPDATA%\linkrank
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.Corpus == "" {
		return ErrNoCorpus
	}
	// The negated form also rejects NaN.
	if !(c.Damping >= 0 && c.Damping <= 1) {
		return ErrInvalidDamping
	}
	if c.Samples < 1 {
		return ErrInvalidSamples
	}
	if c.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	if !(c.Tolerance > 0) {
		return ErrInvalidTolerance
	}
	if c.Extension == "" {
		return ErrInvalidExtension
	}
	if c.Parser != ParserRegexp && c.Parser != ParserHTML {
		return ErrUnknownParser
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrUnknownLogFormat
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
