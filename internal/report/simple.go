package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/linkrank/internal/model"
)

// SimpleWriter outputs the plain console listing:
//
//	PageRank Results from Sampling (n = 10000)
//	  1.html: 0.2223
//	  ...
//	PageRank Results from Iteration
//	  1.html: 0.2202
//	  ...
//
// Pages are listed in ascending name order with four decimal places.
// An estimate missing from the report is skipped.
type SimpleWriter struct {
	baseWriter

	// verbose appends run statistics after the listings.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the statistics footer.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in plain text.
func (w *SimpleWriter) Write(report *model.RankReport) (int, error) {
	var sb strings.Builder

	if report.HasSampling() {
		fmt.Fprintf(&sb, "PageRank Results from Sampling (n = %d)\n", report.Samples)
		writeRanks(&sb, report.SamplingRanks)
	}

	if report.HasIteration() {
		sb.WriteString("PageRank Results from Iteration\n")
		writeRanks(&sb, report.IterativeRanks)
	}

	if w.verbose {
		w.writeStats(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeRanks writes one indented line per page.
func writeRanks(sb *strings.Builder, ranks model.RankMap) {
	for _, p := range ranks.Pages() {
		fmt.Fprintf(sb, "  %s: %s\n", p, formatRank(ranks[p]))
	}
}

// writeStats writes the run statistics footer.
func (w *SimpleWriter) writeStats(sb *strings.Builder, report *model.RankReport) {
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Corpus:        %s\n", report.Corpus)
	fmt.Fprintf(sb, "Pages:         %d (%d links, %d sinks)\n", report.PageCount, report.LinkCount, len(report.Sinks))
	fmt.Fprintf(sb, "Damping:       %g\n", report.Damping)
	if report.HasSampling() {
		fmt.Fprintf(sb, "Seed:          %d\n", report.Seed)
	}
	if report.HasIteration() {
		fmt.Fprintf(sb, "Iterations:    %d\n", report.Iterations)
	}
	if report.HasSampling() && report.HasIteration() {
		fmt.Fprintf(sb, "Max deviation: %s\n", formatRank(report.MaxDeviation))
	}
}
