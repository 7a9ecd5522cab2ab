package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/linkrank/internal/model"
)

// deviationWarning is the per-page difference between the two estimates
// above which the Markdown report adds a warning.
const deviationWarning = 0.05

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, alerts and mermaid charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RankReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeRanks(md, report)
	w.writeVisitChart(md, report)
	w.writeAlert(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RankReport) {
	md.H1("PageRank Report")
	md.PlainText("")

	sinks := "none"
	if len(report.Sinks) > 0 {
		names := make([]string, len(report.Sinks))
		for i, s := range report.Sinks {
			names[i] = "`" + string(s) + "`"
		}
		sinks = strings.Join(names, ", ")
	}

	rows := [][]string{
		{"Corpus", "`" + report.Corpus + "`"},
		{"Date", report.DateRanked.Format("2006-01-02 15:04:05 MST")},
		{"Pages", strconv.Itoa(report.PageCount)},
		{"Links", strconv.Itoa(report.LinkCount)},
		{"Sinks", sinks},
		{"Damping", strconv.FormatFloat(report.Damping, 'g', -1, 64)},
	}
	if report.HasSampling() {
		rows = append(rows,
			[]string{"Samples", strconv.Itoa(report.Samples)},
			[]string{"Seed", strconv.FormatUint(report.Seed, 10)},
		)
	}
	if report.HasIteration() {
		rows = append(rows, []string{"Iterations", strconv.Itoa(report.Iterations)})
	}
	if report.HasSampling() && report.HasIteration() {
		rows = append(rows, []string{"Max deviation", formatRank(report.MaxDeviation)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRanks writes one table row per page with both estimates.
func (w *MarkdownWriter) writeRanks(md *markdown.Markdown, report *model.RankReport) {
	md.H2("Ranks")
	md.PlainText("")

	pages := report.IterativeRanks.Pages()
	if len(pages) == 0 {
		pages = report.SamplingRanks.Pages()
	}
	if len(pages) == 0 {
		md.Note("No ranks were computed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{
			"`" + string(p) + "`",
			w.cell(report.SamplingRanks, p),
			w.cell(report.IterativeRanks, p),
			strconv.Itoa(report.Visits[p]),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Page", "Sampling", "Iteration", "Visits"},
		Rows:   rows,
	})
	md.PlainText("")
}

// cell formats a rank or returns "-" when the estimate is missing.
func (w *MarkdownWriter) cell(ranks model.RankMap, p model.Page) string {
	v, ok := ranks[p]
	if !ok {
		return "-"
	}
	return formatRank(v)
}

// writeVisitChart writes a mermaid pie chart of the sampled visit counts.
func (w *MarkdownWriter) writeVisitChart(md *markdown.Markdown, report *model.RankReport) {
	if !report.HasSampling() {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Random Surfer Visits"),
		piechart.WithShowData(true),
	)
	for _, p := range report.SamplingRanks.Pages() {
		if visits := report.Visits[p]; visits > 0 {
			chart.LabelAndIntValue(string(p), uint64(visits))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert when the two estimates disagree noticeably.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RankReport) {
	if !report.HasSampling() || !report.HasIteration() {
		return
	}
	if report.MaxDeviation > deviationWarning {
		md.Warningf(
			"Sampling and iteration differ by up to %s on a single page. Consider raising the sample count.",
			formatRank(report.MaxDeviation),
		)
	} else {
		md.Tip("Sampling and iteration agree within " + formatRank(deviationWarning) + " on every page.")
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [linkrank](https://github.com/nao1215/linkrank)*")
}
