// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The plain console listing of both estimates
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a chart
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) so that adding an output format never
// touches the estimators.
package report
