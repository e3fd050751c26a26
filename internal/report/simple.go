package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yomawari/domainscan/internal/model"
)

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display at the end of a scan.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// topCount is how many of the highest scored domains to list.
	topCount int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTopCount sets how many top scored domains the summary lists.
func WithTopCount(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if n >= 0 {
			w.topCount = n
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		topCount:   10,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the scan summary in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeTopDomains(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the summary header with scan metadata.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                  DOMAIN SCAN SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Generated:       %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Domains Checked: %d\n", report.TotalDomains))
	sb.WriteString(fmt.Sprintf("Workers:         %d\n", report.WorkerCount))
	sb.WriteString("\n")
}

// writeSummary writes the per-status counts.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("STATUS SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, s := range model.AllStatuses {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", strings.ToUpper(s.String())+":", report.Summary[s.String()]))
	}
	sb.WriteString("\n")

	if n := report.Acquirable(); n > 0 {
		sb.WriteString(fmt.Sprintf("  ** %d domains may be acquirable! **\n", n))
		sb.WriteString("\n")
	}
}

// writeTopDomains writes the highest scored domains.
func (w *SimpleWriter) writeTopDomains(sb *strings.Builder, report *model.Report) {
	if w.topCount == 0 || len(report.Results) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("TOP DOMAINS BY SCORE\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	limit := len(report.Results)
	if limit > w.topCount {
		limit = w.topCount
	}
	for _, r := range report.Results[:limit] {
		sb.WriteString(fmt.Sprintf("  [%2d] %-30s %s", r.Score, r.Domain, r.Status))
		if r.EstimatedValue != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", r.EstimatedValue))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
