package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/yomawari/domainscan/internal/model"
)

// topDomainLimit bounds the detail table so reports over large catalogs
// stay readable.
const topDomainLimit = 25

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeTopDomains(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan metadata.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Domain Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Domains Checked", strconv.Itoa(report.TotalDomains)},
			{"Workers", strconv.Itoa(report.WorkerCount)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the status summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Status Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.AllStatuses)+1)
	for _, s := range model.AllStatuses {
		rows = append(rows, []string{s.String(), strconv.Itoa(report.Summary[s.String()])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(report.TotalDomains) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.TotalDomains > 0 {
		w.writePieChart(md, report)
	}

	if n := report.Acquirable(); n > 0 {
		md.Importantf("%d domain(s) look acquirable (for sale, expired, or unregistered).", n)
	} else {
		md.Note("No acquirable domains found in this scan.")
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Domain Status Distribution"),
		piechart.WithShowData(true),
	)

	for _, s := range model.AllStatuses {
		if count := report.Summary[s.String()]; count > 0 {
			chart.LabelAndIntValue(s.String(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeTopDomains writes the highest scored domains with their evidence.
func (w *MarkdownWriter) writeTopDomains(md *markdown.Markdown, report *model.Report) {
	md.H2("Top Domains")
	md.PlainText("")

	if len(report.Results) == 0 {
		md.PlainText("No domains were scanned.")
		md.PlainText("")
		return
	}

	limit := len(report.Results)
	if limit > topDomainLimit {
		limit = topDomainLimit
	}

	rows := make([][]string, 0, limit)
	for _, r := range report.Results[:limit] {
		value := r.EstimatedValue
		if value == "" {
			value = "-"
		}
		rows = append(rows, []string{
			"`" + r.Domain + "`",
			r.Status.String(),
			strconv.Itoa(r.Score),
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			value,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Domain", "Status", "Score", "Confidence", "Est. Value"},
		Rows:   rows,
	})
	md.PlainText("")
}
