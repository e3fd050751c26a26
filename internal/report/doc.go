// Package report renders and persists scan reports.
//
// This package contains writers for different output formats:
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: documentation-friendly output for sharing
//   - SimpleWriter: human-readable summary for terminal display
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. WriteFile
// persists the canonical JSON report atomically.
package report
