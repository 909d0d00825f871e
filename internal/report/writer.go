package report

import (
	"io"
	"strings"

	"github.com/prompt508/prompt508/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer defines the interface for report output.
// Implementations render analysis results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteAnalysis outputs a standalone analysis report.
	// Returns the number of bytes written and any error encountered.
	WriteAnalysis(report *model.AnalysisReport) (int, error)

	// WriteOutcome outputs a pipeline outcome together with the analysis
	// of its final text.
	WriteOutcome(outcome *model.ComplianceOutcome, report *model.AnalysisReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than using
// io.MultiWriter because our Writer interface is different from io.Writer -
// we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteAnalysis outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteAnalysis(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteOutcome outputs the outcome to all configured Writers.
func (m *MultiWriter) WriteOutcome(outcome *model.ComplianceOutcome, report *model.AnalysisReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteOutcome(outcome, report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// issueHeading turns an issue kind into a display heading:
// "jargon_overuse" becomes "Jargon Overuse".
func issueHeading(kind model.IssueKind) string {
	name := strings.ReplaceAll(string(kind), "_", " ")
	return cases.Title(language.English).String(name)
}
