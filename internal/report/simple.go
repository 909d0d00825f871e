package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/prompt508/prompt508/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
//  3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail: matched jargon terms and the
	// flagged sentences themselves.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
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

// WriteAnalysis outputs the analysis in human-readable format.
func (w *SimpleWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	w.writeScores(&sb, report)
	w.writeIssues(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// WriteOutcome outputs the pipeline outcome followed by the analysis of
// its final text.
func (w *SimpleWriter) WriteOutcome(outcome *model.ComplianceOutcome, report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)

	sb.WriteString(fmt.Sprintf("Stages Used:    %d\n", outcome.StagesUsed))
	if outcome.WasFixed {
		sb.WriteString("Repair Pass:    yes\n")
	} else {
		sb.WriteString("Repair Pass:    no (first generation passed)\n")
	}
	sb.WriteString(fmt.Sprintf("Final Score:    %.1f/100\n\n", outcome.ComplianceScore))

	w.writeScores(&sb, report)
	w.writeIssues(&sb, report)

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\nFinal Output\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(outcome.FinalOutput)
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner.
func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                  PROMPT508 ACCESSIBILITY REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

// writeScores writes the score summary section.
func (w *SimpleWriter) writeScores(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(fmt.Sprintf("Overall Score:  %.1f/100\n", report.OverallScore))
	if report.PassesCompliance {
		sb.WriteString("Compliance:     PASS\n")
	} else {
		sb.WriteString("Compliance:     FAIL\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Reading Grade:  %.1f  (%d sentences, %d words, %d syllables)\n",
		report.Readability.GradeLevel,
		report.Readability.SentenceCount,
		report.Readability.WordCount,
		report.Readability.SyllableCount))
	sb.WriteString(fmt.Sprintf("Jargon Terms:   %d\n", report.Jargon.JargonCount))
	sb.WriteString(fmt.Sprintf("Passive Voice:  %d\n", report.Tone.PassiveVoiceCount))
	sb.WriteString("\n")

	if w.verbose {
		if len(report.Jargon.MatchedTerms) > 0 {
			sb.WriteString("Matched Terms:  ")
			sb.WriteString(strings.Join(report.Jargon.MatchedTerms, ", "))
			sb.WriteString("\n")
		}
		for _, sentence := range report.Tone.FlaggedSentences {
			sb.WriteString(fmt.Sprintf("  passive: %q\n", sentence))
		}
		if len(report.Jargon.MatchedTerms) > 0 || len(report.Tone.FlaggedSentences) > 0 {
			sb.WriteString("\n")
		}
	}
}

// writeIssues writes the issues section, most severe first.
func (w *SimpleWriter) writeIssues(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\nIssues\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if len(report.Issues) == 0 {
		sb.WriteString("No accessibility issues detected.\n\n")
		return
	}

	for _, issue := range report.TopIssues(-1) {
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", issue.SeverityText, issueHeading(issue.Kind), issue.Message))
		if w.verbose {
			info := model.GetIssueInfo(issue.Kind)
			sb.WriteString(fmt.Sprintf("         %s\n", info.Recommendation))
		}
	}
	sb.WriteString("\n")
}
