package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/prompt508/prompt508/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation, pull requests, and issue
// trackers where a scan result travels alongside the text it describes.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteAnalysis outputs the analysis in Markdown format.
func (w *MarkdownWriter) WriteAnalysis(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Accessibility Report")
	w.writeVerdict(md, report)
	w.writeSummaryTable(md, report)
	w.writeIssueSection(md, report)

	if err := md.Build(); err != nil {
		return 0, err
	}
	return len(md.String()), nil
}

// WriteOutcome outputs the pipeline outcome followed by the analysis of its
// final text.
func (w *MarkdownWriter) WriteOutcome(outcome *model.ComplianceOutcome, report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance Pipeline Report")

	if outcome.WasFixed {
		md.Warningf("The first generation failed compliance. A repair pass ran and the final score is %.1f/100.", outcome.ComplianceScore)
	} else {
		md.Note("The first generation passed compliance. No repair pass was needed.")
	}

	md.H2("Pipeline")
	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Stages Used", fmt.Sprintf("%d", outcome.StagesUsed)},
			{"Repair Pass", yesNo(outcome.WasFixed)},
			{"Final Score", fmt.Sprintf("%.1f/100", outcome.ComplianceScore)},
		},
	})

	w.writeVerdict(md, report)
	w.writeSummaryTable(md, report)
	w.writeIssueSection(md, report)

	md.HorizontalRule()
	md.H2("Final Output")
	md.PlainText(outcome.FinalOutput)

	if err := md.Build(); err != nil {
		return 0, err
	}
	return len(md.String()), nil
}

// writeVerdict renders the pass/fail alert at the top of the report.
func (w *MarkdownWriter) writeVerdict(md *markdown.Markdown, report *model.AnalysisReport) {
	if report.PassesCompliance {
		md.Tip(fmt.Sprintf("This text passes accessibility compliance with a score of %.1f/100.", report.OverallScore))
		return
	}
	md.Cautionf("This text fails accessibility compliance with a score of %.1f/100.", report.OverallScore)
}

// writeSummaryTable renders the per-analyzer measurements.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Summary")
	md.Table(markdown.TableSet{
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Overall Score", fmt.Sprintf("%.1f/100", report.OverallScore)},
			{"Reading Grade", fmt.Sprintf("%.1f", report.Readability.GradeLevel)},
			{"Sentences", fmt.Sprintf("%d", report.Readability.SentenceCount)},
			{"Words", fmt.Sprintf("%d", report.Readability.WordCount)},
			{"Jargon Terms", fmt.Sprintf("%d", report.Jargon.JargonCount)},
			{"Passive Sentences", fmt.Sprintf("%d", report.Tone.PassiveVoiceCount)},
		},
	})
}

// writeIssueSection renders the issues table, most severe first, with the
// recommendation for each violated rule.
func (w *MarkdownWriter) writeIssueSection(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Issues")

	if len(report.Issues) == 0 {
		md.PlainText("No accessibility issues detected.")
		return
	}

	rows := make([][]string, 0, len(report.Issues))
	for _, issue := range report.TopIssues(-1) {
		info := model.GetIssueInfo(issue.Kind)
		rows = append(rows, []string{
			issue.SeverityText,
			issueHeading(issue.Kind),
			issue.Message,
			info.Recommendation,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Issue", "Detail", "Recommendation"},
		Rows:   rows,
	})
}

// yesNo converts a bool to a human-readable table cell.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
