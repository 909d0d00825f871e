package textscore

import (
	"fmt"
	"strings"

	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/model"
)

// scoreRule couples one accessibility rule with its deduction.
// Each rule inspects the analyzed report and, when violated, returns the
// issue to record and the points to subtract. One issue maps to exactly one
// deduction, which keeps "why did this fail" answerable from the report
// alone.
type scoreRule func(report *model.AnalysisReport, cfg *config.Config) (issue model.Issue, deduction float64, violated bool)

// scoreRules is the ordered deduction table. Order matters: issues are
// recorded in this order (grade first, then jargon, then tone), which is
// the order consumers expect a report to read in.
//
// Design decision: A declarative rule table replaces ad hoc conditional
// branching so rules can be added or tuned without touching control flow.
var scoreRules = []scoreRule{
	unparseableRule,
	gradeLevelRule,
	jargonRule,
	passiveVoiceRule,
}

// applyScore runs the deduction table over an analyzed report, filling in
// OverallScore, Issues, and PassesCompliance.
func applyScore(report *model.AnalysisReport, cfg *config.Config) {
	score := 100.0

	for _, rule := range scoreRules {
		issue, deduction, violated := rule(report, cfg)
		if !violated {
			continue
		}
		report.Issues = append(report.Issues, issue)
		score -= deduction
	}

	// Clamp to the contract range
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	report.OverallScore = score

	// A high composite score must not mask a disqualifying issue
	report.PassesCompliance = score >= cfg.ComplianceThreshold && !report.HasHardFail()
}

// unparseableRule fires when the text has no sentences or no words.
// Unscorable text forfeits the whole score: compliance may only ever be
// reported for text that was actually scored.
func unparseableRule(report *model.AnalysisReport, _ *config.Config) (model.Issue, float64, bool) {
	if report.Readability.SentenceCount > 0 && report.Readability.WordCount > 0 {
		return model.Issue{}, 0, false
	}
	return model.NewIssue(model.IssueUnparseable, "empty or unparseable text"), 100, true
}

// gradeLevelRule deducts per grade unit above the target. When the grade
// also exceeds the hard ceiling the issue escalates to the disqualifying
// kind; the deduction stays per-unit either way.
func gradeLevelRule(report *model.AnalysisReport, cfg *config.Config) (model.Issue, float64, bool) {
	if report.Readability.SentenceCount == 0 || report.Readability.WordCount == 0 {
		return model.Issue{}, 0, false
	}

	grade := report.Readability.GradeLevel
	if grade <= cfg.TargetGradeLevel {
		return model.Issue{}, 0, false
	}

	deduction := (grade - cfg.TargetGradeLevel) * cfg.GradePenalty

	if grade > cfg.HardGradeCeiling {
		msg := fmt.Sprintf("reading grade level %.1f exceeds the hard ceiling of %.0f", grade, cfg.HardGradeCeiling)
		return model.NewIssue(model.IssueGradeCeiling, msg), deduction, true
	}

	msg := fmt.Sprintf("reading grade level %.1f exceeds the target of %.0f", grade, cfg.TargetGradeLevel)
	return model.NewIssue(model.IssueGradeTarget, msg), deduction, true
}

// jargonRule deducts per jargon occurrence beyond the allowance.
func jargonRule(report *model.AnalysisReport, cfg *config.Config) (model.Issue, float64, bool) {
	excess := report.Jargon.JargonCount - cfg.JargonAllowance
	if excess <= 0 {
		return model.Issue{}, 0, false
	}

	msg := fmt.Sprintf("%d jargon terms exceed the allowance of %d (e.g. %s)",
		report.Jargon.JargonCount, cfg.JargonAllowance, previewTerms(report.Jargon.MatchedTerms, 3))
	return model.NewIssue(model.IssueJargon, msg), float64(excess) * cfg.JargonPenalty, true
}

// passiveVoiceRule deducts per flagged sentence beyond the allowance.
func passiveVoiceRule(report *model.AnalysisReport, cfg *config.Config) (model.Issue, float64, bool) {
	excess := report.Tone.PassiveVoiceCount - cfg.PassiveAllowance
	if excess <= 0 {
		return model.Issue{}, 0, false
	}

	msg := fmt.Sprintf("%d passive-voice sentences exceed the allowance of %d",
		report.Tone.PassiveVoiceCount, cfg.PassiveAllowance)
	return model.NewIssue(model.IssuePassiveVoice, msg), float64(excess) * cfg.PassivePenalty, true
}

// previewTerms joins up to n distinct terms for an issue message.
func previewTerms(terms []string, n int) string {
	seen := make(map[string]bool, n)
	preview := make([]string, 0, n)

	for _, term := range terms {
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		preview = append(preview, term)
		if len(preview) == n {
			break
		}
	}

	return strings.Join(preview, ", ")
}
