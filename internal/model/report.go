package model

import "sort"

// AnalysisReport is the full accessibility analysis of a single text.
// It is produced fresh on every analysis, is immutable once returned, and
// has no persisted identity.
//
// Design decision: We group the three sub-analyses into nested structs
// rather than flattening everything because each sub-analysis is produced by
// a separate analyzer and consumed as a unit by report writers.
type AnalysisReport struct {
	// OverallScore is the composite compliance score in [0, 100].
	// Scoring is deductive: we start at 100 and subtract a weighted penalty
	// per violated rule, so every point lost traces to exactly one issue.
	OverallScore float64 `json:"overall_score"`

	// Readability holds the reading-grade analysis.
	Readability ReadabilityReport `json:"readability"`

	// Jargon holds the jargon-density analysis.
	Jargon JargonReport `json:"jargon"`

	// Tone holds the passive-voice analysis.
	Tone ToneReport `json:"tone"`

	// Issues lists every violated rule, ordered grade violations first,
	// then jargon, then tone.
	Issues []Issue `json:"issues"`

	// PassesCompliance is true iff OverallScore meets the compliance
	// threshold and no hard-fail issue is present. A high composite score
	// must not mask a single disqualifying issue.
	PassesCompliance bool `json:"passes_compliance"`
}

// ReadabilityReport holds the Flesch-Kincaid style grade analysis.
type ReadabilityReport struct {
	// GradeLevel is the estimated US reading grade level.
	// Degenerate input (no sentences or no words) yields 0.
	GradeLevel float64 `json:"grade_level"`

	// SentenceCount is the number of sentences found.
	SentenceCount int `json:"sentence_count"`

	// WordCount is the number of words found.
	WordCount int `json:"word_count"`

	// SyllableCount is the total syllables across all words.
	SyllableCount int `json:"syllable_count"`
}

// JargonReport holds the jargon-density analysis.
type JargonReport struct {
	// JargonCount is the total number of jargon occurrences.
	// Each occurrence counts, so repeated terms count repeatedly.
	JargonCount int `json:"jargon_count"`

	// MatchedTerms records each matched term once per occurrence,
	// preserving order of appearance in the text.
	MatchedTerms []string `json:"matched_terms"`
}

// ToneReport holds the passive-voice analysis.
type ToneReport struct {
	// PassiveVoiceCount is the number of sentences flagged as passive.
	PassiveVoiceCount int `json:"passive_voice_count"`

	// FlaggedSentences contains every flagged sentence verbatim,
	// in document order.
	FlaggedSentences []string `json:"flagged_sentences"`
}

// Issue is a single human-readable rule violation.
type Issue struct {
	// Kind identifies the violated rule.
	Kind IssueKind `json:"kind"`

	// Severity is the weight of this issue.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Message describes the violation in plain words.
	Message string `json:"message"`
}

// NewIssue creates an Issue for the given kind, resolving severity from the
// central issue mapping.
func NewIssue(kind IssueKind, message string) Issue {
	sev := GetSeverity(kind)
	return Issue{
		Kind:         kind,
		Severity:     sev,
		SeverityText: sev.String(),
		Message:      message,
	}
}

// HasHardFail reports whether any issue disqualifies the text outright.
func (r *AnalysisReport) HasHardFail() bool {
	for _, issue := range r.Issues {
		if issue.Kind.IsHardFail() {
			return true
		}
	}
	return false
}

// TopIssues returns up to n issues ordered by severity, most severe first.
// Ties keep the original report order (grade, then jargon, then tone), which
// matches how consumers expect a short preview to read.
func (r *AnalysisReport) TopIssues(n int) []Issue {
	issues := make([]Issue, len(r.Issues))
	copy(issues, r.Issues)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity > issues[j].Severity
	})

	if n >= 0 && len(issues) > n {
		issues = issues[:n]
	}
	return issues
}

// IssueMessages returns the plain message of every issue in report order.
func (r *AnalysisReport) IssueMessages() []string {
	messages := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

// ValidationResult is a pass/fail decision derived from an AnalysisReport
// plus the configured compliance threshold.
type ValidationResult struct {
	// Score is the composite compliance score of the validated text.
	Score float64 `json:"score"`

	// NeedsFixing is true when the text fails compliance and a repair
	// pass should run.
	NeedsFixing bool `json:"needs_fixing"`

	// Detail is the full analysis behind the decision.
	Detail *AnalysisReport `json:"detail"`
}

// FixResult is the outcome of a repair rewrite. It is produced only when a
// repair pass actually executes.
type FixResult struct {
	// Rewritten is the repaired text.
	Rewritten string `json:"rewritten"`

	// CostUSD is the estimated cost of the repair call, derived from token
	// counts and the configured per-token rate table.
	CostUSD float64 `json:"cost_usd"`

	// ModelCalls is the number of generation calls the repair performed.
	ModelCalls int `json:"model_calls"`
}

// ComplianceOutcome is the terminal artifact of the full two-stage pipeline.
// The caller owns it once returned.
type ComplianceOutcome struct {
	// FinalOutput is the text the pipeline settled on.
	FinalOutput string `json:"final_output"`

	// StagesUsed is 1 when the first generation already passed, 2 when a
	// repair pass ran.
	StagesUsed int `json:"stages_used"`

	// WasFixed is true when a repair pass ran.
	WasFixed bool `json:"was_fixed"`

	// ComplianceScore is the composite score of FinalOutput.
	ComplianceScore float64 `json:"compliance_score"`
}
