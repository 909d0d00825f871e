package model

// Severity represents how strongly an accessibility issue weighs against
// compliance. This allows ordering issues so the most important ones surface
// first in previews and repair prompts.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates informational notes with no score impact.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues with limited impact.
	// Examples: a passive-voice sentence or two beyond the allowance.
	SeverityLow

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: jargon terms beyond the allowance.
	SeverityMedium

	// SeverityHigh indicates serious issues that significantly hurt
	// readability. Examples: reading grade level above the target.
	SeverityHigh

	// SeverityCritical indicates disqualifying issues. Text carrying one of
	// these never passes compliance regardless of its composite score.
	// Examples: grade level above the hard ceiling, unparseable input.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// IssueKind identifies a category of accessibility rule violation.
type IssueKind string

// Issue kinds produced by the scoring engine.
const (
	// IssueUnparseable is reported when the input has no sentences or words.
	// Unscorable text can never be certified compliant.
	IssueUnparseable IssueKind = "unparseable_text"

	// IssueGradeCeiling is reported when the reading grade level exceeds the
	// hard ceiling. This is a disqualifying issue: a high composite score
	// must not mask it.
	IssueGradeCeiling IssueKind = "grade_above_ceiling"

	// IssueGradeTarget is reported when the reading grade level exceeds the
	// plain-language target but stays under the hard ceiling.
	IssueGradeTarget IssueKind = "grade_above_target"

	// IssueJargon is reported when jargon terms exceed the allowance.
	IssueJargon IssueKind = "jargon_overuse"

	// IssuePassiveVoice is reported when passive-voice sentences exceed the
	// allowance.
	IssuePassiveVoice IssueKind = "passive_voice"
)

// IssueInfo contains metadata about an issue kind including severity, impact
// description, and the rewrite guidance embedded into repair prompts.
type IssueInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// issueInfoMapping maps issue kinds to their metadata.
// This centralized mapping ensures consistent assessment across the
// application and feeds both report output and repair-prompt construction.
//
// Design decision: We use a map rather than embedding severity in each issue
// because:
//  1. It allows tuning assessments without modifying type definitions
//  2. It provides a single source of truth for issue weighting
//  3. It makes it easy to generate rule documentation
var issueInfoMapping = map[IssueKind]IssueInfo{
	IssueUnparseable: {
		Severity:       SeverityCritical,
		Impact:         "The text contains no parseable sentences or words, so accessibility cannot be assessed.",
		Recommendation: "Provide plain prose with complete sentences.",
	},
	IssueGradeCeiling: {
		Severity:       SeverityCritical,
		Impact:         "The reading grade level is far above what most readers, including people using assistive technology, can comfortably follow.",
		Recommendation: "Break long sentences apart and replace multi-syllable words with short, common ones.",
	},
	IssueGradeTarget: {
		Severity:       SeverityHigh,
		Impact:         "The reading grade level exceeds the plain-language target, making the text harder to follow than it needs to be.",
		Recommendation: "Shorten sentences and prefer everyday words over formal vocabulary.",
	},
	IssueJargon: {
		Severity:       SeverityMedium,
		Impact:         "Specialized jargon excludes readers who are not domain experts.",
		Recommendation: "Replace jargon with plain equivalents, or define each term the first time it appears.",
	},
	IssuePassiveVoice: {
		Severity:       SeverityLow,
		Impact:         "Passive constructions hide who does what, which makes instructions ambiguous.",
		Recommendation: "Rewrite in active voice: name the actor, then the action.",
	},
}

// GetSeverity returns the severity level for an issue kind.
// Returns SeverityInfo if the kind is not in the mapping.
func GetSeverity(kind IssueKind) Severity {
	if info, ok := issueInfoMapping[kind]; ok {
		return info.Severity
	}
	return SeverityInfo
}

// GetIssueInfo returns the full metadata for an issue kind.
// Returns a default IssueInfo with SeverityInfo if the kind is unknown.
func GetIssueInfo(kind IssueKind) IssueInfo {
	if info, ok := issueInfoMapping[kind]; ok {
		return info
	}
	return IssueInfo{
		Severity:       SeverityInfo,
		Impact:         "Unknown issue kind. Review manually.",
		Recommendation: "Investigate the issue and assess impact.",
	}
}

// IsHardFail reports whether an issue kind disqualifies the text outright.
// A text carrying any hard-fail issue never passes compliance, regardless of
// its composite score.
func (k IssueKind) IsHardFail() bool {
	return GetSeverity(k) == SeverityCritical
}
