package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages. Using errors.New() here rather than fmt.Errorf() because we
// don't need to include dynamic values in these messages.
var (
	// ErrInvalidThreshold is returned when the compliance threshold falls
	// outside the score range. Scores are always clamped to [0, 100], so a
	// threshold outside that range would pass everything or nothing.
	ErrInvalidThreshold = errors.New("invalid compliance threshold: must be between 0 and 100")

	// ErrInvalidGradeLevel is returned when a grade target is non-positive
	// or the hard ceiling sits below the target. The ceiling must be at or
	// above the target or the soft rule could never fire.
	ErrInvalidGradeLevel = errors.New("invalid grade levels: target and ceiling must be positive, ceiling at or above target")

	// ErrInvalidAllowance is returned when a jargon or passive-voice
	// allowance is negative. Allowances are occurrence counts; use 0 to
	// deduct from the first occurrence.
	ErrInvalidAllowance = errors.New("invalid allowance: must be non-negative")

	// ErrInvalidPenalty is returned when a scoring penalty is negative.
	// Negative penalties would let violations raise the score above 100.
	ErrInvalidPenalty = errors.New("invalid penalty: must be non-negative")

	// ErrMissingLexicon is returned when the jargon lexicon is nil.
	// An empty lexicon is a deliberate user choice; a nil one is a bug.
	ErrMissingLexicon = errors.New("jargon lexicon is missing")

	// ErrInvalidCostRate is returned when a cost-estimation constant is
	// unusable: a non-positive characters-per-token ratio or a negative
	// per-token rate.
	ErrInvalidCostRate = errors.New("invalid cost rate: chars-per-token must be positive, per-token rates non-negative")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent analyses run at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
