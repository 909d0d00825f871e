package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The scoring defaults follow Section 508 plain-language guidance where one
// exists; the rest are calibration constants that can be tuned via the
// configuration file without touching scoring control flow.
const (
	// DefaultComplianceThreshold is the minimum composite score a text needs
	// to pass. 70 leaves room for a couple of soft violations while still
	// rejecting text with a serious readability problem.
	DefaultComplianceThreshold = 70.0

	// DefaultTargetGradeLevel is the reading grade level plain-language
	// guidance asks for. Grade 8 is the widely used ceiling for general
	// audiences; every grade above it costs points.
	DefaultTargetGradeLevel = 8.0

	// DefaultHardGradeCeiling is the disqualifying grade level. Text above
	// grade 12 fails compliance outright no matter how well it scores on
	// jargon and tone, so a high composite score cannot mask it.
	DefaultHardGradeCeiling = 12.0

	// DefaultJargonAllowance is the number of jargon occurrences tolerated
	// before deductions start. Technical topics legitimately need a term or
	// two; beyond that the text should define or replace them.
	DefaultJargonAllowance = 2

	// DefaultPassiveAllowance is the number of passive-voice sentences
	// tolerated before deductions start. One passive sentence is often
	// idiomatic; systematic passive voice is not.
	DefaultPassiveAllowance = 1

	// DefaultGradePenalty is the deduction per grade unit above the target.
	DefaultGradePenalty = 5.0

	// DefaultJargonPenalty is the deduction per jargon occurrence beyond
	// the allowance.
	DefaultJargonPenalty = 3.0

	// DefaultPassivePenalty is the deduction per passive sentence beyond
	// the allowance.
	DefaultPassivePenalty = 5.0

	// DefaultModel is the generation model used for repair rewrites.
	DefaultModel = "gpt-4o-mini"

	// DefaultCharsPerToken approximates tokenizer behavior for cost
	// estimation. Four characters per token is the usual rule of thumb for
	// English prose; exact tokenization belongs to the provider, so this is
	// deliberately a calibration constant rather than a tokenizer.
	DefaultCharsPerToken = 4

	// DefaultInputCostPerToken is the per-token USD rate for prompt tokens.
	// Matches gpt-4o-mini pricing ($0.15 per million tokens).
	DefaultInputCostPerToken = 0.15 / 1_000_000

	// DefaultOutputCostPerToken is the per-token USD rate for completion
	// tokens. Matches gpt-4o-mini pricing ($0.60 per million tokens).
	DefaultOutputCostPerToken = 0.60 / 1_000_000

	// DefaultBatchSize is the number of concurrent analyses when processing
	// multiple inputs. Scoring is CPU-cheap, so this mainly bounds memory.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "prompt508"
)

// Config holds all configuration options for prompt508.
// This struct is populated from defaults, the optional configuration file,
// and CLI flags, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScoringConfig, CostConfig) for simplicity. The number of options is
// manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// ComplianceThreshold is the minimum composite score to pass.
	ComplianceThreshold float64

	// TargetGradeLevel is the reading grade level deductions start above.
	TargetGradeLevel float64

	// HardGradeCeiling is the grade level above which text fails outright.
	HardGradeCeiling float64

	// JargonAllowance is the number of jargon occurrences tolerated before
	// deductions start.
	JargonAllowance int

	// PassiveAllowance is the number of passive sentences tolerated before
	// deductions start.
	PassiveAllowance int

	// GradePenalty is the deduction per grade unit above the target.
	GradePenalty float64

	// JargonPenalty is the deduction per jargon occurrence beyond the
	// allowance.
	JargonPenalty float64

	// PassivePenalty is the deduction per passive sentence beyond the
	// allowance.
	PassivePenalty float64

	// JargonTerms is the lexicon of jargon and acronym terms to match.
	// Defaults to DefaultJargonTerms; the configuration file can extend or
	// replace it. Read-only after startup.
	JargonTerms []string

	// Model is the generation model name used for repair rewrites.
	Model string

	// CharsPerToken approximates the provider's tokenizer for cost
	// estimation.
	CharsPerToken int

	// InputCostPerToken is the per-token USD rate for prompt tokens.
	InputCostPerToken float64

	// OutputCostPerToken is the per-token USD rate for completion tokens.
	OutputCostPerToken float64

	// BatchSize is the number of concurrent analyses for multiple inputs.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// HTMLInput indicates the inputs are HTML documents whose text should
	// be extracted before scoring.
	HTMLInput bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .prompt508 in the current directory
	// and then in the XDG config directory.
	ConfigFilePath string

	// Targets is the list of input files to analyze. Empty means stdin.
	Targets []string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because nearly every default is non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ComplianceThreshold: DefaultComplianceThreshold,
		TargetGradeLevel:    DefaultTargetGradeLevel,
		HardGradeCeiling:    DefaultHardGradeCeiling,
		JargonAllowance:     DefaultJargonAllowance,
		PassiveAllowance:    DefaultPassiveAllowance,
		GradePenalty:        DefaultGradePenalty,
		JargonPenalty:       DefaultJargonPenalty,
		PassivePenalty:      DefaultPassivePenalty,
		JargonTerms:         DefaultJargonTerms(),
		Model:               DefaultModel,
		CharsPerToken:       DefaultCharsPerToken,
		InputCostPerToken:   DefaultInputCostPerToken,
		OutputCostPerToken:  DefaultOutputCostPerToken,
		BatchSize:           DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for prompt508.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/prompt508
// On macOS: ~/Library/Application Support/prompt508
// On Windows: %APPDATA%\prompt508
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each point
// of use to fail fast and provide clear error messages upfront. This is
// called once after CLI parsing and file loading, before any scoring or
// generation begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Threshold must stay inside the score range
	if c.ComplianceThreshold < 0 || c.ComplianceThreshold > 100 {
		return ErrInvalidThreshold
	}

	// Grade targets must be positive and ordered: ceiling above target
	if c.TargetGradeLevel <= 0 || c.HardGradeCeiling <= 0 {
		return ErrInvalidGradeLevel
	}
	if c.HardGradeCeiling < c.TargetGradeLevel {
		return ErrInvalidGradeLevel
	}

	// Allowances are counts; negative makes no sense
	if c.JargonAllowance < 0 || c.PassiveAllowance < 0 {
		return ErrInvalidAllowance
	}

	// Penalties must be non-negative or scores could exceed 100
	if c.GradePenalty < 0 || c.JargonPenalty < 0 || c.PassivePenalty < 0 {
		return ErrInvalidPenalty
	}

	// The lexicon may be empty only if the user replaced it deliberately,
	// but a nil lexicon indicates a construction bug
	if c.JargonTerms == nil {
		return ErrMissingLexicon
	}

	// Cost estimation needs a positive character-to-token ratio
	if c.CharsPerToken <= 0 {
		return ErrInvalidCostRate
	}
	if c.InputCostPerToken < 0 || c.OutputCostPerToken < 0 {
		return ErrInvalidCostRate
	}

	// BatchSize must be positive; zero would mean no analysis runs
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
