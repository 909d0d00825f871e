package advisor

import (
	"context"
	"log/slog"

	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/llm"
	"github.com/prompt508/prompt508/internal/model"
	"github.com/prompt508/prompt508/internal/textscore"
)

// Advisor drives the two-stage compliance pipeline. It scores text through
// the engine and calls an injected generation capability for both the
// original generation and the repair rewrite.
//
// An Advisor holds only read-only state after construction, so a single
// instance is safe for unsynchronized concurrent use.
type Advisor struct {
	// cfg holds thresholds, allowances, and cost rates. Read-only.
	cfg *config.Config

	// engine is the stateless scoring engine.
	engine *textscore.Engine

	// logger is used for structured logging during pipeline execution.
	logger *slog.Logger

	// generator is the default generation capability for FixOutput.
	// EnsureCompliance always uses the capability the caller passes in.
	generator llm.Generator
}

// Option configures an Advisor.
// This follows the functional options pattern for clean API design.
type Option func(*Advisor)

// WithLogger sets a custom logger for the advisor.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Advisor) {
		a.logger = logger
	}
}

// WithGenerator sets the default generation capability used by FixOutput
// when callers invoke it standalone.
func WithGenerator(g llm.Generator) Option {
	return func(a *Advisor) {
		a.generator = g
	}
}

// New creates an Advisor with the given configuration.
func New(cfg *config.Config, opts ...Option) *Advisor {
	a := &Advisor{
		cfg:    cfg,
		engine: textscore.NewEngine(cfg),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Analyze scores the text. It is a pure pass-through to the scoring engine
// with no side effects.
func (a *Advisor) Analyze(text string) *model.AnalysisReport {
	return a.engine.Analyze(text)
}

// ValidateOutput scores the text and decides whether it needs a repair
// pass (Stage2_Validate, exposed standalone).
func (a *Advisor) ValidateOutput(text string) model.ValidationResult {
	report := a.engine.Analyze(text)
	return model.ValidationResult{
		Score:       report.OverallScore,
		NeedsFixing: !report.PassesCompliance,
		Detail:      report,
	}
}

// FixOutput runs a single repair rewrite of the text (Stage2_Fix, exposed
// standalone). When issues is nil the text is analyzed first to derive
// them. Requires a generation capability configured via WithGenerator.
func (a *Advisor) FixOutput(ctx context.Context, text string, issues []model.Issue) (model.FixResult, error) {
	if a.generator == nil {
		return model.FixResult{}, ErrNoGenerator
	}
	if issues == nil {
		issues = a.engine.Analyze(text).Issues
	}
	return a.fix(ctx, a.generator, text, issues)
}

// fix performs the repair generation call and builds the FixResult.
func (a *Advisor) fix(ctx context.Context, gen llm.Generator, text string, issues []model.Issue) (model.FixResult, error) {
	prompt := buildRepairPrompt(text, issues)

	a.logger.Debug("executing repair rewrite",
		"stage", StageFix.String(),
		"issues", len(issues),
	)

	rewritten, err := gen.Generate(ctx, prompt)
	if err != nil {
		return model.FixResult{}, &GenerationError{Stage: StageFix, Err: err}
	}

	return model.FixResult{
		Rewritten:  rewritten,
		CostUSD:    a.estimateCost(prompt, rewritten),
		ModelCalls: 1,
	}, nil
}

// estimateCost approximates the USD cost of one generation call from the
// prompt and completion lengths. Token counts use the configured
// characters-per-token ratio; exact tokenization belongs to the provider.
func (a *Advisor) estimateCost(prompt, completion string) float64 {
	inputTokens := estimateTokens(prompt, a.cfg.CharsPerToken)
	outputTokens := estimateTokens(completion, a.cfg.CharsPerToken)
	return float64(inputTokens)*a.cfg.InputCostPerToken + float64(outputTokens)*a.cfg.OutputCostPerToken
}

// estimateTokens approximates the token count of a text.
func estimateTokens(text string, charsPerToken int) int {
	if len(text) == 0 {
		return 0
	}
	tokens := len(text) / charsPerToken
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}

// EnsureCompliance runs the full pipeline end to end: augment the prompt,
// generate, validate, and repair once if needed.
//
// The generation capability is supplied per call, which keeps the advisor
// decoupled from any specific provider. On generation failure the pipeline
// aborts with a *GenerationError identifying the stage; no partial outcome
// is returned.
//
// When the repair pass runs, its output is final even if it still falls
// short of the threshold: there is no retry loop, and the outcome's
// ComplianceScore tells the caller exactly where the text landed.
func (a *Advisor) EnsureCompliance(ctx context.Context, prompt string, gen llm.Generator) (model.ComplianceOutcome, error) {
	// Stage1_Augment: always prefix generation with the authoring rules
	enhanced := a.EnhancePromptFor508(prompt)

	a.logger.Info("executing generation",
		"stage", StageGenerate.String(),
		"promptChars", len(enhanced),
	)

	// Stage1_Generate: fail fast on collaborator error, no retry here
	output, err := gen.Generate(ctx, enhanced)
	if err != nil {
		a.logger.Error("generation failed",
			"stage", StageGenerate.String(),
			"error", err,
		)
		return model.ComplianceOutcome{}, &GenerationError{Stage: StageGenerate, Err: err}
	}

	// Stage2_Validate
	validation := a.ValidateOutput(output)

	a.logger.Info("validated output",
		"score", validation.Score,
		"needsFixing", validation.NeedsFixing,
	)

	if !validation.NeedsFixing {
		return model.ComplianceOutcome{
			FinalOutput:     output,
			StagesUsed:      1,
			WasFixed:        false,
			ComplianceScore: validation.Score,
		}, nil
	}

	// Stage2_Fix: exactly one repair attempt
	fixed, err := a.fix(ctx, gen, output, validation.Detail.Issues)
	if err != nil {
		a.logger.Error("repair failed",
			"stage", StageFix.String(),
			"error", err,
		)
		return model.ComplianceOutcome{}, err
	}

	rescored := a.engine.Analyze(fixed.Rewritten)

	a.logger.Info("repair completed",
		"score", rescored.OverallScore,
		"costUSD", fixed.CostUSD,
	)

	return model.ComplianceOutcome{
		FinalOutput:     fixed.Rewritten,
		StagesUsed:      2,
		WasFixed:        true,
		ComplianceScore: rescored.OverallScore,
	}, nil
}
