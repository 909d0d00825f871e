package textscore

import (
	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/model"
)

// CheckAnalyzer defines the interface for individual text analyzers.
// Each analyzer focuses on one accessibility dimension and fills its part
// of the report.
//
// Design decision: We use an interface rather than concrete types because:
//  1. Allows for easy extension with new analyzers
//  2. Enables testing each dimension in isolation
//  3. Supports replacing a heuristic without touching the engine
//
// Analyzers are pure functions over text: no I/O, no error path, no
// retained state between calls.
type CheckAnalyzer interface {
	// Name returns the analyzer's name for logging and reporting.
	Name() string

	// Analyze inspects the text and records its findings on the report.
	Analyze(text string, report *model.AnalysisReport)
}

// Engine coordinates the analyzers and turns their findings into a scored
// AnalysisReport.
//
// Design decision: We use a coordinator pattern rather than free functions
// because the engine carries the read-only configuration (lexicon,
// thresholds, penalties) that analyzers and the scorer both need. The
// engine holds no mutable state, so a single instance is safe for
// unsynchronized concurrent use.
type Engine struct {
	// cfg holds the read-only scoring configuration.
	cfg *config.Config

	// analyzers is the ordered list of analyzers to run.
	analyzers []CheckAnalyzer
}

// NewEngine creates an Engine with all built-in analyzers registered.
func NewEngine(cfg *config.Config) *Engine {
	e := &Engine{
		cfg:       cfg,
		analyzers: make([]CheckAnalyzer, 0, 3),
	}

	e.Register(NewReadabilityAnalyzer())
	e.Register(NewJargonAnalyzer(cfg.JargonTerms))
	e.Register(NewPassiveVoiceAnalyzer())

	return e
}

// Register adds an analyzer to the engine.
func (e *Engine) Register(analyzer CheckAnalyzer) {
	e.analyzers = append(e.analyzers, analyzer)
}

// Analyze runs every analyzer over the text and applies the deduction rules
// to produce a complete, scored AnalysisReport.
//
// The report is produced fresh on every call and never retained by the
// engine; callers own it outright.
func (e *Engine) Analyze(text string) *model.AnalysisReport {
	report := &model.AnalysisReport{
		Jargon: model.JargonReport{MatchedTerms: []string{}},
		Tone:   model.ToneReport{FlaggedSentences: []string{}},
		Issues: []model.Issue{},
	}

	for _, analyzer := range e.analyzers {
		analyzer.Analyze(text, report)
	}

	applyScore(report, e.cfg)

	return report
}

// AnalyzerNames returns the names of all registered analyzers in run order.
func (e *Engine) AnalyzerNames() []string {
	names := make([]string, len(e.analyzers))
	for i, analyzer := range e.analyzers {
		names[i] = analyzer.Name()
	}
	return names
}
