package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/llm"
	"github.com/prompt508/prompt508/internal/model"
)

// compliantText scores well above the default threshold.
const compliantText = "You can train a model. The model learns from examples."

// failingText carries passive voice, jargon, and a disqualifying grade level.
const failingText = "The data was analyzed by the algorithm utilizing heuristic paradigms."

func newTestAdvisor(opts ...Option) *Advisor {
	return New(config.NewConfig(), opts...)
}

// TestAnalyze tests the pure pass-through to the scoring engine.
func TestAnalyze(t *testing.T) {
	t.Parallel()

	a := newTestAdvisor()
	report := a.Analyze(compliantText)

	if !report.PassesCompliance {
		t.Errorf("expected compliant text to pass; score %v", report.OverallScore)
	}
}

// TestEnhancePromptFor508 tests Stage 1 prompt augmentation.
func TestEnhancePromptFor508(t *testing.T) {
	t.Parallel()

	a := newTestAdvisor()
	prompt := "Explain how machine learning works"
	enhanced := a.EnhancePromptFor508(prompt)

	if !strings.HasPrefix(enhanced, prompt) {
		t.Error("enhanced prompt must keep the original prompt")
	}
	if len(enhanced) <= len(prompt) {
		t.Error("enhanced prompt must add instructions")
	}
	for _, want := range []string{"8th-grade", "active voice", "DO write", "DON'T write"} {
		if !strings.Contains(enhanced, want) {
			t.Errorf("enhanced prompt missing %q", want)
		}
	}
}

// TestValidateOutput tests the standalone validation operation.
func TestValidateOutput(t *testing.T) {
	t.Parallel()

	a := newTestAdvisor()

	t.Run("compliant text", func(t *testing.T) {
		t.Parallel()

		v := a.ValidateOutput(compliantText)
		if v.NeedsFixing {
			t.Errorf("compliant text should not need fixing; score %v, issues %v", v.Score, v.Detail.Issues)
		}
		if v.Detail == nil {
			t.Fatal("validation must carry the full analysis")
		}
	})

	t.Run("failing text", func(t *testing.T) {
		t.Parallel()

		v := a.ValidateOutput(failingText)
		if !v.NeedsFixing {
			t.Errorf("failing text should need fixing; score %v", v.Score)
		}
		if v.Score != v.Detail.OverallScore {
			t.Error("validation score must match the detail report")
		}
	})
}

// TestEnsureComplianceStage1Sufficient tests that a passing first
// generation ends the pipeline with no second call.
func TestEnsureComplianceStage1Sufficient(t *testing.T) {
	t.Parallel()

	mock := llm.NewMock(compliantText)
	a := newTestAdvisor()

	outcome, err := a.EnsureCompliance(context.Background(), "Explain training", mock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.StagesUsed != 1 {
		t.Errorf("stages = %d, want 1", outcome.StagesUsed)
	}
	if outcome.WasFixed {
		t.Error("wasFixed should be false")
	}
	if outcome.FinalOutput != compliantText {
		t.Error("final output must be the stage 1 text")
	}
	if mock.Calls() != 1 {
		t.Errorf("generation calls = %d, want exactly 1", mock.Calls())
	}
}

// TestEnsureComplianceRepairs tests that failing output triggers exactly
// one repair call.
func TestEnsureComplianceRepairs(t *testing.T) {
	t.Parallel()

	mock := llm.NewMock(failingText, compliantText)
	a := newTestAdvisor()

	outcome, err := a.EnsureCompliance(context.Background(), "Explain the analysis", mock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.StagesUsed != 2 {
		t.Errorf("stages = %d, want 2", outcome.StagesUsed)
	}
	if !outcome.WasFixed {
		t.Error("wasFixed should be true")
	}
	if outcome.FinalOutput != compliantText {
		t.Errorf("final output = %q, want the rewritten text", outcome.FinalOutput)
	}
	if mock.Calls() != 2 {
		t.Errorf("generation calls = %d, want exactly 2 (one generate, one repair)", mock.Calls())
	}

	// The repair prompt must embed the failing output and its issues
	prompts := mock.Prompts()
	if !strings.Contains(prompts[1], failingText) {
		t.Error("repair prompt must embed the original output")
	}
	if !strings.Contains(prompts[1], "passive-voice") && !strings.Contains(prompts[1], "grade level") {
		t.Error("repair prompt must list the detected issues")
	}
}

// TestEnsureComplianceStubbornOutput tests that a rewrite which still
// fails is returned anyway: one repair attempt, never a loop.
func TestEnsureComplianceStubbornOutput(t *testing.T) {
	t.Parallel()

	// The generator returns the same flagged sentence for every call.
	mock := llm.NewMock(failingText)
	a := newTestAdvisor()

	outcome, err := a.EnsureCompliance(context.Background(), "Explain the analysis", mock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !outcome.WasFixed || outcome.StagesUsed != 2 {
		t.Errorf("wasFixed = %v, stages = %d; want true, 2", outcome.WasFixed, outcome.StagesUsed)
	}
	if outcome.FinalOutput != failingText {
		t.Error("stubborn rewrite is still the final output")
	}
	if outcome.ComplianceScore >= config.DefaultComplianceThreshold {
		t.Errorf("score = %v, expected the outcome to report the miss honestly", outcome.ComplianceScore)
	}
	if mock.Calls() != 2 {
		t.Errorf("generation calls = %d, want 2 (no retry loop)", mock.Calls())
	}
}

// TestEnsureComplianceGenerationFailure tests stage-tagged failure
// propagation with no partial outcome.
func TestEnsureComplianceGenerationFailure(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("provider down")

	t.Run("stage 1 failure", func(t *testing.T) {
		t.Parallel()

		mock := llm.NewMock(compliantText).FailWith(providerErr, 0)
		a := newTestAdvisor()

		outcome, err := a.EnsureCompliance(context.Background(), "p", mock)

		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected *GenerationError, got %v", err)
		}
		if genErr.Stage != StageGenerate {
			t.Errorf("stage = %s, want %s", genErr.Stage, StageGenerate)
		}
		if !errors.Is(err, providerErr) {
			t.Error("collaborator error must be wrapped, not swallowed")
		}
		if outcome != (model.ComplianceOutcome{}) {
			t.Error("no partial outcome on failure")
		}
	})

	t.Run("stage 2 failure", func(t *testing.T) {
		t.Parallel()

		mock := llm.NewMock(failingText).FailWith(providerErr, 1)
		a := newTestAdvisor()

		_, err := a.EnsureCompliance(context.Background(), "p", mock)

		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected *GenerationError, got %v", err)
		}
		if genErr.Stage != StageFix {
			t.Errorf("stage = %s, want %s", genErr.Stage, StageFix)
		}
	})
}

// TestFixOutput tests the standalone repair operation.
func TestFixOutput(t *testing.T) {
	t.Parallel()

	t.Run("requires a generator", func(t *testing.T) {
		t.Parallel()

		a := newTestAdvisor()
		if _, err := a.FixOutput(context.Background(), failingText, nil); !errors.Is(err, ErrNoGenerator) {
			t.Errorf("expected ErrNoGenerator, got %v", err)
		}
	})

	t.Run("derives issues when nil", func(t *testing.T) {
		t.Parallel()

		mock := llm.NewMock(compliantText)
		a := newTestAdvisor(WithGenerator(mock))

		fixed, err := a.FixOutput(context.Background(), failingText, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fixed.Rewritten != compliantText {
			t.Errorf("rewritten = %q", fixed.Rewritten)
		}
		if fixed.ModelCalls != 1 {
			t.Errorf("model calls = %d, want 1", fixed.ModelCalls)
		}
		if fixed.CostUSD <= 0 {
			t.Errorf("cost = %v, want positive", fixed.CostUSD)
		}
	})

	t.Run("cost grows with text length", func(t *testing.T) {
		t.Parallel()

		short := llm.NewMock("Short answer.")
		long := llm.NewMock(strings.Repeat("A much longer answer. ", 200))

		a1 := newTestAdvisor(WithGenerator(short))
		a2 := newTestAdvisor(WithGenerator(long))

		f1, err := a1.FixOutput(context.Background(), failingText, nil)
		if err != nil {
			t.Fatal(err)
		}
		f2, err := a2.FixOutput(context.Background(), failingText, nil)
		if err != nil {
			t.Fatal(err)
		}

		if f2.CostUSD <= f1.CostUSD {
			t.Errorf("longer completion should cost more: %v vs %v", f2.CostUSD, f1.CostUSD)
		}
	})
}

// TestBatchAnalyze tests ordered concurrent analysis.
func TestBatchAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(newTestAdvisor(), WithConcurrency(4))

		texts := []string{compliantText, failingText, compliantText}
		reports, err := bp.AnalyzeBatch(context.Background(), texts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(reports) != 3 {
			t.Fatalf("reports = %d, want 3", len(reports))
		}
		if !reports[0].PassesCompliance || reports[1].PassesCompliance || !reports[2].PassesCompliance {
			t.Error("reports are not in input order")
		}
	})

	t.Run("respects cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := NewBatchProcessor(newTestAdvisor())
		texts := make([]string, 100)
		for i := range texts {
			texts[i] = compliantText
		}

		if _, err := bp.AnalyzeBatch(ctx, texts); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("callback receives every index", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(newTestAdvisor(), WithConcurrency(2))
		texts := []string{compliantText, failingText}

		seen := make(chan int, len(texts))
		err := bp.AnalyzeBatchWithCallback(context.Background(), texts, func(_ *model.AnalysisReport, index int) {
			seen <- index
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(seen)

		got := map[int]bool{}
		for idx := range seen {
			got[idx] = true
		}
		if !got[0] || !got[1] {
			t.Errorf("callback indexes = %v, want 0 and 1", got)
		}
	})
}
