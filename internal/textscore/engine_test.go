package textscore

import (
	"reflect"
	"strings"
	"testing"

	"github.com/prompt508/prompt508/internal/config"
	"github.com/prompt508/prompt508/internal/model"
)

func newTestEngine() *Engine {
	return NewEngine(config.NewConfig())
}

// TestScoreRange tests that every text scores inside [0, 100].
func TestScoreRange(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	texts := []string{
		"",
		"Short.",
		"You can train a model. The model learns from examples.",
		"The data was analyzed by the algorithm utilizing heuristic paradigms.",
		strings.Repeat("The multidimensional organizational infrastructure necessitates comprehensive reconceptualization of institutional methodologies. ", 10),
		strings.Repeat("leverage synergy paradigm heuristic algorithm bandwidth ", 20) + ".",
	}

	for _, text := range texts {
		report := engine.Analyze(text)
		if report.OverallScore < 0 || report.OverallScore > 100 {
			t.Errorf("score %v out of range for %q", report.OverallScore, text[:min(len(text), 40)])
		}
	}
}

// TestUnparseableText tests degenerate inputs.
func TestUnparseableText(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	for _, text := range []string{"", "   ", "\n\t", "... !!!"} {
		report := engine.Analyze(text)

		if report.Readability.GradeLevel != 0 {
			t.Errorf("grade level = %v for %q, want 0", report.Readability.GradeLevel, text)
		}
		if len(report.Issues) != 1 {
			t.Fatalf("issues = %d for %q, want exactly 1", len(report.Issues), text)
		}
		if report.Issues[0].Kind != model.IssueUnparseable {
			t.Errorf("issue kind = %s, want %s", report.Issues[0].Kind, model.IssueUnparseable)
		}
		if report.PassesCompliance {
			t.Errorf("unparseable text %q must not pass compliance", text)
		}
	}
}

// TestAnalyzeIdempotent tests that analysis is a pure function.
func TestAnalyzeIdempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	text := "The data was analyzed by the algorithm utilizing heuristic paradigms."

	first := engine.Analyze(text)
	second := engine.Analyze(text)

	if !reflect.DeepEqual(first, second) {
		t.Error("analyzing identical text twice must yield identical reports")
	}
}

// TestJargonMonotonicity tests that appending jargon never decreases the
// count and never increases the score.
func TestJargonMonotonicity(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()

	text := "The team will deliver the report on time."
	prev := engine.Analyze(text)

	for i := 0; i < 6; i++ {
		text += " We leverage synergy."
		cur := engine.Analyze(text)

		if cur.Jargon.JargonCount < prev.Jargon.JargonCount {
			t.Fatalf("jargon count decreased: %d -> %d", prev.Jargon.JargonCount, cur.Jargon.JargonCount)
		}
		if cur.OverallScore > prev.OverallScore {
			t.Fatalf("score increased after adding jargon: %v -> %v", prev.OverallScore, cur.OverallScore)
		}
		prev = cur
	}
}

// TestNonCompliantScenario tests the dense passive-and-jargon sentence.
func TestNonCompliantScenario(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	report := engine.Analyze("The data was analyzed by the algorithm utilizing heuristic paradigms.")

	if report.Tone.PassiveVoiceCount < 1 {
		t.Errorf("passive count = %d, want >= 1", report.Tone.PassiveVoiceCount)
	}
	if report.Jargon.JargonCount < 1 {
		t.Errorf("jargon count = %d, want >= 1", report.Jargon.JargonCount)
	}
	if report.OverallScore >= 100 {
		t.Errorf("score = %v, want < 100", report.OverallScore)
	}
}

// TestCompliantScenario tests short active plain-language text.
func TestCompliantScenario(t *testing.T) {
	t.Parallel()

	engine := newTestEngine()
	report := engine.Analyze("You can train a model. The model learns from examples.")

	if report.Tone.PassiveVoiceCount != 0 {
		t.Errorf("passive count = %d, want 0; flagged: %v",
			report.Tone.PassiveVoiceCount, report.Tone.FlaggedSentences)
	}
	if report.Readability.GradeLevel >= config.DefaultTargetGradeLevel {
		t.Errorf("grade level = %v, want below target", report.Readability.GradeLevel)
	}
	if !report.PassesCompliance {
		t.Errorf("expected compliant text; score %v, issues %v", report.OverallScore, report.Issues)
	}
}

// TestJargonDetection tests lexicon matching behavior.
func TestJargonDetection(t *testing.T) {
	t.Parallel()

	t.Run("case insensitive and plural tolerant", func(t *testing.T) {
		t.Parallel()

		analyzer := NewJargonAnalyzer([]string{"paradigm", "synergy"})
		report := &model.AnalysisReport{}
		analyzer.Analyze("Paradigms shift. SYNERGY wins. A paradigm holds.", report)

		if report.Jargon.JargonCount != 3 {
			t.Errorf("count = %d, want 3; matched %v", report.Jargon.JargonCount, report.Jargon.MatchedTerms)
		}
	})

	t.Run("order of appearance preserved", func(t *testing.T) {
		t.Parallel()

		analyzer := NewJargonAnalyzer([]string{"synergy", "paradigm"})
		report := &model.AnalysisReport{}
		analyzer.Analyze("A paradigm before synergy, then another paradigm.", report)

		want := []string{"paradigm", "synergy", "paradigm"}
		if !reflect.DeepEqual(report.Jargon.MatchedTerms, want) {
			t.Errorf("matched = %v, want %v", report.Jargon.MatchedTerms, want)
		}
	})

	t.Run("word boundaries respected", func(t *testing.T) {
		t.Parallel()

		analyzer := NewJargonAnalyzer([]string{"API"})
		report := &model.AnalysisReport{}
		analyzer.Analyze("Rapid prototyping is not an API concern.", report)

		// "Rapid" contains "api" but not on a word boundary
		if report.Jargon.JargonCount != 1 {
			t.Errorf("count = %d, want 1; matched %v", report.Jargon.JargonCount, report.Jargon.MatchedTerms)
		}
	})

	t.Run("multi-word terms match", func(t *testing.T) {
		t.Parallel()

		analyzer := NewJargonAnalyzer([]string{"neural network"})
		report := &model.AnalysisReport{}
		analyzer.Analyze("Neural networks classify images.", report)

		if report.Jargon.JargonCount != 1 {
			t.Errorf("count = %d, want 1", report.Jargon.JargonCount)
		}
	})
}

// TestPassiveVoiceDetection tests the structural heuristic.
func TestPassiveVoiceDetection(t *testing.T) {
	t.Parallel()

	analyzer := NewPassiveVoiceAnalyzer()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple passive", "The report was written by the team.", 1},
		{"perfect passive", "The keys have been lost.", 1},
		{"irregular participle", "The decision was made quickly.", 1},
		{"active voice", "The team wrote the report.", 0},
		{"being verb without participle", "The door is open. The total is ten.", 0},
		{"short ed word not participle", "The car was red.", 0},
		{"two passive sentences", "Mistakes were made. Lessons were learned.", 2},
		{"flagged once per sentence", "It was built and it was sold in a year.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := &model.AnalysisReport{}
			analyzer.Analyze(tt.text, report)

			if report.Tone.PassiveVoiceCount != tt.want {
				t.Errorf("passive count = %d, want %d; flagged %v",
					report.Tone.PassiveVoiceCount, tt.want, report.Tone.FlaggedSentences)
			}
		})
	}
}

// TestFlaggedSentencesVerbatim tests that flagged sentences come back
// verbatim in document order.
func TestFlaggedSentencesVerbatim(t *testing.T) {
	t.Parallel()

	analyzer := NewPassiveVoiceAnalyzer()
	report := &model.AnalysisReport{}
	analyzer.Analyze("First the walls were painted. Then we rested. Later the floor was cleaned.", report)

	want := []string{"First the walls were painted", "Later the floor was cleaned"}
	if !reflect.DeepEqual(report.Tone.FlaggedSentences, want) {
		t.Errorf("flagged = %v, want %v", report.Tone.FlaggedSentences, want)
	}
}

// TestHardCeilingMasking tests that a disqualifying grade level fails
// compliance even when the composite score stays above the threshold.
func TestHardCeilingMasking(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	// Soften the per-unit penalty so the composite score stays high while
	// the grade still exceeds the hard ceiling.
	cfg.GradePenalty = 0.5
	engine := NewEngine(cfg)

	text := "The multidimensional organizational infrastructure necessitates comprehensive reconceptualization of institutional methodologies across heterogeneous administrative hierarchies."
	report := engine.Analyze(text)

	if report.Readability.GradeLevel <= cfg.HardGradeCeiling {
		t.Skipf("text graded %.1f, below the ceiling; adjust fixture", report.Readability.GradeLevel)
	}
	if report.OverallScore < cfg.ComplianceThreshold {
		t.Fatalf("fixture score %v fell below threshold; masking not exercised", report.OverallScore)
	}
	if report.PassesCompliance {
		t.Error("high score must not mask a hard-fail grade issue")
	}
}

// TestIssueOrdering tests grade-then-jargon-then-tone report order.
func TestIssueOrdering(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.JargonAllowance = 0
	cfg.PassiveAllowance = 0
	engine := NewEngine(cfg)

	text := "The comprehensive organizational methodology documentation was subsequently distributed. " +
		"Institutional paradigm realignment was prioritized. " +
		"Considerable synergy was anticipated throughout implementation."
	report := engine.Analyze(text)

	if len(report.Issues) != 3 {
		t.Fatalf("issues = %d, want 3: %v", len(report.Issues), report.Issues)
	}

	wantOrder := []model.IssueKind{model.IssueGradeCeiling, model.IssueJargon, model.IssuePassiveVoice}
	for i, want := range wantOrder {
		if report.Issues[i].Kind != want {
			t.Errorf("issue[%d] = %s, want %s", i, report.Issues[i].Kind, want)
		}
	}
}
