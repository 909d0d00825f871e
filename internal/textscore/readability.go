package textscore

import "github.com/prompt508/prompt508/internal/model"

// Flesch-Kincaid grade level coefficients. These are the published constants
// of the formula, not tunables: changing them would change what "grade
// level" means.
const (
	fkSentenceWeight = 0.39
	fkSyllableWeight = 11.8
	fkBase           = 15.59
)

// ReadabilityAnalyzer computes a Flesch-Kincaid style reading grade level
// from sentence, word, and syllable counts.
type ReadabilityAnalyzer struct{}

// NewReadabilityAnalyzer creates a ReadabilityAnalyzer.
func NewReadabilityAnalyzer() *ReadabilityAnalyzer {
	return &ReadabilityAnalyzer{}
}

// Name returns the analyzer name.
func (a *ReadabilityAnalyzer) Name() string {
	return "readability"
}

// Analyze computes the grade level and counts for the text.
//
// Degenerate input (zero sentences or zero words) yields grade level 0 and
// leaves the counts at whatever was measured; the scorer turns that state
// into a single "unparseable" issue. This path recovers locally and never
// fails: scoring must not raise on bad input.
func (a *ReadabilityAnalyzer) Analyze(text string, report *model.AnalysisReport) {
	sentences := SplitSentences(text)
	words := SplitWords(text)

	syllables := 0
	for _, word := range words {
		syllables += CountSyllables(word)
	}

	report.Readability = model.ReadabilityReport{
		SentenceCount: len(sentences),
		WordCount:     len(words),
		SyllableCount: syllables,
	}

	if len(sentences) == 0 || len(words) == 0 {
		report.Readability.GradeLevel = 0
		return
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))

	grade := fkSentenceWeight*wordsPerSentence + fkSyllableWeight*syllablesPerWord - fkBase
	if grade < 0 {
		grade = 0
	}

	report.Readability.GradeLevel = grade
}
