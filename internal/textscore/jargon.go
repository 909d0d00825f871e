package textscore

import (
	"regexp"
	"sort"

	"github.com/prompt508/prompt508/internal/model"
)

// JargonAnalyzer matches text against a lexicon of jargon and acronym terms.
// Matching is case-insensitive and word-boundary aware, and tolerates a
// trailing plural "s" so the lexicon can list base forms ("paradigm"
// matches "paradigms").
type JargonAnalyzer struct {
	// patterns pairs each lexicon term with its compiled matcher.
	// Compiled once at construction; read-only afterwards, so a single
	// analyzer is safe for concurrent use.
	patterns []jargonPattern
}

// jargonPattern is one lexicon term and its compiled regular expression.
type jargonPattern struct {
	term string
	re   *regexp.Regexp
}

// NewJargonAnalyzer creates a JargonAnalyzer for the given lexicon.
// Empty terms and terms that fail to compile are skipped.
func NewJargonAnalyzer(terms []string) *JargonAnalyzer {
	patterns := make([]jargonPattern, 0, len(terms))

	for _, term := range terms {
		if term == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `s?\b`)
		if err != nil {
			continue
		}
		patterns = append(patterns, jargonPattern{term: term, re: re})
	}

	return &JargonAnalyzer{patterns: patterns}
}

// Name returns the analyzer name.
func (a *JargonAnalyzer) Name() string {
	return "jargon"
}

// Analyze finds every lexicon occurrence in the text. Each occurrence
// increments the count and records the lexicon term once, preserving order
// of appearance in the document.
func (a *JargonAnalyzer) Analyze(text string, report *model.AnalysisReport) {
	type occurrence struct {
		position int
		term     string
	}

	occurrences := make([]occurrence, 0)
	for _, p := range a.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			occurrences = append(occurrences, occurrence{position: loc[0], term: p.term})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].position < occurrences[j].position
	})

	matched := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		matched = append(matched, occ.term)
	}

	report.Jargon = model.JargonReport{
		JargonCount:  len(matched),
		MatchedTerms: matched,
	}
}
