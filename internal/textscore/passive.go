package textscore

import (
	"strings"

	"github.com/prompt508/prompt508/internal/model"
)

// beingVerbs are the auxiliary forms of "to be" that open a passive
// construction.
var beingVerbs = map[string]bool{
	"am":    true,
	"is":    true,
	"are":   true,
	"was":   true,
	"were":  true,
	"be":    true,
	"been":  true,
	"being": true,
}

// irregularParticiples are common past participles that the suffix rule
// misses. The list is deliberately short: this is a structural heuristic,
// not a part-of-speech tagger.
var irregularParticiples = map[string]bool{
	"done":  true,
	"made":  true,
	"found": true,
	"held":  true,
	"kept":  true,
	"sent":  true,
	"built": true,
	"seen":  true,
	"set":   true,
	"told":  true,
	"put":   true,
	"won":   true,
	"left":  true,
	"lost":  true,
	"sold":  true,
	"paid":  true,
	"said":  true,
	"run":   true,
	"begun": true,
	"sung":  true,
}

// PassiveVoiceAnalyzer flags sentences that contain a passive construction:
// a being-verb immediately followed by a past-participle-shaped word.
type PassiveVoiceAnalyzer struct{}

// NewPassiveVoiceAnalyzer creates a PassiveVoiceAnalyzer.
func NewPassiveVoiceAnalyzer() *PassiveVoiceAnalyzer {
	return &PassiveVoiceAnalyzer{}
}

// Name returns the analyzer name.
func (a *PassiveVoiceAnalyzer) Name() string {
	return "passive_voice"
}

// Analyze flags passive sentences. Every flagged sentence is returned
// verbatim, in document order; a sentence is flagged at most once no matter
// how many passive constructions it contains.
func (a *PassiveVoiceAnalyzer) Analyze(text string, report *model.AnalysisReport) {
	flagged := make([]string, 0)

	for _, sentence := range SplitSentences(text) {
		if containsPassive(sentence) {
			flagged = append(flagged, sentence)
		}
	}

	report.Tone = model.ToneReport{
		PassiveVoiceCount: len(flagged),
		FlaggedSentences:  flagged,
	}
}

// containsPassive reports whether the sentence contains a being-verb
// immediately followed by a past-participle-shaped word.
func containsPassive(sentence string) bool {
	words := SplitWords(sentence)

	for i := 0; i+1 < len(words); i++ {
		if beingVerbs[strings.ToLower(words[i])] && looksLikeParticiple(strings.ToLower(words[i+1])) {
			return true
		}
	}
	return false
}

// looksLikeParticiple reports whether a lowercased word is shaped like a
// past participle.
//
// The "-ed" rule needs at least four letters so bare words like "red" or
// "bed" don't trigger; the "-en" rule needs five so "open", "ten", and
// "even" stay clear while "taken", "written", and "given" match.
func looksLikeParticiple(word string) bool {
	if irregularParticiples[word] {
		return true
	}
	if len(word) > 3 && strings.HasSuffix(word, "ed") {
		return true
	}
	if len(word) > 4 && strings.HasSuffix(word, "en") {
		return true
	}
	return false
}
