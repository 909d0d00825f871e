package textscore

import (
	"strings"
	"unicode"
)

// SplitSentences splits text into sentences using language-agnostic boundary
// rules: runs of sentence-ending punctuation (. ! ?) terminate a sentence.
// Sentences are returned trimmed of surrounding whitespace; empty fragments
// are dropped.
//
// Design decision: We use simple punctuation rules rather than a Unicode
// segmentation library because the Flesch-Kincaid inputs are part of the
// scoring contract: sentence and word counts must be stable and reproducible
// across releases, and UAX#29 segmentation counts abbreviation periods and
// punctuation tokens differently than the scoring rules require.
func SplitSentences(text string) []string {
	sentences := make([]string, 0, 8)

	var sb strings.Builder
	inTerminator := false

	for _, r := range text {
		switch r {
		case '.', '!', '?':
			inTerminator = true
		default:
			if inTerminator {
				flushSentence(&sentences, &sb)
				inTerminator = false
			}
			sb.WriteRune(r)
		}
	}
	flushSentence(&sentences, &sb)

	return sentences
}

// flushSentence appends the builder's content as a sentence if it contains
// anything beyond whitespace, then resets the builder.
func flushSentence(sentences *[]string, sb *strings.Builder) {
	s := strings.TrimSpace(sb.String())
	sb.Reset()
	if s != "" {
		*sentences = append(*sentences, s)
	}
}

// SplitWords splits text into words by whitespace, trimming surrounding
// punctuation from each token. Tokens that contain no letters or digits
// (e.g. a lone dash) are dropped. Internal punctuation such as apostrophes
// and hyphens is preserved ("don't", "well-known" are single words).
func SplitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))

	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word != "" {
			words = append(words, word)
		}
	}

	return words
}

// CountSyllables estimates the syllables in a single word using a
// vowel-group heuristic: each maximal run of vowels (a, e, i, o, u, y)
// counts as one syllable. Words containing at least one letter count a
// minimum of one syllable, so purely consonantal tokens never yield zero
// and break the grade formula's denominator.
func CountSyllables(word string) int {
	count := 0
	inVowelGroup := false
	hasLetter := false

	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if isVowel(r) {
			if !inVowelGroup {
				count++
				inVowelGroup = true
			}
		} else {
			inVowelGroup = false
		}
	}

	if count == 0 && hasLetter {
		return 1
	}
	return count
}

// isVowel reports whether r is treated as a vowel by the syllable heuristic.
// 'y' counts as a vowel: it carries the vowel sound in words like "rhythm"
// and "syllable", and counting it errs toward flagging complexity.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
