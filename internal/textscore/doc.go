// Package textscore implements the accessibility scoring engine.
//
// The engine is deterministic and side-effect free: it performs no I/O and
// no model calls, so identical text always yields an identical report and
// concurrent invocations share no mutable state.
//
// Three analyzers feed the composite score:
//   - readability: Flesch-Kincaid style grade level from sentence, word,
//     and syllable counts
//   - jargon: lexicon matches, case-insensitive and word-boundary aware
//   - passive voice: per-sentence structural heuristic
//
// Design decision: Scoring is deductive (start at 100, subtract weighted
// penalties) rather than additive because each lost point then traces to
// exactly one issue, which makes thresholds and "why did this fail"
// messaging trivially traceable. The deduction rules live in a declarative
// table so rules can be added or tuned without touching control flow.
package textscore
