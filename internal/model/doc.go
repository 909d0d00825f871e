// Package model defines the core data structures used throughout prompt508.
//
// This package contains the following main types:
//   - AnalysisReport: The full accessibility analysis of a text
//   - ValidationResult: A pass/fail decision derived from an AnalysisReport
//   - FixResult: The outcome of a repair rewrite, including cost
//   - ComplianceOutcome: The terminal artifact of the two-stage pipeline
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (textscore, advisor, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON; the field names and
// tags are the external contract consumed by CLIs and other callers and must
// remain stable.
package model
