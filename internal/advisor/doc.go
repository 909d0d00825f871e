// Package advisor implements the compliance orchestrator: the two-stage
// generate, validate, and repair flow that keeps model output inside the
// accessibility rules.
//
// The flow per invocation:
//
//	Stage1_Augment   -> append accessibility instructions to the prompt
//	Stage1_Generate  -> call the injected generation capability
//	Stage2_Validate  -> score the output against the compliance threshold
//	Stage2_Fix       -> (only if needed) one repair rewrite, rescored
//	Done             -> emit a ComplianceOutcome
//
// Design decision: The repair pass runs at most once per invocation rather
// than looping until compliant. An unbounded loop against a paid generation
// API is a runaway-cost hazard; a single bounded repair catches the common
// case and the outcome reports honestly whether the result passed.
//
// The advisor owns no generation capability: callers inject one, which is
// what keeps the pipeline testable with deterministic fakes. Invocations
// share no mutable state, so one Advisor serves concurrent callers without
// locking.
package advisor
