// Package config holds all tunable values for prompt508: the compliance
// threshold, grade-level targets, jargon and passive-voice allowances,
// scoring penalties, cost-estimation rates, and the jargon lexicon.
//
// Configuration is loaded once at startup, validated, and then treated as
// read-only. The scoring engine and orchestrator receive it by dependency
// injection rather than reading global state, which keeps concurrent
// invocations free of shared mutable state.
//
// A YAML file (.prompt508) can override thresholds, extend or replace the
// jargon lexicon, and set the model and its per-token rates. Search order:
// explicit path, current directory, XDG config directory.
package config
