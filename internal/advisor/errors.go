package advisor

import (
	"errors"
	"fmt"
)

// ErrNoGenerator is returned when a repair is requested but the advisor has
// no generation capability configured.
var ErrNoGenerator = errors.New("no generation capability configured")

// Stage identifies where in the pipeline a generation call happened.
type Stage int

const (
	// StageGenerate is the first generation call, made with the augmented
	// prompt.
	StageGenerate Stage = iota + 1

	// StageFix is the repair rewrite call.
	StageFix
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageGenerate:
		return "stage1_generate"
	case StageFix:
		return "stage2_fix"
	default:
		return "unknown"
	}
}

// GenerationError reports a failed generation call with the stage it
// happened in. The pipeline aborts on generation failure: no partial
// ComplianceOutcome is ever returned, because compliance success may only
// be reported for text that was actually scored.
type GenerationError struct {
	// Stage identifies which generation call failed.
	Stage Stage

	// Err is the collaborator's error, unchanged.
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the collaborator's error to errors.Is and errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
