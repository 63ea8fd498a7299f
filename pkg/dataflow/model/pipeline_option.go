package model

import "time"

// PipelineOption defines the interface for pipeline options. Options observe
// a run; they never mutate the variable state.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// OnStep runs after every executed step.
	OnStep(step *StepInfo, elapsed time.Duration) error
	// Finish runs when the pipeline is closed.
	Finish() error
}
