// Package trace provides a side channel recording every step executed by a
// run. It is purely observational and never touches variable state.
package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// Record describes one executed step.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Construct model.Construct
	Strategy  model.Strategy
	Fn        string
	Inputs    []string
	Outputs   []string
	Elapsed   time.Duration
}

// NewRecord builds a record for an executed step.
func NewRecord(step *model.StepInfo, elapsed time.Duration) Record {
	return Record{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Construct: step.Construct,
		Strategy:  step.Strategy,
		Fn:        step.Fn,
		Inputs:    step.Inputs,
		Outputs:   step.Outputs,
		Elapsed:   elapsed,
	}
}

// Tracer consumes records.
type Tracer interface {
	// Trace records one executed step.
	Trace(rec Record)
	// Close flushes the tracer and reports any write failure.
	Close() error
}
