package model

import "fmt"

// Strategy is the execution strategy applied to a step.
type Strategy string

const (
	// MapStrategy applies the function element-wise, one call per
	// input/output pair.
	MapStrategy Strategy = "map"
	// AllStrategy calls the function once with every input value and
	// distributes the results over the outputs.
	AllStrategy Strategy = "all"
)

// Construct is the control construct a step was executed under.
type Construct string

const (
	SingleConstruct   Construct = "single"
	SequenceConstruct Construct = "sequence"
	BranchConstruct   Construct = "branch"
	SelectConstruct   Construct = "select"
)

// StepInfo describes one executed step after resolution.
type StepInfo struct {
	Construct Construct
	Strategy  Strategy
	Fn        string
	Inputs    []string
	Outputs   []string
	// Seq is the position of the step within its run, starting at 1.
	Seq int
}

// Label returns a name unique within a run, usable as a graph vertex key.
func (si *StepInfo) Label() string {
	return fmt.Sprintf("#%d %s %s", si.Seq, si.Strategy, si.Fn)
}
