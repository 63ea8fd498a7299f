package dataflow

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// MergePolicy decides what happens when several branches of one group write
// the same variable.
type MergePolicy string

const (
	// MergeLast lets later branches overwrite earlier writes.
	MergeLast MergePolicy = "last"
	// MergeFirst keeps the first write. Later branches still run; their
	// writes to already-written names are dropped.
	MergeFirst MergePolicy = "first"
	// MergeError aborts with ErrVariableConflict before executing a branch
	// whose declared outputs were already written in the group.
	MergeError MergePolicy = "error"
)

// Branch executes a group of steps against the shared variable state.
// Execution is sequential in the given order, so later branches observe
// earlier branches' writes; the merge policy only governs writes to names
// several branches declare. Afterwards the previous-outputs record holds the
// concatenation of every branch's outputs, in branch order.
//
// There is no rollback: if a branch fails, writes committed by earlier
// branches remain.
func (p *Pipeline) Branch(policy MergePolicy, steps ...Step) *Pipeline {
	if p.err != nil {
		return p
	}

	switch policy {
	case MergeLast, MergeFirst, MergeError:
	default:
		return p.fail(errors.Wrapf(ErrMalformedCall, "branch: unknown merge policy %q", policy))
	}

	written := make(map[string]struct{})

	var guard writeGuard
	if policy == MergeFirst {
		guard = func(name string) bool {
			_, ok := written[name]

			return !ok
		}
	}

	var allOutputs []string

	for idx, step := range steps {
		inputs, outputs, err := p.resolve(step)
		if err != nil {
			return p.fail(errors.Wrapf(err, "branch %d", idx+1))
		}

		if policy == MergeError {
			for _, name := range outputs {
				if _, ok := written[name]; ok {
					return p.fail(errors.Wrapf(ErrVariableConflict, "branch %d: %q", idx+1, name))
				}
			}
		}

		err = p.execute(model.BranchConstruct, strategyFor(inputs, outputs), inputs, step.fn, outputs, guard)
		if err != nil {
			return p.fail(errors.Wrapf(err, "branch %d", idx+1))
		}

		for _, name := range outputs {
			written[name] = struct{}{}
		}

		allOutputs = append(allOutputs, outputs...)
	}

	p.last = allOutputs

	return p
}
