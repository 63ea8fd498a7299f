package dataflow

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// writeGuard filters executor writes. A nil guard lets every write through.
// Branch groups under the first merge policy use it to drop writes to names
// an earlier branch already produced.
type writeGuard func(name string) bool

// strategyFor picks the execution strategy for composite constructs: equal
// input and output counts select the element-wise map strategy, anything
// else the whole-tuple strategy.
func strategyFor(inputs, outputs []string) model.Strategy {
	if len(inputs) == len(outputs) {
		return model.MapStrategy
	}

	return model.AllStrategy
}

func (p *Pipeline) read(name string) (any, error) {
	value, ok := p.store.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrUndefinedVariable, "%q", name)
	}

	return value, nil
}

// executeMap applies fn element-wise: one call per input, one result per
// output, in order. Every read and every call happens before the first
// write, so a step may safely write onto the names it reads.
func (p *Pipeline) executeMap(inputs []string, fn Fn, outputs []string, guard writeGuard) error {
	if len(inputs) != len(outputs) {
		return errors.Wrapf(ErrArityMismatch, "map strategy: %d inputs, %d outputs", len(inputs), len(outputs))
	}

	results := make([]any, 0, len(inputs))

	for _, name := range inputs {
		value, err := p.read(name)
		if err != nil {
			return err
		}

		result, err := fn(value)
		if err != nil {
			return errors.Wrapf(err, "map %q", name)
		}

		results = append(results, result)
	}

	p.write(outputs, results, guard)

	return nil
}

// executeAll calls fn exactly once with every input value as a separate
// argument. A single declared output receives the result as-is, even when
// the result is itself a sequence. Multiple declared outputs require the
// result to be a slice or array of matching length.
func (p *Pipeline) executeAll(inputs []string, fn Fn, outputs []string, guard writeGuard) error {
	values := make([]any, 0, len(inputs))

	for _, name := range inputs {
		value, err := p.read(name)
		if err != nil {
			return err
		}

		values = append(values, value)
	}

	result, err := fn(values...)
	if err != nil {
		return errors.Wrap(err, "all strategy")
	}

	var results []any

	if len(outputs) == 1 {
		results = []any{result}
	} else {
		results, err = sequenceOf(result)
		if err != nil {
			return err
		}

		if len(results) != len(outputs) {
			return errors.Wrapf(ErrArityMismatch, "all strategy: %d results, %d outputs", len(results), len(outputs))
		}
	}

	p.write(outputs, results, guard)

	return nil
}

func (p *Pipeline) write(outputs []string, results []any, guard writeGuard) {
	for idx, name := range outputs {
		if guard != nil && !guard(name) {
			continue
		}

		p.store.Set(name, results[idx])
	}
}

// sequenceOf unpacks an ordered sequence result. Any slice or array kind is
// accepted; strings are not sequences of results.
func sequenceOf(result any) ([]any, error) {
	if result == nil {
		return nil, errors.Wrap(ErrTypeMismatch, "got nil")
	}

	val := reflect.ValueOf(result)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, errors.Wrapf(ErrTypeMismatch, "got %T", result)
	}

	results := make([]any, val.Len())
	for idx := 0; idx < val.Len(); idx++ {
		results[idx] = val.Index(idx).Interface()
	}

	return results, nil
}

// runStep resolves and executes one step under the given construct and
// strategy, then reports it to the attached options. It does not touch the
// previous-outputs record; the calling construct owns that.
func (p *Pipeline) runStep(construct model.Construct, strategy model.Strategy, step Step, guard writeGuard) ([]string, error) {
	inputs, outputs, err := p.resolve(step)
	if err != nil {
		return nil, err
	}

	if err := p.execute(construct, strategy, inputs, step.fn, outputs, guard); err != nil {
		return nil, err
	}

	return outputs, nil
}
