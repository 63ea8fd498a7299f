package dataflow

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/internal/store"
	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// Binding is one initial variable of a run. Bindings are a slice rather than
// a map because registration order is observable through FromAll.
type Binding struct {
	Name  string
	Value any
}

// Bind builds an initial binding.
func Bind(name string, value any) Binding {
	return Binding{Name: name, Value: value}
}

// Pipeline is one dataflow run: a variable store, the record of the previous
// step's outputs, and the attached options. A Pipeline is not safe for
// concurrent use; execution is strictly sequential.
//
// Operations return the Pipeline for chaining and hold on to the first
// error: once a step fails, later operations are no-ops and Err reports the
// failure.
type Pipeline struct {
	id    uuid.UUID
	store *store.Store
	last  []string
	opts  []model.PipelineOption
	seq   int
	debug bool
	err   error
}

// New creates a run seeded with the given bindings, registered in order.
// A name bound twice keeps its first registration slot and its last value.
func New(bindings []Binding, opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		id:    uuid.New(),
		store: store.New(),
		opts:  opts,
	}

	for _, binding := range bindings {
		pipe.store.Set(binding.Name, binding.Value)
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// Err returns the first error encountered by the run, if any.
func (p *Pipeline) Err() error {
	return p.err
}

func (p *Pipeline) fail(err error) *Pipeline {
	if p.err == nil {
		p.err = err
	}

	return p
}

// Get returns the current value of a registered variable.
func (p *Pipeline) Get(name string) (any, error) {
	value, ok := p.store.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrUndefinedVariable, "%q", name)
	}

	return value, nil
}

// Snapshot returns a read-only copy of the current variable state. It is the
// same view select predicates receive.
func (p *Pipeline) Snapshot() map[string]any {
	return p.store.Snapshot()
}

// Debug toggles a debug log line for every executed step. The line is purely
// observational; variable state is unaffected.
func (p *Pipeline) Debug(enabled bool) *Pipeline {
	p.debug = enabled

	return p
}

// Close finishes the attached options. It returns the run error if the run
// failed, otherwise the first option failure.
func (p *Pipeline) Close() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			p.fail(errors.Wrap(err, "unable to finish pipeline option"))
		}
	}

	return p.err
}

// ExecuteMap runs a single step under the element-wise map strategy: one
// function call per input, one result per output.
func (p *Pipeline) ExecuteMap(step Step) *Pipeline {
	if p.err != nil {
		return p
	}

	outputs, err := p.runStep(model.SingleConstruct, model.MapStrategy, step, nil)
	if err != nil {
		return p.fail(errors.Wrap(err, "execute map"))
	}

	p.last = outputs

	return p
}

// ExecuteAll runs a single step under the whole-tuple strategy: one function
// call over every input, results distributed over the outputs.
func (p *Pipeline) ExecuteAll(step Step) *Pipeline {
	if p.err != nil {
		return p
	}

	outputs, err := p.runStep(model.SingleConstruct, model.AllStrategy, step, nil)
	if err != nil {
		return p.fail(errors.Wrap(err, "execute all"))
	}

	p.last = outputs

	return p
}

// execute dispatches a resolved step to its strategy and reports it to the
// attached options.
func (p *Pipeline) execute(construct model.Construct, strategy model.Strategy, inputs []string, fn Fn, outputs []string, guard writeGuard) error {
	start := time.Now()

	var err error

	switch strategy {
	case model.AllStrategy:
		err = p.executeAll(inputs, fn, outputs, guard)
	default:
		err = p.executeMap(inputs, fn, outputs, guard)
	}

	if err != nil {
		return err
	}

	p.seq++
	info := &model.StepInfo{
		Construct: construct,
		Strategy:  strategy,
		Fn:        fnName(fn),
		Inputs:    inputs,
		Outputs:   outputs,
		Seq:       p.seq,
	}

	if p.debug {
		slog.Debug("step executed",
			"run", p.id,
			"construct", info.Construct,
			"strategy", info.Strategy,
			"fn", info.Fn,
			"inputs", info.Inputs,
			"outputs", info.Outputs,
		)
	}

	for _, opt := range p.opts {
		err := opt.OnStep(info, time.Since(start))
		if err != nil {
			return errors.Wrap(err, "unable to run on step function")
		}
	}

	return nil
}
