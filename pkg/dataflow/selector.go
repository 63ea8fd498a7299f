package dataflow

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// Predicate decides whether a select case runs. It receives a read-only
// snapshot of the variable state.
type Predicate func(view map[string]any) bool

// Case pairs a step with the predicate guarding it.
type Case struct {
	Step Step
	When Predicate
}

// When builds a select case.
func When(pred Predicate, step Step) Case {
	return Case{Step: step, When: pred}
}

// SelectOption configures a Select call.
type SelectOption func(*selectConfig)

type selectConfig struct {
	def    Step
	hasDef bool
}

// WithDefault sets the step executed when no predicate matches.
func WithDefault(step Step) SelectOption {
	return func(cfg *selectConfig) {
		cfg.def = step
		cfg.hasDef = true
	}
}

// Select evaluates the cases in order and executes the step of the first
// predicate returning true; later predicates are never evaluated. When no
// predicate matches, the default runs if one was supplied; otherwise the
// call is a no-op and the variable state and previous-outputs record are
// left untouched.
func (p *Pipeline) Select(cases []Case, opts ...SelectOption) *Pipeline {
	if p.err != nil {
		return p
	}

	cfg := &selectConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	view := p.store.Snapshot()

	for idx, c := range cases {
		if c.When == nil {
			return p.fail(errors.Wrapf(ErrMalformedCall, "select: case %d has no predicate", idx+1))
		}

		if !c.When(view) {
			continue
		}

		outputs, err := p.runSelected(c.Step)
		if err != nil {
			return p.fail(errors.Wrapf(err, "select: case %d", idx+1))
		}

		p.last = outputs

		return p
	}

	if !cfg.hasDef {
		return p
	}

	outputs, err := p.runSelected(cfg.def)
	if err != nil {
		return p.fail(errors.Wrap(err, "select: default"))
	}

	p.last = outputs

	return p
}

func (p *Pipeline) runSelected(step Step) ([]string, error) {
	inputs, outputs, err := p.resolve(step)
	if err != nil {
		return nil, err
	}

	err = p.execute(model.SelectConstruct, strategyFor(inputs, outputs), inputs, step.fn, outputs, nil)
	if err != nil {
		return nil, err
	}

	return outputs, nil
}
