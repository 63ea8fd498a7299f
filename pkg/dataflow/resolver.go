package dataflow

import "github.com/pkg/errors"

// resolveInputs expands an input specification to a concrete ordered list of
// variable names. Precedence: inferred inputs fail fast, then the previous
// outputs token, then the all-variables token, then the explicit list, which
// is returned unchanged without existence checks. Existence is checked
// lazily by the executor.
func (p *Pipeline) resolveInputs(spec varSpec) ([]string, error) {
	switch spec.token {
	case tokenInfer:
		return nil, errors.Wrap(ErrUnsupportedToken, "resolve inputs")
	case tokenPrev:
		if len(p.last) == 0 {
			return nil, errors.Wrap(ErrNoPreviousOutput, "resolve inputs")
		}

		return p.last, nil
	case tokenAll:
		return p.store.Registered(), nil
	}

	return spec.names, nil
}

// resolveOutputs expands an output specification. The all-variables token
// means "write back onto the names that were read": the resolved inputs are
// used verbatim. Explicit lists are returned unchanged.
func resolveOutputs(spec varSpec, resolvedInputs []string) []string {
	if spec.token == tokenAll {
		return resolvedInputs
	}

	return spec.names
}

// resolve expands both sides of a step and checks the parts the builder
// cannot enforce.
func (p *Pipeline) resolve(step Step) (inputs, outputs []string, err error) {
	if step.fn == nil {
		return nil, nil, errors.Wrap(ErrMalformedCall, "step has no function")
	}

	inputs, err = p.resolveInputs(step.inputs)
	if err != nil {
		return nil, nil, err
	}

	return inputs, resolveOutputs(step.outputs, inputs), nil
}
