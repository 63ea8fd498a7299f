package dataflow

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

// Sequence executes the steps strictly in order. Each step resolves against
// the state mutated by all prior steps, and FromPrev resolves to the
// immediately preceding step's outputs. The strategy is chosen per step:
// equal input and output counts run element-wise, anything else whole-tuple.
func (p *Pipeline) Sequence(steps ...Step) *Pipeline {
	if p.err != nil {
		return p
	}

	for idx, step := range steps {
		inputs, outputs, err := p.resolve(step)
		if err != nil {
			return p.fail(errors.Wrapf(err, "sequence: step %d", idx+1))
		}

		err = p.execute(model.SequenceConstruct, strategyFor(inputs, outputs), inputs, step.fn, outputs, nil)
		if err != nil {
			return p.fail(errors.Wrapf(err, "sequence: step %d", idx+1))
		}

		p.last = outputs
	}

	return p
}
