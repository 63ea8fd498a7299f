package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

type pipelineDrawer struct {
	Drawer
}

func (pd *pipelineDrawer) New() error {
	return nil
}

func (pd *pipelineDrawer) OnStep(step *model.StepInfo, _ time.Duration) error {
	err := pd.AddStep(step)
	if err != nil {
		return errors.Wrap(err, "unable to add step to drawer")
	}

	for _, name := range step.Inputs {
		err := pd.AddVariable(name)
		if err != nil {
			return err
		}

		err = pd.AddFlow(name, step.Label())
		if err != nil {
			return err
		}
	}

	for _, name := range step.Outputs {
		err := pd.AddVariable(name)
		if err != nil {
			return err
		}

		err = pd.AddFlow(step.Label(), name)
		if err != nil {
			return err
		}
	}

	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw run")
	}

	return nil
}

// PipelineDrawer records every executed step into the given drawer and
// renders the graph when the pipeline is closed.
func PipelineDrawer(drawer Drawer) model.PipelineOption {
	return &pipelineDrawer{drawer}
}

var _ model.PipelineOption = (*pipelineDrawer)(nil)
