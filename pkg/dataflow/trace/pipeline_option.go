package trace

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-dataflow/pkg/dataflow/model"
)

type pipelineTracer struct {
	tracer Tracer
}

func (pt *pipelineTracer) New() error {
	return nil
}

func (pt *pipelineTracer) OnStep(step *model.StepInfo, elapsed time.Duration) error {
	pt.tracer.Trace(NewRecord(step, elapsed))

	return nil
}

func (pt *pipelineTracer) Finish() error {
	err := pt.tracer.Close()
	if err != nil {
		return errors.Wrap(err, "unable to close tracer")
	}

	return nil
}

// PipelineTracer sends every executed step to the given tracer and closes it
// when the pipeline is closed. Attaching the option enables tracing;
// pipelines without it pay nothing.
func PipelineTracer(tracer Tracer) model.PipelineOption {
	return &pipelineTracer{tracer: tracer}
}

var _ model.PipelineOption = (*pipelineTracer)(nil)
