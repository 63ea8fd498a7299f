package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const defaultBuffer = 64

// AsyncTracer writes one line per record to a writer. Records are consumed
// on a separate goroutine so tracing never slows a step down more than a
// channel send; Close waits for the writer to drain.
//
// Trace must not be called after Close.
type AsyncTracer struct {
	records chan Record
	grp     *errgroup.Group
	wrt     io.Writer
}

// NewAsyncTracer creates a tracer writing to wrt and starts its consumer.
func NewAsyncTracer(wrt io.Writer) *AsyncTracer {
	tracer := &AsyncTracer{
		records: make(chan Record, defaultBuffer),
		grp:     &errgroup.Group{},
		wrt:     wrt,
	}
	tracer.grp.Go(tracer.consume)

	return tracer
}

// Trace records one executed step.
func (t *AsyncTracer) Trace(rec Record) {
	t.records <- rec
}

// Close drains pending records and returns the first write failure.
func (t *AsyncTracer) Close() error {
	close(t.records)

	return t.grp.Wait()
}

// consume keeps draining after a write failure so Trace never blocks; only
// the first failure is reported.
func (t *AsyncTracer) consume() error {
	var first error

	for rec := range t.records {
		if first != nil {
			continue
		}

		_, err := fmt.Fprintf(t.wrt, "[%s] %s >> %s >> %s id=%s elapsed=%s\n",
			strings.ToUpper(string(rec.Strategy)),
			"["+strings.Join(rec.Inputs, ", ")+"]",
			rec.Fn,
			"["+strings.Join(rec.Outputs, ", ")+"]",
			rec.ID,
			rec.Elapsed,
		)
		if err != nil {
			first = errors.Wrap(err, "unable to write trace record")
		}
	}

	return first
}

var _ Tracer = (*AsyncTracer)(nil)
