package dataflow

import (
	"reflect"
	"runtime"
)

// Fn is a user function executed by a step. The map strategy calls it with a
// single argument, once per input; the whole-tuple strategy calls it once
// with every input value. A non-nil error aborts the run.
type Fn func(args ...any) (any, error)

type token int

const (
	tokenNone token = iota
	// tokenAll resolves to every registered variable for inputs, and to
	// the resolved inputs for outputs.
	tokenAll
	// tokenPrev resolves to the outputs of the previous step.
	tokenPrev
	// tokenInfer is reserved; resolving it always fails.
	tokenInfer
)

type varSpec struct {
	token token
	names []string
}

// Step is an immutable description of one processing step: an input
// specification, a function and an output specification. Steps are built
// with From, FromAll, FromPrev or FromInferred and carry no run state, so a
// single Step can be executed by several pipelines.
type Step struct {
	inputs  varSpec
	fn      Fn
	outputs varSpec
}

// StepBuilder accumulates a step description. It is only ever completed by
// To or ToSame, so a Step always has an output specification.
type StepBuilder struct {
	inputs varSpec
	fn     Fn
}

// From starts a step reading the given variables, in order.
func From(names ...string) *StepBuilder {
	return &StepBuilder{inputs: varSpec{names: names}}
}

// FromAll starts a step reading every registered variable, in registration
// order at execution time.
func FromAll() *StepBuilder {
	return &StepBuilder{inputs: varSpec{token: tokenAll}}
}

// FromPrev starts a step reading the outputs of the previous step.
func FromPrev() *StepBuilder {
	return &StepBuilder{inputs: varSpec{token: tokenPrev}}
}

// FromInferred starts a step whose inputs would be inferred. Inference is
// not implemented; executing such a step fails with ErrUnsupportedToken.
func FromInferred() *StepBuilder {
	return &StepBuilder{inputs: varSpec{token: tokenInfer}}
}

// Apply sets the step function.
func (b *StepBuilder) Apply(fn Fn) *StepBuilder {
	return &StepBuilder{inputs: b.inputs, fn: fn}
}

// To completes the step, writing results to the given variables, in order.
func (b *StepBuilder) To(names ...string) Step {
	return Step{
		inputs:  b.inputs,
		fn:      b.fn,
		outputs: varSpec{names: names},
	}
}

// ToSame completes the step, writing results back onto the variables that
// were read. This is the in-place transform idiom.
func (b *StepBuilder) ToSame() Step {
	return Step{
		inputs:  b.inputs,
		fn:      b.fn,
		outputs: varSpec{token: tokenAll},
	}
}

// fnName reports the symbolic name of a step function, for traces and debug
// logs only.
func fnName(fn Fn) string {
	if fn == nil {
		return "<nil>"
	}

	rfn := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rfn == nil || rfn.Name() == "" {
		return "<anonymous>"
	}

	return rfn.Name()
}
