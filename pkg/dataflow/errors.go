package dataflow

import "github.com/pkg/errors"

var (
	// ErrUnsupportedToken is returned when a step uses the inferred-inputs
	// token. Inference is an intentional stub, not a silent no-op.
	ErrUnsupportedToken = errors.New("inferred inputs are not supported")
	// ErrNoPreviousOutput is returned when a step reads the previous
	// outputs before any step has executed in the run.
	ErrNoPreviousOutput = errors.New("no previous outputs")
	// ErrArityMismatch is returned when input and output counts disagree
	// under the map strategy, or when a function returns the wrong number
	// of values for its declared outputs.
	ErrArityMismatch = errors.New("input and output counts do not match")
	// ErrTypeMismatch is returned when a step declares multiple outputs but
	// the function does not return an ordered sequence.
	ErrTypeMismatch = errors.New("multiple outputs require a slice or array result")
	// ErrVariableConflict is returned by branch groups under the error
	// merge policy when two branches declare the same output.
	ErrVariableConflict = errors.New("variable written by multiple branches")
	// ErrMalformedCall is returned when a construct receives a step it
	// cannot execute, such as one without a function.
	ErrMalformedCall = errors.New("malformed call")
	// ErrUndefinedVariable is returned when a read refers to a name that
	// was never registered.
	ErrUndefinedVariable = errors.New("undefined variable")
)
