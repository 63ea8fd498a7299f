// Package dataflow provides a small dataflow-composition engine. A pipeline
// run holds named variables in a shared store; steps map a set of variables
// through a function to a set of output variables.
//
// Steps are immutable descriptions built with a fluent builder:
//
//	double := func(args ...any) (any, error) { return args[0].(int) * 2, nil }
//
//	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 10)})
//	...
//	pipe.ExecuteMap(dataflow.From("x").Apply(double).To("y"))
//	got, err := pipe.Get("y") // 20
//
// Two execution strategies exist. The map strategy applies the function
// element-wise, one call per input/output pair. The whole-tuple strategy
// calls the function once with every input value and distributes the results
// over the outputs. Composite constructs pick the strategy per step from the
// input/output arity.
//
// Three constructs compose steps: Sequence runs steps in order, Branch runs
// a group of steps with a merge policy for conflicting writes, and Select
// runs the first step whose predicate matches. Execution is strictly
// sequential and deterministic; Branch is parallel in intent only.
//
// Operations chain and carry a sticky first error: once a step fails, later
// operations are no-ops and Err reports the failure.
package dataflow
