package dataflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(args ...any) (any, error) {
	return args[0], nil
}

func TestResolveInputsExplicit(t *testing.T) {
	t.Parallel()

	pipe, err := New(nil)
	require.NoError(t, err)

	// Explicit lists resolve unchanged, without existence checks.
	got, err := pipe.resolveInputs(varSpec{names: []string{"never", "seen"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"never", "seen"}, got)
}

func TestResolveInputsInferred(t *testing.T) {
	t.Parallel()

	pipe, err := New(nil)
	require.NoError(t, err)

	_, err = pipe.resolveInputs(varSpec{token: tokenInfer})
	assert.ErrorIs(t, err, ErrUnsupportedToken)
}

func TestResolveInputsPrev(t *testing.T) {
	t.Parallel()

	pipe, err := New([]Binding{Bind("x", 1)})
	require.NoError(t, err)

	_, err = pipe.resolveInputs(varSpec{token: tokenPrev})
	assert.ErrorIs(t, err, ErrNoPreviousOutput)

	pipe.ExecuteMap(From("x").Apply(identity).To("renamed"))
	require.NoError(t, pipe.Err())

	got, err := pipe.resolveInputs(varSpec{token: tokenPrev})
	require.NoError(t, err)
	assert.Equal(t, []string{"renamed"}, got)
}

func TestResolveInputsAllKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	pipe, err := New([]Binding{
		Bind("b", 1),
		Bind("a", 2),
	})
	require.NoError(t, err)

	// Outputs register after initial bindings, in first-introduction order.
	pipe.ExecuteMap(From("b").Apply(identity).To("z"))
	pipe.ExecuteMap(From("a").Apply(identity).To("c"))
	require.NoError(t, pipe.Err())

	got, err := pipe.resolveInputs(varSpec{token: tokenAll})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "z", "c"}, got)
}

func TestResolveOutputsSameWritesBackOnInputs(t *testing.T) {
	t.Parallel()

	got := resolveOutputs(varSpec{token: tokenAll}, []string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, got)

	got = resolveOutputs(varSpec{names: []string{"z"}}, []string{"x", "y"})
	assert.Equal(t, []string{"z"}, got)
}

func TestStrategyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "map", string(strategyFor([]string{"a"}, []string{"b"})))
	assert.Equal(t, "all", string(strategyFor([]string{"a", "b"}, []string{"c"})))
	assert.Equal(t, "map", string(strategyFor(nil, nil)))
}
