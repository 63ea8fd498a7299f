package dataflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataflow/pkg/dataflow"
)

func constant(value int) dataflow.Fn {
	return func(args ...any) (any, error) {
		return value, nil
	}
}

func TestBranchMergeLast(t *testing.T) {
	t.Parallel()

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 0)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeLast,
		dataflow.From("x").Apply(constant(1)).To("y"),
		dataflow.From("x").Apply(constant(2)).To("y"),
	)
	require.NoError(t, pipe.Err())

	got, err := pipe.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestBranchMergeFirst(t *testing.T) {
	t.Parallel()

	secondRan := false
	second := func(args ...any) (any, error) {
		secondRan = true

		return 2, nil
	}

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 0)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeFirst,
		dataflow.From("x").Apply(constant(1)).To("y"),
		dataflow.From("x").Apply(second).To("y"),
	)
	require.NoError(t, pipe.Err())

	// The second branch runs, but its write is dropped.
	assert.True(t, secondRan)

	got, err := pipe.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBranchMergeError(t *testing.T) {
	t.Parallel()

	secondRan := false
	second := func(args ...any) (any, error) {
		secondRan = true

		return 2, nil
	}

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 0)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeError,
		dataflow.From("x").Apply(constant(1)).To("y"),
		dataflow.From("x").Apply(second).To("y"),
	)

	assert.ErrorIs(t, pipe.Err(), dataflow.ErrVariableConflict)
	// The conflict is detected before the branch function runs.
	assert.False(t, secondRan)

	// No rollback: the first branch's write remains.
	got, err := pipe.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBranchMergeErrorDistinctOutputs(t *testing.T) {
	t.Parallel()

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 0)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeError,
		dataflow.From("x").Apply(constant(1)).To("y"),
		dataflow.From("x").Apply(constant(2)).To("z"),
	)
	require.NoError(t, pipe.Err())
}

func TestBranchLaterBranchesObserveEarlierWrites(t *testing.T) {
	t.Parallel()

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 5)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeLast,
		dataflow.From("x").Apply(double).To("y"),
		dataflow.From("y").Apply(double).To("z"),
	)
	require.NoError(t, pipe.Err())

	got, err := pipe.Get("z")
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestBranchLastOutputsConcatenated(t *testing.T) {
	t.Parallel()

	gather := func(args ...any) (any, error) {
		return []any{args[0], args[1]}, nil
	}

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 1)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeLast,
		dataflow.From("x").Apply(constant(10)).To("a"),
		dataflow.From("x").Apply(constant(20)).To("b"),
	).ExecuteAll(dataflow.FromPrev().Apply(gather).To("pair"))
	require.NoError(t, pipe.Err())

	got, err := pipe.Get("pair")
	require.NoError(t, err)
	assert.Equal(t, []any{10, 20}, got)
}

func TestBranchUnknownPolicy(t *testing.T) {
	t.Parallel()

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 1)})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergePolicy("newest"),
		dataflow.From("x").Apply(double).To("y"),
	)
	assert.ErrorIs(t, pipe.Err(), dataflow.ErrMalformedCall)
}

func TestBranchPicksStrategyPerBranch(t *testing.T) {
	t.Parallel()

	pipe, err := dataflow.New([]dataflow.Binding{
		dataflow.Bind("a", 2),
		dataflow.Bind("b", 3),
	})
	require.NoError(t, err)

	pipe.Branch(dataflow.MergeLast,
		dataflow.From("a").Apply(double).To("a2"),
		dataflow.From("a", "b").Apply(sumProd).To("sum", "prod"),
	)
	require.NoError(t, pipe.Err())

	got, err := pipe.Get("sum")
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
