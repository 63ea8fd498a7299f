package dataflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dataflow/pkg/dataflow"
)

func TestBuilderIsReusable(t *testing.T) {
	t.Parallel()

	source := dataflow.From("x")
	doubled := source.Apply(double).To("y")
	tripled := source.Apply(func(args ...any) (any, error) {
		return args[0].(int) * 3, nil
	}).To("z")

	pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", 2)})
	require.NoError(t, err)

	pipe.ExecuteMap(doubled).ExecuteMap(tripled)
	require.NoError(t, pipe.Err())

	gotY, err := pipe.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 4, gotY)

	gotZ, err := pipe.Get("z")
	require.NoError(t, err)
	assert.Equal(t, 6, gotZ)
}

func TestStepIsReusableAcrossRuns(t *testing.T) {
	t.Parallel()

	step := dataflow.From("x").Apply(double).To("y")

	for _, seed := range []int{1, 5} {
		pipe, err := dataflow.New([]dataflow.Binding{dataflow.Bind("x", seed)})
		require.NoError(t, err)

		pipe.ExecuteMap(step)
		require.NoError(t, pipe.Err())

		got, err := pipe.Get("y")
		require.NoError(t, err)
		assert.Equal(t, seed*2, got)
	}
}
