// SPDX-License-Identifier: MIT
package solvertest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/solver"
	"github.com/katalvlaran/maxcut/solver/solvertest"
)

func TestExhaustive_FindsOptimum(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.MaxCutExample())
	require.NoError(t, err)
	q, err := qubo.EncodeQUBO(g)
	require.NoError(t, err)
	m, err := qubo.EncodeIsing(g)
	require.NoError(t, err)

	ss, err := solvertest.Exhaustive{}.SampleQUBO(context.Background(), q, solver.DefaultParams(qubo.Binary))
	require.NoError(t, err)
	require.Equal(t, 10, ss.Len())
	best, err := ss.Lowest()
	require.NoError(t, err)
	require.Equal(t, -5.0, best.Energy)

	ss, err = solvertest.Exhaustive{}.SampleIsing(context.Background(), m, solver.Params{NumReads: 100, ChainStrength: 2})
	require.NoError(t, err)
	require.Equal(t, 32, ss.Len())
	best, err = ss.Lowest()
	require.NoError(t, err)
	require.Equal(t, -4.0, best.Energy)
}

func TestExhaustive_Errors(t *testing.T) {
	_, err := solvertest.Exhaustive{}.SampleQUBO(context.Background(), qubo.NewQUBO("a"), solver.Params{})
	require.ErrorIs(t, err, solver.ErrInvalidParams)

	vars := make([]string, solvertest.MaxVariables+1)
	for i := range vars {
		vars[i] = string(rune('a' + i))
	}
	_, err = solvertest.Exhaustive{}.SampleQUBO(context.Background(), qubo.NewQUBO(vars...), solver.DefaultParams(qubo.Binary))
	require.ErrorIs(t, err, solvertest.ErrTooLarge)
}

func TestStatic_RecordsCalls(t *testing.T) {
	set, err := solver.NewSampleSet(qubo.Binary, []solver.Record{{Sample: qubo.Sample{"a": 1}, Energy: -1}})
	require.NoError(t, err)
	st := &solvertest.Static{Set: set}

	got, err := st.SampleQUBO(context.Background(), qubo.NewQUBO("a"), solver.DefaultParams(qubo.Binary))
	require.NoError(t, err)
	require.Same(t, set, got)

	boom := errors.New("boom")
	st.Err = boom
	_, err = st.SampleIsing(context.Background(), qubo.NewIsing("a"), solver.DefaultParams(qubo.Spin))
	require.ErrorIs(t, err, boom)

	calls := st.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, qubo.Binary, calls[0].Vartype)
	require.Equal(t, qubo.Spin, calls[1].Vartype)
	require.Equal(t, []string{"a"}, calls[1].Variables)
}
