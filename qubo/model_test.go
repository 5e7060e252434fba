// SPDX-License-Identifier: MIT
package qubo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/matrix"
	"github.com/katalvlaran/maxcut/qubo"
)

func TestVartype(t *testing.T) {
	for in, want := range map[string]qubo.Vartype{"qubo": qubo.Binary, "BINARY": qubo.Binary, " ising ": qubo.Spin, "spin": qubo.Spin} {
		got, err := qubo.ParseVartype(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := qubo.ParseVartype("potts")
	require.ErrorIs(t, err, qubo.ErrUnknownVartype)

	require.Equal(t, int8(0), qubo.Binary.Low())
	require.Equal(t, int8(-1), qubo.Spin.Low())
	require.True(t, qubo.Spin.Valid(1))
	require.False(t, qubo.Spin.Valid(0))
	require.False(t, qubo.Binary.Valid(-1))
	require.Equal(t, "SPIN", qubo.Spin.String())
}

func TestPair(t *testing.T) {
	require.Equal(t, qubo.Pair{U: "2", V: "10"}, qubo.NewPair("10", "2"))
	require.True(t, qubo.NewPair("a", "a").Diagonal())
	require.Equal(t, "(1,3)", qubo.NewPair("3", "1").String())
}

func TestEnergy_Errors(t *testing.T) {
	q := qubo.NewQUBO("a", "b")
	require.NoError(t, q.Add("a", "b", 1))
	require.ErrorIs(t, q.Add("", "b", 1), qubo.ErrEmptyVariable)

	_, err := q.Energy(qubo.Sample{"a": 1})
	require.ErrorIs(t, err, qubo.ErrMissingVariable)
	_, err = q.Energy(qubo.Sample{"a": 1, "b": -1})
	require.ErrorIs(t, err, qubo.ErrBadValue)

	m := qubo.NewIsing()
	require.ErrorIs(t, m.AddCoupling("a", "a", 1), qubo.ErrSelfCoupling)
	require.ErrorIs(t, m.AddLinear("", 1), qubo.ErrEmptyVariable)
	require.NoError(t, m.AddCoupling("a", "b", 1))
	_, err = m.Energy(qubo.Sample{"a": 1, "b": 0})
	require.ErrorIs(t, err, qubo.ErrBadValue)
}

func TestConversions_RoundTripEnergies(t *testing.T) {
	q, err := qubo.EncodeQUBO(exampleGraph(t))
	require.NoError(t, err)
	require.NoError(t, q.Add("1", "1", 0.5)) // break the pure max-cut symmetry

	ising, offset := q.ToIsing()
	for _, x := range allAssignments(qubo.Binary, q.Variables()) {
		s := make(qubo.Sample, len(x))
		for v, b := range x {
			s[v] = 2*b - 1
		}
		eq, err := q.Energy(x)
		require.NoError(t, err)
		ei, err := ising.Energy(s)
		require.NoError(t, err)
		require.InDelta(t, eq, ei+offset, 1e-9)
	}

	back, off2 := ising.ToQUBO()
	for _, x := range allAssignments(qubo.Binary, q.Variables()) {
		eq, err := q.Energy(x)
		require.NoError(t, err)
		eb, err := back.Energy(x)
		require.NoError(t, err)
		// E_I = E_Q' + off2 and E_Q = E_I + offset
		require.InDelta(t, eq, eb+off2+offset, 1e-9)
	}
}

func TestMatrix_MatchesEnergy(t *testing.T) {
	q, err := qubo.EncodeQUBO(exampleGraph(t))
	require.NoError(t, err)
	m, vars, err := q.Matrix()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, vars)

	lower, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, lower)

	for _, x := range allAssignments(qubo.Binary, vars) {
		vec := make([]float64, len(vars))
		for i, v := range vars {
			vec[i] = float64(x[v])
		}
		got, err := m.QuadraticForm(vec)
		require.NoError(t, err)
		want, err := q.Energy(x)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, _, err = qubo.NewQUBO().Matrix()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
