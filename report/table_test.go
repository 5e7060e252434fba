// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/report"
	"github.com/katalvlaran/maxcut/solver"
)

func exampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.MaxCutExample())
	require.NoError(t, err)
	return g
}

func TestWriteTable_QUBO(t *testing.T) {
	ss, err := solver.NewSampleSet(qubo.Binary, []solver.Record{
		{Sample: qubo.Sample{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, Energy: 0},
		{Sample: qubo.Sample{"1": 1, "2": 0, "3": 0, "4": 1, "5": 0}, Energy: -5, NumOccurrences: 4},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, exampleGraph(t), ss))

	rule := strings.Repeat("-", 60)
	want := rule + "\n" +
		"          Set 0          Set 1    Energy        Cut Size    \n" +
		rule + "\n" +
		"      [2, 3, 5]         [1, 4]     -5.0             5       \n" +
		"[1, 2, 3, 4, 5]             []      0.0             0       \n"
	require.Equal(t, want, buf.String())
}

func TestWriteTable_IsingCutFromEnergy(t *testing.T) {
	g := exampleGraph(t)
	m, err := qubo.EncodeIsing(g)
	require.NoError(t, err)

	s := qubo.Sample{"1": 1, "2": -1, "3": -1, "4": 1, "5": -1}
	e, err := m.Energy(s)
	require.NoError(t, err)
	require.Equal(t, -4.0, e)

	ss, err := solver.NewSampleSet(qubo.Spin, []solver.Record{{Sample: s, Energy: e}})
	require.NoError(t, err)

	rows, err := report.Rows(g, ss)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(5), rows[0].CutSize)
	require.Equal(t, cut.Partition{S0: []string{"2", "3", "5"}, S1: []string{"1", "4"}}, rows[0].Partition)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, g, ss))
	require.Contains(t, buf.String(), "     -4.0      ")
}

func TestWriteTable_Errors(t *testing.T) {
	ss, err := solver.NewSampleSet(qubo.Binary, []solver.Record{{Sample: qubo.Sample{"1": 1}, Energy: 0}})
	require.NoError(t, err)

	err = report.WriteTable(&bytes.Buffer{}, exampleGraph(t), ss)
	require.ErrorIs(t, err, cut.ErrMissingVertex)

	err = report.WriteTable(&bytes.Buffer{}, nil, ss)
	require.ErrorIs(t, err, cut.ErrNilGraph)

	empty, err := solver.NewSampleSet(qubo.Binary, nil)
	require.NoError(t, err)
	require.ErrorIs(t, report.WriteTable(failWriter{}, exampleGraph(t), empty), errWrite)
}

func TestFormatting(t *testing.T) {
	require.Equal(t, "[]", report.FormatSet(nil))
	require.Equal(t, "[1, 10]", report.FormatSet([]string{"1", "10"}))
	require.Equal(t, "-5.0", report.FormatEnergy(-5))
	require.Equal(t, "0.0", report.FormatEnergy(0))
	require.Equal(t, "-4.25", report.FormatEnergy(-4.25))
	require.Equal(t, "0.0001", report.FormatEnergy(1e-4))
	require.Equal(t, "1e-05", report.FormatEnergy(1e-5))
	require.Equal(t, "-2.5e-07", report.FormatEnergy(-2.5e-7))
	require.Equal(t, "1234567890123456.0", report.FormatEnergy(1234567890123456))
	require.Equal(t, "1e+16", report.FormatEnergy(1e16))
	require.Equal(t, "-1.5e+20", report.FormatEnergy(-1.5e20))
	require.Equal(t, "-0.0", report.FormatEnergy(math.Copysign(0, -1)))
	require.Equal(t, "inf", report.FormatEnergy(math.Inf(1)))
	require.Equal(t, "-inf", report.FormatEnergy(math.Inf(-1)))
	require.Equal(t, "nan", report.FormatEnergy(math.NaN()))
}

func TestWriteTrailer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTrailer(&buf, "maxcut_plot.png"))
	require.Equal(t, "\nYour plot is saved to maxcut_plot.png\n", buf.String())
}

func TestSummarize(t *testing.T) {
	ss, err := solver.NewSampleSet(qubo.Binary, []solver.Record{
		{Sample: qubo.Sample{"1": 0, "2": 1, "3": 1, "4": 0, "5": 1}, Energy: -5, NumOccurrences: 3},
	})
	require.NoError(t, err)

	sum, err := report.Summarize(exampleGraph(t), ss)
	require.NoError(t, err)
	require.Equal(t, int64(5), sum.CutSize)
	require.Equal(t, 3, sum.NumOccurrences)
	require.Equal(t, []string{"1", "4"}, sum.Partition.S0)
	require.Len(t, sum.Fields(), 6)

	empty, err := solver.NewSampleSet(qubo.Binary, nil)
	require.NoError(t, err)
	_, err = report.Summarize(exampleGraph(t), empty)
	require.ErrorIs(t, err, solver.ErrEmptySampleSet)
}

var errWrite = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }
