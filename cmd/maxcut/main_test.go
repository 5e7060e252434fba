// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/solver"
	"github.com/katalvlaran/maxcut/solver/solvertest"
)

func exhaustive(solver.ClientConfig, *zap.Logger) (solver.Sampler, error) {
	return solvertest.Exhaustive{}, nil
}

func TestRun_EndToEnd(t *testing.T) {
	for _, scheme := range []string{"qubo", "ising"} {
		t.Run(scheme, func(t *testing.T) {
			dir := t.TempDir()
			plot := filepath.Join(dir, "plot.png")
			var out bytes.Buffer
			err := run(context.Background(), &out, []string{
				"-env-file", filepath.Join(dir, "none.env"),
				"-scheme", scheme, "-plot", plot, "-log-level", "error",
			}, exhaustive)
			require.NoError(t, err)

			text := strings.ToUpper(out.String())
			require.Contains(t, text, "YOUR PLOT IS SAVED")
			require.NotContains(t, text, "ERROR")
			require.NotContains(t, text, "WARNING")
			require.FileExists(t, plot)
		})
	}
}

func TestRun_MissingTokenFailsWithRemoteSampler(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DWAVE_API_TOKEN", "")
	err := run(context.Background(), &bytes.Buffer{}, []string{
		"-env-file", filepath.Join(dir, "none.env"), "-no-plot",
	}, remoteSampler)
	require.ErrorIs(t, err, solver.ErrAuthentication)
}
