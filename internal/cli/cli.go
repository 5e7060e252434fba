// SPDX-License-Identifier: MIT

// Package cli parses the maxcut command line into a validated config.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/maxcut/config"
)

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// Parse loads the configuration named by -config, applies every flag that
// was set explicitly and validates the result. It returns done == true when
// the program should exit cleanly (for -h).
func Parse(args []string, out io.Writer) (cfg *config.Config, done bool, err error) {
	fs := flag.NewFlagSet("maxcut", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
maxcut - solve Maximum Cut on a remote QUBO/Ising sampler.

Usage:
  maxcut [options]

Credentials come from DWAVE_API_TOKEN (and optionally DWAVE_API_ENDPOINT,
DWAVE_API_SOLVER), read from the environment or a .env file.

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	var (
		configPath = fs.String("config", "", "YAML configuration file.")
		envFile    = fs.String("env-file", ".env", "dotenv file with solver credentials.")
		scheme     = fs.String("scheme", def.Scheme, "Encoding: 'qubo' or 'ising'.")
		edges      = fs.String("edges", "", "Edge list 'u-v,u-v[:w]' (IDs without '-'); :w needs -weighted; empty uses the 5-node example.")
		weighted   = fs.Bool("weighted", false, "Read ':w' edge weights.")
		numReads   = fs.Int("num-reads", def.NumReads, "Number of reads requested from the sampler.")
		chain      = fs.Float64("chain-strength", 0, "Chain strength; 0 uses 8 (qubo) or 2 (ising).")
		label      = fs.String("label", "", "Problem label shown by the solver service.")
		plot       = fs.String("plot", "", "PNG output path; empty uses maxcut_plot[_ising].png.")
		noPlot     = fs.Bool("no-plot", false, "Skip rendering the plot.")
		seed       = fs.Int64("seed", 0, "Layout seed for the plot.")
		endpoint   = fs.String("endpoint", "", "Solver API endpoint.")
		solverName = fs.String("solver", "", "Solver name.")
		logLevel   = fs.String("log-level", def.Log.Level, "Log level: debug, info, warn, error.")
		logFormat  = fs.String("log-format", def.Log.Format, "Log format: console or json.")
	)

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "unexpected arguments: " + strconv.Quote(fs.Arg(0))}
	}

	cfg, err = config.Load(*configPath, *envFile)
	if err != nil {
		return nil, false, err
	}

	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scheme":
			cfg.Scheme = *scheme
		case "edges":
			cfg.Edges, perr = config.ParseEdges(*edges)
		case "weighted":
			cfg.Weighted = *weighted
		case "num-reads":
			cfg.NumReads = *numReads
		case "chain-strength":
			cfg.ChainStrength = *chain
		case "label":
			cfg.Label = *label
		case "plot":
			cfg.Plot = *plot
		case "no-plot":
			cfg.NoPlot = *noPlot
		case "seed":
			cfg.LayoutSeed = *seed
		case "endpoint":
			cfg.Solver.Endpoint = *endpoint
		case "solver":
			cfg.Solver.Name = *solverName
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if perr != nil {
		return nil, false, perr
	}
	if err = cfg.Validate(); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}
