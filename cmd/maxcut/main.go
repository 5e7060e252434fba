// SPDX-License-Identifier: MIT

// Command maxcut encodes a graph's Maximum Cut as a QUBO or Ising model,
// samples it on a remote solver, prints the result table and saves a plot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/config"
	"github.com/katalvlaran/maxcut/internal/cli"
	"github.com/katalvlaran/maxcut/logging"
	"github.com/katalvlaran/maxcut/pipeline"
	"github.com/katalvlaran/maxcut/solver"
)

// samplerFactory builds the Sampler for a run.
type samplerFactory func(cfg solver.ClientConfig, log *zap.Logger) (solver.Sampler, error)

func remoteSampler(cfg solver.ClientConfig, log *zap.Logger) (solver.Sampler, error) {
	return solver.NewClient(cfg, solver.WithLogger(log))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Args[1:], remoteSampler)
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "maxcut:", err)
		os.Exit(1)
	}
}

// run wires configuration, logger, sampler and pipeline.
func run(ctx context.Context, out io.Writer, args []string, newSampler samplerFactory) error {
	cfg, done, err := cli.Parse(args, out)
	if err != nil || done {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sampler, err := newSampler(cfg.ClientConfig(), log.Named("solver"))
	if err != nil {
		return err
	}
	cons, err := cfg.Constructor()
	if err != nil {
		return err
	}

	_, err = pipeline.Run(ctx, pipeline.Options{
		Constructor:  cons,
		GraphOptions: cfg.GraphOptions(),
		Vartype:      cfg.Vartype(),
		Params:       cfg.Params(),
		Sampler:      sampler,
		PlotPath:     plotPath(cfg),
		LayoutSeed:   cfg.LayoutSeed,
		Out:          out,
		Logger:       log.Named("pipeline").With(zap.String("scheme", cfg.Scheme)),
	})

	return err
}

func plotPath(cfg *config.Config) string {
	if cfg.NoPlot {
		return ""
	}
	return cfg.PlotPath()
}
