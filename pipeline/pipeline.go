// SPDX-License-Identifier: MIT

// Package pipeline runs one Max-Cut job end to end:
//
//	build graph → encode (QUBO or Ising) → sample → table → plot
//
// Every step runs once, in order; the first error stops the run and is
// returned unchanged apart from step context.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/report"
	"github.com/katalvlaran/maxcut/solver"
	"github.com/katalvlaran/maxcut/visual"
)

// ErrNoSampler is returned when Options.Sampler is nil.
var ErrNoSampler = errors.New("pipeline: no sampler configured")

// Options describe one run.
type Options struct {
	// Graph source; nil Constructor means builder.MaxCutExample().
	Constructor  builder.Constructor
	GraphOptions []core.GraphOption

	Vartype qubo.Vartype
	Params  solver.Params
	Sampler solver.Sampler

	// PlotPath empty skips rendering and the trailer.
	PlotPath   string
	LayoutSeed int64

	// Out receives the table; nil discards it.
	Out    io.Writer
	Logger *zap.Logger
}

// Result carries what a run produced.
type Result struct {
	Graph     *core.Graph
	SampleSet *solver.SampleSet
	Best      solver.Record
	Partition cut.Partition
	PlotPath  string
}

// Run executes the pipeline. The sampler call is the only blocking step.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Sampler == nil {
		return nil, ErrNoSampler
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	cons := opts.Constructor
	if cons == nil {
		cons = builder.MaxCutExample()
	}

	g, err := builder.BuildGraph(opts.GraphOptions, nil, cons)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	log.Debug("graph built", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	ss, err := sample(ctx, g, opts.Vartype, opts.Sampler, opts.Params, log)
	if err != nil {
		return nil, err
	}

	if err = report.WriteTable(out, g, ss); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	sum, err := report.Summarize(g, ss)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	log.Info("best sample", sum.Fields()...)

	best, _ := ss.Lowest()
	res := &Result{Graph: g, SampleSet: ss, Best: best, Partition: sum.Partition}

	if opts.PlotPath == "" {
		log.Debug("plot skipped")
		return res, nil
	}
	if err = visual.Render(opts.PlotPath, g, best.Sample, ss.Vartype(), visual.WithSeed(opts.LayoutSeed)); err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	log.Debug("plot written", zap.String("path", opts.PlotPath))
	if err = report.WriteTrailer(out, opts.PlotPath); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	res.PlotPath = opts.PlotPath

	return res, nil
}

// sample encodes g for vt and calls the matching sampler method.
func sample(ctx context.Context, g *core.Graph, vt qubo.Vartype, s solver.Sampler, p solver.Params, log *zap.Logger) (*solver.SampleSet, error) {
	switch vt {
	case qubo.Binary:
		q, err := qubo.EncodeQUBO(g)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		log.Debug("qubo encoded", zap.Int("coefficients", q.Len()))
		ss, err := s.SampleQUBO(ctx, q, p)
		if err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		return ss, nil
	case qubo.Spin:
		m, err := qubo.EncodeIsing(g)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		log.Debug("ising encoded", zap.Int("couplings", len(m.J())))
		ss, err := s.SampleIsing(ctx, m, p)
		if err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		return ss, nil
	}

	return nil, fmt.Errorf("encode: %s: %w", vt, qubo.ErrUnknownVartype)
}
