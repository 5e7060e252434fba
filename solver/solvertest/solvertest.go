// SPDX-License-Identifier: MIT

// Package solvertest provides in-process substitutes for solver.Sampler.
//
// Exhaustive enumerates every assignment of a small model and returns the
// NumReads lowest-energy ones; it stands in for the remote service in
// tests and examples. Static replays a fixed answer and records each call.
package solvertest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/solver"
)

// MaxVariables bounds the model size Exhaustive accepts (2^20 assignments).
const MaxVariables = 20

// ErrTooLarge is returned when a model exceeds MaxVariables.
var ErrTooLarge = errors.New("solvertest: model too large for exhaustive enumeration")

// Exhaustive is a deterministic brute-force Sampler.
type Exhaustive struct{}

var _ solver.Sampler = Exhaustive{}

// SampleQUBO enumerates q.
func (Exhaustive) SampleQUBO(ctx context.Context, q *qubo.QUBO, p solver.Params) (*solver.SampleSet, error) {
	if q == nil {
		return nil, fmt.Errorf("Exhaustive.SampleQUBO: %w", solver.ErrNilModel)
	}
	return enumerate(ctx, qubo.Binary, q.Variables(), q.Energy, p)
}

// SampleIsing enumerates m.
func (Exhaustive) SampleIsing(ctx context.Context, m *qubo.Ising, p solver.Params) (*solver.SampleSet, error) {
	if m == nil {
		return nil, fmt.Errorf("Exhaustive.SampleIsing: %w", solver.ErrNilModel)
	}
	return enumerate(ctx, qubo.Spin, m.Variables(), m.Energy, p)
}

func enumerate(ctx context.Context, vt qubo.Vartype, vars []string, energy func(qubo.Sample) (float64, error), p solver.Params) (*solver.SampleSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(vars) > MaxVariables {
		return nil, fmt.Errorf("%d variables: %w", len(vars), ErrTooLarge)
	}

	n := 1 << len(vars)
	all := make([]solver.Record, 0, n)
	for mask := 0; mask < n; mask++ {
		if mask&0xfff == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		s := make(qubo.Sample, len(vars))
		for i, v := range vars {
			if mask&(1<<i) != 0 {
				s[v] = vt.High()
			} else {
				s[v] = vt.Low()
			}
		}
		e, err := energy(s)
		if err != nil {
			return nil, err
		}
		all = append(all, solver.Record{Sample: s, Energy: e, NumOccurrences: 1})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Energy < all[j].Energy })
	if len(all) > p.NumReads {
		all = all[:p.NumReads]
	}

	return solver.NewSampleSet(vt, all)
}

// Call is one recorded Static invocation.
type Call struct {
	Vartype   qubo.Vartype
	Variables []string
	Params    solver.Params
}

// Static returns Set (or Err) on every call and records the calls.
type Static struct {
	Set *solver.SampleSet
	Err error

	mu    sync.Mutex
	calls []Call
}

var _ solver.Sampler = (*Static)(nil)

// SampleQUBO records the call and replays the canned answer.
func (s *Static) SampleQUBO(_ context.Context, q *qubo.QUBO, p solver.Params) (*solver.SampleSet, error) {
	if q == nil {
		return nil, solver.ErrNilModel
	}
	return s.replay(qubo.Binary, q.Variables(), p)
}

// SampleIsing records the call and replays the canned answer.
func (s *Static) SampleIsing(_ context.Context, m *qubo.Ising, p solver.Params) (*solver.SampleSet, error) {
	if m == nil {
		return nil, solver.ErrNilModel
	}
	return s.replay(qubo.Spin, m.Variables(), p)
}

// Calls returns the recorded invocations in order.
func (s *Static) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Static) replay(vt qubo.Vartype, vars []string, p solver.Params) (*solver.SampleSet, error) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Vartype: vt, Variables: vars, Params: p})
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return s.Set, nil
}
