// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/qubo"
)

// Final problem status reported by the service.
const statusCompleted = "COMPLETED"

// problemRequest is the JSON body of POST <endpoint>/problems/.
type problemRequest struct {
	Solver string      `json:"solver,omitempty"`
	Label  string      `json:"label,omitempty"`
	Type   string      `json:"type"`
	Data   problemData `json:"data"`
	Params wireParams  `json:"params"`
}

type problemData struct {
	Format    string       `json:"format"`
	Linear    []linearTerm `json:"linear"`
	Quadratic []quadTerm   `json:"quadratic"`
}

type linearTerm struct {
	V    string  `json:"v"`
	Bias float64 `json:"bias"`
}

type quadTerm struct {
	U    string  `json:"u"`
	V    string  `json:"v"`
	Bias float64 `json:"bias"`
}

type wireParams struct {
	NumReads      int     `json:"num_reads"`
	ChainStrength float64 `json:"chain_strength"`
}

// problemResponse mirrors the service answer: parallel arrays indexed by read.
type problemResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Answer       *struct {
		Variables      []string  `json:"variables"`
		Solutions      [][]int8  `json:"solutions"`
		Energies       []float64 `json:"energies"`
		NumOccurrences []int     `json:"num_occurrences"`
	} `json:"answer,omitempty"`
}

// quboRequest lays out q with linear terms for every variable, then the
// couplings, both in natural order.
func quboRequest(q *qubo.QUBO) problemData {
	vars := q.Variables()
	d := problemData{Format: "bqm-terms", Linear: make([]linearTerm, 0, len(vars))}
	for _, v := range vars {
		d.Linear = append(d.Linear, linearTerm{V: v, Bias: q.Get(v, v)})
	}
	for p, b := range q.Coefficients() {
		if !p.Diagonal() {
			d.Quadratic = append(d.Quadratic, quadTerm{U: p.U, V: p.V, Bias: b})
		}
	}
	sortQuad(d.Quadratic)

	return d
}

func isingRequest(m *qubo.Ising) problemData {
	h := m.H()
	vars := m.Variables()
	d := problemData{Format: "bqm-terms", Linear: make([]linearTerm, 0, len(vars))}
	for _, v := range vars {
		d.Linear = append(d.Linear, linearTerm{V: v, Bias: h[v]})
	}
	for p, b := range m.J() {
		d.Quadratic = append(d.Quadratic, quadTerm{U: p.U, V: p.V, Bias: b})
	}
	sortQuad(d.Quadratic)

	return d
}

func sortQuad(ts []quadTerm) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].U != ts[j].U {
			return core.Less(ts[i].U, ts[j].U)
		}
		return core.Less(ts[i].V, ts[j].V)
	})
}

// records converts the parallel answer arrays into Records, checking that
// every model variable is present in each solution.
func (r *problemResponse) records(vars []string) ([]Record, error) {
	a := r.Answer
	if a == nil {
		return nil, fmt.Errorf("problem %s: no answer", r.ID)
	}
	if len(a.Energies) != len(a.Solutions) {
		return nil, fmt.Errorf("problem %s: %d solutions vs %d energies", r.ID, len(a.Solutions), len(a.Energies))
	}
	if a.NumOccurrences != nil && len(a.NumOccurrences) != len(a.Solutions) {
		return nil, fmt.Errorf("problem %s: %d solutions vs %d occurrence counts", r.ID, len(a.Solutions), len(a.NumOccurrences))
	}
	known := make(map[string]struct{}, len(a.Variables))
	for _, v := range a.Variables {
		known[v] = struct{}{}
	}
	for _, v := range vars {
		if _, ok := known[v]; !ok {
			return nil, fmt.Errorf("problem %s: variable %q missing from answer", r.ID, v)
		}
	}

	out := make([]Record, len(a.Solutions))
	for i, sol := range a.Solutions {
		if len(sol) != len(a.Variables) {
			return nil, fmt.Errorf("problem %s: solution %d has %d values for %d variables", r.ID, i, len(sol), len(a.Variables))
		}
		s := make(qubo.Sample, len(sol))
		for k, v := range a.Variables {
			s[v] = sol[k]
		}
		out[i] = Record{Sample: s, Energy: a.Energies[i], NumOccurrences: 1}
		if a.NumOccurrences != nil {
			out[i].NumOccurrences = a.NumOccurrences[i]
		}
	}

	return out, nil
}
