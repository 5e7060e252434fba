// SPDX-License-Identifier: MIT

package qubo

import (
	"fmt"

	"github.com/katalvlaran/maxcut/matrix"
)

// QUBO is a quadratic unconstrained binary model over {0,1} variables.
// The zero value is not usable; call NewQUBO.
type QUBO struct {
	vars  map[string]struct{}
	coeff map[Pair]float64
}

// NewQUBO returns an empty model declaring vars (which may stay coefficient-free).
func NewQUBO(vars ...string) *QUBO {
	q := &QUBO{vars: make(map[string]struct{}, len(vars)), coeff: make(map[Pair]float64)}
	for _, v := range vars {
		if v != "" {
			addVar(q.vars, v)
		}
	}

	return q
}

// Vartype returns Binary.
func (q *QUBO) Vartype() Vartype { return Binary }

// Add accumulates bias into the (u,v) coefficient; u == v is a linear term.
func (q *QUBO) Add(u, v string, bias float64) error {
	if u == "" || v == "" {
		return fmt.Errorf("QUBO.Add(%q,%q): %w", u, v, ErrEmptyVariable)
	}
	addVar(q.vars, u)
	addVar(q.vars, v)
	q.coeff[NewPair(u, v)] += bias

	return nil
}

// Get returns the (u,v) coefficient, zero when absent.
func (q *QUBO) Get(u, v string) float64 {
	return q.coeff[NewPair(u, v)]
}

// Variables returns all declared variables in natural order.
func (q *QUBO) Variables() []string { return sortedVars(q.vars) }

// Coefficients returns a copy of the coefficient map.
func (q *QUBO) Coefficients() map[Pair]float64 {
	out := make(map[Pair]float64, len(q.coeff))
	for p, b := range q.coeff {
		out[p] = b
	}

	return out
}

// Len returns the number of stored coefficients (linear + quadratic).
func (q *QUBO) Len() int { return len(q.coeff) }

// Energy evaluates E(x) = Σ Q_pair · x_u · x_v over all stored pairs.
// Every variable must be assigned 0 or 1.
//
// Complexity: O(V + len(Q)).
func (q *QUBO) Energy(x Sample) (float64, error) {
	if err := checkSample(Binary, q.Variables(), x); err != nil {
		return 0, fmt.Errorf("QUBO.Energy: %w", err)
	}
	var e float64
	for p, b := range q.coeff {
		e += b * float64(x[p.U]) * float64(x[p.V])
	}

	return e, nil
}

// Matrix exports the model as an upper-triangular Q matrix whose rows and
// columns follow Variables(); x·Q·xᵀ equals Energy(x).
//
// Errors: matrix.ErrBadShape when the model has no variables.
func (q *QUBO) Matrix() (*matrix.Dense, []string, error) {
	vars := q.Variables()
	m, err := matrix.NewDense(len(vars), len(vars))
	if err != nil {
		return nil, nil, fmt.Errorf("QUBO.Matrix: %w", err)
	}
	pos := make(map[string]int, len(vars))
	for i, v := range vars {
		pos[v] = i
	}
	for p, b := range q.coeff {
		// canonical pairs keep U before V, so this lands on or above the diagonal
		if err = m.Add(pos[p.U], pos[p.V], b); err != nil {
			return nil, nil, fmt.Errorf("QUBO.Matrix: %w", err)
		}
	}

	return m, vars, nil
}

// ToIsing converts the model with x = (s+1)/2:
//
//	h_i = Q_ii/2 + Σ_j Q_ij/4,  J_ij = Q_ij/4,  offset = Σ Q_ii/2 + Σ Q_ij/4
//
// so that E_QUBO(x) = E_Ising(s) + offset.
func (q *QUBO) ToIsing() (*Ising, float64) {
	m := NewIsing(q.Variables()...)
	var offset float64
	for p, b := range q.coeff {
		if p.Diagonal() {
			m.h[p.U] += b / 2
			offset += b / 2
			continue
		}
		m.j[p] += b / 4
		m.h[p.U] += b / 4
		m.h[p.V] += b / 4
		offset += b / 4
	}

	return m, offset
}
