// SPDX-License-Identifier: MIT

package qubo

import "fmt"

// Ising is a spin model: linear biases h and couplings J over {-1,+1}.
// Every declared variable has an h entry (possibly zero).
type Ising struct {
	h map[string]float64
	j map[Pair]float64
}

// NewIsing returns an empty model declaring vars with h = 0.
func NewIsing(vars ...string) *Ising {
	m := &Ising{h: make(map[string]float64, len(vars)), j: make(map[Pair]float64)}
	for _, v := range vars {
		if v != "" {
			m.h[v] += 0
		}
	}

	return m
}

// Vartype returns Spin.
func (m *Ising) Vartype() Vartype { return Spin }

// AddLinear accumulates bias into h_v.
func (m *Ising) AddLinear(v string, bias float64) error {
	if v == "" {
		return fmt.Errorf("Ising.AddLinear: %w", ErrEmptyVariable)
	}
	m.h[v] += bias

	return nil
}

// AddCoupling accumulates bias into J_uv and declares both spins.
// Errors: ErrEmptyVariable, ErrSelfCoupling.
func (m *Ising) AddCoupling(u, v string, bias float64) error {
	if u == "" || v == "" {
		return fmt.Errorf("Ising.AddCoupling(%q,%q): %w", u, v, ErrEmptyVariable)
	}
	if u == v {
		return fmt.Errorf("Ising.AddCoupling(%q,%q): %w", u, v, ErrSelfCoupling)
	}
	m.h[u] += 0
	m.h[v] += 0
	m.j[NewPair(u, v)] += bias

	return nil
}

// H returns a copy of the linear biases.
func (m *Ising) H() map[string]float64 {
	out := make(map[string]float64, len(m.h))
	for v, b := range m.h {
		out[v] = b
	}

	return out
}

// J returns a copy of the couplings.
func (m *Ising) J() map[Pair]float64 {
	out := make(map[Pair]float64, len(m.j))
	for p, b := range m.j {
		out[p] = b
	}

	return out
}

// Variables returns all spins in natural order.
func (m *Ising) Variables() []string {
	set := make(map[string]struct{}, len(m.h))
	for v := range m.h {
		addVar(set, v)
	}

	return sortedVars(set)
}

// Energy evaluates E(s) = Σ h_i·s_i + Σ J_ij·s_i·s_j.
// Every spin must be assigned -1 or +1.
func (m *Ising) Energy(s Sample) (float64, error) {
	if err := checkSample(Spin, m.Variables(), s); err != nil {
		return 0, fmt.Errorf("Ising.Energy: %w", err)
	}
	var e float64
	for v, b := range m.h {
		e += b * float64(s[v])
	}
	for p, b := range m.j {
		e += b * float64(s[p.U]) * float64(s[p.V])
	}

	return e, nil
}

// ToQUBO converts the model with s = 2x-1:
//
//	Q_ii = 2h_i − 2Σ_j J_ij,  Q_ij = 4J_ij,  offset = −Σh + ΣJ
//
// so that E_Ising(s) = E_QUBO(x) + offset.
func (m *Ising) ToQUBO() (*QUBO, float64) {
	q := NewQUBO(m.Variables()...)
	var offset float64
	for v, b := range m.h {
		q.coeff[NewPair(v, v)] += 2 * b
		offset -= b
	}
	for p, b := range m.j {
		q.coeff[p] += 4 * b
		q.coeff[NewPair(p.U, p.U)] -= 2 * b
		q.coeff[NewPair(p.V, p.V)] -= 2 * b
		offset += b
	}

	return q, offset
}
