// SPDX-License-Identifier: MIT

package qubo

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/maxcut/core"
)

// Vartype is the value domain of model variables.
type Vartype int

const (
	// Binary variables take values in {0,1} (QUBO).
	Binary Vartype = iota + 1
	// Spin variables take values in {-1,+1} (Ising).
	Spin
)

// ParseVartype accepts "qubo"/"binary" and "ising"/"spin" (case-insensitive).
func ParseVartype(s string) (Vartype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qubo", "binary":
		return Binary, nil
	case "ising", "spin":
		return Spin, nil
	}

	return 0, fmt.Errorf("ParseVartype(%q): %w", s, ErrUnknownVartype)
}

// String returns "BINARY" or "SPIN".
func (t Vartype) String() string {
	switch t {
	case Binary:
		return "BINARY"
	case Spin:
		return "SPIN"
	}

	return fmt.Sprintf("Vartype(%d)", int(t))
}

// Low is the value that places a variable in Set 0 (0 for Binary, -1 for Spin).
func (t Vartype) Low() int8 {
	if t == Spin {
		return -1
	}

	return 0
}

// High is the value that places a variable in Set 1 (always 1).
func (t Vartype) High() int8 { return 1 }

// Valid reports whether v belongs to the domain of t.
func (t Vartype) Valid(v int8) bool {
	return v == t.Low() || v == t.High()
}

// Pair is an unordered pair of variables in canonical order (U ≤ V by core.Less).
type Pair struct {
	U, V string
}

// NewPair returns the canonical Pair of a and b.
func NewPair(a, b string) Pair {
	if core.Less(b, a) {
		return Pair{U: b, V: a}
	}

	return Pair{U: a, V: b}
}

// Diagonal reports whether p is a linear term (U == V).
func (p Pair) Diagonal() bool { return p.U == p.V }

// String renders the pair as "(u,v)".
func (p Pair) String() string { return "(" + p.U + "," + p.V + ")" }

// Sample is one full assignment: variable → value.
type Sample map[string]int8

// checkSample verifies that s assigns a valid value to every variable.
func checkSample(t Vartype, vars []string, s Sample) error {
	for _, v := range vars {
		val, ok := s[v]
		if !ok {
			return fmt.Errorf("variable %q: %w", v, ErrMissingVariable)
		}
		if !t.Valid(val) {
			return fmt.Errorf("variable %q = %d (%s): %w", v, val, t, ErrBadValue)
		}
	}

	return nil
}

// addVar inserts v into the set if absent.
func addVar(set map[string]struct{}, v string) {
	set[v] = struct{}{}
}

// sortedVars returns the keys of set in natural order.
func sortedVars(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	core.SortIDs(out)

	return out
}
