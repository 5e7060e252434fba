// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/maxcut/qubo"
)

// Default parameters per scheme.
const (
	DefaultNumReads           = 10
	DefaultQUBOChainStrength  = 8
	DefaultIsingChainStrength = 2
)

var validate = validator.New()

// Params are passed to the sampler unchanged. ChainStrength is opaque here:
// the remote service uses it when embedding the problem.
type Params struct {
	NumReads      int     `json:"num_reads" validate:"min=1,max=10000"`
	ChainStrength float64 `json:"chain_strength" validate:"gt=0"`
	Label         string  `json:"label,omitempty" validate:"max=256"`
}

// DefaultParams returns the parameters used for vt when none are configured.
func DefaultParams(vt qubo.Vartype) Params {
	p := Params{NumReads: DefaultNumReads, ChainStrength: DefaultQUBOChainStrength, Label: "Example - Maximum Cut"}
	if vt == qubo.Spin {
		p.ChainStrength = DefaultIsingChainStrength
		p.Label = "Example - Maximum Cut Ising"
	}

	return p
}

// Validate checks the struct tags of p.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}

// Sampler draws low-energy samples from a binary quadratic model.
type Sampler interface {
	SampleQUBO(ctx context.Context, q *qubo.QUBO, p Params) (*SampleSet, error)
	SampleIsing(ctx context.Context, m *qubo.Ising, p Params) (*SampleSet, error)
}
