// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/maxcut/qubo"
)

// Record is one returned read: a full assignment and its energy, kept
// together so that they can never be paired out of step.
type Record struct {
	Sample         qubo.Sample
	Energy         float64
	NumOccurrences int
}

// SampleSet is the ordered result of one sampler call.
// Records are sorted by ascending energy; ties keep the received order.
type SampleSet struct {
	vartype qubo.Vartype
	records []Record
}

// NewSampleSet validates every record against vt and orders them by energy.
// A NumOccurrences below 1 is normalised to 1.
//
// Errors: qubo.ErrUnknownVartype, qubo.ErrBadValue.
func NewSampleSet(vt qubo.Vartype, records []Record) (*SampleSet, error) {
	if vt != qubo.Binary && vt != qubo.Spin {
		return nil, fmt.Errorf("NewSampleSet(%s): %w", vt, qubo.ErrUnknownVartype)
	}
	out := make([]Record, len(records))
	for i, r := range records {
		for v, val := range r.Sample {
			if !vt.Valid(val) {
				return nil, fmt.Errorf("NewSampleSet: record %d, %q = %d (%s): %w", i, v, val, vt, qubo.ErrBadValue)
			}
		}
		s := make(qubo.Sample, len(r.Sample))
		for v, val := range r.Sample {
			s[v] = val
		}
		if r.NumOccurrences < 1 {
			r.NumOccurrences = 1
		}
		out[i] = Record{Sample: s, Energy: r.Energy, NumOccurrences: r.NumOccurrences}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Energy < out[j].Energy })

	return &SampleSet{vartype: vt, records: out}, nil
}

// Vartype returns the value domain of the samples.
func (s *SampleSet) Vartype() qubo.Vartype { return s.vartype }

// Len returns the number of records.
func (s *SampleSet) Len() int { return len(s.records) }

// Records returns the records in order. The slice is a copy; the samples
// are shared and must not be modified.
func (s *SampleSet) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// Lowest returns the first record with minimal energy.
func (s *SampleSet) Lowest() (Record, error) {
	if len(s.records) == 0 {
		return Record{}, ErrEmptySampleSet
	}

	return s.records[0], nil
}
