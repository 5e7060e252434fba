// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/solver"
)

const (
	colWidth  = 15
	ruleWidth = 60
)

// Row is one table line derived from a single Record.
type Row struct {
	Partition      cut.Partition
	Energy         float64
	CutSize        int64
	NumOccurrences int
}

// Rows derives one Row per record of ss. Cut sizes come from the energy
// (see cut.SizeFromEnergy) using the total edge weight of g.
func Rows(g *core.Graph, ss *solver.SampleSet) ([]Row, error) {
	if g == nil {
		return nil, fmt.Errorf("Rows: %w", cut.ErrNilGraph)
	}
	w := g.TotalWeight()
	recs := ss.Records()
	out := make([]Row, 0, len(recs))
	for i, r := range recs {
		p, err := cut.Split(g, r.Sample, ss.Vartype())
		if err != nil {
			return nil, fmt.Errorf("Rows: record %d: %w", i, err)
		}
		size, err := cut.SizeFromEnergy(ss.Vartype(), r.Energy, w)
		if err != nil {
			return nil, fmt.Errorf("Rows: record %d: %w", i, err)
		}
		out = append(out, Row{Partition: p, Energy: r.Energy, CutSize: size, NumOccurrences: r.NumOccurrences})
	}

	return out, nil
}

// WriteTable prints the header, the rules and one line per record.
func WriteTable(w io.Writer, g *core.Graph, ss *solver.SampleSet) error {
	rows, err := Rows(g, ss)
	if err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}
	var sb strings.Builder
	rule := strings.Repeat("-", ruleWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(line("Set 0", "Set 1", "Energy", "Cut Size"))
	sb.WriteString(rule + "\n")
	for _, r := range rows {
		sb.WriteString(line(
			FormatSet(r.Partition.S0),
			FormatSet(r.Partition.S1),
			FormatEnergy(r.Energy),
			strconv.FormatInt(r.CutSize, 10),
		))
	}
	if _, err = io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}

	return nil
}

// WriteTrailer prints the closing message naming the saved plot.
func WriteTrailer(w io.Writer, path string) error {
	if _, err := fmt.Fprintf(w, "\nYour plot is saved to %s\n", path); err != nil {
		return fmt.Errorf("WriteTrailer: %w", err)
	}

	return nil
}

func line(a, b, c, d string) string {
	return right(a, colWidth) + right(b, colWidth) + center(c, colWidth) + center(d, colWidth) + "\n"
}

// right pads s on the left to width.
func right(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// center pads s on both sides; an odd remainder goes to the right.
func center(s string, width int) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}

// FormatSet renders ids as "[1, 4]".
func FormatSet(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}

// FormatEnergy renders e the way Python's repr prints a float: shortest
// round-trip digits, ".0" kept on integral values, and scientific notation
// when the decimal exponent is below -4 or at least 16.
func FormatEnergy(e float64) string {
	switch {
	case math.IsNaN(e):
		return "nan"
	case math.IsInf(e, 1):
		return "inf"
	case math.IsInf(e, -1):
		return "-inf"
	}
	sci := strconv.FormatFloat(e, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}
	s := strconv.FormatFloat(e, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// Summary describes the lowest-energy record.
type Summary struct {
	Records        int
	Energy         float64
	CutSize        int64
	NumOccurrences int
	Partition      cut.Partition
}

// Summarize builds the Summary of ss over g.
func Summarize(g *core.Graph, ss *solver.SampleSet) (Summary, error) {
	best, err := ss.Lowest()
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	p, err := cut.Split(g, best.Sample, ss.Vartype())
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	size, err := cut.Size(g, best.Sample)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return Summary{
		Records:        ss.Len(),
		Energy:         best.Energy,
		CutSize:        size,
		NumOccurrences: best.NumOccurrences,
		Partition:      p,
	}, nil
}

// Fields returns s as structured log fields.
func (s Summary) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("records", s.Records),
		zap.Float64("energy", s.Energy),
		zap.Int64("cut_size", s.CutSize),
		zap.Int("num_occurrences", s.NumOccurrences),
		zap.Strings("set0", s.Partition.S0),
		zap.Strings("set1", s.Partition.S1),
	}
}
