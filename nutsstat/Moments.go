// Package nutsstat collects running summaries over a draw sequence
// produced by sampler.Sampler: per-coordinate mean/standard deviation,
// tree-depth and divergence histograms, and effective sample size.
// None of it feeds back into the sampler; it exists purely to let a
// caller (main.go's demo, and the test suite) check the quantified
// invariants in spec.md's testable-properties section.
package nutsstat

import "gonum.org/v1/gonum/stat"

// Moments accumulates draws column-wise and reports their mean and
// standard deviation per coordinate, in the same batch style the
// upstream agent code uses for advantage normalization
// (stat.Mean/stat.StdDev over a full buffer rather than an online
// Welford update).
type Moments struct {
	dim      int
	columns  [][]float64
	numDraws int
}

// NewMoments returns a Moments accumulator for draws of the given
// dimension.
func NewMoments(dim int) *Moments {
	columns := make([][]float64, dim)
	for i := range columns {
		columns[i] = nil
	}
	return &Moments{dim: dim, columns: columns}
}

// Record appends a draw to the accumulator. It panics if len(draw) !=
// the configured dimension, the same precondition sampler.Sampler.Draw
// guarantees on its return value.
func (m *Moments) Record(draw []float64) {
	if len(draw) != m.dim {
		panic("nutsstat: Record: draw dimension mismatch")
	}
	for i, v := range draw {
		m.columns[i] = append(m.columns[i], v)
	}
	m.numDraws++
}

// NumDraws returns the number of draws recorded so far.
func (m *Moments) NumDraws() int {
	return m.numDraws
}

// Mean returns the per-coordinate sample mean.
func (m *Moments) Mean() []float64 {
	out := make([]float64, m.dim)
	for i, col := range m.columns {
		out[i] = stat.Mean(col, nil)
	}
	return out
}

// StdDev returns the per-coordinate sample standard deviation.
func (m *Moments) StdDev() []float64 {
	out := make([]float64, m.dim)
	for i, col := range m.columns {
		out[i] = stat.StdDev(col, nil)
	}
	return out
}

// Column returns the recorded values for coordinate i, without
// copying. Callers must not mutate the result.
func (m *Moments) Column(i int) []float64 {
	return m.columns[i]
}
