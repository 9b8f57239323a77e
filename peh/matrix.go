package peh

import "math"

// Matrix is a trial-by-timepoint table: one row per reference event in
// input order, columns aligned by relative sample offset within the window.
// Rows truncated at a recording boundary are shorter than Cols(); positions
// past a short row's end read as NaN, the missing-value marker.
type Matrix struct {
	name       string
	sampleRate float64
	rows       [][]float64
	cols       int
}

func newMatrix(name string, sampleRate float64, rows [][]float64) *Matrix {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	return &Matrix{
		name:       name,
		sampleRate: sampleRate,
		rows:       rows,
		cols:       cols,
	}
}

// Name returns the label propagated from extraction.
func (m *Matrix) Name() string { return m.name }

// Rows returns the number of trials.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the width of the longest trial.
func (m *Matrix) Cols() int { return m.cols }

// At returns the sample at trial r, offset c. Offsets at or beyond the
// trial's own length return NaN.
func (m *Matrix) At(r, c int) float64 {
	row := m.rows[r]
	if c >= len(row) {
		return math.NaN()
	}

	return row[c]
}

// Row returns the raw (possibly truncated) samples of trial r.
// The returned slice is shared with the Matrix.
func (m *Matrix) Row(r int) []float64 {
	return m.rows[r]
}

// Dense returns the matrix as a fully rectangular [][]float64 with NaN
// filling the tail of truncated rows. The result is a copy.
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, len(m.rows))
	for r, row := range m.rows {
		dense := make([]float64, m.cols)
		copy(dense, row)
		for c := len(row); c < m.cols; c++ {
			dense[c] = math.NaN()
		}
		out[r] = dense
	}

	return out
}

// Mean returns the per-column mean across trials, skipping missing values.
// A column with no finite entries yields NaN.
func (m *Matrix) Mean() []float64 {
	out := make([]float64, m.cols)

	for c := 0; c < m.cols; c++ {
		var sum float64
		var n int
		for _, row := range m.rows {
			if c < len(row) {
				sum += row[c]
				n++
			}
		}

		if n == 0 {
			out[c] = math.NaN()
		} else {
			out[c] = sum / float64(n)
		}
	}

	return out
}

// OffsetSeconds labels the columns as time in seconds since the first
// sample of the window. The labels are positional: for rows truncated on
// the left, the true event-relative time of a given column differs.
func (m *Matrix) OffsetSeconds() []float64 {
	out := make([]float64, m.cols)
	if m.sampleRate <= 0 {
		return out
	}

	for c := range out {
		out[c] = float64(c) / m.sampleRate
	}

	return out
}
