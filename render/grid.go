package render

import (
	"github.com/cwbudde/algo-photometry/peh"
)

// matrixGrid adapts a peh.Matrix to plotter.GridXYZ. X is the column offset
// in seconds, Y is the trial number, Z is the sample value (NaN where a
// truncated row has no data; the heatmap leaves those cells blank).
type matrixGrid struct {
	m       *peh.Matrix
	offsets []float64
}

func newMatrixGrid(m *peh.Matrix) matrixGrid {
	return matrixGrid{m: m, offsets: m.OffsetSeconds()}
}

func (g matrixGrid) Dims() (c, r int) {
	return g.m.Cols(), g.m.Rows()
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.m.At(r, c)
}

func (g matrixGrid) X(c int) float64 {
	return g.offsets[c]
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}
