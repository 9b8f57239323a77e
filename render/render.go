// Package render draws traces and trial matrices. It is a read-only
// collaborator over the data model: callers own all file handling and
// receive PNG bytes through an io.Writer.
package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-photometry/peh"
	"github.com/cwbudde/algo-photometry/trace"
)

// Trace writes a PNG line plot of the trace to w: timestamps on the x-axis,
// signal on the y-axis.
func Trace(t *trace.Trace, w io.Writer) error {
	if len(t.Signal) != len(t.Timestamps) {
		return fmt.Errorf("render: signal and timestamps lengths differ: %d vs %d",
			len(t.Signal), len(t.Timestamps))
	}

	xys := make(plotter.XYs, len(t.Signal))
	for i := range xys {
		xys[i].X = t.Timestamps[i]
		xys[i].Y = t.Signal[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: failed to build line: %w", err)
	}

	p := plot.New()
	p.Title.Text = t.Name
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Signal"
	p.Add(line)

	wt, err := p.WriterTo(15*vg.Centimeter, 5*vg.Centimeter, "png")
	if err != nil {
		return fmt.Errorf("render: failed to render trace: %w", err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: failed to write trace image: %w", err)
	}

	return nil
}

// PEH writes a PNG figure of the trial matrix to w: a heatmap of all trials
// on top and the across-trial mean trace below. Missing values (truncated
// rows) are left blank in the heatmap and skipped by the mean.
func PEH(m *peh.Matrix, w io.Writer) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return fmt.Errorf("render: trial matrix must not be empty: %dx%d", m.Rows(), m.Cols())
	}

	heat := plot.New()
	heat.Title.Text = m.Name()
	heat.X.Label.Text = "Time from window start (s)"
	heat.Y.Label.Text = "Trial"
	heat.Add(plotter.NewHeatMap(newMatrixGrid(m), palette.Heat(12, 1)))

	offsets := m.OffsetSeconds()
	mean := m.Mean()
	xys := make(plotter.XYs, len(mean))
	for i := range xys {
		xys[i].X = offsets[i]
		xys[i].Y = mean[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: failed to build mean line: %w", err)
	}

	avg := plot.New()
	avg.X.Label.Text = "Time from window start (s)"
	avg.Y.Label.Text = "Mean signal"
	avg.Add(line)

	img := vgimg.New(15*vg.Centimeter, 12*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1}

	plots := [][]*plot.Plot{{heat}, {avg}}
	canvases := plot.Align(plots, tiles, dc)
	heat.Draw(canvases[0][0])
	avg.Draw(canvases[1][0])

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("render: failed to write trial figure: %w", err)
	}

	return nil
}
