// Package peh extracts peri-event windows ("trials") from a continuous
// trace: fixed-width slices around a set of reference events, collected
// into a trial-by-timepoint Matrix.
package peh

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/trace"
)

// Window gives the extent of each trial around its reference event,
// in seconds. Negative values are treated as their absolute value.
type Window struct {
	Before float64
	After  float64
}

type config struct {
	byIndex bool
	name    string
}

// Option configures Extract.
type Option func(*config)

// ByIndex interprets the reference points as sample indices into the
// trace's signal instead of timestamp values.
func ByIndex() Option {
	return func(cfg *config) { cfg.byIndex = true }
}

// WithName labels the resulting Matrix. The label is propagated for
// downstream use only; extraction ignores it.
func WithName(name string) Option {
	return func(cfg *config) { cfg.name = name }
}

// Extract builds one trial row per reference point, in input order.
//
// In the default timestamp mode each reference must match a timestamp of t
// exactly (first match wins); a reference with no exact match fails the
// whole call, since a trial matrix silently missing a row would be
// analytically misleading. In ByIndex mode the references are used as
// sample indices directly.
//
// Window bounds are converted to sample counts as
//
//	start = int(i - |Before|*SampleRate)
//	end   = int(i + |After|*SampleRate)
//
// truncating the combined expression toward zero, and the half-open slice
// Signal[start:end) becomes the row. Windows that overrun the recording are
// clamped to the available range, so rows near the edges come out shorter
// than the nominal width; this is expected, not an error.
func Extract(t *trace.Trace, refs []float64, w Window, opts ...Option) (*Matrix, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if t.SampleRate <= 0 {
		return nil, fmt.Errorf("peh: sample rate must be > 0: %f", t.SampleRate)
	}

	before := math.Abs(w.Before) * t.SampleRate
	after := math.Abs(w.After) * t.SampleRate

	rows := make([][]float64, 0, len(refs))

	for _, ref := range refs {
		pos := ref
		if !cfg.byIndex {
			i, ok := findTimestamp(t.Timestamps, ref)
			if !ok {
				return nil, fmt.Errorf("peh: no exact timestamp match for reference %v", ref)
			}
			pos = float64(i)
		}

		start := int(pos - before)
		end := int(pos + after)

		start = clamp(start, 0, len(t.Signal))
		end = clamp(end, start, len(t.Signal))

		row := make([]float64, end-start)
		copy(row, t.Signal[start:end])
		rows = append(rows, row)
	}

	return newMatrix(cfg.name, t.SampleRate, rows), nil
}

// findTimestamp returns the index of the first element of timestamps that
// equals ts exactly.
func findTimestamp(timestamps []float64, ts float64) (int, bool) {
	for i, v := range timestamps {
		if v == ts {
			return i, true
		}
	}

	return 0, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
