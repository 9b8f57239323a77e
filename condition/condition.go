// Package condition provides the photometry conditioning operations:
// high-pass "debleaching", low-pass filtering, and z-scoring.
//
// All operations mutate the trace's Signal in place with a same-length
// sequence and return the same trace, so they can be sequenced directly or
// through a Pipeline. Timestamps and SampleRate are never touched. Filter
// order (3), zero-phase application, and even padding are fixed design
// choices, not parameters.
package condition

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/filter/design"
	"github.com/cwbudde/algo-photometry/filter/zerophase"
	"github.com/cwbudde/algo-photometry/stats"
	"github.com/cwbudde/algo-photometry/trace"
)

// butterworthOrder is the fixed order of every conditioning filter.
const butterworthOrder = 3

// Debleach removes slow photobleaching drift from the trace: a 3rd-order
// Butterworth high-pass at lowCutoff (Hz), applied forward and backward
// (zero-phase) with even edge padding. Returns the mutated trace.
func Debleach(t *trace.Trace, lowCutoff float64) (*trace.Trace, error) {
	if err := checkCutoff("debleach low cutoff", lowCutoff, t.SampleRate); err != nil {
		return nil, err
	}

	sections := design.ButterworthHP(lowCutoff, butterworthOrder, t.SampleRate)
	y := zerophase.Apply(sections, t.Signal)
	copy(t.Signal, y)

	return t, nil
}

// LowPass removes high-frequency noise from the trace: a 3rd-order
// Butterworth low-pass at highCutoff (Hz), applied forward and backward
// (zero-phase) with even edge padding. Returns the mutated trace.
func LowPass(t *trace.Trace, highCutoff float64) (*trace.Trace, error) {
	if err := checkCutoff("low-pass high cutoff", highCutoff, t.SampleRate); err != nil {
		return nil, err
	}

	sections := design.ButterworthLP(highCutoff, butterworthOrder, t.SampleRate)
	y := zerophase.Apply(sections, t.Signal)
	copy(t.Signal, y)

	return t, nil
}

// ZScore standardizes the trace in place: each sample x becomes
// (x - mean) / std with population statistics (no Bessel correction).
//
// A constant signal has std == 0; the division is not trapped and the
// result is non-finite (±Inf or NaN). Callers that need to guard against
// degenerate recordings must check the input themselves.
func ZScore(t *trace.Trace) *trace.Trace {
	mean, variance := stats.MeanVariance(t.Signal)
	std := math.Sqrt(variance)

	for i, x := range t.Signal {
		t.Signal[i] = (x - mean) / std
	}

	return t
}

func checkCutoff(what string, freq, sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("condition: sample rate must be > 0: %f", sampleRate)
	}

	if freq <= 0 || freq >= sampleRate/2 {
		return fmt.Errorf("condition: %s must be in (0, %f): %f", what, sampleRate/2, freq)
	}

	return nil
}
