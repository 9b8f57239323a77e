// Package spectrum computes a one-shot power spectrum of a trace. It is a
// quality-control aid for conditioning: bleaching drift shows up as
// low-frequency power and sensor noise as a high-frequency floor, which
// guides the choice of debleach and low-pass cutoffs.
package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-photometry/trace"
)

// Power returns the one-sided squared-magnitude spectrum of the trace's
// signal and the matching frequency axis in Hz.
//
// The signal is Hann-windowed and zero-padded to the next power of two;
// bins run from DC to Nyquist inclusive, freqs[k] = k*SampleRate/fftSize.
func Power(t *trace.Trace) (freqs, power []float64, err error) {
	n := len(t.Signal)
	if n == 0 {
		return nil, nil, fmt.Errorf("spectrum: signal must not be empty")
	}

	if t.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("spectrum: sample rate must be > 0: %f", t.SampleRate)
	}

	fftSize := nextPowerOf2(n)
	if fftSize < 2 {
		fftSize = 2
	}

	in := make([]complex128, fftSize)
	for i, x := range t.Signal {
		in[i] = complex(x*hann(i, n), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power = make([]float64, bins)
	vecmath.Power(power, re, im)

	freqs = make([]float64, bins)
	binHz := t.SampleRate / float64(fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return freqs, power, nil
}

// hann evaluates the Hann window of length n at sample i.
func hann(i, n int) float64 {
	if n < 2 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
