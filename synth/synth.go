// Package synth generates deterministic synthetic photometry traces for
// tests and examples: an exponential photobleaching decay, transient
// responses at chosen event indices, and uniform noise.
package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate in Hz. Non-positive values are
// ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured generator. Defaults: 30 Hz, seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 30, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator's sampling rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Bleach generates a photobleaching-like exponential decay from
// baseline+amplitude down toward baseline with time constant tau (seconds).
func (g *Generator) Bleach(baseline, amplitude, tau float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: bleach samples must be > 0: %d", samples)
	}

	if tau <= 0 {
		return nil, fmt.Errorf("synth: bleach tau must be > 0: %f", tau)
	}

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.sampleRate
		out[i] = baseline + amplitude*math.Exp(-t/tau)
	}

	return out, nil
}

// Transients adds an exponential-kernel transient of the given amplitude
// and decay constant tau (seconds) at each event index, in place, and
// returns signal. Indices outside the signal are ignored.
func (g *Generator) Transients(signal []float64, events []int, amplitude, tau float64) ([]float64, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("synth: transient tau must be > 0: %f", tau)
	}

	kernelLen := int(5 * tau * g.sampleRate)
	if kernelLen < 1 {
		kernelLen = 1
	}

	for _, e := range events {
		if e < 0 || e >= len(signal) {
			continue
		}

		for i := 0; i < kernelLen && e+i < len(signal); i++ {
			t := float64(i) / g.sampleRate
			signal[e+i] += amplitude * math.Exp(-t/tau)
		}
	}

	return signal, nil
}

// Noise generates deterministic uniform noise in [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("synth: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Timestamps generates the time axis matching a signal of the given length:
// i / sampleRate for each sample.
func (g *Generator) Timestamps(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("synth: timestamp samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.sampleRate
	}

	return out, nil
}
