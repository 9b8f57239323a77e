// Package zerophase applies a biquad cascade forward and backward so that
// phase distortion cancels out, with even (edge-reflection) padding to
// suppress boundary transients.
package zerophase

import (
	"github.com/cwbudde/algo-photometry/filter/biquad"
)

type config struct {
	padLen int
}

// Option configures Apply.
type Option func(*config)

// WithPadLen overrides the default edge-extension length.
// Values < 0 are ignored; 0 disables padding.
func WithPadLen(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.padLen = n
		}
	}
}

// Apply filters x through the cascade forward and then backward and returns
// the zero-phase result as a new slice of the same length.
//
// Both ends of x are extended by padLen samples using even extension
// (reflection about the edge sample, without duplicating it); the default
// padLen is 3*(2*numSections+1), clamped to len(x)-1. Before each pass the
// cascade is seeded with the constant-input steady state for the first
// sample of that pass, so a constant signal passes through a lowpass
// cascade unchanged.
func Apply(sections []biquad.Coefficients, x []float64, opts ...Option) []float64 {
	if len(x) == 0 {
		return nil
	}

	cfg := config{padLen: 3 * (2*len(sections) + 1)}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	p := cfg.padLen
	if p > len(x)-1 {
		p = len(x) - 1
	}

	buf := evenExt(x, p)
	chain := biquad.NewChain(sections)

	// Forward pass.
	chain.SeedStep(buf[0])
	chain.ProcessBlock(buf)

	// Backward pass.
	reverse(buf)
	chain.SeedStep(buf[0])
	chain.ProcessBlock(buf)
	reverse(buf)

	out := make([]float64, len(x))
	copy(out, buf[p:p+len(x)])

	return out
}

// evenExt returns x extended by p samples on each side, reflected about the
// first and last samples: [x[p] ... x[1]] ++ x ++ [x[n-2] ... x[n-1-p]].
// p must satisfy p <= len(x)-1.
func evenExt(x []float64, p int) []float64 {
	n := len(x)
	out := make([]float64, n+2*p)

	for i := 0; i < p; i++ {
		out[i] = x[p-i]
	}
	copy(out[p:], x)
	for i := 0; i < p; i++ {
		out[p+n+i] = x[n-2-i]
	}

	return out
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
