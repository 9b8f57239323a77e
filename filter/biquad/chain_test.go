package biquad

import (
	"math"
	"testing"
)

func TestChain_Empty(t *testing.T) {
	c := NewChain(nil)
	if c.NumSections() != 0 {
		t.Fatalf("NumSections = %d, want 0", c.NumSections())
	}

	if got := c.ProcessSample(0.7); got != 0.7 {
		t.Fatalf("empty chain must pass through: got %v", got)
	}
}

func TestChain_CascadeOrder(t *testing.T) {
	// Two one-pole sections in series equal one two-pole response.
	coeffs := []Coefficients{
		{B0: 1, A1: -0.5},
		{B0: 1, A1: -0.25},
	}

	chain := NewChain(coeffs)

	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])

	for i := 0; i < 32; i++ {
		x := math.Sin(0.2 * float64(i))
		want := s2.ProcessSample(s1.ProcessSample(x))
		got := chain.ProcessSample(x)
		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: chain %v, manual cascade %v", i, got, want)
		}
	}
}

func TestChain_ProcessBlockMatchesSamples(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.05},
		{B0: 1, A1: -0.5},
	}

	in := make([]float64, 48)
	for i := range in {
		in[i] = math.Cos(0.4 * float64(i))
	}

	bySample := NewChain(coeffs)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = bySample.ProcessSample(x)
	}

	byBlock := NewChain(coeffs)
	got := append([]float64(nil), in...)
	byBlock.ProcessBlock(got)

	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: block %v, sample %v", i, got[i], want[i])
		}
	}
}

func TestChain_SeedStep(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.5, A2: 0.5},
		{B0: 0.5, B1: 0.5, A1: -0.2},
	}

	const x = 1.5
	chain := NewChain(coeffs)
	chain.SeedStep(x)

	g := coeffs[0].DCGain() * coeffs[1].DCGain()
	want := g * x

	for i := 0; i < 16; i++ {
		got := chain.ProcessSample(x)
		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want steady %v", i, got, want)
		}
	}
}

func TestChain_Reset(t *testing.T) {
	chain := NewChain([]Coefficients{{B0: 1, A1: -0.9}, {B0: 1, A1: -0.8}})
	chain.ProcessSample(1)
	chain.Reset()

	for i := 0; i < chain.NumSections(); i++ {
		if chain.Section(i).State() != [2]float64{} {
			t.Fatalf("section %d state after Reset: %v", i, chain.Section(i).State())
		}
	}
}
