package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-photometry/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// magnitudeDB evaluates the cascade's magnitude response at freq (Hz).
func magnitudeDB(sections []biquad.Coefficients, freq, sampleRate float64) float64 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	h := complex(1, 0)
	for _, s := range sections {
		num := complex(s.B0, 0) + complex(s.B1, 0)*z1 + complex(s.B2, 0)*z2
		den := complex(1, 0) + complex(s.A1, 0)*z1 + complex(s.A2, 0)*z2
		h *= num / den
	}

	return 20 * math.Log10(cmplx.Abs(h))
}

func TestButterworth_SectionCount(t *testing.T) {
	sr := 30.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		if got := ButterworthLP(2, order, sr); len(got) != want {
			t.Fatalf("LP order %d: sections=%d, want %d", order, len(got), want)
		}
		if got := ButterworthHP(2, order, sr); len(got) != want {
			t.Fatalf("HP order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworth_OddOrderHasFirstOrderSection(t *testing.T) {
	sections := ButterworthHP(0.5, 3, 30)
	last := sections[len(sections)-1]
	if last.B2 != 0 || last.A2 != 0 {
		t.Fatalf("odd order: final section not first-order: %+v", last)
	}
}

func TestButterworth_InvalidOrder(t *testing.T) {
	if got := ButterworthLP(2, 0, 30); got != nil {
		t.Fatalf("order 0: got %v, want nil", got)
	}

	if got := ButterworthHP(2, -3, 30); got != nil {
		t.Fatalf("negative order: got %v, want nil", got)
	}
}

func TestButterworthLP_UnityDCGain(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		sections := ButterworthLP(2, order, 30)

		g := 1.0
		for _, s := range sections {
			g *= s.DCGain()
		}

		if !almostEqual(g, 1, 1e-9) {
			t.Fatalf("order %d: LP DC gain = %v, want 1", order, g)
		}
	}
}

func TestButterworthHP_ZeroDCGain(t *testing.T) {
	sections := ButterworthHP(0.5, 3, 30)

	g := 1.0
	for _, s := range sections {
		g *= s.DCGain()
	}

	if !almostEqual(g, 0, 1e-12) {
		t.Fatalf("HP DC gain = %v, want 0", g)
	}
}

func TestButterworth_Minus3dBAtCutoff(t *testing.T) {
	sr := 30.0
	freq := 2.0

	for _, order := range []int{1, 2, 3, 4, 5} {
		lp := magnitudeDB(ButterworthLP(freq, order, sr), freq, sr)
		if !almostEqual(lp, -3.01, 0.1) {
			t.Fatalf("LP order %d: %.3f dB at cutoff, want -3.01", order, lp)
		}

		hp := magnitudeDB(ButterworthHP(freq, order, sr), freq, sr)
		if !almostEqual(hp, -3.01, 0.1) {
			t.Fatalf("HP order %d: %.3f dB at cutoff, want -3.01", order, hp)
		}
	}
}

func TestButterworth_RolloffSteepensWithOrder(t *testing.T) {
	sr := 30.0
	freq := 2.0

	prev := 0.0
	for _, order := range []int{1, 2, 3, 4} {
		atten := magnitudeDB(ButterworthLP(freq, order, sr), 4*freq, sr)
		if atten >= prev {
			t.Fatalf("order %d: %.2f dB at 4x cutoff, not steeper than %.2f", order, atten, prev)
		}
		prev = atten
	}
}

func TestButterworth_PassbandFlat(t *testing.T) {
	sr := 30.0
	sections := ButterworthLP(5, 3, sr)

	// Deep in the passband the response stays within a fraction of a dB.
	for _, f := range []float64{0.1, 0.5, 1} {
		db := magnitudeDB(sections, f, sr)
		if math.Abs(db) > 0.2 {
			t.Fatalf("passband at %.1f Hz: %.3f dB, want ~0", f, db)
		}
	}
}

func TestButterworth_InvalidCutoffYieldsZeroSections(t *testing.T) {
	// Cutoffs at or beyond Nyquist produce inert zero coefficients rather
	// than panicking; callers validate cutoffs at the conditioning layer.
	for _, freq := range []float64{0, -1, 15, 20} {
		sections := ButterworthLP(freq, 3, 30)
		for i, s := range sections {
			if s != (biquad.Coefficients{}) {
				t.Fatalf("freq %v: section %d = %+v, want zero", freq, i, s)
			}
		}
	}
}
