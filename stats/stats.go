// Package stats provides the descriptive statistics used by trace
// conditioning and quality checks. All variance-derived quantities are
// population statistics (no Bessel correction).
package stats

import "math"

// Mean returns the mean of the signal.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// MeanVariance returns the mean and population variance of the signal using
// Welford's online algorithm for numerical stability.
func MeanVariance(signal []float64) (mean, variance float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	var m2 float64

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		m2 += delta * deltaN * float64(i)
		mean += deltaN
	}

	return mean, m2 / float64(n)
}

// Std returns the population standard deviation of the signal.
func Std(signal []float64) float64 {
	_, variance := MeanVariance(signal)

	return math.Sqrt(variance)
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}
