// Package trace models one continuous physiological recording: sample
// values with a sampling rate, a parallel timestamp axis, and optional
// name/annotation metadata.
//
// A Trace is a plain data carrier. Conditioning operations live in the
// condition package and mutate Trace.Signal in place; Timestamps and
// SampleRate are never altered by them.
package trace

import "fmt"

// Trace holds one continuous recording.
type Trace struct {
	Signal      []float64
	SampleRate  float64
	Timestamps  []float64
	Name        string
	Annotations map[string]any
}

// Option configures a Trace at construction.
type Option func(*Trace)

// WithName sets an identifying label.
func WithName(name string) Option {
	return func(t *Trace) { t.Name = name }
}

// WithAnnotations attaches recording metadata. The map is referenced, not
// copied.
func WithAnnotations(annotations map[string]any) Option {
	return func(t *Trace) { t.Annotations = annotations }
}

// New creates a Trace over the supplied slices. The slices are referenced,
// not copied, so conditioning will mutate the caller's signal array.
//
// New performs no validation; call Validate to check the invariants.
func New(signal []float64, sampleRate float64, timestamps []float64, opts ...Option) *Trace {
	t := &Trace{
		Signal:     signal,
		SampleRate: sampleRate,
		Timestamps: timestamps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	return t
}

// Validate checks the Trace invariants: equal signal/timestamp lengths, a
// positive sampling rate, and monotonically non-decreasing timestamps.
// It never reorders or resamples the data.
func (t *Trace) Validate() error {
	if len(t.Signal) != len(t.Timestamps) {
		return fmt.Errorf("trace: signal and timestamps lengths differ: %d vs %d",
			len(t.Signal), len(t.Timestamps))
	}

	if t.SampleRate <= 0 {
		return fmt.Errorf("trace: sample rate must be > 0: %f", t.SampleRate)
	}

	for i := 1; i < len(t.Timestamps); i++ {
		if t.Timestamps[i] < t.Timestamps[i-1] {
			return fmt.Errorf("trace: timestamps must be non-decreasing: index %d: %f < %f",
				i, t.Timestamps[i], t.Timestamps[i-1])
		}
	}

	return nil
}

// Len returns the number of samples.
func (t *Trace) Len() int {
	return len(t.Signal)
}

// Duration returns the recording length in seconds, derived from the
// sample count and sampling rate. Returns 0 for an invalid sampling rate.
func (t *Trace) Duration() float64 {
	if t.SampleRate <= 0 {
		return 0
	}

	return float64(len(t.Signal)) / t.SampleRate
}

// Clone returns a deep copy of the Trace. Use it to condition a trace
// without mutating the original.
func (t *Trace) Clone() *Trace {
	c := &Trace{
		Signal:     append([]float64(nil), t.Signal...),
		SampleRate: t.SampleRate,
		Timestamps: append([]float64(nil), t.Timestamps...),
		Name:       t.Name,
	}

	if t.Annotations != nil {
		c.Annotations = make(map[string]any, len(t.Annotations))
		for k, v := range t.Annotations {
			c.Annotations[k] = v
		}
	}

	return c
}
