package condition

import (
	"github.com/cwbudde/algo-photometry/trace"
)

// Step is one conditioning operation applied to a trace.
type Step func(*trace.Trace) (*trace.Trace, error)

// Pipeline sequences conditioning steps and applies them in order to one
// trace, mutating it in place. It restores the fluent chaining of the
// individual operations under explicit error handling:
//
//	t, err := condition.NewPipeline().Debleach(0.1).LowPass(20).ZScore().Apply(t)
type Pipeline struct {
	steps []Step
}

// NewPipeline returns an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Debleach appends a high-pass debleaching step at lowCutoff (Hz).
func (p *Pipeline) Debleach(lowCutoff float64) *Pipeline {
	p.steps = append(p.steps, func(t *trace.Trace) (*trace.Trace, error) {
		return Debleach(t, lowCutoff)
	})

	return p
}

// LowPass appends a low-pass filtering step at highCutoff (Hz).
func (p *Pipeline) LowPass(highCutoff float64) *Pipeline {
	p.steps = append(p.steps, func(t *trace.Trace) (*trace.Trace, error) {
		return LowPass(t, highCutoff)
	})

	return p
}

// ZScore appends a z-scoring step.
func (p *Pipeline) ZScore() *Pipeline {
	p.steps = append(p.steps, func(t *trace.Trace) (*trace.Trace, error) {
		return ZScore(t), nil
	})

	return p
}

// Append adds a caller-supplied step.
func (p *Pipeline) Append(s Step) *Pipeline {
	if s != nil {
		p.steps = append(p.steps, s)
	}

	return p
}

// Apply runs all steps in order on t, stopping at the first error.
// The trace mutated so far is not rolled back on failure.
func (p *Pipeline) Apply(t *trace.Trace) (*trace.Trace, error) {
	var err error
	for _, step := range p.steps {
		t, err = step(t)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}
