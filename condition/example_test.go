package condition_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/condition"
	"github.com/cwbudde/algo-photometry/stats"
	"github.com/cwbudde/algo-photometry/trace"
)

func ExamplePipeline() {
	const sr = 30.0
	samples := 600

	signal := make([]float64, samples)
	ts := make([]float64, samples)
	for i := range signal {
		t := float64(i) / sr
		signal[i] = 5*math.Exp(-t/60) + 0.5*math.Sin(2*math.Pi*2*t)
		ts[i] = t
	}

	tr := trace.New(signal, sr, ts, trace.WithName("gcamp"))

	if _, err := condition.NewPipeline().
		Debleach(0.2).
		LowPass(5).
		ZScore().
		Apply(tr); err != nil {
		fmt.Println(err)
		return
	}

	mean, variance := stats.MeanVariance(tr.Signal)
	fmt.Printf("len=%d mean~0=%v std~1=%v\n",
		tr.Len(), math.Abs(mean) < 1e-9, math.Abs(math.Sqrt(variance)-1) < 1e-9)

	// Output:
	// len=600 mean~0=true std~1=true
}
