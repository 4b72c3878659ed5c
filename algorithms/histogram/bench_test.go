package histogram_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/logging"
)

// benchmarkRun times one full run over a 100k-sample signal
func benchmarkRun(b *testing.B, winLen int, run func([]float64, histogram.Params) (*histogram.Result, error)) {
	rng := rand.New(rand.NewSource(1))
	signal := randomSignal(rng, 100_000, 64)
	params := histogram.Params{Bins: 64, WindowLength: winLen, Stride: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := run(signal, params); err != nil {
			b.Fatalf("run failed: %v", err)
		}
	}
}

func sliding(signal []float64, p histogram.Params) (*histogram.Result, error) {
	return histogram.NewSlidingHistogram(p).WithLogger(&logging.NoOpLogger{}).Compute(signal)
}

// BenchmarkSliding should stay flat as the window grows.
func BenchmarkSliding(b *testing.B) {
	for _, winLen := range []int{64, 512, 4096} {
		b.Run(fmt.Sprintf("win=%d", winLen), func(b *testing.B) {
			benchmarkRun(b, winLen, sliding)
		})
	}
}

// BenchmarkExhaustive grows linearly with the window.
func BenchmarkExhaustive(b *testing.B) {
	for _, winLen := range []int{64, 512} {
		b.Run(fmt.Sprintf("win=%d", winLen), func(b *testing.B) {
			benchmarkRun(b, winLen, histogram.Exhaustive)
		})
	}
}
