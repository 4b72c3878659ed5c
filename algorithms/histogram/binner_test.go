package histogram_test

import (
	"math"
	"testing"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/stretchr/testify/assert"
)

func TestBinIndex(t *testing.T) {
	cases := []struct {
		name   string
		sample float64
		bins   int
		want   int
	}{
		{"zero", 0, 4, 0},
		{"lower edge belongs to its bin", 0.25, 4, 1},
		{"just below an edge", math.Nextafter(0.5, 0), 4, 1},
		{"interior", 0.6, 4, 2},
		{"exactly one patched into last bin", 1, 4, 3},
		{"rounding overshoot patched into last bin", 1.1, 4, 3},
		{"ten bins", 0.95, 10, 9},
		// out of contract: reported out of range, dropped later by push/pop
		{"negative", -0.1, 4, -1},
		{"far above one", 1.5, 4, 5},
		{"huge", 1e300, 4, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, histogram.BinIndex(tc.sample, tc.bins))
		})
	}
}

func TestBinner_Assign(t *testing.T) {
	signal := []float64{0.0, 0.05, 0.95, 0.15, 0.99, 0.5, 0.0, 1.0}
	bins := histogram.NewBinner(4).Assign(signal)
	assert.Equal(t, []int{0, 0, 3, 0, 3, 2, 0, 3}, bins)
}

func TestRangeBinner(t *testing.T) {
	b := histogram.NewRangeBinner(4, -2, 2)
	assert.Equal(t, 4, b.Bins())
	assert.Equal(t, 0, b.Index(-2))
	assert.Equal(t, 1, b.Index(-1))
	assert.Equal(t, 2, b.Index(0))
	assert.Equal(t, 3, b.Index(1.5))
	assert.Equal(t, 3, b.Index(2), "max value lands in the closed last bin")
}
