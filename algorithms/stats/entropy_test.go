package stats_test

import (
	"testing"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/cyber-g/tswhist/algorithms/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramEntropy(t *testing.T) {
	assert.InDelta(t, 2.0, stats.HistogramEntropy([]int{1, 1, 1, 1}), 1e-12)
	assert.InDelta(t, 1.0, stats.HistogramEntropy([]int{2, 0, 2, 0}), 1e-12)
	assert.InDelta(t, 0.0, stats.HistogramEntropy([]int{0, 5, 0}), 1e-12)
	assert.Equal(t, 0.0, stats.HistogramEntropy([]int{0, 0, 0}))
}

func TestProbabilities(t *testing.T) {
	assert.Equal(t, []float64{0.25, 0, 0.75}, stats.Probabilities([]int{1, 0, 3}))
	assert.Equal(t, []float64{0, 0}, stats.Probabilities([]int{0, 0}))
}

func TestSummarize(t *testing.T) {
	signal := []float64{0.0, 0.05, 0.95, 0.15, 0.99, 0.5, 0.0, 1.0}
	res, err := histogram.Compute(signal, 4, 4, 2)
	require.NoError(t, err)

	summaries := stats.Summarize(res)
	require.Len(t, summaries, 3)

	// window 0: [3,0,0,1]
	first := summaries[0]
	assert.Equal(t, 0, first.Window)
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, 0, first.ModeBin)
	assert.InDelta(t, (3*0.125+0.875)/4, first.Mean, 1e-12)
	assert.InDelta(t, 0.8112781244591328, first.Entropy, 1e-12)
	assert.InDelta(t, 0.8112781244591328/2, first.NormalizedEntropy, 1e-12)

	// window 1: [1,0,1,2]
	assert.Equal(t, 3, summaries[1].ModeBin)
	assert.Equal(t, 2, summaries[1].Start)
	assert.InDelta(t, 1.5, summaries[1].Entropy, 1e-12)
}

func TestSummarize_EmptyWindow(t *testing.T) {
	res := &histogram.Result{
		Counts: [][]int{{0, 0, 0}},
		Loci:   []int{0},
		Edges:  histogram.UnitEdges(3),
		Bins:   3,
	}
	s := stats.Summarize(res)
	require.Len(t, s, 1)
	assert.Zero(t, s[0].Entropy)
	assert.Zero(t, s[0].Mean)
	assert.Zero(t, s[0].Total)
}
