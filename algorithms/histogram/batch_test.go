package histogram_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBatch_PreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	signals := make([][]float64, 12)
	for i := range signals {
		signals[i] = randomSignal(rng, 50+i*10, 8)
	}

	sh := quiet(histogram.NewSlidingHistogram(histogram.Params{Bins: 8, WindowLength: 20, Stride: 3}))
	results, err := sh.ComputeBatch(context.Background(), signals, 4)
	require.NoError(t, err)
	require.Len(t, results, len(signals))

	for i, signal := range signals {
		want, err := sh.Compute(signal)
		require.NoError(t, err)
		assert.True(t, results[i].Equal(want), "signal %d", i)
	}
}

func TestComputeBatch_ReportsFailingSignal(t *testing.T) {
	signals := [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{0.1, 0.2},
		{0.5, 0.6, 0.7, 0.8},
	}

	sh := quiet(histogram.NewSlidingHistogram(histogram.Params{Bins: 4, WindowLength: 3, Stride: 1}))
	results, err := sh.ComputeBatch(context.Background(), signals, 1)
	assert.ErrorIs(t, err, histogram.ErrWindowTooLong)
	assert.ErrorContains(t, err, "signal 1")
	assert.Nil(t, results)
}

func TestComputeBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := quiet(histogram.NewSlidingHistogram(histogram.Params{Bins: 4, WindowLength: 3, Stride: 1}))
	_, err := sh.ComputeBatch(ctx, [][]float64{{0.1, 0.2, 0.3}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
