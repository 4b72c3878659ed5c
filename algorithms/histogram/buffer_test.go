package histogram_test

import (
	"testing"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_PushPop(t *testing.T) {
	buf := histogram.NewBuffer(4)
	buf.Push(0, 0, 3, 1)
	assert.Equal(t, []int{2, 1, 0, 1}, buf.Snapshot())
	assert.Equal(t, 4, buf.Total())

	buf.Pop(0, 3)
	buf.Push(2, 2)
	assert.Equal(t, []int{1, 1, 2, 0}, buf.Snapshot())
	assert.Equal(t, 4, buf.Total())
	assert.Equal(t, 8, buf.Operations())
	assert.Zero(t, buf.Dropped())
}

func TestBuffer_OrderWithinCallIsIrrelevant(t *testing.T) {
	a := histogram.NewBuffer(5)
	b := histogram.NewBuffer(5)
	a.Push(4, 1, 1, 0, 3)
	b.Push(0, 1, 3, 4, 1)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

// The out-of-range guard mirrors the reference behaviour: indices that
// escaped the binner are skipped rather than rejected, so a histogram over
// out-of-contract input under-counts without failing. Dropped makes that
// observable.
func TestBuffer_SilentlyDropsOutOfRange(t *testing.T) {
	buf := histogram.NewBuffer(3)
	assert.NotPanics(t, func() {
		buf.Push(-1, 0, 3, 2, 99)
		buf.Pop(-5, 1000)
	})
	assert.Equal(t, []int{1, 0, 1}, buf.Snapshot())
	assert.Equal(t, 2, buf.Total(), "dropped samples are missing from the total")
	assert.Equal(t, 5, buf.Dropped())
	assert.Equal(t, 7, buf.Operations(), "dropped indices still count as operations")
}

func TestBuffer_CountOutOfRange(t *testing.T) {
	buf := histogram.NewBuffer(3)
	buf.Push(0, 2)
	assert.NotPanics(t, func() {
		assert.Zero(t, buf.Count(-1))
		assert.Zero(t, buf.Count(3))
	})
	assert.Equal(t, 1, buf.Count(2))
}

func TestBuffer_SnapshotDoesNotAlias(t *testing.T) {
	buf := histogram.NewBuffer(3)
	buf.Push(1)
	snap := buf.Snapshot()
	buf.Push(1)
	snap[0] = 42

	assert.Equal(t, 1, snap[1])
	assert.Equal(t, 2, buf.Count(1))
	assert.Equal(t, 0, buf.Count(0))
}

func TestHistInt(t *testing.T) {
	counts := histogram.HistInt([]int{0, 2, 2, 5, -1, 1}, 3)
	assert.Equal(t, []int{1, 1, 2}, counts)
}
