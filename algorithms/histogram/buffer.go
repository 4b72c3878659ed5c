package histogram

// Buffer is the running per-bin count vector of the current window.
// It is owned by a single window driver and never shared; readers only
// ever see copies produced by Snapshot.
type Buffer struct {
	counts  []int
	ops     int
	dropped int
}

// NewBuffer creates a zeroed buffer with nBins counts
func NewBuffer(nBins int) *Buffer {
	return &Buffer{counts: make([]int, nBins)}
}

// Push increments the count of every bin in bins.
// Bins outside [0,len) are skipped without error.
func (b *Buffer) Push(bins ...int) {
	for _, bin := range bins {
		b.ops++
		if bin >= 0 && bin < len(b.counts) {
			b.counts[bin]++
		} else {
			b.dropped++
		}
	}
}

// Pop decrements the count of every bin in bins.
// Bins outside [0,len) are skipped without error.
func (b *Buffer) Pop(bins ...int) {
	for _, bin := range bins {
		b.ops++
		if bin >= 0 && bin < len(b.counts) {
			b.counts[bin]--
		} else {
			b.dropped++
		}
	}
}

// Snapshot returns a copy of the counts
func (b *Buffer) Snapshot() []int {
	out := make([]int, len(b.counts))
	copy(out, b.counts)
	return out
}

// Count returns the count of one bin, 0 for a bin outside [0, Bins())
func (b *Buffer) Count(bin int) int {
	if bin < 0 || bin >= len(b.counts) {
		return 0
	}
	return b.counts[bin]
}

// Total returns the sum of all counts
func (b *Buffer) Total() int {
	total := 0
	for _, c := range b.counts {
		total += c
	}
	return total
}

// Bins returns the number of bins
func (b *Buffer) Bins() int {
	return len(b.counts)
}

// Operations returns how many indices Push and Pop have processed,
// dropped ones included
func (b *Buffer) Operations() int {
	return b.ops
}

// Dropped returns how many indices were skipped as out of range
func (b *Buffer) Dropped() int {
	return b.dropped
}

// HistInt counts already-binned integer indices into nBins bins,
// skipping indices outside [0,nBins)
func HistInt(bins []int, nBins int) []int {
	buf := NewBuffer(nBins)
	buf.Push(bins...)
	return buf.counts
}
