package histogram

// InitialStrategy builds the histogram of the first window into an empty buffer.
// Implementations must leave buf holding exactly the counts of bins.
type InitialStrategy interface {
	Fill(buf *Buffer, bins []int)
}

// PushStrategy pushes every bin of the first window, one at a time.
// It is the canonical strategy and costs exactly len(bins) buffer operations.
type PushStrategy struct{}

// Fill implements InitialStrategy
func (PushStrategy) Fill(buf *Buffer, bins []int) {
	buf.Push(bins...)
}
