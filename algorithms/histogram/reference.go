package histogram

// Exhaustive computes the same windows as SlidingHistogram.Compute but
// re-bins every window from scratch, at O(WindowLength) per window.
// It shares the validation, binning and edges of the sliding run and serves
// as the reference the differential update is checked and timed against.
func Exhaustive(signal []float64, params Params) (*Result, error) {
	sh := NewSlidingHistogram(params)
	binner, edges, err := sh.prepare(signal)
	if err != nil {
		return nil, err
	}

	n := params.NumWindows(len(signal))
	res := &Result{
		Counts:       make([][]int, n),
		Loci:         make([]int, n),
		Edges:        edges,
		Bins:         params.Bins,
		WindowLength: params.WindowLength,
		Stride:       params.Stride,
	}

	for w := 0; w < n; w++ {
		start := w * params.Stride
		buf := NewBuffer(params.Bins)
		for _, s := range signal[start : start+params.WindowLength] {
			buf.Push(binner.Index(s))
		}
		res.Counts[w] = buf.Snapshot()
		res.Loci[w] = start
		res.Operations += buf.Operations()
		res.Dropped += buf.Dropped()
	}

	return res, nil
}
