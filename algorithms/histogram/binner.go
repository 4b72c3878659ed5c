package histogram

import "math"

// BinIndex maps a normalized sample to floor(s*nBins).
// The product nBins (a sample of exactly 1) is patched into the last bin, so
// bins are closed-open except the last one, which is closed-closed.
// Nothing else is clamped: samples outside [0,1] yield an index outside
// [0,nBins) (-1 below, nBins+1 above) that Buffer.Push and Buffer.Pop drop.
func BinIndex(s float64, nBins int) int {
	f := math.Floor(s * float64(nBins))
	switch {
	case f == float64(nBins):
		return nBins - 1
	case f < 0:
		return -1
	case f > float64(nBins):
		return nBins + 1
	default:
		return int(f)
	}
}

// Binner assigns samples to bins over a fixed [lo,hi] range
type Binner struct {
	nBins int
	lo    float64
	span  float64
}

// NewBinner creates a binner for samples already normalized into [0,1]
func NewBinner(nBins int) *Binner {
	return &Binner{nBins: nBins, lo: 0, span: 1}
}

// NewRangeBinner creates a binner that first remaps [lo,hi] onto [0,1]
func NewRangeBinner(nBins int, lo, hi float64) *Binner {
	return &Binner{nBins: nBins, lo: lo, span: hi - lo}
}

// Bins returns the number of bins
func (b *Binner) Bins() int {
	return b.nBins
}

// Index returns the bin of a single sample
func (b *Binner) Index(sample float64) int {
	return BinIndex((sample-b.lo)/b.span, b.nBins)
}

// Assign bins every sample of signal
func (b *Binner) Assign(signal []float64) []int {
	bins := make([]int, len(signal))
	for i, s := range signal {
		bins[i] = b.Index(s)
	}
	return bins
}
