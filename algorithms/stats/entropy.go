package stats

import (
	"math"

	"github.com/cyber-g/tswhist/algorithms/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowSummary condenses one histogram column
type WindowSummary struct {
	Window int `json:"window"`
	Start  int `json:"start"`

	// Shannon entropy of the bin distribution, in bits
	Entropy float64 `json:"entropy"`

	// Entropy divided by log2(bins), 0 for a single occupied bin, 1 for a flat histogram
	NormalizedEntropy float64 `json:"normalized_entropy"`

	// ModeBin is the fullest bin, the lowest one on ties
	ModeBin int `json:"mode_bin"`

	// Mean is the count-weighted mean of the bin centers
	Mean float64 `json:"mean"`

	Total int `json:"total"`
}

// Probabilities turns counts into a distribution; all zeros when counts is empty
func Probabilities(counts []int) []float64 {
	p := make([]float64, len(counts))
	total := 0
	for i, c := range counts {
		p[i] = float64(c)
		total += c
	}
	if total == 0 {
		return p
	}
	floats.Scale(1/float64(total), p)
	return p
}

// HistogramEntropy returns the Shannon entropy of counts in bits
func HistogramEntropy(counts []int) float64 {
	p := Probabilities(counts)
	if floats.Sum(p) == 0 {
		return 0
	}
	return stat.Entropy(p) / math.Ln2
}

// Summarize computes one WindowSummary per window of res
func Summarize(res *histogram.Result) []WindowSummary {
	centers := histogram.BinCenters(res.Edges)
	maxEntropy := math.Log2(float64(res.Bins))

	summaries := make([]WindowSummary, res.NumWindows())
	for w, col := range res.Counts {
		weights := make([]float64, len(col))
		total := 0
		for b, c := range col {
			weights[b] = float64(c)
			total += c
		}

		s := WindowSummary{
			Window: w,
			Start:  res.Loci[w],
			Total:  total,
		}
		if total > 0 {
			s.Entropy = HistogramEntropy(col)
			s.NormalizedEntropy = s.Entropy / maxEntropy
			s.ModeBin = floats.MaxIdx(weights)
			s.Mean = stat.Mean(centers, weights)
		}
		summaries[w] = s
	}

	return summaries
}
