package histogram

import "gonum.org/v1/gonum/floats"

// UniformEdges returns nBins+1 evenly spaced edges covering [lo,hi].
// Edge i is lo + (hi-lo)*i/nBins, so the first and last edges are exactly lo and hi.
func UniformEdges(nBins int, lo, hi float64) []float64 {
	edges := make([]float64, nBins+1)
	for i := range edges {
		edges[i] = lo + (hi-lo)*(float64(i)/float64(nBins))
	}
	// pin the last edge against rounding in lo + (hi-lo)
	edges[nBins] = hi
	return edges
}

// UnitEdges returns the edges of nBins bins over [0,1]
func UnitEdges(nBins int) []float64 {
	return UniformEdges(nBins, 0, 1)
}

// BinCenters returns the midpoints between consecutive edges
func BinCenters(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	centers := make([]float64, len(edges)-1)
	copy(centers, edges[:len(edges)-1])
	floats.Add(centers, edges[1:])
	floats.Scale(0.5, centers)
	return centers
}
