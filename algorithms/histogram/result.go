package histogram

import "gonum.org/v1/gonum/mat"

// Result holds the output of one sliding histogram run
type Result struct {
	// Counts[w] is the histogram of window w, one count per bin
	Counts [][]int `json:"counts"`

	// Loci[w] is the 0-based start index of window w
	Loci []int `json:"loci"`

	// Edges holds the Bins+1 bin boundaries
	Edges []float64 `json:"edges"`

	Bins         int `json:"bins"`
	WindowLength int `json:"window_length"`
	Stride       int `json:"stride"`

	// Operations counts the pop and push index operations of the run
	Operations int `json:"operations"`

	// Dropped counts indices push/pop skipped because their bin was out of range
	Dropped int `json:"dropped"`
}

// NumWindows returns the number of produced windows
func (r *Result) NumWindows() int {
	return len(r.Counts)
}

// Column returns a copy of the histogram of window w
func (r *Result) Column(w int) []int {
	out := make([]int, len(r.Counts[w]))
	copy(out, r.Counts[w])
	return out
}

// OneBasedLoci returns the window starts offset for 1-based consumers
func (r *Result) OneBasedLoci() []int {
	out := make([]int, len(r.Loci))
	for i, l := range r.Loci {
		out[i] = l + 1
	}
	return out
}

// Matrix returns the Bins x NumWindows histogram matrix, column w being window w
func (r *Result) Matrix() *mat.Dense {
	if len(r.Counts) == 0 {
		return nil
	}
	m := mat.NewDense(r.Bins, len(r.Counts), nil)
	for w, col := range r.Counts {
		for b, c := range col {
			m.Set(b, w, float64(c))
		}
	}
	return m
}

// Equal reports whether two results hold identical windows, loci and edges.
// Two nil results are equal.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Bins != other.Bins || len(r.Counts) != len(other.Counts) || len(r.Loci) != len(other.Loci) || len(r.Edges) != len(other.Edges) {
		return false
	}
	for w := range r.Counts {
		for b := range r.Counts[w] {
			if r.Counts[w][b] != other.Counts[w][b] {
				return false
			}
		}
	}
	for i := range r.Loci {
		if r.Loci[i] != other.Loci[i] {
			return false
		}
	}
	for i := range r.Edges {
		if r.Edges[i] != other.Edges[i] {
			return false
		}
	}
	return true
}
