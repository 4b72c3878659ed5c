package histogram

import (
	"fmt"
	"math"

	"github.com/cyber-g/tswhist/logging"
	"gonum.org/v1/gonum/floats"
)

// SlidingHistogram computes the histograms of a window sliding over a 1D
// signal by a fixed stride.
//
// Only the first window is binned in full. Every later window is derived
// from the previous one by popping the stride samples that left it and
// pushing the stride samples that entered it, so the per-window cost is
// O(stride) and independent of the window length (after Perreault & Hébert,
// "Median Filtering in Constant Time").
type SlidingHistogram struct {
	params  Params
	initial InitialStrategy
	logger  logging.Logger
}

// NewSlidingHistogram creates a sliding histogram with the canonical
// first-window strategy
func NewSlidingHistogram(params Params) *SlidingHistogram {
	return &SlidingHistogram{
		params:  params,
		initial: PushStrategy{},
		logger: logging.WithFields(logging.Fields{
			"component": "sliding_histogram",
		}),
	}
}

// WithStrategy replaces the first-window strategy
func (sh *SlidingHistogram) WithStrategy(s InitialStrategy) *SlidingHistogram {
	if s != nil {
		sh.initial = s
	}
	return sh
}

// WithLogger replaces the logger
func (sh *SlidingHistogram) WithLogger(logger logging.Logger) *SlidingHistogram {
	if logger != nil {
		sh.logger = logger
	}
	return sh
}

// Params returns the run parameters
func (sh *SlidingHistogram) Params() Params {
	return sh.params
}

// Compute runs the sliding histogram over signal.
// All contract violations are reported before any work; signal is only read.
func (sh *SlidingHistogram) Compute(signal []float64) (*Result, error) {
	binner, edges, err := sh.prepare(signal)
	if err != nil {
		return nil, err
	}

	d := newWindowDriver(sh.params, binner.Assign(signal), edges, sh.initial)
	for d.step() {
	}
	res := d.result()

	if res.Dropped > 0 {
		sh.logger.Warn("Out-of-range bin indices dropped", logging.Fields{
			"dropped": res.Dropped,
		})
	}
	sh.logger.Debug("Sliding histogram completed", logging.Fields{
		"signal_length": len(signal),
		"bins":          res.Bins,
		"window_length": res.WindowLength,
		"stride":        res.Stride,
		"windows":       res.NumWindows(),
		"operations":    res.Operations,
	})

	return res, nil
}

// prepare validates the run and resolves the binner and edges,
// either over [0,1] or over [min,max] of the signal
func (sh *SlidingHistogram) prepare(signal []float64) (*Binner, []float64, error) {
	p := sh.params
	if err := p.ValidateSignal(signal); err != nil {
		return nil, nil, err
	}
	if !p.SelfNormalize {
		return NewBinner(p.Bins), UnitEdges(p.Bins), nil
	}

	lo, hi := floats.Min(signal), floats.Max(signal)
	if hi == lo {
		return nil, nil, fmt.Errorf("%w: every sample is %v", ErrConstantSignal, lo)
	}
	if math.IsInf(hi-lo, 0) {
		return nil, nil, fmt.Errorf("%w: range [%v, %v] overflows", ErrDegenerateRange, lo, hi)
	}
	edges := UniformEdges(p.Bins, lo, hi)
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, nil, fmt.Errorf("%w: edges %d and %d coincide at %v", ErrDegenerateRange, i-1, i, edges[i])
		}
	}
	return NewRangeBinner(p.Bins, lo, hi), edges, nil
}

// Compute runs a sliding histogram of a [0,1]-normalized signal
func Compute(signal []float64, bins, windowLength, stride int) (*Result, error) {
	return NewSlidingHistogram(Params{
		Bins:         bins,
		WindowLength: windowLength,
		Stride:       stride,
	}).Compute(signal)
}

type driverState int

const (
	stateInitializing driverState = iota
	stateSliding
	stateDone
)

// windowDriver walks the windows of one run. It exclusively owns the
// buffer; every column it emits is a snapshot copy.
type windowDriver struct {
	params  Params
	bins    []int
	buf     *Buffer
	initial InitialStrategy

	state  driverState
	w      int
	counts [][]int
	loci   []int
	edges  []float64
}

func newWindowDriver(p Params, bins []int, edges []float64, initial InitialStrategy) *windowDriver {
	n := p.NumWindows(len(bins))
	return &windowDriver{
		params:  p,
		bins:    bins,
		buf:     NewBuffer(p.Bins),
		initial: initial,
		state:   stateInitializing,
		counts:  make([][]int, n),
		loci:    make([]int, n),
		edges:   edges,
	}
}

// step forms the next window and reports whether more windows remain
func (d *windowDriver) step() bool {
	switch d.state {
	case stateInitializing:
		d.initial.Fill(d.buf, d.bins[:d.params.WindowLength])
		d.emit()
	case stateSliding:
		stride, winLen := d.params.Stride, d.params.WindowLength
		prev := (d.w - 1) * stride
		// leaving: head of the previous window; entering: past its tail
		d.buf.Pop(d.bins[prev : prev+stride]...)
		d.buf.Push(d.bins[prev+winLen : prev+winLen+stride]...)
		d.emit()
	case stateDone:
		return false
	}

	d.w++
	if d.w < len(d.counts) {
		d.state = stateSliding
	} else {
		d.state = stateDone
	}
	return d.state != stateDone
}

func (d *windowDriver) emit() {
	d.counts[d.w] = d.buf.Snapshot()
	d.loci[d.w] = d.w * d.params.Stride
}

func (d *windowDriver) result() *Result {
	return &Result{
		Counts:       d.counts,
		Loci:         d.loci,
		Edges:        d.edges,
		Bins:         d.params.Bins,
		WindowLength: d.params.WindowLength,
		Stride:       d.params.Stride,
		Operations:   d.buf.Operations(),
		Dropped:      d.buf.Dropped(),
	}
}
