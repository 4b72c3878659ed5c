package histogram

import (
	"fmt"
	"math"
)

// Params holds the scalar parameters of a sliding histogram run
type Params struct {
	Bins         int `json:"bins" yaml:"bins"`
	WindowLength int `json:"window_length" yaml:"window_length"`
	Stride       int `json:"stride" yaml:"stride"`

	// SelfNormalize bins raw samples over [min,max] of the signal instead of
	// expecting them in [0,1]; edges are remapped to that range.
	SelfNormalize bool `json:"self_normalize" yaml:"self_normalize"`
}

// DefaultParams returns the parameters with the default stride of 1
func DefaultParams(bins, windowLength int) Params {
	return Params{
		Bins:         bins,
		WindowLength: windowLength,
		Stride:       1,
	}
}

// Validate checks the parameter constraints that do not depend on the signal
func (p Params) Validate() error {
	if p.Bins <= 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewBins, p.Bins)
	}
	if p.WindowLength <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadWindow, p.WindowLength)
	}
	if p.Stride <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadStride, p.Stride)
	}
	if p.Stride >= p.WindowLength {
		return fmt.Errorf("%w: stride %d, window length %d", ErrStrideTooLarge, p.Stride, p.WindowLength)
	}
	return nil
}

// ValidateSignal checks the parameters against a concrete signal
func (p Params) ValidateSignal(signal []float64) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	for i, s := range signal {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrNonFiniteSample, i, s)
		}
	}
	if p.WindowLength > len(signal) {
		return fmt.Errorf("%w: window length %d, signal length %d", ErrWindowTooLong, p.WindowLength, len(signal))
	}
	return nil
}

// NumWindows returns floor((signalLen-WindowLength)/Stride)+1,
// or 0 when the signal is shorter than one window
func (p Params) NumWindows(signalLen int) int {
	if p.Stride <= 0 || signalLen < p.WindowLength {
		return 0
	}
	return (signalLen-p.WindowLength)/p.Stride + 1
}

// ExpectedOperations returns the exact number of buffer operations a
// sliding run performs: WindowLength for the first window, then 2*Stride
// per transition
func (p Params) ExpectedOperations(signalLen int) int {
	n := p.NumWindows(signalLen)
	if n == 0 {
		return 0
	}
	return p.WindowLength + (n-1)*2*p.Stride
}
