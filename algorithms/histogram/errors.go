package histogram

import "errors"

// Contract violations. All of them are reported before any binning starts.
var (
	// ErrEmptySignal is returned for a nil or zero-length signal.
	ErrEmptySignal = errors.New("histogram: empty signal")

	// ErrNonFiniteSample is returned when the signal holds NaN or ±Inf.
	ErrNonFiniteSample = errors.New("histogram: non-finite sample")

	// ErrTooFewBins is returned when the bin count is not greater than 2.
	ErrTooFewBins = errors.New("histogram: number of bins must be > 2")

	// ErrBadWindow is returned for a non-positive window length.
	ErrBadWindow = errors.New("histogram: window length must be positive")

	// ErrBadStride is returned for a non-positive stride.
	ErrBadStride = errors.New("histogram: stride must be positive")

	// ErrStrideTooLarge is returned when stride >= window length.
	ErrStrideTooLarge = errors.New("histogram: stride must be less than window length")

	// ErrWindowTooLong is returned when the signal is shorter than one window.
	ErrWindowTooLong = errors.New("histogram: window longer than signal")

	// ErrConstantSignal is returned by the self-normalizing variant when
	// min == max and no edge range can be built.
	ErrConstantSignal = errors.New("histogram: constant signal cannot be self-normalized")

	// ErrDegenerateRange is returned by the self-normalizing variant when
	// [min,max] cannot be split into strictly increasing finite edges.
	ErrDegenerateRange = errors.New("histogram: signal range cannot be split into bins")
)
