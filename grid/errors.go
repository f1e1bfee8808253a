package grid

import "errors"

// Sentinel errors for grid construction and access.
// All messages carry the "grid: " prefix; match with errors.Is.
var (
	// ErrTooFewPoints indicates fewer than MinPoints coordinates were supplied.
	ErrTooFewPoints = errors.New("grid: at least two points are required")

	// ErrNotIncreasing indicates the coordinates are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: points must be strictly increasing")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("grid: points must be finite")

	// ErrBadInterval indicates Uniform was called with hi <= lo.
	ErrBadInterval = errors.New("grid: interval upper bound must exceed lower bound")

	// ErrIndexOutOfRange indicates At was called with an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)
