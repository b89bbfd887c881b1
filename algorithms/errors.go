package algorithms

import "errors"

var (
	// ErrNotFound indicates BinarySearch exhausted its interval without an
	// exact match.
	ErrNotFound = errors.New("algorithms: target not found")
	// ErrNoIntervals indicates MergeIntervals received an empty collection.
	ErrNoIntervals = errors.New("algorithms: at least one interval required")
	// ErrInvalidInterval indicates an interval with Start > End.
	ErrInvalidInterval = errors.New("algorithms: interval start exceeds end")
	// ErrNonPositive indicates a factorization request for n ≤ 0.
	ErrNonPositive = errors.New("algorithms: n must be positive")
	// ErrNegativeNumber indicates a base conversion of a negative number.
	ErrNegativeNumber = errors.New("algorithms: number must be non-negative")
	// ErrBadBase indicates a base outside the supported range 2–36.
	ErrBadBase = errors.New("algorithms: base must be in [2,36]")
)
