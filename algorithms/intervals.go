package algorithms

import (
	"cmp"
	"fmt"
	"slices"
)

// Interval is a closed integer range [Start, End], both endpoints included.
// A well-formed Interval has Start ≤ End.
type Interval struct {
	Start, End int
}

// Contains reports whether n lies within the closed interval.
func (iv Interval) Contains(n int) bool {
	return iv.Start <= n && n <= iv.End
}

// MergeIntervals compresses possibly overlapping or touching closed
// intervals into the minimal sorted, pairwise-disjoint set covering the
// same points. Touching intervals merge: the overlap test is inclusive,
// so [1,4] and [4,5] become [1,5]. The input is not modified.
//
// Running MergeIntervals on its own output is a no-op (fixed point).
//
// Returns ErrNoIntervals for an empty collection and ErrInvalidInterval
// if any interval has Start > End.
//
// Complexity: O(n log n) for the sort, O(n) for the scan.
func MergeIntervals(in []Interval) ([]Interval, error) {
	if len(in) == 0 {
		return nil, ErrNoIntervals
	}
	for _, iv := range in {
		if iv.Start > iv.End {
			return nil, fmt.Errorf("interval [%d,%d]: %w", iv.Start, iv.End, ErrInvalidInterval)
		}
	}

	// Sort by start; ties broken by end (natural pair ordering).
	sorted := slices.Clone(in)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.End, b.End)
	})

	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		running := &out[len(out)-1]
		if iv.Start <= running.End {
			running.End = max(running.End, iv.End)
		} else {
			out = append(out, iv)
		}
	}

	return out, nil
}
