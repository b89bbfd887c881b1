package algorithms

// BinarySearch searches the half-open domain [low, high) for an input m at
// which f(m) == target, repeatedly evaluating the midpoint and discarding
// the half that cannot contain target. f must be monotonic over the domain:
// non-decreasing when reverse is false, non-increasing when reverse is true.
// Monotonicity is a precondition, not checked at runtime; the result for a
// non-monotonic f is unspecified.
//
// This is an exact-match search, not a lower/upper-bound search; callers
// needing a bound must pre-shape f. Extra state for f is captured by
// closure. Returns ErrNotFound when the interval collapses without a hit.
//
// Complexity: O(log(high-low)) evaluations of f.
func BinarySearch(target, low, high int, f func(int) int, reverse bool) (int, error) {
	for low < high {
		m := low + (high-low)/2
		v := f(m)
		if v == target {
			return m, nil
		}
		// Discard the half that cannot contain target. The flipped
		// comparison handles non-increasing f.
		if (v < target) != reverse {
			low = m + 1
		} else {
			high = m
		}
	}

	return 0, ErrNotFound
}
