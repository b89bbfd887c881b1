// Package algorithms collects the small generic routines shared by grid
// puzzle solutions: exact-match binary search over a monotonic function,
// closed-interval merging, memoized integer factorization, and base-N
// rendering.
//
// What:
//
//   - BinarySearch: exact-match search over [low, high) for a monotonic f.
//   - MergeIntervals: compress overlapping/touching closed intervals to the
//     minimal sorted disjoint set.
//   - Factorizer: all positive divisors of n, cached per Factorizer.
//   - ToBaseN: non-negative integer rendered in bases 2–36.
//
// Why:
//
//   - These four keep reappearing across years of puzzles; hardened once
//     here, solutions call them with plain numeric arguments.
//
// Errors:
//
//   - ErrNotFound: BinarySearch collapsed its interval without an exact hit.
//   - ErrNoIntervals / ErrInvalidInterval: bad MergeIntervals input.
//   - ErrNonPositive: Factors called with n ≤ 0.
//   - ErrNegativeNumber / ErrBadBase: bad ToBaseN input.
//
// All routines are deterministic and pure except the Factorizer cache, which
// is mutex-guarded and safe for concurrent callers.
package algorithms
