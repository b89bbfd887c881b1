// Package grid provides a generic rectangular container of cell values
// addressed by point.Point.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T with fixed Width and Height.
//   - Bounds-checked lookup and single-cell mutation (ValueAt, SetValueAt).
//   - Linear value search in row-major order (FindPointsWithValue).
//   - A precomputed all-points list for iteration (AllPoints).
//   - Transpose view and per-row/per-column text rendering.
//
// Why:
//
//   - Character and token grids are the dominant input shape in grid puzzles;
//     one hardened container replaces ad-hoc [][]byte indexing and the panics
//     that come with it.
//
// Construction copies the input rows, so the caller's slices may be reused
// or mutated freely afterwards. The grid never resizes; only cell values
// change after construction.
//
// Complexity:
//
//   - New/FromLines:        O(W×H) time and memory.
//   - ValueAt/SetValueAt:   O(1).
//   - FindPointsWithValue:  O(W×H).
//   - Columns/…AsText:      O(W×H), computed on demand, never cached.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Point fell outside [0,Width) × [0,Height).
package grid
