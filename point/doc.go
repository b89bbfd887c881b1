// Package point provides the immutable 2D Point value type used across
// gridkit, plus vector arithmetic and neighbour enumeration.
//
// What:
//
//   - Point{X, Y}: a plain value pair; equality is ==, ordering is Compare.
//   - Arithmetic: Add, Sub, Scale (method and scalar-first package form).
//   - Distances: ManhattanDistance, ManhattanDistanceFrom.
//   - Neighbours: lazy iterators over the 4 orthogonal or all 8 surrounding
//     offsets, optionally including the point itself.
//   - SpecificNeighbours: ordered neighbours for a caller-chosen direction set.
//
// Why:
//
//   - Grid puzzles address cells by coordinate pairs and walk adjacency
//     constantly; a single shared value type keeps that code uniform.
//
// Conventions:
//
//   - y increases northward ("up"). Raster-oriented callers should invert
//     offsets via direction.YInverted.
//   - All operations are pure; a Point is never mutated in place.
//
// Complexity: every operation is O(1); neighbour iteration is O(d) for
// d ∈ {4, 8, 9}.
package point
