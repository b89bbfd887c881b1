// Package gridkit is a small toolkit of 2D grid/vector primitives and a
// handful of generic algorithms for puzzle-style programming.
//
// 🚀 What is gridkit?
//
//	A compact library (testify for tests only) offering:
//		• Point arithmetic: add, subtract, scale, Manhattan distance
//		• Neighbour enumeration: 4- or 8-connectivity, lazy iterators
//		• Compass directions: the 8 unit vectors + arrow/letter/nine-box symbol maps
//		• Grid: a generic rectangular container addressed by Point
//		• Algorithms: binary search over a monotonic function, interval
//		  merging, memoized factorization, base-N conversion
//
// ✨ Why choose gridkit?
//
//   - Predictable – every precondition is an explicit sentinel error, no panics
//   - Pure Go – value types, no cgo, no hidden deps
//   - Honest geometry – y grows northward; raster callers get YInverted
//
// Everything is organized under four subpackages:
//
//	point/      — Point value type: arithmetic, distances, neighbour iterators
//	direction/  — compass enumeration, unit offsets, symbol lookup tables
//	grid/       — generic rectangular Grid[T] with search and text rendering
//	algorithms/ — binary search, interval merge, factorization, base-N
//
// Quick ASCII example:
//
//	    #..#
//	    .##.
//	    #..#
//
//	is a 4×3 Grid[string] whose "#" cells are found with FindPointsWithValue.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
