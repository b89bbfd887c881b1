// Package direction enumerates the 8 compass directions and their unit
// offset vectors, plus the symbol tables puzzle inputs commonly use.
//
// What:
//
//   - Direction: N, NE, E, SE, S, SW, W, NW, each with a unit point.Point
//     offset under the y-grows-northward convention.
//   - YInverted: the same offset with Y negated, for raster (y-down) callers.
//   - Symbol maps: arrows (^ > v <), letters (U R D L), and nine-box position
//     names (tl tm tr ml mr bl bm br) resolved to directions or offsets.
//
// Why:
//
//   - Movement instructions arrive as single characters or position names;
//     one shared table avoids every solution re-declaring the mapping.
//
// Errors:
//
//   - ErrUnknownSymbol: a lookup was queried with a symbol outside its table.
//     Callers expecting partial symbol sets must pre-validate membership.
//
// All tables are package-level constant data resolved at init; lookups are
// O(1) and the set of directions is never mutated.
package direction
