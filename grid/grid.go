package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/point"
)

// Grid is a fixed-size rectangular container of cell values addressed by
// point.Point. Width and Height are set at construction and never change;
// only cell values may be mutated afterwards.
type Grid[T comparable] struct {
	width, height int
	cells         [][]T
	// allPoints is generated once at construction, row-major (y outer,
	// x inner). Membership never changes; values may.
	allPoints []point.Point
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so the caller's rows can be mutated afterwards.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], rows[y])
	}
	// Precompute the row-major point list
	pts := make([]point.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pts = append(pts, point.Point{X: x, Y: y})
		}
	}

	return &Grid[T]{width: w, height: h, cells: cells, allPoints: pts}, nil
}

// FromLines builds a Grid[string] of single-character cells from input lines,
// the usual shape of parsed puzzle input. Same error contract as New.
func FromLines(lines []string) (*Grid[string], error) {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, "")
	}

	return New(rows)
}

// IsValid reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) IsValid(p point.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// ValueAt returns the cell value at p, or ErrOutOfBounds if p is invalid.
// Complexity: O(1).
func (g *Grid[T]) ValueAt(p point.Point) (T, error) {
	if !g.IsValid(p) {
		var zero T

		return zero, fmt.Errorf("value at %v: %w", p, ErrOutOfBounds)
	}

	return g.cells[p.Y][p.X], nil
}

// SetValueAt replaces the cell value at p, or returns ErrOutOfBounds if p
// is invalid. Complexity: O(1).
func (g *Grid[T]) SetValueAt(p point.Point, v T) error {
	if !g.IsValid(p) {
		return fmt.Errorf("set value at %v: %w", p, ErrOutOfBounds)
	}
	g.cells[p.Y][p.X] = v

	return nil
}

// FindPointsWithValue returns the points whose cell equals v, in row-major
// order. The result has zero length when no cell matches.
// Complexity: O(W×H).
func (g *Grid[T]) FindPointsWithValue(v T) []point.Point {
	var matches []point.Point
	for _, p := range g.allPoints {
		if g.cells[p.Y][p.X] == v {
			matches = append(matches, p)
		}
	}

	return matches
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// AllPoints returns the precomputed row-major point list (y outer, x inner).
// Its length is Width×Height. The result is a copy, so callers may reorder
// or mutate it freely.
func (g *Grid[T]) AllPoints() []point.Point {
	pts := make([]point.Point, len(g.allPoints))
	copy(pts, g.allPoints)

	return pts
}

// Rows returns a copy of the cell rows, top row first.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y])
	}

	return rows
}

// Columns returns the transpose of the cell rows, leftmost column first.
// Computed on demand; mutations after the call are not reflected in the
// returned slices. Complexity: O(W×H).
func (g *Grid[T]) Columns() [][]T {
	cols := make([][]T, g.width)
	for x := 0; x < g.width; x++ {
		col := make([]T, g.height)
		for y := 0; y < g.height; y++ {
			col[y] = g.cells[y][x]
		}
		cols[x] = col
	}

	return cols
}

// RowsAsText joins each row's values into one string per row, using each
// value's default textual representation. With single-character cells this
// reproduces the original input lines.
func (g *Grid[T]) RowsAsText() []string {
	out := make([]string, g.height)
	for y, row := range g.cells {
		out[y] = joinCells(row)
	}

	return out
}

// ColumnsAsText joins each column's values into one string per column.
func (g *Grid[T]) ColumnsAsText() []string {
	cols := g.Columns()
	out := make([]string, len(cols))
	for x, col := range cols {
		out[x] = joinCells(col)
	}

	return out
}

// String renders the grid as its rows joined by newlines.
func (g *Grid[T]) String() string {
	return strings.Join(g.RowsAsText(), "\n")
}

func joinCells[T any](cells []T) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(fmt.Sprint(c))
	}

	return sb.String()
}
