package point

import (
	"cmp"
	"fmt"
	"iter"
)

// Point is an immutable 2D coordinate / vector. Two Points with equal
// coordinates are interchangeable; there is no identity beyond value.
type Point struct {
	X, Y int
}

// neighbourOffsets lists the 8 surrounding unit offsets in compass order
// N, NE, E, SE, S, SW, W, NW (y grows northward).
var neighbourOffsets = [8]Point{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Add returns the componentwise sum p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns the componentwise difference p - o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale returns the componentwise product p * k.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Scale is the scalar-first form of Point.Scale; the two commute, so either
// operand order reaches the same result.
func Scale(k int, p Point) Point {
	return p.Scale(k)
}

// ManhattanDistance returns |X| + |Y|, the taxicab length of p as a vector.
func (p Point) ManhattanDistance() int {
	return abs(p.X) + abs(p.Y)
}

// ManhattanDistanceFrom returns the Manhattan distance between p and o.
func (p Point) ManhattanDistanceFrom(o Point) int {
	return p.Sub(o).ManhattanDistance()
}

// Compare orders Points structurally, as tuple comparison of (X, Y):
// by X first, then Y. It returns -1, 0, or +1.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// Less reports whether a sorts before b under Compare.
func Less(a, b Point) bool {
	return Compare(a, b) < 0
}

// Neighbours returns a lazy, restartable iterator over the points adjacent
// to p. With includeDiagonals=false only the 4 orthogonal offsets are used
// (those with exactly one non-zero axis); with true, all 8. When includeSelf
// is set, p itself is yielded as the final element.
//
// Yield order is fixed: N, NE, E, SE, S, SW, W, NW (N, E, S, W when
// orthogonal-only), then self. Bounds are not checked; pair with
// Grid.IsValid when iterating inside a grid.
func (p Point) Neighbours(includeDiagonals, includeSelf bool) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, off := range neighbourOffsets {
			if !includeDiagonals && off.X != 0 && off.Y != 0 {
				continue
			}
			if !yield(p.Add(off)) {
				return
			}
		}
		if includeSelf {
			yield(p)
		}
	}
}

// Offsetter is anything that resolves to a unit offset vector, notably
// direction.Direction.
type Offsetter interface {
	Offset() Point
}

// SpecificNeighbours maps an ordered direction set to the corresponding
// neighbours of p, preserving order. No bounds validation is performed.
func SpecificNeighbours[D Offsetter](p Point, dirs []D) []Point {
	out := make([]Point, len(dirs))
	for i, d := range dirs {
		out[i] = p.Add(d.Offset())
	}

	return out
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
