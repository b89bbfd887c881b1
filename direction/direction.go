package direction

import (
	"strconv"

	"github.com/katalvlaran/gridkit/point"
)

// Direction is one of the 8 compass directions, declared clockwise from N.
type Direction int

const (
	// N is north: offset (0, 1).
	N Direction = iota
	// NE is north-east: offset (1, 1).
	NE
	// E is east: offset (1, 0).
	E
	// SE is south-east: offset (1, -1).
	SE
	// S is south: offset (0, -1).
	S
	// SW is south-west: offset (-1, -1).
	SW
	// W is west: offset (-1, 0).
	W
	// NW is north-west: offset (-1, 1).
	NW
)

// Count is the number of compass directions.
const Count = 8

// offsets holds each direction's unit vector, indexed by Direction.
// y increases northward.
var offsets = [Count]point.Point{
	N:  {X: 0, Y: 1},
	NE: {X: 1, Y: 1},
	E:  {X: 1, Y: 0},
	SE: {X: 1, Y: -1},
	S:  {X: 0, Y: -1},
	SW: {X: -1, Y: -1},
	W:  {X: -1, Y: 0},
	NW: {X: -1, Y: 1},
}

var names = [Count]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// All returns the 8 directions in declaration (clockwise) order.
func All() []Direction {
	return []Direction{N, NE, E, SE, S, SW, W, NW}
}

// Orthogonal returns the 4 axis-aligned directions N, E, S, W.
func Orthogonal() []Direction {
	return []Direction{N, E, S, W}
}

// Offset returns d's unit vector under the y-grows-northward convention.
func (d Direction) Offset() point.Point {
	return offsets[d]
}

// YInverted returns d's offset with the Y component negated, for coordinate
// systems where y increases downward (screen/raster order).
func (d Direction) YInverted() point.Point {
	o := offsets[d]

	return point.Point{X: o.X, Y: -o.Y}
}

// String returns the compass name of d.
func (d Direction) String() string {
	if d < 0 || d >= Count {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}

	return names[d]
}
