package direction

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/point"
)

// ErrUnknownSymbol indicates a lookup with a symbol outside its table.
var ErrUnknownSymbol = errors.New("direction: unknown symbol")

// arrows maps movement arrows to orthogonal directions.
var arrows = map[rune]Direction{
	'^': N,
	'>': E,
	'v': S,
	'<': W,
}

// letters maps U/R/D/L movement letters to orthogonal directions.
var letters = map[rune]Direction{
	'U': N,
	'R': E,
	'D': S,
	'L': W,
}

// nineBox maps 9-box position names (top/middle/bottom × left/middle/right,
// the center cell excluded) to the surrounding offsets. "t" rows sit at +y.
var nineBox = map[string]point.Point{
	"tl": {X: -1, Y: 1},
	"tm": {X: 0, Y: 1},
	"tr": {X: 1, Y: 1},
	"ml": {X: -1, Y: 0},
	"mr": {X: 1, Y: 0},
	"bl": {X: -1, Y: -1},
	"bm": {X: 0, Y: -1},
	"br": {X: 1, Y: -1},
}

// FromArrow resolves one of `^ > v <` to its direction.
// Returns ErrUnknownSymbol for any other rune.
func FromArrow(r rune) (Direction, error) {
	d, ok := arrows[r]
	if !ok {
		return 0, fmt.Errorf("arrow %q: %w", r, ErrUnknownSymbol)
	}

	return d, nil
}

// FromLetter resolves one of `U R D L` to its direction.
// Returns ErrUnknownSymbol for any other rune.
func FromLetter(r rune) (Direction, error) {
	d, ok := letters[r]
	if !ok {
		return 0, fmt.Errorf("letter %q: %w", r, ErrUnknownSymbol)
	}

	return d, nil
}

// FromNineBox resolves a 9-box position name (tl, tm, tr, ml, mr, bl, bm, br)
// to its offset vector. Returns ErrUnknownSymbol for any other name.
func FromNineBox(name string) (point.Point, error) {
	o, ok := nineBox[name]
	if !ok {
		return point.Point{}, fmt.Errorf("nine-box %q: %w", name, ErrUnknownSymbol)
	}

	return o, nil
}
