package point_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/point"
)

// ExamplePoint_Neighbours walks the 4 orthogonal neighbours of (1,1) in
// compass order N, E, S, W.
func ExamplePoint_Neighbours() {
	p := point.Point{X: 1, Y: 1}
	for n := range p.Neighbours(false, false) {
		fmt.Println(n)
	}

	// Output:
	// (1,2)
	// (2,1)
	// (1,0)
	// (0,1)
}

// ExamplePoint_ManhattanDistanceFrom measures the taxicab distance between
// two points.
func ExamplePoint_ManhattanDistanceFrom() {
	a := point.Point{X: 1, Y: 6}
	b := point.Point{X: 8, Y: 3}
	fmt.Println(a.ManhattanDistanceFrom(b))

	// Output:
	// 10
}
