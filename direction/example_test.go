package direction_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/point"
)

// ExampleFromArrow follows a string of movement arrows from the origin.
func ExampleFromArrow() {
	pos := point.Point{}
	for _, r := range "^^>>v" {
		d, err := direction.FromArrow(r)
		if err != nil {
			fmt.Println(err)

			return
		}
		pos = pos.Add(d.Offset())
	}
	fmt.Println("final:", pos)

	// Output:
	// final: (2,1)
}

// ExampleDirection_YInverted shows the raster-order offset for a screen
// coordinate system where y grows downward.
func ExampleDirection_YInverted() {
	fmt.Println("north, y-up:  ", direction.N.Offset())
	fmt.Println("north, y-down:", direction.N.YInverted())

	// Output:
	// north, y-up:   (0,1)
	// north, y-down: (0,-1)
}
