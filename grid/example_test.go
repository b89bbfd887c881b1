package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/point"
)

//----------------------------------------------------------------------------//
// Example: character-grid search with neighbour counting
//----------------------------------------------------------------------------//

// ExampleFromLines demonstrates the common puzzle loop: build a character
// grid, find cells of interest, and count occupied neighbours around one
// of them.
//
// Scenario:
//
//   - "#" marks an occupied cell, "." an empty one
//   - Neighbours uses 8-connectivity around the centre cell (1,1)
//
// Complexity: O(W·H) for the search, O(8) per neighbour scan.
func ExampleFromLines() {
	g, _ := grid.FromLines([]string{
		"#..",
		".#.",
		"..#",
	})

	occupied := g.FindPointsWithValue("#")
	fmt.Println("occupied:", len(occupied))

	centre := point.Point{X: 1, Y: 1}
	count := 0
	for n := range centre.Neighbours(true, false) {
		if !g.IsValid(n) {
			continue
		}
		if v, _ := g.ValueAt(n); v == "#" {
			count++
		}
	}
	fmt.Println("occupied neighbours of (1,1):", count)

	// Output:
	// occupied: 3
	// occupied neighbours of (1,1): 2
}

// ExampleGrid_RowsAsText shows that a single-character grid renders back to
// its original input lines.
func ExampleGrid_RowsAsText() {
	g, _ := grid.FromLines([]string{
		"ab",
		"cd",
	})
	for _, row := range g.RowsAsText() {
		fmt.Println(row)
	}
	for _, col := range g.ColumnsAsText() {
		fmt.Println(col)
	}

	// Output:
	// ab
	// cd
	// ac
	// bd
}
