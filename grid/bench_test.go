package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
)

// BenchmarkFindPointsWithValue measures the linear value scan on a randomly
// generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H)
func BenchmarkFindPointsWithValue(b *testing.B) {
	const n = 1000
	// Setup: deterministic random grid
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5) // values 0..4
		}
		rows[y] = row
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FindPointsWithValue(3)
	}
}

// BenchmarkColumns measures the on-demand transpose of a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkColumns(b *testing.B) {
	const n = 1000
	rows := make([][]int, n)
	for y := 0; y < n; y++ {
		rows[y] = make([]int, n)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Columns()
	}
}
