package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomGrid builds an n×n grid where roughly 70% of cells are walkable.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rnd := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if rnd.Intn(10) < 7 {
				values[r][c] = gridgraph.Walkable
			}
		}
	}
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 500×500 grid. Complexity: O(R×C).
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkDistances measures a full BFS from the corner of an open
// 500×500 grid. Complexity: O(R×C).
func BenchmarkDistances(b *testing.B) {
	const n = 500
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = gridgraph.Walkable
		}
	}
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Distances(gridgraph.Cell{})
	}
}
