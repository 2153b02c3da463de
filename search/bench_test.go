package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/costmodel"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
)

// BenchmarkFind measures each mode corner to corner on a generated
// 120×160 terrain. Complexity: O(V log V).
func BenchmarkFind(b *testing.B) {
	g := grid.Default()
	if _, err := terrain.Generate(g, terrain.WithSeed(42)); err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	if err := costmodel.Compute(g); err != nil {
		b.Fatalf("setup Compute failed: %v", err)
	}
	start, goal := firstOpen(g, false), firstOpen(g, true)

	for _, m := range search.Modes {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Find(g, start, goal, m)
			}
		})
	}
}
