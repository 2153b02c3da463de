package terrain_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/terrain"
)

// BenchmarkGenerate measures all three passes on the default 120×160 grid.
// Complexity: O(length·width) plus lane attempts.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := grid.Default()
		if _, err := terrain.Generate(g, terrain.WithSeed(int64(i+1))); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
