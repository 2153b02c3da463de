package costmodel_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/costmodel"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/terrain"
)

// BenchmarkCompute measures cost registration on a generated 120×160 grid.
// Compute freezes its grid, so each iteration works on a fresh parse of the
// same terrain. Complexity: O(8·length·width).
func BenchmarkCompute(b *testing.B) {
	g := grid.Default()
	if _, err := terrain.Generate(g, terrain.WithSeed(42)); err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	text, _ := g.MarshalText()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		fresh, err := grid.Parse(text)
		if err != nil {
			b.Fatalf("setup Parse failed: %v", err)
		}
		b.StartTimer()
		if err := costmodel.Compute(fresh); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}
