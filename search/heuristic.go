package search

import (
	"math"

	"github.com/katalvlaran/gridpath/costmodel"
	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from one position to another.
type Heuristic func(from, to grid.Coord) float64

// Zero always estimates 0; AStar then behaves like UniformCost.
func Zero(_, _ grid.Coord) float64 { return 0 }

// Octile returns the 8-connected distance with the given cardinal and
// diagonal step costs: diagonal·min(dr,dc) + cardinal·(max-min).
func Octile(cardinal, diagonal float64) Heuristic {
	return func(from, to grid.Coord) float64 {
		dr := math.Abs(float64(from.Row - to.Row))
		dc := math.Abs(float64(from.Col - to.Col))
		lo, hi := math.Min(dr, dc), math.Max(dr, dc)
		return diagonal*lo + cardinal*(hi-lo)
	}
}

// LaneOctile is Octile scaled to the cheapest edges of the cost model
// (fast-lane steps), so it never overestimates on generated terrain.
func LaneOctile() Heuristic {
	return Octile(costmodel.MinStepCost())
}
