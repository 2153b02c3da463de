// Package costmodel assigns a traversal cost to every directed edge of a
// generated grid and then freezes the grid.
//
// Rule for the edge leaving src in direction d towards dst:
//
//	dst Blocked                         → +Inf (impassable)
//	cardinal, same type                 → 1
//	cardinal, different type            → 1.5
//	diagonal, same type, Unblocked      → √2
//	diagonal, same type, Partially      → 2√2
//	diagonal, different type            → 1.5·√2
//	dst fast                            → cost / 4
//
// "Same type" compares src and dst CellType, while the blocked and fast tests
// look only at dst, so A→B and B→A may differ.
package costmodel

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("costmodel: grid is nil")
	// ErrAlreadyComputed indicates the grid is frozen, so costs exist already.
	ErrAlreadyComputed = errors.New("costmodel: costs already computed")
)

// Base edge costs.
const (
	PerpendicularUnblocked        = 1.0
	PerpendicularPartiallyBlocked = 1.0
	PerpendicularDifferent        = 1.5
	DiagonalUnblocked             = math.Sqrt2
	DiagonalPartiallyBlocked      = 2 * math.Sqrt2
	DiagonalDifferent             = 1.5 * math.Sqrt2

	// FastLaneDivisor scales any edge entering a fast cell.
	FastLaneDivisor = 4.0
)

// EdgeCost applies the cost rule to one edge.
func EdgeCost(from, to grid.CellType, toFast bool, d grid.Direction) float64 {
	if to == grid.Blocked {
		return math.Inf(1)
	}
	same := from == to
	var cost float64
	switch {
	case d.IsCardinal() && same && from == grid.Unblocked:
		cost = PerpendicularUnblocked
	case d.IsCardinal() && same:
		cost = PerpendicularPartiallyBlocked
	case d.IsCardinal():
		cost = PerpendicularDifferent
	case same && from == grid.Unblocked:
		cost = DiagonalUnblocked
	case same:
		cost = DiagonalPartiallyBlocked
	default:
		cost = DiagonalDifferent
	}
	if toFast {
		cost /= FastLaneDivisor
	}
	return cost
}

// Compute registers the cost of every in-grid edge of g and freezes it.
// Calling it twice returns ErrAlreadyComputed.
//
// Complexity: O(8·length·width).
func Compute(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Frozen() {
		return ErrAlreadyComputed
	}
	g.Cells(func(c *grid.Cell) {
		for _, d := range c.AvailableDirections() {
			n := c.Neighbor(d)
			c.RegisterCost(d, EdgeCost(c.Type(), n.Type(), n.IsFast(), d))
		}
	})
	g.Freeze()
	return nil
}

// MinStepCost returns the cheapest possible cardinal and diagonal edge costs
// under this model. Heuristics scaled by these stay admissible.
func MinStepCost() (cardinal, diagonal float64) {
	return PerpendicularUnblocked / FastLaneDivisor, DiagonalUnblocked / FastLaneDivisor
}
