package grid

import (
	"fmt"
	"math"
)

// Grid owns all cells in row-major order. Dimensions are immutable.
type Grid struct {
	length, width int
	cells         []Cell
	frozen        bool
}

// Cell is one terrain unit. Its id is its row-major index and stays stable
// for the life of the grid, so per-search state can live in dense arrays.
type Cell struct {
	g        *Grid
	id       int
	row, col int
	typ      CellType
	fast     bool
	costs    [NumDirections]float64
}

// New allocates a length×width grid of Unblocked, non-fast cells whose
// directional costs are all +Inf until registered.
// Complexity: O(length·width) time and memory.
func New(length, width int) (*Grid, error) {
	if length < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, length, width)
	}
	g := &Grid{
		length: length,
		width:  width,
		cells:  make([]Cell, length*width),
	}
	inf := math.Inf(1)
	for i := range g.cells {
		c := &g.cells[i]
		c.g = g
		c.id = i
		c.row, c.col = i/width, i%width
		for d := range c.costs {
			c.costs[d] = inf
		}
	}
	return g, nil
}

// Default allocates a DefaultLength×DefaultWidth grid.
func Default() *Grid {
	g, _ := New(DefaultLength, DefaultWidth)
	return g
}

// Length returns the number of rows.
func (g *Grid) Length() int { return g.length }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns length·width.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.length && col >= 0 && col < g.width
}

// At returns the cell at (row,col). A coordinate outside the grid is a
// caller bug and panics with an error wrapping ErrOutOfBounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.length, g.width))
	}
	return &g.cells[row*g.width+col]
}

// Lookup is the non-panicking form of At.
func (g *Grid) Lookup(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.length, g.width)
	}
	return &g.cells[row*g.width+col], nil
}

// CellByID returns the cell with the given row-major id; panics when out of range.
func (g *Grid) CellByID(id int) *Cell {
	if id < 0 || id >= len(g.cells) {
		panic(fmt.Errorf("%w: id %d", ErrOutOfBounds, id))
	}
	return &g.cells[id]
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Coordinate returns the position of c. c must belong to g.
func (g *Grid) Coordinate(c *Cell) Coord {
	if !g.Owns(c) {
		panic(fmt.Errorf("%w: cell belongs to another grid", ErrOutOfBounds))
	}
	return Coord{Row: c.row, Col: c.col}
}

// Owns reports whether c is one of g's cells.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.g == g
}

// Perimeter returns every border coordinate exactly once: top and bottom
// rows first (column by column), then the left and right columns of the
// inner rows. Its length is 2·(length+width)-4 for grids of at least 2×2.
func (g *Grid) Perimeter() []Coord {
	out := make([]Coord, 0, 2*(g.length+g.width))
	for col := 0; col < g.width; col++ {
		out = append(out, Coord{0, col})
		if g.length > 1 {
			out = append(out, Coord{g.length - 1, col})
		}
	}
	for row := 1; row < g.length-1; row++ {
		out = append(out, Coord{row, 0})
		if g.width > 1 {
			out = append(out, Coord{row, g.width - 1})
		}
	}
	return out
}

// Freeze makes the terrain read-only. It is idempotent.
func (g *Grid) Freeze() { g.frozen = true }

// Frozen reports whether Freeze has been called.
func (g *Grid) Frozen() bool { return g.frozen }

func (g *Grid) mustMutable() {
	if g.frozen {
		panic(ErrFrozen)
	}
}

// ID returns the stable row-major identity of the cell.
func (c *Cell) ID() int { return c.id }

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Coord returns the cell's position.
func (c *Cell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// Grid returns the owning grid.
func (c *Cell) Grid() *Grid { return c.g }

// Type returns the terrain class.
func (c *Cell) Type() CellType { return c.typ }

// SetType changes the terrain class. Panics on a frozen grid or when making
// a fast cell Blocked.
func (c *Cell) SetType(t CellType) {
	c.g.mustMutable()
	if t == Blocked && c.fast {
		panic(fmt.Errorf("%w: %v", ErrFastBlocked, c.Coord()))
	}
	c.typ = t
}

// IsFast reports whether the cell lies on a speed lane.
func (c *Cell) IsFast() bool { return c.fast }

// SetFast toggles the speed-lane flag. Panics on a frozen grid or when
// flagging a Blocked cell.
func (c *Cell) SetFast(fast bool) {
	c.g.mustMutable()
	if fast && c.typ == Blocked {
		panic(fmt.Errorf("%w: %v", ErrFastBlocked, c.Coord()))
	}
	c.fast = fast
}

// Neighbor returns the adjacent cell in d, or nil past the grid edge.
// An invalid direction value panics.
func (c *Cell) Neighbor(d Direction) *Cell {
	dr, dc := d.Offset()
	r, col := c.row+dr, c.col+dc
	if !c.g.InBounds(r, col) {
		return nil
	}
	return &c.g.cells[r*c.g.width+col]
}

// AvailableDirections lists the directions that stay inside the grid,
// in clockwise order from Up.
func (c *Cell) AvailableDirections() []Direction {
	out := make([]Direction, 0, NumDirections)
	for _, d := range Directions {
		if c.Neighbor(d) != nil {
			out = append(out, d)
		}
	}
	return out
}

// AvailableCardinalDirections is AvailableDirections restricted to
// Up, Right, Down, Left.
func (c *Cell) AvailableCardinalDirections() []Direction {
	out := make([]Direction, 0, len(CardinalDirections))
	for _, d := range CardinalDirections {
		if c.Neighbor(d) != nil {
			out = append(out, d)
		}
	}
	return out
}

// RegisterCost stores the traversal cost of the edge leaving c in d.
// Panics on a frozen grid or when d leads off the grid.
func (c *Cell) RegisterCost(d Direction, cost float64) {
	c.g.mustMutable()
	if c.Neighbor(d) == nil {
		panic(fmt.Errorf("%w: no neighbor %v of %v", ErrOutOfBounds, d, c.Coord()))
	}
	c.costs[d] = cost
}

// Cost returns the registered cost of the edge leaving c in d. Unregistered
// and off-grid edges read as +Inf.
func (c *Cell) Cost(d Direction) float64 {
	d.mustValid()
	return c.costs[d]
}

// String renders the cell position and state.
func (c *Cell) String() string {
	if c.fast {
		return fmt.Sprintf("%v %v fast", c.Coord(), c.typ)
	}
	return fmt.Sprintf("%v %v", c.Coord(), c.typ)
}
