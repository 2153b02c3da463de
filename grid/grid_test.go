package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction and lookup
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		length, width int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.length, tc.width)
			if !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.length, tc.width, err)
			}
		})
	}
}

func TestDefault_Dimensions(t *testing.T) {
	g := grid.Default()
	assert.Equal(t, 120, g.Length())
	assert.Equal(t, 160, g.Width())
	assert.Equal(t, 120*160, g.Size())
}

// TestAt_RowMajorIdentity checks ids, coordinates and fresh-cell state.
func TestAt_RowMajorIdentity(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	c := g.At(2, 1)
	assert.Equal(t, 2*4+1, c.ID())
	assert.Equal(t, grid.Coord{Row: 2, Col: 1}, g.Coordinate(c))
	assert.Same(t, c, g.CellByID(9))
	assert.Equal(t, grid.Unblocked, c.Type())
	assert.False(t, c.IsFast())
	assert.True(t, math.IsInf(c.Cost(grid.Up), 1), "unregistered cost must be +Inf")

	n := 0
	prev := -1
	g.Cells(func(c *grid.Cell) {
		require.Equal(t, prev+1, c.ID())
		prev = c.ID()
		n++
	})
	assert.Equal(t, 12, n)
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	g, _ := grid.New(2, 2)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		assert.Panics(t, func() { g.At(rc[0], rc[1]) }, "At(%d,%d)", rc[0], rc[1])
		_, err := g.Lookup(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
	assert.Panics(t, func() { g.CellByID(4) })
	assert.Panics(t, func() { g.At(0, 0).Neighbor(grid.Direction(8)) })
}

func TestCoordinate_ForeignCellPanics(t *testing.T) {
	a, _ := grid.New(2, 2)
	b, _ := grid.New(2, 2)
	assert.False(t, a.Owns(b.At(0, 0)))
	assert.Panics(t, func() { a.Coordinate(b.At(0, 0)) })
}

//----------------------------------------------------------------------------//
// Directions and neighbours
//----------------------------------------------------------------------------//

func TestDirection_Classification(t *testing.T) {
	cardinal := map[grid.Direction]bool{grid.Up: true, grid.Right: true, grid.Down: true, grid.Left: true}
	for _, d := range grid.Directions {
		assert.Equal(t, cardinal[d], d.IsCardinal(), d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Offset()
		or, oc := d.Opposite().Offset()
		assert.Equal(t, [2]int{-dr, -dc}, [2]int{or, oc})
	}
	assert.False(t, grid.Direction(9).IsCardinal())
}

// TestAvailableDirections checks corner, edge and interior cells of a 3×3 grid.
func TestAvailableDirections(t *testing.T) {
	g, _ := grid.New(3, 3)

	corner := g.At(0, 0)
	assert.Equal(t, []grid.Direction{grid.Right, grid.DownRight, grid.Down}, corner.AvailableDirections())
	assert.Equal(t, []grid.Direction{grid.Right, grid.Down}, corner.AvailableCardinalDirections())

	edge := g.At(0, 1)
	assert.Len(t, edge.AvailableDirections(), 5)
	assert.Len(t, edge.AvailableCardinalDirections(), 3)

	mid := g.At(1, 1)
	assert.Len(t, mid.AvailableDirections(), 8)
	assert.Same(t, g.At(0, 2), mid.Neighbor(grid.UpRight))
	assert.Same(t, g.At(2, 0), mid.Neighbor(grid.DownLeft))
	assert.Nil(t, corner.Neighbor(grid.UpLeft))
}

func TestPerimeter(t *testing.T) {
	g, _ := grid.New(4, 5)
	p := g.Perimeter()
	require.Len(t, p, 2*(4+5)-4)

	seen := make(map[grid.Coord]bool)
	for _, c := range p {
		require.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
		onEdge := c.Row == 0 || c.Row == 3 || c.Col == 0 || c.Col == 4
		require.True(t, onEdge, "%v is not on the border", c)
	}
}

//----------------------------------------------------------------------------//
// Mutation rules
//----------------------------------------------------------------------------//

func TestFreeze_BlocksMutation(t *testing.T) {
	g, _ := grid.New(2, 2)
	c := g.At(0, 0)
	c.SetType(grid.PartiallyBlocked)
	c.SetFast(true)
	c.RegisterCost(grid.Right, 0.25)
	assert.Equal(t, 0.25, c.Cost(grid.Right))

	g.Freeze()
	require.True(t, g.Frozen())
	assert.PanicsWithValue(t, grid.ErrFrozen, func() { c.SetType(grid.Unblocked) })
	assert.PanicsWithValue(t, grid.ErrFrozen, func() { c.SetFast(false) })
	assert.PanicsWithValue(t, grid.ErrFrozen, func() { c.RegisterCost(grid.Right, 1) })
}

func TestFastBlockedExclusion(t *testing.T) {
	g, _ := grid.New(2, 2)
	a := g.At(0, 0)
	a.SetFast(true)
	assert.Panics(t, func() { a.SetType(grid.Blocked) })

	b := g.At(1, 1)
	b.SetType(grid.Blocked)
	assert.Panics(t, func() { b.SetFast(true) })
	b.SetFast(false) // clearing is always allowed
}

func TestRegisterCost_OffGridPanics(t *testing.T) {
	g, _ := grid.New(2, 2)
	assert.Panics(t, func() { g.At(0, 0).RegisterCost(grid.Up, 1) })
}

//----------------------------------------------------------------------------//
// Text codec
//----------------------------------------------------------------------------//

// TestMarshalText_RoundTrip sets every glyph and decodes the output again.
func TestMarshalText_RoundTrip(t *testing.T) {
	g, _ := grid.New(2, 3)
	g.At(0, 1).SetType(grid.Blocked)
	g.At(0, 2).SetType(grid.PartiallyBlocked)
	g.At(1, 0).SetFast(true)
	g.At(1, 1).SetType(grid.PartiallyBlocked)
	g.At(1, 1).SetFast(true)

	text, err := g.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "012\r\nab0\r\n", string(text))

	back, err := grid.Parse(text)
	require.NoError(t, err)
	require.Equal(t, g.Length(), back.Length())
	require.Equal(t, g.Width(), back.Width())
	g.Cells(func(c *grid.Cell) {
		o := back.CellByID(c.ID())
		assert.Equal(t, c.Type(), o.Type(), "type at %v", c.Coord())
		assert.Equal(t, c.IsFast(), o.IsFast(), "fast at %v", c.Coord())
	})
	assert.False(t, back.Frozen())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":  "",
		"Ragged": "00\r\n0\r\n",
		"Glyph":  "0x\r\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grid.Parse([]byte(in))
			assert.ErrorIs(t, err, grid.ErrMalformed)
		})
	}
}

func TestParse_AcceptsBareLF(t *testing.T) {
	g, err := grid.Parse([]byte("01\n2a\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Length())
	assert.Equal(t, grid.PartiallyBlocked, g.At(1, 0).Type())
	assert.True(t, g.At(1, 1).IsFast())
}
