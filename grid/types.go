// Package grid defines the dense terrain graph used by gridpath: a fixed
// length×width array of cells with 8-directional adjacency and one
// traversal-cost slot per direction.
//
// Lifecycle:
//
//   - New allocates the cells (all Unblocked, none fast).
//   - Terrain generation mutates CellType / fast flags.
//   - The cost model registers directional costs and calls Freeze.
//   - After Freeze the grid is read-only and may be shared by any number of
//     concurrent searches; mutators panic with ErrFrozen.
//
// Errors:
//
//   - ErrBadDimensions: length or width < 1.
//   - ErrOutOfBounds:   coordinate, id or direction outside the grid.
//   - ErrFrozen:        terrain mutation after Freeze.
//   - ErrMalformed:     text input that cannot be decoded into a grid.
//   - ErrFastBlocked:   attempt to make a cell both Blocked and fast.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive length or width.
	ErrBadDimensions = errors.New("grid: length and width must be positive")
	// ErrOutOfBounds indicates a lookup outside the grid extents.
	ErrOutOfBounds = errors.New("grid: out of bounds")
	// ErrFrozen indicates an attempt to mutate terrain after Freeze.
	ErrFrozen = errors.New("grid: terrain is frozen")
	// ErrMalformed indicates undecodable grid text.
	ErrMalformed = errors.New("grid: malformed grid text")
	// ErrFastBlocked indicates an attempt to combine Blocked and fast on one cell.
	ErrFastBlocked = errors.New("grid: cell cannot be both blocked and fast")
)

// Default dimensions.
const (
	DefaultLength = 120
	DefaultWidth  = 160
)

// CellType classifies terrain. The order matters: types are compared for
// equality when classifying an edge as same-type or different-type.
type CellType uint8

const (
	// Unblocked is regular terrain.
	Unblocked CellType = iota
	// PartiallyBlocked is hard-to-traverse terrain.
	PartiallyBlocked
	// Blocked cells cannot be entered.
	Blocked
)

// String returns the type name.
func (t CellType) String() string {
	switch t {
	case Unblocked:
		return "Unblocked"
	case PartiallyBlocked:
		return "PartiallyBlocked"
	case Blocked:
		return "Blocked"
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// Direction is one of the 8 compass moves, clockwise from Up.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft

	// NumDirections is the number of compass directions.
	NumDirections = 8
)

// offsets[d] = {dRow, dCol}.
var offsets = [NumDirections][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

var directionNames = [NumDirections]string{
	"Up", "UpRight", "Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft",
}

// Directions lists every direction in clockwise order.
var Directions = [NumDirections]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// CardinalDirections lists the four perpendicular moves.
var CardinalDirections = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d names one of the 8 directions.
func (d Direction) Valid() bool { return d < NumDirections }

// IsCardinal reports whether d is perpendicular (Up, Right, Down, Left).
// Every other valid direction is diagonal.
func (d Direction) IsCardinal() bool {
	return d.Valid() && d%2 == 0
}

// Offset returns the row and column delta of one step in d.
func (d Direction) Offset() (dRow, dCol int) {
	d.mustValid()
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	d.mustValid()
	return (d + 4) % NumDirections
}

// String returns the direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

func (d Direction) mustValid() {
	if !d.Valid() {
		panic(fmt.Errorf("%w: direction %d", ErrOutOfBounds, uint8(d)))
	}
}

// Coord is a (row, col) position.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
