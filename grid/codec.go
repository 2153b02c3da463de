package grid

import (
	"bytes"
	"fmt"
)

// Terrain glyphs, one byte per cell.
const (
	glyphUnblocked            = '0'
	glyphBlocked              = '1'
	glyphPartiallyBlocked     = '2'
	glyphFastUnblocked        = 'a'
	glyphFastPartiallyBlocked = 'b'
)

// LineBreak terminates every serialized line.
const LineBreak = "\r\n"

// Glyph returns the one-byte terrain encoding of c.
func (c *Cell) Glyph() byte {
	switch {
	case c.typ == Blocked:
		return glyphBlocked
	case c.typ == PartiallyBlocked && c.fast:
		return glyphFastPartiallyBlocked
	case c.typ == PartiallyBlocked:
		return glyphPartiallyBlocked
	case c.fast:
		return glyphFastUnblocked
	}
	return glyphUnblocked
}

// MarshalText encodes the terrain row by row, one glyph per cell and a
// CR-LF after each row.
//
// Complexity: O(length·width).
func (g *Grid) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(g.length * (g.width + len(LineBreak)))
	for row := 0; row < g.length; row++ {
		for col := 0; col < g.width; col++ {
			buf.WriteByte(g.cells[row*g.width+col].Glyph())
		}
		buf.WriteString(LineBreak)
	}
	return buf.Bytes(), nil
}

// String returns the MarshalText form.
func (g *Grid) String() string {
	b, _ := g.MarshalText()
	return string(b)
}

// Parse decodes the MarshalText form into a new, unfrozen grid. Lines may
// end in CR-LF or LF; trailing empty lines are ignored. Costs are not part
// of the text and must be computed again.
func Parse(data []byte) (*Grid, error) {
	lines := SplitLines(data)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	width := len(lines[0])
	g, err := New(len(lines), width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, row, len(line), width)
		}
		for col, ch := range line {
			c := &g.cells[row*width+col]
			switch ch {
			case glyphUnblocked:
			case glyphBlocked:
				c.typ = Blocked
			case glyphPartiallyBlocked:
				c.typ = PartiallyBlocked
			case glyphFastUnblocked:
				c.fast = true
			case glyphFastPartiallyBlocked:
				c.typ, c.fast = PartiallyBlocked, true
			default:
				return nil, fmt.Errorf("%w: glyph %q at (%d,%d)", ErrMalformed, ch, row, col)
			}
		}
	}
	return g, nil
}

// SplitLines splits on LF, strips a trailing CR from each line and drops
// trailing empty lines.
func SplitLines(data []byte) [][]byte {
	raw := bytes.Split(data, []byte("\n"))
	lines := make([][]byte, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, bytes.TrimSuffix(l, []byte("\r")))
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
