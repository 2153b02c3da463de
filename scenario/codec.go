package scenario

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gridpath/costmodel"
	"github.com/katalvlaran/gridpath/grid"
)

// MarshalText writes the start, the goal and every center as "(col, row)"
// lines, then the grid rows, all CR-LF terminated.
func (s *Scenario) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	writeCoord(&buf, s.Start.Coord())
	writeCoord(&buf, s.Goal.Coord())
	for _, c := range s.Centers {
		writeCoord(&buf, c)
	}
	rows, err := s.Grid.MarshalText()
	if err != nil {
		return nil, err
	}
	buf.Write(rows)
	return buf.Bytes(), nil
}

// String returns the MarshalText form.
func (s *Scenario) String() string {
	b, _ := s.MarshalText()
	return string(b)
}

// note the column-first order
func writeCoord(buf *bytes.Buffer, c grid.Coord) {
	fmt.Fprintf(buf, "(%d, %d)%s", c.Col, c.Row, grid.LineBreak)
}

// Parse reads the MarshalText form back. Every leading line starting with
// '(' is a coordinate: the first two are start and goal, the rest centers.
// The remaining lines are the grid. A Blocked start or goal is rejected
// with ErrBlockedEndpoint, as Fixed does. Costs are recomputed, so the
// returned scenario is ready to search.
func Parse(data []byte) (*Scenario, error) {
	lines := grid.SplitLines(data)
	var coords []grid.Coord
	i := 0
	for ; i < len(lines) && len(lines[i]) > 0 && lines[i][0] == '('; i++ {
		c, err := parseCoord(lines[i])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
		coords = append(coords, c)
	}
	if len(coords) < 2 {
		return nil, fmt.Errorf("%w: want start and goal lines, got %d", ErrMalformed, len(coords))
	}

	g, err := grid.Parse(bytes.Join(lines[i:], []byte("\n")))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: coordinate %v outside %dx%d grid", ErrMalformed, c, g.Length(), g.Width())
		}
	}
	start, goal := g.At(coords[0].Row, coords[0].Col), g.At(coords[1].Row, coords[1].Col)
	for _, c := range []*grid.Cell{start, goal} {
		if c.Type() == grid.Blocked {
			return nil, fmt.Errorf("%w: %w: %v", ErrMalformed, ErrBlockedEndpoint, c.Coord())
		}
	}
	if err = costmodel.Compute(g); err != nil {
		return nil, err
	}

	return &Scenario{Grid: g, Start: start, Goal: goal, Centers: coords[2:]}, nil
}

// parseCoord decodes "(col, row)".
func parseCoord(line []byte) (grid.Coord, error) {
	if len(line) < 2 || line[len(line)-1] != ')' {
		return grid.Coord{}, fmt.Errorf("unterminated coordinate %q", line)
	}
	parts := bytes.Split(line[1:len(line)-1], []byte(","))
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("want 2 components in %q", line)
	}
	col, err := strconv.Atoi(string(bytes.TrimSpace(parts[0])))
	if err != nil {
		return grid.Coord{}, err
	}
	row, err := strconv.Atoi(string(bytes.TrimSpace(parts[1])))
	if err != nil {
		return grid.Coord{}, err
	}
	return grid.Coord{Row: row, Col: col}, nil
}
