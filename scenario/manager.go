package scenario

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rng"
	"github.com/katalvlaran/gridpath/terrain"
)

// maxStartDraws bounds Random's start draws to maxStartDraws·(open cells)
// before it settles for any distinct pair.
const maxStartDraws = 4

// Random generates terrain with package terrain and draws both endpoints
// from non-blocked cells. It prefers pairs at least the configured minimum
// separation apart and falls back to any two distinct open cells when no
// such pair is found.
//
// A Random is not safe for concurrent use; its source is shared by both
// steps so one seed reproduces the whole scenario.
type Random struct {
	cfg config
}

// NewRandom returns a Random using WithSource/WithSeed, WithLogger,
// WithMinSeparation and WithTerrain from opts.
func NewRandom(opts ...Option) *Random {
	return &Random{cfg: newConfig(opts...)}
}

// InitializeTerrain runs terrain.Generate on g with the manager's source and
// logger, followed by any WithTerrain options.
func (r *Random) InitializeTerrain(g *grid.Grid) ([]grid.Coord, error) {
	opts := make([]terrain.Option, 0, 2+len(r.cfg.terrainOpts))
	opts = append(opts, terrain.WithSource(r.cfg.src), terrain.WithLogger(r.cfg.logger))
	opts = append(opts, r.cfg.terrainOpts...)

	res, err := terrain.Generate(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Centers, nil
}

// SelectStartAndGoal draws a start cell, then a goal among the open cells
// far enough from it. Each start is examined at most once.
func (r *Random) SelectStartAndGoal(g *grid.Grid) (*grid.Cell, *grid.Cell, error) {
	var open []*grid.Cell
	g.Cells(func(c *grid.Cell) {
		if c.Type() != grid.Blocked {
			open = append(open, c)
		}
	})
	if len(open) < 2 {
		return nil, nil, fmt.Errorf("%w: %d open", ErrNoCandidates, len(open))
	}

	src := r.cfg.src
	tried := mapset.New[int]()
	draws := maxStartDraws * len(open)
	if r.cfg.minSeparation > diagonal(g) {
		draws = 0
	}
	for ; draws > 0 && tried.Size() < len(open); draws-- {
		start := pick(src, open)
		if tried.Has(start.ID()) {
			continue
		}
		tried.Put(start.ID())
		if far := farFrom(open, start, r.cfg.minSeparation); len(far) > 0 {
			return start, pick(src, far), nil
		}
	}

	r.cfg.logger.Debug("no endpoints at minimum separation",
		"minSeparation", r.cfg.minSeparation, "startsTried", tried.Size())
	i := src.IntInclusive(0, len(open)-1)
	j := src.IntInclusive(0, len(open)-2)
	if j >= i {
		j++
	}
	return open[i], open[j], nil
}

func pick(src rng.Source, cells []*grid.Cell) *grid.Cell {
	return cells[src.IntInclusive(0, len(cells)-1)]
}

// farFrom returns the cells other than from lying at least minDist away.
func farFrom(cells []*grid.Cell, from *grid.Cell, minDist float64) []*grid.Cell {
	var out []*grid.Cell
	for _, c := range cells {
		if c != from && distance(from.Coord(), c.Coord()) >= minDist {
			out = append(out, c)
		}
	}
	return out
}

// diagonal is the largest distance between two cells of g.
func diagonal(g *grid.Grid) float64 {
	return math.Hypot(float64(g.Length()-1), float64(g.Width()-1))
}

func distance(a, b grid.Coord) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Fixed is a Manager with caller-chosen terrain and endpoints.
type Fixed struct {
	// Terrain populates the grid and returns its region centers. nil leaves
	// the grid fully Unblocked with no centers.
	Terrain func(g *grid.Grid) ([]grid.Coord, error)
	Start   grid.Coord
	Goal    grid.Coord
}

// InitializeTerrain calls f.Terrain if set.
func (f Fixed) InitializeTerrain(g *grid.Grid) ([]grid.Coord, error) {
	if f.Terrain == nil {
		return nil, nil
	}
	return f.Terrain(g)
}

// SelectStartAndGoal resolves the fixed coordinates. Out-of-range
// coordinates return grid.ErrOutOfBounds and Blocked cells
// ErrBlockedEndpoint.
func (f Fixed) SelectStartAndGoal(g *grid.Grid) (*grid.Cell, *grid.Cell, error) {
	start, err := g.Lookup(f.Start.Row, f.Start.Col)
	if err != nil {
		return nil, nil, err
	}
	goal, err := g.Lookup(f.Goal.Row, f.Goal.Col)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range []*grid.Cell{start, goal} {
		if c.Type() == grid.Blocked {
			return nil, nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c.Coord())
		}
	}
	return start, goal, nil
}
