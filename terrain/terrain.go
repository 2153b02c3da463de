// Package terrain populates a fresh grid with heterogeneous terrain in three
// ordered passes:
//
//  1. Hard regions: fixed-size rectangles (possibly overlapping) whose cells
//     become PartiallyBlocked on a biased coin flip.
//  2. Speed lanes: non-overlapping perimeter-to-anywhere corridors of fast
//     cells built from straight legs with random perpendicular turns.
//  3. Blocking: every non-fast cell becomes Blocked with a fixed probability.
//
// Lane construction retries failed attempts; once the failures reach the
// grid perimeter length, all accepted lanes are discarded and Pass 2 starts
// over. The number of such restarts is capped (DefaultMaxRestarts) and the
// cap surfaces as ErrGenerationExhausted.
//
// Errors:
//
//   - ErrNilGrid:             nil grid.
//   - ErrRegionTooLarge:      a hard region does not fit inside the grid.
//   - ErrGenerationExhausted: the lane restart cap was exceeded.
//   - grid.ErrFrozen:         the grid was already frozen by the cost model.
package terrain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rng"
)

// Sentinel errors returned by Generate.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("terrain: grid is nil")
	// ErrRegionTooLarge indicates a hard region larger than the grid allows.
	ErrRegionTooLarge = errors.New("terrain: hard region does not fit in grid")
	// ErrGenerationExhausted indicates the lane restart cap was exceeded.
	ErrGenerationExhausted = errors.New("terrain: lane generation exhausted its restarts")
)

// Result describes what Generate placed on the grid.
type Result struct {
	// Centers holds each hard region's center in placement order.
	Centers []grid.Coord
	// Lanes holds the cells of every accepted speed lane in walk order.
	Lanes [][]grid.Coord
	// FailedAttempts counts aborted lane attempts across all restarts.
	FailedAttempts int
	// Restarts counts global Pass-2 restarts.
	Restarts int
}

// Generate runs the three passes over g. g must be unfrozen; terrain already
// present is overwritten only where the passes select cells. On
// ErrGenerationExhausted the grid keeps its Pass-1 terrain and no lanes.
//
// Complexity: Pass 1 O(regions·h·w), Pass 2 O(attempts·(perimeter+lane)),
// Pass 3 O(length·width).
func Generate(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if g.Frozen() {
		return Result{}, grid.ErrFrozen
	}
	cfg := newConfig(opts...)

	var res Result
	var err error
	if res.Centers, err = placeHardRegions(g, cfg); err != nil {
		return Result{}, err
	}
	lanes, err := placeLanes(g, cfg, &res)
	if err != nil {
		return res, err
	}
	res.Lanes = lanes
	blocked := placeBlocked(g, cfg)

	cfg.logger.Info("terrain generated",
		"length", g.Length(), "width", g.Width(),
		"regions", len(res.Centers), "lanes", len(res.Lanes),
		"failedAttempts", res.FailedAttempts, "restarts", res.Restarts,
		"blocked", blocked)
	return res, nil
}

// placeHardRegions is Pass 1. Each top-left corner is uniform over
// [0, length-h-1]×[0, width-w-1]; the center is start + floor(dim/2).
func placeHardRegions(g *grid.Grid, cfg config) ([]grid.Coord, error) {
	h, w := cfg.regionLength, cfg.regionWidth
	if cfg.regionCount > 0 && (g.Length()-h-1 < 0 || g.Width()-w-1 < 0) {
		return nil, fmt.Errorf("%w: %dx%d region in %dx%d grid", ErrRegionTooLarge, h, w, g.Length(), g.Width())
	}
	centers := make([]grid.Coord, 0, cfg.regionCount)
	for i := 0; i < cfg.regionCount; i++ {
		startRow := cfg.src.IntInclusive(0, g.Length()-h-1)
		startCol := cfg.src.IntInclusive(0, g.Width()-w-1)
		centers = append(centers, grid.Coord{Row: startRow + h/2, Col: startCol + w/2})

		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				if cfg.src.Bool() {
					g.At(startRow+row, startCol+col).SetType(grid.PartiallyBlocked)
				}
			}
		}
	}
	return centers, nil
}

// placeLanes is Pass 2.
func placeLanes(g *grid.Grid, cfg config, res *Result) ([][]grid.Coord, error) {
	tryLimit := 2*(g.Length()+g.Width()) - 4
	var lanes [][]*grid.Cell
	failures := 0

	for len(lanes) < cfg.maxPaths {
		lane, reason := walkLane(g, cfg)
		if lane != nil {
			lanes = append(lanes, lane)
			failures = 0
			continue
		}

		res.FailedAttempts++
		failures++
		cfg.logger.Debug("lane attempt aborted",
			"reason", reason, "failures", failures, "accepted", len(lanes))
		if failures < tryLimit {
			continue
		}

		// Global restart: drop every accepted lane and start Pass 2 over.
		clearLanes(lanes)
		lanes = nil
		failures = 0
		res.Restarts++
		cfg.logger.Debug("lane generation restarted", "restarts", res.Restarts)
		if cfg.maxRestarts != Unbounded && res.Restarts > cfg.maxRestarts {
			return nil, fmt.Errorf("%w: cap %d, %d failed attempts",
				ErrGenerationExhausted, cfg.maxRestarts, res.FailedAttempts)
		}
	}

	out := make([][]grid.Coord, len(lanes))
	for i, lane := range lanes {
		out[i] = make([]grid.Coord, len(lane))
		for j, c := range lane {
			out[i][j] = c.Coord()
		}
	}
	return out, nil
}

// walkLane makes one lane attempt. On success the lane cells stay fast and
// are returned; on failure every flag set by the attempt is reverted and a
// short reason is returned.
func walkLane(g *grid.Grid, cfg config) ([]*grid.Cell, string) {
	start := randomEdgeCell(g, cfg.src)
	dir := randomCardinalDirection(start, cfg.src)
	current := start

	lane := make([]*grid.Cell, 0, cfg.minPathLength+cfg.legLength)
	for len(lane) < cfg.minPathLength {
		// One leg: mark current, step in dir, legLength times.
		for count := 0; count < cfg.legLength; count++ {
			if current == nil {
				clearLane(lane)
				return nil, "left grid"
			}
			if current.IsFast() || current.Type() == grid.Blocked {
				clearLane(lane)
				return nil, "lane collision"
			}
			current.SetFast(true)
			lane = append(lane, current)
			current = current.Neighbor(dir)
		}

		if cfg.src.Float64() > 1-cfg.turnProb {
			dir = turn(dir, cfg.src.Bool())
		}
	}
	return lane, ""
}

// turn rotates onto the perpendicular axis; positive means Right for a
// vertical heading and Down for a horizontal one.
func turn(d grid.Direction, positive bool) grid.Direction {
	if d == grid.Up || d == grid.Down {
		if positive {
			return grid.Right
		}
		return grid.Left
	}
	if positive {
		return grid.Down
	}
	return grid.Up
}

// randomEdgeCell unrolls the perimeter, shuffles it and takes the first.
func randomEdgeCell(g *grid.Grid, src rng.Source) *grid.Cell {
	edge := g.Perimeter()
	rng.Shuffle(src, edge)
	return g.At(edge[0].Row, edge[0].Col)
}

// randomCardinalDirection shuffles the in-grid cardinal moves of c and
// takes the first.
func randomCardinalDirection(c *grid.Cell, src rng.Source) grid.Direction {
	dirs := c.AvailableCardinalDirections()
	if len(dirs) == 0 {
		// 1×1 grid: any heading leaves the grid on the first step.
		return grid.Up
	}
	rng.Shuffle(src, dirs)
	return dirs[0]
}

func clearLane(lane []*grid.Cell) {
	for _, c := range lane {
		c.SetFast(false)
	}
}

func clearLanes(lanes [][]*grid.Cell) {
	for _, lane := range lanes {
		clearLane(lane)
	}
}

// placeBlocked is Pass 3. Fast cells are never blocked.
func placeBlocked(g *grid.Grid, cfg config) int {
	if cfg.blockedProb == 0 {
		return 0
	}
	blocked := 0
	g.Cells(func(c *grid.Cell) {
		if c.IsFast() {
			return
		}
		if cfg.src.Float64() <= cfg.blockedProb {
			c.SetType(grid.Blocked)
			blocked++
		}
	})
	return blocked
}
