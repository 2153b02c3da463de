package search

import (
	"context"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pqueue"
)

// Find runs a best-first search from start to goal on g in the given mode.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. g must be frozen, i.e. costs computed (ErrNotReady).
//  3. start and goal must be cells of g (ErrForeignCell).
//  4. mode must be defined (ErrUnknownMode).
//
// Returns ErrNoPath when the goal is unreachable; +Inf edges are never
// relaxed. A canceled Options.Ctx returns ctx.Err().
//
// Complexity:
//
//   - Time:  O(V log V) with V = cells (each cell is queued at most once).
//   - Space: O(V) for the arena, closed set and queue.
func Find(g *grid.Grid, start, goal *grid.Cell, mode Mode, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.Frozen() {
		return Result{}, ErrNotReady
	}
	if !g.Owns(start) || !g.Owns(goal) {
		return Result{}, ErrForeignCell
	}
	if !mode.valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	r := &runner{
		g:      g,
		goal:   goal,
		mode:   mode,
		opts:   cfg,
		nodes:  make([]node, g.Size()),
		closed: mapset.New[int](),
		open:   pqueue.New(func(id int) int { return id }),
	}
	return r.run(start)
}

// FindAll runs Find once per mode on the same start and goal.
func FindAll(g *grid.Grid, start, goal *grid.Cell, opts ...Option) (map[Mode]Result, error) {
	out := make(map[Mode]Result, len(Modes))
	for _, m := range Modes {
		res, err := Find(g, start, goal, m, opts...)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", m, err)
		}
		out[m] = res
	}
	return out, nil
}

// node is the per-run search record of one cell.
type node struct {
	g, h, f float64
	parent  int
	visited bool
}

// runner holds the mutable state of a single search.
type runner struct {
	g      *grid.Grid
	goal   *grid.Cell
	mode   Mode
	opts   Options
	nodes  []node          // indexed by cell id
	closed mapset.Set[int] // expanded cell ids
	open   *pqueue.Queue[int, int]
}

// priority maps a node to its queue key under the run's mode.
func (r *runner) priority(n *node) float64 {
	switch r.mode {
	case AStar:
		return n.g + n.h
	case WeightedAStar:
		return n.g + r.opts.Weight*n.h
	}
	return n.g
}

func (r *runner) estimate(c *grid.Cell) float64 {
	if r.mode == UniformCost {
		return 0
	}
	return r.opts.Heuristic(c.Coord(), r.goal.Coord())
}

// run is the main loop: pop the best node, stop at the goal, otherwise
// close it and relax its in-grid edges.
func (r *runner) run(start *grid.Cell) (Result, error) {
	if err := r.opts.Ctx.Err(); err != nil {
		return Result{}, err
	}
	s := &r.nodes[start.ID()]
	s.g = 0
	s.h = r.estimate(start)
	s.f = s.g + s.h
	s.parent = start.ID()
	s.visited = true
	r.open.Push(start.ID(), r.priority(s))

	expanded := 0
	for r.open.Len() > 0 {
		id, _ := r.open.Pop()
		expanded++
		if expanded%ctxCheckInterval == 0 {
			if err := r.opts.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		if id == r.goal.ID() {
			return r.result(start, expanded), nil
		}
		if r.closed.Has(id) {
			continue
		}
		r.closed.Put(id)
		r.relax(r.g.CellByID(id))
	}
	return Result{}, ErrNoPath
}

// relax updates every open neighbor of cur reachable over a finite edge.
func (r *runner) relax(cur *grid.Cell) {
	cn := &r.nodes[cur.ID()]
	for _, d := range cur.AvailableDirections() {
		nb := cur.Neighbor(d)
		if r.closed.Has(nb.ID()) {
			continue
		}
		cost := cur.Cost(d)
		if math.IsInf(cost, 1) {
			continue
		}

		tentative := cn.g + cost
		n := &r.nodes[nb.ID()]
		first := !n.visited
		if !first && tentative >= n.g {
			continue
		}
		if first {
			n.h = r.estimate(nb)
		}
		n.parent = cur.ID()
		n.visited = true
		n.g = tentative
		n.f = n.g + n.h

		switch {
		case first:
			r.open.Push(nb.ID(), r.priority(n))
		case !r.opts.StalePriorities:
			r.open.Update(nb.ID(), r.priority(n))
		}
	}
}

// result walks parents back from the goal to the self-parented start.
func (r *runner) result(start *grid.Cell, expanded int) Result {
	var rev []*grid.Cell
	for id := r.goal.ID(); r.nodes[id].parent != id; id = r.nodes[id].parent {
		rev = append(rev, r.g.CellByID(id))
	}
	path := make([]*grid.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return Result{
		Grid:     r.g,
		Start:    start,
		Goal:     r.goal,
		Path:     path,
		Cost:     r.nodes[r.goal.ID()].g,
		Expanded: expanded,
	}
}
