// Package search defines the best-first path search over a frozen grid.
//
// One engine serves three priority modes:
//
//	UniformCost:   priority = g
//	AStar:         priority = g + h
//	WeightedAStar: priority = g + w·h   (w = Options.Weight, default 2)
//
// g is the cost so far, h the heuristic estimate to the goal. With the
// default LaneOctile heuristic (admissible and consistent under the cost
// model) UniformCost and AStar return optimal paths; WeightedAStar trades
// optimality for fewer expansions and never returns a cheaper path.
//
// Per-run state (g, h, f, parent, visited) lives in a dense arena indexed by
// cell id and the closed set is keyed by cell id, so the grid is only read:
// any number of searches may run over one frozen grid concurrently.
//
// Queue policy: ties pop in insertion order; when a queued node's g
// improves its priority is lowered in place (decrease-key).
// WithStalePriorities keeps the first-insertion priority instead, which can
// yield suboptimal paths and exists for comparison runs.
//
// Errors (sentinel):
//
//	ErrNilGrid      – grid pointer is nil.
//	ErrNotReady     – grid not frozen (costs not computed yet).
//	ErrForeignCell  – start or goal is nil or belongs to another grid.
//	ErrUnknownMode  – mode outside the three defined values.
//	ErrNoPath       – the frontier emptied before reaching the goal.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Find.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNotReady indicates that the grid has no computed costs yet.
	ErrNotReady = errors.New("search: grid costs not computed")

	// ErrForeignCell indicates a nil start/goal or one owned by another grid.
	ErrForeignCell = errors.New("search: cell does not belong to grid")

	// ErrUnknownMode indicates an undefined Mode value.
	ErrUnknownMode = errors.New("search: unknown mode")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("search: no path between start and goal")
)

// Mode selects the priority function.
type Mode int

const (
	// UniformCost orders by cost so far.
	UniformCost Mode = iota
	// AStar orders by cost so far plus heuristic.
	AStar
	// WeightedAStar orders by cost so far plus Weight times heuristic.
	WeightedAStar
)

// Modes lists every defined mode.
var Modes = []Mode{UniformCost, AStar, WeightedAStar}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case UniformCost:
		return "UniformCost"
	case AStar:
		return "AStar"
	case WeightedAStar:
		return "WeightedAStar"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool { return m >= UniformCost && m <= WeightedAStar }

// DefaultWeight is the WeightedAStar inflation factor.
const DefaultWeight = 2.0

// ctxCheckInterval is the number of expansions between cancellation checks.
const ctxCheckInterval = 1024

// Options configures Find.
//
// Ctx             – optional cancellation; nil means context.Background().
// Weight          – WeightedAStar factor, must be >= 1.
// Heuristic       – estimate used by AStar and WeightedAStar.
// StalePriorities – do not re-prioritise queued nodes whose g improves.
type Options struct {
	Ctx             context.Context
	Weight          float64
	Heuristic       Heuristic
	StalePriorities bool
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// DefaultOptions returns Weight=2, Heuristic=LaneOctile(), decrease-key on.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Weight:    DefaultWeight,
		Heuristic: LaneOctile(),
	}
}

// WithContext attaches a cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("search: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithWeight sets the WeightedAStar factor. Panics if w < 1.
func WithWeight(w float64) Option {
	if w < 1 {
		panic("search: WithWeight(w<1)")
	}
	return func(o *Options) { o.Weight = w }
}

// WithHeuristic replaces the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("search: WithHeuristic(nil)")
	}
	return func(o *Options) { o.Heuristic = h }
}

// WithStalePriorities keeps each node's first queue priority even after its
// g improves.
func WithStalePriorities() Option {
	return func(o *Options) { o.StalePriorities = true }
}

// Result is a found path.
//
// Path runs from the first step after Start up to and including Goal; it is
// empty when Start == Goal. Cost is the sum of edge costs along Path.
// Expanded counts nodes popped from the frontier.
type Result struct {
	Grid     *grid.Grid
	Start    *grid.Cell
	Goal     *grid.Cell
	Path     []*grid.Cell
	Cost     float64
	Expanded int
}

// Coords returns the path positions.
func (r Result) Coords() []grid.Coord {
	out := make([]grid.Coord, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Coord()
	}
	return out
}
