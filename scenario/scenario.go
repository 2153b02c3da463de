// Package scenario assembles a ready-to-search pathfinding problem: a grid
// whose terrain and costs are fixed, a start cell, a goal cell and the hard
// region centers that generated the terrain.
//
// A Manager supplies the two variable steps (terrain and endpoint choice);
// Build runs them around grid creation and the cost model:
//
//	grid.New → Manager.InitializeTerrain → costmodel.Compute → Manager.SelectStartAndGoal
//
// Two managers are provided. Random generates terrain with package terrain
// and draws distant open endpoints. Fixed applies caller-supplied terrain
// and endpoints.
//
// A Scenario round-trips through a CR-LF text form: the start, the goal and
// each center as "(col, row)" lines, followed by the grid glyph rows.
package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/costmodel"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors.
var (
	// ErrNilManager indicates Build was called without a Manager.
	ErrNilManager = errors.New("scenario: manager is nil")
	// ErrNoCandidates indicates fewer than two non-blocked cells to pick from.
	ErrNoCandidates = errors.New("scenario: fewer than two open cells")
	// ErrBlockedEndpoint indicates a fixed start or goal on a Blocked cell.
	ErrBlockedEndpoint = errors.New("scenario: endpoint is blocked")
	// ErrMalformed indicates text that is not a serialized scenario.
	ErrMalformed = errors.New("scenario: malformed text")
)

// Manager decides the terrain and endpoints of a scenario.
type Manager interface {
	// InitializeTerrain populates a fresh, unfrozen grid and returns the
	// hard region centers it used.
	InitializeTerrain(g *grid.Grid) ([]grid.Coord, error)
	// SelectStartAndGoal picks the endpoints on a grid whose costs are
	// already computed.
	SelectStartAndGoal(g *grid.Grid) (start, goal *grid.Cell, err error)
}

// Scenario is a frozen grid plus the endpoints to route between.
type Scenario struct {
	Grid    *grid.Grid
	Start   *grid.Cell
	Goal    *grid.Cell
	Centers []grid.Coord
}

// Build creates a length×width grid and lets m fill it in.
func Build(m Manager, length, width int, opts ...Option) (*Scenario, error) {
	if m == nil {
		return nil, ErrNilManager
	}
	cfg := newConfig(opts...)

	g, err := grid.New(length, width)
	if err != nil {
		return nil, err
	}
	centers, err := m.InitializeTerrain(g)
	if err != nil {
		return nil, fmt.Errorf("scenario: terrain: %w", err)
	}
	if err = costmodel.Compute(g); err != nil {
		return nil, fmt.Errorf("scenario: costs: %w", err)
	}
	start, goal, err := m.SelectStartAndGoal(g)
	if err != nil {
		return nil, fmt.Errorf("scenario: endpoints: %w", err)
	}

	cfg.logger.Info("scenario built",
		"length", length, "width", width,
		"start", start.Coord(), "goal", goal.Coord(),
		"centers", len(centers))
	return &Scenario{Grid: g, Start: start, Goal: goal, Centers: centers}, nil
}

// Find searches from Start to Goal in the given mode.
func (s *Scenario) Find(mode search.Mode, opts ...search.Option) (search.Result, error) {
	return search.Find(s.Grid, s.Start, s.Goal, mode, opts...)
}
