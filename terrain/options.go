// SPDX-License-Identifier: MIT
// Package: gridpath/terrain
//
// options.go - functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics on configuration; it returns errors.
//   • Determinism is explicit: WithSeed or WithSource pick the stream.
//   • No hidden globals; everything flows through config.

package terrain

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/rng"
)

// Option customizes a Generate call by mutating its config.
type Option func(*config)

// Defaults (named, no magic numbers).
const (
	DefaultRegionCount   = 8
	DefaultRegionLength  = 31
	DefaultRegionWidth   = 31
	DefaultMaxPaths      = 4
	DefaultMinPathLength = 100
	DefaultLegLength     = 20
	DefaultTurnProb      = 0.4
	DefaultBlockedProb   = 0.2
	DefaultMaxRestarts   = 64

	// Unbounded disables the restart cap (WithMaxRestarts). Generation may
	// then loop forever on grids where lanes cannot fit.
	Unbounded = -1
)

// config is the single source of truth for generator knobs.
type config struct {
	src    rng.Source
	logger *slog.Logger

	regionCount  int
	regionLength int
	regionWidth  int

	maxPaths      int
	minPathLength int
	legLength     int
	turnProb      float64

	blockedProb float64
	maxRestarts int
}

// newConfig applies opts over deterministic defaults, last-wins.
func newConfig(opts ...Option) config {
	cfg := config{
		src:           nil,
		logger:        nil,
		regionCount:   DefaultRegionCount,
		regionLength:  DefaultRegionLength,
		regionWidth:   DefaultRegionWidth,
		maxPaths:      DefaultMaxPaths,
		minPathLength: DefaultMinPathLength,
		legLength:     DefaultLegLength,
		turnProb:      DefaultTurnProb,
		blockedProb:   DefaultBlockedProb,
		maxRestarts:   DefaultMaxRestarts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rng.New(rng.DefaultSeed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithSource sets the randomness stream. Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("terrain: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed uses a deterministic rng.New(seed) stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = rng.New(seed) }
}

// WithLogger routes generation diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("terrain: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithHardRegions sets how many rectangles of length×width are sprinkled
// with partially blocked cells. count may be 0; dimensions must be >= 1.
func WithHardRegions(count, length, width int) Option {
	if count < 0 || length < 1 || width < 1 {
		panic("terrain: WithHardRegions(count<0 or dimension<1)")
	}
	return func(c *config) {
		c.regionCount, c.regionLength, c.regionWidth = count, length, width
	}
}

// WithLanes configures speed lanes: up to maxPaths lanes, each at least
// minLength cells long, built from straight legs of legLength cells.
func WithLanes(maxPaths, minLength, legLength int) Option {
	if maxPaths < 0 || minLength < 1 || legLength < 1 {
		panic("terrain: WithLanes(maxPaths<0 or length<1)")
	}
	return func(c *config) {
		c.maxPaths, c.minPathLength, c.legLength = maxPaths, minLength, legLength
	}
}

// WithTurnProbability sets the chance of turning after each completed leg.
func WithTurnProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("terrain: WithTurnProbability(p outside [0,1])")
	}
	return func(c *config) { c.turnProb = p }
}

// WithBlockedProbability sets the chance that a non-lane cell is blocked.
func WithBlockedProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("terrain: WithBlockedProbability(p outside [0,1])")
	}
	return func(c *config) { c.blockedProb = p }
}

// WithMaxRestarts caps the global lane restarts before Generate fails with
// ErrGenerationExhausted. Pass Unbounded to retry forever.
func WithMaxRestarts(n int) Option {
	if n < Unbounded {
		panic("terrain: WithMaxRestarts(n<-1)")
	}
	return func(c *config) { c.maxRestarts = n }
}
