package scenario

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/rng"
	"github.com/katalvlaran/gridpath/terrain"
)

// Option configures Build and NewRandom. Options that do not apply to a
// constructor are ignored by it.
type Option func(*config)

// DefaultMinSeparation is the Euclidean distance Random tries to keep
// between start and goal.
const DefaultMinSeparation = 100.0

type config struct {
	logger        *slog.Logger
	src           rng.Source
	minSeparation float64
	terrainOpts   []terrain.Option
}

func newConfig(opts ...Option) config {
	cfg := config{minSeparation: DefaultMinSeparation}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.src == nil {
		cfg.src = rng.New(rng.DefaultSeed)
	}
	return cfg
}

// WithLogger routes diagnostics to l. Random also hands l to the terrain
// generator. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("scenario: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithSource sets the stream Random draws terrain and endpoints from.
// Panics on nil.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("scenario: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithSeed is WithSource(rng.New(seed)).
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = rng.New(seed) }
}

// WithMinSeparation sets the preferred start/goal distance. 0 accepts any
// distinct pair. Panics if d < 0.
func WithMinSeparation(d float64) Option {
	if d < 0 {
		panic("scenario: WithMinSeparation(d<0)")
	}
	return func(c *config) { c.minSeparation = d }
}

// WithTerrain appends generator options used by Random.
func WithTerrain(opts ...terrain.Option) Option {
	return func(c *config) { c.terrainOpts = append(c.terrainOpts, opts...) }
}
