// Package gridpath generates heterogeneous grid terrain and finds cheap
// routes across it with best-first search.
//
// What is in the box?
//
//	A deterministic, seedable toolkit built from small packages:
//		• Terrain: hard regions, speed lanes and blocked cells on a 120×160 grid
//		• Costs: directional, asymmetric edge costs with a fast-lane discount
//		• Search: uniform-cost, A* and weighted A* over one shared engine
//		• Scenarios: endpoint selection plus a CR-LF text format that round-trips
//
// Packages:
//
//	rng/       - seedable random source, biased coin, inclusive ints, shuffle
//	grid/      - Grid, Cell, 8-way Direction, freeze, glyph text codec
//	pqueue/    - generic min-heap with FIFO ties and decrease-key
//	terrain/   - three-pass generator with a bounded lane-restart loop
//	costmodel/ - edge cost table; Compute fills and freezes a grid
//	search/    - Find / FindAll over a frozen grid, safe for concurrent use
//	scenario/  - Manager strategy, Build, MarshalText / Parse
//
// Pipeline:
//
//	grid.New ─► terrain.Generate ─► costmodel.Compute ─► search.Find
//	     └──────────── scenario.Build wires the first three ──────────┘
//
// Quick start:
//
//	s, err := scenario.Build(scenario.NewRandom(scenario.WithSeed(7)), 120, 160)
//	if err != nil { ... }
//	res, err := s.Find(search.AStar)
//
// See examples/scenario for a runnable comparison of the three modes.
package gridpath
