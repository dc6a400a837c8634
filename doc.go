// SPDX-License-Identifier: MIT

// Package terragrid builds procedural tile maps and keeps them live: terrain
// synthesis, coordinate labels, adjacency, occupancy bookkeeping and path
// finding over one rectangular grid.
//
// What is in the box?
//
//	coords/    - row/column labels and cell IDs ("a00001" … "aaa99999")
//	terrain/   - midpoint displacement + Perlin noise, band classification, passability rules
//	blueprint/ - the static layout: entries, adjacency, quadrants, regions, YAML config
//	spatial/   - pixel position → cell lookup
//	astar/     - A* over any indexed graph with grid coordinates
//	grid/      - live state (occupy, obstruct, entitle, groups), paths, snapshots
//	store/     - snapshot files in JSON or YAML
//	cmd/terragrid - command-line front end
//
// Quick example:
//
//	bp, err := blueprint.New(ctx, blueprint.DefaultConfig())
//	if err != nil { … }
//	g, _ := grid.New(bp)
//	_ = g.Occupy("b00004", unit)
//	p, err := g.Path("b00004", "k00032")
//
// A blueprint never changes after New. Everything mutable lives in grid.Grid,
// which is safe for concurrent use.
package terragrid
