// SPDX-License-Identifier: MIT

package blueprint

import (
	"context"
	"fmt"

	"github.com/katalvlaran/terragrid/coords"
	"github.com/katalvlaran/terragrid/terrain"
)

// Blueprint is the immutable static layout of a grid. It is safe for
// concurrent use.
type Blueprint struct {
	cfg       Config
	space     *coords.Space
	entries   []Entry
	links     [][]int // links[i] = linear indices adjacent to entry i, compass order
	rows      []Row
	cols      []Column
	quadrants []Quadrant
	regions   int
	histogram map[string]int
}

// New builds a blueprint from cfg.
//
// Steps:
//  1. Validate cfg and build the label space.
//  2. Lay out rows, columns, pixel coordinates and adjacency.
//  3. Partition into quadrants.
//  4. Generate (or accept) the raw field, classify and judge passability.
//  5. Label passable regions.
func New(ctx context.Context, cfg Config, opts ...Option) (*Blueprint, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	// 1) validation and label space
	if cfg.Boundary == "" {
		cfg.Boundary = BoundaryClip
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rows, cols := cfg.Dimensions()
	space, err := coords.NewSpace(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	table := cfg.Table()
	judge, err := cfg.Passability.Compile(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	log.Info("blueprint: label space ready", "rows", rows, "columns", cols, "cells", space.Len())

	b := &Blueprint{
		cfg:     cfg,
		space:   space,
		entries: make([]Entry, space.Len()),
		links:   make([][]int, space.Len()),
		rows:    make([]Row, rows),
		cols:    make([]Column, cols),
	}

	// 2) layout and adjacency
	size := cfg.CellSize
	for r := range b.rows {
		b.rows[r] = Row{Index: r, Label: space.RowLabel(r), Top: r * size, Height: size}
	}
	for c := range b.cols {
		b.cols[c] = Column{Index: c, Label: space.ColumnLabel(c), Left: c * size, Width: size}
	}
	for i := range b.entries {
		r, c := i/cols, i%cols
		b.entries[i] = Entry{
			ID:          space.IDAt(i),
			Index:       i,
			Row:         r,
			Column:      c,
			RowLabel:    b.rows[r].Label,
			ColumnLabel: b.cols[c].Label,
			X:           c * size,
			Y:           r * size,
		}
		b.links[i] = neighbors(cfg.Boundary, rows, cols, r, c)
		adj := make([]string, len(b.links[i]))
		for k, j := range b.links[i] {
			adj[k] = space.IDAt(j)
		}
		b.entries[i].Adjacent = adj
	}
	log.Debug("blueprint: adjacency built", "policy", string(cfg.Boundary))

	// 3) quadrants
	b.buildQuadrants()
	log.Info("blueprint: quadrants built", "quadrants", len(b.quadrants), "side", b.QuadrantSide())

	// 4) terrain
	m, err := b.terrainMap(ctx, o, rows, cols, table)
	if err != nil {
		return nil, err
	}
	for i := range b.entries {
		e := &b.entries[i]
		band := m.Band(e.Row, e.Column)
		e.Terrain = band.Name
		e.TerrainCode = band.Code
		e.Color = band.Color
		e.Raw = m.Raw[e.Row][e.Column]
		e.Passable, err = judge.Passable(terrain.RuleEnv{
			Terrain: band.Name,
			Code:    band.Code,
			Raw:     e.Raw,
			Row:     e.Row,
			Column:  e.Column,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: cell %s: %w", ErrInvalidConfig, e.ID, err)
		}
	}
	b.histogram = m.Histogram()
	log.Info("blueprint: terrain classified", "bands", len(b.histogram))

	// 5) regions
	b.buildRegions()
	log.Info("blueprint: regions labelled", "regions", b.regions)

	return b, nil
}

// terrainMap synthesizes the field, or classifies the supplied heightmap.
func (b *Blueprint) terrainMap(ctx context.Context, o options, rows, cols int, table terrain.Table) (*terrain.Map, error) {
	if o.heightmap == nil {
		m, err := terrain.Generate(ctx, terrain.Params{
			Height:    rows,
			Width:     cols,
			Scale:     b.cfg.NoiseScale,
			Octaves:   b.cfg.NoiseOctaves,
			Roughness: b.cfg.Roughness,
			Seed:      b.cfg.SeedValue(),
			Workers:   o.workers,
			Table:     table,
		})
		if err != nil {
			return nil, fmt.Errorf("blueprint: terrain: %w", err)
		}

		return m, nil
	}

	if len(o.heightmap) != rows {
		return nil, fmt.Errorf("%w: heightmap has %d rows, want %d", ErrInvalidConfig, len(o.heightmap), rows)
	}
	m := &terrain.Map{Height: rows, Width: cols, Raw: make([][]float64, rows), Class: make([][]int, rows), Table: table}
	for r, line := range o.heightmap {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: heightmap row %d has %d columns, want %d", ErrInvalidConfig, r, len(line), cols)
		}
		m.Raw[r] = append([]float64(nil), line...)
		m.Class[r] = make([]int, cols)
		for c, v := range line {
			k, err := table.Index(v)
			if err != nil {
				return nil, fmt.Errorf("%w: heightmap (%d,%d): %w", ErrInvalidConfig, r, c, err)
			}
			m.Class[r][c] = k
		}
	}

	return m, nil
}

// Config returns the configuration the blueprint was built from.
func (b *Blueprint) Config() Config { return b.cfg }

// Space returns the label space.
func (b *Blueprint) Space() *coords.Space { return b.space }

// Len returns the number of cells.
func (b *Blueprint) Len() int { return len(b.entries) }

// Dimensions returns the row and column counts.
func (b *Blueprint) Dimensions() (rows, cols int) { return len(b.rows), len(b.cols) }

// CellSize returns the pixel side of a cell.
func (b *Blueprint) CellSize() int { return b.cfg.CellSize }

// Index returns the linear index of id.
func (b *Blueprint) Index(id string) (int, bool) {
	i, err := b.space.Index(id)
	return i, err == nil
}

// Entry returns a copy of the entry for id.
func (b *Blueprint) Entry(id string) (Entry, bool) {
	i, ok := b.Index(id)
	if !ok {
		return Entry{}, false
	}

	return b.EntryAt(i), true
}

// EntryAt returns a copy of entry i. It panics if i is out of range.
func (b *Blueprint) EntryAt(i int) Entry {
	e := b.entries[i]
	e.Adjacent = append([]string(nil), e.Adjacent...)

	return e
}

// Passable reports the static passability of entry i.
func (b *Blueprint) Passable(i int) bool { return b.entries[i].Passable }

// RegionOf returns the region of entry i, or NoRegion.
func (b *Blueprint) RegionOf(i int) int { return b.entries[i].Region }

// Position returns the (row, column) of entry i.
func (b *Blueprint) Position(i int) (int, int) { return b.entries[i].Row, b.entries[i].Column }

// Pixel returns the top-left pixel of entry i.
func (b *Blueprint) Pixel(i int) (int, int) { return b.entries[i].X, b.entries[i].Y }

// Links returns the adjacency of entry i as linear indices. The slice is
// shared and must not be modified.
func (b *Blueprint) Links(i int) []int { return b.links[i] }

// Rows returns a copy of the row records.
func (b *Blueprint) Rows() []Row { return append([]Row(nil), b.rows...) }

// Row returns row record i.
func (b *Blueprint) Row(i int) (Row, bool) {
	if i < 0 || i >= len(b.rows) {
		return Row{}, false
	}

	return b.rows[i], true
}

// Column returns column record j.
func (b *Blueprint) Column(j int) (Column, bool) {
	if j < 0 || j >= len(b.cols) {
		return Column{}, false
	}

	return b.cols[j], true
}

// Columns returns a copy of the column records.
func (b *Blueprint) Columns() []Column { return append([]Column(nil), b.cols...) }

// Histogram returns the cell count per terrain band.
func (b *Blueprint) Histogram() map[string]int {
	out := make(map[string]int, len(b.histogram))
	for k, v := range b.histogram {
		out[k] = v
	}

	return out
}
