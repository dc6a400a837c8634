// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/terragrid/blueprint"
	"github.com/katalvlaran/terragrid/spatial"
)

// cellState is the mutable part of a cell.
type cellState struct {
	occupied    bool
	occupant    Ref
	obstructed  bool
	obstruction Ref
	entitled    bool
	owner       Ref
	groups      mapset.Set[string] // custom group names
}

// Grid is the live, concurrency-safe view of a blueprint.
type Grid struct {
	mu    sync.RWMutex
	bp    *blueprint.Blueprint
	index *spatial.Index
	cells []cellState

	occupied   mapset.Set[int]
	obstructed mapset.Set[int]
	entitled   mapset.Set[int]
	custom     map[string]mapset.Set[int]

	rngMu sync.Mutex
	rng   *rand.Rand

	opts options
}

// New wraps bp in a Grid with every cell empty, clear and unowned.
func New(bp *blueprint.Blueprint, opts ...Option) (*Grid, error) {
	if bp == nil {
		return nil, fmt.Errorf("%w: nil blueprint", ErrInvalidOption)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.baseCost <= 0 {
		return nil, fmt.Errorf("%w: base cost %d", ErrInvalidOption, o.baseCost)
	}
	if o.heuristic == nil {
		return nil, fmt.Errorf("%w: nil heuristic", ErrInvalidOption)
	}
	if o.retries < 0 {
		return nil, fmt.Errorf("%w: retries %d", ErrInvalidOption, o.retries)
	}

	rows, cols := bp.Dimensions()
	index, err := spatial.Uniform(rows, cols, bp.CellSize())
	if err != nil {
		return nil, fmt.Errorf("grid: spatial index: %w", err)
	}
	seed := bp.Config().SeedValue()
	if o.seed != nil {
		seed = *o.seed
	}

	g := &Grid{
		bp:         bp,
		index:      index,
		cells:      make([]cellState, bp.Len()),
		occupied:   mapset.New[int](),
		obstructed: mapset.New[int](),
		entitled:   mapset.New[int](),
		custom:     make(map[string]mapset.Set[int]),
		rng:        rand.New(rand.NewSource(seed)),
		opts:       o,
	}
	for i := range g.cells {
		g.cells[i].groups = mapset.New[string]()
	}

	return g, nil
}

// Blueprint returns the static layout.
func (g *Grid) Blueprint() *blueprint.Blueprint { return g.bp }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.bp.Len() }

// lookup resolves id to a linear index.
func (g *Grid) lookup(id string) (int, error) {
	i, ok := g.bp.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCellNotFound, id)
	}

	return i, nil
}

// passable reports live passability of cell i. Callers hold the lock.
func (g *Grid) passable(i int) bool {
	return g.bp.Passable(i) && !g.cells[i].obstructed
}

// snapshotCell copies cell i. Callers hold the lock.
func (g *Grid) snapshotCell(i int) Cell {
	e := g.bp.EntryAt(i)
	s := &g.cells[i]
	c := Cell{
		ID:          e.ID,
		Index:       e.Index,
		Row:         e.Row,
		Column:      e.Column,
		X:           e.X,
		Y:           e.Y,
		Terrain:     e.Terrain,
		Quadrant:    e.Quadrant,
		Region:      e.Region,
		Adjacent:    e.Adjacent,
		Occupied:    s.occupied,
		Occupant:    s.occupant,
		Obstructed:  s.obstructed,
		Obstruction: s.obstruction,
		Entitled:    s.entitled,
		Owner:       s.owner,
		Passable:    g.passable(i),
	}
	c.Groups = g.groupNames(i)

	return c
}

// groupNames lists derived then custom memberships of cell i, sorted within each part.
func (g *Grid) groupNames(i int) []string {
	var out []string
	s := &g.cells[i]
	if s.occupied {
		out = append(out, GroupOccupied)
	}
	if s.obstructed {
		out = append(out, GroupObstructed)
	}
	if s.entitled {
		out = append(out, GroupEntitled)
	}
	var custom []string
	s.groups.Each(func(name string) { custom = append(custom, name) })
	sort.Strings(custom)

	return append(out, custom...)
}

// Cell returns a copy of cell id.
func (g *Grid) Cell(id string) (Cell, error) {
	i, err := g.lookup(id)
	if err != nil {
		return Cell{}, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshotCell(i), nil
}

// CellAt returns a copy of the cell with linear index i.
func (g *Grid) CellAt(i int) (Cell, error) {
	if i < 0 || i >= g.bp.Len() {
		return Cell{}, fmt.Errorf("%w: index %d", ErrCellNotFound, i)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshotCell(i), nil
}

// CellByPosition returns the cell containing pixel (x, y).
func (g *Grid) CellByPosition(x, y float64) (Cell, error) {
	r, c, ok := g.index.Locate(x, y)
	if !ok {
		return Cell{}, fmt.Errorf("%w: position (%v, %v)", ErrCellNotFound, x, y)
	}

	return g.Cell(g.bp.Space().ID(r, c))
}

// RowAt returns the row spanning pixel height y.
func (g *Grid) RowAt(y float64) (blueprint.Row, error) {
	r, ok := g.index.Row(y)
	if !ok {
		return blueprint.Row{}, fmt.Errorf("%w: height %v", ErrCellNotFound, y)
	}
	row, _ := g.bp.Row(r)

	return row, nil
}

// ColumnAt returns the column spanning pixel width x.
func (g *Grid) ColumnAt(x float64) (blueprint.Column, error) {
	c, ok := g.index.Column(x)
	if !ok {
		return blueprint.Column{}, fmt.Errorf("%w: width %v", ErrCellNotFound, x)
	}
	col, _ := g.bp.Column(c)

	return col, nil
}

// CellsInRect returns the cells touched by the pixel rectangle
// [x0, x1] × [y0, y1], row by row. An empty result means the rectangle
// misses the grid.
func (g *Grid) CellsInRect(x0, y0, x1, y1 float64) []Cell {
	r0, c0, r1, c1, ok := g.index.Span(x0, y0, x1, y1)
	if !ok {
		return nil
	}
	_, cols := g.bp.Dimensions()
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Cell, 0, (r1-r0+1)*(c1-c0+1))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			out = append(out, g.snapshotCell(r*cols+c))
		}
	}

	return out
}

// Adjacent returns copies of the neighbors of id in adjacency order.
func (g *Grid) Adjacent(id string) ([]Cell, error) {
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	links := g.bp.Links(i)
	out := make([]Cell, len(links))
	for k, j := range links {
		out[k] = g.snapshotCell(j)
	}

	return out, nil
}

// OccupiedNeighbors returns the occupants of the neighbors of id, in adjacency order.
func (g *Grid) OccupiedNeighbors(id string) ([]Ref, error) {
	i, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Ref
	for _, j := range g.bp.Links(i) {
		if g.cells[j].occupied {
			out = append(out, g.cells[j].occupant)
		}
	}

	return out, nil
}

// Distance returns the Manhattan distance between the origins of a and b.
func (g *Grid) Distance(a, b string, unit Unit) (int, error) {
	i, err := g.lookup(a)
	if err != nil {
		return 0, err
	}
	j, err := g.lookup(b)
	if err != nil {
		return 0, err
	}
	x1, y1 := g.bp.Pixel(i)
	x2, y2 := g.bp.Pixel(j)
	d := abs(x1-x2) + abs(y1-y2)
	if unit == UnitCells {
		d /= g.bp.CellSize()
	}

	return d, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// intn draws from the grid's random source.
func (g *Grid) intn(n int) int {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()

	return g.rng.Intn(n)
}

// RandomCell returns a uniformly chosen cell.
func (g *Grid) RandomCell() Cell {
	i := g.intn(g.bp.Len())
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshotCell(i)
}

// RandomPassableCell returns a uniformly chosen passable cell.
func (g *Grid) RandomPassableCell() (Cell, error) {
	return g.randomWhere(g.passable)
}

// RandomVacantCell returns a uniformly chosen passable, unoccupied cell.
func (g *Grid) RandomVacantCell() (Cell, error) {
	return g.randomWhere(func(i int) bool { return g.passable(i) && !g.cells[i].occupied })
}

// randomWhere draws up to the retry limit, then picks uniformly among all
// matching cells.
func (g *Grid) randomWhere(ok func(int) bool) (Cell, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.bp.Len()
	for try := 0; try < g.opts.retries; try++ {
		if i := g.intn(n); ok(i) {
			return g.snapshotCell(i), nil
		}
	}
	var pool []int
	for i := 0; i < n; i++ {
		if ok(i) {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return Cell{}, ErrNoPassableCell
	}

	return g.snapshotCell(pool[g.intn(len(pool))]), nil
}

// RandomRow returns a uniformly chosen row record.
func (g *Grid) RandomRow() blueprint.Row {
	rows := g.bp.Rows()
	return rows[g.intn(len(rows))]
}

// RandomColumn returns a uniformly chosen column record.
func (g *Grid) RandomColumn() blueprint.Column {
	cols := g.bp.Columns()
	return cols[g.intn(len(cols))]
}
