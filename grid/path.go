// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/terragrid/astar"
	"github.com/katalvlaran/terragrid/blueprint"
)

// Path finds a route from cell from to cell to.
//
// A path that cannot exist returns Path{Found: false} and a nil error.
// astar.ErrBudgetExceeded is returned (wrapped) when WithMaxExpansions is
// set and the search runs out of budget.
func (g *Grid) Path(from, to string) (Path, error) {
	start, err := g.lookup(from)
	if err != nil {
		return Path{}, err
	}
	goal, err := g.lookup(to)
	if err != nil {
		return Path{}, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// Different static regions never connect.
	if start != goal {
		rs, rg := g.bp.RegionOf(start), g.bp.RegionOf(goal)
		if rs == blueprint.NoRegion || rg == blueprint.NoRegion || rs != rg {
			return Path{}, nil
		}
	}

	res, err := astar.Search(pathGraph{g}, start, goal,
		astar.WithHeuristic(g.opts.heuristic),
		astar.WithUnitCost(g.opts.baseCost),
		astar.WithMaxExpansions(g.opts.maxExpansions),
	)
	if err != nil {
		return Path{Expanded: res.Expanded}, fmt.Errorf("grid: path %s→%s: %w", from, to, err)
	}
	p := Path{Cost: res.Cost, Found: res.Found, Expanded: res.Expanded}
	if res.Found {
		p.Cells = make([]string, len(res.Path))
		for k, i := range res.Path {
			p.Cells[k] = g.bp.Space().IDAt(i)
		}
	}

	return p, nil
}

// pathGraph adapts a locked Grid to astar.Graph.
type pathGraph struct{ g *Grid }

func (pg pathGraph) Len() int { return pg.g.bp.Len() }

func (pg pathGraph) Neighbors(u int) []int { return pg.g.bp.Links(u) }

func (pg pathGraph) Position(u int) (int, int) { return pg.g.bp.Position(u) }

// Cost prices the step u→v.
func (pg pathGraph) Cost(u, v int) (int64, bool) {
	g := pg.g
	switch {
	case !g.bp.Linked(v, u):
		return 0, false
	case g.cells[v].occupied:
		return 0, false
	case !g.passable(u) || !g.passable(v):
		return 0, false
	}

	return g.opts.baseCost, true
}
