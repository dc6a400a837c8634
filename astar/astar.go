// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"
	"math"
)

// Search finds a path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must lie in [0, g.Len()) (ErrNodeOutOfRange).
//  3. UnitCost must be positive (ErrBadUnitCost).
//
// Returns Result{Found: false} with a nil error when the goal is unreachable.
func Search(g Graph, start, goal int, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.Len()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return Result{}, fmt.Errorf("%w: start=%d goal=%d len=%d", ErrNodeOutOfRange, start, goal, n)
	}
	if cfg.UnitCost <= 0 {
		return Result{}, ErrBadUnitCost
	}

	// 3) Prepare per-search state
	r := &runner{
		g:      g,
		opts:   cfg,
		gScore: make([]int64, n),
		parent: make([]int, n),
	}
	r.goalRow, r.goalCol = g.Position(goal)
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt64
		r.parent[i] = -1
	}

	// 4) Seed the frontier and run
	r.push(start, 0)

	return r.run()
}

// runner holds the mutable state of one search.
type runner struct {
	g                Graph
	opts             Options
	gScore           []int64 // best known cost from start
	parent           []int   // predecessor on the best known path, -1 if none
	pq               frontier
	seq              uint64 // insertion counter for stable ties
	expanded         int
	goalRow, goalCol int
}

// push records cost g for node u and queues it.
func (r *runner) push(u int, g int64) {
	r.gScore[u] = g
	row, col := r.g.Position(u)
	f := g + r.opts.Heuristic(row, col, r.goalRow, r.goalCol)*r.opts.UnitCost
	heap.Push(&r.pq, &item{node: u, g: g, f: f, seq: r.seq})
	r.seq++
}

// run is the main A* loop.
func (r *runner) run() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest (f, seq) entry; skip stale ones.
		it := heap.Pop(&r.pq).(*item)
		u := it.node
		if it.g > r.gScore[u] {
			continue
		}

		// 2) Goal test on coordinates.
		if row, col := r.g.Position(u); row == r.goalRow && col == r.goalCol {
			return Result{Path: r.reconstruct(u), Cost: it.g, Found: true, Expanded: r.expanded}, nil
		}

		// 3) Budget.
		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d", ErrBudgetExceeded, r.opts.MaxExpansions)
		}

		// 4) Relax successors.
		for _, v := range r.g.Neighbors(u) {
			w, ok := r.g.Cost(u, v)
			if !ok {
				continue
			}
			if w < 0 {
				return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d→%d cost=%d", ErrNegativeCost, u, v, w)
			}
			ng := it.g + w
			if ng >= r.gScore[v] {
				continue
			}
			r.parent[v] = u
			r.push(v, ng)
		}
	}

	return Result{Expanded: r.expanded}, nil
}

// reconstruct walks parent pointers back from u and reverses the chain.
func (r *runner) reconstruct(u int) []int {
	var path []int
	for v := u; v != -1; v = r.parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// item is one frontier entry.
type item struct {
	node int
	g    int64
	f    int64
	seq  uint64
}

// frontier is a min-heap of *item ordered by (f, seq).
type frontier []*item

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*item)) }

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
