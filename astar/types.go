// SPDX-License-Identifier: MIT

package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates a nil Graph.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeOutOfRange indicates a start or goal outside [0, Len()).
	ErrNodeOutOfRange = errors.New("astar: node out of range")

	// ErrBadUnitCost indicates a non-positive unit cost.
	ErrBadUnitCost = errors.New("astar: unit cost must be positive")

	// ErrNegativeCost indicates Graph.Cost returned a negative step cost.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrBudgetExceeded indicates the expansion budget ran out before the search settled.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Graph is the read-only view Search walks.
type Graph interface {
	// Len returns the node count; nodes are 0..Len()-1.
	Len() int
	// Neighbors returns the candidate successors of u.
	Neighbors(u int) []int
	// Position returns the (row, column) of u.
	Position(u int) (row, col int)
	// Cost returns the cost of the step u→v, or false if the step is impassable.
	Cost(u, v int) (int64, bool)
}

// Heuristic estimates the distance in cells between two positions.
type Heuristic func(r1, c1, r2, c2 int) int64

// HeuristicManhattan is |Δrow| + |Δcol|.
func HeuristicManhattan(r1, c1, r2, c2 int) int64 {
	return int64(abs(r1-r2) + abs(c1-c2))
}

// HeuristicChebyshev is max(|Δrow|, |Δcol|).
func HeuristicChebyshev(r1, c1, r2, c2 int) int64 {
	return int64(max(abs(r1-r2), abs(c1-c2)))
}

// HeuristicZero turns A* into Dijkstra's algorithm.
func HeuristicZero(_, _, _, _ int) int64 { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Options configures Search.
//
// Heuristic     – distance estimate in cells; default HeuristicManhattan.
// UnitCost      – multiplier applied to the heuristic; default 1, must be > 0.
// MaxExpansions – expansion budget; 0 (default) means unbounded.
type Options struct {
	Heuristic     Heuristic
	UnitCost      int64
	MaxExpansions int
}

// Option is a functional option for Search.
type Option func(*Options)

// WithHeuristic replaces the heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithUnitCost sets the cost of one cell step used to scale the heuristic.
func WithUnitCost(c int64) Option {
	return func(o *Options) { o.UnitCost = c }
}

// WithMaxExpansions caps the number of expanded nodes (n ≤ 0: unbounded).
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns Manhattan heuristic, unit cost 1 and no budget.
func DefaultOptions() Options {
	return Options{Heuristic: HeuristicManhattan, UnitCost: 1}
}

// Result is the outcome of a search.
type Result struct {
	Path     []int // start…goal inclusive; nil when !Found
	Cost     int64 // sum of step costs along Path
	Found    bool
	Expanded int // nodes expanded
}

// Steps returns the number of moves along the path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
