// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terragrid/astar"
)

// Sentinel errors returned by grid.
var (
	// ErrCellNotFound indicates an unknown cell ID or an out-of-bounds position.
	ErrCellNotFound = errors.New("grid: cell not found")

	// ErrNilReference indicates a nil occupant, obstruction or owner.
	ErrNilReference = errors.New("grid: nil reference")

	// ErrNoPassableCell indicates the map has no cell satisfying a random draw.
	ErrNoPassableCell = errors.New("grid: no passable cell")

	// ErrMoveBlocked indicates Move could not enter its destination.
	ErrMoveBlocked = errors.New("grid: destination cannot be entered")

	// ErrGroupExists indicates NewGroup was called with a taken name.
	ErrGroupExists = errors.New("grid: group already exists")

	// ErrGroupNotFound indicates an unknown group name.
	ErrGroupNotFound = errors.New("grid: group not found")

	// ErrGroupDrift indicates a derived group disagrees with cell state.
	ErrGroupDrift = errors.New("grid: group membership drift")

	// ErrInvalidOption indicates an unusable option value.
	ErrInvalidOption = errors.New("grid: invalid option")

	// ErrSnapshotMismatch indicates a snapshot that does not fit its own configuration.
	ErrSnapshotMismatch = errors.New("grid: snapshot does not match configuration")
)

// Names of the derived groups.
const (
	GroupOccupied   = "occupied"
	GroupObstructed = "obstructed"
	GroupEntitled   = "entitled"
)

// Ref is an opaque occupant, obstruction or owner handle.
type Ref = any

// Unit selects the scale of Distance.
type Unit int

const (
	// UnitPixels measures Manhattan distance between cell origins in pixels.
	UnitPixels Unit = iota
	// UnitCells divides the pixel distance by the cell size.
	UnitCells
)

// EventKind names a state change.
type EventKind int

const (
	EventOccupy EventKind = iota
	EventVacate
	EventObstruct
	EventDestruct
	EventEntitle
	EventDivest
	EventJoin
	EventLeave
)

var eventNames = [...]string{"occupy", "vacate", "obstruct", "destruct", "entitle", "divest", "join", "leave"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}

	return eventNames[k]
}

// Event describes one effective mutation.
type Event struct {
	Kind  EventKind
	Cell  string
	Ref   Ref    // occupant, obstruction or owner involved; nil for leave/join
	Group string // set for EventJoin and EventLeave
}

// Cell is a point-in-time copy of one cell: its static record plus live state.
type Cell struct {
	ID          string
	Index       int
	Row         int
	Column      int
	X, Y        int
	Terrain     string
	Quadrant    int
	Region      int
	Adjacent    []string
	Occupied    bool
	Occupant    Ref
	Obstructed  bool
	Obstruction Ref
	Entitled    bool
	Owner       Ref
	Passable    bool // terrain allows movement and no obstruction
	Groups      []string
}

// Path is the outcome of a path query.
type Path struct {
	Cells    []string // start…goal inclusive; nil when !Found
	Cost     int64
	Found    bool
	Expanded int
}

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p.Cells) == 0 {
		return 0
	}

	return len(p.Cells) - 1
}

// Tail returns the path without its start cell.
func (p Path) Tail() []string {
	if len(p.Cells) < 2 {
		return nil
	}

	return append([]string(nil), p.Cells[1:]...)
}

// options collects Grid settings.
type options struct {
	baseCost      int64
	heuristic     astar.Heuristic
	maxExpansions int
	seed          *int64
	retries       int
	observer      func(Event)
}

// Option customizes New.
type Option func(*options)

// WithBaseCost sets the cost of one step (default 1, must be > 0).
func WithBaseCost(c int64) Option {
	return func(o *options) { o.baseCost = c }
}

// WithHeuristic replaces the Chebyshev path heuristic. Chebyshev is
// admissible under 8-way moves; Manhattan expands fewer cells but may return
// longer routes around obstructions.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *options) { o.heuristic = h }
}

// WithMaxExpansions bounds every path search (n ≤ 0: unbounded).
func WithMaxExpansions(n int) Option {
	return func(o *options) { o.maxExpansions = n }
}

// WithSeed seeds the random cell picker. By default it is seeded from the blueprint seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithRetries sets how many random draws RandomPassableCell tries before
// falling back to scanning (default 64).
func WithRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// WithObserver registers fn to receive every effective mutation. fn runs
// after the lock is released, on the mutating goroutine.
func WithObserver(fn func(Event)) Option {
	return func(o *options) { o.observer = fn }
}

func defaultOptions() options {
	return options{
		baseCost:  1,
		heuristic: astar.HeuristicChebyshev,
		retries:   64,
	}
}
