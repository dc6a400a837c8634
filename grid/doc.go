// SPDX-License-Identifier: MIT

// Package grid holds the live state of a terrain map on top of an
// immutable blueprint: who occupies each cell, what obstructs it, who owns
// it, and which named groups it belongs to.
//
// Mutations (Occupy, Vacate, Receive, Move, Obstruct, Destruct, Entitle,
// Divest, Join, Leave) are serialized by a write lock. Each one updates the
// affected cell and the matching derived group in O(1), so that at every
// point
//
//	Occupied()   == {c : c.Occupied}
//	Obstructed() == {c : c.Obstructed}
//	Entitled()   == {c : c.Entitled}
//
// Verify recomputes these predicates from scratch and reports drift.
//
// No-op rules:
//
//   - Occupy on an occupied cell, Vacate on an empty one, Obstruct on an
//     obstructed one, Destruct on a clear one, Entitle on an owned one and
//     Divest on an unowned one change nothing and return nil.
//   - Unknown cell IDs return ErrCellNotFound; nil references return
//     ErrNilReference.
//
// Paths:
//
// Path runs A* over the blueprint adjacency while holding the read lock,
// so the search sees one consistent occupancy state. A step u→v is
// impassable when v does not list u back, when v is occupied, or when u or
// v is impassable (terrain or obstruction). Every other step costs the base
// cost. The default Chebyshev heuristic never overestimates that cost, so
// returned paths are shortest. Because an occupied cell cannot be entered,
// a path to an occupied goal is never found. Start and goal in different
// static regions are rejected without searching.
//
// Occupants, obstructions and owners are opaque Ref values; the grid only
// tracks their presence. Snapshots persist them through their string form.
package grid
