// SPDX-License-Identifier: MIT

// Package astar implements A* search over an integer-indexed graph whose
// nodes carry (row, column) positions.
//
// Each Search call is independent: no state survives between calls.
//
// Algorithm:
//
//   - The frontier is a binary min-heap ordered by f = g + h and, for equal
//     f, by insertion sequence. Equal-priority nodes therefore expand in the
//     order they were discovered, on every platform.
//   - Stale heap entries are skipped lazily (no decrease-key).
//   - Graph.Cost reports the cost of stepping u→v, or false for an
//     impassable step; such edges are never pushed.
//   - The search succeeds when the popped node's position equals the goal's
//     position. The path is rebuilt from parent pointers and reversed.
//   - An exhausted frontier yields Result{Found: false}: "no path" is a
//     valid outcome, not an error.
//
// Heuristics are measured in cells and scaled by the unit cost:
// HeuristicManhattan (default), HeuristicChebyshev and HeuristicZero.
// Manhattan overestimates on 8-connected grids, so it trades optimality for
// fewer expansions; Chebyshev is admissible when every step costs at least
// the unit cost.
//
// WithMaxExpansions bounds the number of expanded nodes; exceeding it
// returns ErrBudgetExceeded.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E) worst case for the lazy heap.
package astar
