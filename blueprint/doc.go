// SPDX-License-Identifier: MIT

// Package blueprint builds the immutable layout of a terrain grid: the
// label space, pixel coordinates, terrain classification, passability,
// static adjacency, quadrants and passable regions.
//
// A Blueprint is constructed once from a Config and never mutated. Live
// occupancy lives in package grid, which wraps a Blueprint.
//
// Adjacency:
//
// Neighbors are listed in the fixed order NW, N, NE, E, SE, S, SW, W,
// derived by index arithmetic on the linear cell index (n±w±1, n±w, n±1).
// The BoundaryPolicy decides what happens at the border:
//
//   - BoundaryClip (default): out-of-grid neighbors are dropped. Interior
//     cells have 8 neighbors, non-corner edge cells 5, corners 3.
//   - BoundaryWrap: rows and columns wrap around (torus). Every cell has
//     8 distinct neighbors when the grid is at least 3×3.
//
// Both policies are symmetric; Asymmetric audits a built blueprint and
// lists any one-way link.
//
// Quadrants:
//
// The pixel plane is cut into square blocks of side
// CellSize × QuadrantFactor × GridScale. Each cell falls into exactly one
// block; quadrant IDs are assigned in the order blocks are first met while
// walking the cell sequence. Empty blocks do not exist.
//
// Regions:
//
// Passable cells are grouped into connected components over symmetric
// links (BFS). Impassable cells have Region == NoRegion. Two cells in
// different regions can never be joined by a path, whatever the live
// occupancy.
package blueprint
