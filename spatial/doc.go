// SPDX-License-Identifier: MIT

// Package spatial maps pixel positions to grid rows and columns.
//
// An Index stores the cumulative pixel boundaries of rows and columns and
// resolves a position with two binary searches. Positions outside the
// covered rectangle, and NaN coordinates, are reported as misses, never
// clamped to a border cell.
package spatial
