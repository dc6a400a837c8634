// SPDX-License-Identifier: MIT

package spatial

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadEdges indicates boundaries that are too few or not strictly increasing.
var ErrBadEdges = errors.New("spatial: edges must be strictly increasing with at least two entries")

// Index resolves pixel positions against fixed row and column boundaries.
type Index struct {
	rowEdges []int // rowEdges[i] = top of row i; last entry = bottom of the grid
	colEdges []int // colEdges[j] = left of column j; last entry = right of the grid
}

// New builds an Index from cumulative boundaries. Both slices have one entry
// more than the number of rows or columns they describe.
func New(rowEdges, colEdges []int) (*Index, error) {
	if err := checkEdges(rowEdges); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if err := checkEdges(colEdges); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	return &Index{
		rowEdges: append([]int(nil), rowEdges...),
		colEdges: append([]int(nil), colEdges...),
	}, nil
}

// Uniform builds an Index of rows×cols square cells of the given pixel size.
func Uniform(rows, cols, size int) (*Index, error) {
	return New(edges(rows, size), edges(cols, size))
}

// FromSpans builds an Index from per-row heights and per-column widths
// starting at origin (0, 0).
func FromSpans(heights, widths []int) (*Index, error) {
	return New(cumulative(heights), cumulative(widths))
}

func edges(n, size int) []int {
	if n < 1 {
		return nil
	}
	out := make([]int, n+1)
	for i := range out {
		out[i] = i * size
	}

	return out
}

func cumulative(spans []int) []int {
	if len(spans) == 0 {
		return nil
	}
	out := make([]int, len(spans)+1)
	for i, s := range spans {
		out[i+1] = out[i] + s
	}

	return out
}

func checkEdges(e []int) error {
	if len(e) < 2 {
		return ErrBadEdges
	}
	for i := 1; i < len(e); i++ {
		if e[i] <= e[i-1] {
			return ErrBadEdges
		}
	}

	return nil
}

// Rows returns the number of rows covered.
func (ix *Index) Rows() int { return len(ix.rowEdges) - 1 }

// Columns returns the number of columns covered.
func (ix *Index) Columns() int { return len(ix.colEdges) - 1 }

// Bounds returns the covered rectangle as [minX, maxX) × [minY, maxY).
func (ix *Index) Bounds() (minX, minY, maxX, maxY int) {
	return ix.colEdges[0], ix.rowEdges[0], ix.colEdges[len(ix.colEdges)-1], ix.rowEdges[len(ix.rowEdges)-1]
}

// Locate returns the row and column containing pixel (x, y). ok is false
// when the position lies outside the covered rectangle.
func (ix *Index) Locate(x, y float64) (row, col int, ok bool) {
	row, ok = locate(ix.rowEdges, y)
	if !ok {
		return 0, 0, false
	}
	col, ok = locate(ix.colEdges, x)
	if !ok {
		return 0, 0, false
	}

	return row, col, true
}

// Row returns the row containing pixel height y.
func (ix *Index) Row(y float64) (int, bool) { return locate(ix.rowEdges, y) }

// Column returns the column containing pixel width x.
func (ix *Index) Column(x float64) (int, bool) { return locate(ix.colEdges, x) }

// Span returns the inclusive row and column ranges touched by the rectangle
// [x0, x1] × [y0, y1], clipped to the covered area. ok is false when the
// rectangle misses the grid entirely.
func (ix *Index) Span(x0, y0, x1, y1 float64) (r0, c0, r1, c1 int, ok bool) {
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return 0, 0, 0, 0, false
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	minX, minY, maxX, maxY := ix.Bounds()
	if x1 < float64(minX) || y1 < float64(minY) || x0 >= float64(maxX) || y0 >= float64(maxY) {
		return 0, 0, 0, 0, false
	}
	r0, _ = locate(ix.rowEdges, max(y0, float64(minY)))
	c0, _ = locate(ix.colEdges, max(x0, float64(minX)))
	r1 = ix.Rows() - 1
	if y1 < float64(maxY) {
		r1, _ = locate(ix.rowEdges, y1)
	}
	c1 = ix.Columns() - 1
	if x1 < float64(maxX) {
		c1, _ = locate(ix.colEdges, x1)
	}

	return r0, c0, r1, c1, true
}

// locate finds i with edges[i] ≤ v < edges[i+1].
func locate(edges []int, v float64) (int, bool) {
	if math.IsNaN(v) || v < float64(edges[0]) || v >= float64(edges[len(edges)-1]) {
		return 0, false
	}
	i := sort.Search(len(edges), func(i int) bool { return float64(edges[i]) > v })

	return i - 1, true
}
