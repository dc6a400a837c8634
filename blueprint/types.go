// SPDX-License-Identifier: MIT

package blueprint

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/terragrid/terrain"
)

// Sentinel errors returned by blueprint.
var (
	// ErrInvalidConfig wraps every configuration problem detected by Validate or New.
	ErrInvalidConfig = errors.New("blueprint: invalid configuration")
)

// NoRegion marks an impassable cell in Entry.Region.
const NoRegion = -1

// BoundaryPolicy selects how adjacency behaves at the grid border.
type BoundaryPolicy string

const (
	// BoundaryClip drops neighbors outside the grid.
	BoundaryClip BoundaryPolicy = "clip"
	// BoundaryWrap connects opposite borders.
	BoundaryWrap BoundaryPolicy = "wrap"
)

// Valid reports whether p names a known policy. The empty policy is treated as BoundaryClip.
func (p BoundaryPolicy) Valid() bool {
	return p == "" || p == BoundaryClip || p == BoundaryWrap
}

// Entry is the static record of one cell.
type Entry struct {
	ID          string        `json:"id"`
	Index       int           `json:"index"`
	Row         int           `json:"row"`
	Column      int           `json:"column"`
	RowLabel    string        `json:"row_label"`
	ColumnLabel string        `json:"column_label"`
	X           int           `json:"x"` // pixel left edge
	Y           int           `json:"y"` // pixel top edge
	Adjacent    []string      `json:"adjacent"`
	Terrain     string        `json:"terrain"`
	TerrainCode int           `json:"terrain_code"`
	Color       terrain.Color `json:"color"`
	Raw         float64       `json:"raw"`
	Passable    bool          `json:"passable"`
	Quadrant    int           `json:"quadrant"`
	Region      int           `json:"region"`
}

// Row describes one horizontal band of cells.
type Row struct {
	Index  int
	Label  string
	Top    int // pixel y of the top edge
	Height int
}

// Column describes one vertical band of cells.
type Column struct {
	Index int
	Label string
	Left  int // pixel x of the left edge
	Width int
}

// Quadrant is one block of the spatial partition.
type Quadrant struct {
	ID     int
	BlockX int
	BlockY int
	Cells  []string
}

// Link is a directed adjacency pair.
type Link struct {
	From, To string
}

// options holds construction settings applied by Option.
type options struct {
	logger    *slog.Logger
	workers   int
	heightmap [][]float64
}

// Option customizes New.
type Option func(*options)

// WithLogger routes construction progress to l. The default logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds the goroutines used for noise generation (≤ 0: unbounded).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithHeightmap supplies the raw terrain field instead of synthesizing one.
// raw must be rows×columns with every value in [0, 1].
func WithHeightmap(raw [][]float64) Option {
	return func(o *options) { o.heightmap = raw }
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
