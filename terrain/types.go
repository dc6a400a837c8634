// SPDX-License-Identifier: MIT

package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by terrain.
var (
	// ErrInvalidParams indicates non-positive dimensions, scale or octaves, or negative roughness.
	ErrInvalidParams = errors.New("terrain: invalid generation parameters")

	// ErrShapeMismatch indicates two fields of different dimensions were blended.
	ErrShapeMismatch = errors.New("terrain: field shapes differ")

	// ErrEmptyTable indicates a band table without bands.
	ErrEmptyTable = errors.New("terrain: band table is empty")

	// ErrTableOrder indicates band upper bounds that are not strictly increasing.
	ErrTableOrder = errors.New("terrain: band bounds must be strictly increasing")

	// ErrTableGap indicates a table that does not cover [0, 1].
	ErrTableGap = errors.New("terrain: band table does not cover [0, 1]")

	// ErrDuplicateBand indicates two bands sharing a name or code.
	ErrDuplicateBand = errors.New("terrain: duplicate band")

	// ErrUnknownBand indicates a passability setting naming a band absent from the table.
	ErrUnknownBand = errors.New("terrain: unknown band")

	// ErrOutOfRange indicates a raw value outside [0, 1].
	ErrOutOfRange = errors.New("terrain: raw value out of range")

	// ErrBadRule indicates a passability rule that failed to compile or run.
	ErrBadRule = errors.New("terrain: invalid passability rule")
)

// Color is an opaque RGB triple carried for presentation layers.
type Color struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// String renders the color as #rrggbb.
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Band is one terrain category with its inclusive upper bound on the raw value.
type Band struct {
	Name  string  `yaml:"name" json:"name"`
	Max   float64 `yaml:"max" json:"max"`
	Code  int     `yaml:"code" json:"code"`
	Color Color   `yaml:"color" json:"color"`
}

// Params configures Generate.
type Params struct {
	Height    int     // rows of the output field
	Width     int     // columns of the output field
	Scale     float64 // noise spatial frequency divisor, > 0
	Octaves   int     // noise octave count, ≥ 1
	Roughness float64 // initial displacement amplitude, ≥ 0
	Seed      int64   // seeds both fields
	Workers   int     // concurrent noise rows; ≤ 0 means unbounded
	Table     Table   // classification table; nil selects DefaultTable
}

// Validate reports ErrInvalidParams for unusable parameter values.
func (p Params) Validate() error {
	switch {
	case p.Height < 1 || p.Width < 1:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidParams, p.Height, p.Width)
	case !(p.Scale > 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidParams, p.Scale)
	case p.Octaves < 1:
		return fmt.Errorf("%w: octaves %d", ErrInvalidParams, p.Octaves)
	case p.Roughness < 0:
		return fmt.Errorf("%w: roughness %v", ErrInvalidParams, p.Roughness)
	}

	return nil
}

// Map is a generated, classified terrain field.
type Map struct {
	Height, Width int
	Raw           [][]float64 // Raw[row][col], blended value in [0, 1]
	Class         [][]int     // Class[row][col], index into Table
	Table         Table
}

// Band returns the band of the cell at (row, col).
func (m *Map) Band(row, col int) Band { return m.Table[m.Class[row][col]] }

// Histogram counts cells per band name.
func (m *Map) Histogram() map[string]int {
	out := make(map[string]int, len(m.Table))
	for _, row := range m.Class {
		for _, k := range row {
			out[m.Table[k].Name]++
		}
	}

	return out
}
