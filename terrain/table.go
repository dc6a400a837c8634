// SPDX-License-Identifier: MIT

package terrain

import (
	"fmt"
	"math"
	"sort"
)

// Table is an ordered list of bands with strictly increasing upper bounds.
type Table []Band

// Band names of the default table.
const (
	Grass        = "GRASS"
	Barren       = "BARREN"
	Soil         = "SOIL"
	Sand         = "SAND"
	Shore        = "SHORE"
	Lake         = "LAKE"
	Ocean        = "OCEAN"
	Hills        = "HILLS"
	MountainBase = "MOUNTAIN_BASE"
	MountainSide = "MOUNTAIN_SIDE"
	MountainPeak = "MOUNTAIN_PEAK"
	MountainTop  = "MOUNTAIN_TOP"
)

// DefaultTable returns the stock twelve-band table. The top band is closed
// at 1.0 so that every normalized value classifies.
func DefaultTable() Table {
	return Table{
		{Name: Grass, Max: 0.235, Code: 0, Color: Color{169, 169, 169}},
		{Name: Barren, Max: 0.275, Code: 1, Color: Color{91, 91, 91}},
		{Name: Soil, Max: 0.295, Code: 2, Color: Color{138, 137, 112}},
		{Name: Sand, Max: 0.325, Code: 3, Color: Color{210, 180, 140}},
		{Name: Shore, Max: 0.335, Code: 4, Color: Color{0, 191, 255}},
		{Name: Lake, Max: 0.455, Code: 5, Color: Color{61, 89, 171}},
		{Name: Ocean, Max: 0.785, Code: 6, Color: Color{16, 78, 139}},
		{Name: Hills, Max: 0.845, Code: 7, Color: Color{84, 139, 84}},
		{Name: MountainBase, Max: 0.865, Code: 8, Color: Color{105, 105, 105}},
		{Name: MountainSide, Max: 0.925, Code: 9, Color: Color{169, 169, 169}},
		{Name: MountainPeak, Max: 0.945, Code: 10, Color: Color{211, 211, 211}},
		{Name: MountainTop, Max: 1.0, Code: 11, Color: Color{255, 255, 255}},
	}
}

// DefaultImpassable lists the bands that block movement by default:
// deep water and sheer mountainside.
func DefaultImpassable() []string {
	return []string{Ocean, MountainSide, MountainPeak, MountainTop}
}

// Validate checks that t is non-empty, strictly increasing, free of
// duplicate names and codes, and covers [0, 1].
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	names := make(map[string]struct{}, len(t))
	codes := make(map[int]struct{}, len(t))
	for i, b := range t {
		if math.IsNaN(b.Max) {
			return fmt.Errorf("%w: band %q has NaN bound", ErrTableOrder, b.Name)
		}
		if i > 0 && b.Max <= t[i-1].Max {
			return fmt.Errorf("%w: %q (%v) after %q (%v)", ErrTableOrder, b.Name, b.Max, t[i-1].Name, t[i-1].Max)
		}
		if _, dup := names[b.Name]; dup {
			return fmt.Errorf("%w: name %q", ErrDuplicateBand, b.Name)
		}
		if _, dup := codes[b.Code]; dup {
			return fmt.Errorf("%w: code %d", ErrDuplicateBand, b.Code)
		}
		names[b.Name] = struct{}{}
		codes[b.Code] = struct{}{}
	}
	if t[0].Max < 0 {
		return fmt.Errorf("%w: first bound %v below 0", ErrTableGap, t[0].Max)
	}
	if last := t[len(t)-1].Max; last < 1 {
		return fmt.Errorf("%w: last bound %v below 1", ErrTableGap, last)
	}

	return nil
}

// Index returns the position of the first band whose Max is ≥ v.
// v must lie in [0, 1]; t is assumed valid.
func (t Table) Index(v float64) (int, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].Max >= v })
	if i == len(t) {
		return 0, fmt.Errorf("%w: %v above last bound", ErrTableGap, v)
	}

	return i, nil
}

// Classify returns the band for raw value v.
func (t Table) Classify(v float64) (Band, error) {
	i, err := t.Index(v)
	if err != nil {
		return Band{}, err
	}

	return t[i], nil
}

// Lookup returns the band named name.
func (t Table) Lookup(name string) (Band, bool) {
	for _, b := range t {
		if b.Name == name {
			return b, true
		}
	}

	return Band{}, false
}
