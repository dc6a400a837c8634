// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"

	"github.com/katalvlaran/terragrid/blueprint"
	"github.com/katalvlaran/terragrid/coords"
)

// SnapshotVersion is the layout version written by Snapshot.
const SnapshotVersion = 1

// Snapshot is the persisted form of a Grid, keyed by cell ID.
type Snapshot struct {
	Version int                   `json:"version" yaml:"version"`
	Config  blueprint.Config      `json:"config" yaml:"config"`
	Cells   map[string]CellRecord `json:"cells" yaml:"cells"`
	Groups  map[string][]string   `json:"groups,omitempty" yaml:"groups,omitempty"` // custom groups only
}

// CellRecord is the persisted form of one cell.
type CellRecord struct {
	Coordinates [2]int   `json:"coordinates" yaml:"coordinates"` // pixel (x, y)
	Adjacent    []string `json:"adjacent" yaml:"adjacent"`
	Terrain     string   `json:"terrain" yaml:"terrain"`
	Raw         float64  `json:"raw" yaml:"raw"`
	Passable    bool     `json:"passable" yaml:"passable"`
	Occupied    bool     `json:"occupied" yaml:"occupied"`
	Occupant    string   `json:"occupant,omitempty" yaml:"occupant,omitempty"`
	Obstructed  bool     `json:"obstructed" yaml:"obstructed"`
	Obstruction string   `json:"obstruction,omitempty" yaml:"obstruction,omitempty"`
	Entitled    bool     `json:"entitled" yaml:"entitled"`
	Owner       string   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Groups      []string `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// refString renders a reference for persistence.
func refString(r Ref) string {
	switch v := r.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Snapshot captures the grid under the read lock.
func (g *Grid) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := &Snapshot{
		Version: SnapshotVersion,
		Config:  g.bp.Config(),
		Cells:   make(map[string]CellRecord, len(g.cells)),
		Groups:  make(map[string][]string, len(g.custom)),
	}
	for i := range g.cells {
		e := g.bp.EntryAt(i)
		s := &g.cells[i]
		snap.Cells[e.ID] = CellRecord{
			Coordinates: [2]int{e.X, e.Y},
			Adjacent:    e.Adjacent,
			Terrain:     e.Terrain,
			Raw:         e.Raw,
			Passable:    g.passable(i),
			Occupied:    s.occupied,
			Occupant:    refString(s.occupant),
			Obstructed:  s.obstructed,
			Obstruction: refString(s.obstruction),
			Entitled:    s.entitled,
			Owner:       refString(s.owner),
			Groups:      g.groupNames(i),
		}
	}
	for name, set := range g.custom {
		snap.Groups[name] = g.ids(set)
	}

	return snap
}

// Restore rebuilds a Grid from snap. The blueprint is rebuilt from the
// snapshot's configuration and the persisted raw terrain values, so the
// layout matches the saved one exactly; references come back as strings.
func Restore(ctx context.Context, snap *Snapshot, opts ...Option) (*Grid, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrSnapshotMismatch)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrSnapshotMismatch, snap.Version)
	}

	// 1) heightmap from the saved raw values
	rows, cols := snap.Config.Dimensions()
	if rows < 1 || cols < 1 || len(snap.Cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrSnapshotMismatch, len(snap.Cells), rows, cols)
	}
	space, err := coords.NewSpace(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotMismatch, err)
	}
	raw := make([][]float64, rows)
	for r := range raw {
		raw[r] = make([]float64, cols)
	}
	for id, rec := range snap.Cells {
		r, c, err := space.Split(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotMismatch, err)
		}
		raw[r][c] = rec.Raw
	}

	// 2) blueprint and grid
	bp, err := blueprint.New(ctx, snap.Config, blueprint.WithHeightmap(raw))
	if err != nil {
		return nil, err
	}
	g, err := New(bp, opts...)
	if err != nil {
		return nil, err
	}

	// 3) live state
	for id, rec := range snap.Cells {
		if rec.Occupied {
			if err := g.Occupy(id, rec.Occupant); err != nil {
				return nil, err
			}
		}
		if rec.Obstructed {
			if err := g.Obstruct(id, rec.Obstruction); err != nil {
				return nil, err
			}
		}
		if rec.Entitled {
			if err := g.Entitle(id, rec.Owner); err != nil {
				return nil, err
			}
		}
	}
	for name, ids := range snap.Groups {
		if err := g.NewGroup(name, ids...); err != nil {
			return nil, err
		}
	}

	return g, nil
}
