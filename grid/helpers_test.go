// SPDX-License-Identifier: MIT
package grid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/blueprint"
	"github.com/katalvlaran/terragrid/grid"
)

// Raw values that classify as passable GRASS and impassable OCEAN.
const (
	grass = 0.1
	ocean = 0.6
)

func flat(rows, cols int, v float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = v
		}
	}

	return out
}

// newGrid builds a grid with 10px cells over the given heightmap.
func newGrid(tb testing.TB, raw [][]float64, opts ...grid.Option) *grid.Grid {
	tb.Helper()
	cfg := blueprint.DefaultConfig()
	cfg.Rows, cfg.Columns = len(raw), len(raw[0])
	bp, err := blueprint.New(context.Background(), cfg, blueprint.WithHeightmap(raw))
	require.NoError(tb, err)
	g, err := grid.New(bp, opts...)
	require.NoError(tb, err)

	return g
}

// open returns a rows×cols all-grass grid.
func open(tb testing.TB, rows, cols int, opts ...grid.Option) *grid.Grid {
	tb.Helper()
	return newGrid(tb, flat(rows, cols, grass), opts...)
}

// expectGroups checks the derived groups against a scan of all cells.
func expectGroups(t *testing.T, g *grid.Grid) {
	t.Helper()
	require.NoError(t, g.Verify())

	var occ, obs, ent []string
	for i := 0; i < g.Len(); i++ {
		c, err := g.CellAt(i)
		require.NoError(t, err)
		if c.Occupied {
			occ = append(occ, c.ID)
		}
		if c.Obstructed {
			obs = append(obs, c.ID)
		}
		if c.Entitled {
			ent = append(ent, c.ID)
		}
	}
	require.ElementsMatch(t, occ, g.Occupied())
	require.ElementsMatch(t, obs, g.Obstructed())
	require.ElementsMatch(t, ent, g.Entitled())
}
