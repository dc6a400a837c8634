// SPDX-License-Identifier: MIT
package blueprint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/blueprint"
)

// Raw values that classify as passable GRASS and impassable OCEAN.
const (
	grass = 0.1
	ocean = 0.6
)

// smallConfig returns a fast rows×cols configuration.
func smallConfig(rows, cols int) blueprint.Config {
	cfg := blueprint.DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = cols
	cfg.NoiseOctaves = 4

	return cfg
}

// flat returns a rows×cols heightmap filled with v.
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

// mustBuild builds a blueprint over the given heightmap.
func mustBuild(t *testing.T, cfg blueprint.Config, raw [][]float64) *blueprint.Blueprint {
	t.Helper()
	b, err := blueprint.New(context.Background(), cfg, blueprint.WithHeightmap(raw))
	require.NoError(t, err)

	return b
}
