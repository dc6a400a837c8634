// SPDX-License-Identifier: MIT
package blueprint_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/blueprint"
	"github.com/katalvlaran/terragrid/coords"
	"github.com/katalvlaran/terragrid/terrain"
)

// TestNew_Deterministic builds the same synthesized map twice.
func TestNew_Deterministic(t *testing.T) {
	ctx := context.Background()
	cfg := smallConfig(20, 30)

	a, err := blueprint.New(ctx, cfg, blueprint.WithWorkers(1))
	require.NoError(t, err)
	b, err := blueprint.New(ctx, cfg, blueprint.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, a.EntryAt(i), b.EntryAt(i))
	}
	assert.Equal(t, a.Histogram(), b.Histogram())
}

func TestNew_Layout(t *testing.T) {
	cfg := smallConfig(3, 4)
	cfg.CellSize = 16
	b := mustBuild(t, cfg, flat(3, 4, grass))

	rows, cols := b.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 16, b.CellSize())

	e, ok := b.Entry("c00002")
	require.True(t, ok)
	assert.Equal(t, 9, e.Index)
	assert.Equal(t, 2, e.Row)
	assert.Equal(t, 1, e.Column)
	assert.Equal(t, "c", e.RowLabel)
	assert.Equal(t, "00002", e.ColumnLabel)
	assert.Equal(t, 16, e.X)
	assert.Equal(t, 32, e.Y)
	assert.Equal(t, terrain.Grass, e.Terrain)
	assert.True(t, e.Passable)

	assert.Equal(t, blueprint.Row{Index: 2, Label: "c", Top: 32, Height: 16}, b.Rows()[2])
	assert.Equal(t, blueprint.Column{Index: 3, Label: "00004", Left: 48, Width: 16}, b.Columns()[3])
	assert.Equal(t, map[string]int{terrain.Grass: 12}, b.Histogram())

	_, ok = b.Entry("z00001")
	assert.False(t, ok)
}

// TestNew_EntryIsCopy ensures callers cannot mutate the blueprint.
func TestNew_EntryIsCopy(t *testing.T) {
	b := mustBuild(t, smallConfig(3, 3), flat(3, 3, grass))
	e, _ := b.Entry("b00002")
	e.Adjacent[0] = "tampered"

	again, _ := b.Entry("b00002")
	assert.Equal(t, "a00001", again.Adjacent[0])
}

func TestNew_BlockRule(t *testing.T) {
	cfg := smallConfig(3, 3)
	cfg.Passability.BlockRule = "Column == 1"
	b := mustBuild(t, cfg, flat(3, 3, grass))

	for i := 0; i < b.Len(); i++ {
		e := b.EntryAt(i)
		assert.Equal(t, e.Column != 1, e.Passable, e.ID)
	}
	assert.Equal(t, 2, b.Regions())
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := blueprint.New(ctx, smallConfig(coords.MaxRows+1, 2))
	assert.ErrorIs(t, err, blueprint.ErrInvalidConfig)
	assert.ErrorIs(t, err, coords.ErrRowCapacity)

	_, err = blueprint.New(ctx, smallConfig(3, 3), blueprint.WithHeightmap(flat(2, 3, grass)))
	assert.ErrorIs(t, err, blueprint.ErrInvalidConfig)

	_, err = blueprint.New(ctx, smallConfig(3, 3), blueprint.WithHeightmap(flat(3, 3, 1.5)))
	assert.ErrorIs(t, err, terrain.ErrOutOfRange)

	cfg := smallConfig(3, 3)
	cfg.Passability.Impassable = []string{"LAVA"}
	_, err = blueprint.New(ctx, cfg)
	assert.ErrorIs(t, err, terrain.ErrUnknownBand)
}

func TestNew_Logger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := blueprint.New(context.Background(), smallConfig(4, 4),
		blueprint.WithLogger(log), blueprint.WithHeightmap(flat(4, 4, grass)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "quadrants built")
	assert.Contains(t, out, "adjacency built")
	assert.Contains(t, out, "regions=1")
}
