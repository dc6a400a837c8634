// SPDX-License-Identifier: MIT
package terrain_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/terrain"
)

func params() terrain.Params {
	return terrain.Params{
		Height:    27,
		Width:     48,
		Scale:     100,
		Octaves:   6,
		Roughness: 0.5,
		Seed:      1234,
	}
}

// TestGenerate_Deterministic runs generation twice with different worker
// counts and expects bit-identical fields.
func TestGenerate_Deterministic(t *testing.T) {
	ctx := context.Background()
	p1 := params()
	p1.Workers = 1
	p2 := params()
	p2.Workers = 8

	a, err := terrain.Generate(ctx, p1)
	require.NoError(t, err)
	b, err := terrain.Generate(ctx, p2)
	require.NoError(t, err)

	assert.Equal(t, a.Raw, b.Raw)
	assert.Equal(t, a.Class, b.Class)
}

func TestGenerate_SeedMatters(t *testing.T) {
	ctx := context.Background()
	p := params()
	a, err := terrain.Generate(ctx, p)
	require.NoError(t, err)
	p.Seed++
	b, err := terrain.Generate(ctx, p)
	require.NoError(t, err)

	assert.NotEqual(t, a.Raw, b.Raw)
}

func TestGenerate_RangeAndShape(t *testing.T) {
	m, err := terrain.Generate(context.Background(), params())
	require.NoError(t, err)

	require.Len(t, m.Raw, 27)
	total := 0
	for r, row := range m.Raw {
		require.Len(t, row, 48)
		for c, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
			assert.NotEmpty(t, m.Band(r, c).Name)
		}
	}
	for _, n := range m.Histogram() {
		total += n
	}
	assert.Equal(t, 27*48, total)
}

func TestGenerate_InvalidParams(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*terrain.Params)
	}{
		{"ZeroHeight", func(p *terrain.Params) { p.Height = 0 }},
		{"ZeroScale", func(p *terrain.Params) { p.Scale = 0 }},
		{"NoOctaves", func(p *terrain.Params) { p.Octaves = 0 }},
		{"NegativeRoughness", func(p *terrain.Params) { p.Roughness = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := params()
			tc.mut(&p)
			_, err := terrain.Generate(context.Background(), p)
			assert.ErrorIs(t, err, terrain.ErrInvalidParams)
		})
	}
}

func TestGenerate_BadTable(t *testing.T) {
	p := params()
	p.Table = terrain.Table{{Name: "ONLY", Max: 0.5}}
	_, err := terrain.Generate(context.Background(), p)
	assert.ErrorIs(t, err, terrain.ErrTableGap)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := terrain.Generate(ctx, params())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMidpointDisplacement_Range checks the rescaled bounds are attained.
func TestMidpointDisplacement_Range(t *testing.T) {
	f := terrain.MidpointDisplacement(20, 33, 0.5, rand.New(rand.NewSource(7)))
	require.Len(t, f, 20)

	lo, hi := 1.0, 0.0
	for _, row := range f {
		require.Len(t, row, 33)
		for _, v := range row {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	assert.InDelta(t, 0.001, lo, 1e-12)
	assert.InDelta(t, 0.999, hi, 1e-12)
}

// TestMidpointDisplacement_Flat uses zero roughness on tiny grids, which
// must still yield a finite field.
func TestMidpointDisplacement_Flat(t *testing.T) {
	f := terrain.MidpointDisplacement(1, 1, 0, rand.New(rand.NewSource(1)))
	require.Len(t, f, 1)
	assert.InDelta(t, 0.5, f[0][0], 1e-12)
}

func TestCoherentNoise_Normalized(t *testing.T) {
	f, err := terrain.CoherentNoise(context.Background(), 16, 16, 10, 4, 99, 3)
	require.NoError(t, err)

	lo, hi := 1.0, 0.0
	for _, row := range f {
		for _, v := range row {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestBlend(t *testing.T) {
	out, err := terrain.Blend([][]float64{{0, 1}}, [][]float64{{1, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1}}, out)

	_, err = terrain.Blend([][]float64{{0}}, [][]float64{{0, 1}})
	assert.ErrorIs(t, err, terrain.ErrShapeMismatch)
}
