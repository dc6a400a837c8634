// SPDX-License-Identifier: MIT
package spatial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/spatial"
)

func TestUniform_Locate(t *testing.T) {
	ix, err := spatial.Uniform(3, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Rows())
	assert.Equal(t, 4, ix.Columns())

	cases := []struct {
		x, y     float64
		row, col int
	}{
		{0, 0, 0, 0},
		{9.99, 9.99, 0, 0},
		{10, 0, 0, 1},
		{39.5, 29.5, 2, 3},
		{25, 15, 1, 2},
	}
	for _, tc := range cases {
		r, c, ok := ix.Locate(tc.x, tc.y)
		require.True(t, ok, "(%v,%v)", tc.x, tc.y)
		assert.Equal(t, tc.row, r)
		assert.Equal(t, tc.col, c)
	}
}

// TestLocate_OutOfBounds checks that border-adjacent misses are not clamped.
func TestLocate_OutOfBounds(t *testing.T) {
	ix, err := spatial.Uniform(3, 4, 10)
	require.NoError(t, err)

	for _, p := range [][2]float64{{-0.1, 5}, {5, -1}, {40, 5}, {5, 30}, {1e9, 1e9}, {math.NaN(), 5}, {5, math.NaN()}, {math.Inf(1), 5}} {
		_, _, ok := ix.Locate(p[0], p[1])
		assert.False(t, ok, "(%v,%v)", p[0], p[1])
	}
}

func TestFromSpans_Uneven(t *testing.T) {
	ix, err := spatial.FromSpans([]int{5, 20, 5}, []int{8, 8})
	require.NoError(t, err)

	r, c, ok := ix.Locate(9, 24.9)
	require.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)

	minX, minY, maxX, maxY := ix.Bounds()
	assert.Equal(t, [4]int{0, 0, 16, 30}, [4]int{minX, minY, maxX, maxY})
}

func TestNew_BadEdges(t *testing.T) {
	_, err := spatial.New([]int{0}, []int{0, 10})
	assert.ErrorIs(t, err, spatial.ErrBadEdges)

	_, err = spatial.New([]int{0, 10}, []int{0, 10, 10})
	assert.ErrorIs(t, err, spatial.ErrBadEdges)

	_, err = spatial.Uniform(0, 3, 10)
	assert.ErrorIs(t, err, spatial.ErrBadEdges)
}

func TestSpan(t *testing.T) {
	ix, err := spatial.Uniform(5, 5, 10)
	require.NoError(t, err)

	r0, c0, r1, c1, ok := ix.Span(12, 3, 27, 41)
	require.True(t, ok)
	assert.Equal(t, [4]int{0, 1, 4, 2}, [4]int{r0, c0, r1, c1})

	// clipped at both ends, corners given in reverse
	r0, c0, r1, c1, ok = ix.Span(100, 100, -5, -5)
	require.True(t, ok)
	assert.Equal(t, [4]int{0, 0, 4, 4}, [4]int{r0, c0, r1, c1})

	_, _, _, _, ok = ix.Span(60, 60, 80, 80)
	assert.False(t, ok)

	nan := math.NaN()
	for _, rect := range [][4]float64{{nan, 0, 10, 10}, {0, nan, 10, 10}, {0, 0, nan, 10}, {0, 0, 10, nan}} {
		_, _, _, _, ok = ix.Span(rect[0], rect[1], rect[2], rect[3])
		assert.False(t, ok, "%v", rect)
	}
}

func TestRowColumn(t *testing.T) {
	ix, err := spatial.FromSpans([]int{5, 20, 5}, []int{8, 8})
	require.NoError(t, err)

	r, ok := ix.Row(24.9)
	require.True(t, ok)
	assert.Equal(t, 1, r)
	c, ok := ix.Column(8)
	require.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = ix.Row(30)
	assert.False(t, ok)
	_, ok = ix.Column(math.NaN())
	assert.False(t, ok)
}
