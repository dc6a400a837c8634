// SPDX-License-Identifier: MIT
package coords_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/coords"
)

// TestRowLabels_Tiers checks the boundaries between label tiers.
func TestRowLabels_Tiers(t *testing.T) {
	labels, err := coords.RowLabels(coords.MaxRows)
	require.NoError(t, err)
	require.Len(t, labels, 18954)

	assert.Equal(t, "a", labels[0])
	assert.Equal(t, "z", labels[25])
	assert.Equal(t, "A", labels[26])
	assert.Equal(t, "Z", labels[51])
	assert.Equal(t, "aa", labels[52])
	assert.Equal(t, "zz", labels[52+675])
	assert.Equal(t, "Ba", labels[728])
	assert.Equal(t, "Zz", labels[728+649])
	assert.Equal(t, "aaa", labels[1378])
	assert.Equal(t, "zzz", labels[coords.MaxRows-1])
}

// TestRowLabels_Unique verifies that no two row labels collide.
func TestRowLabels_Unique(t *testing.T) {
	labels, err := coords.RowLabels(coords.MaxRows)
	require.NoError(t, err)

	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		_, dup := seen[l]
		require.False(t, dup, "duplicate label %q", l)
		seen[l] = struct{}{}
	}
}

// TestRowLabels_Errors covers the capacity and empty bounds.
func TestRowLabels_Errors(t *testing.T) {
	_, err := coords.RowLabels(0)
	assert.ErrorIs(t, err, coords.ErrEmptySpace)

	_, err = coords.RowLabels(coords.MaxRows + 1)
	assert.ErrorIs(t, err, coords.ErrRowCapacity)
}

// TestColumnLabels_Padding checks padding and that sort order equals numeric order.
func TestColumnLabels_Padding(t *testing.T) {
	labels, err := coords.ColumnLabels(12000)
	require.NoError(t, err)

	assert.Equal(t, "00001", labels[0])
	assert.Equal(t, "00010", labels[9])
	assert.Equal(t, "12000", labels[11999])
	assert.True(t, sort.StringsAreSorted(labels))
	for _, l := range labels {
		require.Len(t, l, coords.ColumnWidth)
	}
}

func TestColumnLabels_Errors(t *testing.T) {
	_, err := coords.ColumnLabels(-1)
	assert.ErrorIs(t, err, coords.ErrEmptySpace)

	_, err = coords.ColumnLabels(coords.MaxColumns + 1)
	assert.ErrorIs(t, err, coords.ErrColumnCapacity)
}
