// SPDX-License-Identifier: MIT
package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragrid/astar"
	"github.com/katalvlaran/terragrid/grid"
)

func TestPath_OpenDiagonal(t *testing.T) {
	g := open(t, 5, 5)

	p, err := g.Path("a00001", "e00005")
	require.NoError(t, err)
	require.True(t, p.Found)
	assert.Equal(t, []string{"a00001", "b00002", "c00003", "d00004", "e00005"}, p.Cells)
	assert.Equal(t, 4, p.Steps())
	assert.Equal(t, int64(4), p.Cost)
	assert.Equal(t, []string{"b00002", "c00003", "d00004", "e00005"}, p.Tail())
}

func TestPath_DetoursAroundObstruction(t *testing.T) {
	g := open(t, 5, 5)
	require.NoError(t, g.Obstruct("b00002", "rock"))

	p, err := g.Path("a00001", "e00005")
	require.NoError(t, err)
	require.True(t, p.Found)
	assert.Equal(t, []string{"a00001", "a00002", "b00003", "c00004", "d00005", "e00005"}, p.Cells)
	assert.Equal(t, 5, p.Steps())

	require.NoError(t, g.Destruct("b00002"))
	p, err = g.Path("a00001", "e00005")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Steps())
}

func TestPath_OccupantsBlock(t *testing.T) {
	g := open(t, 5, 5)
	require.NoError(t, g.Occupy("b00002", "guard"))

	p, err := g.Path("a00001", "e00005")
	require.NoError(t, err)
	assert.Equal(t, []string{"a00001", "a00002", "b00003", "c00004", "d00005", "e00005"}, p.Cells)

	// The start may be occupied by the traveller itself.
	require.NoError(t, g.Occupy("a00001", "traveller"))
	p, err = g.Path("a00001", "e00005")
	require.NoError(t, err)
	assert.True(t, p.Found)

	// An occupied goal cannot be entered.
	require.NoError(t, g.Occupy("e00005", "squatter"))
	p, err = g.Path("a00001", "e00005")
	require.NoError(t, err)
	assert.False(t, p.Found)
	assert.Nil(t, p.Cells)
}

func TestPath_SmallDetour(t *testing.T) {
	g := open(t, 3, 3)
	require.NoError(t, g.Obstruct("a00002", "wall"))

	p, err := g.Path("a00001", "a00003")
	require.NoError(t, err)
	assert.Equal(t, []string{"a00001", "b00002", "a00003"}, p.Cells)
}

func TestPath_EnclosedGoal(t *testing.T) {
	g := open(t, 3, 3)
	for _, id := range []string{"b00002", "b00003", "c00002"} {
		require.NoError(t, g.Obstruct(id, "wall"))
	}

	p, err := g.Path("a00001", "c00003")
	require.NoError(t, err)
	assert.False(t, p.Found)
	assert.Positive(t, p.Expanded)
}

func TestPath_ObstructedStart(t *testing.T) {
	g := open(t, 3, 3)
	require.NoError(t, g.Obstruct("a00001", "rubble"))

	p, err := g.Path("a00001", "c00003")
	require.NoError(t, err)
	assert.False(t, p.Found)
}

func TestPath_SameCell(t *testing.T) {
	g := open(t, 3, 3)

	p, err := g.Path("b00002", "b00002")
	require.NoError(t, err)
	assert.True(t, p.Found)
	assert.Equal(t, []string{"b00002"}, p.Cells)
	assert.Zero(t, p.Steps())
	assert.Nil(t, p.Tail())
}

// TestPath_SeparateRegions splits the map with a column of ocean; the
// search is skipped because the two sides share no region.
func TestPath_SeparateRegions(t *testing.T) {
	raw := flat(4, 5, grass)
	for r := range raw {
		raw[r][2] = ocean
	}
	g := newGrid(t, raw)

	p, err := g.Path("a00001", "d00005")
	require.NoError(t, err)
	assert.False(t, p.Found)
	assert.Zero(t, p.Expanded)

	p, err = g.Path("a00001", "a00003")
	require.NoError(t, err)
	assert.False(t, p.Found)

	p, err = g.Path("a00001", "d00002")
	require.NoError(t, err)
	assert.True(t, p.Found)
}

func TestPath_Options(t *testing.T) {
	g := open(t, 5, 5, grid.WithBaseCost(10), grid.WithHeuristic(astar.HeuristicManhattan))
	p, err := g.Path("a00001", "e00005")
	require.NoError(t, err)
	assert.Equal(t, int64(40), p.Cost)
	assert.Equal(t, 4, p.Steps())

	g = open(t, 10, 10, grid.WithMaxExpansions(2), grid.WithHeuristic(astar.HeuristicZero))
	_, err = g.Path("a00001", "j00010")
	assert.ErrorIs(t, err, astar.ErrBudgetExceeded)
}

// TestPath_ShortestAroundObstructions compares the default search with an
// uninformed one on random obstructed maps; step counts must agree.
func TestPath_ShortestAroundObstructions(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		fast := open(t, 10, 10)
		exact := open(t, 10, 10, grid.WithHeuristic(astar.HeuristicZero))
		ids := fast.Blueprint().Space().IDs()
		for k := 0; k < 25; k++ {
			id := ids[rng.Intn(len(ids))]
			if id == "a00001" || id == "j00010" {
				continue
			}
			require.NoError(t, fast.Obstruct(id, k))
			require.NoError(t, exact.Obstruct(id, k))
		}

		got, err := fast.Path("a00001", "j00010")
		require.NoError(t, err)
		want, err := exact.Path("a00001", "j00010")
		require.NoError(t, err)
		require.Equal(t, want.Found, got.Found, "trial %d", trial)
		require.Equal(t, want.Steps(), got.Steps(), "trial %d", trial)
		require.Equal(t, want.Cost, got.Cost, "trial %d", trial)
	}
}

func TestPath_UnknownCells(t *testing.T) {
	g := open(t, 3, 3)
	_, err := g.Path("a00001", "x")
	assert.ErrorIs(t, err, grid.ErrCellNotFound)
	_, err = g.Path("x", "a00001")
	assert.ErrorIs(t, err, grid.ErrCellNotFound)
}

// TestPath_StepsAreLegal walks every returned path and checks each hop
// is adjacent, passable and unoccupied.
func TestPath_StepsAreLegal(t *testing.T) {
	g := open(t, 8, 8, grid.WithSeed(3))
	for i := 0; i < 12; i++ {
		c, err := g.RandomVacantCell()
		require.NoError(t, err)
		require.NoError(t, g.Obstruct(c.ID, i))
	}
	for i := 0; i < 30; i++ {
		from, err := g.RandomPassableCell()
		require.NoError(t, err)
		to, err := g.RandomPassableCell()
		require.NoError(t, err)
		p, err := g.Path(from.ID, to.ID)
		require.NoError(t, err)
		if !p.Found {
			continue
		}
		require.Equal(t, from.ID, p.Cells[0])
		require.Equal(t, to.ID, p.Cells[len(p.Cells)-1])
		for k := 1; k < len(p.Cells); k++ {
			prev, err := g.Cell(p.Cells[k-1])
			require.NoError(t, err)
			require.Contains(t, prev.Adjacent, p.Cells[k])
			next, err := g.Cell(p.Cells[k])
			require.NoError(t, err)
			require.True(t, next.Passable)
			require.False(t, next.Occupied)
		}
	}
}
