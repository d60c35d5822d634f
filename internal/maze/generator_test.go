package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazegen/internal/core"
	"github.com/vovakirdan/mazegen/internal/maze"
)

// firstChoice always picks the first candidate exit.
type firstChoice struct{}

func (firstChoice) Intn(int) int { return 0 }

func TestGeneratorRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		gen, err := maze.NewGenerator(dims[0], dims[1], core.NewRNG(1))
		assert.Nil(t, gen)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension, "dims %v", dims)
	}
}

func TestGeneratorStartsAtOrigin(t *testing.T) {
	gen, err := maze.NewGenerator(4, 3, core.NewRNG(1))
	require.NoError(t, err)

	assert.Equal(t, maze.StateActive, gen.State())
	assert.Equal(t, []maze.Coord{maze.C(0, 0)}, gen.Frontier())
	assert.Equal(t, 11, gen.Unvisited())

	visited, err := gen.Grid().IsVisited(maze.C(0, 0))
	require.NoError(t, err)
	assert.True(t, visited)
}

func TestGeneratorScriptedWalk(t *testing.T) {
	// With N,S,E,W order and always the first candidate:
	// (0,0) -S-> (0,1) -E-> (1,1) -N-> (1,0)
	grid, stats, err := maze.Generate(2, 2, firstChoice{})
	require.NoError(t, err)

	assert.Equal(t, "Width: 2\nHeight: 2\n05 05 \n0b 13 \n", grid.String())
	assert.Equal(t, 3, stats.Passages)
	assert.Equal(t, 3, stats.Steps)
	assert.Equal(t, 0, stats.Backtracks)
	assert.Equal(t, 4, stats.MaxDepth)
}

func TestGeneratorSpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 2}, {10, 10}, {31, 17}, {100, 75}}

	for _, size := range sizes {
		for seed := uint64(1); seed <= 5; seed++ {
			grid, stats, err := maze.Generate(size[0], size[1], core.NewRNG(seed))
			require.NoError(t, err)

			rep := maze.Analyze(grid)
			cells := size[0] * size[1]
			assert.Empty(t, rep.Violations, "size %v seed %d", size, seed)
			assert.Equal(t, cells-1, rep.Passages, "size %v seed %d", size, seed)
			assert.Equal(t, cells, rep.Reachable, "size %v seed %d", size, seed)
			assert.True(t, rep.Perfect())
			assert.Equal(t, rep.Passages, stats.Passages)
			assert.Equal(t, stats.Steps, stats.Passages+stats.Backtracks)

			for _, b := range grid.Bytes() {
				assert.NotZero(t, b&byte(maze.Visited), "every cell should be visited")
			}
		}
	}
}

func TestGeneratorSymmetricAfterEveryStep(t *testing.T) {
	gen, err := maze.NewGenerator(6, 5, core.NewRNG(99))
	require.NoError(t, err)

	for gen.State() == maze.StateActive {
		gen.Step()
		require.Empty(t, maze.Analyze(gen.Grid()).Violations)
	}
	assert.Equal(t, 0, gen.Unvisited())
}

func TestGeneratorDeterministic(t *testing.T) {
	a, _, err := maze.Generate(40, 30, core.NewRNG(2024))
	require.NoError(t, err)
	b, _, err := maze.Generate(40, 30, core.NewRNG(2024))
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())

	c, _, err := maze.Generate(40, 30, core.NewRNG(2025))
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), c.Bytes(), "different seeds should give different mazes")
}

func TestSingleCellMaze(t *testing.T) {
	grid, stats, err := maze.Generate(1, 1, core.NewRNG(5))
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Passages)
	assert.Equal(t, 0, stats.Steps)
	assert.Equal(t, []byte{byte(maze.Visited)}, grid.Bytes())
	assert.True(t, maze.Analyze(grid).Perfect())
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	gen, err := maze.NewGenerator(3, 3, core.NewRNG(3))
	require.NoError(t, err)
	gen.Run()

	before := gen.Grid().Clone()
	assert.Equal(t, maze.StateDone, gen.Step())
	assert.True(t, before.Equal(gen.Grid()))
}

func TestNilRandSourceUsesDefault(t *testing.T) {
	a, _, err := maze.Generate(8, 8, nil)
	require.NoError(t, err)
	b, _, err := maze.Generate(8, 8, core.NewRNG(0))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestAnalyzeDetectsAsymmetry(t *testing.T) {
	grid, err := maze.NewGrid(2, 1)
	require.NoError(t, err)
	require.NoError(t, grid.OpenPassage(maze.C(0, 0), maze.East))

	rep := maze.Analyze(grid)
	assert.False(t, rep.Symmetric())
	assert.False(t, rep.Perfect())
	assert.Equal(t, 1, rep.Reachable)

	require.NoError(t, grid.OpenPassage(maze.C(1, 0), maze.West))
	rep = maze.Analyze(grid)
	assert.True(t, rep.Perfect())

	require.NoError(t, grid.OpenPassage(maze.C(0, 0), maze.North))
	assert.False(t, maze.Analyze(grid).Symmetric(), "a passage out of the grid is a violation")
}
