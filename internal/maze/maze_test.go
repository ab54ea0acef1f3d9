package maze

import (
	"strings"
	"testing"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layout turns a picture of '#' walls into a graph.
func layout(t *testing.T, rows ...string) (*Graph, grid.Bounds) {
	t.Helper()
	cells, b, err := grid.ParseRunes(strings.Join(rows, "\n"))
	require.NoError(t, err)
	blocked := func(c grid.Coord) bool { return cells[c.Row][c.Col] == '#' }
	return New(b, blocked), b
}

func solve(t *testing.T, g *Graph, start grid.Coord, facing grid.Direction, goal grid.Coord) (int, int) {
	t.Helper()
	paths, err := g.ShortestPaths(Node{At: start, Facing: facing})
	require.NoError(t, err)
	cost, err := paths.MinCost(Facings(goal)...)
	require.NoError(t, err)
	tiles, err := paths.Tiles(Facings(goal)...)
	require.NoError(t, err)
	return cost, tiles
}

func TestCoincidentStartAndGoal(t *testing.T) {
	g, _ := layout(t, "...", "...", "...")
	cost, tiles := solve(t, g, grid.Coord{Row: 1, Col: 1}, grid.Right, grid.Coord{Row: 1, Col: 1})
	assert.Equal(t, 0, cost)
	assert.Equal(t, 1, tiles)
}

func TestOpenGridSingleTurn(t *testing.T) {
	g, _ := layout(t, "...", "...", "...")
	// Two moves right, turn and move down, one more move down.
	cost, tiles := solve(t, g, grid.Coord{}, grid.Right, grid.Coord{Row: 2, Col: 2})
	assert.Equal(t, MoveCost+MoveCost+(TurnCost+MoveCost)+MoveCost, cost)
	assert.Equal(t, 1004, cost)
	assert.Equal(t, 5, tiles)
}

func TestStraightCorridor(t *testing.T) {
	g, _ := layout(t,
		"#######",
		"#.....#",
		"#######",
	)
	cost, tiles := solve(t, g, grid.Coord{Row: 1, Col: 1}, grid.Right, grid.Coord{Row: 1, Col: 5})
	assert.Equal(t, 4, cost, "corridor of 5 cells costs length-1")
	assert.Equal(t, 5, tiles)
}

func TestTwoEqualRoutesAroundPillar(t *testing.T) {
	g, _ := layout(t,
		".....",
		"..#..",
		".....",
	)
	cost, tiles := solve(t, g, grid.Coord{Row: 1, Col: 1}, grid.Right, grid.Coord{Row: 1, Col: 3})
	assert.Equal(t, 3*(TurnCost+MoveCost)+MoveCost, cost)
	assert.Equal(t, 8, tiles, "both detours count")
}

func TestUnreachableGoal(t *testing.T) {
	g, _ := layout(t,
		"..#..",
		"..#..",
		"..#..",
	)
	paths, err := g.ShortestPaths(Node{At: grid.Coord{}, Facing: grid.Right})
	require.NoError(t, err)

	_, err = paths.MinCost(Facings(grid.Coord{Row: 0, Col: 4})...)
	assert.ErrorIs(t, err, puzzle.ErrUnreachable)
	_, err = paths.Tiles(Facings(grid.Coord{Row: 0, Col: 4})...)
	assert.ErrorIs(t, err, puzzle.ErrUnreachable)

	_, ok := paths.Cost(Node{At: grid.Coord{Row: 9, Col: 9}})
	assert.False(t, ok)
}

func TestStartOutsideGrid(t *testing.T) {
	g, _ := layout(t, "..")
	_, err := g.ShortestPaths(Node{At: grid.Coord{Row: 3, Col: 0}})
	assert.Error(t, err)
}

func TestShortestPathsIdempotent(t *testing.T) {
	g, _ := layout(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	start := grid.Coord{Row: 3, Col: 1}
	goal := grid.Coord{Row: 1, Col: 3}
	c1, t1 := solve(t, g, start, grid.Right, goal)
	c2, t2 := solve(t, g, start, grid.Right, goal)
	assert.Equal(t, c1, c2)
	assert.Equal(t, t1, t2)
	// Right twice, then up twice with one turn; the other way round needs two turns.
	assert.Equal(t, 1004, c1)
	assert.Equal(t, 5, t1)
}

func TestDistances(t *testing.T) {
	cells, b, err := grid.ParseRunes(strings.Join([]string{
		"..#",
		".##",
		"...",
	}, "\n"))
	require.NoError(t, err)
	blocked := func(c grid.Coord) bool { return cells[c.Row][c.Col] == '#' }

	dist := Distances(b, blocked, grid.Coord{})
	assert.Equal(t, 0, dist[b.Index(grid.Coord{})])
	assert.Equal(t, 1, dist[b.Index(grid.Coord{Row: 0, Col: 1})])
	assert.Equal(t, 4, dist[b.Index(grid.Coord{Row: 2, Col: 2})])
	assert.Equal(t, Unreachable, dist[b.Index(grid.Coord{Row: 0, Col: 2})])

	dist = Distances(b, blocked, grid.Coord{Row: 1, Col: 1})
	for _, d := range dist {
		assert.Equal(t, Unreachable, d)
	}
}
