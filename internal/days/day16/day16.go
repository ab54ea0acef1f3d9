// Package day16 scores the reindeer maze using the maze package.
package day16

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/maze"
	"aoc2024/internal/puzzle"
)

const example1 = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

const example2 = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

const ring = `#####
#..E#
#.#.#
#S..#
#####`

// Race is a parsed maze with start and end tiles. The reindeer starts facing
// east.
type Race struct {
	graph      *maze.Graph
	start, end grid.Coord
}

func New() puzzle.Solver {
	return &puzzle.Unit[Race]{
		Number: 16,
		Name:   "Reindeer Maze",
		Parse:  parse,
		Part1: func(_ context.Context, r Race) (puzzle.Answer, error) {
			paths, err := r.search()
			if err != nil {
				return nil, err
			}
			cost, err := paths.MinCost(maze.Facings(r.end)...)
			return puzzle.Int(cost), err
		},
		Part2: func(_ context.Context, r Race) (puzzle.Answer, error) {
			paths, err := r.search()
			if err != nil {
				return nil, err
			}
			tiles, err := paths.Tiles(maze.Facings(r.end)...)
			return puzzle.Int(tiles), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: example1, Want: "7036"},
			{Part: puzzle.Part2, Input: example1, Want: "45"},
			{Part: puzzle.Part1, Input: example2, Want: "11048"},
			{Part: puzzle.Part2, Input: example2, Want: "64"},
			{Part: puzzle.Part1, Input: "#######\n#S...E#\n#######", Want: "4"},
			{Part: puzzle.Part1, Input: ring, Want: "1004"},
			{Part: puzzle.Part2, Input: ring, Want: "5"},
		},
	}
}

func parse(input string) (Race, error) {
	cells, b, err := grid.ParseRunes(input)
	if err != nil {
		return Race{}, err
	}
	start, ok := grid.Find(cells, 'S')
	if !ok {
		return Race{}, puzzle.Malformed(1, "no start tile 'S'")
	}
	end, ok := grid.Find(cells, 'E')
	if !ok {
		return Race{}, puzzle.Malformed(1, "no end tile 'E'")
	}
	g := maze.New(b, func(c grid.Coord) bool { return cells[c.Row][c.Col] == '#' })
	return Race{graph: g, start: start, end: end}, nil
}

func (r Race) search() (*maze.Paths, error) {
	return r.graph.ShortestPaths(maze.Node{At: r.start, Facing: grid.Right})
}
