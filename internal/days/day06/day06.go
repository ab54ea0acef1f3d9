// Package day06 simulates a patrolling guard.
package day06

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

// Lab is the floor plan with the guard's starting cell. The guard starts
// facing up.
type Lab struct {
	bounds  grid.Bounds
	blocked []bool
	start   grid.Coord
}

func New() puzzle.Solver {
	return &puzzle.Unit[Lab]{
		Number: 6,
		Name:   "Guard Gallivant",
		Parse:  parse,
		Part1: func(_ context.Context, lab Lab) (puzzle.Answer, error) {
			visited, _ := lab.walk(-1)
			return puzzle.Int(len(visited)), nil
		},
		Part2: func(ctx context.Context, lab Lab) (puzzle.Answer, error) {
			visited, _ := lab.walk(-1)
			startIdx := lab.bounds.Index(lab.start)
			candidates := make([]int, 0, len(visited))
			for _, i := range visited {
				if i != startIdx {
					candidates = append(candidates, i)
				}
			}
			n, err := puzzle.Count(ctx, 0, candidates, func(obstacle int) bool {
				_, loops := lab.walk(obstacle)
				return loops
			})
			return puzzle.Int(n), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "41"},
			{Part: puzzle.Part2, Input: sample, Want: "6"},
		},
	}
}

func parse(input string) (Lab, error) {
	cells, b, err := grid.ParseRunes(input)
	if err != nil {
		return Lab{}, err
	}
	start, ok := grid.Find(cells, '^')
	if !ok {
		return Lab{}, puzzle.Malformed(1, "no guard '^' on the map")
	}
	lab := Lab{bounds: b, blocked: make([]bool, b.Area()), start: start}
	for c := range b.Coords() {
		lab.blocked[b.Index(c)] = cells[c.Row][c.Col] == '#'
	}
	return lab, nil
}

// walk follows the guard until it leaves the map or repeats a (cell,
// heading) state. obstacle is an extra blocked cell index, or -1. It returns
// the distinct cell indexes visited in order of first visit.
func (l Lab) walk(obstacle int) (visited []int, loops bool) {
	seen := make([]bool, l.bounds.Area()*4)
	cell := make([]bool, l.bounds.Area())
	pos, dir := l.start, grid.Up
	for {
		i := l.bounds.Index(pos)
		state := i*4 + int(dir)
		if seen[state] {
			return visited, true
		}
		seen[state] = true
		if !cell[i] {
			cell[i] = true
			visited = append(visited, i)
		}
		next, ok := dir.StepBounded(pos, l.bounds)
		if !ok {
			return visited, false
		}
		if j := l.bounds.Index(next); l.blocked[j] || j == obstacle {
			dir = dir.Clockwise()
			continue
		}
		pos = next
	}
}
