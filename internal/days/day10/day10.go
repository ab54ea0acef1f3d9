// Package day10 scores hiking trails on a topographic map.
package day10

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

// impassable marks cells drawn as '.'.
const impassable = -1

// Map holds one height per cell.
type Map struct {
	bounds grid.Bounds
	height []int
}

func New() puzzle.Solver {
	return &puzzle.Unit[Map]{
		Number: 10,
		Name:   "Hoof It",
		Parse:  parse,
		Part1: func(_ context.Context, m Map) (puzzle.Answer, error) {
			total := 0
			for c := range m.bounds.Coords() {
				if m.at(c) == 0 {
					total += m.score(c)
				}
			}
			return puzzle.Int(total), nil
		},
		Part2: func(_ context.Context, m Map) (puzzle.Answer, error) {
			ways := m.ratings()
			total := 0
			for c := range m.bounds.Coords() {
				if m.at(c) == 0 {
					total += ways[m.bounds.Index(c)]
				}
			}
			return puzzle.Int(total), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "36"},
			{Part: puzzle.Part2, Input: sample, Want: "81"},
		},
	}
}

func parse(input string) (Map, error) {
	cells, b, err := grid.ParseRunes(input)
	if err != nil {
		return Map{}, err
	}
	m := Map{bounds: b, height: make([]int, b.Area())}
	for c := range b.Coords() {
		switch r := cells[c.Row][c.Col]; {
		case r == '.':
			m.height[b.Index(c)] = impassable
		case r >= '0' && r <= '9':
			m.height[b.Index(c)] = int(r - '0')
		default:
			return Map{}, puzzle.Malformed(c.Row+1, "unexpected %q", r)
		}
	}
	return m, nil
}

func (m Map) at(c grid.Coord) int {
	return m.height[m.bounds.Index(c)]
}

// uphill yields neighbours exactly one higher than c.
func (m Map) uphill(c grid.Coord, yield func(grid.Coord)) {
	h := m.at(c)
	for _, n := range m.bounds.Neighbors(c) {
		if h != impassable && m.at(n) == h+1 {
			yield(n)
		}
	}
}

// score counts distinct summits reachable from a trailhead.
func (m Map) score(head grid.Coord) int {
	seen := map[grid.Coord]bool{head: true}
	stack := []grid.Coord{head}
	summits := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if m.at(c) == 9 {
			summits++
			continue
		}
		m.uphill(c, func(n grid.Coord) {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		})
	}
	return summits
}

// ratings counts, for every cell, the distinct trails from it to any
// summit. Cells are filled from height 9 down.
func (m Map) ratings() []int {
	ways := make([]int, len(m.height))
	for h := 9; h >= 0; h-- {
		for c := range m.bounds.Coords() {
			if m.at(c) != h {
				continue
			}
			i := m.bounds.Index(c)
			if h == 9 {
				ways[i] = 1
				continue
			}
			m.uphill(c, func(n grid.Coord) {
				ways[i] += ways[m.bounds.Index(n)]
			})
		}
	}
	return ways
}
