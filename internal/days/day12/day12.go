// Package day12 prices fencing for garden regions.
package day12

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `AAAA
BBCD
BBCC
EEEC`

const nested = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

// Garden is the plot map.
type Garden struct {
	cells  [][]rune
	bounds grid.Bounds
}

// region is a connected set of same-plant plots with its fence measures.
type region struct {
	area, perimeter, corners int
}

func New() puzzle.Solver {
	return &puzzle.Unit[Garden]{
		Number: 12,
		Name:   "Garden Groups",
		Parse: func(input string) (Garden, error) {
			cells, b, err := grid.ParseRunes(input)
			return Garden{cells: cells, bounds: b}, err
		},
		Part1: func(_ context.Context, g Garden) (puzzle.Answer, error) {
			total := 0
			for _, r := range g.regions() {
				total += r.area * r.perimeter
			}
			return puzzle.Int(total), nil
		},
		Part2: func(_ context.Context, g Garden) (puzzle.Answer, error) {
			total := 0
			for _, r := range g.regions() {
				// A polygon has as many sides as corners.
				total += r.area * r.corners
			}
			return puzzle.Int(total), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "140"},
			{Part: puzzle.Part2, Input: sample, Want: "80"},
			{Part: puzzle.Part1, Input: nested, Want: "772"},
			{Part: puzzle.Part2, Input: nested, Want: "436"},
		},
	}
}

// same reports whether the cell one step from c in each of dirs holds plant.
func (g Garden) same(c grid.Coord, plant rune, dirs ...grid.Direction) bool {
	for _, d := range dirs {
		var ok bool
		if c, ok = d.StepBounded(c, g.bounds); !ok {
			return false
		}
	}
	return g.cells[c.Row][c.Col] == plant
}

func (g Garden) regions() []region {
	seen := make([]bool, g.bounds.Area())
	var out []region
	for start := range g.bounds.Coords() {
		if seen[g.bounds.Index(start)] {
			continue
		}
		plant := g.cells[start.Row][start.Col]
		var r region
		seen[g.bounds.Index(start)] = true
		stack := []grid.Coord{start}
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r.area++
			for _, d := range grid.Directions {
				cw := d.Clockwise()
				a, b := g.same(c, plant, d), g.same(c, plant, cw)
				if (!a && !b) || (a && b && !g.same(c, plant, d, cw)) {
					r.corners++
				}
				if !a {
					r.perimeter++
					continue
				}
				n, _ := d.StepBounded(c, g.bounds)
				if i := g.bounds.Index(n); !seen[i] {
					seen[i] = true
					stack = append(stack, n)
				}
			}
		}
		out = append(out, r)
	}
	return out
}
