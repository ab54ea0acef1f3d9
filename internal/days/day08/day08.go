// Package day08 places antinodes between antennas of the same frequency.
package day08

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............`

type vec = grid.Point[int]

// City maps each frequency to its antenna positions (X is the column).
type City struct {
	bounds   grid.Bounds
	antennas map[rune][]vec
}

func (c City) inside(p vec) bool {
	return c.bounds.Contains(grid.Coord{Row: p.Y, Col: p.X})
}

func New() puzzle.Solver {
	return &puzzle.Unit[City]{
		Number: 8,
		Name:   "Resonant Collinearity",
		Parse:  parse,
		Part1: func(_ context.Context, c City) (puzzle.Answer, error) {
			return puzzle.Int(c.antinodes(false)), nil
		},
		Part2: func(_ context.Context, c City) (puzzle.Answer, error) {
			return puzzle.Int(c.antinodes(true)), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "14"},
			{Part: puzzle.Part2, Input: sample, Want: "34"},
		},
	}
}

func parse(input string) (City, error) {
	cells, b, err := grid.ParseRunes(input)
	if err != nil {
		return City{}, err
	}
	c := City{bounds: b, antennas: make(map[rune][]vec)}
	for at := range b.Coords() {
		if r := cells[at.Row][at.Col]; r != '.' {
			c.antennas[r] = append(c.antennas[r], vec{X: at.Col, Y: at.Row})
		}
	}
	return c, nil
}

// antinodes counts distinct in-bounds antinode cells. With harmonics every
// multiple of the pair spacing counts, including the antennas themselves;
// otherwise only the point one spacing beyond each antenna does.
func (c City) antinodes(harmonics bool) int {
	found := make(map[vec]struct{})
	for _, group := range c.antennas {
		for i, a := range group {
			for j, b := range group {
				if i == j {
					continue
				}
				step := b.Sub(a)
				if !harmonics {
					if p := b.Add(step); c.inside(p) {
						found[p] = struct{}{}
					}
					continue
				}
				for k := 0; ; k++ {
					p := b.Add(step.Mul(k))
					if !c.inside(p) {
						break
					}
					found[p] = struct{}{}
				}
			}
		}
	}
	return len(found)
}
