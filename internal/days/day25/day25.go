// Package day25 tries virtual keys in virtual locks.
package day25

import (
	"context"
	"strings"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####`

// Schematics holds pin heights of locks and keys. Space is the number of
// rows between the top and bottom rows.
type Schematics struct {
	Locks, Keys [][]int
	Space       int
}

func New() puzzle.Solver {
	return &puzzle.Unit[Schematics]{
		Number: 25,
		Name:   "Code Chronicle",
		Parse:  parse,
		Part1: func(_ context.Context, s Schematics) (puzzle.Answer, error) {
			n := 0
			for _, lock := range s.Locks {
				for _, key := range s.Keys {
					if s.fits(lock, key) {
						n++
					}
				}
			}
			return puzzle.Int(n), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "3"},
		},
	}
}

func (s Schematics) fits(lock, key []int) bool {
	for i := range lock {
		if lock[i]+key[i] > s.Space {
			return false
		}
	}
	return true
}

func parse(input string) (Schematics, error) {
	var s Schematics
	var size grid.Bounds
	for i, block := range puzzle.Sections(input) {
		cells, b, err := grid.ParseRunes(block)
		if err != nil {
			return s, err
		}
		if i == 0 {
			size = b
			s.Space = b.Rows - 2
		} else if b != size {
			return s, puzzle.Malformed(1, "schematic %d is %dx%d, want %dx%d", i+1, b.Rows, b.Cols, size.Rows, size.Cols)
		}
		top, bottom := string(cells[0]), string(cells[b.Rows-1])
		full, empty := strings.Repeat("#", b.Cols), strings.Repeat(".", b.Cols)
		heights := make([]int, b.Cols)
		for c := range b.Coords() {
			if cells[c.Row][c.Col] == '#' {
				heights[c.Col]++
			}
		}
		for col := range heights {
			heights[col]--
		}
		switch {
		case top == full && bottom == empty:
			s.Locks = append(s.Locks, heights)
		case top == empty && bottom == full:
			s.Keys = append(s.Keys, heights)
		default:
			return s, puzzle.Malformed(1, "schematic %d is neither a lock nor a key", i+1)
		}
	}
	return s, nil
}
