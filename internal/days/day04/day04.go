// Package day04 searches a letter grid for XMAS.
package day04

import (
	"context"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

type board struct {
	cells  [][]rune
	bounds grid.Bounds
}

func (b board) at(r, c int) rune {
	if r < 0 || c < 0 || r >= b.bounds.Rows || c >= b.bounds.Cols {
		return 0
	}
	return b.cells[r][c]
}

func New() puzzle.Solver {
	return &puzzle.Unit[board]{
		Number: 4,
		Name:   "Ceres Search",
		Parse: func(input string) (board, error) {
			cells, b, err := grid.ParseRunes(input)
			return board{cells: cells, bounds: b}, err
		},
		Part1: func(_ context.Context, b board) (puzzle.Answer, error) {
			return puzzle.Int(countWord(b, "XMAS")), nil
		},
		Part2: func(_ context.Context, b board) (puzzle.Answer, error) {
			return puzzle.Int(countCrosses(b)), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "18"},
			{Part: puzzle.Part2, Input: sample, Want: "9"},
		},
	}
}

var compass = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func countWord(b board, word string) int {
	runes := []rune(word)
	n := 0
	for c := range b.bounds.Coords() {
		for _, d := range compass {
			ok := true
			for i, want := range runes {
				if b.at(c.Row+d[0]*i, c.Col+d[1]*i) != want {
					ok = false
					break
				}
			}
			if ok {
				n++
			}
		}
	}
	return n
}

// countCrosses counts A cells whose two diagonals both read MAS either way.
func countCrosses(b board) int {
	diag := func(x, y rune) bool {
		return (x == 'M' && y == 'S') || (x == 'S' && y == 'M')
	}
	n := 0
	for c := range b.bounds.Coords() {
		if b.at(c.Row, c.Col) != 'A' {
			continue
		}
		if diag(b.at(c.Row-1, c.Col-1), b.at(c.Row+1, c.Col+1)) &&
			diag(b.at(c.Row-1, c.Col+1), b.at(c.Row+1, c.Col-1)) {
			n++
		}
	}
	return n
}
