package grid

import (
	"fmt"

	"aoc2024/internal/puzzle"
)

// ParseRunes splits a rectangular block of text into rows of runes.
// Ragged or empty input is rejected.
func ParseRunes(input string) ([][]rune, Bounds, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 || lines[0] == "" {
		return nil, Bounds{}, fmt.Errorf("%w: empty grid", puzzle.ErrMalformedInput)
	}
	rows := make([][]rune, len(lines))
	cols := len([]rune(lines[0]))
	for r, line := range lines {
		rows[r] = []rune(line)
		if len(rows[r]) != cols {
			return nil, Bounds{}, fmt.Errorf("%w: line %d has %d columns, want %d",
				puzzle.ErrMalformedInput, r+1, len(rows[r]), cols)
		}
	}
	return rows, Bounds{Rows: len(rows), Cols: cols}, nil
}

// Find returns the first cell holding want, scanning in row-major order.
func Find(rows [][]rune, want rune) (Coord, bool) {
	for r, row := range rows {
		for c, ch := range row {
			if ch == want {
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}
