// Package day02 checks reactor reports for safe level changes.
package day02

import (
	"context"

	"aoc2024/internal/puzzle"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9`

func New() puzzle.Solver {
	return &puzzle.Unit[[][]int]{
		Number: 2,
		Name:   "Red-Nosed Reports",
		Parse:  parse,
		Part1: func(ctx context.Context, reports [][]int) (puzzle.Answer, error) {
			n, err := puzzle.Count(ctx, 0, reports, safe)
			return puzzle.Int(n), err
		},
		Part2: func(ctx context.Context, reports [][]int) (puzzle.Answer, error) {
			n, err := puzzle.Count(ctx, 0, reports, dampened)
			return puzzle.Int(n), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "2"},
			{Part: puzzle.Part2, Input: sample, Want: "4"},
		},
	}
}

func parse(input string) ([][]int, error) {
	var out [][]int
	for i, line := range puzzle.Lines(input) {
		levels, err := puzzle.Ints(line, "")
		if err != nil {
			return nil, err
		}
		if len(levels) == 0 {
			return nil, puzzle.Malformed(i+1, "empty report")
		}
		out = append(out, levels)
	}
	return out, nil
}

// safe reports whether levels change monotonically by 1 to 3 each step.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	rising := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !rising {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// dampened reports whether removing at most one level makes the report safe.
func dampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels)-1)
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}
	return false
}
