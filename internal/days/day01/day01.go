// Package day01 compares two location lists.
package day01

import (
	"context"
	"slices"

	"aoc2024/internal/puzzle"
)

// Lists holds the left and right columns.
type Lists struct {
	Left, Right []int
}

const sample = `3   4
4   3
2   5
1   3
3   9
3   3`

func New() puzzle.Solver {
	return &puzzle.Unit[Lists]{
		Number: 1,
		Name:   "Historian Hysteria",
		Parse:  parse,
		Part1:  distance,
		Part2:  similarity,
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "11"},
			{Part: puzzle.Part2, Input: sample, Want: "31"},
		},
	}
}

func parse(input string) (Lists, error) {
	var l Lists
	for i, line := range puzzle.Lines(input) {
		vals, err := puzzle.Ints(line, "")
		if err != nil {
			return l, err
		}
		if len(vals) != 2 {
			return l, puzzle.Malformed(i+1, "want 2 columns, got %d", len(vals))
		}
		l.Left = append(l.Left, vals[0])
		l.Right = append(l.Right, vals[1])
	}
	return l, nil
}

func distance(_ context.Context, l Lists) (puzzle.Answer, error) {
	left := slices.Sorted(slices.Values(l.Left))
	right := slices.Sorted(slices.Values(l.Right))
	total := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return puzzle.Int(total), nil
}

func similarity(_ context.Context, l Lists) (puzzle.Answer, error) {
	counts := make(map[int]int, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}
	total := 0
	for _, v := range l.Left {
		total += v * counts[v]
	}
	return puzzle.Int(total), nil
}
