// Package day22 predicts monkey market secret numbers.
package day22

import (
	"context"

	"aoc2024/internal/puzzle"
)

// Rounds is how many secrets each buyer generates in a day.
const Rounds = 2000

const prune = 1<<24 - 1

func next(s int) int {
	s = (s ^ s<<6) & prune
	s = (s ^ s>>5) & prune
	return (s ^ s<<11) & prune
}

func New() puzzle.Solver {
	return &puzzle.Unit[[]int]{
		Number: 22,
		Name:   "Monkey Market",
		Parse:  parse,
		Part1: func(ctx context.Context, seeds []int) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, seeds, func(s int) (int, error) {
				for range Rounds {
					s = next(s)
				}
				return s, nil
			})
			return puzzle.Int(n), err
		},
		Part2: func(_ context.Context, seeds []int) (puzzle.Answer, error) {
			return puzzle.Int(bestSequence(seeds)), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: "1\n10\n100\n2024", Want: "37327623"},
			{Part: puzzle.Part2, Input: "1\n2\n3\n2024", Want: "23"},
		},
	}
}

func parse(input string) ([]int, error) {
	var out []int
	for i, line := range puzzle.Lines(input) {
		v, err := puzzle.Atoi(line)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, puzzle.Malformed(i+1, "negative secret %d", v)
		}
		out = append(out, v)
	}
	return out, nil
}

// windows is the number of distinct runs of four price changes, each change
// lying in [-9, 9].
const windows = 19 * 19 * 19 * 19

// bestSequence finds the four-change run that earns the most bananas when
// every buyer sells at its first occurrence.
func bestSequence(seeds []int) int {
	totals := make([]int, windows)
	seen := make([]int, windows)
	for b, s := range seeds {
		stamp := b + 1
		window := 0
		price := s % 10
		for i := range Rounds {
			s = next(s)
			p := s % 10
			window = (window*19 + (p - price + 9)) % windows
			price = p
			if i >= 3 && seen[window] != stamp {
				seen[window] = stamp
				totals[window] += p
			}
		}
	}
	best := 0
	for _, t := range totals {
		best = max(best, t)
	}
	return best
}
