// Package day11 counts physics-defying stones.
package day11

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"aoc2024/internal/puzzle"
)

// Blinks sets how many blinks each part simulates.
type Blinks struct {
	Part1, Part2 int
}

// DefaultBlinks are the counts the puzzle asks for.
var DefaultBlinks = Blinks{Part1: 25, Part2: 75}

func New() puzzle.Solver { return NewWith(DefaultBlinks) }

func NewWith(b Blinks) puzzle.Solver {
	return &puzzle.Unit[[]int]{
		Number: 11,
		Name:   "Plutonian Pebbles",
		Parse: func(input string) ([]int, error) {
			return puzzle.Ints(input, "")
		},
		Part1: func(ctx context.Context, stones []int) (puzzle.Answer, error) {
			return blink(ctx, stones, b.Part1)
		},
		Part2: func(ctx context.Context, stones []int) (puzzle.Answer, error) {
			return blink(ctx, stones, b.Part2)
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: "125 17", Want: "55312"},
		},
	}
}

// blink evolves a multiset of engravings; order never affects the count.
func blink(ctx context.Context, stones []int, times int) (puzzle.Answer, error) {
	counts := make(map[int]int)
	for _, s := range stones {
		counts[s]++
	}
	for range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := make(map[int]int, len(counts)*2)
		for s, n := range counts {
			left, right, split, err := evolve(s)
			if err != nil {
				return nil, err
			}
			next[left] += n
			if split {
				next[right] += n
			}
		}
		counts = next
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return puzzle.Int(total), nil
}

func evolve(s int) (left, right int, split bool, err error) {
	if s == 0 {
		return 1, 0, false, nil
	}
	digits := strconv.Itoa(s)
	if len(digits)%2 == 0 {
		half := len(digits) / 2
		left, _ = strconv.Atoi(digits[:half])
		right, _ = strconv.Atoi(digits[half:])
		return left, right, true, nil
	}
	if s > math.MaxInt/2024 {
		return 0, 0, false, fmt.Errorf("stone %d: %w", s, puzzle.ErrOverflow)
	}
	return s * 2024, 0, false, nil
}
