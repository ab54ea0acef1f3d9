// Package day03 scans corrupted memory for multiply instructions.
package day03

import (
	"context"
	"regexp"
	"strconv"

	"aoc2024/internal/puzzle"
)

var instr = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

func New() puzzle.Solver {
	return &puzzle.Unit[string]{
		Number: 3,
		Name:   "Mull It Over",
		Parse:  func(input string) (string, error) { return input, nil },
		Part1: func(_ context.Context, mem string) (puzzle.Answer, error) {
			return puzzle.Int(run(mem, false)), nil
		},
		Part2: func(_ context.Context, mem string) (puzzle.Answer, error) {
			return puzzle.Int(run(mem, true)), nil
		},
		Samples: []puzzle.Example{
			{
				Part:  puzzle.Part1,
				Input: "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))",
				Want:  "161",
			},
			{
				Part:  puzzle.Part2,
				Input: "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))",
				Want:  "48",
			},
		},
	}
}

// run sums every enabled mul. Without conditionals do() and don't() are
// ignored.
func run(mem string, conditionals bool) int {
	enabled := true
	total := 0
	for _, m := range instr.FindAllStringSubmatch(mem, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = !conditionals
		default:
			if !enabled {
				continue
			}
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			total += a * b
		}
	}
	return total
}
