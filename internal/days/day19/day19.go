// Package day19 arranges striped towels into designs.
package day19

import (
	"context"
	"strings"

	"aoc2024/internal/puzzle"
)

const sample = `r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb`

// Onsen lists the available towel patterns and the wanted designs.
type Onsen struct {
	Patterns []string
	Designs  []string
}

func New() puzzle.Solver {
	return &puzzle.Unit[Onsen]{
		Number: 19,
		Name:   "Linen Layout",
		Parse:  parse,
		Part1: func(ctx context.Context, o Onsen) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, o.Designs, func(d string) (int, error) {
				if arrangements(o.Patterns, d) > 0 {
					return 1, nil
				}
				return 0, nil
			})
			return puzzle.Int(n), err
		},
		Part2: func(ctx context.Context, o Onsen) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, o.Designs, func(d string) (int, error) {
				return arrangements(o.Patterns, d), nil
			})
			return puzzle.Int(n), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "6"},
			{Part: puzzle.Part2, Input: sample, Want: "16"},
		},
	}
}

func parse(input string) (Onsen, error) {
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return Onsen{}, puzzle.Malformed(1, "want patterns and designs separated by a blank line")
	}
	var o Onsen
	for _, p := range strings.Split(sections[0], ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return Onsen{}, puzzle.Malformed(1, "empty towel pattern")
		}
		o.Patterns = append(o.Patterns, p)
	}
	o.Designs = puzzle.Lines(sections[1])
	return o, nil
}

// arrangements counts the ways to build design from patterns. ways[i] is the
// number of ways to build the suffix starting at i.
func arrangements(patterns []string, design string) int {
	ways := make([]int, len(design)+1)
	ways[len(design)] = 1
	for i := len(design) - 1; i >= 0; i-- {
		for _, p := range patterns {
			if strings.HasPrefix(design[i:], p) {
				ways[i] += ways[i+len(p)]
			}
		}
	}
	return ways[0]
}
