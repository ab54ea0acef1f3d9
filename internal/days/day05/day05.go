// Package day05 validates and repairs safety manual page orderings.
package day05

import (
	"context"
	"slices"
	"strings"

	"aoc2024/internal/puzzle"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47`

type rule struct{ before, after int }

// Manual is the ordering rules and the updates to check.
type Manual struct {
	rules   map[rule]bool
	Updates [][]int
}

// compare orders pages by the rules; unrelated pages compare equal.
func (m Manual) compare(a, b int) int {
	switch {
	case m.rules[rule{a, b}]:
		return -1
	case m.rules[rule{b, a}]:
		return 1
	}
	return 0
}

func (m Manual) ordered(pages []int) bool {
	return slices.IsSortedFunc(pages, m.compare)
}

func New() puzzle.Solver {
	return &puzzle.Unit[Manual]{
		Number: 5,
		Name:   "Print Queue",
		Parse:  parse,
		Part1: func(ctx context.Context, m Manual) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, m.Updates, func(pages []int) (int, error) {
				if !m.ordered(pages) {
					return 0, nil
				}
				return pages[len(pages)/2], nil
			})
			return puzzle.Int(n), err
		},
		Part2: func(ctx context.Context, m Manual) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, m.Updates, func(pages []int) (int, error) {
				if m.ordered(pages) {
					return 0, nil
				}
				fixed := slices.SortedFunc(slices.Values(pages), m.compare)
				return fixed[len(fixed)/2], nil
			})
			return puzzle.Int(n), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "143"},
			{Part: puzzle.Part2, Input: sample, Want: "123"},
		},
	}
}

func parse(input string) (Manual, error) {
	m := Manual{rules: make(map[rule]bool)}
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return m, puzzle.Malformed(1, "want rules and updates separated by a blank line")
	}
	for i, line := range puzzle.Lines(sections[0]) {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			return m, puzzle.Malformed(i+1, "rule %q has no '|'", line)
		}
		x, err := puzzle.Atoi(a)
		if err != nil {
			return m, err
		}
		y, err := puzzle.Atoi(b)
		if err != nil {
			return m, err
		}
		m.rules[rule{x, y}] = true
	}
	for _, line := range puzzle.Lines(sections[1]) {
		pages, err := puzzle.Ints(line, ",")
		if err != nil {
			return m, err
		}
		m.Updates = append(m.Updates, pages)
	}
	return m, nil
}
