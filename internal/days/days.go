// Package days wires every daily unit into a registry.
package days

import (
	"aoc2024/internal/days/day01"
	"aoc2024/internal/days/day02"
	"aoc2024/internal/days/day03"
	"aoc2024/internal/days/day04"
	"aoc2024/internal/days/day05"
	"aoc2024/internal/days/day06"
	"aoc2024/internal/days/day07"
	"aoc2024/internal/days/day08"
	"aoc2024/internal/days/day09"
	"aoc2024/internal/days/day10"
	"aoc2024/internal/days/day11"
	"aoc2024/internal/days/day12"
	"aoc2024/internal/days/day13"
	"aoc2024/internal/days/day14"
	"aoc2024/internal/days/day15"
	"aoc2024/internal/days/day16"
	"aoc2024/internal/days/day17"
	"aoc2024/internal/days/day18"
	"aoc2024/internal/days/day19"
	"aoc2024/internal/days/day20"
	"aoc2024/internal/days/day21"
	"aoc2024/internal/days/day22"
	"aoc2024/internal/days/day23"
	"aoc2024/internal/days/day24"
	"aoc2024/internal/days/day25"
	"aoc2024/internal/puzzle"
)

var constructors = []func() puzzle.Solver{
	day01.New, day02.New, day03.New, day04.New, day05.New,
	day06.New, day07.New, day08.New, day09.New, day10.New,
	day11.New, day12.New, day13.New, day14.New, day15.New,
	day16.New, day17.New, day18.New, day19.New, day20.New,
	day21.New, day22.New, day23.New, day24.New, day25.New,
}

// Register adds every day to r.
func Register(r *puzzle.Registry) error {
	for _, newSolver := range constructors {
		if err := r.Register(newSolver()); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns a registry holding every day.
func Registry() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}
