// Package day13 wins prizes from claw machines.
package day13

import (
	"context"
	"regexp"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279`

type vec = grid.Point[int]

// Machine is one claw machine's button offsets and prize location.
type Machine struct {
	A, B, Prize vec
}

const (
	costA = 3
	costB = 1
	// PressLimit caps presses per button in part 1.
	PressLimit = 100
	// Correction is added to both prize coordinates in part 2.
	Correction = 10_000_000_000_000
)

var coords = regexp.MustCompile(`X[+=](\d+), Y[+=](\d+)`)

func New() puzzle.Solver {
	return &puzzle.Unit[[]Machine]{
		Number: 13,
		Name:   "Claw Contraption",
		Parse:  parse,
		Part1: func(ctx context.Context, ms []Machine) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, ms, func(m Machine) (int, error) {
				return m.tokens(PressLimit), nil
			})
			return puzzle.Int(n), err
		},
		Part2: func(ctx context.Context, ms []Machine) (puzzle.Answer, error) {
			n, err := puzzle.MapSum(ctx, 0, ms, func(m Machine) (int, error) {
				m.Prize = m.Prize.Add(vec{X: Correction, Y: Correction})
				return m.tokens(0), nil
			})
			return puzzle.Int(n), err
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "480"},
			{Part: puzzle.Part2, Input: sample, Want: "875318608908"},
		},
	}
}

func parse(input string) ([]Machine, error) {
	var out []Machine
	for i, block := range puzzle.Sections(input) {
		found := coords.FindAllStringSubmatch(block, -1)
		if len(found) != 3 {
			return nil, puzzle.Malformed(i*4+1, "machine needs two buttons and a prize")
		}
		var vs [3]vec
		for j, m := range found {
			x, err := puzzle.Atoi(m[1])
			if err != nil {
				return nil, err
			}
			y, err := puzzle.Atoi(m[2])
			if err != nil {
				return nil, err
			}
			vs[j] = vec{X: x, Y: y}
		}
		out = append(out, Machine{A: vs[0], B: vs[1], Prize: vs[2]})
	}
	return out, nil
}

// tokens solves a*A + b*B = Prize exactly by Cramer's rule and returns the
// cost, or 0 when no non-negative integer solution exists. limit > 0 caps
// presses per button. Machines with parallel buttons win nothing.
func (m Machine) tokens(limit int) int {
	det := m.A.X*m.B.Y - m.A.Y*m.B.X
	if det == 0 {
		return 0
	}
	na := m.Prize.X*m.B.Y - m.Prize.Y*m.B.X
	nb := m.A.X*m.Prize.Y - m.A.Y*m.Prize.X
	if na%det != 0 || nb%det != 0 {
		return 0
	}
	a, b := na/det, nb/det
	if a < 0 || b < 0 || (limit > 0 && (a > limit || b > limit)) {
		return 0
	}
	return costA*a + costB*b
}
