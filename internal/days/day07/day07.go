// Package day07 restores operators in calibration equations.
package day07

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"aoc2024/internal/puzzle"
)

const sample = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20`

// Equation is a test value and the operands that must produce it.
type Equation struct {
	Target   int
	Operands []int
}

type op func(a, b int) (int, bool)

func add(a, b int) (int, bool) {
	s, carry := bits.Add64(uint64(a), uint64(b), 0)
	return int(s), carry == 0 && s <= math.MaxInt
}

func mul(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int(lo), hi == 0 && lo <= math.MaxInt
}

func concat(a, b int) (int, bool) {
	shift := 10
	for shift <= b {
		shift *= 10
	}
	v, ok := mul(a, shift)
	if !ok {
		return 0, false
	}
	return add(v, b)
}

func New() puzzle.Solver {
	return &puzzle.Unit[[]Equation]{
		Number: 7,
		Name:   "Bridge Repair",
		Parse:  parse,
		Part1: func(ctx context.Context, eqs []Equation) (puzzle.Answer, error) {
			return calibrate(ctx, eqs, add, mul)
		},
		Part2: func(ctx context.Context, eqs []Equation) (puzzle.Answer, error) {
			return calibrate(ctx, eqs, add, mul, concat)
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "3749"},
			{Part: puzzle.Part2, Input: sample, Want: "11387"},
		},
	}
}

func parse(input string) ([]Equation, error) {
	var eqs []Equation
	for i, line := range puzzle.Lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.Malformed(i+1, "missing ':'")
		}
		target, err := puzzle.Atoi(head)
		if err != nil {
			return nil, err
		}
		ops, err := puzzle.Ints(tail, "")
		if err != nil {
			return nil, err
		}
		if len(ops) == 0 {
			return nil, puzzle.Malformed(i+1, "no operands")
		}
		if target < 0 || hasNegative(ops) {
			return nil, puzzle.Malformed(i+1, "negative values are not supported")
		}
		eqs = append(eqs, Equation{Target: target, Operands: ops})
	}
	return eqs, nil
}

func hasNegative(vs []int) bool {
	for _, v := range vs {
		if v < 0 {
			return true
		}
	}
	return false
}

// calibrate sums the targets of every solvable equation. Only that sum has
// to fit in an int.
func calibrate(ctx context.Context, eqs []Equation, ops ...op) (puzzle.Answer, error) {
	solved := make([]bool, len(eqs))
	idx := make([]int, len(eqs))
	for i := range idx {
		idx[i] = i
	}
	if _, err := puzzle.Count(ctx, 0, idx, func(i int) bool {
		solved[i] = solvable(eqs[i], ops)
		return solved[i]
	}); err != nil {
		return nil, err
	}

	total := 0
	for i, eq := range eqs {
		if !solved[i] {
			continue
		}
		var ok bool
		if total, ok = add(total, eq.Target); !ok {
			return nil, fmt.Errorf("calibration total: %w", puzzle.ErrOverflow)
		}
	}
	return puzzle.Int(total), nil
}

// solvable tries every operator placement left to right. A branch is dropped
// once it overflows or passes the target with no zero operand left to bring
// it back down.
func solvable(eq Equation, ops []op) bool {
	zeroAfter := make([]bool, len(eq.Operands)+1)
	for i := len(eq.Operands) - 1; i >= 0; i-- {
		zeroAfter[i] = zeroAfter[i+1] || eq.Operands[i] == 0
	}
	var search func(i, acc int) bool
	search = func(i, acc int) bool {
		if i == len(eq.Operands) {
			return acc == eq.Target
		}
		if acc > eq.Target && !zeroAfter[i] {
			return false
		}
		for _, f := range ops {
			if v, ok := f(acc, eq.Operands[i]); ok && search(i+1, v) {
				return true
			}
		}
		return false
	}
	return search(1, eq.Operands[0])
}
