// Package day17 runs a 3-bit computer.
package day17

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"aoc2024/internal/puzzle"
)

const sample = `Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0`

const quine = `Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0`

// StepLimit bounds a single run of the machine.
const StepLimit = 1 << 20

var errRunaway = fmt.Errorf("program did not halt within %d steps: %w", StepLimit, puzzle.ErrNoSolution)

const (
	opADV = iota
	opBXL
	opBST
	opJNZ
	opBXC
	opOUT
	opBDV
	opCDV
)

// Computer is the initial register state and the program.
type Computer struct {
	A, B, C uint64
	Program []uint8
}

func New() puzzle.Solver {
	return &puzzle.Unit[Computer]{
		Number: 17,
		Name:   "Chronospatial Computer",
		Parse:  parse,
		Part1: func(_ context.Context, c Computer) (puzzle.Answer, error) {
			out, err := c.Run(c.A)
			if err != nil {
				return nil, err
			}
			return puzzle.Text(join(out)), nil
		},
		Part2: func(ctx context.Context, c Computer) (puzzle.Answer, error) {
			a, err := c.selfReplicating(ctx)
			if err != nil {
				return nil, err
			}
			return puzzle.Uint(a), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "4,6,3,5,6,3,5,2,1,0"},
			{Part: puzzle.Part2, Input: quine, Want: "117440"},
		},
	}
}

func parse(input string) (Computer, error) {
	var c Computer
	lines := puzzle.Lines(input)
	if len(lines) != 5 {
		return c, puzzle.Malformed(1, "want three registers, a blank line and a program")
	}
	for i, reg := range []*uint64{&c.A, &c.B, &c.C} {
		_, v, ok := strings.Cut(lines[i], ": ")
		if !ok {
			return c, puzzle.Malformed(i+1, "bad register line %q", lines[i])
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c, puzzle.Malformed(i+1, "bad register value %q", v)
		}
		*reg = n
	}
	prog, ok := strings.CutPrefix(lines[4], "Program: ")
	if !ok {
		return c, puzzle.Malformed(5, "missing program")
	}
	ops, err := puzzle.Ints(prog, ",")
	if err != nil {
		return c, err
	}
	for _, op := range ops {
		if op < 0 || op > 7 {
			return c, puzzle.Malformed(5, "%d is not a 3-bit value", op)
		}
		c.Program = append(c.Program, uint8(op))
	}
	return c, nil
}

// Run executes the program with register A set to a and returns its output.
func (c Computer) Run(a uint64) ([]uint8, error) {
	regA, regB, regC := a, c.B, c.C
	combo := func(v uint8) (uint64, error) {
		switch v {
		case 4:
			return regA, nil
		case 5:
			return regB, nil
		case 6:
			return regC, nil
		case 7:
			return 0, fmt.Errorf("%w: combo operand 7 is reserved", puzzle.ErrMalformedInput)
		}
		return uint64(v), nil
	}
	shift := func(n uint64) uint64 {
		if n >= 64 {
			return 0
		}
		return regA >> n
	}

	var out []uint8
	for ip, steps := 0, 0; ip+1 < len(c.Program); steps++ {
		if steps == StepLimit {
			return out, errRunaway
		}
		op, lit := c.Program[ip], c.Program[ip+1]
		ip += 2
		switch op {
		case opBXL:
			regB ^= uint64(lit)
			continue
		case opJNZ:
			if regA != 0 {
				ip = int(lit)
			}
			continue
		case opBXC:
			regB ^= regC
			continue
		}
		v, err := combo(lit)
		if err != nil {
			return out, err
		}
		switch op {
		case opADV:
			regA = shift(v)
		case opBST:
			regB = v % 8
		case opOUT:
			out = append(out, uint8(v%8))
		case opBDV:
			regB = shift(v)
		case opCDV:
			regC = shift(v)
		}
	}
	return out, nil
}

// selfReplicating finds the smallest A that makes the program print itself.
// Programs of this shape print one value per loop and drop the low three bits
// of A each time, so A is built three bits at a time from the last output
// backwards, keeping every prefix that reproduces the program's tail.
func (c Computer) selfReplicating(ctx context.Context) (uint64, error) {
	candidates := []uint64{0}
	for i := len(c.Program) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		want := c.Program[i:]
		var next []uint64
		for _, prefix := range candidates {
			if prefix > (^uint64(0))>>3 {
				continue
			}
			for low := range uint64(8) {
				a := prefix<<3 | low
				out, err := c.Run(a)
				if err != nil {
					return 0, err
				}
				if slices.Equal(out, want) {
					next = append(next, a)
				}
			}
		}
		candidates = next
	}
	slices.Sort(candidates)
	for _, a := range candidates {
		if a > 0 {
			return a, nil
		}
	}
	return 0, fmt.Errorf("no register value reproduces the program: %w", puzzle.ErrNoSolution)
}

func join(out []uint8) string {
	parts := make([]string, len(out))
	for i, v := range out {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}
