// Package puzzle defines the contract every daily unit implements, the
// registry the CLI selects units from, and the runner that executes them.
package puzzle

import (
	"context"
	"fmt"
)

// Part selects one of the two questions a day asks.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{Part1, Part2}

// ParsePart accepts "1" or "2".
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	}
	return 0, fmt.Errorf("invalid part %q (want 1 or 2)", s)
}

func (p Part) String() string {
	return fmt.Sprintf("part %d", int(p))
}

// Solver is one day's puzzle unit.
type Solver interface {
	Day() int
	Title() string
	// Has reports whether the unit implements part p.
	Has(p Part) bool
	Solve(ctx context.Context, p Part, input string) (Answer, error)
}

// Example is a sample input with its known answer.
type Example struct {
	Part  Part
	Input string
	Want  string
}

// ExampleProvider is implemented by units that ship sample inputs.
type ExampleProvider interface {
	Examples() []Example
}

// Unit adapts a parse function and up to two solve functions into a Solver.
// The input is parsed once per Solve call; parsed values are never shared
// between calls so parts can run concurrently.
type Unit[T any] struct {
	Number  int
	Name    string
	Parse   func(input string) (T, error)
	Part1   func(ctx context.Context, in T) (Answer, error)
	Part2   func(ctx context.Context, in T) (Answer, error)
	Samples []Example
}

func (u *Unit[T]) Day() int { return u.Number }

func (u *Unit[T]) Title() string { return u.Name }

func (u *Unit[T]) Examples() []Example { return u.Samples }

func (u *Unit[T]) Has(p Part) bool {
	return u.solver(p) != nil
}

func (u *Unit[T]) solver(p Part) func(context.Context, T) (Answer, error) {
	switch p {
	case Part1:
		return u.Part1
	case Part2:
		return u.Part2
	}
	return nil
}

func (u *Unit[T]) Solve(ctx context.Context, p Part, input string) (Answer, error) {
	solve := u.solver(p)
	if solve == nil {
		return nil, fmt.Errorf("day %d %s: %w", u.Number, p, ErrNoPart)
	}
	parsed, err := u.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("day %d: parse: %w", u.Number, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ans, err := solve(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("day %d %s: %w", u.Number, p, err)
	}
	return ans, nil
}
