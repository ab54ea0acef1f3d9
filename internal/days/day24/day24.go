// Package day24 simulates, and repairs, a circuit of boolean gates.
package day24

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"aoc2024/internal/puzzle"
)

const sample = `x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02`

type op string

const (
	opAND op = "AND"
	opOR  op = "OR"
	opXOR op = "XOR"
)

type gate struct {
	a, b string
	op   op
	out  string
}

func (g gate) takes(a, b string) bool {
	return (g.a == a && g.b == b) || (g.a == b && g.b == a)
}

// Circuit is the initial wire values and the gates.
type Circuit struct {
	inputs map[string]bool
	gates  []gate
}

var gateLine = regexp.MustCompile(`^(\w+) (AND|OR|XOR) (\w+) -> (\w+)$`)

func New() puzzle.Solver {
	return &puzzle.Unit[Circuit]{
		Number: 24,
		Name:   "Crossed Wires",
		Parse:  parse,
		Part1: func(_ context.Context, c Circuit) (puzzle.Answer, error) {
			z, err := c.number("z")
			if err != nil {
				return nil, err
			}
			return puzzle.Uint(z), nil
		},
		Part2: func(ctx context.Context, c Circuit) (puzzle.Answer, error) {
			swapped, err := c.repair(ctx)
			if err != nil {
				return nil, err
			}
			return puzzle.Text(strings.Join(swapped, ",")), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "4"},
		},
	}
}

func parse(input string) (Circuit, error) {
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return Circuit{}, puzzle.Malformed(1, "want wire values and gates separated by a blank line")
	}
	c := Circuit{inputs: make(map[string]bool)}
	values := puzzle.Lines(sections[0])
	for i, line := range values {
		wire, v, ok := strings.Cut(line, ": ")
		if !ok || (v != "0" && v != "1") {
			return Circuit{}, puzzle.Malformed(i+1, "bad wire value %q", line)
		}
		c.inputs[wire] = v == "1"
	}
	outputs := make(map[string]bool)
	for i, line := range puzzle.Lines(sections[1]) {
		m := gateLine.FindStringSubmatch(line)
		if m == nil {
			return Circuit{}, puzzle.Malformed(len(values)+i+2, "bad gate %q", line)
		}
		if outputs[m[4]] {
			return Circuit{}, puzzle.Malformed(len(values)+i+2, "wire %s has two drivers", m[4])
		}
		outputs[m[4]] = true
		c.gates = append(c.gates, gate{a: m[1], op: op(m[2]), b: m[3], out: m[4]})
	}
	return c, nil
}

// eval computes every wire reachable from the gates.
func (c Circuit) eval() (map[string]bool, error) {
	driver := make(map[string]gate, len(c.gates))
	for _, g := range c.gates {
		driver[g.out] = g
	}
	values := make(map[string]bool, len(c.inputs)+len(c.gates))
	for w, v := range c.inputs {
		values[w] = v
	}
	active := make(map[string]bool)
	var wire func(string) (bool, error)
	wire = func(name string) (bool, error) {
		if v, ok := values[name]; ok {
			return v, nil
		}
		g, ok := driver[name]
		if !ok {
			return false, fmt.Errorf("%w: wire %s has no value", puzzle.ErrMalformedInput, name)
		}
		if active[name] {
			return false, fmt.Errorf("%w: wire %s feeds itself", puzzle.ErrMalformedInput, name)
		}
		active[name] = true
		a, err := wire(g.a)
		if err != nil {
			return false, err
		}
		b, err := wire(g.b)
		if err != nil {
			return false, err
		}
		var v bool
		switch g.op {
		case opAND:
			v = a && b
		case opOR:
			v = a || b
		case opXOR:
			v = a != b
		}
		values[name] = v
		return v, nil
	}
	for _, g := range c.gates {
		if _, err := wire(g.out); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// number reads the wires named prefix00, prefix01, ... as a binary number,
// least significant bit first.
func (c Circuit) number(prefix string) (uint64, error) {
	values, err := c.eval()
	if err != nil {
		return 0, err
	}
	var n uint64
	for bit := 0; ; bit++ {
		v, ok := values[wireName(prefix, bit)]
		if !ok {
			return n, nil
		}
		if bit >= 64 {
			return 0, fmt.Errorf("%s has more than 64 bits: %w", prefix, puzzle.ErrOverflow)
		}
		if v {
			n |= 1 << bit
		}
	}
}

func wireName(prefix string, bit int) string {
	return fmt.Sprintf("%s%02d", prefix, bit)
}

func (c Circuit) find(o op, a, b string) (gate, bool) {
	for _, g := range c.gates {
		if g.op == o && g.takes(a, b) {
			return g, true
		}
	}
	return gate{}, false
}

func (c Circuit) driver(out string) (gate, bool) {
	for _, g := range c.gates {
		if g.out == out {
			return g, true
		}
	}
	return gate{}, false
}

func (c Circuit) swap(w1, w2 string) {
	for i := range c.gates {
		switch c.gates[i].out {
		case w1:
			c.gates[i].out = w2
		case w2:
			c.gates[i].out = w1
		}
	}
}

// repair treats the circuit as a ripple-carry adder of x and y into z and
// finds the output wires that were swapped. It walks the bits from least
// significant, checking each full adder against
//
//	s = x ^ y, z = s ^ carry, carry' = (s & carry) | (x & y)
//
// and swaps the first output that breaks the pattern, then starts over.
func (c Circuit) repair(ctx context.Context) ([]string, error) {
	c.gates = slices.Clone(c.gates)
	bits := 0
	for bits < 64 {
		if _, ok := c.inputs[wireName("x", bits)]; !ok {
			break
		}
		bits++
	}
	if bits == 0 {
		return nil, fmt.Errorf("%w: no x inputs", puzzle.ErrMalformedInput)
	}

	var swapped []string
	for len(swapped) < 2*len(c.gates) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w1, w2, err := c.firstFault(bits)
		if err != nil {
			return nil, err
		}
		if w1 == "" {
			break
		}
		c.swap(w1, w2)
		swapped = append(swapped, w1, w2)
	}

	x, err := c.number("x")
	if err != nil {
		return nil, err
	}
	y, err := c.number("y")
	if err != nil {
		return nil, err
	}
	z, err := c.number("z")
	if err != nil {
		return nil, err
	}
	if x+y != z {
		return nil, fmt.Errorf("adder still computes %d+%d=%d: %w", x, y, z, puzzle.ErrNoSolution)
	}
	slices.Sort(swapped)
	return swapped, nil
}

// firstFault returns a pair of outputs to swap, or empty names when every bit
// matches the adder pattern.
func (c Circuit) firstFault(bits int) (string, string, error) {
	broken := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), puzzle.ErrNoSolution)
	}
	carry := ""
	for i := range bits {
		x, y, z := wireName("x", i), wireName("y", i), wireName("z", i)
		half, ok := c.find(opXOR, x, y)
		if !ok {
			return "", "", broken("no %s XOR %s", x, y)
		}
		both, ok := c.find(opAND, x, y)
		if !ok {
			return "", "", broken("no %s AND %s", x, y)
		}
		if carry == "" {
			if half.out != z {
				return half.out, z, nil
			}
			carry = both.out
			continue
		}

		sum, ok := c.find(opXOR, half.out, carry)
		if !ok {
			// One input of the gate driving z is wrong.
			g, ok := c.driver(z)
			if !ok {
				return "", "", broken("nothing drives %s", z)
			}
			switch {
			case g.a == carry || g.b == carry:
				other := g.a
				if other == carry {
					other = g.b
				}
				return other, half.out, nil
			case g.a == half.out:
				return g.b, carry, nil
			case g.b == half.out:
				return g.a, carry, nil
			}
			return "", "", broken("both inputs of %s are wrong", z)
		}
		if sum.out != z {
			return sum.out, z, nil
		}
		mid, ok := c.find(opAND, half.out, carry)
		if !ok {
			return "", "", broken("no carry term for bit %d", i)
		}
		next, ok := c.find(opOR, mid.out, both.out)
		if !ok {
			return "", "", broken("no carry out for bit %d", i)
		}
		carry = next.out
	}
	if last := wireName("z", bits); carry != last {
		if _, ok := c.driver(last); ok {
			return carry, last, nil
		}
	}
	return "", "", nil
}
