// Package day21 types door codes through chains of robot-operated keypads.
package day21

import (
	"context"
	"strings"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const sample = `029A
980A
179A
456A
379A`

// Robots sets how many robot-operated directional keypads sit between the
// person and the numeric keypad's robot.
type Robots struct {
	Part1, Part2 int
}

// DefaultRobots matches the puzzle.
var DefaultRobots = Robots{Part1: 2, Part2: 25}

// keypad maps keys to positions; the gap is the one cell an arm must never
// cross.
type keypad struct {
	keys map[byte]grid.Coord
	gap  grid.Coord
}

func newKeypad(rows ...string) keypad {
	k := keypad{keys: make(map[byte]grid.Coord)}
	for r, row := range rows {
		for c := range len(row) {
			at := grid.Coord{Row: r, Col: c}
			if row[c] == ' ' {
				k.gap = at
				continue
			}
			k.keys[row[c]] = at
		}
	}
	return k
}

var (
	numeric     = newKeypad("789", "456", "123", " 0A")
	directional = newKeypad(" ^A", "<v>")
)

// routes lists the button sequences, ending in A, that move an arm from one
// key to another and press it. Only the two L-shaped routes are candidates;
// zig-zags are never cheaper upstream.
func (k keypad) routes(from, to byte) []string {
	a, b := k.keys[from], k.keys[to]
	var vert, horiz string
	if b.Row > a.Row {
		vert = strings.Repeat("v", b.Row-a.Row)
	} else {
		vert = strings.Repeat("^", a.Row-b.Row)
	}
	if b.Col > a.Col {
		horiz = strings.Repeat(">", b.Col-a.Col)
	} else {
		horiz = strings.Repeat("<", a.Col-b.Col)
	}
	var out []string
	if (grid.Coord{Row: a.Row, Col: b.Col}) != k.gap {
		out = append(out, horiz+vert+"A")
	}
	if (grid.Coord{Row: b.Row, Col: a.Col}) != k.gap && (vert != "" && horiz != "") {
		out = append(out, vert+horiz+"A")
	}
	return out
}

type memoKey struct {
	from, to byte
	depth    int
}

// typist computes minimum human button presses with memoised costs for the
// directional keypads.
type typist struct {
	memo map[memoKey]int
}

// press is the cost of moving pad's arm from one key to another and pressing
// it, with depth robot-operated directional keypads above pad.
func (t *typist) press(pad keypad, from, to byte, depth int) int {
	best := -1
	for _, r := range pad.routes(from, to) {
		cost := len(r)
		if depth > 0 {
			cost = t.sequence(r, depth-1)
		}
		if best < 0 || cost < best {
			best = cost
		}
	}
	return best
}

// sequence is the cost of typing seq on a directional keypad that starts on
// A, with depth robot-operated keypads above it.
func (t *typist) sequence(seq string, depth int) int {
	total := 0
	prev := byte('A')
	for i := range len(seq) {
		key := memoKey{from: prev, to: seq[i], depth: depth}
		cost, ok := t.memo[key]
		if !ok {
			cost = t.press(directional, prev, seq[i], depth)
			t.memo[key] = cost
		}
		total += cost
		prev = seq[i]
	}
	return total
}

// typeCode is the human presses needed to enter code on the numeric keypad.
func (t *typist) typeCode(code string, robots int) int {
	total := 0
	prev := byte('A')
	for i := range len(code) {
		total += t.press(numeric, prev, code[i], robots)
		prev = code[i]
	}
	return total
}

func New() puzzle.Solver { return NewWith(DefaultRobots) }

func NewWith(r Robots) puzzle.Solver {
	return &puzzle.Unit[[]string]{
		Number: 21,
		Name:   "Keypad Conundrum",
		Parse:  parse,
		Part1: func(_ context.Context, codes []string) (puzzle.Answer, error) {
			return complexity(codes, r.Part1)
		},
		Part2: func(_ context.Context, codes []string) (puzzle.Answer, error) {
			return complexity(codes, r.Part2)
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: sample, Want: "126384"},
		},
	}
}

func parse(input string) ([]string, error) {
	codes := puzzle.Lines(input)
	for i, code := range codes {
		if !strings.HasSuffix(code, "A") {
			return nil, puzzle.Malformed(i+1, "code %q does not end in A", code)
		}
		for j := range len(code) {
			if _, ok := numeric.keys[code[j]]; !ok {
				return nil, puzzle.Malformed(i+1, "code %q has no key %q", code, code[j])
			}
		}
		if _, err := puzzle.Atoi(strings.TrimSuffix(code, "A")); err != nil {
			return nil, puzzle.Malformed(i+1, "code %q has no numeric part", code)
		}
	}
	return codes, nil
}

func complexity(codes []string, robots int) (puzzle.Answer, error) {
	t := &typist{memo: make(map[memoKey]int)}
	total := 0
	for _, code := range codes {
		n, err := puzzle.Atoi(strings.TrimSuffix(code, "A"))
		if err != nil {
			return nil, err
		}
		total += n * t.typeCode(code, robots)
	}
	return puzzle.Int(total), nil
}
