// Package day18 escapes a memory space as bytes fall into it.
package day18

import (
	"context"
	"fmt"
	"math"
	"sort"

	"aoc2024/internal/grid"
	"aoc2024/internal/maze"
	"aoc2024/internal/puzzle"
)

// Space is the memory grid size and how many bytes part 1 lets fall.
type Space struct {
	Size   int
	Fallen int
}

// RealSpace matches the real input.
var RealSpace = Space{Size: 71, Fallen: 1024}

func New() puzzle.Solver { return NewWith(RealSpace) }

func NewWith(s Space) puzzle.Solver {
	return &puzzle.Unit[[]grid.Coord]{
		Number: 18,
		Name:   "RAM Run",
		Parse:  parse,
		Part1: func(_ context.Context, bytes []grid.Coord) (puzzle.Answer, error) {
			steps, ok := s.escape(s.fallTimes(bytes), s.Fallen)
			if !ok {
				return nil, fmt.Errorf("after %d bytes: %w", s.Fallen, puzzle.ErrUnreachable)
			}
			return puzzle.Int(steps), nil
		},
		Part2: func(_ context.Context, bytes []grid.Coord) (puzzle.Answer, error) {
			fall := s.fallTimes(bytes)
			// Smallest k such that the exit is cut off once k bytes fell.
			k := sort.Search(len(bytes)+1, func(k int) bool {
				_, ok := s.escape(fall, k)
				return !ok
			})
			if k > len(bytes) {
				return nil, fmt.Errorf("exit stays reachable: %w", puzzle.ErrNoSolution)
			}
			b := bytes[k-1]
			return puzzle.Text(fmt.Sprintf("%d,%d", b.Col, b.Row)), nil
		},
	}
}

// parse reads "X,Y" lines; X is the column.
func parse(input string) ([]grid.Coord, error) {
	var out []grid.Coord
	for i, line := range puzzle.Lines(input) {
		xy, err := puzzle.Ints(line, ",")
		if err != nil {
			return nil, err
		}
		if len(xy) != 2 || xy[0] < 0 || xy[1] < 0 {
			return nil, puzzle.Malformed(i+1, "want X,Y, got %q", line)
		}
		out = append(out, grid.Coord{Row: xy[1], Col: xy[0]})
	}
	return out, nil
}

func (s Space) bounds() grid.Bounds {
	return grid.Bounds{Rows: s.Size, Cols: s.Size}
}

// fallTimes records, per cell, the index of the first byte landing there.
func (s Space) fallTimes(bytes []grid.Coord) []int {
	b := s.bounds()
	fall := make([]int, b.Area())
	for i := range fall {
		fall[i] = math.MaxInt
	}
	for i, c := range bytes {
		if b.Contains(c) && fall[b.Index(c)] == math.MaxInt {
			fall[b.Index(c)] = i
		}
	}
	return fall
}

// escape returns the shortest walk from the top-left to the bottom-right
// corner once the first k bytes have fallen.
func (s Space) escape(fall []int, k int) (int, bool) {
	b := s.bounds()
	blocked := func(c grid.Coord) bool { return fall[b.Index(c)] < k }
	dist := maze.Distances(b, blocked, grid.Coord{})
	d := dist[b.Index(grid.Coord{Row: s.Size - 1, Col: s.Size - 1})]
	return d, d != maze.Unreachable
}
