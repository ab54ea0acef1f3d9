// Package day20 counts time-saving cheats on a race track.
package day20

import (
	"context"
	"fmt"

	"aoc2024/internal/grid"
	"aoc2024/internal/maze"
	"aoc2024/internal/puzzle"
)

// Rules sets the longest cheat per part and the saving that counts.
type Rules struct {
	Part1Cheat int
	Part2Cheat int
	MinSaving  int
}

// DefaultRules are the limits the puzzle asks about.
var DefaultRules = Rules{Part1Cheat: 2, Part2Cheat: 20, MinSaving: 100}

// Track holds the race distances from both ends.
type Track struct {
	bounds    grid.Bounds
	fromStart []int
	toEnd     []int
	cells     []grid.Coord
	total     int
}

func New() puzzle.Solver { return NewWith(DefaultRules) }

func NewWith(r Rules) puzzle.Solver {
	return &puzzle.Unit[Track]{
		Number: 20,
		Name:   "Race Condition",
		Parse:  parse,
		Part1: func(ctx context.Context, t Track) (puzzle.Answer, error) {
			return t.cheats(ctx, r.Part1Cheat, r.MinSaving)
		},
		Part2: func(ctx context.Context, t Track) (puzzle.Answer, error) {
			return t.cheats(ctx, r.Part2Cheat, r.MinSaving)
		},
	}
}

func parse(input string) (Track, error) {
	cells, b, err := grid.ParseRunes(input)
	if err != nil {
		return Track{}, err
	}
	start, ok := grid.Find(cells, 'S')
	if !ok {
		return Track{}, puzzle.Malformed(1, "no start 'S'")
	}
	end, ok := grid.Find(cells, 'E')
	if !ok {
		return Track{}, puzzle.Malformed(1, "no end 'E'")
	}
	wall := func(c grid.Coord) bool { return cells[c.Row][c.Col] == '#' }
	t := Track{
		bounds:    b,
		fromStart: maze.Distances(b, wall, start),
		toEnd:     maze.Distances(b, wall, end),
	}
	t.total = t.fromStart[b.Index(end)]
	if t.total == maze.Unreachable {
		return Track{}, fmt.Errorf("end %v: %w", end, puzzle.ErrUnreachable)
	}
	for c := range b.Coords() {
		if t.fromStart[b.Index(c)] != maze.Unreachable {
			t.cells = append(t.cells, c)
		}
	}
	return t, nil
}

// cheats counts (start, end) cell pairs within maxLen steps of each other
// whose shortcut saves at least minSaving picoseconds.
func (t Track) cheats(ctx context.Context, maxLen, minSaving int) (puzzle.Answer, error) {
	n, err := puzzle.MapSum(ctx, 0, t.cells, func(a grid.Coord) (int, error) {
		before := t.fromStart[t.bounds.Index(a)]
		count := 0
		for dr := -maxLen; dr <= maxLen; dr++ {
			span := maxLen - abs(dr)
			for dc := -span; dc <= span; dc++ {
				b := grid.Coord{Row: a.Row + dr, Col: a.Col + dc}
				if !t.bounds.Contains(b) {
					continue
				}
				after := t.toEnd[t.bounds.Index(b)]
				if after == maze.Unreachable {
					continue
				}
				if t.total-(before+abs(dr)+abs(dc)+after) >= minSaving {
					count++
				}
			}
		}
		return count, nil
	})
	return puzzle.Int(n), err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
