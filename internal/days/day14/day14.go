// Package day14 tracks security robots in a wrapping room.
package day14

import (
	"context"
	"fmt"
	"regexp"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

type vec = grid.Point[int]

// Robot is a position and a velocity in tiles per second.
type Robot struct {
	P, V vec
}

// Room is the floor size and how long part 1 waits.
type Room struct {
	Width, Height int
	Seconds       int
}

// Bathroom is the room the real input describes.
var Bathroom = Room{Width: 101, Height: 103, Seconds: 100}

var robotLine = regexp.MustCompile(`^p=(-?\d+),(-?\d+) v=(-?\d+),(-?\d+)$`)

func New() puzzle.Solver { return NewWith(Bathroom) }

func NewWith(room Room) puzzle.Solver {
	return &puzzle.Unit[[]Robot]{
		Number: 14,
		Name:   "Restroom Redoubt",
		Parse:  parse,
		Part1: func(_ context.Context, rs []Robot) (puzzle.Answer, error) {
			return puzzle.Int(room.safety(rs, room.Seconds)), nil
		},
		Part2: func(ctx context.Context, rs []Robot) (puzzle.Answer, error) {
			return room.firstDistinct(ctx, rs)
		},
	}
}

func parse(input string) ([]Robot, error) {
	var out []Robot
	for i, line := range puzzle.Lines(input) {
		m := robotLine.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed(i+1, "bad robot %q", line)
		}
		var n [4]int
		for j := range n {
			v, err := puzzle.Atoi(m[j+1])
			if err != nil {
				return nil, err
			}
			n[j] = v
		}
		out = append(out, Robot{P: vec{X: n[0], Y: n[1]}, V: vec{X: n[2], Y: n[3]}})
	}
	return out, nil
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

func (room Room) at(r Robot, t int) vec {
	p := r.P.Add(r.V.Mul(t))
	return vec{X: mod(p.X, room.Width), Y: mod(p.Y, room.Height)}
}

// safety multiplies the robot counts of the four quadrants; robots on the
// middle row or column are ignored.
func (room Room) safety(rs []Robot, t int) int {
	var quad [4]int
	mx, my := room.Width/2, room.Height/2
	for _, r := range rs {
		p := room.at(r, t)
		if p.X == mx || p.Y == my {
			continue
		}
		q := 0
		if p.X > mx {
			q++
		}
		if p.Y > my {
			q += 2
		}
		quad[q]++
	}
	return quad[0] * quad[1] * quad[2] * quad[3]
}

// firstDistinct finds the first second after the start at which no two robots
// share a tile. Positions repeat every Width*Height seconds, so that bounds
// the search.
func (room Room) firstDistinct(ctx context.Context, rs []Robot) (puzzle.Answer, error) {
	period := room.Width * room.Height
	occupied := make([]int, period)
	for t := 1; t <= period; t++ {
		if t%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		distinct := true
		for _, r := range rs {
			p := room.at(r, t)
			i := p.Y*room.Width + p.X
			if occupied[i] == t {
				distinct = false
				break
			}
			occupied[i] = t
		}
		if distinct {
			return puzzle.Int(t), nil
		}
	}
	return nil, fmt.Errorf("no overlap-free second within %d: %w", period, puzzle.ErrNoSolution)
}
