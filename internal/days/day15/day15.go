// Package day15 predicts a warehouse robot pushing boxes around.
package day15

import (
	"context"
	"strings"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<`

const wideSample = `#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^`

// Plan is the warehouse layout and the robot's queued moves.
type Plan struct {
	layout string
	moves  []grid.Direction
}

func New() puzzle.Solver {
	return &puzzle.Unit[Plan]{
		Number: 15,
		Name:   "Warehouse Woes",
		Parse:  parse,
		Part1: func(ctx context.Context, p Plan) (puzzle.Answer, error) {
			return simulate(ctx, p.layout, p.moves)
		},
		Part2: func(ctx context.Context, p Plan) (puzzle.Answer, error) {
			return simulate(ctx, widen(p.layout), p.moves)
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: small, Want: "2028"},
			{Part: puzzle.Part2, Input: wideSample, Want: "618"},
		},
	}
}

func parse(input string) (Plan, error) {
	sections := puzzle.Sections(input)
	if len(sections) != 2 {
		return Plan{}, puzzle.Malformed(1, "want a map and a move list separated by a blank line")
	}
	p := Plan{layout: sections[0]}
	for _, r := range sections[1] {
		if r == '\n' || r == '\r' {
			continue
		}
		d, err := grid.ParseDirection(r)
		if err != nil {
			return Plan{}, puzzle.Malformed(strings.Count(sections[0], "\n")+2, "%v", err)
		}
		p.moves = append(p.moves, d)
	}
	return p, nil
}

var wide = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

func widen(layout string) string {
	return wide.Replace(layout)
}

type warehouse struct {
	cells  [][]rune
	bounds grid.Bounds
	robot  grid.Coord
}

func simulate(ctx context.Context, layout string, moves []grid.Direction) (puzzle.Answer, error) {
	cells, b, err := grid.ParseRunes(layout)
	if err != nil {
		return nil, err
	}
	robot, ok := grid.Find(cells, '@')
	if !ok {
		return nil, puzzle.Malformed(1, "no robot '@' on the map")
	}
	cells[robot.Row][robot.Col] = '.'
	w := &warehouse{cells: cells, bounds: b, robot: robot}
	for i, d := range moves {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		w.push(d)
	}
	return puzzle.Int(w.gps()), nil
}

func (w *warehouse) at(c grid.Coord) rune {
	if !w.bounds.Contains(c) {
		return '#'
	}
	return w.cells[c.Row][c.Col]
}

// push moves the robot one step in d if the chain of boxes ahead of it can
// move. The sweep advances one layer at a time along d, tracking the lanes
// (perpendicular offsets) still carrying boxes. A wide box moved vertically
// drags its other half's lane into the same layer.
func (w *warehouse) push(d grid.Direction) {
	par, perp := d.Project(w.robot)
	dr, dc := d.Delta()
	sign := dr + dc

	var moved []grid.Coord
	lanes := []int{perp}
	for step := 1; len(lanes) > 0; step++ {
		inLayer := make(map[int]bool, len(lanes))
		for _, l := range lanes {
			inLayer[l] = true
		}
		var next []int
		for i := 0; i < len(lanes); i++ {
			lane := lanes[i]
			c := d.Unproject(par+sign*step, lane)
			switch r := w.at(c); r {
			case '#':
				return
			case '.':
				continue
			case '[', ']':
				if d.Vertical() {
					other := lane + 1
					if r == ']' {
						other = lane - 1
					}
					if !inLayer[other] {
						inLayer[other] = true
						lanes = append(lanes, other)
					}
				}
			}
			next = append(next, lane)
			moved = append(moved, c)
		}
		lanes = next
	}

	for i := len(moved) - 1; i >= 0; i-- {
		c := moved[i]
		to := grid.Coord{Row: c.Row + dr, Col: c.Col + dc}
		w.cells[to.Row][to.Col] = w.cells[c.Row][c.Col]
		w.cells[c.Row][c.Col] = '.'
	}
	w.robot = grid.Coord{Row: w.robot.Row + dr, Col: w.robot.Col + dc}
}

func (w *warehouse) gps() int {
	sum := 0
	for c := range w.bounds.Coords() {
		if r := w.cells[c.Row][c.Col]; r == 'O' || r == '[' {
			sum += 100*c.Row + c.Col
		}
	}
	return sum
}
