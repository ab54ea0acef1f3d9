// Package grid provides the coordinate, direction and point types shared by
// the grid-walking puzzle units.
package grid

import "fmt"

// Direction is one of the four cardinal headings on a grid.
// Rows grow downwards and columns grow to the right.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// ParseDirection maps an arrow rune (^ > v <) to its Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case '>':
		return Right, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	}
	return Up, fmt.Errorf("unknown direction %q", r)
}

// String renders the heading as an arrow.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Clockwise returns the heading after a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Counterclockwise returns the heading after a quarter turn to the left.
func (d Direction) Counterclockwise() Direction {
	return (d + 3) % 4
}

// Opposite returns the heading after a half turn.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// Step returns the neighbour of c in direction d. It fails only when the row
// or column would drop below zero; upper bounds are not checked.
func (d Direction) Step(c Coord) (Coord, bool) {
	dr, dc := d.Delta()
	next := Coord{Row: c.Row + dr, Col: c.Col + dc}
	if next.Row < 0 || next.Col < 0 {
		return c, false
	}
	return next, true
}

// StepBounded is Step that also fails when the neighbour falls outside b.
func (d Direction) StepBounded(c Coord, b Bounds) (Coord, bool) {
	next, ok := d.Step(c)
	if !ok || !b.Contains(next) {
		return c, false
	}
	return next, true
}

// Project re-expresses c in a basis aligned with d. For vertical headings the
// parallel axis is the row and the perpendicular axis is the column; for
// horizontal headings it is the other way round.
func (d Direction) Project(c Coord) (parallel, perpendicular int) {
	if d.Vertical() {
		return c.Row, c.Col
	}
	return c.Col, c.Row
}

// Unproject is the inverse of Project.
func (d Direction) Unproject(parallel, perpendicular int) Coord {
	if d.Vertical() {
		return Coord{Row: parallel, Col: perpendicular}
	}
	return Coord{Row: perpendicular, Col: parallel}
}
