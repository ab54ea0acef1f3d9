package grid

import (
	"fmt"
	"iter"
)

// Coord identifies a grid cell by row and column.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ManhattanDistance is |Δrow| + |Δcol|.
func (c Coord) ManhattanDistance(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Bounds is the size of a grid, fixed when the puzzle input is parsed.
type Bounds struct {
	Rows, Cols int
}

// Contains reports whether c lies in [0,Rows) x [0,Cols).
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.Rows && c.Col < b.Cols
}

// Area is the number of cells.
func (b Bounds) Area() int {
	return b.Rows * b.Cols
}

// Index flattens c into row-major order.
func (b Bounds) Index(c Coord) int {
	return c.Row*b.Cols + c.Col
}

// Coord is the inverse of Index.
func (b Bounds) Coord(i int) Coord {
	return Coord{Row: i / b.Cols, Col: i % b.Cols}
}

// Coords yields every cell in row-major order.
func (b Bounds) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				if !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds orthogonal neighbours of c.
func (b Bounds) Neighbors(c Coord) iter.Seq2[Direction, Coord] {
	return func(yield func(Direction, Coord) bool) {
		for _, d := range Directions {
			if next, ok := d.StepBounded(c, b); ok {
				if !yield(d, next) {
					return
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
