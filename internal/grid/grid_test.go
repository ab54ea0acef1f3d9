package grid

import (
	"errors"
	"testing"

	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationsFormCyclicGroup(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Clockwise().Clockwise().Clockwise().Clockwise(), "four clockwise turns from %v", d)
		assert.Equal(t, d, d.Counterclockwise().Counterclockwise().Counterclockwise().Counterclockwise())
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite twice from %v", d)
		assert.Equal(t, d, d.Clockwise().Counterclockwise())
		assert.Equal(t, d.Opposite(), d.Clockwise().Clockwise())
		assert.NotEqual(t, d, d.Clockwise())
	}
}

func TestClockwiseOrder(t *testing.T) {
	assert.Equal(t, Right, Up.Clockwise())
	assert.Equal(t, Down, Right.Clockwise())
	assert.Equal(t, Left, Down.Clockwise())
	assert.Equal(t, Up, Left.Clockwise())
	assert.Equal(t, Left, Up.Counterclockwise())
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Left, Right.Opposite())
}

func TestStepUnderflow(t *testing.T) {
	origin := Coord{}

	_, ok := Up.Step(origin)
	assert.False(t, ok)
	_, ok = Left.Step(origin)
	assert.False(t, ok)

	next, ok := Down.Step(origin)
	require.True(t, ok)
	assert.Equal(t, Coord{Row: 1, Col: 0}, next)

	// Step never checks the upper bound.
	next, ok = Right.Step(Coord{Row: 0, Col: 1 << 20})
	require.True(t, ok)
	assert.Equal(t, 1<<20+1, next.Col)
}

func TestStepBoundedStaysInside(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 4}
	for c := range b.Coords() {
		for _, d := range Directions {
			next, ok := d.StepBounded(c, b)
			if !ok {
				continue
			}
			assert.True(t, b.Contains(next), "%v from %v left the grid: %v", d, c, next)
			assert.Equal(t, 1, c.ManhattanDistance(next))
		}
	}

	_, ok := Right.StepBounded(Coord{Row: 0, Col: 3}, b)
	assert.False(t, ok)
	_, ok = Down.StepBounded(Coord{Row: 2, Col: 0}, b)
	assert.False(t, ok)
}

func TestProjectRoundTrip(t *testing.T) {
	b := Bounds{Rows: 5, Cols: 7}
	for _, d := range Directions {
		for c := range b.Coords() {
			par, perp := d.Project(c)
			assert.Equal(t, c, d.Unproject(par, perp))
		}
	}

	par, perp := Up.Project(Coord{Row: 2, Col: 6})
	assert.Equal(t, 2, par)
	assert.Equal(t, 6, perp)
	par, perp = Left.Project(Coord{Row: 2, Col: 6})
	assert.Equal(t, 6, par)
	assert.Equal(t, 2, perp)
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection([]rune(d.String())[0])
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection('x')
	assert.Error(t, err)
}

func TestBoundsIndex(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 5}
	i := 0
	for c := range b.Coords() {
		assert.Equal(t, i, b.Index(c))
		assert.Equal(t, c, b.Coord(i))
		i++
	}
	assert.Equal(t, b.Area(), i)
}

func TestNeighborsCorner(t *testing.T) {
	b := Bounds{Rows: 2, Cols: 2}
	var got []Direction
	for d := range b.Neighbors(Coord{}) {
		got = append(got, d)
	}
	assert.Equal(t, []Direction{Right, Down}, got)
}

func TestPoint(t *testing.T) {
	a := Point[int]{X: 2, Y: -3}
	b := Point[int]{X: 5, Y: 7}
	assert.Equal(t, Point[int]{X: 7, Y: 4}, a.Add(b))
	assert.Equal(t, Point[int]{X: -3, Y: -10}, a.Sub(b))
	assert.Equal(t, Point[int]{X: 6, Y: -9}, a.Mul(3))

	f := Point[float64]{X: 0.5, Y: 1.5}
	assert.InDelta(t, 1.0, f.Mul(2).X, 1e-9)
}

func TestParseRunes(t *testing.T) {
	rows, b, err := ParseRunes("#.S\n..E\n")
	require.NoError(t, err)
	assert.Equal(t, Bounds{Rows: 2, Cols: 3}, b)

	s, ok := Find(rows, 'S')
	require.True(t, ok)
	assert.Equal(t, Coord{Row: 0, Col: 2}, s)
	_, ok = Find(rows, 'X')
	assert.False(t, ok)

	_, _, err = ParseRunes("###\n##\n")
	assert.True(t, errors.Is(err, puzzle.ErrMalformedInput))

	_, _, err = ParseRunes("")
	assert.True(t, errors.Is(err, puzzle.ErrMalformedInput))
}
