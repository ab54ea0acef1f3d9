package day01

import (
	"testing"

	"aoc2024/internal/days/daytest"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
)

func TestExamples(t *testing.T) {
	daytest.Examples(t, New())
}

func TestSingleRow(t *testing.T) {
	assert.Equal(t, "5", daytest.Solve(t, New(), puzzle.Part1, "2 7"))
	assert.Equal(t, "0", daytest.Solve(t, New(), puzzle.Part2, "2 7"))
}

func TestMalformed(t *testing.T) {
	daytest.Fails(t, New(), puzzle.Part1, "1 2 3", puzzle.ErrMalformedInput)
	daytest.Fails(t, New(), puzzle.Part1, "1 x", puzzle.ErrMalformedInput)
}
