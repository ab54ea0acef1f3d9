package day04

import (
	"testing"

	"aoc2024/internal/days/daytest"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
)

func TestExamples(t *testing.T) {
	daytest.Examples(t, New())
}

func TestSmallGrids(t *testing.T) {
	assert.Equal(t, "2", daytest.Solve(t, New(), puzzle.Part1, "XMAS\n....\n....\nSAMX"))
	assert.Equal(t, "1", daytest.Solve(t, New(), puzzle.Part2, "M.S\n.A.\nM.S"))
	assert.Equal(t, "0", daytest.Solve(t, New(), puzzle.Part2, "M.M\n.A.\nS.M"))
}

func TestRagged(t *testing.T) {
	daytest.Fails(t, New(), puzzle.Part1, "XMAS\nXM", puzzle.ErrMalformedInput)
}
