package day08

import (
	"testing"

	"aoc2024/internal/days/daytest"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
)

func TestExamples(t *testing.T) {
	daytest.Examples(t, New())
}

func TestPair(t *testing.T) {
	in := "......\n.a....\n..a...\n......"
	assert.Equal(t, "2", daytest.Solve(t, New(), puzzle.Part1, in))
	// Harmonics along the diagonal (0,0) .. (3,3).
	assert.Equal(t, "4", daytest.Solve(t, New(), puzzle.Part2, in))
}

func TestLoneAntenna(t *testing.T) {
	assert.Equal(t, "0", daytest.Solve(t, New(), puzzle.Part2, "...\n.x.\n..."))
}
