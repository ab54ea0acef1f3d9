package day06

import (
	"testing"

	"aoc2024/internal/days/daytest"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples(t *testing.T) {
	daytest.Examples(t, New())
}

func TestWalkStraightOut(t *testing.T) {
	lab, err := parse("...\n...\n.^.")
	require.NoError(t, err)
	visited, loops := lab.walk(-1)
	assert.False(t, loops)
	assert.Len(t, visited, 3)
}

func TestWalkLoop(t *testing.T) {
	lab, err := parse(".#..\n...#\n#^..\n..#.")
	require.NoError(t, err)
	_, loops := lab.walk(-1)
	assert.True(t, loops)
}

func TestNoGuard(t *testing.T) {
	daytest.Fails(t, New(), puzzle.Part1, "...\n...", puzzle.ErrMalformedInput)
}
