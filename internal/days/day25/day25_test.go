package day25

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

func TestHeights(t *testing.T) {
	s, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 5, 3, 4, 3}, {1, 2, 0, 5, 3}}, s.Locks)
	assert.Equal(t, [][]int{{5, 0, 2, 1, 3}, {4, 3, 4, 0, 2}, {3, 0, 2, 0, 1}}, s.Keys)
	assert.Equal(t, 5, s.Space)
}

func TestSinglePart(t *testing.T) {
	assert.False(t, New().Has(puzzle.Part2))
	daytest.Fails(t, New(), puzzle.Part2, sample, puzzle.ErrNoPart)
}

func TestMalformed(t *testing.T) {
	daytest.Fails(t, New(), puzzle.Part1, "##\n..\n##", puzzle.ErrMalformedInput)
	daytest.Fails(t, New(), puzzle.Part1, "##\n#.\n..\n\n###\n...\n...", puzzle.ErrMalformedInput)
}
