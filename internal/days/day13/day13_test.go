package day13

import (
	"testing"

	"aoc2024/internal/days/daytest"
	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/assert"
)

func TestExamples(t *testing.T) {
	daytest.Examples(t, New())
}

func TestTokens(t *testing.T) {
	m := Machine{A: vec{X: 94, Y: 34}, B: vec{X: 22, Y: 67}, Prize: vec{X: 8400, Y: 5400}}
	assert.Equal(t, 280, m.tokens(PressLimit))
	assert.Equal(t, 0, m.tokens(50), "80 presses of A exceed the cap")

	parallel := Machine{A: vec{X: 1, Y: 1}, B: vec{X: 2, Y: 2}, Prize: vec{X: 4, Y: 4}}
	assert.Equal(t, 0, parallel.tokens(PressLimit))
}

func TestMalformed(t *testing.T) {
	daytest.Fails(t, New(), puzzle.Part1, "Button A: X+1, Y+2\nPrize: X=3, Y=4", puzzle.ErrMalformedInput)
}
