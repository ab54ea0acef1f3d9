// Package daytest holds assertions shared by the day package tests.
package daytest

import (
	"context"
	"testing"

	"aoc2024/internal/puzzle"

	"github.com/stretchr/testify/require"
)

// Solve runs one part of s and returns its printed answer.
func Solve(t *testing.T, s puzzle.Solver, p puzzle.Part, input string) string {
	t.Helper()
	ans, err := s.Solve(context.Background(), p, input)
	require.NoError(t, err)
	return ans.String()
}

// Examples checks every sample the unit ships with.
func Examples(t *testing.T, s puzzle.Solver) {
	t.Helper()
	ep, ok := s.(puzzle.ExampleProvider)
	require.True(t, ok, "day %d has no examples", s.Day())
	require.NotEmpty(t, ep.Examples())
	for i, ex := range ep.Examples() {
		got := Solve(t, s, ex.Part, ex.Input)
		require.Equal(t, ex.Want, got, "example %d (%s)", i+1, ex.Part)
	}
}

// Fails asserts that solving p returns an error matching target.
func Fails(t *testing.T, s puzzle.Solver, p puzzle.Part, input string, target error) {
	t.Helper()
	_, err := s.Solve(context.Background(), p, input)
	require.ErrorIs(t, err, target)
}
