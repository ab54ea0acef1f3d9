package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"aoc2024/internal/puzzle"
	"aoc2024/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTable(t *testing.T) {
	tbl := NewSimpleTable("", "Day", "Answer")
	assert.Equal(t, "", tbl.View(DefaultStyles()), "empty tables render nothing")

	tbl.AddRow("1", "11")
	tbl.AddRow("12", "1234567")
	lines := strings.Split(strings.TrimRight(tbl.View(NewStyles(LightTheme())), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(l), "rows align: %q", l)
	}
	assert.Contains(t, lines[0], "Day")
	assert.Contains(t, lines[3], "1234567")
}

func TestResults(t *testing.T) {
	out := Results(NewStyles(DarkTheme()), []puzzle.Result{
		{Job: puzzle.Job{Day: 1, Part: puzzle.Part1}, Title: "Historian Hysteria", Answer: puzzle.Int(11), Duration: 1500 * time.Microsecond},
		{Job: puzzle.Job{Day: 1, Part: puzzle.Part2, Label: "example 1"}, Title: "Historian Hysteria", Err: errors.New("boom")},
	})
	assert.Contains(t, out, "Historian Hysteria")
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "example 1")
	assert.Contains(t, out, "error: boom")
	assert.Contains(t, out, "1/2 solved")
}

func TestDays(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, reg.Register(&puzzle.Unit[string]{
		Number: 25,
		Name:   "Code Chronicle",
		Parse:  func(s string) (string, error) { return s, nil },
		Part1:  nil,
	}))
	out := Days(NewStyles(LightTheme()), reg)
	assert.Contains(t, out, "Code Chronicle")
	assert.Contains(t, out, "25")
}

func TestHistory(t *testing.T) {
	out := History(NewStyles(LightTheme()), []store.Entry{
		{Day: 3, Part: puzzle.Part2, Answer: "48", CreatedAt: time.Now()},
		{Day: 4, Part: puzzle.Part1, Err: "bad input", CreatedAt: time.Now()},
	})
	assert.Contains(t, out, "48")
	assert.Contains(t, out, "error: bad input")
	assert.Equal(t, "", History(NewStyles(LightTheme()), nil))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", FormatDuration(0))
	assert.Equal(t, "12µs", FormatDuration(12345*time.Nanosecond))
	assert.Equal(t, "2.5s", FormatDuration(2500*time.Millisecond))
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("AOC_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)
	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
	t.Setenv("AOC_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}
