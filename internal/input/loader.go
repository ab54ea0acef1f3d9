// Package input reads puzzle inputs from disk and downloads missing ones.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aoc2024/internal/puzzle"
)

// ErrMissing is returned when a day's input file does not exist.
var ErrMissing = errors.New("input file missing")

// Loader reads <Dir>/dayNN.txt files. It implements puzzle.InputSource.
type Loader struct {
	Dir string
}

var _ puzzle.InputSource = Loader{}

// Path returns the input file path for day.
func (l Loader) Path(day int) string {
	return filepath.Join(l.Dir, FileName(day))
}

// FileName is the base name of a day's input file.
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// DayFromFile parses a base name produced by FileName.
func DayFromFile(name string) (int, bool) {
	var day int
	if _, err := fmt.Sscanf(name, "day%02d.txt", &day); err != nil {
		return 0, false
	}
	if FileName(day) != name || day < 1 || day > 25 {
		return 0, false
	}
	return day, true
}

// Load reads the input for day.
func (l Loader) Load(day int) (string, error) {
	return ReadFile(l.Path(day))
}

// ReadFile reads an input file with CRLF normalised and trailing newlines
// trimmed.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissing, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return Normalize(string(data)), nil
}

// Normalize converts CRLF to LF and trims trailing newlines.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}

// File serves one explicit file for whatever day asks.
type File string

// Load reads the file regardless of day.
func (f File) Load(int) (string, error) {
	return ReadFile(string(f))
}
