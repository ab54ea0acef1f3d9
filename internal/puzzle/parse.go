package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping trailing blank lines and carriage
// returns.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Sections splits input on blank lines.
func Sections(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Atoi parses a decimal integer, reporting failures as ErrMalformedInput.
func Atoi(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, s)
	}
	return v, nil
}

// Ints parses every field of s split by sep. An empty sep splits on
// whitespace.
func Ints(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Malformed builds an ErrMalformedInput for a 1-based line number.
func Malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, line, fmt.Sprintf(format, args...))
}
