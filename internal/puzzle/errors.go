package puzzle

import "errors"

// Failure classes shared by every unit. Units wrap these with context so the
// CLI can report what went wrong and where.
var (
	// ErrMalformedInput means a parse precondition was violated.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnreachable means a search found no finite-cost path to its goal.
	ErrUnreachable = errors.New("goal unreachable")
	// ErrOverflow means an exhaustive enumeration overflowed its integer type.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrNoSolution means a search ran out of candidates.
	ErrNoSolution = errors.New("no solution")

	ErrUnknownDay = errors.New("unknown day")
	ErrNoPart     = errors.New("part not implemented")
)
