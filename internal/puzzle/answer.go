package puzzle

import (
	"fmt"
	"strconv"
)

// Answer is the printable result of one solved part.
type Answer interface {
	fmt.Stringer
}

type intAnswer int

func (a intAnswer) String() string { return strconv.Itoa(int(a)) }

type uintAnswer uint64

func (a uintAnswer) String() string { return strconv.FormatUint(uint64(a), 10) }

type textAnswer string

func (a textAnswer) String() string { return string(a) }

// Int wraps a signed integer answer.
func Int(v int) Answer { return intAnswer(v) }

// Uint wraps an unsigned 64-bit answer.
func Uint(v uint64) Answer { return uintAnswer(v) }

// Text wraps a string answer such as a comma separated list.
func Text(v string) Answer { return textAnswer(v) }
