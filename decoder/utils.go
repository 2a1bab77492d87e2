package decoder

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// InvariantError is the panic value raised when the decoder reaches a bit
// combination it never produces on its own. It marks a bug, not bad input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "assert error: " + e.Msg
}

func assert(expr bool, msg string, args ...any) {
	if !expr {
		panic(&InvariantError{Msg: fmt.Sprintf(msg, args...)})
	}
}

func unreachable(msg string, args ...any) {
	assert(false, "unreachable: "+msg, args...)
}

// field extracts `width` bits of v starting at bit `shift`.
func field[T constraints.Unsigned](v T, shift, width uint) T {
	return (v >> shift) & (1<<width - 1)
}
