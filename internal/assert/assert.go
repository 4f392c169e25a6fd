package assert

import (
	"errors"
	"fmt"
)

var ErrEmpty = errors.New("container is empty")

// ViolationError is the panic value of an operation that requires a bound
// value but was invoked on an empty container.
type ViolationError struct {
	Op string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("erasure: %s: %s", e.Op, ErrEmpty)
}

func (e *ViolationError) Unwrap() error {
	return ErrEmpty
}

// Bound panics with a ViolationError for op if bound is false.
func Bound(bound bool, op string) {
	if !bound {
		panic(&ViolationError{Op: op})
	}
}

// Aligned panics if value is not a multiple of align.
func Aligned(value, align uintptr) {
	if align == 0 || value%align != 0 {
		panic(fmt.Sprintf("expected offset %d to be aligned to %d", value, align))
	}
}
