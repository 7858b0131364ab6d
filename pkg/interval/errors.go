package interval

import (
	"errors"
	"fmt"
)

// ErrInvertedRange is returned when a Range would have its lower bound
// above its upper bound.
var ErrInvertedRange = errors.New("lower bound above upper bound")

// PreconditionError is the panic value raised when an interpolation or
// sampling function is called outside its contract: a non-finite value or
// bound, or an empty source interval. These are caller bugs, not runtime
// conditions, so they are never returned as errors.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("interval.%s: %s", e.Op, e.Reason)
}

func violated(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}
