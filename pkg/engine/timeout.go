package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTimeout is the limit for a single evaluation unless WithTimeout
// says otherwise.
const DefaultTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when an evaluation runs past its timeout.
	ErrTimeout = errors.New("evaluation timed out")
	// ErrSuperseded is returned when a newer evaluation started first.
	ErrSuperseded = errors.New("evaluation superseded by newer request")
)

// evalResult passes evaluation results through channels.
type evalResult struct {
	value  Value
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, but returns ErrTimeout if the
// evaluation exceeds timeout. It uses a generation counter to discard stale
// results from previous evaluations.
//
// On timeout, the goroutine may still be running; its buffered send lets
// it exit once it completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
	timeout time.Duration,
) (Value, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return Value{}, nil, ErrSuperseded
		}
		return res.value, res.errors, res.err

	case <-timer.C:
		return Value{}, nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
}
