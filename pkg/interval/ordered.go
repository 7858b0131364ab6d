package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is an ordered closed range: Lower() <= Upper() holds whenever
// neither bound is NaN. NewRange rejects NaN; Interval.Range passes it
// through unchecked.
// A range whose bounds are equal is a valid single-point range and is
// never considered empty.
type Range[T constraints.Float] struct {
	lower T
	upper T
}

// NewRange returns the range [lower, upper]. It fails with
// ErrInvertedRange when lower > upper or either bound is NaN.
func NewRange[T constraints.Float](lower, upper T) (Range[T], error) {
	if !(lower <= upper) {
		return Range[T]{}, fmt.Errorf("range %v...%v: %w", lower, upper, ErrInvertedRange)
	}
	return Range[T]{lower: lower, upper: upper}, nil
}

// MustRange is like NewRange but panics on an inverted range.
func MustRange[T constraints.Float](lower, upper T) Range[T] {
	r, err := NewRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// Lower returns the lower bound.
func (r Range[T]) Lower() T { return r.lower }

// Upper returns the upper bound.
func (r Range[T]) Upper() T { return r.upper }

// Contains reports whether lower <= v <= upper.
func (r Range[T]) Contains(v T) bool {
	return r.lower <= v && v <= r.upper
}

// Clamp limits v to [lower, upper].
func (r Range[T]) Clamp(v T) T {
	if v < r.lower {
		return r.lower
	}
	if v > r.upper {
		return r.upper
	}
	return v
}

// String formats the range as "<lower>...<upper>".
func (r Range[T]) String() string {
	return fmt.Sprintf("%v...%v", r.lower, r.upper)
}

// FromRange returns the interval (r.Lower(), r.Upper()). The result is
// ascending or empty.
func FromRange[T constraints.Float](r Range[T]) Interval[T] {
	return Interval[T]{a: r.lower, b: r.upper}
}

// Range returns the ordered range covering i. Descending intervals are
// normalized first, so the conversion never fails. A NaN bound yields an
// unordered range.
func (i Interval[T]) Range() Range[T] {
	n := i.Normalized()
	return Range[T]{lower: n.a, upper: n.b}
}
