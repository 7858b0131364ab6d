package interval

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Interval is an immutable pair of bounds. The bounds are stored exactly as
// given to New; no ordering is imposed. Two intervals are equal (==) iff
// both their A and B bounds are equal, so New(0, 100) != New(100, 0).
type Interval[T constraints.Float] struct {
	a T
	b T
}

// New returns the interval from a to b.
func New[T constraints.Float](a, b T) Interval[T] {
	return Interval[T]{a: a, b: b}
}

// Unit returns the interval (0, 1).
func Unit[T constraints.Float]() Interval[T] {
	return Interval[T]{a: 0, b: 1}
}

// A returns the first bound.
func (i Interval[T]) A() T { return i.a }

// B returns the second bound.
func (i Interval[T]) B() T { return i.b }

// IsAscending reports whether a < b.
func (i Interval[T]) IsAscending() bool { return i.a < i.b }

// IsDescending reports whether a > b.
func (i Interval[T]) IsDescending() bool { return i.a > i.b }

// IsEmpty reports whether a == b. A single-point interval subtends no
// extent and is therefore empty, unlike a degenerate Range.
func (i Interval[T]) IsEmpty() bool { return i.a == i.b }

// IsFinite reports whether neither bound is infinite or NaN.
func (i Interval[T]) IsFinite() bool {
	return isFinite(i.a) && isFinite(i.b)
}

// Reversed returns (b, a).
func (i Interval[T]) Reversed() Interval[T] {
	return Interval[T]{a: i.b, b: i.a}
}

// Normalized returns i when it is ascending or empty, and i.Reversed()
// otherwise, so the result always has a <= b.
func (i Interval[T]) Normalized() Interval[T] {
	if i.IsAscending() || i.IsEmpty() {
		return i
	}
	return i.Reversed()
}

// Min returns the lesser bound.
func (i Interval[T]) Min() T { return min(i.a, i.b) }

// Max returns the greater bound.
func (i Interval[T]) Max() T { return max(i.a, i.b) }

// Extent returns b - a. It is positive when ascending, negative when
// descending and zero when empty.
func (i Interval[T]) Extent() T { return i.b - i.a }

// String formats the interval as "<a>..<b>".
func (i Interval[T]) String() string {
	return fmt.Sprintf("%v..%v", i.a, i.b)
}

// GoString formats the interval as "Interval(<a>..<b>)".
func (i Interval[T]) GoString() string {
	return "Interval(" + i.String() + ")"
}

func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
