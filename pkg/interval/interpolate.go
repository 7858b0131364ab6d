package interval

import "golang.org/x/exp/constraints"

// The interpolation helpers never clamp: inputs outside [0, 1] or outside
// the source interval extrapolate along the same line. Each one computes
// its result straight from the bounds rather than going through a unit
// interval step.
//
// All three panic with a *PreconditionError when v or any bound is not
// finite, or when the interval they divide by is empty.

// InterpolatedTo maps v from the unit interval into i:
//
//	v*(i.B()-i.A()) + i.A()
func InterpolatedTo[T constraints.Float](v T, i Interval[T]) T {
	if !isFinite(v) {
		violated("InterpolatedTo", "value %v is not finite", v)
	}
	if !i.IsFinite() {
		violated("InterpolatedTo", "interval %v is not finite", i)
	}
	return v*(i.b-i.a) + i.a
}

// InterpolatedFrom maps v from i back into the unit interval. It is the
// inverse of InterpolatedTo, written as (a - v) / (a - b).
func InterpolatedFrom[T constraints.Float](v T, i Interval[T]) T {
	if !isFinite(v) {
		violated("InterpolatedFrom", "value %v is not finite", v)
	}
	if !i.IsFinite() {
		violated("InterpolatedFrom", "interval %v is not finite", i)
	}
	if i.IsEmpty() {
		violated("InterpolatedFrom", "interval %v is empty", i)
	}
	return (i.a - v) / (i.a - i.b)
}

// InterpolatedFromTo maps v from the coordinate space of from into that
// of to:
//
//	to.A() + (to.B()-to.A())*(v-from.A())/(from.B()-from.A())
func InterpolatedFromTo[T constraints.Float](v T, from, to Interval[T]) T {
	if !isFinite(v) {
		violated("InterpolatedFromTo", "value %v is not finite", v)
	}
	if !from.IsFinite() {
		violated("InterpolatedFromTo", "source interval %v is not finite", from)
	}
	if !to.IsFinite() {
		violated("InterpolatedFromTo", "target interval %v is not finite", to)
	}
	if from.IsEmpty() {
		violated("InterpolatedFromTo", "source interval %v is empty", from)
	}
	return to.a + (to.b-to.a)*(v-from.a)/(from.b-from.a)
}
