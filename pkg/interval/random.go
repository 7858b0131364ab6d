package interval

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Source produces uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Random returns a uniformly distributed value within the span of i using
// the global math/rand/v2 generator.
func Random[T constraints.Float](i Interval[T]) T {
	return RandomFrom(i, globalSource{})
}

// RandomFrom returns a uniformly distributed value within the span of i
// drawn from src. The interval is normalized to a Range first, so its
// direction does not matter. It panics with a *PreconditionError when i
// is not finite or its extent overflows.
func RandomFrom[T constraints.Float](i Interval[T], src Source) T {
	if !i.IsFinite() {
		violated("RandomFrom", "interval %v is not finite", i)
	}
	r := i.Range()
	if !isFinite(r.upper - r.lower) {
		violated("RandomFrom", "interval %v has no finite extent", i)
	}
	return r.Clamp(r.lower + T(src.Float64())*(r.upper-r.lower))
}
