package interval

// Contains reports whether v lies within the closed span of i, regardless
// of the interval's direction.
func (i Interval[T]) Contains(v T) bool {
	return i.Min() <= v && v <= i.Max()
}

// Surrounds reports whether v lies strictly inside the span of i.
func (i Interval[T]) Surrounds(v T) bool {
	return i.Min() < v && v < i.Max()
}

// ContainsInterval reports whether the span of o lies fully within the
// span of i. Neither direction matters.
func (i Interval[T]) ContainsInterval(o Interval[T]) bool {
	return i.Min() <= o.Min() && o.Max() <= i.Max()
}

// Clamp limits v to the span of i.
func (i Interval[T]) Clamp(v T) T {
	lo, hi := i.Min(), i.Max()
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Intersects reports whether the spans of i and o share at least one
// point. Intervals that touch at a single bound intersect.
func (i Interval[T]) Intersects(o Interval[T]) bool {
	i1, i2 := i.Normalized(), o.Normalized()
	disjoint := i2.Max() < i1.Min() || i1.Max() < i2.Min()
	return !disjoint
}

// Intersection returns the ascending overlap of i and o. The boolean is
// false when the intervals do not intersect; that is an ordinary outcome,
// not an error. Intervals touching at one point yield an empty interval at
// that point.
func (i Interval[T]) Intersection(o Interval[T]) (Interval[T], bool) {
	if !i.Intersects(o) {
		return Interval[T]{}, false
	}
	i1, i2 := i.Normalized(), o.Normalized()
	return New(max(i1.Min(), i2.Min()), min(i1.Max(), i2.Max())), true
}

// Union returns the smallest ascending interval spanning both i and o,
// whether or not they overlap.
func (i Interval[T]) Union(o Interval[T]) Interval[T] {
	return New(min(i.Min(), o.Min()), max(i.Max(), o.Max()))
}
