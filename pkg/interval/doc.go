// Package interval defines a floating-point interval value type with
// unordered bounds. An Interval is a directed span (a, b) on the number
// line: a may be less than, equal to, or greater than b. Geometric queries
// treat the span without regard to direction, while Extent and the
// interpolation helpers respect it.
//
// Every function in this package is pure and safe for concurrent use.
// Bounds that are NaN produce unspecified results but never panic, except
// where an operation documents a finiteness precondition.
package interval
