package kernel

import (
	"fmt"
	"strings"

	"github.com/chazu/interval/pkg/interval"
)

// Axis selects one coordinate of a bounding box.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts "x", "y" or "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x/y/z", s)
}

// Span projects the bounding box of s onto axis. The result is ascending,
// or empty for a solid that is flat along axis.
func Span(s Solid, axis Axis) interval.Interval[float64] {
	min, max := s.BoundingBox()
	return interval.New(min[axis], max[axis]).Normalized()
}

// Overlap returns the shared extent of a and b along axis. The boolean is
// false when their spans are disjoint.
func Overlap(a, b Solid, axis Axis) (interval.Interval[float64], bool) {
	return Span(a, axis).Intersection(Span(b, axis))
}

// Footprint returns the union of the spans of solids along axis, and false
// when solids is empty.
func Footprint(axis Axis, solids ...Solid) (interval.Interval[float64], bool) {
	if len(solids) == 0 {
		return interval.Interval[float64]{}, false
	}
	fp := Span(solids[0], axis)
	for _, s := range solids[1:] {
		fp = fp.Union(Span(s, axis))
	}
	return fp, true
}
