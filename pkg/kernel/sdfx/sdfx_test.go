package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/interval/pkg/interval"
	"github.com/chazu/interval/pkg/kernel"
)

const tol = 0.01

func approxSpan(t *testing.T, what string, got, want interval.Interval[float64]) {
	t.Helper()
	if math.Abs(got.A()-want.A()) > tol || math.Abs(got.B()-want.B()) > tol {
		t.Errorf("%s = %v, want ~%v", what, got, want)
	}
}

func TestBoxSpans(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)

	approxSpan(t, "x span", kernel.Span(box, kernel.AxisX), interval.New(0.0, 100.0))
	approxSpan(t, "y span", kernel.Span(box, kernel.AxisY), interval.New(0.0, 50.0))
	approxSpan(t, "z span", kernel.Span(box, kernel.AxisZ), interval.New(0.0, 25.0))
}

func TestCylinderSpans(t *testing.T) {
	k := New()
	cyl := k.Cylinder(50, 10)

	approxSpan(t, "x span", kernel.Span(cyl, kernel.AxisX), interval.New(-10.0, 10.0))
	approxSpan(t, "z span", kernel.Span(cyl, kernel.AxisZ), interval.New(-25.0, 25.0))
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Translate(k.Box(10, 10, 10), 100, 200, 300)

	approxSpan(t, "x span", kernel.Span(box, kernel.AxisX), interval.New(100.0, 110.0))
	approxSpan(t, "y span", kernel.Span(box, kernel.AxisY), interval.New(200.0, 210.0))
	approxSpan(t, "z span", kernel.Span(box, kernel.AxisZ), interval.New(300.0, 310.0))
}

func TestUnionCoversBoth(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)

	span := kernel.Span(u, kernel.AxisX)
	for _, part := range []kernel.Solid{box1, box2} {
		inner := kernel.Span(part, kernel.AxisX)
		if !span.ContainsInterval(interval.New(inner.Min()+tol, inner.Max()-tol)) {
			t.Errorf("union span %v does not cover %v", span, inner)
		}
	}
}

func TestOverlappingBoxes(t *testing.T) {
	k := New()
	a := k.Box(100, 100, 100)
	b := k.Translate(k.Box(100, 100, 100), 50, 0, 0)

	got, ok := kernel.Overlap(a, b, kernel.AxisX)
	if !ok {
		t.Fatal("expected overlap along x")
	}
	approxSpan(t, "x overlap", got, interval.New(50.0, 100.0))

	far := k.Translate(k.Box(10, 10, 10), 500, 0, 0)
	if _, ok := kernel.Overlap(a, far, kernel.AxisX); ok {
		t.Error("expected no overlap with distant box")
	}
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// A long box along X rotated 90 degrees around Z should extend along Y instead.
	rotated := k.Rotate(box, 0, 0, 90)

	const rtol = 1.0
	if ext := kernel.Span(rotated, kernel.AxisX).Extent(); math.Abs(ext-10) > rtol {
		t.Errorf("rotated X extent = %f, expected ~10", ext)
	}
	if ext := kernel.Span(rotated, kernel.AxisY).Extent(); math.Abs(ext-100) > rtol {
		t.Errorf("rotated Y extent = %f, expected ~100", ext)
	}
}
