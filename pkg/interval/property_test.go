package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chazu/interval/pkg/interval"
)

func boundGen() *rapid.Generator[float64] {
	return rapid.Float64Range(-1e6, 1e6)
}

func intervalGen() *rapid.Generator[interval.Interval[float64]] {
	return rapid.Custom(func(t *rapid.T) interval.Interval[float64] {
		return interval.New(boundGen().Draw(t, "a"), boundGen().Draw(t, "b"))
	})
}

// nonEmptyGen draws intervals whose extent is at least minExtent so that
// round trips stay within a fixed tolerance.
func nonEmptyGen(minExtent float64) *rapid.Generator[interval.Interval[float64]] {
	return rapid.Custom(func(t *rapid.T) interval.Interval[float64] {
		a := rapid.Float64Range(-1e3, 1e3).Draw(t, "a")
		d := rapid.Float64Range(minExtent, 1e3).Draw(t, "d")
		if rapid.Bool().Draw(t, "descending") {
			d = -d
		}
		return interval.New(a, a+d)
	})
}

func TestPropertyConstructionIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := boundGen().Draw(t, "a")
		b := boundGen().Draw(t, "b")
		i := interval.New(a, b)
		require.Equal(t, a, i.A())
		require.Equal(t, b, i.B())
	})
}

func TestPropertyReversalInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		require.Equal(t, i, i.Reversed().Reversed())
	})
}

func TestPropertyNormalization(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		n := i.Normalized()
		require.Equal(t, n, n.Normalized())
		require.True(t, n.IsAscending() || n.IsEmpty(), "normalized %v is descending", n)
		require.LessOrEqual(t, n.A(), n.B())
	})
}

func TestPropertyExtentSign(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		require.Equal(t, i.Extent(), -i.Reversed().Extent())
		require.GreaterOrEqual(t, i.Normalized().Extent(), 0.0)
	})
}

func TestPropertyContainsIgnoresDirection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		v := boundGen().Draw(t, "v")
		require.Equal(t, i.Contains(v), i.Reversed().Contains(v))
	})
}

func TestPropertyIntersectionSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		j := intervalGen().Draw(t, "j")
		ij, okIJ := i.Intersection(j)
		ji, okJI := j.Intersection(i)
		require.Equal(t, okIJ, okJI)
		if okIJ {
			require.Equal(t, ij, ji)
			require.True(t, i.ContainsInterval(ij), "%v does not contain %v", i, ij)
			require.True(t, j.ContainsInterval(ij), "%v does not contain %v", j, ij)
		}
	})
}

func TestPropertyUnion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := intervalGen().Draw(t, "i")
		j := intervalGen().Draw(t, "j")
		require.Equal(t, i.Union(j), j.Union(i))
		require.Equal(t, i.Normalized(), i.Union(i))
		u := i.Union(j)
		require.True(t, u.ContainsInterval(i))
		require.True(t, u.ContainsInterval(j))
	})
}

func TestPropertyRangeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := boundGen().Draw(t, "lo")
		hi := rapid.Float64Range(lo, 2e6).Draw(t, "hi")
		r := interval.MustRange(lo, hi)
		require.Equal(t, r, interval.FromRange(r).Range())
	})
}

func TestPropertyInterpolationRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := nonEmptyGen(0.01).Draw(t, "i")
		v := rapid.Float64Range(-10, 10).Draw(t, "v")
		got := interval.InterpolatedFrom(interval.InterpolatedTo(v, i), i)
		assert.InDelta(t, v, got, 1e-8)
	})
}

func TestPropertyRemapRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := nonEmptyGen(1).Draw(t, "from")
		to := nonEmptyGen(1).Draw(t, "to")
		v := rapid.Float64Range(-1e3, 1e3).Draw(t, "v")
		there := interval.InterpolatedFromTo(v, from, to)
		back := interval.InterpolatedFromTo(there, to, from)
		assert.InDelta(t, v, back, 1e-4)
	})
}
