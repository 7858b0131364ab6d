package interval_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/interval/pkg/interval"
)

// fixedSource replays a fixed sequence of samples.
type fixedSource struct {
	vals []float64
	n    int
}

func (s *fixedSource) Float64() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

func TestRandomFromFixedSource(t *testing.T) {
	src := &fixedSource{vals: []float64{0, 0.5, 0.25}}

	for _, i := range []interval.Interval[float64]{interval.New(20.0, 30.0), interval.New(30.0, 20.0)} {
		src.n = 0
		assert.Equal(t, 20.0, interval.RandomFrom(i, src), "sample 0 of %v", i)
		assert.Equal(t, 25.0, interval.RandomFrom(i, src), "sample 1 of %v", i)
		assert.Equal(t, 22.5, interval.RandomFrom(i, src), "sample 2 of %v", i)
	}
}

func TestRandomFromStaysInRange(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	i := interval.New(-3.0, 7.0)
	for n := 0; n < 1000; n++ {
		v := interval.RandomFrom(i, src)
		require.True(t, i.Contains(v), "%v outside %v", v, i)
	}
}

func TestRandomFromIsDeterministic(t *testing.T) {
	i := interval.New(0.0, 1e6)
	a := rand.New(rand.NewPCG(42, 7))
	b := rand.New(rand.NewPCG(42, 7))
	for n := 0; n < 10; n++ {
		require.Equal(t, interval.RandomFrom(i, a), interval.RandomFrom(i, b))
	}
}

func TestRandomEmptyInterval(t *testing.T) {
	i := interval.New(4.0, 4.0)
	assert.Equal(t, 4.0, interval.Random(i))
}

func TestRandomGlobal(t *testing.T) {
	i := interval.New[float32](1, -1)
	for n := 0; n < 100; n++ {
		v := interval.Random(i)
		require.True(t, i.Contains(v), "%v outside %v", v, i)
	}
}

func TestRandomNonFinitePanics(t *testing.T) {
	expectPrecondition(t, "RandomFrom", func() {
		interval.Random(interval.New(0, math.Inf(1)))
	})
}

func TestRandomOverflowingExtentPanics(t *testing.T) {
	i := interval.New(-math.MaxFloat64, math.MaxFloat64)
	for _, u := range []float64{0, 0.5, 0.999} {
		expectPrecondition(t, "RandomFrom", func() {
			interval.RandomFrom(i, &fixedSource{vals: []float64{u}})
		})
	}
}

func TestRandomFromWideFiniteExtent(t *testing.T) {
	i := interval.New(-math.MaxFloat64/2, math.MaxFloat64/2)
	src := &fixedSource{vals: []float64{0, 0.5}}
	assert.Equal(t, -math.MaxFloat64/2, interval.RandomFrom(i, src))
	assert.Equal(t, 0.0, interval.RandomFrom(i, src))
}
