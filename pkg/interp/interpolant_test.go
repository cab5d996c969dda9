package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

func TestCubicReproducesCubicPolynomial(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	xs := []float64{0, 0.5, 1.2, 2, 3, 3.5}

	ip, err := New("poly", Cubic, xs, sample(xs, f))
	require.NoError(t, err)

	for _, x := range []float64{0.1, 0.75, 1.6, 2.5, 3.25} {
		assert.InDelta(t, f(x), ip.Eval(x), 1e-10, "x=%g", x)
	}
}

func TestNaturalReproducesLine(t *testing.T) {
	f := func(x float64) float64 { return 3*x + 1 }
	xs := []float64{0, 0.1, 0.4, 0.45, 0.9, 1}

	ip, err := New("line", Natural, xs, sample(xs, f))
	require.NoError(t, err)

	for _, x := range []float64{0.05, 0.3, 0.6, 0.95} {
		assert.InDelta(t, f(x), ip.Eval(x), 1e-12)
	}
}

func TestExactAtKnots(t *testing.T) {
	xs := []float64{0, 0.1, 0.25, 0.5, 0.6, 0.8, 1}
	ys := sample(xs, func(x float64) float64 { return math.Sin(5 * x) })

	for _, kind := range []Kind{Cubic, Natural, Linear, Pchip, Akima} {
		t.Run(kind.String(), func(t *testing.T) {
			ip, err := New("sin", kind, xs, ys)
			require.NoError(t, err)
			for i, x := range xs {
				assert.InDelta(t, ys[i], ip.Eval(x), 1e-14)
			}
		})
	}
}

func TestSplineKnotsBitIdentical(t *testing.T) {
	xs := []float64{0, 0.2, 0.3, 0.7, 1}
	ys := []float64{4.2, 3.9, 3.85, 3.6, 3.4}

	ip, err := New("ocp", Cubic, xs, ys)
	require.NoError(t, err)
	for i, x := range xs {
		assert.Equal(t, ys[i], ip.Eval(x))
	}
}

func TestEvalDeterministic(t *testing.T) {
	xs := []float64{0, 0.2, 0.3, 0.7, 1}
	ys := []float64{4.2, 3.9, 3.85, 3.6, 3.4}

	ip, err := New("ocp", Cubic, xs, ys)
	require.NoError(t, err)

	first := ip.Eval(0.4321)
	for i := 0; i < 100; i++ {
		assert.Equal(t, math.Float64bits(first), math.Float64bits(ip.Eval(0.4321)))
	}
}

func TestSmallTables(t *testing.T) {
	ip, err := New("two", Cubic, []float64{0, 2}, []float64{1, 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, ip.Eval(1), 1e-15)

	ip, err = New("three", Cubic, []float64{0, 1, 3}, []float64{0, 1, 9})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ip.Eval(2), 1e-12)
	assert.InDelta(t, 0.25, ip.Eval(0.5), 1e-12)
}

func TestExtrapolationUsesEndSegments(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x*x - x }
	xs := []float64{0, 1, 2, 3, 4}

	ip, err := New("poly", Cubic, xs, sample(xs, f))
	require.NoError(t, err)

	assert.InDelta(t, f(-0.5), ip.Eval(-0.5), 1e-9)
	assert.InDelta(t, f(4.5), ip.Eval(4.5), 1e-9)
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		want   error
	}{
		{name: "length mismatch", xs: []float64{0, 1, 2}, ys: []float64{0, 1}, want: ErrShape},
		{name: "single point", xs: []float64{0}, ys: []float64{0}, want: ErrShape},
		{name: "repeated x", xs: []float64{0, 1, 1, 2}, ys: []float64{0, 1, 2, 3}, want: ErrNotIncreasing},
		{name: "decreasing x", xs: []float64{1, 0.5, 0}, ys: []float64{0, 1, 2}, want: ErrNotIncreasing},
		{name: "nan x", xs: []float64{0, math.NaN(), 1}, ys: []float64{0, 1, 2}, want: ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", Cubic, tt.xs, tt.ys)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}
	ip, err := New("copy", Linear, xs, ys)
	require.NoError(t, err)

	ys[1] = 100
	assert.InDelta(t, 1.0, ip.Eval(1), 1e-15)

	lo, hi := ip.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.Equal(t, "copy", ip.Name())
	assert.Equal(t, Linear, ip.Kind())
}

func TestParseKind(t *testing.T) {
	for kind, name := range kindNames {
		got, err := ParseKind(" " + name + " ")
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParseKind("quintic")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
