package interp

import (
	"fmt"
	"sort"

	"github.com/edp1096/toy-cell/pkg/matrix"
)

// spline is a piecewise cubic stored per segment as
// y = ys[i] + b[i]*t + c[i]*t^2 + d[i]*t^3 with t = x - xs[i].
type spline struct {
	xs, ys  []float64
	b, c, d []float64
}

// fitSpline computes the second derivatives at the knots by solving the
// spline continuity system, then converts them to segment coefficients.
// notAKnot selects third-derivative continuity at xs[1] and xs[n-2];
// otherwise the natural end conditions M[0] = M[n-1] = 0 apply.
func fitSpline(xs, ys []float64, notAKnot bool) (*spline, error) {
	n := len(xs)
	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		slope[i] = (ys[i+1] - ys[i]) / h[i]
	}

	var m2 []float64
	switch {
	case n == 2:
		m2 = make([]float64, 2)
	case n == 3 && notAKnot:
		// A single parabola through the three points.
		curv := 2 * (slope[1] - slope[0]) / (xs[2] - xs[0])
		m2 = []float64{curv, curv, curv}
	default:
		var err error
		m2, err = solveSecondDerivatives(h, slope, notAKnot)
		if err != nil {
			return nil, err
		}
	}

	s := &spline{
		xs: xs,
		ys: ys,
		b:  make([]float64, n-1),
		c:  make([]float64, n-1),
		d:  make([]float64, n-1),
	}
	for i := 0; i < n-1; i++ {
		s.b[i] = slope[i] - h[i]*(2*m2[i]+m2[i+1])/6
		s.c[i] = m2[i] / 2
		s.d[i] = (m2[i+1] - m2[i]) / (6 * h[i])
	}
	return s, nil
}

func solveSecondDerivatives(h, slope []float64, notAKnot bool) ([]float64, error) {
	n := len(h) + 1

	mat, err := matrix.NewMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("spline system: %w", err)
	}
	defer mat.Destroy()

	if err := stampSpline(mat, h, slope, notAKnot); err != nil {
		return nil, fmt.Errorf("spline system: %w", err)
	}
	if err := mat.Solve(); err != nil {
		return nil, fmt.Errorf("spline system: %w", err)
	}

	solution := mat.Solution()
	m2 := make([]float64, n)
	copy(m2, solution[1:n+1])
	return m2, nil
}

// stampSpline writes the n equations for the knot second derivatives.
// Row k (1-based) belongs to knot k-1.
func stampSpline(st matrix.Stamper, h, slope []float64, notAKnot bool) error {
	n := len(h) + 1
	var err error
	add := func(i, j int, v float64) {
		if err == nil {
			err = st.AddElement(i, j, v)
		}
	}
	rhs := func(i int, v float64) {
		if err == nil {
			err = st.AddRHS(i, v)
		}
	}

	// Interior continuity of the first derivative.
	for i := 1; i < n-1; i++ {
		row := i + 1
		add(row, row-1, h[i-1])
		add(row, row, 2*(h[i-1]+h[i]))
		add(row, row+1, h[i])
		rhs(row, 6*(slope[i]-slope[i-1]))
	}

	if notAKnot {
		add(1, 1, h[1])
		add(1, 2, -(h[0] + h[1]))
		add(1, 3, h[0])

		add(n, n-2, h[n-2])
		add(n, n-1, -(h[n-3] + h[n-2]))
		add(n, n, h[n-3])
	} else {
		add(1, 1, 1)
		add(n, n, 1)
	}

	return err
}

// Predict evaluates the spline. Outside the knots the end segments are extrapolated.
func (s *spline) Predict(x float64) float64 {
	n := len(s.xs)
	if x == s.xs[n-1] {
		return s.ys[n-1]
	}

	i := sort.SearchFloat64s(s.xs, x)
	// SearchFloat64s returns the first index with xs[i] >= x.
	if i < n && s.xs[i] == x {
		return s.ys[i]
	}
	i--
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	t := x - s.xs[i]
	return s.ys[i] + t*(s.b[i]+t*(s.c[i]+t*s.d[i]))
}
