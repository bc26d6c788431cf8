package bspline

import (
	"math"
	"slices"
)

// BSplineFromFitPoints constructs a B-spline of the given degree that
// passes through every fit point: the points are assigned chord-length
// parameter values, interior knots are placed at the interior parameter
// values, and the control points fall out of the resulting linear
// interpolation system.
//
// The system needs at least degree+1 fit points, not all coincident.
// Repeated neighboring fit points can make the system singular, which
// is reported as a *DegeneracyError.
func BSplineFromFitPoints(fitPoints []Vec3, degree int) (*BSpline, error) {
	if degree < 1 {
		return nil, errConfigf("degree %d is below 1", degree)
	}
	n := len(fitPoints)
	if n < degree+1 {
		return nil, errConfigf("got %d fit points, want at least %d for degree %d",
			n, degree+1, degree)
	}

	// Chord-length parametrization.
	tbar := make([]float64, n)
	for i := 1; i < n; i++ {
		tbar[i] = tbar[i-1] + fitPoints[i].Distance(fitPoints[i-1])
	}
	total := tbar[n-1]
	if total <= 0 {
		return nil, errConfigf("fit points are all coincident")
	}
	for i := range tbar {
		tbar[i] /= total
	}
	tbar[n-1] = 1

	// Natural knot placement: the interior knots are the interior
	// parameter values themselves, offset by half the order.
	order := degree + 1
	skip := order / 2
	knots := make(KnotVector, 0, n+order)
	for i := 0; i < order; i++ {
		knots = append(knots, 0)
	}
	for j := 0; j < n-order; j++ {
		knots = append(knots, tbar[skip+j])
	}
	for i := 0; i < order; i++ {
		knots = append(knots, 1)
	}

	// Each row holds the nonzero basis window at one parameter value.
	basis := NewBasis(knots, order, n)
	matrix := make([][]float64, n)
	for i, t := range tbar {
		matrix[i] = make([]float64, n)
		span := basis.Span(t)
		copy(matrix[i][span-degree:], basis.basisFuncs(span, t))
	}

	controlPoints, err := solveLinear(matrix, slices.Clone(fitPoints))
	if err != nil {
		return nil, err
	}
	return newBSpline(controlPoints, nil, degree, knots)
}

// solveLinear solves A·x = b for the vector-valued right-hand side b by
// Gaussian elimination with partial pivoting. A and b are consumed.
func solveLinear(a [][]float64, b []Vec3) ([]Vec3, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, &DegeneracyError{Msg: "singular interpolation system"}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] = b[r].Sub(b[col].Mul(f))
		}
	}
	x := make([]Vec3, n)
	for r := n - 1; r >= 0; r-- {
		v := b[r]
		for c := r + 1; c < n; c++ {
			v = v.Sub(x[c].Mul(a[r][c]))
		}
		x[r] = v.Div(a[r][r])
	}
	return x, nil
}
