package bspline

import (
	"math"
	"slices"
)

// weightEps is the threshold below which a rational denominator is
// considered numerically zero.
const weightEps = 1e-12

// BSpline is a B-spline or, when weights are present, a rational
// B-spline (NURBS) curve in 3D space.
//
// A BSpline is immutable after construction: evaluation never mutates
// the receiver, and refinement operations such as [BSpline.InsertKnot]
// return a new curve. Any number of goroutines may therefore evaluate
// the same curve concurrently without coordination.
type BSpline struct {
	controlPoints []Vec3
	weights       []float64 // nil for non-rational curves
	degree        int
	knots         KnotVector
	basis         Basis
}

// NewBSpline returns a clamped B-spline of the given degree over the
// control points, with an open-uniform knot vector. The curve
// interpolates its first and last control points.
func NewBSpline(controlPoints []Vec3, degree int) (*BSpline, error) {
	return newBSpline(controlPoints, nil, degree, nil)
}

// NewBSplineKnots returns a B-spline of the given degree over the
// control points with an explicit knot vector, which must hold
// len(controlPoints)+degree+1 non-decreasing values. The knots are
// normalized to [0, 1] on construction.
func NewBSplineKnots(controlPoints []Vec3, degree int, knots []float64) (*BSpline, error) {
	if knots == nil {
		return nil, errConfigf("nil knot vector; use NewBSpline for an open-uniform curve")
	}
	return newBSpline(controlPoints, nil, degree, knots)
}

// NewRationalBSpline returns a rational B-spline (NURBS) curve carrying
// one weight per control point. A nil knots slice selects an
// open-uniform knot vector.
func NewRationalBSpline(controlPoints []Vec3, weights []float64, degree int, knots []float64) (*BSpline, error) {
	if weights == nil {
		return nil, errConfigf("nil weights; use NewBSpline for a non-rational curve")
	}
	return newBSpline(controlPoints, weights, degree, knots)
}

func newBSpline(controlPoints []Vec3, weights []float64, degree int, knots []float64) (*BSpline, error) {
	if degree < 1 {
		return nil, errConfigf("degree %d is below 1", degree)
	}
	count := len(controlPoints)
	if count < degree+1 {
		return nil, errConfigf("got %d control points, want at least %d for degree %d",
			count, degree+1, degree)
	}
	if weights != nil && len(weights) != count {
		return nil, errConfigf("got %d weights for %d control points", len(weights), count)
	}
	var kv KnotVector
	if knots == nil {
		kv = OpenUniformKnots(count, degree+1)
	} else {
		if err := validateKnots(knots, degree, count); err != nil {
			return nil, err
		}
		var err error
		kv, err = NormalizeKnots(knots)
		if err != nil {
			return nil, err
		}
	}
	s := &BSpline{
		controlPoints: slices.Clone(controlPoints),
		weights:       slices.Clone(weights),
		degree:        degree,
		knots:         kv,
	}
	s.basis = NewBasis(s.knots, degree+1, count)
	return s, nil
}

// fromHomogeneous rebuilds a curve from refined homogeneous control
// points. The inputs come from boehmStep and are already consistent, so
// no validation happens here.
func fromHomogeneous(points []hvec, knots KnotVector, degree int, rational bool) *BSpline {
	cps := make([]Vec3, len(points))
	var weights []float64
	if rational {
		weights = make([]float64, len(points))
	}
	for i, h := range points {
		cps[i] = h.project()
		if rational {
			weights[i] = h.w
		}
	}
	s := &BSpline{
		controlPoints: cps,
		weights:       weights,
		degree:        degree,
		knots:         knots,
	}
	s.basis = NewBasis(s.knots, degree+1, len(cps))
	return s
}

// Degree returns the polynomial degree of the curve.
func (s *BSpline) Degree() int { return s.degree }

// Order returns degree+1.
func (s *BSpline) Order() int { return s.degree + 1 }

// Count returns the number of control points.
func (s *BSpline) Count() int { return len(s.controlPoints) }

// IsRational reports whether the curve carries control-point weights.
func (s *BSpline) IsRational() bool { return s.weights != nil }

// IsClamped reports whether the knot vector is clamped (open), i.e. the
// curve interpolates its first and last control points.
func (s *BSpline) IsClamped() bool { return s.knots.IsClamped(s.degree) }

// ControlPoints returns a copy of the control points.
func (s *BSpline) ControlPoints() []Vec3 { return slices.Clone(s.controlPoints) }

// Weights returns a copy of the control-point weights, or nil for a
// non-rational curve.
func (s *BSpline) Weights() []float64 { return slices.Clone(s.weights) }

// Knots returns a copy of the knot vector.
func (s *BSpline) Knots() KnotVector { return s.knots.Clone() }

// Domain returns the valid parameter range [knots[degree], knots[count]].
// For a clamped curve this is [0, 1].
func (s *BSpline) Domain() (float64, float64) {
	return s.basis.Domain()
}

// Point evaluates the curve at parameter t. Rational curves are
// evaluated in homogeneous form and divided by the weight sum.
func (s *BSpline) Point(t float64) (Vec3, error) {
	if err := s.basis.checkDomain(t); err != nil {
		return Vec3{}, err
	}
	span := s.basis.Span(t)
	funcs := s.basis.basisFuncs(span, t)
	if s.weights == nil {
		var acc Vec3
		for i, n := range funcs {
			acc = acc.Add(s.controlPoints[span-s.degree+i].Mul(n))
		}
		return acc, nil
	}
	var acc Vec3
	var den float64
	for i, n := range funcs {
		j := span - s.degree + i
		nw := n * s.weights[j]
		acc = acc.Add(s.controlPoints[j].Mul(nw))
		den += nw
	}
	if math.Abs(den) < weightEps {
		return Vec3{}, &DegeneracyError{Msg: "rational denominator is numerically zero"}
	}
	return acc.Div(den), nil
}

// Derivative evaluates the curve at parameter t and returns the point
// followed by the 1st through n-th derivatives. Derivative orders above
// the degree vanish and come back as zero vectors.
//
// For rational curves the weight denominator has derivatives of its own;
// they are folded in with the quotient rule, applied recursively over
// increasing orders.
func (s *BSpline) Derivative(t float64, n int) ([]Vec3, error) {
	if n < 0 {
		return nil, errConfigf("derivative order %d is negative", n)
	}
	if err := s.basis.checkDomain(t); err != nil {
		return nil, err
	}
	span := s.basis.Span(t)
	nd := min(n, s.degree)
	ders := s.basis.derivBasisFuncs(span, t, nd)

	if s.weights == nil {
		out := make([]Vec3, n+1)
		for k := 0; k <= nd; k++ {
			for i, d := range ders[k] {
				out[k] = out[k].Add(s.controlPoints[span-s.degree+i].Mul(d))
			}
		}
		return out, nil
	}

	// Derivatives of the homogeneous curve A(t) and the denominator w(t).
	hom := make([]Vec3, n+1)
	den := make([]float64, n+1)
	for k := 0; k <= nd; k++ {
		for i, d := range ders[k] {
			j := span - s.degree + i
			dw := d * s.weights[j]
			hom[k] = hom[k].Add(s.controlPoints[j].Mul(dw))
			den[k] += dw
		}
	}
	if math.Abs(den[0]) < weightEps {
		return nil, &DegeneracyError{Msg: "rational denominator is numerically zero"}
	}

	// C^(k) = (A^(k) - Σ binom(k,i)·w^(i)·C^(k-i)) / w, i = 1..k.
	binom := binomials(n)
	out := make([]Vec3, n+1)
	for k := 0; k <= n; k++ {
		v := hom[k]
		for i := 1; i <= k; i++ {
			v = v.Sub(out[k-i].Mul(binom[k][i] * den[i]))
		}
		out[k] = v.Div(den[0])
	}
	return out, nil
}

// Transform returns a new curve with every control point transformed by
// aff. Weights are transform-invariant and the knot vector is unchanged.
func (s *BSpline) Transform(aff Affine) *BSpline {
	cps := make([]Vec3, len(s.controlPoints))
	for i, p := range s.controlPoints {
		cps[i] = p.Transform(aff)
	}
	out := &BSpline{
		controlPoints: cps,
		weights:       slices.Clone(s.weights),
		degree:        s.degree,
		knots:         s.knots, // immutable, safe to share
	}
	out.basis = NewBasis(out.knots, s.degree+1, len(cps))
	return out
}

// InsertKnot returns a new curve with the knot value t inserted once.
// The control polygon is refined per Boehm's algorithm: the control-point
// count grows by one while Point and Derivative results are unchanged
// everywhere in the domain. The receiver is not modified.
func (s *BSpline) InsertKnot(t float64) (*BSpline, error) {
	return s.InsertKnotN(t, 1)
}

// InsertKnotN inserts the knot value t n times. It fails if the
// resulting multiplicity at t would exceed the curve order.
func (s *BSpline) InsertKnotN(t float64, n int) (*BSpline, error) {
	if n < 1 {
		return nil, errConfigf("insertion count %d is below 1", n)
	}
	t0, t1 := s.Domain()
	if t < t0 || t > t1 {
		return nil, errConfigf("insertion parameter %g outside domain [%g, %g]", t, t0, t1)
	}
	if m := s.knots.Multiplicity(t); m+n > s.Order() {
		return nil, errConfigf("inserting %g %d times would raise its multiplicity to %d, above the order %d",
			t, n, m+n, s.Order())
	}
	points := homogeneous(s.controlPoints, s.weights)
	knots := s.knots
	for i := 0; i < n; i++ {
		points, knots = boehmStep(points, knots, s.degree, t)
	}
	return fromHomogeneous(points, knots, s.degree, s.weights != nil), nil
}

// binomials returns Pascal's triangle through row n.
func binomials(n int) [][]float64 {
	rows := make([][]float64, n+1)
	for k := range rows {
		rows[k] = make([]float64, k+1)
		rows[k][0] = 1
		rows[k][k] = 1
		for i := 1; i < k; i++ {
			rows[k][i] = rows[k-1][i-1] + rows[k-1][i]
		}
	}
	return rows
}
