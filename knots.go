package bspline

import "slices"

// knotEps is the tolerance for comparing knot values when counting
// multiplicities and grouping spans.
const knotEps = 1e-10

// KnotVector is a non-decreasing sequence of parameter breakpoints
// defining a B-spline's piecewise polynomial structure. A curve with
// count control points and degree p carries count+p+1 knots; its
// parameter domain is [knots[p], knots[count]].
type KnotVector []float64

// NormalizeKnots rescales knots affinely so that the first value maps to
// 0 and the last to 1, preserving relative spacing. Normalizing an
// already-normalized vector is a no-op. A vector spanning no range at
// all cannot be rescaled and is reported as a *ValidationError.
func NormalizeKnots(knots []float64) (KnotVector, error) {
	if len(knots) < 2 {
		return nil, errValidationf("got %d knots, want at least 2", len(knots))
	}
	lo := knots[0]
	span := knots[len(knots)-1] - lo
	if span <= 0 {
		return nil, errValidationf("degenerate knot vector: all values equal")
	}
	out := make(KnotVector, len(knots))
	for i, k := range knots {
		out[i] = (k - lo) / span
	}
	return out, nil
}

// OpenUniformKnots returns a normalized clamped (open) knot vector for
// count control points of the given order: the first and last order
// entries are 0 and 1 respectively, and the interior knots are uniformly
// spaced.
func OpenUniformKnots(count, order int) KnotVector {
	knots := make(KnotVector, 0, count+order)
	spans := float64(count - order + 1)
	for i := 0; i < order; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i <= count-order; i++ {
		knots = append(knots, float64(i)/spans)
	}
	for i := 0; i < order; i++ {
		knots = append(knots, 1)
	}
	return knots
}

// Clone returns a copy of the knot vector.
func (k KnotVector) Clone() KnotVector {
	return slices.Clone(k)
}

// IsNonDecreasing reports whether the knot values never decrease.
func (k KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			return false
		}
	}
	return true
}

// IsClamped reports whether the first and last knot values each occur
// with multiplicity degree+1, making the curve interpolate its first and
// last control points.
func (k KnotVector) IsClamped(degree int) bool {
	order := degree + 1
	if len(k) < 2*order {
		return false
	}
	for _, v := range k[1:order] {
		if v-k[0] > knotEps {
			return false
		}
	}
	last := k[len(k)-1]
	for _, v := range k[len(k)-order : len(k)-1] {
		if last-v > knotEps {
			return false
		}
	}
	return true
}

// Multiplicity returns how many knot values equal t, within tolerance.
func (k KnotVector) Multiplicity(t float64) int {
	var n int
	for _, v := range k {
		if v-t >= -knotEps && v-t <= knotEps {
			n++
		}
	}
	return n
}

// Span returns the index i of the knot span containing u, such that
// knots[i] <= u < knots[i+1], restricted to the valid range
// [degree, count-1]. A parameter at the domain maximum returns the last
// valid span rather than one-past-the-end.
//
// This is the binary search of The NURBS Book, algorithm A2.1.
func (k KnotVector) Span(degree int, u float64) int {
	n := len(k) - degree - 2
	if u >= k[n+1] {
		return n
	}
	if u < k[degree] {
		return degree
	}
	low, high := degree, n+1
	mid := (low + high) / 2
	for u < k[mid] || u >= k[mid+1] {
		if u < k[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// validateKnots checks the structural invariants of a knot vector for a
// curve with count control points of the given degree.
func validateKnots(knots []float64, degree, count int) error {
	if len(knots) != count+degree+1 {
		return errValidationf("got %d knots, want %d for %d control points of degree %d",
			len(knots), count+degree+1, count, degree)
	}
	if !KnotVector(knots).IsNonDecreasing() {
		return errValidationf("knot values must be non-decreasing")
	}
	if knots[len(knots)-1]-knots[0] <= 0 {
		return errValidationf("degenerate knot vector: all values equal")
	}
	return nil
}
