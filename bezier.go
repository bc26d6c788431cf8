package bspline

// Bezier is a single polynomial Bézier segment, given by its degree+1
// control points. Segments are produced by [BSpline.BezierDecomposition]
// and [BSpline.CubicBezierApproximation] and are never mutated by this
// package.
type Bezier []Vec3

// Degree returns the polynomial degree of the segment.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Start returns the first control point, which lies on the segment.
func (b Bezier) Start() Vec3 {
	return b[0]
}

// End returns the last control point, which lies on the segment.
func (b Bezier) End() Vec3 {
	return b[len(b)-1]
}

// Eval evaluates the segment at u ∈ [0, 1] using de Casteljau's
// algorithm.
func (b Bezier) Eval(u float64) Vec3 {
	pts := make([]Vec3, len(b))
	copy(pts, b)
	for n := len(pts) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			pts[i] = pts[i].Lerp(pts[i+1], u)
		}
	}
	return pts[0]
}

// Transform returns a new segment with every control point transformed
// by aff.
func (b Bezier) Transform(aff Affine) Bezier {
	out := make(Bezier, len(b))
	for i, p := range b {
		out[i] = p.Transform(aff)
	}
	return out
}
