package bspline

import "slices"

// hvec is a control point in homogeneous coordinates: the Cartesian
// coordinates premultiplied by the weight, plus the weight itself.
// Non-rational curves carry w == 1 throughout, which makes a single
// refinement code path serve both curve kinds.
type hvec struct {
	x, y, z, w float64
}

func (h hvec) lerp(o hvec, t float64) hvec {
	return hvec{
		x: h.x + t*(o.x-h.x),
		y: h.y + t*(o.y-h.y),
		z: h.z + t*(o.z-h.z),
		w: h.w + t*(o.w-h.w),
	}
}

func (h hvec) project() Vec3 {
	return Vec3{X: h.x / h.w, Y: h.y / h.w, Z: h.z / h.w}
}

// homogeneous lifts control points and weights into homogeneous
// coordinates. A nil weights slice stands for a non-rational curve.
func homogeneous(points []Vec3, weights []float64) []hvec {
	out := make([]hvec, len(points))
	for i, p := range points {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		out[i] = hvec{x: p.X * w, y: p.Y * w, z: p.Z * w, w: w}
	}
	return out
}

// boehmStep inserts the knot value t once, computing the refined control
// polygon per Boehm's algorithm: every affected control point becomes a
// convex combination of its two predecessors, with blending ratios read
// off the knot vector. The input slices are not modified; the returned
// curve evaluates identically to the input everywhere in the domain.
func boehmStep(points []hvec, knots KnotVector, degree int, t float64) ([]hvec, KnotVector) {
	span := knots.Span(degree, t)
	out := make([]hvec, len(points)+1)
	for i := range out {
		switch {
		case i <= span-degree:
			out[i] = points[i]
		case i > span:
			out[i] = points[i-1]
		default:
			// alpha is zero when the span has collapsed (full
			// multiplicity at t), which keeps the step well defined.
			var alpha float64
			if denom := knots[i+degree] - knots[i]; denom != 0 {
				alpha = (t - knots[i]) / denom
			}
			out[i] = points[i-1].lerp(points[i], alpha)
		}
	}
	return out, slices.Insert(knots.Clone(), span+1, t)
}
