package bspline

// BezierDecomposition converts the curve into an equivalent ordered
// sequence of independent Bézier segments, one per knot span: every
// interior knot is raised to full multiplicity via Boehm insertions on a
// private working copy, decoupling each span from its neighbors. The
// receiver is never mutated.
//
// Consecutive segments share their boundary control point, so segment
// i+1's first control point equals segment i's last.
//
// For rational curves the refined per-point weights are divided out of
// the returned control points; the segments describe the rational
// curve's geometry but are returned as polynomial patches.
func (s *BSpline) BezierDecomposition() []Bezier {
	p := s.degree
	points := homogeneous(s.controlPoints, s.weights)
	knots := s.knots
	t0, t1 := s.Domain()

	// Distinct knot values inside the domain, boundaries included.
	var values []float64
	for _, k := range knots {
		if k < t0-knotEps || k > t1+knotEps {
			continue
		}
		if len(values) == 0 || k-values[len(values)-1] > knotEps {
			values = append(values, k)
		}
	}

	for _, v := range values {
		// Interior knots need multiplicity p to decouple the spans;
		// the domain boundaries need p+1. For a clamped curve the
		// boundaries already satisfy this.
		target := p
		if v-t0 <= knotEps || t1-v <= knotEps {
			target = p + 1
		}
		for m := knots.Multiplicity(v); m < target; m++ {
			points, knots = boehmStep(points, knots, p, v)
		}
	}

	// The first control point of the clamped result sits at the first
	// occurrence of the domain minimum in the refined knot vector.
	var start int
	for i, k := range knots {
		if k >= t0-knotEps {
			start = i
			break
		}
	}

	segments := make([]Bezier, len(values)-1)
	for j := range segments {
		seg := make(Bezier, p+1)
		for i := range seg {
			seg[i] = points[start+j*p+i].project()
		}
		segments[j] = seg
	}
	return segments
}
