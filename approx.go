package bspline

// defaultFlatness is the curve-to-chord deviation below which an
// interval of the adaptive approximation stops subdividing.
const defaultFlatness = 1e-3

// SubdivideParams returns a new ordered parameter sequence with a
// midpoint inserted between every consecutive pair of values. It is
// pure and has no curve dependency; callers use it for uniform
// refinement of any sampling.
func SubdivideParams(params []float64) []float64 {
	if len(params) < 2 {
		out := make([]float64, len(params))
		copy(out, params)
		return out
	}
	out := make([]float64, 0, 2*len(params)-1)
	out = append(out, params[0])
	for i := 1; i < len(params); i++ {
		out = append(out, 0.5*(params[i-1]+params[i]), params[i])
	}
	return out
}

// CubicBezierApproximation approximates the curve with the given number
// of cubic Bézier segments over uniformly spaced parameter intervals.
// Each segment interpolates the curve's position and tangent at the
// interval endpoints.
func (s *BSpline) CubicBezierApproximation(segments int) ([]Bezier, error) {
	if segments < 1 {
		return nil, errConfigf("segment count %d is below 1", segments)
	}
	t0, t1 := s.Domain()
	params := make([]float64, segments+1)
	for i := range params {
		params[i] = t0 + (t1-t0)*float64(i)/float64(segments)
	}
	params[segments] = t1
	return s.cubicsThrough(params)
}

// AdaptiveCubicBezierApproximation approximates the curve with cubic
// Bézier segments over a flatness-driven parameter schedule: starting
// from the chord-length parametrization of the control polygon, each
// interval is recursively halved while the curve's midpoint deviates
// from the chord between the interval endpoints, with at most level-1
// halvings per interval. The worst-case segment count grows
// exponentially with level; the actual count is data dependent.
func (s *BSpline) AdaptiveCubicBezierApproximation(level int) ([]Bezier, error) {
	if level < 0 {
		return nil, errConfigf("subdivision level %d is negative", level)
	}
	params, err := s.approximationParams(level)
	if err != nil {
		return nil, err
	}
	return s.cubicsThrough(params)
}

// approximationParams estimates a parameter vector for point
// approximation from the length of the control polygon, then refines
// it by flatness-driven subdivision.
func (s *BSpline) approximationParams(level int) ([]float64, error) {
	t0, t1 := s.Domain()
	base := chordParams(s.controlPoints)
	params := make([]float64, len(base))
	for i, v := range base {
		params[i] = t0 + v*(t1-t0)
	}
	params[0] = t0
	params[len(params)-1] = t1

	out := []float64{params[0]}
	prev, err := s.Point(params[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(params); i++ {
		next, err := s.Point(params[i])
		if err != nil {
			return nil, err
		}
		out, err = s.refineInterval(out, params[i-1], prev, params[i], next, level-1)
		if err != nil {
			return nil, err
		}
		prev = next
	}
	return out, nil
}

// refineInterval appends the parameter values covering (t0, t1] to out,
// halving the interval while the curve midpoint's distance from the
// chord exceeds the flatness tolerance and the depth budget lasts.
func (s *BSpline) refineInterval(out []float64, t0 float64, p0 Vec3, t1 float64, p1 Vec3, depth int) ([]float64, error) {
	if depth <= 0 {
		return append(out, t1), nil
	}
	tm := 0.5 * (t0 + t1)
	pm, err := s.Point(tm)
	if err != nil {
		return nil, err
	}
	if distanceToChord(pm, p0, p1) <= defaultFlatness {
		return append(out, t1), nil
	}
	out, err = s.refineInterval(out, t0, p0, tm, pm, depth-1)
	if err != nil {
		return nil, err
	}
	return s.refineInterval(out, tm, pm, t1, p1, depth-1)
}

// cubicsThrough builds one cubic Bézier per parameter interval from the
// curve's position and first derivative at the interval endpoints: the
// inner control points sit a third of the interval along each tangent.
func (s *BSpline) cubicsThrough(params []float64) ([]Bezier, error) {
	points := make([]Vec3, len(params))
	tangents := make([]Vec3, len(params))
	for i, t := range params {
		ders, err := s.Derivative(t, 1)
		if err != nil {
			return nil, err
		}
		points[i], tangents[i] = ders[0], ders[1]
	}
	segments := make([]Bezier, 0, len(params)-1)
	for i := 1; i < len(params); i++ {
		scale := (params[i] - params[i-1]) / 3
		segments = append(segments, Bezier{
			points[i-1],
			points[i-1].Add(tangents[i-1].Mul(scale)),
			points[i].Sub(tangents[i].Mul(scale)),
			points[i],
		})
	}
	return segments, nil
}

// chordParams returns the chord-length parametrization of a polygon,
// normalized to [0, 1]. Coincident consecutive points are skipped; a
// fully degenerate polygon falls back to the trivial {0, 1} schedule.
func chordParams(points []Vec3) []float64 {
	acc := make([]float64, 1, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		d := points[i].Distance(points[i-1])
		if d <= 0 {
			continue
		}
		total += d
		acc = append(acc, total)
	}
	if total <= 0 {
		return []float64{0, 1}
	}
	for i := range acc {
		acc[i] /= total
	}
	acc[len(acc)-1] = 1
	return acc
}

// distanceToChord returns the distance from p to the line segment
// between a and b.
func distanceToChord(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.Hypot2()
	if den <= 0 {
		return ap.Hypot()
	}
	t := ap.Dot(ab) / den
	t = max(0, min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
