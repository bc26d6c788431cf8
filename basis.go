package bspline

// Basis evaluates the Cox–de Boor basis functions N_{i,p}(u) and their
// derivatives over a knot vector. It is stateless: every call works on
// local tables sized by the order, so a single Basis value may be used
// from multiple goroutines concurrently.
type Basis struct {
	knots KnotVector
	order int
	count int
}

// NewBasis returns a basis-function evaluator for count control points
// of the given order over knots.
func NewBasis(knots KnotVector, order, count int) Basis {
	return Basis{knots: knots, order: order, count: count}
}

// Degree returns the polynomial degree, order-1.
func (b Basis) Degree() int {
	return b.order - 1
}

// Domain returns the valid parameter range [knots[degree], knots[count]].
func (b Basis) Domain() (float64, float64) {
	return b.knots[b.Degree()], b.knots[b.count]
}

// Span returns the knot span index containing u. See [KnotVector.Span].
func (b Basis) Span(u float64) int {
	return b.knots.Span(b.Degree(), u)
}

func (b Basis) checkDomain(u float64) error {
	t0, t1 := b.Domain()
	eps := (t1 - t0) * 1e-12
	if u < t0-eps || u > t1+eps {
		return &DomainError{T: u, Min: t0, Max: t1}
	}
	return nil
}

// BasisVector returns the vector of basis function values N_{i,p}(u) for
// all control-point indices i. Entries outside the support of the span
// containing u are exactly zero.
func (b Basis) BasisVector(u float64) ([]float64, error) {
	if err := b.checkDomain(u); err != nil {
		return nil, err
	}
	span := b.Span(u)
	funcs := b.basisFuncs(span, u)
	out := make([]float64, b.count)
	copy(out[span-b.Degree():], funcs)
	return out, nil
}

// Derivatives returns the basis function values and their 1st through
// n-th derivative weights for all control-point indices, as n+1 rows:
// row 0 holds N_{i,p}(u) and row k the k-th derivative weights.
// Derivative orders above the degree are identically zero, so those rows
// are all-zero rather than an error.
func (b Basis) Derivatives(u float64, n int) ([][]float64, error) {
	if n < 0 {
		return nil, errConfigf("derivative order %d is negative", n)
	}
	if err := b.checkDomain(u); err != nil {
		return nil, err
	}
	span := b.Span(u)
	p := b.Degree()
	nd := min(n, p)
	ders := b.derivBasisFuncs(span, u, nd)
	out := make([][]float64, n+1)
	for k := range out {
		out[k] = make([]float64, b.count)
		if k <= nd {
			copy(out[k][span-p:], ders[k])
		}
	}
	return out, nil
}

// basisFuncs computes the order nonvanishing basis functions at u in the
// given span via the iterative triangular recurrence (The NURBS Book,
// A2.2). Entry j corresponds to control point span-degree+j.
func (b Basis) basisFuncs(span int, u float64) []float64 {
	p := b.Degree()
	funcs := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	funcs[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - b.knots[span+1-j]
		right[j] = b.knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			temp := funcs[r] / (right[r+1] + left[j-r])
			funcs[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		funcs[j] = saved
	}
	return funcs
}

// derivBasisFuncs computes the nonvanishing basis functions and their
// derivatives through order n <= degree, reusing a single triangular
// table for all rows (The NURBS Book, A2.3). Row k holds the k-th
// derivative weights; entry j corresponds to control point span-degree+j.
func (b Basis) derivBasisFuncs(span int, u float64, n int) [][]float64 {
	p := b.Degree()
	ndu := squareTable(p + 1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - b.knots[span+1-j]
		right[j] = b.knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			// Lower triangle stores the knot differences, upper the
			// basis function values.
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, n+1)
	for k := range ders {
		ders[k] = make([]float64, p+1)
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	// Two alternating rows of difference coefficients.
	a := [2][]float64{make([]float64, p+1), make([]float64, p+1)}
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= n; k++ {
			var d float64
			rk := r - k
			pk := p - k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	// Multiply through by the degree factors p!/(p-k)!.
	acc := float64(p)
	for k := 1; k <= n; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= acc
		}
		acc *= float64(p - k)
	}
	return ders
}

func squareTable(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	return out
}
