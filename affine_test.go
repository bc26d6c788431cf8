package bspline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineTransform(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	p := V3(1, 2, 3)

	diff(t, p, p.Transform(Identity))
	diff(t, V3(3, 6, 9), p.Transform(Translate(V3(2, 4, 6))))
	diff(t, V3(2, -2, 9), p.Transform(Scale(2, -1, 3)))
	diff(t, V3(-2, 1, 3), p.Transform(RotateZ(math.Pi/2)), approx)
	diff(t, V3(1, -3, 2), p.Transform(RotateX(math.Pi/2)), approx)
	diff(t, V3(3, 2, -1), p.Transform(RotateY(math.Pi/2)), approx)
}

func TestAffineMul(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	a := RotateZ(0.3).ThenTranslate(V3(2, -1, 4))
	b := Scale(1.5, 2, 0.5).PreTranslate(V3(-3, 0, 1))
	p := V3(2, 5, -1)

	// Composition applies the right transform first.
	diff(t, p.Transform(b).Transform(a), p.Transform(a.Mul(b)), approx)

	c := RotateX(1.1)
	diff(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), approx)
}

func TestAffinePreThen(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	aff := RotateZ(0.4)
	v := V3(1, 2, 3)

	diff(t, aff.Mul(Translate(v)), aff.PreTranslate(v), approx)
	diff(t, Translate(v).Mul(aff), aff.ThenTranslate(v), approx)
	diff(t, aff.Mul(Scale(2, 3, 4)), aff.PreScale(2, 3, 4), approx)
	diff(t, Scale(2, 3, 4).Mul(aff), aff.ThenScale(2, 3, 4), approx)
}

func TestAffineCoefficients(t *testing.T) {
	n := [12]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	diff(t, n, NewAffine(n).Coefficients())
}
