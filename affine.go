package bspline

import "math"

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f, g, h, i, j, k, l), then the
// resulting transformation represents this augmented matrix:
//
//	| a d g j |
//	| b e h k |
//	| c f i l |
//	| 0 0 0 1 |
//
// The coefficients are stored column-major, so that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y, and z.
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// RotateX creates an affine transform representing rotation about the x
// axis. The angle th is expressed in radians; a positive angle rotates
// the positive y direction into positive z.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
		0, 0, 0,
	}
}

// RotateY creates an affine transform representing rotation about the y axis.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
		0, 0, 0,
	}
}

// RotateZ creates an affine transform representing rotation about the z axis.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
		0, 0, 0,
	}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N3*o.N1 + aff.N6*o.N2,
		aff.N1*o.N0 + aff.N4*o.N1 + aff.N7*o.N2,
		aff.N2*o.N0 + aff.N5*o.N1 + aff.N8*o.N2,
		aff.N0*o.N3 + aff.N3*o.N4 + aff.N6*o.N5,
		aff.N1*o.N3 + aff.N4*o.N4 + aff.N7*o.N5,
		aff.N2*o.N3 + aff.N5*o.N4 + aff.N8*o.N5,
		aff.N0*o.N6 + aff.N3*o.N7 + aff.N6*o.N8,
		aff.N1*o.N6 + aff.N4*o.N7 + aff.N7*o.N8,
		aff.N2*o.N6 + aff.N5*o.N7 + aff.N8*o.N8,
		aff.N0*o.N9 + aff.N3*o.N10 + aff.N6*o.N11 + aff.N9,
		aff.N1*o.N9 + aff.N4*o.N10 + aff.N7*o.N11 + aff.N10,
		aff.N2*o.N9 + aff.N5*o.N10 + aff.N8*o.N11 + aff.N11,
	}
}

// PreTranslate creates a translation by v followed by aff.
//
// Equivalent to "aff * Translate(v)".
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation by v.
//
// Equivalent to "Translate(v) * aff".
func (aff Affine) ThenTranslate(v Vec3) Affine {
	out := aff
	out.N9 += v.X
	out.N10 += v.Y
	out.N11 += v.Z
	return out
}

// PreScale creates a scale followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)".
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale.
//
// Equivalent to "Scale(x, y, z) * aff".
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}
