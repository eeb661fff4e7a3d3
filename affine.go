package chord

// Affine is a 2D affine transform with the coefficients (a, b, c, d, e, f)
// of the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Products compose right to left: p.Transform(A.Mul(B)) equals
// p.Transform(B).Transform(A).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY mirrors the y axis, converting between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale scales x and y by independent factors.
func Scale(x, y float64) Affine {
	return Affine{N0: x, N3: y}
}

// Translate moves by v.
func Translate(v Vec2) Affine {
	return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y}
}

// MapRect maps the y-up rectangle src onto the y-down rectangle dst. The top
// left corner (X0, Y1) of src lands on dst's origin (X0, Y0), and the y axis
// is flipped in between. This is how task coordinates are placed on a
// canvas.
func MapRect(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	return FlipY.Mul(Translate(Vec(-src.X0, -src.Y1))).
		ThenScale(dst.Width()/src.Width(), dst.Height()/src.Height()).
		ThenTranslate(Vec(dst.X0, dst.Y0))
}

// Mul returns the transform that applies o first and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by Scale(x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
