package mapcore

import "math"

// affine is a 2D affine transform stored as [a, c, b, d, tx, ty], matching
// the teacher's camera matrix layout:
//
//	x' = a*x + b*y + tx
//	y' = c*x + d*y + ty
type affine [6]float64

// identityAffine returns the identity transform.
func identityAffine() affine {
	return affine{1, 0, 0, 1, 0, 0}
}

// translateAffine returns a pure-translation transform.
func translateAffine(tx, ty float64) affine {
	return affine{1, 0, 0, 1, tx, ty}
}

// transformPoint applies m to (x, y).
func transformPoint(m affine, x, y float64) (float64, float64) {
	a, c, b, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	return a*x + b*y + tx, c*x + d*y + ty
}

// invertAffine returns the inverse of m. For a degenerate m (zero or NaN
// determinant) it returns the identity.
func invertAffine(m affine) affine {
	a, c, b, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	det := a*d - b*c
	if det == 0 || math.IsNaN(det) {
		return identityAffine()
	}
	invDet := 1 / det
	ia := d * invDet
	ib := -b * invDet
	ic := -c * invDet
	id := a * invDet
	itx := -(ia*tx + ib*ty)
	ity := -(ic*tx + id*ty)
	return affine{ia, ic, ib, id, itx, ity}
}
