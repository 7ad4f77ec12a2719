package mapcore

import "testing"

func TestIdentityAffineIsNoOp(t *testing.T) {
	x, y := transformPoint(identityAffine(), 7, 9)
	if x != 7 || y != 9 {
		t.Errorf("transformPoint(identity, 7, 9) = (%v,%v), want (7,9)", x, y)
	}
}

func TestTranslateAffine(t *testing.T) {
	m := translateAffine(3, -4)
	x, y := transformPoint(m, 10, 10)
	if x != 13 || y != 6 {
		t.Errorf("transformPoint(translate(3,-4), 10, 10) = (%v,%v), want (13,6)", x, y)
	}
}

func TestInvertAffineRoundTrips(t *testing.T) {
	m := translateAffine(5, -2)
	inv := invertAffine(m)
	x, y := transformPoint(m, 1, 1)
	x, y = transformPoint(inv, x, y)
	if x != 1 || y != 1 {
		t.Errorf("round trip through invertAffine = (%v,%v), want (1,1)", x, y)
	}
}

func TestInvertAffineDegenerateFallsBackToIdentity(t *testing.T) {
	zero := affine{0, 0, 0, 0, 0, 0}
	if invertAffine(zero) != identityAffine() {
		t.Error("invertAffine of a zero-determinant matrix should fall back to identity")
	}
}
