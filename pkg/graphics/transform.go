package graphics

import "golang.org/x/image/math/f64"

// Transform is a 2D affine transform stored as a row-major 2x3 matrix.
//
// A point (x, y) maps to (m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]).
// The zero value is not the identity; use IdentityTransform.
type Transform struct {
	m f64.Aff3
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// TranslationTransform returns a transform that offsets points by (dx, dy).
func TranslationTransform(dx, dy float64) Transform {
	return Transform{m: f64.Aff3{1, 0, dx, 0, 1, dy}}
}

// ScaleTransform returns a transform that scales points about the origin.
func ScaleTransform(sx, sy float64) Transform {
	return Transform{m: f64.Aff3{sx, 0, 0, 0, sy, 0}}
}

// TransformFromAff3 wraps a raw affine matrix.
func TransformFromAff3(m f64.Aff3) Transform {
	return Transform{m: m}
}

// Aff3 returns the underlying matrix.
func (t Transform) Aff3() f64.Aff3 {
	return t.m
}

// Apply maps p through t.
func (t Transform) Apply(p Offset) Offset {
	return Offset{
		X: t.m[0]*p.X + t.m[1]*p.Y + t.m[2],
		Y: t.m[3]*p.X + t.m[4]*p.Y + t.m[5],
	}
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	a, b := next.m, t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// Invert returns the inverse of t. The second result is false when t is
// singular, in which case the returned transform is the identity.
func (t Transform) Invert() (Transform, bool) {
	m := t.m
	det := m[0]*m[4] - m[1]*m[3]
	if floatEqual(det, 0) {
		return IdentityTransform(), false
	}
	inv := 1 / det
	return Transform{m: f64.Aff3{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,
	}}, true
}

// IsIdentity reports whether t maps every point to itself.
func (t Transform) IsIdentity() bool {
	id := IdentityTransform().m
	for i := range t.m {
		if !floatEqual(t.m[i], id[i]) {
			return false
		}
	}
	return true
}
