package core

import "math"

// ONB is a right-handed orthonormal basis built around a unit vector W,
// typically a surface normal. Local-frame samples (cosine-weighted
// hemisphere directions, cone samples) are mapped into world space with it.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis from a unit vector w.
// The helper axis is chosen away from w so the construction stays
// stable when w is near a coordinate axis.
func NewONB(w Vec3) ONB {
	w = w.Normalize()
	var helper Vec3
	if math.Abs(w.X) > 0.9 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}
	v := w.Cross(helper).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local maps a local-frame direction (a, b, c) into world space
func (o ONB) Local(a, b, c float64) Vec3 {
	return o.U.Multiply(a).Add(o.V.Multiply(b)).Add(o.W.Multiply(c))
}

// LocalVec maps a local-frame vector into world space
func (o ONB) LocalVec(v Vec3) Vec3 {
	return o.Local(v.X, v.Y, v.Z)
}
