package geom

// Mat33 is a 3x3 matrix stored by rows.
type Mat33 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat33 {
	return Mat33{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec returns m·v.
func (m Mat33) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·o.
func (m Mat33) Mul(o Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}

	return r
}

// Determinant returns det(m).
func (m Mat33) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m. The second result is false when m is
// singular.
func (m Mat33) Inverse() (Mat33, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat33{}, false
	}
	inv := 1 / det

	var r Mat33
	r[0][0] = (m[1][1]*m[2][2] - m[2][1]*m[1][2]) * inv
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	r[1][2] = (m[1][0]*m[0][2] - m[0][0]*m[1][2]) * inv
	r[2][0] = (m[1][0]*m[2][1] - m[2][0]*m[1][1]) * inv
	r[2][1] = (m[2][0]*m[0][1] - m[0][0]*m[2][1]) * inv
	r[2][2] = (m[0][0]*m[1][1] - m[1][0]*m[0][1]) * inv

	return r, true
}

// Transform is a rotation (or general linear map) followed by a translation.
//
// The zero value is not the identity; use IdentityTransform.
type Transform struct {
	Mat Mat33
	Vec Vec3
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Mat: Identity()}
}

// Translation returns a transform that moves points by v.
func Translation(v Vec3) Transform {
	return Transform{Mat: Identity(), Vec: v}
}

// Apply returns Mat·p + Vec.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Mat.MulVec(p).Add(t.Vec)
}

// ApplyPosition applies t to an atom position.
func (t Transform) ApplyPosition(p Position) Position {
	return Position(t.Apply(Vec3(p)))
}

// Combine returns the transform equal to applying o first, then t.
func (t Transform) Combine(o Transform) Transform {
	return Transform{
		Mat: t.Mat.Mul(o.Mat),
		Vec: t.Apply(o.Vec),
	}
}

// Inverse returns the transform undoing t. The second result is false when
// the matrix is singular.
func (t Transform) Inverse() (Transform, bool) {
	mat, ok := t.Mat.Inverse()
	if !ok {
		return Transform{}, false
	}

	return Transform{Mat: mat, Vec: mat.MulVec(t.Vec).Scale(-1)}, true
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t.Mat == Identity() && t.Vec == Vec3{}
}
