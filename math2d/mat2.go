package math2d

import "math"

// Mat2 represents a 2x2 matrix in row-major order:
//
//	| M00  M01 |
//	| M10  M11 |
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

// Identity returns the identity matrix.
func Identity() Mat2 {
	return Mat2{
		M00: 1, M01: 0,
		M10: 0, M11: 1,
	}
}

// Rotation creates a rotation matrix for angle (radians).
func Rotation(angle float64) Mat2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Mat2{
		M00: cos, M01: -sin,
		M10: sin, M11: cos,
	}
}

// Scaling creates a uniform scaling matrix.
func Scaling(k float64) Mat2 {
	return Mat2{
		M00: k, M01: 0,
		M10: 0, M11: k,
	}
}

// ScalingXY creates a scaling matrix with independent axis factors.
func ScalingXY(kx, ky float64) Mat2 {
	return Mat2{
		M00: kx, M01: 0,
		M10: 0, M11: ky,
	}
}

// Mul returns the matrix product m * n. Matrix multiplication is not
// commutative; m.Mul(n).MulVec(v) applies n first, then m.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		M00: m.M00*n.M00 + m.M01*n.M10,
		M01: m.M00*n.M01 + m.M01*n.M11,
		M10: m.M10*n.M00 + m.M11*n.M10,
		M11: m.M10*n.M01 + m.M11*n.M11,
	}
}

// MulVec applies the matrix to a vector.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		m.M00*v.X + m.M01*v.Y,
		m.M10*v.X + m.M11*v.Y,
	}
}

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m.M00*m.M11 - m.M01*m.M10
}

// Inverse returns the inverse matrix. ok is false for degenerate
// (zero-determinant) matrices, in which case the identity is returned.
func (m Mat2) Inverse() (inv Mat2, ok bool) {
	d := m.Det()
	if d == 0 {
		return Identity(), false
	}
	return Mat2{
		M00: m.M11 / d, M01: -m.M01 / d,
		M10: -m.M10 / d, M11: m.M00 / d,
	}, true
}
