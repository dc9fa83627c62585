package math

import (
	m "math"
)

// Creates and returns an identity quaternion (no rotation).
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

// Creates a quaternion from the given axis and angle. Pass normalize as true
// when the axis is not unit length.
func NewQuatFromAxisAngle(axis Vec3, angle float64, normalize bool) Quaternion {
	if normalize {
		axis = axis.Normalize()
	}
	halfAngle := 0.5 * angle
	s := m.Sin(halfAngle)
	c := m.Cos(halfAngle)

	return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
}

// NewQuatFromMat4 extracts the rotation of a matrix whose upper 3x3 block is
// a pure rotation. The branch is picked from the trace, or from the largest
// diagonal element when the trace is not positive, to keep the square root
// well conditioned.
func NewQuatFromMat4(mat Mat4) Quaternion {
	m11, m12, m13 := mat[0], mat[4], mat[8]
	m21, m22, m23 := mat[1], mat[5], mat[9]
	m31, m32, m33 := mat[2], mat[6], mat[10]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / m.Sqrt(trace+1.0)
		return Quaternion{
			(m32 - m23) * s,
			(m13 - m31) * s,
			(m21 - m12) * s,
			0.25 / s,
		}
	case m11 > m22 && m11 > m33:
		s := 2.0 * m.Sqrt(1.0+m11-m22-m33)
		return Quaternion{
			0.25 * s,
			(m12 + m21) / s,
			(m13 + m31) / s,
			(m32 - m23) / s,
		}
	case m22 > m33:
		s := 2.0 * m.Sqrt(1.0+m22-m11-m33)
		return Quaternion{
			(m12 + m21) / s,
			0.25 * s,
			(m23 + m32) / s,
			(m13 - m31) / s,
		}
	default:
		s := 2.0 * m.Sqrt(1.0+m33-m11-m22)
		return Quaternion{
			(m13 + m31) / s,
			(m23 + m32) / s,
			0.25 * s,
			(m21 - m12) / s,
		}
	}
}

// NewQuatFromUnitVectors returns the rotation carrying unit vector from onto
// unit vector to. Antiparallel inputs have no unique rotation axis; an
// explicit perpendicular axis is chosen for a half turn.
func NewQuatFromUnitVectors(from, to Vec3) Quaternion {
	r := from.Dot(to) + 1

	if r < Epsilon {
		// Directly opposite; pick the better conditioned perpendicular.
		if m.Abs(from.X) > m.Abs(from.Z) {
			return Quaternion{-from.Y, from.X, 0, 0}.Normalize()
		}
		return Quaternion{0, -from.Z, from.Y, 0}.Normalize()
	}

	cross := from.Cross(to)
	return Quaternion{cross.X, cross.Y, cross.Z, r}.Normalize()
}

// Returns the normal (magnitude) of the provided quaternion.
func (q Quaternion) Normal() float64 {
	return m.Sqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

// Returns a normalized copy of the provided quaternion. The zero quaternion
// normalizes to the identity.
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return NewQuatIdentity()
	}
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

// Returns the conjugate of the provided quaternion. That is, the x, y and z
// elements are negated, but the w element is untouched.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Returns an inverse copy of the provided quaternion.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

// Negate returns the same rotation with all four components negated.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// Mul returns the Hamilton product q x other: the rotation applying other
// first and q second.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out := Quaternion{}

	out.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out
}

// Premul returns other x q, the rotation applying q first and other second.
func (q Quaternion) Premul(other Quaternion) Quaternion {
	return other.Mul(q)
}

// Calculates the dot product of the provided quaternions.
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// AngleTo returns the angle between the rotations in radians.
func (q Quaternion) AngleTo(other Quaternion) float64 {
	return 2 * m.Acos(m.Abs(Clamp(q.Dot(other), -1.0, 1.0)))
}

// RotateTowards steps from q towards other by at most step radians, landing
// exactly on other when the remaining angle is smaller than the step.
func (q Quaternion) RotateTowards(other Quaternion, step float64) Quaternion {
	angle := q.AngleTo(other)
	if angle == 0 {
		return other
	}
	t := m.Min(1, step/angle)
	return q.Slerp(other, t)
}

// Creates a rotation matrix from the given quaternion.
func (q Quaternion) ToMat4() Mat4 {
	n := q.Normalize()

	out := NewMat4Identity()
	out[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out[1] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out[2] = 2.0*n.X*n.Z - 2.0*n.Y*n.W

	out[4] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out[6] = 2.0*n.Y*n.Z + 2.0*n.X*n.W

	out[8] = 2.0*n.X*n.Z + 2.0*n.Y*n.W
	out[9] = 2.0*n.Y*n.Z - 2.0*n.X*n.W
	out[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out
}

// ToRotationMatrixAround calculates a rotation matrix that spins about the
// passed in center point rather than the origin.
func (q Quaternion) ToRotationMatrixAround(center Vec3) Mat4 {
	rot := q.ToMat4()
	return NewMat4Translation(center).
		Mul(rot).
		Mul(NewMat4Translation(center.Negate()))
}

// Euler extracts the rotation as euler angles in the given order.
func (q Quaternion) Euler(order RotationOrder) Euler {
	e := Euler{}
	e.SetFromQuaternion(q, order)
	return e
}

// Calculates spherical linear interpolation of a given percentage between
// two quaternions.
func (q Quaternion) Slerp(other Quaternion, percentage float64) Quaternion {
	// The endpoints are exact; no arithmetic drift allowed there.
	if percentage == 0 {
		return q
	}
	if percentage == 1 {
		return other
	}

	cosHalfTheta := q.Dot(other)

	// If the dot product is negative, slerp won't take the shorter path.
	// Note that other and -other are equivalent when the negation is applied
	// to all four components. Fix by reversing one quaternion.
	b := other
	if cosHalfTheta < 0 {
		b = other.Negate()
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1.0 {
		return q
	}

	sqrSinHalfTheta := 1.0 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta <= Epsilon {
		// The inputs are too close for comfort; linearly interpolate and
		// normalize the result.
		s := 1 - percentage
		out := Quaternion{
			s*q.X + percentage*b.X,
			s*q.Y + percentage*b.Y,
			s*q.Z + percentage*b.Z,
			s*q.W + percentage*b.W,
		}
		return out.Normalize()
	}

	sinHalfTheta := m.Sqrt(sqrSinHalfTheta)
	halfTheta := m.Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := m.Sin((1-percentage)*halfTheta) / sinHalfTheta
	ratioB := m.Sin(percentage*halfTheta) / sinHalfTheta

	return Quaternion{
		q.X*ratioA + b.X*ratioB,
		q.Y*ratioA + b.Y*ratioB,
		q.Z*ratioA + b.Z*ratioB,
		q.W*ratioA + b.W*ratioB,
	}
}

// SlerpFlat interpolates between two quaternions stored in flat arrays, for
// batch interpolation over packed animation or snapshot data. dst may alias
// either source.
func SlerpFlat(dst []float64, dstOffset int, src0 []float64, srcOffset0 int, src1 []float64, srcOffset1 int, t float64) {
	x0 := src0[srcOffset0+0]
	y0 := src0[srcOffset0+1]
	z0 := src0[srcOffset0+2]
	w0 := src0[srcOffset0+3]

	x1 := src1[srcOffset1+0]
	y1 := src1[srcOffset1+1]
	z1 := src1[srcOffset1+2]
	w1 := src1[srcOffset1+3]

	if t == 0 {
		dst[dstOffset+0] = x0
		dst[dstOffset+1] = y0
		dst[dstOffset+2] = z0
		dst[dstOffset+3] = w0
		return
	}
	if t == 1 {
		dst[dstOffset+0] = x1
		dst[dstOffset+1] = y1
		dst[dstOffset+2] = z1
		dst[dstOffset+3] = w1
		return
	}

	if w0 != w1 || x0 != x1 || y0 != y1 || z0 != z1 {
		s := 1 - t
		cos := x0*x1 + y0*y1 + z0*z1 + w0*w1
		dir := 1.0
		if cos < 0 {
			dir = -1.0
		}
		sqrSin := 1 - cos*cos

		// Skip the spherical weights when the sine is numerically zero.
		if sqrSin > Epsilon {
			sin := m.Sqrt(sqrSin)
			length := m.Atan2(sin, cos*dir)

			s = m.Sin(s*length) / sin
			t = m.Sin(t*length) / sin
		}

		tDir := t * dir

		x0 = x0*s + x1*tDir
		y0 = y0*s + y1*tDir
		z0 = z0*s + z1*tDir
		w0 = w0*s + w1*tDir

		// A linear blend needs renormalizing; the spherical weights do not.
		if s == 1-t {
			f := 1 / m.Sqrt(x0*x0+y0*y0+z0*z0+w0*w0)
			x0 *= f
			y0 *= f
			z0 *= f
			w0 *= f
		}
	}

	dst[dstOffset+0] = x0
	dst[dstOffset+1] = y0
	dst[dstOffset+2] = z0
	dst[dstOffset+3] = w0
}

// Compares all elements of q and other and ensures the difference is less
// than tolerance.
func (q Quaternion) Compare(other Quaternion, tolerance float64) bool {
	if m.Abs(q.X-other.X) > tolerance {
		return false
	}
	if m.Abs(q.Y-other.Y) > tolerance {
		return false
	}
	if m.Abs(q.Z-other.Z) > tolerance {
		return false
	}
	if m.Abs(q.W-other.W) > tolerance {
		return false
	}
	return true
}
