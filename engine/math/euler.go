package math

import (
	m "math"
)

// RotationOrder names the axis sequence of an euler rotation. Orders are
// intrinsic Tait-Bryan: each rotation is about the axis as moved by the
// previous ones.
type RotationOrder uint8

const (
	OrderXYZ RotationOrder = iota
	OrderYXZ
	OrderZXY
	OrderZYX
	OrderYZX
	OrderXZY
)

// DefaultOrder is used wherever a rotation order is not given explicitly.
const DefaultOrder = OrderXYZ

func (o RotationOrder) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderYXZ:
		return "YXZ"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	case OrderYZX:
		return "YZX"
	case OrderXZY:
		return "XZY"
	}
	return "unknown"
}

// Past this magnitude of the saturating matrix element the middle rotation
// sits on ±90 degrees and the outer axes collapse onto each other.
const gimbalThreshold = 0.9999999

// Euler is a rotation stored as three angles in radians applied in a given
// order. Unlike the other kernel values it is a small mutable state holder:
// setters go through pointer receivers so a registered change callback can
// invalidate caches built from it. The callback runs synchronously on the
// mutating goroutine and must not call back into the same Euler. Not safe
// for concurrent mutation.
type Euler struct {
	x, y, z  float64
	order    RotationOrder
	onChange func()
}

// NewEuler creates an euler rotation from three angles in radians.
func NewEuler(x, y, z float64, order RotationOrder) Euler {
	return Euler{x: x, y: y, z: z, order: order}
}

func (e *Euler) X() float64 {
	return e.x
}

func (e *Euler) Y() float64 {
	return e.y
}

func (e *Euler) Z() float64 {
	return e.z
}

func (e *Euler) Order() RotationOrder {
	return e.order
}

// OnChange registers a callback fired after every mutation. Passing nil
// removes it.
func (e *Euler) OnChange(cb func()) {
	e.onChange = cb
}

func (e *Euler) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Set replaces all three angles, keeping the order.
func (e *Euler) Set(x, y, z float64) {
	e.x, e.y, e.z = x, y, z
	e.changed()
}

func (e *Euler) SetX(x float64) {
	e.x = x
	e.changed()
}

func (e *Euler) SetY(y float64) {
	e.y = y
	e.changed()
}

func (e *Euler) SetZ(z float64) {
	e.z = z
	e.changed()
}

// SetOrder changes the axis sequence while keeping the raw angles. To keep
// the rotation itself instead, use Reorder.
func (e *Euler) SetOrder(order RotationOrder) {
	e.order = order
	e.changed()
}

// SetFromRotationMatrix extracts euler angles from a matrix whose upper 3x3
// block is a pure rotation. Near gimbal lock, when the middle angle
// saturates ±90 degrees, the decomposition is no longer unique; the
// conventional choice here pins the order's redundant outer axis to zero
// and folds the whole remaining rotation into the other one.
func (e *Euler) SetFromRotationMatrix(mat Mat4, order RotationOrder) {
	m11, m12, m13 := mat[0], mat[4], mat[8]
	m21, m22, m23 := mat[1], mat[5], mat[9]
	m31, m32, m33 := mat[2], mat[6], mat[10]

	switch order {
	case OrderXYZ:
		e.y = m.Asin(Clamp(m13, -1.0, 1.0))
		if m.Abs(m13) < gimbalThreshold {
			e.x = m.Atan2(-m23, m33)
			e.z = m.Atan2(-m12, m11)
		} else {
			e.x = m.Atan2(m32, m22)
			e.z = 0
		}

	case OrderYXZ:
		e.x = m.Asin(-Clamp(m23, -1.0, 1.0))
		if m.Abs(m23) < gimbalThreshold {
			e.y = m.Atan2(m13, m33)
			e.z = m.Atan2(m21, m22)
		} else {
			e.y = m.Atan2(-m31, m11)
			e.z = 0
		}

	case OrderZXY:
		e.x = m.Asin(Clamp(m32, -1.0, 1.0))
		if m.Abs(m32) < gimbalThreshold {
			e.y = m.Atan2(-m31, m33)
			e.z = m.Atan2(-m12, m22)
		} else {
			e.y = 0
			e.z = m.Atan2(m21, m11)
		}

	case OrderZYX:
		e.y = m.Asin(-Clamp(m31, -1.0, 1.0))
		if m.Abs(m31) < gimbalThreshold {
			e.x = m.Atan2(m32, m33)
			e.z = m.Atan2(m21, m11)
		} else {
			e.x = 0
			e.z = m.Atan2(-m12, m22)
		}

	case OrderYZX:
		e.z = m.Asin(Clamp(m21, -1.0, 1.0))
		if m.Abs(m21) < gimbalThreshold {
			e.x = m.Atan2(-m23, m22)
			e.y = m.Atan2(-m31, m11)
		} else {
			e.x = 0
			e.y = m.Atan2(m13, m33)
		}

	case OrderXZY:
		e.z = m.Asin(-Clamp(m12, -1.0, 1.0))
		if m.Abs(m12) < gimbalThreshold {
			e.x = m.Atan2(m32, m22)
			e.y = m.Atan2(m13, m11)
		} else {
			e.x = m.Atan2(-m23, m33)
			e.y = 0
		}
	}

	e.order = order
	e.changed()
}

// SetFromQuaternion extracts euler angles from a quaternion by way of its
// rotation matrix.
func (e *Euler) SetFromQuaternion(q Quaternion, order RotationOrder) {
	e.SetFromRotationMatrix(q.ToMat4(), order)
}

// Reorder re-expresses the same rotation in a different axis sequence. The
// round trip goes through a quaternion, so angle values will generally all
// change and gimbal handling applies.
func (e *Euler) Reorder(order RotationOrder) {
	q := e.Quaternion()
	e.SetFromQuaternion(q, order)
}

// Quaternion converts the euler rotation to a quaternion. The sign pattern
// of the products follows the axis sequence.
func (e *Euler) Quaternion() Quaternion {
	c1 := m.Cos(e.x / 2)
	c2 := m.Cos(e.y / 2)
	c3 := m.Cos(e.z / 2)

	s1 := m.Sin(e.x / 2)
	s2 := m.Sin(e.y / 2)
	s3 := m.Sin(e.z / 2)

	switch e.order {
	case OrderXYZ:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderYXZ:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderZXY:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderZYX:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderYZX:
		return Quaternion{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderXZY:
		return Quaternion{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	}
	return NewQuatIdentity()
}

// Mat4 converts the euler rotation to a matrix by composing the basis
// rotations in the axis sequence, first named axis leftmost.
func (e *Euler) Mat4() Mat4 {
	rx := NewMat4RotationX(e.x)
	ry := NewMat4RotationY(e.y)
	rz := NewMat4RotationZ(e.z)

	switch e.order {
	case OrderXYZ:
		return rx.Mul(ry).Mul(rz)
	case OrderYXZ:
		return ry.Mul(rx).Mul(rz)
	case OrderZXY:
		return rz.Mul(rx).Mul(ry)
	case OrderZYX:
		return rz.Mul(ry).Mul(rx)
	case OrderYZX:
		return ry.Mul(rz).Mul(rx)
	case OrderXZY:
		return rx.Mul(rz).Mul(ry)
	}
	return NewMat4Identity()
}

// Vec3 dumps the angles as a vector, x first.
func (e *Euler) Vec3() Vec3 {
	return Vec3{e.x, e.y, e.z}
}

// Compare reports whether both rotations hold the same order and angles
// within tolerance. Angles are compared raw; equivalent rotations with
// different angle values do not compare equal.
func (e *Euler) Compare(other *Euler, tolerance float64) bool {
	if e.order != other.order {
		return false
	}
	if m.Abs(e.x-other.x) > tolerance {
		return false
	}
	if m.Abs(e.y-other.y) > tolerance {
		return false
	}
	if m.Abs(e.z-other.z) > tolerance {
		return false
	}
	return true
}
