package math

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
)

// Mat4 is a 4x4 homogeneous transform matrix stored column major:
//
//	[0] [4] [ 8] [12]
//	[1] [5] [ 9] [13]
//	[2] [6] [10] [14]
//	[3] [7] [11] [15]
//
// Translation lives in elements 12, 13 and 14. The zero value is the zero
// matrix, not the identity.
type Mat4 [16]float64

// Creates and returns an identity matrix.
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out[0] = 1.0
	out[5] = 1.0
	out[10] = 1.0
	out[15] = 1.0
	return out
}

// NewMat4FromSlice builds a matrix from 16 column-major elements.
func NewMat4FromSlice(elements []float64) (Mat4, error) {
	if len(elements) != 16 {
		return Mat4{}, core.ParameterError("mat4 needs 16 elements, got %d", len(elements))
	}
	out := Mat4{}
	copy(out[:], elements)
	return out, nil
}

// Creates and returns a translation matrix from the given position.
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out[12] = position.X
	out[13] = position.Y
	out[14] = position.Z
	return out
}

// Creates and returns a scale matrix from the given scale factors.
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out[0] = scale.X
	out[5] = scale.Y
	out[10] = scale.Z
	return out
}

// Creates and returns a rotation matrix about the x axis.
func NewMat4RotationX(angleRadians float64) Mat4 {
	out := NewMat4Identity()
	c := m.Cos(angleRadians)
	s := m.Sin(angleRadians)
	out[5] = c
	out[6] = s
	out[9] = -s
	out[10] = c
	return out
}

// Creates and returns a rotation matrix about the y axis.
func NewMat4RotationY(angleRadians float64) Mat4 {
	out := NewMat4Identity()
	c := m.Cos(angleRadians)
	s := m.Sin(angleRadians)
	out[0] = c
	out[2] = -s
	out[8] = s
	out[10] = c
	return out
}

// Creates and returns a rotation matrix about the z axis.
func NewMat4RotationZ(angleRadians float64) Mat4 {
	out := NewMat4Identity()
	c := m.Cos(angleRadians)
	s := m.Sin(angleRadians)
	out[0] = c
	out[1] = s
	out[4] = -s
	out[5] = c
	return out
}

// Creates and returns a rotation matrix about an arbitrary unit axis.
func NewMat4RotationAxis(axis Vec3, angleRadians float64) Mat4 {
	c := m.Cos(angleRadians)
	s := m.Sin(angleRadians)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	out := NewMat4Identity()
	out[0] = t*x*x + c
	out[1] = t*x*y + s*z
	out[2] = t*x*z - s*y
	out[4] = t*x*y - s*z
	out[5] = t*y*y + c
	out[6] = t*y*z + s*x
	out[8] = t*x*z + s*y
	out[9] = t*y*z - s*x
	out[10] = t*z*z + c
	return out
}

// NewMat4Compose builds a transform from translation, rotation and scale
// applied in scale, rotate, translate order.
func NewMat4Compose(position Vec3, rotation Quaternion, scale Vec3) Mat4 {
	out := rotation.ToMat4()
	out[0] *= scale.X
	out[1] *= scale.X
	out[2] *= scale.X
	out[4] *= scale.Y
	out[5] *= scale.Y
	out[6] *= scale.Y
	out[8] *= scale.Z
	out[9] *= scale.Z
	out[10] *= scale.Z
	out[12] = position.X
	out[13] = position.Y
	out[14] = position.Z
	return out
}

// Creates and returns an orthographic projection matrix. Typically used for
// flat or 2D views.
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float64) Mat4 {
	out := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out[0] = -2.0 * lr
	out[5] = -2.0 * bt
	out[10] = 2.0 * nf

	out[12] = (left + right) * lr
	out[13] = (top + bottom) * bt
	out[14] = (farClip + nearClip) * nf
	return out
}

// Creates and returns a perspective projection matrix. Typically used for
// 3d views.
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float64) Mat4 {
	halfTanFov := m.Tan(fovRadians * 0.5)
	out := Mat4{}
	out[0] = 1.0 / (aspectRatio * halfTanFov)
	out[5] = 1.0 / halfTanFov
	out[10] = -((farClip + nearClip) / (farClip - nearClip))
	out[11] = -1.0
	out[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return out
}

// Creates and returns a look-at matrix, a view looking at target from
// position.
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := target.Sub(position).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	out := Mat4{}
	out[0] = xAxis.X
	out[1] = yAxis.X
	out[2] = -zAxis.X
	out[4] = xAxis.Y
	out[5] = yAxis.Y
	out[6] = -zAxis.Y
	out[8] = xAxis.Z
	out[9] = yAxis.Z
	out[10] = -zAxis.Z
	out[12] = -xAxis.Dot(position)
	out[13] = -yAxis.Dot(position)
	out[14] = zAxis.Dot(position)
	out[15] = 1.0
	return out
}

// Mul returns mt x other, the transform that applies other first and mt
// second.
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += mt[i*4+row] * other[col*4+i]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Premul returns other x mt, the transform that applies mt first and other
// second.
func (mt Mat4) Premul(other Mat4) Mat4 {
	return other.Mul(mt)
}

// MulScalar scales every element by s.
func (mt Mat4) MulScalar(s float64) Mat4 {
	out := Mat4{}
	for i := range mt {
		out[i] = mt[i] * s
	}
	return out
}

// Returns a transposed copy of the provided matrix (rows->columns).
func (mt Mat4) Transposed() Mat4 {
	return Mat4{
		mt[0], mt[4], mt[8], mt[12],
		mt[1], mt[5], mt[9], mt[13],
		mt[2], mt[6], mt[10], mt[14],
		mt[3], mt[7], mt[11], mt[15],
	}
}

// Determinant returns the determinant of the matrix.
func (mt Mat4) Determinant() float64 {
	t0 := mt[10] * mt[15]
	t1 := mt[14] * mt[11]
	t2 := mt[6] * mt[15]
	t3 := mt[14] * mt[7]
	t4 := mt[6] * mt[11]
	t5 := mt[10] * mt[7]
	t6 := mt[2] * mt[15]
	t7 := mt[14] * mt[3]
	t8 := mt[2] * mt[11]
	t9 := mt[10] * mt[3]
	t10 := mt[2] * mt[7]
	t11 := mt[6] * mt[3]

	o0 := (t0*mt[5] + t3*mt[9] + t4*mt[13]) - (t1*mt[5] + t2*mt[9] + t5*mt[13])
	o1 := (t1*mt[1] + t6*mt[9] + t9*mt[13]) - (t0*mt[1] + t7*mt[9] + t8*mt[13])
	o2 := (t2*mt[1] + t7*mt[5] + t10*mt[13]) - (t3*mt[1] + t6*mt[5] + t11*mt[13])
	o3 := (t5*mt[1] + t8*mt[5] + t11*mt[9]) - (t4*mt[1] + t9*mt[5] + t10*mt[9])

	return mt[0]*o0 + mt[4]*o1 + mt[8]*o2 + mt[12]*o3
}

// Creates and returns an inverse of the provided matrix. A singular matrix,
// determinant exactly 0, has no inverse and yields the zero matrix.
func (mt Mat4) Inverse() Mat4 {
	t0 := mt[10] * mt[15]
	t1 := mt[14] * mt[11]
	t2 := mt[6] * mt[15]
	t3 := mt[14] * mt[7]
	t4 := mt[6] * mt[11]
	t5 := mt[10] * mt[7]
	t6 := mt[2] * mt[15]
	t7 := mt[14] * mt[3]
	t8 := mt[2] * mt[11]
	t9 := mt[10] * mt[3]
	t10 := mt[2] * mt[7]
	t11 := mt[6] * mt[3]
	t12 := mt[8] * mt[13]
	t13 := mt[12] * mt[9]
	t14 := mt[4] * mt[13]
	t15 := mt[12] * mt[5]
	t16 := mt[4] * mt[9]
	t17 := mt[8] * mt[5]
	t18 := mt[0] * mt[13]
	t19 := mt[12] * mt[1]
	t20 := mt[0] * mt[9]
	t21 := mt[8] * mt[1]
	t22 := mt[0] * mt[5]
	t23 := mt[4] * mt[1]

	out := Mat4{}

	out[0] = (t0*mt[5] + t3*mt[9] + t4*mt[13]) - (t1*mt[5] + t2*mt[9] + t5*mt[13])
	out[1] = (t1*mt[1] + t6*mt[9] + t9*mt[13]) - (t0*mt[1] + t7*mt[9] + t8*mt[13])
	out[2] = (t2*mt[1] + t7*mt[5] + t10*mt[13]) - (t3*mt[1] + t6*mt[5] + t11*mt[13])
	out[3] = (t5*mt[1] + t8*mt[5] + t11*mt[9]) - (t4*mt[1] + t9*mt[5] + t10*mt[9])

	det := mt[0]*out[0] + mt[4]*out[1] + mt[8]*out[2] + mt[12]*out[3]
	if det == 0 {
		return Mat4{}
	}
	d := 1.0 / det

	out[0] = d * out[0]
	out[1] = d * out[1]
	out[2] = d * out[2]
	out[3] = d * out[3]
	out[4] = d * ((t1*mt[4] + t2*mt[8] + t5*mt[12]) - (t0*mt[4] + t3*mt[8] + t4*mt[12]))
	out[5] = d * ((t0*mt[0] + t7*mt[8] + t8*mt[12]) - (t1*mt[0] + t6*mt[8] + t9*mt[12]))
	out[6] = d * ((t3*mt[0] + t6*mt[4] + t11*mt[12]) - (t2*mt[0] + t7*mt[4] + t10*mt[12]))
	out[7] = d * ((t4*mt[0] + t9*mt[4] + t10*mt[8]) - (t5*mt[0] + t8*mt[4] + t11*mt[8]))
	out[8] = d * ((t12*mt[7] + t15*mt[11] + t16*mt[15]) - (t13*mt[7] + t14*mt[11] + t17*mt[15]))
	out[9] = d * ((t13*mt[3] + t18*mt[11] + t21*mt[15]) - (t12*mt[3] + t19*mt[11] + t20*mt[15]))
	out[10] = d * ((t14*mt[3] + t19*mt[7] + t22*mt[15]) - (t15*mt[3] + t18*mt[7] + t23*mt[15]))
	out[11] = d * ((t17*mt[3] + t20*mt[7] + t23*mt[11]) - (t16*mt[3] + t21*mt[7] + t22*mt[11]))
	out[12] = d * ((t14*mt[10] + t17*mt[14] + t13*mt[6]) - (t16*mt[14] + t12*mt[6] + t15*mt[10]))
	out[13] = d * ((t20*mt[14] + t12*mt[2] + t19*mt[10]) - (t18*mt[10] + t21*mt[14] + t13*mt[2]))
	out[14] = d * ((t18*mt[6] + t23*mt[14] + t15*mt[2]) - (t22*mt[14] + t14*mt[2] + t19*mt[6]))
	out[15] = d * ((t22*mt[10] + t16*mt[2] + t21*mt[6]) - (t20*mt[6] + t23*mt[10] + t17*mt[2]))

	return out
}

// Decompose splits the matrix into translation, rotation and scale. A
// negative determinant flips the sign of the x scale. Zero scale components
// are treated as 1 while extracting the rotation so the result stays finite.
func (mt Mat4) Decompose() (position Vec3, rotation Quaternion, scale Vec3) {
	sx := NewVec3(mt[0], mt[1], mt[2]).Length()
	sy := NewVec3(mt[4], mt[5], mt[6]).Length()
	sz := NewVec3(mt[8], mt[9], mt[10]).Length()

	if mt.Determinant() < 0 {
		sx = -sx
	}

	position = NewVec3(mt[12], mt[13], mt[14])
	scale = NewVec3(sx, sy, sz)

	invSX, invSY, invSZ := 1.0, 1.0, 1.0
	if sx != 0 {
		invSX = 1.0 / sx
	}
	if sy != 0 {
		invSY = 1.0 / sy
	}
	if sz != 0 {
		invSZ = 1.0 / sz
	}

	rot := mt
	rot[0] *= invSX
	rot[1] *= invSX
	rot[2] *= invSX
	rot[4] *= invSY
	rot[5] *= invSY
	rot[6] *= invSY
	rot[8] *= invSZ
	rot[9] *= invSZ
	rot[10] *= invSZ

	rotation = NewQuatFromMat4(rot)
	return position, rotation, scale
}

// Position returns the translation column.
func (mt Mat4) Position() Vec3 {
	return NewVec3(mt[12], mt[13], mt[14])
}

// MaxScaleOnAxis returns the largest scale factor the matrix applies to any
// axis.
func (mt Mat4) MaxScaleOnAxis() float64 {
	sqX := mt[0]*mt[0] + mt[1]*mt[1] + mt[2]*mt[2]
	sqY := mt[4]*mt[4] + mt[5]*mt[5] + mt[6]*mt[6]
	sqZ := mt[8]*mt[8] + mt[9]*mt[9] + mt[10]*mt[10]
	return m.Sqrt(m.Max(sqX, m.Max(sqY, sqZ)))
}

// Returns a forward vector relative to the provided matrix.
func (mt Mat4) Forward() Vec3 {
	return NewVec3(-mt[2], -mt[6], -mt[10]).Normalize()
}

// Returns a backward vector relative to the provided matrix.
func (mt Mat4) Backward() Vec3 {
	return NewVec3(mt[2], mt[6], mt[10]).Normalize()
}

// Returns an upward vector relative to the provided matrix.
func (mt Mat4) Up() Vec3 {
	return NewVec3(mt[1], mt[5], mt[9]).Normalize()
}

// Returns a downward vector relative to the provided matrix.
func (mt Mat4) Down() Vec3 {
	return NewVec3(-mt[1], -mt[5], -mt[9]).Normalize()
}

// Returns a left vector relative to the provided matrix.
func (mt Mat4) Left() Vec3 {
	return NewVec3(-mt[0], -mt[4], -mt[8]).Normalize()
}

// Returns a right vector relative to the provided matrix.
func (mt Mat4) Right() Vec3 {
	return NewVec3(mt[0], mt[4], mt[8]).Normalize()
}

// At returns the element at the given row and column.
func (mt Mat4) At(row, col int) (float64, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, core.IndexError(col*4+row, 16)
	}
	return mt[col*4+row], nil
}

// Slice returns the elements as a fresh column-major slice.
func (mt Mat4) Slice() []float64 {
	out := make([]float64, 16)
	copy(out, mt[:])
	return out
}

// Compares all elements of mt and other and ensures the difference is less
// than tolerance.
func (mt Mat4) Compare(other Mat4, tolerance float64) bool {
	for i := range mt {
		if m.Abs(mt[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}
