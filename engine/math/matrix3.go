package math

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
)

// Mat3 is a 3x3 matrix stored column major:
//
//	[0] [3] [6]
//	[1] [4] [7]
//	[2] [5] [8]
//
// It carries planar affine transforms, with translation in elements 6 and 7,
// and normal matrices for transforming direction vectors. The zero value is
// the zero matrix, not the identity. Mat3 and Mat4 are distinct types; use
// NewMat3FromMat4 to move between them.
type Mat3 [9]float64

// Creates and returns an identity matrix.
func NewMat3Identity() Mat3 {
	out := Mat3{}
	out[0] = 1.0
	out[4] = 1.0
	out[8] = 1.0
	return out
}

// NewMat3FromSlice builds a matrix from 9 column-major elements.
func NewMat3FromSlice(elements []float64) (Mat3, error) {
	if len(elements) != 9 {
		return Mat3{}, core.ParameterError("mat3 needs 9 elements, got %d", len(elements))
	}
	out := Mat3{}
	copy(out[:], elements)
	return out, nil
}

// NewMat3FromMat4 extracts the upper-left 3x3 block.
func NewMat3FromMat4(mat Mat4) Mat3 {
	return Mat3{
		mat[0], mat[1], mat[2],
		mat[4], mat[5], mat[6],
		mat[8], mat[9], mat[10],
	}
}

// Creates and returns a planar translation matrix.
func NewMat3Translation(tx, ty float64) Mat3 {
	out := NewMat3Identity()
	out[6] = tx
	out[7] = ty
	return out
}

// Creates and returns a planar rotation matrix, counterclockwise positive.
func NewMat3Rotation(theta float64) Mat3 {
	c := m.Cos(theta)
	s := m.Sin(theta)
	out := NewMat3Identity()
	out[0] = c
	out[1] = s
	out[3] = -s
	out[4] = c
	return out
}

// Creates and returns a planar scale matrix.
func NewMat3Scale(sx, sy float64) Mat3 {
	out := NewMat3Identity()
	out[0] = sx
	out[4] = sy
	return out
}

// NewMat3PlanarTransform composes a planar transform that scales by (sx, sy)
// and rotates by rotation about the pivot (cx, cy), then translates by
// (tx, ty). It is the usual texture coordinate transform.
func NewMat3PlanarTransform(tx, ty, sx, sy, rotation, cx, cy float64) Mat3 {
	c := m.Cos(rotation)
	s := m.Sin(rotation)
	out := Mat3{}
	out[0] = sx * c
	out[1] = -sy * s
	out[2] = 0
	out[3] = sx * s
	out[4] = sy * c
	out[5] = 0
	out[6] = -sx*(c*cx+s*cy) + cx + tx
	out[7] = -sy*(-s*cx+c*cy) + cy + ty
	out[8] = 1
	return out
}

// Mul returns mt x other, the transform that applies other first and mt
// second.
func (mt Mat3) Mul(other Mat3) Mat3 {
	out := Mat3{}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := 0.0
			for i := 0; i < 3; i++ {
				sum += mt[i*3+row] * other[col*3+i]
			}
			out[col*3+row] = sum
		}
	}
	return out
}

// Premul returns other x mt, the transform that applies mt first and other
// second.
func (mt Mat3) Premul(other Mat3) Mat3 {
	return other.Mul(mt)
}

// MulScalar scales every element by s.
func (mt Mat3) MulScalar(s float64) Mat3 {
	out := Mat3{}
	for i := range mt {
		out[i] = mt[i] * s
	}
	return out
}

// Translated applies a translation after the existing transform.
func (mt Mat3) Translated(tx, ty float64) Mat3 {
	return NewMat3Translation(tx, ty).Mul(mt)
}

// Rotated applies a rotation after the existing transform.
func (mt Mat3) Rotated(theta float64) Mat3 {
	return NewMat3Rotation(theta).Mul(mt)
}

// Scaled applies a scale after the existing transform.
func (mt Mat3) Scaled(sx, sy float64) Mat3 {
	return NewMat3Scale(sx, sy).Mul(mt)
}

// Returns a transposed copy of the provided matrix (rows->columns).
func (mt Mat3) Transposed() Mat3 {
	return Mat3{
		mt[0], mt[3], mt[6],
		mt[1], mt[4], mt[7],
		mt[2], mt[5], mt[8],
	}
}

// Determinant returns the determinant of the matrix.
func (mt Mat3) Determinant() float64 {
	c11 := mt[4]*mt[8] - mt[7]*mt[5]
	c12 := mt[7]*mt[2] - mt[1]*mt[8]
	c13 := mt[1]*mt[5] - mt[4]*mt[2]
	return mt[0]*c11 + mt[3]*c12 + mt[6]*c13
}

// Creates and returns an inverse of the provided matrix. A singular matrix,
// determinant exactly 0, has no inverse and yields the zero matrix.
func (mt Mat3) Inverse() Mat3 {
	n11, n21, n31 := mt[0], mt[1], mt[2]
	n12, n22, n32 := mt[3], mt[4], mt[5]
	n13, n23, n33 := mt[6], mt[7], mt[8]

	c11 := n22*n33 - n23*n32
	c12 := n23*n31 - n21*n33
	c13 := n21*n32 - n22*n31

	det := n11*c11 + n12*c12 + n13*c13
	if det == 0 {
		return Mat3{}
	}
	d := 1.0 / det

	out := Mat3{}
	out[0] = c11 * d
	out[1] = c12 * d
	out[2] = c13 * d
	out[3] = (n13*n32 - n12*n33) * d
	out[4] = (n11*n33 - n13*n31) * d
	out[5] = (n12*n31 - n11*n32) * d
	out[6] = (n12*n23 - n13*n22) * d
	out[7] = (n13*n21 - n11*n23) * d
	out[8] = (n11*n22 - n12*n21) * d
	return out
}

// NewMat3NormalMatrix derives the matrix that keeps normals perpendicular
// under mat: the inverse transpose of its upper-left 3x3 block. A singular
// block yields the zero matrix.
func NewMat3NormalMatrix(mat Mat4) Mat3 {
	return NewMat3FromMat4(mat).Inverse().Transposed()
}

// At returns the element at the given row and column.
func (mt Mat3) At(row, col int) (float64, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, core.IndexError(col*3+row, 9)
	}
	return mt[col*3+row], nil
}

// Slice returns the elements as a fresh column-major slice.
func (mt Mat3) Slice() []float64 {
	out := make([]float64, 9)
	copy(out, mt[:])
	return out
}

// Compares all elements of mt and other and ensures the difference is less
// than tolerance.
func (mt Mat3) Compare(other Mat3, tolerance float64) bool {
	for i := range mt {
		if m.Abs(mt[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}
