package math

import "golang.org/x/image/math/f64"

// XYer is any value exposing planar coordinates. Constructors and ingestion
// helpers accept it so callers can hand in their own point types directly.
type XYer interface {
	XY() (x, y float64)
}

// XYZer is any value exposing spatial coordinates.
type XYZer interface {
	XYZ() (x, y, z float64)
}

var (
	_ XYer  = Vec2{}
	_ XYZer = Vec3{}
)

// PlanarPoint lifts a planar point into space at z = 0.
func PlanarPoint(p XYer) Vec3 {
	x, y := p.XY()
	return Vec3{x, y, 0}
}

// F64 returns the vector as a flat array for renderer interchange.
func (v Vec2) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// F64 returns the vector as a flat array for renderer interchange.
func (v Vec3) F64() f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

// NewVec2FromF64 builds a vector from a flat interchange array.
func NewVec2FromF64(a f64.Vec2) Vec2 {
	return Vec2{a[0], a[1]}
}

// NewVec3FromF64 builds a vector from a flat interchange array.
func NewVec3FromF64(a f64.Vec3) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// F64 returns the matrix as an interchange array. The f64 matrix types are
// documented row major while the kernel stores column major, so the
// conversion transposes.
func (mt Mat3) F64() f64.Mat3 {
	return f64.Mat3{
		mt[0], mt[3], mt[6],
		mt[1], mt[4], mt[7],
		mt[2], mt[5], mt[8],
	}
}

// NewMat3FromF64 builds a matrix from a row-major interchange array.
func NewMat3FromF64(a f64.Mat3) Mat3 {
	return Mat3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

// F64 returns the matrix as an interchange array. The f64 matrix types are
// documented row major while the kernel stores column major, so the
// conversion transposes.
func (mt Mat4) F64() f64.Mat4 {
	return f64.Mat4{
		mt[0], mt[4], mt[8], mt[12],
		mt[1], mt[5], mt[9], mt[13],
		mt[2], mt[6], mt[10], mt[14],
		mt[3], mt[7], mt[11], mt[15],
	}
}

// NewMat4FromF64 builds a matrix from a row-major interchange array.
func NewMat4FromF64(a f64.Mat4) Mat4 {
	return Mat4{
		a[0], a[4], a[8], a[12],
		a[1], a[5], a[9], a[13],
		a[2], a[6], a[10], a[14],
		a[3], a[7], a[11], a[15],
	}
}
