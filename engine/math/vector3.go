package math

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
)

// Creates and returns a new 3-element vector using the supplied values.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Creates and returns a 3-component vector with all components set to 0.0.
func NewVec3Zero() Vec3 {
	return Vec3{}
}

// Creates and returns a 3-component vector with all components set to 1.0.
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

// Creates and returns a 3-component vector pointing up (0, 1, 0).
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

// Creates and returns a 3-component vector pointing down (0, -1, 0).
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

// Creates and returns a 3-component vector pointing left (-1, 0, 0).
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

// Creates and returns a 3-component vector pointing right (1, 0, 0).
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

// Creates and returns a 3-component vector pointing forward (0, 0, -1).
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

// Creates and returns a 3-component vector pointing backward (0, 0, 1).
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// NewVec3From builds a vector from any value exposing spatial coordinates.
func NewVec3From(p XYZer) Vec3 {
	x, y, z := p.XYZ()
	return Vec3{x, y, z}
}

// XYZ returns the components, satisfying XYZer.
func (v Vec3) XYZ() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

// ToVec2 drops the z component.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// Adds other to v and returns a copy of the result.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to each component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtracts other from v and returns a copy of the result.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiplies v by other componentwise and returns a copy of the result.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar scales each component by s.
func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Divides v by other componentwise and returns a copy of the result.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component by s.
func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns the vector pointing the opposite way.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Abs returns the componentwise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{m.Abs(v.X), m.Abs(v.Y), m.Abs(v.Z)}
}

// Floor returns the componentwise floor.
func (v Vec3) Floor() Vec3 {
	return Vec3{m.Floor(v.X), m.Floor(v.Y), m.Floor(v.Z)}
}

// Ceil returns the componentwise ceiling.
func (v Vec3) Ceil() Vec3 {
	return Vec3{m.Ceil(v.X), m.Ceil(v.Y), m.Ceil(v.Z)}
}

// Round returns the componentwise nearest integer, half away from zero.
func (v Vec3) Round() Vec3 {
	return Vec3{m.Round(v.X), m.Round(v.Y), m.Round(v.Z)}
}

// Min returns the componentwise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{m.Min(v.X, other.X), m.Min(v.Y, other.Y), m.Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{m.Max(v.X, other.X), m.Max(v.Y, other.Y), m.Max(v.Z, other.Z)}
}

// ClampVec clamps each component between the matching components of lo and
// hi. Assumes lo <= hi componentwise.
func (v Vec3) ClampVec(lo, hi Vec3) Vec3 {
	return Vec3{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampScalar clamps each component between lo and hi.
func (v Vec3) ClampScalar(lo, hi float64) Vec3 {
	return Vec3{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi)}
}

// ClampLength keeps the direction and clamps the length between lo and hi.
// The zero vector has no direction and is returned unchanged.
func (v Vec3) ClampLength(lo, hi float64) Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.DivScalar(length).MulScalar(Clamp(length, lo, hi))
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Returns the squared length of the provided vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Returns the length of the provided vector.
func (v Vec3) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

// ManhattanLength returns the sum of the absolute components.
func (v Vec3) ManhattanLength() float64 {
	return m.Abs(v.X) + m.Abs(v.Y) + m.Abs(v.Z)
}

// Normalize returns a unit copy of the vector. The zero vector has no
// direction and is returned unchanged rather than filled with NaNs.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// AngleTo returns the unsigned angle to other in radians. When either
// vector has zero length the angle is undefined and π/2 is returned.
func (v Vec3) AngleTo(other Vec3) float64 {
	denominator := m.Sqrt(v.LengthSquared() * other.LengthSquared())
	if denominator == 0 {
		return m.Pi / 2
	}
	theta := v.Dot(other) / denominator
	return m.Acos(Clamp(theta, -1.0, 1.0))
}

// Compares all elements of v and other and ensures the difference is less
// than tolerance.
func (v Vec3) Compare(other Vec3, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}
	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if m.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// Returns the distance between v and other.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Returns the squared distance between v and other.
func (v Vec3) DistanceSquared(other Vec3) float64 {
	return v.Sub(other).LengthSquared()
}

// ManhattanDistance returns the sum of absolute componentwise differences.
func (v Vec3) ManhattanDistance(other Vec3) float64 {
	return m.Abs(v.X-other.X) + m.Abs(v.Y-other.Y) + m.Abs(v.Z-other.Z)
}

// Lerp interpolates towards other by t, unclamped.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
	}
}

// Transform applies a homogeneous matrix to the point with a full projective
// divide. Affine matrices keep w at 1, so the divide is a no-op for them; a
// degenerate w of 0 skips the divide instead of producing infinities.
func (v Vec3) Transform(mat Mat4) Vec3 {
	w := mat[3]*v.X + mat[7]*v.Y + mat[11]*v.Z + mat[15]
	out := Vec3{
		mat[0]*v.X + mat[4]*v.Y + mat[8]*v.Z + mat[12],
		mat[1]*v.X + mat[5]*v.Y + mat[9]*v.Z + mat[13],
		mat[2]*v.X + mat[6]*v.Y + mat[10]*v.Z + mat[14],
	}
	if w != 0 && w != 1 {
		return out.DivScalar(w)
	}
	return out
}

// TransformDirection applies only the rotational part of a homogeneous
// matrix, ignoring translation, and renormalizes the result.
func (v Vec3) TransformDirection(mat Mat4) Vec3 {
	out := Vec3{
		mat[0]*v.X + mat[4]*v.Y + mat[8]*v.Z,
		mat[1]*v.X + mat[5]*v.Y + mat[9]*v.Z,
		mat[2]*v.X + mat[6]*v.Y + mat[10]*v.Z,
	}
	return out.Normalize()
}

// TransformMat3 applies a 3x3 matrix, most commonly a normal matrix.
func (v Vec3) TransformMat3(mat Mat3) Vec3 {
	return Vec3{
		mat[0]*v.X + mat[3]*v.Y + mat[6]*v.Z,
		mat[1]*v.X + mat[4]*v.Y + mat[7]*v.Z,
		mat[2]*v.X + mat[5]*v.Y + mat[8]*v.Z,
	}
}

// Rotate applies a unit quaternion to the vector using the two-cross
// expansion of the quaternion sandwich product.
func (v Vec3) Rotate(q Quaternion) Vec3 {
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		v.X + q.W*tx + q.Y*tz - q.Z*ty,
		v.Y + q.W*ty + q.Z*tx - q.X*tz,
		v.Z + q.W*tz + q.X*ty - q.Y*tx,
	}
}

// RotateAxisAngle rotates the vector by angle radians about the given axis.
// The axis is expected to be unit length.
func (v Vec3) RotateAxisAngle(axis Vec3, angle float64) Vec3 {
	return v.Rotate(NewQuatFromAxisAngle(axis, angle, false))
}

// RotateEuler rotates the vector by an euler rotation.
func (v Vec3) RotateEuler(e Euler) Vec3 {
	return v.Rotate(e.Quaternion())
}

// Component returns the i-th component, x first.
func (v Vec3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, core.IndexError(i, 3)
}

// Components returns the components as an array, x first.
func (v Vec3) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
