package math

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
)

// Creates and returns a new 2-element vector using the supplied values.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Creates and returns a 2-component vector with all components set to 0.0.
func NewVec2Zero() Vec2 {
	return Vec2{}
}

// Creates and returns a 2-component vector with all components set to 1.0.
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

// Creates and returns a 2-component vector pointing up (0, 1).
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

// Creates and returns a 2-component vector pointing right (1, 0).
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// NewVec2From builds a vector from any value exposing planar coordinates.
func NewVec2From(p XYer) Vec2 {
	x, y := p.XY()
	return Vec2{x, y}
}

// XY returns the components, satisfying XYer.
func (v Vec2) XY() (float64, float64) {
	return v.X, v.Y
}

// Adds other to v and returns a copy of the result.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds s to each component.
func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// Subtracts other from v and returns a copy of the result.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Multiplies v by other componentwise and returns a copy of the result.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// MulScalar scales each component by s.
func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Divides v by other componentwise and returns a copy of the result.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component by s.
func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Negate returns the vector pointing the opposite way.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Abs returns the componentwise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{m.Abs(v.X), m.Abs(v.Y)}
}

// Floor returns the componentwise floor.
func (v Vec2) Floor() Vec2 {
	return Vec2{m.Floor(v.X), m.Floor(v.Y)}
}

// Ceil returns the componentwise ceiling.
func (v Vec2) Ceil() Vec2 {
	return Vec2{m.Ceil(v.X), m.Ceil(v.Y)}
}

// Round returns the componentwise nearest integer, half away from zero.
func (v Vec2) Round() Vec2 {
	return Vec2{m.Round(v.X), m.Round(v.Y)}
}

// Min returns the componentwise minimum of v and other.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{m.Min(v.X, other.X), m.Min(v.Y, other.Y)}
}

// Max returns the componentwise maximum of v and other.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{m.Max(v.X, other.X), m.Max(v.Y, other.Y)}
}

// ClampVec clamps each component between the matching components of lo and
// hi. Assumes lo <= hi componentwise.
func (v Vec2) ClampVec(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// ClampScalar clamps each component between lo and hi.
func (v Vec2) ClampScalar(lo, hi float64) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}

// ClampLength keeps the direction and clamps the length between lo and hi.
// The zero vector has no direction and is returned unchanged.
func (v Vec2) ClampLength(lo, hi float64) Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.DivScalar(length).MulScalar(Clamp(length, lo, hi))
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the signed magnitude of the out-of-plane cross product,
// positive when other lies counterclockwise of v.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Returns the squared length of the provided vector.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Returns the length of the provided vector.
func (v Vec2) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

// ManhattanLength returns the sum of the absolute components.
func (v Vec2) ManhattanLength() float64 {
	return m.Abs(v.X) + m.Abs(v.Y)
}

// Normalize returns a unit copy of the vector. The zero vector has no
// direction and is returned unchanged rather than filled with NaNs.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec2{v.X / length, v.Y / length}
}

// AngleTo returns the unsigned angle to other in radians. When either
// vector has zero length the angle is undefined and π/2 is returned.
func (v Vec2) AngleTo(other Vec2) float64 {
	denominator := m.Sqrt(v.LengthSquared() * other.LengthSquared())
	if denominator == 0 {
		return m.Pi / 2
	}
	theta := v.Dot(other) / denominator
	return m.Acos(Clamp(theta, -1.0, 1.0))
}

// Compares all elements of v and other and ensures the difference is less
// than tolerance.
func (v Vec2) Compare(other Vec2, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}
	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// Returns the distance between v and other.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Returns the squared distance between v and other.
func (v Vec2) DistanceSquared(other Vec2) float64 {
	return v.Sub(other).LengthSquared()
}

// ManhattanDistance returns the sum of absolute componentwise differences.
func (v Vec2) ManhattanDistance(other Vec2) float64 {
	return m.Abs(v.X-other.X) + m.Abs(v.Y-other.Y)
}

// Lerp interpolates towards other by t, unclamped.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// RotateAround rotates the point by angle radians about center.
func (v Vec2) RotateAround(center Vec2, angle float64) Vec2 {
	c, s := m.Cos(angle), m.Sin(angle)
	x := v.X - center.X
	y := v.Y - center.Y
	return Vec2{
		x*c - y*s + center.X,
		x*s + y*c + center.Y,
	}
}

// Transform applies a planar affine matrix to the point.
func (v Vec2) Transform(mat Mat3) Vec2 {
	return Vec2{
		mat[0]*v.X + mat[3]*v.Y + mat[6],
		mat[1]*v.X + mat[4]*v.Y + mat[7],
	}
}

// Component returns the i-th component, x first.
func (v Vec2) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, core.IndexError(i, 2)
}

// Components returns the components as an array, x first.
func (v Vec2) Components() [2]float64 {
	return [2]float64{v.X, v.Y}
}
