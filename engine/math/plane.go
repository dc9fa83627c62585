package math

import (
	m "math"
)

// NewPlane builds a plane from a unit normal and its signed constant.
func NewPlane(normal Vec3, constant float64) Plane {
	return Plane{Normal: normal, Constant: constant}
}

// NewPlaneFromNormalAndPoint builds the plane through point with the given
// unit normal.
func NewPlaneFromNormalAndPoint(normal, point Vec3) Plane {
	return Plane{Normal: normal, Constant: -point.Dot(normal)}
}

// NewPlaneFromCoplanarPoints builds the plane through three points. The
// normal follows the right hand rule around a, b, c. Collinear points have
// no plane and yield a zero normal.
func NewPlaneFromCoplanarPoints(a, b, c Vec3) Plane {
	normal := c.Sub(b).Cross(a.Sub(b)).Normalize()
	return NewPlaneFromNormalAndPoint(normal, a)
}

// Normalize rescales so the normal is unit length, adjusting the constant to
// keep the same plane. A zero normal is returned unchanged.
func (p Plane) Normalize() Plane {
	length := p.Normal.Length()
	if length == 0 {
		return p
	}
	inv := 1.0 / length
	return Plane{Normal: p.Normal.MulScalar(inv), Constant: p.Constant * inv}
}

// Negate flips the plane to face the other way.
func (p Plane) Negate() Plane {
	return Plane{Normal: p.Normal.Negate(), Constant: -p.Constant}
}

// DistanceToPoint returns the signed distance, positive on the normal side.
func (p Plane) DistanceToPoint(point Vec3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// ProjectPoint drops the point perpendicularly onto the plane.
func (p Plane) ProjectPoint(point Vec3) Vec3 {
	return point.Sub(p.Normal.MulScalar(p.DistanceToPoint(point)))
}

// CoplanarPoint returns a point on the plane, the one nearest the origin.
func (p Plane) CoplanarPoint() Vec3 {
	return p.Normal.MulScalar(-p.Constant)
}

// Transform applies a homogeneous transform to the plane. The normal moves
// through the normal matrix so it stays perpendicular under non-uniform
// scale, and the constant is re-derived from a transformed coplanar point.
func (p Plane) Transform(mat Mat4) Plane {
	normalMatrix := NewMat3NormalMatrix(mat)
	reference := p.CoplanarPoint().Transform(mat)
	normal := p.Normal.TransformMat3(normalMatrix).Normalize()
	return Plane{Normal: normal, Constant: -reference.Dot(normal)}
}

// Compares normals and constants of p and other within tolerance.
func (p Plane) Compare(other Plane, tolerance float64) bool {
	if !p.Normal.Compare(other.Normal, tolerance) {
		return false
	}
	return m.Abs(p.Constant-other.Constant) <= tolerance
}
