package math

import (
	m "math"

	"github.com/astaben/tracery/engine/core"
)

// Creates and returns empty extents: Min at +Inf, Max at -Inf. Folding in
// any point makes it the only corner, and unions treat empty as the neutral
// element. Emptiness, not a zero box, is the "no geometry" state.
func NewExtents3D() Extents3D {
	return Extents3D{
		Min: Vec3{m.Inf(1), m.Inf(1), m.Inf(1)},
		Max: Vec3{m.Inf(-1), m.Inf(-1), m.Inf(-1)},
	}
}

// NewExtents3DFromMinMax builds extents from explicit corners.
func NewExtents3DFromMinMax(min, max Vec3) Extents3D {
	return Extents3D{Min: min, Max: max}
}

// NewExtents3DFromPoints builds the tightest extents containing all points.
// No points yields empty extents.
func NewExtents3DFromPoints(points []Vec3) Extents3D {
	out := NewExtents3D()
	for _, p := range points {
		out = out.ExpandByPoint(p)
	}
	return out
}

// NewExtents3DFromCenterAndSize builds extents spanning size centered on
// center.
func NewExtents3DFromCenterAndSize(center, size Vec3) Extents3D {
	half := size.MulScalar(0.5)
	return Extents3D{Min: center.Sub(half), Max: center.Add(half)}
}

// NewExtents3DFromSlice builds extents over packed xyz triples, the layout
// vertex buffers use.
func NewExtents3DFromSlice(coords []float64) (Extents3D, error) {
	if len(coords)%3 != 0 {
		return Extents3D{}, core.ParameterError("extents need xyz triples, got %d values", len(coords))
	}
	out := NewExtents3D()
	for i := 0; i < len(coords); i += 3 {
		out = out.ExpandByPoint(Vec3{coords[i], coords[i+1], coords[i+2]})
	}
	return out, nil
}

// IsEmpty reports whether the extents contain no points. Any axis with
// max < min makes the whole extents empty.
func (e Extents3D) IsEmpty() bool {
	return e.Max.X < e.Min.X || e.Max.Y < e.Min.Y || e.Max.Z < e.Min.Z
}

// ExpandByPoint grows the extents to contain the point.
func (e Extents3D) ExpandByPoint(p Vec3) Extents3D {
	return Extents3D{Min: e.Min.Min(p), Max: e.Max.Max(p)}
}

// ExpandByVector grows the extents by the vector on each side.
func (e Extents3D) ExpandByVector(v Vec3) Extents3D {
	return Extents3D{Min: e.Min.Sub(v), Max: e.Max.Add(v)}
}

// ExpandByScalar grows the extents by s on each side.
func (e Extents3D) ExpandByScalar(s float64) Extents3D {
	return Extents3D{Min: e.Min.AddScalar(-s), Max: e.Max.AddScalar(s)}
}

// Union returns the smallest extents containing both operands. Empty
// operands contribute nothing.
func (e Extents3D) Union(other Extents3D) Extents3D {
	return Extents3D{Min: e.Min.Min(other.Min), Max: e.Max.Max(other.Max)}
}

// Intersect returns the overlap of both operands. Extents that do not
// overlap produce the canonical empty extents, not a negative-size box.
func (e Extents3D) Intersect(other Extents3D) Extents3D {
	out := Extents3D{Min: e.Min.Max(other.Min), Max: e.Max.Min(other.Max)}
	if out.IsEmpty() {
		return NewExtents3D()
	}
	return out
}

// ContainsPoint reports whether the point lies inside or on the boundary.
func (e Extents3D) ContainsPoint(p Vec3) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}

// ContainsBox reports whether other lies fully inside e.
func (e Extents3D) ContainsBox(other Extents3D) bool {
	return e.Min.X <= other.Min.X && other.Max.X <= e.Max.X &&
		e.Min.Y <= other.Min.Y && other.Max.Y <= e.Max.Y &&
		e.Min.Z <= other.Min.Z && other.Max.Z <= e.Max.Z
}

// IntersectsBox reports whether the extents overlap, boundary touches
// included.
func (e Extents3D) IntersectsBox(other Extents3D) bool {
	return other.Max.X >= e.Min.X && other.Min.X <= e.Max.X &&
		other.Max.Y >= e.Min.Y && other.Min.Y <= e.Max.Y &&
		other.Max.Z >= e.Min.Z && other.Min.Z <= e.Max.Z
}

// IntersectsPlane reports whether the plane passes through the extents. The
// extents are projected onto the plane normal by picking, per axis, the
// corner components giving the least and greatest signed extent.
func (e Extents3D) IntersectsPlane(p Plane) bool {
	var min, max float64

	if p.Normal.X > 0 {
		min = p.Normal.X * e.Min.X
		max = p.Normal.X * e.Max.X
	} else {
		min = p.Normal.X * e.Max.X
		max = p.Normal.X * e.Min.X
	}

	if p.Normal.Y > 0 {
		min += p.Normal.Y * e.Min.Y
		max += p.Normal.Y * e.Max.Y
	} else {
		min += p.Normal.Y * e.Max.Y
		max += p.Normal.Y * e.Min.Y
	}

	if p.Normal.Z > 0 {
		min += p.Normal.Z * e.Min.Z
		max += p.Normal.Z * e.Max.Z
	} else {
		min += p.Normal.Z * e.Max.Z
		max += p.Normal.Z * e.Min.Z
	}

	return min <= -p.Constant && max >= -p.Constant
}

// ClampPoint returns the point moved to the nearest location inside the
// extents.
func (e Extents3D) ClampPoint(p Vec3) Vec3 {
	return p.ClampVec(e.Min, e.Max)
}

// DistanceToPoint returns the distance from the point to the nearest face,
// zero for contained points.
func (e Extents3D) DistanceToPoint(p Vec3) float64 {
	return e.ClampPoint(p).Distance(p)
}

// Parameter returns where the point sits between Min and Max per axis, 0 at
// Min and 1 at Max, unclamped. A collapsed axis maps to 0.
func (e Extents3D) Parameter(p Vec3) Vec3 {
	return Vec3{
		InverseLerp(e.Min.X, e.Max.X, p.X),
		InverseLerp(e.Min.Y, e.Max.Y, p.Y),
		InverseLerp(e.Min.Z, e.Max.Z, p.Z),
	}
}

// Transform re-derives the extents of the transformed box from all eight
// transformed corners, since rotation tilts the box out of axis alignment.
// Empty extents stay empty.
func (e Extents3D) Transform(mat Mat4) Extents3D {
	if e.IsEmpty() {
		return NewExtents3D()
	}
	out := NewExtents3D()
	out = out.ExpandByPoint(Vec3{e.Min.X, e.Min.Y, e.Min.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Min.X, e.Min.Y, e.Max.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Min.X, e.Max.Y, e.Min.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Min.X, e.Max.Y, e.Max.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Max.X, e.Min.Y, e.Min.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Max.X, e.Min.Y, e.Max.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Max.X, e.Max.Y, e.Min.Z}.Transform(mat))
	out = out.ExpandByPoint(Vec3{e.Max.X, e.Max.Y, e.Max.Z}.Transform(mat))
	return out
}

// Translate moves the extents without resizing them.
func (e Extents3D) Translate(offset Vec3) Extents3D {
	return Extents3D{Min: e.Min.Add(offset), Max: e.Max.Add(offset)}
}

// Center returns the midpoint, or the zero vector for empty extents.
func (e Extents3D) Center() Vec3 {
	if e.IsEmpty() {
		return NewVec3Zero()
	}
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Size returns the edge lengths, or the zero vector for empty extents.
func (e Extents3D) Size() Vec3 {
	if e.IsEmpty() {
		return NewVec3Zero()
	}
	return e.Max.Sub(e.Min)
}

// Compares the corners of e and other within tolerance.
func (e Extents3D) Compare(other Extents3D, tolerance float64) bool {
	return e.Min.Compare(other.Min, tolerance) && e.Max.Compare(other.Max, tolerance)
}

// Creates and returns empty planar extents: Min at +Inf, Max at -Inf.
func NewExtents2D() Extents2D {
	return Extents2D{
		Min: Vec2{m.Inf(1), m.Inf(1)},
		Max: Vec2{m.Inf(-1), m.Inf(-1)},
	}
}

// NewExtents2DFromPoints builds the tightest extents containing all points.
func NewExtents2DFromPoints(points []Vec2) Extents2D {
	out := NewExtents2D()
	for _, p := range points {
		out = out.ExpandByPoint(p)
	}
	return out
}

// IsEmpty reports whether the extents contain no points.
func (e Extents2D) IsEmpty() bool {
	return e.Max.X < e.Min.X || e.Max.Y < e.Min.Y
}

// ExpandByPoint grows the extents to contain the point.
func (e Extents2D) ExpandByPoint(p Vec2) Extents2D {
	return Extents2D{Min: e.Min.Min(p), Max: e.Max.Max(p)}
}

// Union returns the smallest extents containing both operands.
func (e Extents2D) Union(other Extents2D) Extents2D {
	return Extents2D{Min: e.Min.Min(other.Min), Max: e.Max.Max(other.Max)}
}

// ContainsPoint reports whether the point lies inside or on the boundary.
func (e Extents2D) ContainsPoint(p Vec2) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// Translate moves the extents without resizing them.
func (e Extents2D) Translate(offset Vec2) Extents2D {
	return Extents2D{Min: e.Min.Add(offset), Max: e.Max.Add(offset)}
}

// Center returns the midpoint, or the zero vector for empty extents.
func (e Extents2D) Center() Vec2 {
	if e.IsEmpty() {
		return NewVec2Zero()
	}
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Size returns the edge lengths, or the zero vector for empty extents.
func (e Extents2D) Size() Vec2 {
	if e.IsEmpty() {
		return NewVec2Zero()
	}
	return e.Max.Sub(e.Min)
}

// To3D lifts planar extents into space at z = 0.
func (e Extents2D) To3D() Extents3D {
	if e.IsEmpty() {
		return NewExtents3D()
	}
	return Extents3D{
		Min: Vec3{e.Min.X, e.Min.Y, 0},
		Max: Vec3{e.Max.X, e.Max.Y, 0},
	}
}

// Compares the corners of e and other within tolerance.
func (e Extents2D) Compare(other Extents2D, tolerance float64) bool {
	return e.Min.Compare(other.Min, tolerance) && e.Max.Compare(other.Max, tolerance)
}
