// Package math is the geometry kernel of the drawing engine: double
// precision vectors, matrices, rotations and extents. All value types are
// plain data with value-receiver methods returning new values, so they can
// be shared freely across goroutines; nothing in this package mutates
// shared state.
package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Quaternion represents a rotational orientation. It is kept unit length by
// the constructors; renormalize explicitly after accumulating many products.
type Quaternion struct {
	X, Y, Z, W float64
}

// Extents2D is the axis-aligned bounding rectangle of a planar object.
// A fresh value from NewExtents2D is empty: Min at +Inf, Max at -Inf.
type Extents2D struct {
	Min Vec2
	Max Vec2
}

// Extents3D is the axis-aligned bounding box of an object. A fresh value
// from NewExtents3D is empty: Min at +Inf, Max at -Inf, so any point folded
// in becomes both corners.
type Extents3D struct {
	Min Vec3
	Max Vec3
}

// Plane is an infinite plane in Hessian normal form: all points p with
// Normal·p + Constant == 0. Normal is expected to be unit length.
type Plane struct {
	Normal   Vec3
	Constant float64
}
