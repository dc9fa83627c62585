// Package entity is the boundary between the geometry kernel and whatever
// object model sits on top of it. Anything that can report a bounding box
// qualifies; the kernel never needs to know more.
package entity

import (
	"github.com/astaben/tracery/engine/core"
	"github.com/astaben/tracery/engine/math"
)

// Entity is one addressable object in a drawing.
type Entity interface {
	// ID returns the identifier the entity was registered under.
	ID() core.Handle
	// GeometricExtents returns the world-space bounding box, or the empty
	// extents when the entity has no geometry to bound.
	GeometricExtents() math.Extents3D
}

// ExtentsOf unions the extents of all given entities. Entities with empty
// extents contribute nothing, so the result is empty when none of them has
// geometry.
func ExtentsOf(entities ...Entity) math.Extents3D {
	out := math.NewExtents3D()
	for _, e := range entities {
		if e == nil {
			continue
		}
		box := e.GeometricExtents()
		if box.IsEmpty() {
			continue
		}
		out = out.Union(box)
	}
	return out
}
