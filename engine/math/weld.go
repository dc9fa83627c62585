package math

import (
	"encoding/binary"
	m "math"

	"github.com/cespare/xxhash/v2"

	"github.com/astaben/tracery/engine/core"
)

type gridCell struct {
	x, y, z int64
}

// WeldPoints collapses points that quantize to the same tolerance-sized grid
// cell into one point and returns the welded points together with an index
// remap from the input ordering. Two points within tolerance of each other
// but straddling a cell boundary stay distinct; that is the usual trade for
// a single linear pass. A non-positive tolerance falls back to
// PointTolerance.
func WeldPoints(points []Vec3, tolerance float64) ([]Vec3, []uint32) {
	if tolerance <= 0 {
		tolerance = PointTolerance
	}
	inv := 1.0 / tolerance

	welded := make([]Vec3, 0, len(points))
	cells := make([]gridCell, 0, len(points))
	remap := make([]uint32, len(points))
	// Cells are looked up by hash; equal hashes are verified against the
	// stored cells so collisions only cost a comparison.
	seen := make(map[uint64][]uint32, len(points))

	var buf [24]byte
next:
	for i, p := range points {
		cell := gridCell{
			x: int64(m.Round(p.X * inv)),
			y: int64(m.Round(p.Y * inv)),
			z: int64(m.Round(p.Z * inv)),
		}
		binary.LittleEndian.PutUint64(buf[0:8], uint64(cell.x))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(cell.y))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(cell.z))
		key := xxhash.Sum64(buf[:])

		for _, j := range seen[key] {
			if cells[j] == cell {
				remap[i] = j
				continue next
			}
		}

		j := uint32(len(welded))
		seen[key] = append(seen[key], j)
		welded = append(welded, p)
		cells = append(cells, cell)
		remap[i] = j
	}

	if removed := len(points) - len(welded); removed > 0 {
		core.LogDebug("welded %d points down to %d (%d removed)", len(points), len(welded), removed)
	}
	return welded, remap
}
