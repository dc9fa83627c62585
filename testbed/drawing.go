package testbed

import (
	m "math"

	"golang.org/x/exp/rand"

	"github.com/astaben/tracery/engine/core"
	"github.com/astaben/tracery/engine/entity"
	"github.com/astaben/tracery/engine/math"
	"github.com/astaben/tracery/engine/spline"
	"github.com/astaben/tracery/engine/text"
)

var (
	_ entity.Entity = (*Line)(nil)
	_ entity.Entity = (*Polyline)(nil)
	_ entity.Entity = (*Spline)(nil)
	_ entity.Entity = (*Text)(nil)
	_ entity.Entity = (*PointCloud)(nil)
)

// Line is a straight segment between two points.
type Line struct {
	id         core.Handle
	Start, End math.Vec3
}

func NewLine(start, end math.Vec3) *Line {
	l := &Line{Start: start, End: end}
	l.id = core.AcquireHandle(l)
	return l
}

func (l *Line) ID() core.Handle { return l.id }

func (l *Line) GeometricExtents() math.Extents3D {
	return math.NewExtents3DFromPoints([]math.Vec3{l.Start, l.End})
}

func (l *Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Polyline is an open or closed chain of segments.
type Polyline struct {
	id     core.Handle
	Points []math.Vec3
}

func NewPolyline(points []math.Vec3) *Polyline {
	p := &Polyline{Points: points}
	p.id = core.AcquireHandle(p)
	return p
}

func (p *Polyline) ID() core.Handle { return p.id }

func (p *Polyline) GeometricExtents() math.Extents3D {
	return math.NewExtents3DFromPoints(p.Points)
}

func (p *Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Distance(p.Points[i])
	}
	return total
}

// Spline places a NURBS curve in the drawing. Placement may be nil for a
// curve defined directly in world coordinates.
type Spline struct {
	id        core.Handle
	Curve     *spline.Curve
	Placement *math.Transform
}

func NewSpline(curve *spline.Curve, placement *math.Transform) *Spline {
	s := &Spline{Curve: curve, Placement: placement}
	s.id = core.AcquireHandle(s)
	return s
}

func (s *Spline) ID() core.Handle { return s.id }

// GeometricExtents bounds the curve by its control polygon, which contains
// the curve by the convex hull property.
func (s *Spline) GeometricExtents() math.Extents3D {
	box := math.NewExtents3DFromPoints(s.Curve.ControlPoints)
	if s.Placement != nil {
		box = box.Transform(s.Placement.World())
	}
	return box
}

func (s *Spline) Length(resolution int) float64 {
	return s.Curve.LengthAt(resolution)
}

// Text is a single- or multi-line annotation. A nil face renders it
// immeasurable, so its extents stay empty.
type Text struct {
	id     core.Handle
	Face   *text.Face
	Body   string
	Origin math.Vec2
	Height float64
}

func NewText(face *text.Face, body string, origin math.Vec2, height float64) *Text {
	t := &Text{Face: face, Body: body, Origin: origin, Height: height}
	t.id = core.AcquireHandle(t)
	return t
}

func (t *Text) ID() core.Handle { return t.id }

func (t *Text) GeometricExtents() math.Extents3D {
	if t.Face == nil {
		return math.NewExtents3D()
	}
	return t.Face.MeasureAt(t.Body, t.Origin, t.Height).To3D()
}

// PointCloud is a survey-style point set, typically noisy.
type PointCloud struct {
	id     core.Handle
	Points []math.Vec3
}

func NewPointCloud(points []math.Vec3) *PointCloud {
	pc := &PointCloud{Points: points}
	pc.id = core.AcquireHandle(pc)
	return pc
}

func (pc *PointCloud) ID() core.Handle { return pc.id }

func (pc *PointCloud) GeometricExtents() math.Extents3D {
	return math.NewExtents3DFromPoints(pc.Points)
}

// Weld collapses points closer than tolerance and returns how many were
// removed.
func (pc *PointCloud) Weld(tolerance float64) int {
	welded, _ := math.WeldPoints(pc.Points, tolerance)
	removed := len(pc.Points) - len(welded)
	pc.Points = welded
	return removed
}

// Drawing is the demo model: a handful of entities exercising the whole
// kernel, regenerated on demand.
type Drawing struct {
	Name string

	config   *core.Config
	root     *math.Transform
	entities []entity.Entity
	arc      *Spline
	cloud    *PointCloud

	clock   *core.Clock
	stats   *core.RegenStats
	extents math.Extents3D
}

// NewDrawing assembles the demo content. The face may be nil when no font
// is available; the text entity then reports empty extents.
func NewDrawing(name string, cfg *core.Config, face *text.Face) (*Drawing, error) {
	d := &Drawing{
		Name:    name,
		config:  cfg,
		root:    math.NewTransform(),
		clock:   core.NewClock(),
		stats:   core.NewRegenStats(),
		extents: math.NewExtents3D(),
	}

	baseline := NewLine(math.NewVec3(0, 0, 0), math.NewVec3(100, 0, 0))

	frame := NewPolyline([]math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 40, Y: 0, Z: 0},
		{X: 40, Y: 25, Z: 0},
		{X: 0, Y: 25, Z: 0},
		{X: 0, Y: 0, Z: 0},
	})

	// A radius-50 quarter circle, placed off the origin through the root
	// transform so regeneration exercises the hierarchy.
	curve, err := spline.NewCurve(2,
		[]math.Vec3{{X: 50, Y: 0, Z: 0}, {X: 50, Y: 50, Z: 0}, {X: 0, Y: 50, Z: 0}},
		[]float64{1, m.Sqrt2 / 2, 1},
		spline.KnotVector{0, 0, 0, 1, 1, 1},
	)
	if err != nil {
		return nil, err
	}
	placement := math.NewTransformFromPosition(math.NewVec3(10, 10, 0))
	placement.SetParent(d.root)
	d.arc = NewSpline(curve, placement)

	label := NewText(face, name, math.NewVec2(5, 30), 10)

	rng := rand.New(rand.NewSource(42))
	d.cloud = NewPointCloud(jitterCloud(rng, []math.Vec3{
		{X: 10, Y: 0, Z: 0},
		{X: 20, Y: 0, Z: 0},
		{X: 30, Y: 0, Z: 0},
		{X: 40, Y: 0, Z: 0},
	}, 100, 0.25*cfg.WeldTolerance))

	d.entities = []entity.Entity{baseline, frame, d.arc, label, d.cloud}
	return d, nil
}

// Regen recomputes everything derived: welded cloud, extents, curve length.
func (d *Drawing) Regen() {
	d.clock.Start()

	removed := d.cloud.Weld(d.config.WeldTolerance)
	d.extents = entity.ExtentsOf(d.entities...)
	arcLength := d.arc.Length(d.config.CurveResolution)

	d.clock.Update()
	d.stats.Record(d.clock.Elapsed())

	core.LogInfo("regen #%d of '%s': %d entities, weld removed %d, arc length %.4f, extents %v to %v (%.3fms)",
		d.stats.Count(), d.Name, len(d.entities), removed, arcLength,
		d.extents.Min, d.extents.Max, d.stats.LastMS())
}

// ApplyConfig swaps the active settings and regenerates.
func (d *Drawing) ApplyConfig(cfg *core.Config) {
	d.config = cfg
	core.SetLogLevel(cfg.LogLevel)
	d.Regen()
}

// Extents returns the union computed by the last Regen.
func (d *Drawing) Extents() math.Extents3D {
	return d.extents
}

func (d *Drawing) Entities() []entity.Entity {
	return d.entities
}

func (d *Drawing) Stats() *core.RegenStats {
	return d.stats
}

func jitterCloud(rng *rand.Rand, sites []math.Vec3, perSite int, spread float64) []math.Vec3 {
	points := make([]math.Vec3, 0, len(sites)*perSite)
	for _, site := range sites {
		for i := 0; i < perSite; i++ {
			points = append(points, site.Add(math.NewVec3(
				(rng.Float64()*2-1)*spread,
				(rng.Float64()*2-1)*spread,
				(rng.Float64()*2-1)*spread,
			)))
		}
	}
	return points
}
