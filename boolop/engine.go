package boolop

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	polyclip "github.com/ctessum/polyclip-go"

	"github.com/gogpu/procgeom"
	"github.com/gogpu/procgeom/cache"
)

// Op is a polygon boolean operation.
type Op string

// Boolean operations.
const (
	OpUnion     Op = "union"
	OpSubtract  Op = "subtract"
	OpIntersect Op = "intersect"
	OpExclude   Op = "exclude"
)

func (op Op) clipOp() polyclip.Op {
	switch op {
	case OpSubtract:
		return polyclip.DIFFERENCE
	case OpIntersect:
		return polyclip.INTERSECTION
	case OpExclude:
		return polyclip.XOR
	default:
		return polyclip.UNION
	}
}

// Engine converts shapes to polygons and combines them. It owns the
// conversion cache; create one Engine per editing session and call
// ClearCache when shape geometry changes outside the tracked
// fingerprint (for example, external point edits).
type Engine struct {
	conversions *cache.Sharded[MultiPolygon]
	oracle      BoundsOracle
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBoundsOracle supplies a host bounds oracle for the outline
// reconstruction's position preservation. Without one the engine falls
// back to geometric computation.
func WithBoundsOracle(o BoundsOracle) Option {
	return func(e *Engine) {
		e.oracle = o
	}
}

// NewEngine creates a boolean geometry engine with an empty conversion
// cache.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{conversions: cache.New[MultiPolygon]()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClearCache drops every memoized conversion. Call it whenever a
// shape's geometry changes without a corresponding fingerprint change.
func (e *Engine) ClearCache() {
	e.conversions.Clear()
}

// CacheSize returns the number of memoized conversions.
func (e *Engine) CacheSize() int {
	return e.conversions.Len()
}

// ShapeToPolygon converts a shape to its multi-polygon ring
// representation in world coordinates. Rectangles emit four corners,
// circles and ellipses a 32-segment approximation, point-list shapes
// their stored outline, and bezier shapes their anchor points only
// (curvature is not tessellated). Unsupported or degenerate geometry
// falls back to the bounding box. Non-zero rotation is applied to
// every vertex around the shape's center after construction.
//
// Conversions are memoized by a fingerprint of the shape's identity,
// position, rotation, and serialized properties. The returned polygon
// set is the caller's to mutate; the memoized entry stays intact.
func (e *Engine) ShapeToPolygon(s procgeom.Shape) MultiPolygon {
	mp := e.conversions.GetOrCreate(fingerprint(s), func() MultiPolygon {
		return convertShape(s)
	})
	return mp.Clone()
}

func convertShape(s procgeom.Shape) MultiPolygon {
	w, h := s.Width(), s.Height()
	pos := s.Position

	var ring Ring
	switch g := s.Geometry().(type) {
	case procgeom.RectGeometry:
		ring = Ring{
			pos,
			pos.Add(procgeom.Pt(g.Width, 0)),
			pos.Add(procgeom.Pt(g.Width, g.Height)),
			pos.Add(procgeom.Pt(0, g.Height)),
		}
	case procgeom.CircleGeometry:
		ring = arcRing(pos.Add(procgeom.Pt(g.Radius, g.Radius)), g.Radius, g.Radius)
	case procgeom.EllipseGeometry:
		ring = arcRing(pos.Add(procgeom.Pt(g.RX, g.RY)), g.RX, g.RY)
	case procgeom.PointListGeometry:
		ring = offsetRing(g.Points, pos)
	case procgeom.BezierGeometry:
		anchors := make([]procgeom.Point, len(g.Points))
		for i, bp := range g.Points {
			anchors[i] = bp.Point
		}
		ring = offsetRing(anchors, pos)
	}

	if len(ring) < 3 {
		procgeom.Logger().Warn("degenerate shape geometry, falling back to bounding box",
			slog.String("shape", s.ID), slog.String("type", string(s.Type)))
		ring = Ring{
			pos,
			pos.Add(procgeom.Pt(w, 0)),
			pos.Add(procgeom.Pt(w, h)),
			pos.Add(procgeom.Pt(0, h)),
		}
	}

	if s.Rotation != 0 {
		center := pos.Add(procgeom.Pt(w/2, h/2))
		for i, p := range ring {
			ring[i] = procgeom.RotateAround(p, center, s.Rotation)
		}
	}

	return MultiPolygon{Polygon{closeRing(ring)}}
}

// arcRing approximates an ellipse with 32 segments.
func arcRing(center procgeom.Point, rx, ry float64) Ring {
	const segments = 32
	ring := make(Ring, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		ring[i] = procgeom.Pt(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
	}
	return ring
}

func offsetRing(points []procgeom.Point, offset procgeom.Point) Ring {
	ring := make(Ring, len(points))
	for i, p := range points {
		ring[i] = p.Add(offset)
	}
	return ring
}

// Combine folds the shapes through the boolean operation left to
// right: result = op(result, next), starting from the first shape's
// polygon. Zero shapes yield an empty result; one shape yields its
// polygon unchanged.
func (e *Engine) Combine(shapes []procgeom.Shape, op Op) MultiPolygon {
	if len(shapes) == 0 {
		return nil
	}
	result := e.ShapeToPolygon(shapes[0])
	for _, s := range shapes[1:] {
		next := e.ShapeToPolygon(s)
		result = fromClip(toClip(result).Construct(op.clipOp(), toClip(next)))
	}
	return result
}

// fingerprint derives the cache key: identity, placement, and every
// geometry-affecting property.
func fingerprint(s procgeom.Shape) string {
	var b strings.Builder
	b.WriteString(s.ID)
	b.WriteByte('|')
	b.WriteString(string(s.Type))
	b.WriteByte('|')
	writeFloat(&b, s.Position.X)
	writeFloat(&b, s.Position.Y)
	writeFloat(&b, s.Rotation)

	p := s.Properties
	writeFloatPtr(&b, p.Width)
	writeFloatPtr(&b, p.Height)
	writeFloatPtr(&b, p.Radius)
	if p.Sides != nil {
		b.WriteString(strconv.Itoa(*p.Sides))
	}
	b.WriteByte('|')
	if p.Closed != nil {
		b.WriteString(strconv.FormatBool(*p.Closed))
	}
	b.WriteByte('|')
	for _, pt := range p.Points {
		writeFloat(&b, pt.X)
		writeFloat(&b, pt.Y)
	}
	b.WriteByte('|')
	for _, bp := range p.ControlPoints {
		writeFloat(&b, bp.X)
		writeFloat(&b, bp.Y)
		if bp.CP1 != nil {
			writeFloat(&b, bp.CP1.X)
			writeFloat(&b, bp.CP1.Y)
		}
		if bp.CP2 != nil {
			writeFloat(&b, bp.CP2.X)
			writeFloat(&b, bp.CP2.Y)
		}
	}
	return b.String()
}

func writeFloat(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	b.WriteByte(',')
}

func writeFloatPtr(b *strings.Builder, v *float64) {
	if v != nil {
		writeFloat(b, *v)
	}
	b.WriteByte(';')
}
