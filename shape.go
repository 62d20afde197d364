package procgeom

import "math"

// Default dimensions used when a shape's property bag omits them.
const (
	DefaultWidth  = 100.0
	DefaultHeight = 100.0
	DefaultRadius = 50.0
)

// ShapeType is the host editor's type tag for a shape.
type ShapeType string

// Shape types understood by the pipeline. Unknown types degrade to
// their bounding box where geometry is needed.
const (
	ShapeRectangle ShapeType = "rectangle"
	ShapeEllipse   ShapeType = "ellipse"
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
	ShapePolygon   ShapeType = "polygon"
	ShapeLine      ShapeType = "line"
	ShapePath      ShapeType = "path"
	ShapeSVG       ShapeType = "svg"
)

// Properties is the shape contract's property bag. All fields are
// optional; accessors apply the documented defaults. Pointer fields
// distinguish "absent" from zero.
type Properties struct {
	Width  *float64
	Height *float64
	Radius *float64
	Sides  *int

	Points        []Point
	ControlPoints []BezierPoint
	Closed        *bool
	SVGPath       string

	Color       string
	FillColor   string
	StrokeWidth *float64
	Fill        *bool
	Dash        []float64
}

// Shape is the narrow contract the pipeline consumes from the host
// editor: an id, a type tag, a corner-anchored world position with
// rotation in radians, and a property bag.
type Shape struct {
	ID       string
	Type     ShapeType
	Position Point
	Rotation float64
	Properties
}

// Width returns the shape's width, defaulting to DefaultWidth.
// Circle-like shapes report their diameter.
func (s Shape) Width() float64 {
	if s.Properties.Width != nil {
		return *s.Properties.Width
	}
	if s.Type == ShapeCircle {
		return 2 * s.RadiusOrDefault()
	}
	return DefaultWidth
}

// Height returns the shape's height, defaulting to DefaultHeight.
// Circle-like shapes report their diameter.
func (s Shape) Height() float64 {
	if s.Properties.Height != nil {
		return *s.Properties.Height
	}
	if s.Type == ShapeCircle {
		return 2 * s.RadiusOrDefault()
	}
	return DefaultHeight
}

// RadiusOrDefault returns the shape's radius, defaulting to
// DefaultRadius.
func (s Shape) RadiusOrDefault() float64 {
	if s.Properties.Radius != nil {
		return *s.Properties.Radius
	}
	return DefaultRadius
}

// IsClosed reports whether the shape's outline is closed. Absent flags
// default to closed for everything except lines and open paths.
func (s Shape) IsClosed() bool {
	if s.Properties.Closed != nil {
		return *s.Properties.Closed
	}
	return s.Type != ShapeLine
}

// Center returns the shape's visual center, accounting for the host's
// corner-anchored rotation convention.
func (s Shape) Center() Point {
	return CenterForCorner(s.Position, s.Width(), s.Height(), s.Rotation)
}

// Clone returns a deep copy of the shape. Instances own their shapes,
// so processors clone before writing.
func (s Shape) Clone() Shape {
	c := s
	c.Properties = s.Properties.clone()
	return c
}

func (p Properties) clone() Properties {
	c := p
	c.Width = cloneFloat(p.Width)
	c.Height = cloneFloat(p.Height)
	c.Radius = cloneFloat(p.Radius)
	c.StrokeWidth = cloneFloat(p.StrokeWidth)
	if p.Sides != nil {
		v := *p.Sides
		c.Sides = &v
	}
	if p.Closed != nil {
		v := *p.Closed
		c.Closed = &v
	}
	if p.Fill != nil {
		v := *p.Fill
		c.Fill = &v
	}
	if p.Points != nil {
		c.Points = append([]Point(nil), p.Points...)
	}
	if p.ControlPoints != nil {
		c.ControlPoints = make([]BezierPoint, len(p.ControlPoints))
		for i, bp := range p.ControlPoints {
			c.ControlPoints[i] = bp.Clone()
		}
	}
	if p.Dash != nil {
		c.Dash = append([]float64(nil), p.Dash...)
	}
	return c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Geometry is the capability-tagged variant of a shape's outline data.
// Exactly one concrete type is returned per shape, resolved from the
// type tag and property bag.
type Geometry interface {
	isGeometry()
}

// RectGeometry is an axis-aligned width x height outline.
type RectGeometry struct {
	Width, Height float64
}

// CircleGeometry is a circular outline of the given radius.
type CircleGeometry struct {
	Radius float64
}

// EllipseGeometry is an elliptical outline with the given half-axes.
type EllipseGeometry struct {
	RX, RY float64
}

// PointListGeometry is an explicit outline given as local-space points.
type PointListGeometry struct {
	Points []Point
	Closed bool
}

// BezierGeometry is an outline given as anchor points with optional
// control handles.
type BezierGeometry struct {
	Points []BezierPoint
	Closed bool
}

func (RectGeometry) isGeometry()      {}
func (CircleGeometry) isGeometry()    {}
func (EllipseGeometry) isGeometry()   {}
func (PointListGeometry) isGeometry() {}
func (BezierGeometry) isGeometry()    {}

// Geometry resolves the shape's outline representation. Stored bezier
// control points win over plain points; regular polygons without a
// stored point list are synthesized from their side count; unsupported
// types fall back to the default rectangle.
func (s Shape) Geometry() Geometry {
	if len(s.Properties.ControlPoints) > 0 {
		return BezierGeometry{Points: s.Properties.ControlPoints, Closed: s.IsClosed()}
	}
	if len(s.Properties.Points) > 0 {
		return PointListGeometry{Points: s.Properties.Points, Closed: s.IsClosed()}
	}

	switch s.Type {
	case ShapeRectangle:
		return RectGeometry{Width: s.Width(), Height: s.Height()}
	case ShapeCircle:
		return CircleGeometry{Radius: s.RadiusOrDefault()}
	case ShapeEllipse:
		return EllipseGeometry{RX: s.Width() / 2, RY: s.Height() / 2}
	case ShapeTriangle:
		return PointListGeometry{Points: RegularPolygonPoints(3, s.Width(), s.Height()), Closed: true}
	case ShapePolygon:
		sides := 6
		if s.Properties.Sides != nil && *s.Properties.Sides >= 3 {
			sides = *s.Properties.Sides
		}
		return PointListGeometry{Points: RegularPolygonPoints(sides, s.Width(), s.Height()), Closed: true}
	default:
		return RectGeometry{Width: s.Width(), Height: s.Height()}
	}
}

// RegularPolygonPoints computes an n-gon inscribed in a width x height
// box, in local coordinates with the origin at the box's top-left. The
// first vertex points straight up.
func RegularPolygonPoints(n int, width, height float64) []Point {
	if n < 3 {
		n = 3
	}
	cx, cy := width/2, height/2
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Point{
			X: cx + cx*math.Cos(a),
			Y: cy + cy*math.Sin(a),
		}
	}
	return pts
}
