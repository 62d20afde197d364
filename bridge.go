package procgeom

import "math"

// circleSegments is the number of segments used when a circular or
// elliptical outline must be expressed as points.
const circleSegments = 32

// PathFromShape extracts a shape's outline as PathData in the shape's
// local coordinate space (origin at the shape's top-left). Rectangles,
// circles, ellipses, and regular polygons synthesize their outline;
// point-list and bezier shapes hand over copies of their stored data;
// svg shapes pass through opaquely. Returns false when the shape has no
// extractable outline.
func PathFromShape(s Shape) (PathData, bool) {
	if s.Type == ShapeSVG && s.Properties.SVGPath != "" {
		return SVGPath(s.Properties.SVGPath, s.IsClosed()), true
	}

	switch g := s.Geometry().(type) {
	case BezierGeometry:
		pts := make([]BezierPoint, len(g.Points))
		for i, bp := range g.Points {
			pts[i] = bp.Clone()
		}
		return BezierPath(pts, g.Closed), true
	case PointListGeometry:
		return PointsPath(append([]Point(nil), g.Points...), g.Closed), true
	case RectGeometry:
		return PointsPath([]Point{
			{},
			{X: g.Width},
			{X: g.Width, Y: g.Height},
			{Y: g.Height},
		}, true), true
	case CircleGeometry:
		return PointsPath(ellipsePoints(g.Radius, g.Radius, g.Radius, g.Radius), true), true
	case EllipseGeometry:
		return PointsPath(ellipsePoints(g.RX, g.RY, g.RX, g.RY), true), true
	default:
		return PathData{}, false
	}
}

// ellipsePoints approximates an ellipse centered at (cx, cy) with
// half-axes rx, ry.
func ellipsePoints(cx, cy, rx, ry float64) []Point {
	pts := make([]Point, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = Point{
			X: cx + rx*math.Cos(a),
			Y: cy + ry*math.Sin(a),
		}
	}
	return pts
}

// ApplyPathToShape writes modified path data back into a copy of the
// shape. Shapes whose path gained control handles are upgraded to the
// curve-capable path type; plain point data lands on point-list types.
// The second return reports whether the shape's type was upgraded.
// Opaque curve data leaves the shape untouched.
func ApplyPathToShape(s Shape, pd PathData) (Shape, bool) {
	out := s.Clone()
	closed := pd.Closed
	out.Properties.Closed = &closed

	switch pd.Kind {
	case PathBezier:
		out.Properties.ControlPoints = make([]BezierPoint, len(pd.Bezier))
		for i, bp := range pd.Bezier {
			out.Properties.ControlPoints[i] = bp.Clone()
		}
		out.Properties.Points = nil
		upgraded := false
		if s.Type != ShapePath && hasHandles(pd.Bezier) {
			out.Type = ShapePath
			upgraded = true
		}
		resizeToPath(&out, pd)
		return out, upgraded
	case PathPoints:
		out.Properties.Points = append([]Point(nil), pd.Points...)
		out.Properties.ControlPoints = nil
		upgraded := false
		switch s.Type {
		case ShapePolygon, ShapeLine, ShapePath, ShapeTriangle:
			// Already point-capable.
		default:
			out.Type = ShapePolygon
			upgraded = true
		}
		resizeToPath(&out, pd)
		return out, upgraded
	default:
		return out, false
	}
}

func hasHandles(points []BezierPoint) bool {
	for _, bp := range points {
		if bp.CP1 != nil || bp.CP2 != nil {
			return true
		}
	}
	return false
}

// resizeToPath refreshes the stored width/height properties from the
// path's bounds so downstream size queries stay truthful.
func resizeToPath(s *Shape, pd PathData) {
	bounds, ok := pd.ComputeBounds()
	if !ok {
		return
	}
	w, h := bounds.Width(), bounds.Height()
	s.Properties.Width = &w
	s.Properties.Height = &h
}
