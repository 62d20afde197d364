package procgeom

// PathKind tags the representation carried by a PathData.
type PathKind int

// Path data representations.
const (
	// PathPoints is an ordered list of 2D points.
	PathPoints PathKind = iota

	// PathBezier is an ordered list of anchor points with optional
	// control handles.
	PathBezier

	// PathSVG is an opaque curve description. Modifiers pass it
	// through untouched.
	PathSVG
)

// BezierPoint is one anchor of a bezier path. CP1 is the incoming
// control handle, CP2 the outgoing one; either may be nil.
type BezierPoint struct {
	Point
	CP1, CP2 *Point
}

// Clone returns a deep copy of the bezier point.
func (b BezierPoint) Clone() BezierPoint {
	c := b
	if b.CP1 != nil {
		v := *b.CP1
		c.CP1 = &v
	}
	if b.CP2 != nil {
		v := *b.CP2
		c.CP2 = &v
	}
	return c
}

// PathData is the tagged point/curve representation of a shape's
// outline or skeleton, independent of the shape's native property
// schema. Exactly one of Points, Bezier, SVG is meaningful, selected
// by Kind.
//
// Bounds, when non-nil, is a cached tight bounding box over the data
// including bezier control handles. Any code that changes the data must
// recompute or clear it.
type PathData struct {
	Kind   PathKind
	Points []Point
	Bezier []BezierPoint
	SVG    string
	Closed bool
	Bounds *Rect
}

// PointsPath creates a point-list path.
func PointsPath(points []Point, closed bool) PathData {
	return PathData{Kind: PathPoints, Points: points, Closed: closed}
}

// BezierPath creates a bezier path.
func BezierPath(points []BezierPoint, closed bool) PathData {
	return PathData{Kind: PathBezier, Bezier: points, Closed: closed}
}

// SVGPath creates an opaque curve path.
func SVGPath(data string, closed bool) PathData {
	return PathData{Kind: PathSVG, SVG: data, Closed: closed}
}

// Clone returns a deep copy of the path data.
func (pd PathData) Clone() PathData {
	c := pd
	if pd.Points != nil {
		c.Points = append([]Point(nil), pd.Points...)
	}
	if pd.Bezier != nil {
		c.Bezier = make([]BezierPoint, len(pd.Bezier))
		for i, bp := range pd.Bezier {
			c.Bezier[i] = bp.Clone()
		}
	}
	if pd.Bounds != nil {
		r := *pd.Bounds
		c.Bounds = &r
	}
	return c
}

// Len returns the number of points or anchors; 0 for opaque curves.
func (pd PathData) Len() int {
	switch pd.Kind {
	case PathPoints:
		return len(pd.Points)
	case PathBezier:
		return len(pd.Bezier)
	default:
		return 0
	}
}

// AnchorPoints returns the path's anchor positions (without handles).
// Opaque curves have none.
func (pd PathData) AnchorPoints() []Point {
	switch pd.Kind {
	case PathPoints:
		return pd.Points
	case PathBezier:
		pts := make([]Point, len(pd.Bezier))
		for i, bp := range pd.Bezier {
			pts[i] = bp.Point
		}
		return pts
	default:
		return nil
	}
}

// ComputeBounds returns the tight bounding box of the path data,
// including bezier control handles. Opaque curves and empty paths
// report a zero rectangle and false.
func (pd PathData) ComputeBounds() (Rect, bool) {
	switch pd.Kind {
	case PathPoints:
		if len(pd.Points) == 0 {
			return Rect{}, false
		}
		return BoundsOf(pd.Points), true
	case PathBezier:
		if len(pd.Bezier) == 0 {
			return Rect{}, false
		}
		r := Rect{Min: pd.Bezier[0].Point, Max: pd.Bezier[0].Point}
		for _, bp := range pd.Bezier {
			r = r.Expand(bp.Point)
			if bp.CP1 != nil {
				r = r.Expand(*bp.CP1)
			}
			if bp.CP2 != nil {
				r = r.Expand(*bp.CP2)
			}
		}
		return r, true
	default:
		return Rect{}, false
	}
}
