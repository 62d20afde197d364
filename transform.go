package procgeom

import "math"

// Transform is the world-space placement of one shape instance.
// Rotation is in radians. Zero-value scales are treated as 1 by
// Normalized; processors always emit normalized transforms.
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Normalized returns the transform with absent (zero) scales replaced
// by 1.
func (t Transform) Normalized() Transform {
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

// Position returns the transform's translation as a point.
func (t Transform) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// RotateAround returns p rotated by angle radians around pivot.
func RotateAround(p, pivot Point, angle float64) Point {
	return p.Sub(pivot).Rotate(angle).Add(pivot)
}

// CornerAnchorOffset returns the positional delta introduced when a
// width x height shape anchored at its top-left corner is rotated, but
// should visually appear to rotate around its center.
//
// For rotation theta:
//
//	dx = (w/2)(cos theta - 1) - (h/2) sin theta
//	dy = (w/2) sin theta + (h/2)(cos theta - 1)
//
// The delta must be subtracted from the rotated corner position; see
// CornerForCenter.
func CornerAnchorOffset(width, height, rotation float64) Point {
	cos := math.Cos(rotation)
	sin := math.Sin(rotation)
	return Point{
		X: (width/2)*(cos-1) - (height/2)*sin,
		Y: (width/2)*sin + (height/2)*(cos-1),
	}
}

// CornerForCenter converts a desired visual center into the top-left
// corner position a corner-anchored host must store so the shape
// appears centered at center under the given rotation.
func CornerForCenter(center Point, width, height, rotation float64) Point {
	off := CornerAnchorOffset(width, height, rotation)
	return Point{
		X: center.X - width/2 - off.X,
		Y: center.Y - height/2 - off.Y,
	}
}

// CenterForCorner is the inverse of CornerForCenter: given a stored
// top-left corner position and rotation, it returns the shape's visual
// center.
func CenterForCorner(corner Point, width, height, rotation float64) Point {
	off := CornerAnchorOffset(width, height, rotation)
	return Point{
		X: corner.X + width/2 + off.X,
		Y: corner.Y + height/2 + off.Y,
	}
}

// Tangent returns the unit tangent direction of a point sequence at
// index i, using a centered finite difference. Closed sequences wrap
// their neighbors; open sequences fall back to a one-sided difference
// at the endpoints. Degenerate (zero-length) differences yield (1, 0).
func Tangent(points []Point, i int, closed bool) Point {
	n := len(points)
	if n < 2 || i < 0 || i >= n {
		return Point{X: 1}
	}

	var prev, next Point
	switch {
	case closed:
		prev = points[(i-1+n)%n]
		next = points[(i+1)%n]
	case i == 0:
		prev = points[0]
		next = points[1]
	case i == n-1:
		prev = points[n-2]
		next = points[n-1]
	default:
		prev = points[i-1]
		next = points[i+1]
	}

	d := next.Sub(prev)
	if d.Length() == 0 {
		return Point{X: 1}
	}
	return d.Normalize()
}

// Normal returns the unit normal direction of a point sequence at
// index i: the tangent rotated 90 degrees.
func Normal(points []Point, i int, closed bool) Point {
	return Tangent(points, i, closed).Perp()
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
