package modifier

import (
	"fmt"

	"github.com/gogpu/procgeom"
)

// maxSubdivideIterations caps runaway iteration counts: each pass
// roughly doubles the point count.
const maxSubdivideIterations = 10

// SubdivideSettings configures the Subdivide modifier.
type SubdivideSettings struct {
	// Factor is the interpolation parameter for inserted points,
	// exclusive on both ends: 0 < Factor < 1.
	Factor float64

	// Iterations is the number of subdivision passes (at least 1,
	// capped at 10 per call).
	Iterations int

	// Smooth applies a corner-preserving 3-point weighted average
	// after each pass.
	Smooth bool
}

// Validate reports why the settings would be rejected, or nil.
func (s SubdivideSettings) Validate() error {
	if s.Factor <= 0 || s.Factor >= 1 {
		return fmt.Errorf("%w: subdivide factor %v outside (0, 1)", ErrInvalidSettings, s.Factor)
	}
	if s.Iterations < 1 {
		return fmt.Errorf("%w: subdivide iterations %d < 1", ErrInvalidSettings, s.Iterations)
	}
	return nil
}

func (s SubdivideSettings) valid() bool {
	return s.Validate() == nil
}

// Subdivide inserts one interpolated point between each consecutive
// point pair (including the wrap segment of closed paths), repeated
// Iterations times. Bezier data interpolates anchor positions and
// blends adjacent control handles linearly; no true curve split is
// performed.
func Subdivide(pd procgeom.PathData, settings SubdivideSettings) Result {
	if !settings.valid() || pd.Kind == procgeom.PathSVG || pd.Len() < 2 {
		return unchanged(pd)
	}

	iterations := min(settings.Iterations, maxSubdivideIterations)
	out := pd.Clone()
	for it := 0; it < iterations; it++ {
		switch out.Kind {
		case procgeom.PathPoints:
			out.Points = subdividePoints(out.Points, out.Closed, settings.Factor)
			if settings.Smooth {
				out.Points = weightedAverage(out.Points, out.Closed)
			}
		case procgeom.PathBezier:
			out.Bezier = subdivideBezier(out.Bezier, out.Closed, settings.Factor)
			if settings.Smooth {
				smoothBezierAnchors(out.Bezier, out.Closed)
			}
		}
	}
	return changed(out)
}

func subdividePoints(points []procgeom.Point, closed bool, factor float64) []procgeom.Point {
	n := len(points)
	out := make([]procgeom.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, points[i])
		j := i + 1
		if j == n {
			if !closed {
				break
			}
			j = 0
		}
		out = append(out, points[i].Lerp(points[j], factor))
	}
	return out
}

func subdivideBezier(points []procgeom.BezierPoint, closed bool, factor float64) []procgeom.BezierPoint {
	n := len(points)
	out := make([]procgeom.BezierPoint, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, points[i].Clone())
		j := i + 1
		if j == n {
			if !closed {
				break
			}
			j = 0
		}
		mid := procgeom.BezierPoint{Point: points[i].Lerp(points[j].Point, factor)}
		if points[i].CP2 != nil && points[j].CP1 != nil {
			h := points[i].CP2.Lerp(*points[j].CP1, factor)
			in, outH := h, h
			mid.CP1 = &in
			mid.CP2 = &outH
		}
		out = append(out, mid)
	}
	return out
}

// weightedAverage smooths a point run with the 1/4, 1/2, 1/4 kernel.
// Open paths keep their endpoints fixed.
func weightedAverage(points []procgeom.Point, closed bool) []procgeom.Point {
	n := len(points)
	out := make([]procgeom.Point, n)
	copy(out, points)
	for i := 0; i < n; i++ {
		prev, next, ok := neighborIndexes(i, n, closed)
		if !ok {
			continue
		}
		out[i] = procgeom.Point{
			X: points[prev].X/4 + points[i].X/2 + points[next].X/4,
			Y: points[prev].Y/4 + points[i].Y/2 + points[next].Y/4,
		}
	}
	return out
}

func smoothBezierAnchors(points []procgeom.BezierPoint, closed bool) {
	n := len(points)
	anchors := make([]procgeom.Point, n)
	for i, bp := range points {
		anchors[i] = bp.Point
	}
	smoothed := weightedAverage(anchors, closed)
	for i := range points {
		delta := smoothed[i].Sub(points[i].Point)
		points[i].Point = smoothed[i]
		// Handles ride along with their anchor.
		if points[i].CP1 != nil {
			*points[i].CP1 = points[i].CP1.Add(delta)
		}
		if points[i].CP2 != nil {
			*points[i].CP2 = points[i].CP2.Add(delta)
		}
	}
}
