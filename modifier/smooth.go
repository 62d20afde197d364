package modifier

import (
	"fmt"

	"github.com/gogpu/procgeom"
)

// maxSmoothIterations caps a single Smooth call; further passes move
// points by ever smaller amounts.
const maxSmoothIterations = 50

// SmoothSettings configures the Smooth modifier.
type SmoothSettings struct {
	// Factor in [0, 1] is how far each point moves toward the average
	// of its neighbors per iteration.
	Factor float64

	// Iterations is the number of smoothing passes (at least 1, capped
	// at 50 per call).
	Iterations int

	// PreserveCorners leaves points whose incident-edge angle is below
	// CornerThreshold untouched.
	PreserveCorners bool

	// CornerThreshold is the corner angle in degrees. Only meaningful
	// with PreserveCorners.
	CornerThreshold float64
}

// Validate reports why the settings would be rejected, or nil.
func (s SmoothSettings) Validate() error {
	if s.Factor < 0 || s.Factor > 1 {
		return fmt.Errorf("%w: smooth factor %v outside [0, 1]", ErrInvalidSettings, s.Factor)
	}
	if s.Iterations < 1 {
		return fmt.Errorf("%w: smooth iterations %d < 1", ErrInvalidSettings, s.Iterations)
	}
	return nil
}

func (s SmoothSettings) valid() bool {
	return s.Validate() == nil
}

// Smooth moves each point toward the average of its neighbors:
//
//	new = (1-factor)*current + factor*avg(prev, next)
//
// Closed paths smooth every point using wraparound neighbors; open
// paths keep their endpoints fixed. Bezier anchors follow the same
// rule, and their control handles are additionally pulled partway
// (factor * 0.5) toward the neighboring anchor. With PreserveCorners,
// points forming an angle sharper than CornerThreshold degrees are
// left in place; degenerate (zero-length) neighbor edges count as
// corners.
func Smooth(pd procgeom.PathData, settings SmoothSettings) Result {
	if !settings.valid() || pd.Kind == procgeom.PathSVG || pd.Len() < 3 {
		return unchanged(pd)
	}

	iterations := min(settings.Iterations, maxSmoothIterations)
	out := pd.Clone()
	for it := 0; it < iterations; it++ {
		switch out.Kind {
		case procgeom.PathPoints:
			out.Points = smoothPass(out.Points, out.Closed, settings)
		case procgeom.PathBezier:
			smoothBezierPass(out.Bezier, out.Closed, settings)
		}
	}
	return changed(out)
}

func smoothPass(points []procgeom.Point, closed bool, settings SmoothSettings) []procgeom.Point {
	n := len(points)
	out := make([]procgeom.Point, n)
	copy(out, points)
	for i := 0; i < n; i++ {
		prev, next, ok := neighborIndexes(i, n, closed)
		if !ok || isPreservedCorner(points[prev], points[i], points[next], settings) {
			continue
		}
		avg := points[prev].Add(points[next]).Mul(0.5)
		out[i] = points[i].Lerp(avg, settings.Factor)
	}
	return out
}

func smoothBezierPass(points []procgeom.BezierPoint, closed bool, settings SmoothSettings) {
	n := len(points)
	anchors := make([]procgeom.Point, n)
	for i, bp := range points {
		anchors[i] = bp.Point
	}
	smoothed := smoothPass(anchors, closed, settings)

	handleFactor := settings.Factor * 0.5
	for i := range points {
		points[i].Point = smoothed[i]
		prev, next, ok := neighborIndexes(i, n, closed)
		if !ok {
			continue
		}
		if points[i].CP1 != nil {
			*points[i].CP1 = points[i].CP1.Lerp(smoothed[prev], handleFactor)
		}
		if points[i].CP2 != nil {
			*points[i].CP2 = points[i].CP2.Lerp(smoothed[next], handleFactor)
		}
	}
}

func isPreservedCorner(prev, cur, next procgeom.Point, settings SmoothSettings) bool {
	if !settings.PreserveCorners {
		return false
	}
	deg, degenerate := incidentAngle(prev, cur, next)
	return degenerate || deg < settings.CornerThreshold
}
