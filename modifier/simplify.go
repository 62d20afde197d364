package modifier

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/procgeom"
)

// cornerTurnThreshold is the fixed turn angle in degrees above which
// Simplify re-inserts a dropped point when PreserveCorners is set.
const cornerTurnThreshold = 60.0

// SimplifySettings configures the Simplify modifier.
type SimplifySettings struct {
	// Tolerance is the Douglas-Peucker perpendicular distance
	// threshold. Must be >= 0.
	Tolerance float64

	// MinPoints is the smallest allowed output size. When
	// simplification would drop below it, the original path is
	// returned unmodified. Values below 3 are raised to 3.
	MinPoints int

	// PreserveCorners re-inserts dropped points whose local turn angle
	// exceeds 60 degrees and that are not within Tolerance of a
	// retained point.
	PreserveCorners bool
}

// Validate reports why the settings would be rejected, or nil.
func (s SimplifySettings) Validate() error {
	if s.Tolerance < 0 {
		return fmt.Errorf("%w: simplify tolerance %v < 0", ErrInvalidSettings, s.Tolerance)
	}
	return nil
}

func (s SimplifySettings) valid() bool {
	return s.Validate() == nil
}

func (s SimplifySettings) minPoints() int {
	if s.MinPoints < 3 {
		return 3
	}
	return s.MinPoints
}

// Simplify reduces a path's point count with the Douglas-Peucker
// algorithm. Open paths run the classic recursion. Closed paths are
// first rotated so the point forming the largest triangle with its
// neighbors starts the sequence, simplified as an open path with an
// explicit duplicated closing point, then restored to the original
// start order.
func Simplify(pd procgeom.PathData, settings SimplifySettings) Result {
	if !settings.valid() || pd.Kind == procgeom.PathSVG || pd.Len() < 3 {
		return unchanged(pd)
	}

	anchors := pd.AnchorPoints()
	var keep []int
	if pd.Closed {
		keep = simplifyClosed(anchors, settings.Tolerance)
	} else {
		keep = douglasPeucker(anchors, 0, len(anchors)-1, settings.Tolerance)
	}

	if settings.PreserveCorners {
		keep = reinsertCorners(anchors, keep, pd.Closed, settings.Tolerance)
	}

	if len(keep) < settings.minPoints() {
		return unchanged(pd)
	}
	if len(keep) == len(anchors) {
		// Nothing dropped; still report recomputed bounds on a copy.
		return changed(pd.Clone())
	}

	out := pd.Clone()
	switch out.Kind {
	case procgeom.PathPoints:
		pts := make([]procgeom.Point, len(keep))
		for i, idx := range keep {
			pts[i] = anchors[idx]
		}
		out.Points = pts
	case procgeom.PathBezier:
		bps := make([]procgeom.BezierPoint, len(keep))
		for i, idx := range keep {
			bps[i] = out.Bezier[idx].Clone()
		}
		out.Bezier = bps
	}
	return changed(out)
}

// douglasPeucker returns the sorted indices of points retained within
// [first, last].
func douglasPeucker(points []procgeom.Point, first, last int, tolerance float64) []int {
	if last <= first+1 {
		if last == first {
			return []int{first}
		}
		return []int{first, last}
	}

	maxDist := -1.0
	maxIdx := first
	for i := first + 1; i < last; i++ {
		d := pointSegmentDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tolerance {
		return []int{first, last}
	}

	left := douglasPeucker(points, first, maxIdx, tolerance)
	right := douglasPeucker(points, maxIdx, last, tolerance)
	// maxIdx appears at the end of left and the start of right.
	return append(left, right[1:]...)
}

// pointSegmentDistance is the distance from p to segment ab, clamping
// the parametric projection to the segment.
func pointSegmentDistance(p, a, b procgeom.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

// simplifyClosed simplifies a ring. The sequence is rotated so the
// point with the largest neighbor triangle leads (maximizing the
// quality of the initial split), closed with an explicit duplicate,
// simplified as an open path, then mapped back to original indices in
// original order.
func simplifyClosed(points []procgeom.Point, tolerance float64) []int {
	n := len(points)
	start := largestTriangleIndex(points)

	rotated := make([]procgeom.Point, n+1)
	for i := 0; i < n; i++ {
		rotated[i] = points[(start+i)%n]
	}
	rotated[n] = rotated[0] // explicit closing duplicate

	kept := douglasPeucker(rotated, 0, n, tolerance)

	keep := make([]int, 0, len(kept))
	for _, r := range kept {
		if r == n {
			continue // drop the duplicated closing point
		}
		keep = append(keep, (r+start)%n)
	}
	slices.Sort(keep) // back to the original start offset
	return keep
}

// largestTriangleIndex returns the index whose neighbor triangle has
// the largest area.
func largestTriangleIndex(points []procgeom.Point) int {
	n := len(points)
	best := 0
	bestArea := -1.0
	for i := 0; i < n; i++ {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		area := math.Abs(points[i].Sub(prev).Cross(next.Sub(prev)))
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}

// reinsertCorners adds back dropped points whose turn angle is sharper
// than the fixed 60 degree threshold, unless they already lie within
// tolerance of a retained point.
func reinsertCorners(points []procgeom.Point, keep []int, closed bool, tolerance float64) []int {
	kept := make(map[int]bool, len(keep))
	for _, idx := range keep {
		kept[idx] = true
	}

	n := len(points)
	for i := 0; i < n; i++ {
		if kept[i] {
			continue
		}
		prev, next, ok := neighborIndexes(i, n, closed)
		if !ok {
			continue
		}
		deg, degenerate := incidentAngle(points[prev], points[i], points[next])
		if degenerate {
			continue
		}
		turn := 180 - deg
		if turn <= cornerTurnThreshold {
			continue
		}
		if withinToleranceOfKept(points, keep, points[i], tolerance) {
			continue
		}
		kept[i] = true
	}

	out := make([]int, 0, len(kept))
	for i := 0; i < n; i++ {
		if kept[i] {
			out = append(out, i)
		}
	}
	return out
}

func withinToleranceOfKept(points []procgeom.Point, keep []int, p procgeom.Point, tolerance float64) bool {
	for _, idx := range keep {
		if p.Distance(points[idx]) <= tolerance {
			return true
		}
	}
	return false
}
