package modifier

import (
	"errors"
	"math"

	"github.com/gogpu/procgeom"
)

// ErrInvalidSettings is wrapped by every settings Validate failure.
var ErrInvalidSettings = errors.New("modifier: invalid settings")

// Result is the outcome of applying one modifier.
//
// On the unchanged path (invalid settings, degenerate geometry, opaque
// curve data) BoundsChanged is false and Path is the input. Otherwise
// Path carries fresh data with its cached bounds recomputed, and
// NewBounds repeats them for convenience.
type Result struct {
	Path          procgeom.PathData
	BoundsChanged bool
	NewBounds     procgeom.Rect
}

// unchanged returns the early-exit result for invalid or degenerate
// input.
func unchanged(pd procgeom.PathData) Result {
	return Result{Path: pd}
}

// changed finalizes a modified path: recomputes tight bounds, caches
// them on the path, and reports the change.
func changed(pd procgeom.PathData) Result {
	bounds, ok := pd.ComputeBounds()
	if ok {
		pd.Bounds = &bounds
	} else {
		pd.Bounds = nil
	}
	return Result{Path: pd, BoundsChanged: true, NewBounds: bounds}
}

// incidentAngle returns the angle in degrees between the two edges
// meeting at cur, in [0, 180]. A zero-length neighbor edge reports
// degenerate, which corner-preserving modifiers treat as a corner.
func incidentAngle(prev, cur, next procgeom.Point) (deg float64, degenerate bool) {
	v1 := prev.Sub(cur)
	v2 := next.Sub(cur)
	l1 := v1.Length()
	l2 := v2.Length()
	if l1 == 0 || l2 == 0 {
		return 0, true
	}
	cos := v1.Dot(v2) / (l1 * l2)
	cos = math.Max(-1, math.Min(1, cos))
	return procgeom.Degrees(math.Acos(cos)), false
}

// neighborIndexes returns the previous and next index for position i,
// wrapping when closed. ok is false at open endpoints.
func neighborIndexes(i, n int, closed bool) (prev, next int, ok bool) {
	if closed {
		return (i - 1 + n) % n, (i + 1) % n, true
	}
	if i == 0 || i == n-1 {
		return 0, 0, false
	}
	return i - 1, i + 1, true
}
