package boolop

import (
	"math"

	"github.com/gogpu/procgeom"
)

// StyleSource picks which input shape's visual style the combined
// result inherits. Union and exclude favor the shape with the largest
// approximate area; subtract and intersect keep the first shape in
// input order. A single-shape input short-circuits to that shape.
func StyleSource(shapes []procgeom.Shape, op Op) (procgeom.Shape, bool) {
	if len(shapes) == 0 {
		return procgeom.Shape{}, false
	}
	if len(shapes) == 1 {
		return shapes[0], true
	}

	switch op {
	case OpUnion, OpExclude:
		best := shapes[0]
		bestArea := approximateArea(shapes[0])
		for _, s := range shapes[1:] {
			if a := approximateArea(s); a > bestArea {
				best = s
				bestArea = a
			}
		}
		return best, true
	default:
		return shapes[0], true
	}
}

// approximateArea is a cheap area estimate for the style tie-break:
// width x height for box-like shapes, pi r^2 for circles. It does not
// need to be exact, only deterministic.
func approximateArea(s procgeom.Shape) float64 {
	if s.Type == procgeom.ShapeCircle {
		r := s.RadiusOrDefault()
		return math.Pi * r * r
	}
	return s.Width() * s.Height()
}
