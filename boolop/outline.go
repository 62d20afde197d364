package boolop

import (
	"log/slog"

	"github.com/gogpu/procgeom"
)

// BoundsOracle reports a shape's visually-rotated bounding box when
// the host can provide one. Absence degrades gracefully to geometric
// computation.
type BoundsOracle interface {
	VisualBounds(shapeID string) (procgeom.Rect, bool)
}

// PositionContext supplies an explicit placement for the reconstructed
// outline: the collective bounds center of the source content. Used
// when the boolean inputs came from an array-generated instance group.
type PositionContext struct {
	Center procgeom.Point
}

// Style is the visual style inherited by a combined outline.
type Style struct {
	Color       string
	FillColor   string
	StrokeWidth *float64
	Fill        *bool
	Dash        []float64
}

func styleOf(s procgeom.Shape) Style {
	return Style{
		Color:       s.Properties.Color,
		FillColor:   s.Properties.FillColor,
		StrokeWidth: s.Properties.StrokeWidth,
		Fill:        s.Properties.Fill,
		Dash:        append([]float64(nil), s.Properties.Dash...),
	}
}

// Outline is the reconstructed result of a boolean combination: a
// closed anchor-point outline with no curvature, positioned so the
// local coordinate space starts at the outline's top-left.
type Outline struct {
	Position      procgeom.Point
	Width, Height float64
	Points        []procgeom.Point
	Closed        bool
	Style         Style
}

// OutlineShape reconstructs a renderable outline from the first ring
// of the first polygon; holes and secondary components are dropped.
//
// The outline's placement is chosen in priority order from the
// explicit position context, the bounds oracle's visually-rotated box
// for the original shape, and finally a geometric fallback from the
// original shape's stored position and size — so the result visually
// lands where the dominant source content was. Points are stored
// relative to the outline's own top-left.
//
// Empty or malformed input (no ring, fewer than 3 distinct vertices)
// falls back to the original shape's own outline and reports false.
func (e *Engine) OutlineShape(mp MultiPolygon, original procgeom.Shape, pos *PositionContext, styleSrc *procgeom.Shape) (Outline, bool) {
	style := styleOf(original)
	if styleSrc != nil {
		style = styleOf(*styleSrc)
	}

	ring := mp.FirstRing()
	if len(distinctPoints(ring)) < 3 {
		procgeom.Logger().Debug("degenerate boolean result, falling back to original shape",
			slog.String("shape", original.ID), slog.Int("vertices", len(ring)))
		return fallbackOutline(original, style), false
	}

	bounds := procgeom.BoundsOf(ring)
	w, h := bounds.Width(), bounds.Height()

	var topLeft procgeom.Point
	switch {
	case pos != nil:
		topLeft = pos.Center.Sub(procgeom.Pt(w/2, h/2))
	case e.oracle != nil:
		if vb, ok := e.oracle.VisualBounds(original.ID); ok {
			topLeft = vb.Center().Sub(procgeom.Pt(w/2, h/2))
			break
		}
		fallthrough
	default:
		center := procgeom.CenterForCorner(original.Position, original.Width(), original.Height(), original.Rotation)
		topLeft = center.Sub(procgeom.Pt(w/2, h/2))
	}

	points := make([]procgeom.Point, len(ring))
	for i, p := range ring {
		points[i] = p.Sub(bounds.Min)
	}

	return Outline{
		Position: topLeft,
		Width:    w,
		Height:   h,
		Points:   points,
		Closed:   true,
		Style:    style,
	}, true
}

// fallbackOutline rebuilds an outline from the original shape's own
// properties.
func fallbackOutline(original procgeom.Shape, style Style) Outline {
	var points []procgeom.Point
	if pd, ok := procgeom.PathFromShape(original); ok {
		points = append([]procgeom.Point(nil), pd.AnchorPoints()...)
	}
	return Outline{
		Position: original.Position,
		Width:    original.Width(),
		Height:   original.Height(),
		Points:   points,
		Closed:   true,
		Style:    style,
	}
}

func distinctPoints(ring Ring) []procgeom.Point {
	var out []procgeom.Point
	for _, p := range ring {
		seen := false
		for _, q := range out {
			if p == q {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}
