package boolop

import (
	polyclip "github.com/ctessum/polyclip-go"

	"github.com/gogpu/procgeom"
)

// Ring is a closed loop of points; the first and last points are
// equal.
type Ring []procgeom.Point

// Polygon is one polygon as a list of rings (outer boundary first;
// subsequent rings are holes).
type Polygon []Ring

// MultiPolygon is a set of polygons: the working representation of a
// boolean operand or result.
type MultiPolygon []Polygon

// Clone returns a deep copy of the polygon set.
func (mp MultiPolygon) Clone() MultiPolygon {
	if mp == nil {
		return nil
	}
	out := make(MultiPolygon, len(mp))
	for i, poly := range mp {
		out[i] = make(Polygon, len(poly))
		for j, ring := range poly {
			out[i][j] = append(Ring(nil), ring...)
		}
	}
	return out
}

// closeRing appends a copy of the first point when the ring is not yet
// explicitly closed.
func closeRing(r Ring) Ring {
	if len(r) == 0 {
		return r
	}
	if r[0] == r[len(r)-1] {
		return r
	}
	return append(r, r[0])
}

// openRing strips the duplicated closing point.
func openRing(r Ring) Ring {
	if len(r) >= 2 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// toClip flattens a MultiPolygon into the clipping primitive's contour
// set. Contours are implicitly closed, so the duplicate closing points
// are dropped.
func toClip(mp MultiPolygon) polyclip.Polygon {
	var out polyclip.Polygon
	for _, poly := range mp {
		for _, ring := range poly {
			open := openRing(ring)
			if len(open) < 3 {
				continue
			}
			contour := make(polyclip.Contour, len(open))
			for i, p := range open {
				contour[i] = polyclip.Point{X: p.X, Y: p.Y}
			}
			out = append(out, contour)
		}
	}
	return out
}

// fromClip converts a clip result back to the ring representation.
// Each contour becomes its own single-ring polygon; the clipping
// primitive does not report hole grouping, and the outline
// reconstruction only consumes the first ring anyway.
func fromClip(p polyclip.Polygon) MultiPolygon {
	var out MultiPolygon
	for _, contour := range p {
		if len(contour) < 3 {
			continue
		}
		ring := make(Ring, len(contour))
		for i, pt := range contour {
			ring[i] = procgeom.Pt(pt.X, pt.Y)
		}
		out = append(out, Polygon{closeRing(ring)})
	}
	return out
}

// FirstRing returns the first ring of the first polygon without its
// closing duplicate, or nil when the set is empty.
func (mp MultiPolygon) FirstRing() Ring {
	if len(mp) == 0 || len(mp[0]) == 0 {
		return nil
	}
	return openRing(mp[0][0])
}

// Bounds returns the bounding box over every ring in the set.
func (mp MultiPolygon) Bounds() (procgeom.Rect, bool) {
	var r procgeom.Rect
	found := false
	for _, poly := range mp {
		for _, ring := range poly {
			for _, p := range ring {
				if !found {
					r = procgeom.Rect{Min: p, Max: p}
					found = true
					continue
				}
				r = r.Expand(p)
			}
		}
	}
	return r, found
}
