package boolop

import (
	"math"
	"testing"

	"github.com/gogpu/procgeom"
)

type fakeOracle struct {
	bounds map[string]procgeom.Rect
}

func (f fakeOracle) VisualBounds(id string) (procgeom.Rect, bool) {
	r, ok := f.bounds[id]
	return r, ok
}

func squarePoly(x, y, size float64) MultiPolygon {
	return MultiPolygon{Polygon{closeRing(Ring{
		procgeom.Pt(x, y),
		procgeom.Pt(x+size, y),
		procgeom.Pt(x+size, y+size),
		procgeom.Pt(x, y+size),
	})}}
}

func TestOutlineShapePointsRelative(t *testing.T) {
	e := NewEngine()
	mp := squarePoly(100, 200, 50)
	original := rectShape("r", 100, 200, 50, 50)

	out, ok := e.OutlineShape(mp, original, nil, nil)
	if !ok {
		t.Fatal("OutlineShape reported failure")
	}
	if !out.Closed {
		t.Error("outline should be closed")
	}
	if math.Abs(out.Width-50) > epsilon || math.Abs(out.Height-50) > epsilon {
		t.Errorf("outline size %gx%g, want 50x50", out.Width, out.Height)
	}
	// Points are local to the outline's own top-left.
	want := []procgeom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}
	if len(out.Points) != len(want) {
		t.Fatalf("outline has %d points, want %d", len(out.Points), len(want))
	}
	for i, p := range want {
		if math.Abs(out.Points[i].X-p.X) > epsilon || math.Abs(out.Points[i].Y-p.Y) > epsilon {
			t.Errorf("point %d = %v, want %v", i, out.Points[i], p)
		}
	}
}

func TestOutlineShapePositionContextWins(t *testing.T) {
	oracle := fakeOracle{bounds: map[string]procgeom.Rect{
		"r": {Min: procgeom.Pt(500, 500), Max: procgeom.Pt(600, 600)},
	}}
	e := NewEngine(WithBoundsOracle(oracle))
	mp := squarePoly(0, 0, 40)
	original := rectShape("r", 0, 0, 40, 40)

	out, ok := e.OutlineShape(mp, original, &PositionContext{Center: procgeom.Pt(100, 100)}, nil)
	if !ok {
		t.Fatal("OutlineShape reported failure")
	}
	if math.Abs(out.Position.X-80) > epsilon || math.Abs(out.Position.Y-80) > epsilon {
		t.Errorf("position = %v, want (80,80) from explicit context", out.Position)
	}
}

func TestOutlineShapeOracleFallback(t *testing.T) {
	oracle := fakeOracle{bounds: map[string]procgeom.Rect{
		"r": {Min: procgeom.Pt(500, 500), Max: procgeom.Pt(600, 600)},
	}}
	e := NewEngine(WithBoundsOracle(oracle))
	mp := squarePoly(0, 0, 40)
	original := rectShape("r", 0, 0, 40, 40)

	out, _ := e.OutlineShape(mp, original, nil, nil)
	// Oracle center (550,550) minus half the 40x40 result.
	if math.Abs(out.Position.X-530) > epsilon || math.Abs(out.Position.Y-530) > epsilon {
		t.Errorf("position = %v, want (530,530) from oracle bounds", out.Position)
	}
}

func TestOutlineShapeGeometricFallback(t *testing.T) {
	e := NewEngine()
	mp := squarePoly(0, 0, 40)
	original := rectShape("r", 10, 20, 40, 40)

	out, _ := e.OutlineShape(mp, original, nil, nil)
	// Unrotated: center is position + half size, top-left recentered
	// around it with the result's own size.
	if math.Abs(out.Position.X-10) > epsilon || math.Abs(out.Position.Y-20) > epsilon {
		t.Errorf("position = %v, want (10,20)", out.Position)
	}
}

func TestOutlineShapeOracleMissEntryUsesGeometry(t *testing.T) {
	e := NewEngine(WithBoundsOracle(fakeOracle{}))
	mp := squarePoly(0, 0, 40)
	original := rectShape("r", 10, 20, 40, 40)

	out, _ := e.OutlineShape(mp, original, nil, nil)
	if math.Abs(out.Position.X-10) > epsilon || math.Abs(out.Position.Y-20) > epsilon {
		t.Errorf("position = %v, want (10,20) when oracle has no entry", out.Position)
	}
}

func TestOutlineShapeStyleSource(t *testing.T) {
	e := NewEngine()
	mp := squarePoly(0, 0, 40)
	original := rectShape("r", 0, 0, 40, 40)
	original.Properties.Color = "red"

	styled := rectShape("s", 0, 0, 40, 40)
	styled.Properties.Color = "blue"
	styled.Properties.Dash = []float64{4, 2}

	out, _ := e.OutlineShape(mp, original, nil, &styled)
	if out.Style.Color != "blue" {
		t.Errorf("style color = %q, want %q from style source", out.Style.Color, "blue")
	}
	if len(out.Style.Dash) != 2 {
		t.Errorf("style dash = %v, want copied pattern", out.Style.Dash)
	}

	out, _ = e.OutlineShape(mp, original, nil, nil)
	if out.Style.Color != "red" {
		t.Errorf("style color = %q, want %q from original", out.Style.Color, "red")
	}
}

func TestOutlineShapeDegenerateFallsBack(t *testing.T) {
	e := NewEngine()
	original := rectShape("r", 10, 20, 40, 40)
	original.Properties.Color = "red"

	tests := []struct {
		name string
		mp   MultiPolygon
	}{
		{"empty", nil},
		{"two distinct points", MultiPolygon{Polygon{Ring{
			procgeom.Pt(0, 0), procgeom.Pt(1, 0), procgeom.Pt(0, 0),
		}}}},
		{"collapsed ring", MultiPolygon{Polygon{Ring{
			procgeom.Pt(3, 3), procgeom.Pt(3, 3), procgeom.Pt(3, 3),
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := e.OutlineShape(tt.mp, original, nil, nil)
			if ok {
				t.Error("degenerate input should report false")
			}
			if out.Position != original.Position {
				t.Errorf("fallback position = %v, want %v", out.Position, original.Position)
			}
			if out.Style.Color != "red" {
				t.Errorf("fallback style color = %q, want %q", out.Style.Color, "red")
			}
			if math.Abs(out.Width-40) > epsilon || math.Abs(out.Height-40) > epsilon {
				t.Errorf("fallback size %gx%g, want 40x40", out.Width, out.Height)
			}
		})
	}
}
