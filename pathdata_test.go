package procgeom

import "testing"

func TestComputeBoundsPoints(t *testing.T) {
	tests := []struct {
		name   string
		pd     PathData
		want   Rect
		wantOK bool
	}{
		{
			"simple triangle",
			PointsPath([]Point{{0, 0}, {10, 0}, {5, 8}}, true),
			Rect{Min: Pt(0, 0), Max: Pt(10, 8)},
			true,
		},
		{
			"negative coordinates",
			PointsPath([]Point{{-3, 4}, {2, -7}}, false),
			Rect{Min: Pt(-3, -7), Max: Pt(2, 4)},
			true,
		},
		{
			"empty points",
			PointsPath(nil, false),
			Rect{},
			false,
		},
		{
			"svg has no bounds",
			SVGPath("M0 0L10 10", false),
			Rect{},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.pd.ComputeBounds()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeBoundsIncludesHandles(t *testing.T) {
	pd := BezierPath([]BezierPoint{
		{Point: Point{0, 0}, CP2: &Point{-10, 5}},
		{Point: Point{10, 10}, CP1: &Point{20, 30}},
	}, false)
	got, ok := pd.ComputeBounds()
	if !ok {
		t.Fatal("ComputeBounds reported no bounds")
	}
	want := Rect{Min: Pt(-10, 0), Max: Pt(20, 30)}
	if got != want {
		t.Errorf("bounds = %+v, want %+v (must enclose control handles)", got, want)
	}
}

func TestPathDataCloneIsDeep(t *testing.T) {
	pd := BezierPath([]BezierPoint{
		{Point: Point{1, 2}, CP1: &Point{0, 0}},
	}, true)
	c := pd.Clone()
	c.Bezier[0].CP1.X = 99
	c.Bezier[0].Point.X = 99
	if pd.Bezier[0].CP1.X != 0 || pd.Bezier[0].Point.X != 1 {
		t.Error("Clone shares bezier data with original")
	}

	pp := PointsPath([]Point{{1, 1}}, false)
	cp := pp.Clone()
	cp.Points[0].X = 42
	if pp.Points[0].X != 1 {
		t.Error("Clone shares point slice with original")
	}
}

func TestAnchorPoints(t *testing.T) {
	pd := BezierPath([]BezierPoint{
		{Point: Point{1, 2}, CP1: &Point{9, 9}},
		{Point: Point{3, 4}},
	}, false)
	got := pd.AnchorPoints()
	if len(got) != 2 || got[0] != (Point{1, 2}) || got[1] != (Point{3, 4}) {
		t.Errorf("AnchorPoints() = %v", got)
	}
	if SVGPath("M0 0", false).AnchorPoints() != nil {
		t.Error("svg path should have no anchors")
	}
}
