package modifier

import (
	"math"
	"testing"

	"github.com/gogpu/procgeom"
)

func noiseTestPath() procgeom.PathData {
	return procgeom.PointsPath([]procgeom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 5}, {X: 30, Y: 5}, {X: 40, Y: 0},
	}, false)
}

func TestNoiseOffsetDeterminism(t *testing.T) {
	settings := NoiseSettings{Amplitude: 5, Frequency: 0.3, Octaves: 4, Seed: 42}
	a := NoiseOffset(noiseTestPath(), settings)
	b := NoiseOffset(noiseTestPath(), settings)
	if len(a.Path.Points) != len(b.Path.Points) {
		t.Fatal("point counts differ")
	}
	for i := range a.Path.Points {
		// Bit-identical, not merely close.
		if a.Path.Points[i] != b.Path.Points[i] {
			t.Errorf("point %d differs: %v vs %v", i, a.Path.Points[i], b.Path.Points[i])
		}
	}
}

func TestNoiseOffsetSeedChangesOutput(t *testing.T) {
	base := NoiseSettings{Amplitude: 5, Frequency: 0.3, Octaves: 4, Seed: 1}
	other := base
	other.Seed = 2
	a := NoiseOffset(noiseTestPath(), base)
	b := NoiseOffset(noiseTestPath(), other)
	same := true
	for i := range a.Path.Points {
		if a.Path.Points[i] != b.Path.Points[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical displacement")
	}
}

func TestNoiseOffsetDisplacementBounded(t *testing.T) {
	settings := NoiseSettings{Amplitude: 3, Frequency: 0.7, Octaves: 6, Seed: 9}
	in := noiseTestPath()
	res := NoiseOffset(in, settings)
	for i := range res.Path.Points {
		d := res.Path.Points[i].Distance(in.Points[i])
		if d > settings.Amplitude+1e-9 {
			t.Errorf("point %d displaced by %v, beyond amplitude %v", i, d, settings.Amplitude)
		}
	}
}

func TestNoiseOffsetTangentDirection(t *testing.T) {
	// A straight horizontal path displaced along tangents stays on
	// the x-axis.
	in := procgeom.PointsPath([]procgeom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}, false)
	res := NoiseOffset(in, NoiseSettings{
		Amplitude: 4, Frequency: 0.5, Octaves: 2, Seed: 7,
		Direction: NoiseTangent,
	})
	for i, p := range res.Path.Points {
		if p.Y != 0 {
			t.Errorf("point %d = %v, tangent displacement left the axis", i, p)
		}
	}
}

func TestNoiseOffsetNormalDirection(t *testing.T) {
	// A straight horizontal path displaced along normals moves only
	// vertically.
	in := procgeom.PointsPath([]procgeom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}, false)
	res := NoiseOffset(in, NoiseSettings{
		Amplitude: 4, Frequency: 0.5, Octaves: 2, Seed: 7,
		Direction: NoiseNormal,
	})
	for i, p := range res.Path.Points {
		if p.X != in.Points[i].X {
			t.Errorf("point %d = %v, normal displacement moved along the axis", i, p)
		}
	}
}

func TestNoiseOffsetBezierHandles(t *testing.T) {
	cp1 := procgeom.Pt(5, 0)
	cp2 := procgeom.Pt(15, 0)
	in := procgeom.BezierPath([]procgeom.BezierPoint{
		{Point: procgeom.Point{X: 0}},
		{Point: procgeom.Point{X: 10}, CP1: &cp1, CP2: &cp2},
		{Point: procgeom.Point{X: 20}},
	}, false)
	settings := NoiseSettings{Amplitude: 10, Frequency: 0.4, Octaves: 3, Seed: 3}
	res := NoiseOffset(in, settings)

	bp := res.Path.Bezier[1]
	if bp.CP1 == nil || bp.CP2 == nil {
		t.Fatal("handles lost")
	}
	// Handles move at most 0.3x the amplitude.
	if d := bp.CP1.Distance(cp1); d > settings.Amplitude*0.3+1e-9 {
		t.Errorf("CP1 displaced by %v, beyond 0.3x amplitude", d)
	}
	if d := bp.CP2.Distance(cp2); d > settings.Amplitude*0.3+1e-9 {
		t.Errorf("CP2 displaced by %v, beyond 0.3x amplitude", d)
	}
	// Handle samples are decorrelated from the anchor sample.
	anchorDelta := bp.Point.Sub(in.Bezier[1].Point)
	cp1Delta := bp.CP1.Sub(cp1)
	if anchorDelta.Mul(0.3) == cp1Delta {
		t.Error("handle displacement mirrors anchor displacement; expected independent sample")
	}
}

func TestNoiseOffsetRejectsInvalidInput(t *testing.T) {
	valid := noiseTestPath()
	tests := []struct {
		name     string
		pd       procgeom.PathData
		settings NoiseSettings
	}{
		{"zero frequency", valid, NoiseSettings{Amplitude: 1, Frequency: 0, Octaves: 2}},
		{"octaves too low", valid, NoiseSettings{Amplitude: 1, Frequency: 1, Octaves: 0}},
		{"octaves too high", valid, NoiseSettings{Amplitude: 1, Frequency: 1, Octaves: 9}},
		{"unknown direction", valid, NoiseSettings{Amplitude: 1, Frequency: 1, Octaves: 2, Direction: "spiral"}},
		{"single point", procgeom.PointsPath([]procgeom.Point{{X: 0, Y: 0}}, false), NoiseSettings{Amplitude: 1, Frequency: 1, Octaves: 2}},
		{"svg pass-through", procgeom.SVGPath("M0 0", false), NoiseSettings{Amplitude: 1, Frequency: 1, Octaves: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NoiseOffset(tt.pd, tt.settings)
			if res.BoundsChanged {
				t.Error("expected unchanged result")
			}
		})
	}
}

func TestHashNoiseRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.137
		n := hashNoise(x, x*0.5)
		if n < -1 || n > 1 || math.IsNaN(n) {
			t.Fatalf("hashNoise(%v) = %v out of [-1, 1]", x, n)
		}
	}
}

func TestFractalNoiseRange(t *testing.T) {
	settings := NoiseSettings{Frequency: 0.9, Octaves: 8, Seed: 17}
	for i := 0; i < 500; i++ {
		n := fractalNoise(float64(i), settings)
		if n < -1 || n > 1 || math.IsNaN(n) {
			t.Fatalf("fractalNoise(%d) = %v out of [-1, 1]", i, n)
		}
	}
}

func TestNoiseOffsetDoesNotMutateInput(t *testing.T) {
	in := noiseTestPath()
	snapshot := append([]procgeom.Point(nil), in.Points...)
	_ = NoiseOffset(in, NoiseSettings{Amplitude: 5, Frequency: 0.3, Octaves: 4, Seed: 42})
	for i := range in.Points {
		if in.Points[i] != snapshot[i] {
			t.Fatal("NoiseOffset mutated its input")
		}
	}
}
