package array

import (
	"math"
	"testing"

	"github.com/gogpu/procgeom"
)

func TestLSystemFullTreeCount(t *testing.T) {
	// With probability 1 and two symmetric branches, depth d emits a
	// full binary tree of 2^d - 1 segments per source, plus the
	// retained source.
	tests := []struct {
		depth int
		want  int
	}{
		{1, 1 + 1},
		{2, 1 + 3},
		{3, 1 + 7},
		{4, 1 + 15},
	}
	for _, tt := range tests {
		state := squareAt(0, 0)
		out := LSystem(state, LSystemSettings{
			Depth:  tt.depth,
			Length: 40,
			Angle:  25,
		}, nil)
		if out.Len() != tt.want {
			t.Errorf("depth %d: %d instances, want %d", tt.depth, out.Len(), tt.want)
		}
	}
}

func TestLSystemRetainsSource(t *testing.T) {
	state := squareAt(7, 9)
	out := LSystem(state, LSystemSettings{Depth: 2, Length: 30, Angle: 20}, nil)
	got := out.Instances[0].Transform
	if got.X != 7 || got.Y != 9 {
		t.Errorf("source moved to (%v, %v)", got.X, got.Y)
	}
	if !out.Instances[0].Meta.FirstClone {
		t.Error("retained source should be flagged FirstClone")
	}
}

func TestLSystemTrunkGrowsUpright(t *testing.T) {
	// Default heading is straight up; the first emitted clone sits
	// Length above the source center with zero rotation.
	state := squareAt(0, 0)
	out := LSystem(state, LSystemSettings{Depth: 1, Length: 60, Angle: 30}, nil)

	if out.Len() != 2 {
		t.Fatalf("output %d instances, want 2", out.Len())
	}
	clone := out.Instances[1]
	want := procgeom.Pt(50, -10) // center (50,50) advanced 60 up
	if got := center(clone); !pointsEqual(got, want, epsilon) {
		t.Errorf("trunk clone center %v, want %v", got, want)
	}
	if math.Abs(clone.Transform.Rotation) > epsilon {
		t.Errorf("trunk clone rotation %v, want 0 (upright)", clone.Transform.Rotation)
	}
}

func TestLSystemScalePerIteration(t *testing.T) {
	state := squareAt(0, 0)
	out := LSystem(state, LSystemSettings{
		Depth:             3,
		Length:            100,
		Branches:          []float64{0}, // single straight branch
		ScalePerIteration: 0.5,
	}, nil)

	if out.Len() != 4 {
		t.Fatalf("output %d instances, want source + 3 segments", out.Len())
	}
	// Segment lengths halve per level: 100, 50, 25 going up.
	wantY := []float64{50, -50, -100, -125}
	for i, si := range out.Instances {
		c := center(si)
		if math.Abs(c.Y-wantY[i]) > epsilon {
			t.Errorf("instance %d center y = %v, want %v", i, c.Y, wantY[i])
		}
	}
	// Clone scale shrinks with the level.
	for i, wantScale := range []float64{1, 0.5, 0.25} {
		got := out.Instances[i+1].Transform.ScaleX
		if math.Abs(got-wantScale) > epsilon {
			t.Errorf("level %d scale %v, want %v", i, got, wantScale)
		}
	}
}

func TestLSystemDeterminism(t *testing.T) {
	settings := LSystemSettings{
		Depth:             5,
		Length:            35,
		Angle:             28,
		BranchProbability: 0.7,
		AngleJitter:       12,
		Seed:              1234,
	}
	a := LSystem(squareAt(0, 0), settings, nil)
	b := LSystem(squareAt(0, 0), settings, nil)

	if a.Len() != b.Len() {
		t.Fatalf("instance counts differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Instances {
		ta, tb := a.Instances[i].Transform, b.Instances[i].Transform
		// Bit-identical reproduction, not merely close.
		if ta != tb {
			t.Errorf("instance %d transforms differ: %+v vs %+v", i, ta, tb)
		}
	}
}

func TestLSystemSeedChangesShape(t *testing.T) {
	base := LSystemSettings{
		Depth:             5,
		Length:            35,
		Angle:             28,
		BranchProbability: 0.6,
		AngleJitter:       15,
		Seed:              1,
	}
	other := base
	other.Seed = 2

	a := LSystem(squareAt(0, 0), base, nil)
	b := LSystem(squareAt(0, 0), other, nil)

	if a.Len() == b.Len() {
		same := true
		for i := range a.Instances {
			if a.Instances[i].Transform != b.Instances[i].Transform {
				same = false
				break
			}
		}
		if same {
			t.Error("different seeds grew identical trees")
		}
	}
}

func TestLSystemLCGSequence(t *testing.T) {
	// The published recurrence: state = state*1664525 + 1013904223
	// mod 2^32, draws normalized by 2^32.
	rng := newLCG(0)
	want := []uint32{1013904223, 1196435762, 3519870697}
	for i, w := range want {
		got := rng.Float()
		if got != float64(w)/(1<<32) {
			t.Errorf("draw %d = %v, want %v", i, got, float64(w)/(1<<32))
		}
	}
}

func TestLSystemGroupTracksGroupTransform(t *testing.T) {
	state := squareAt(0, 0)
	settings := LSystemSettings{Depth: 2, Length: 60, Angle: 30}
	base := procgeom.GroupContext{TopLeft: procgeom.Pt(0, 0), Width: 100, Height: 100}

	plain := LSystem(state, settings, &base)
	gt := procgeom.Transform{X: 500, Y: 500, Rotation: math.Pi / 2}
	ctx := base
	ctx.Transform = &gt
	tracked := LSystem(state, settings, &ctx)

	if tracked.Len() != plain.Len() {
		t.Fatalf("instance counts differ: %d vs %d", tracked.Len(), plain.Len())
	}
	// The retained source stays untouched, like the other processors'
	// group mode.
	if got := tracked.Instances[0].Transform.Position(); got != procgeom.Pt(0, 0) {
		t.Errorf("retained source moved to %v", got)
	}
	for i := 1; i < plain.Len(); i++ {
		p := center(plain.Instances[i])
		want := procgeom.RotateAround(p, base.Center(), gt.Rotation).Add(gt.Position())
		if got := center(tracked.Instances[i]); !pointsEqual(got, want, epsilon) {
			t.Errorf("clone %d center %v, want group-transformed %v", i, got, want)
		}
		wantRot := plain.Instances[i].Transform.Rotation + gt.Rotation
		if math.Abs(tracked.Instances[i].Transform.Rotation-wantRot) > epsilon {
			t.Errorf("clone %d rotation %v, want %v", i, tracked.Instances[i].Transform.Rotation, wantRot)
		}
		if !tracked.Instances[i].Meta.GroupClone {
			t.Errorf("clone %d missing GroupClone flag", i)
		}
	}
}

func TestLSystemInvalidSettings(t *testing.T) {
	state := squareAt(0, 0)
	tests := []struct {
		name     string
		settings LSystemSettings
	}{
		{"zero depth", LSystemSettings{Depth: 0, Length: 10}},
		{"zero length", LSystemSettings{Depth: 2, Length: 0}},
		{"probability above 1", LSystemSettings{Depth: 2, Length: 10, BranchProbability: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := LSystem(state, tt.settings, nil)
			if out.Len() != 1 {
				t.Error("invalid settings should return the input unchanged")
			}
		})
	}
}

func TestLSystemDepthCap(t *testing.T) {
	state := squareAt(0, 0)
	out := LSystem(state, LSystemSettings{
		Depth:    30,
		Length:   10,
		Branches: []float64{0},
	}, nil)
	// Cap at 8 levels for a single straight branch: 8 segments.
	if out.Len() != 9 {
		t.Errorf("output %d instances, want capped 9", out.Len())
	}
}
