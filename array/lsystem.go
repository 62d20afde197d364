package array

import (
	"fmt"
	"math"

	"github.com/gogpu/procgeom"
)

// maxLSystemDepth caps recursion: each level can multiply the branch
// count, so deep settings explode combinatorially.
const maxLSystemDepth = 8

// levelSeedStride spaces the per-level reseeding of the branch RNG.
const levelSeedStride = 997

// LSystemSettings configures the fractal branch processor. Angles are
// in degrees.
type LSystemSettings struct {
	// Depth is the recursion depth. Must be >= 1; capped at 8.
	Depth int

	// Length is the turtle's advance per segment. Must be > 0.
	Length float64

	// Angle is the symmetric branch spread used when Branches is
	// empty: each step recurses along +Angle and -Angle.
	Angle float64

	// Branches, when non-empty, lists the explicit branch angles
	// taken at every step.
	Branches []float64

	// BranchProbability in [0, 1] is the chance each branch is taken.
	// Zero means 1 (always branch).
	BranchProbability float64

	// AngleJitter perturbs each taken branch angle by a uniform
	// random value in [-AngleJitter, +AngleJitter] degrees.
	AngleJitter float64

	// ScalePerIteration scales segment length and clone size per
	// recursion level (scale^level). Zero means 1. Must be > 0.
	ScalePerIteration float64

	// Seed drives the deterministic branch RNG: identical seeds and
	// settings reproduce identical instance sets.
	Seed int

	// InitialHeading is the turtle's starting direction in degrees.
	// Zero means straight up (-90 in y-down screen coordinates).
	InitialHeading float64
}

// Validate reports why the settings would be rejected, or nil.
func (s LSystemSettings) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("%w: lsystem depth %d < 1", ErrInvalidSettings, s.Depth)
	}
	if s.Length <= 0 {
		return fmt.Errorf("%w: lsystem length %v <= 0", ErrInvalidSettings, s.Length)
	}
	if s.ScalePerIteration < 0 {
		return fmt.Errorf("%w: lsystem scale per iteration %v < 0", ErrInvalidSettings, s.ScalePerIteration)
	}
	if s.BranchProbability < 0 || s.BranchProbability > 1 {
		return fmt.Errorf("%w: lsystem branch probability %v outside [0, 1]", ErrInvalidSettings, s.BranchProbability)
	}
	return nil
}

func (s LSystemSettings) valid() bool {
	return s.Validate() == nil
}

func (s LSystemSettings) branchAngles() []float64 {
	if len(s.Branches) > 0 {
		return s.Branches
	}
	return []float64{s.Angle, -s.Angle}
}

func (s LSystemSettings) probability() float64 {
	if s.BranchProbability == 0 {
		return 1
	}
	return s.BranchProbability
}

func (s LSystemSettings) scale() float64 {
	if s.ScalePerIteration == 0 {
		return 1
	}
	return s.ScalePerIteration
}

func (s LSystemSettings) heading() float64 {
	if s.InitialHeading == 0 {
		return -math.Pi / 2
	}
	return procgeom.Radians(s.InitialHeading)
}

// LSystem grows a fractal branch structure from each source instance
// with a turtle interpreter: the turtle advances by Length along its
// heading, emits a clone at the new position, then recurses along the
// branch angles with per-level scaled segments. Source instances are
// retained and children appended.
//
// Clone rotation is heading + 90 degrees, so a turtle heading straight
// up emits upright clones. Branch decisions come from a linear
// congruential generator reseeded per recursion level as
// seed + level*997; identical seeds reproduce identical output.
//
// In group mode the tree grows in the group's untransformed space and
// each emitted clone has the group's own transform layer re-applied
// around the source group's center, so the structure tracks live edits
// to the group.
func LSystem(state procgeom.ShapeState, settings LSystemSettings, group *procgeom.GroupContext) procgeom.ShapeState {
	if !settings.valid() {
		return unchangedCopy(state, "lsystem")
	}

	depth := min(settings.Depth, maxLSystemDepth)
	isGroup := group != nil

	out := sourceCopies(state, isGroup)
	for i, si := range state.Instances {
		g := grower{
			settings: settings,
			source:   si,
			srcIndex: i,
			group:    group,
			isGroup:  isGroup,
		}
		heading := settings.heading() + si.Transform.Normalized().Rotation
		out = g.grow(out, instanceCenter(si), heading, depth, 0)
	}
	return procgeom.NewShapeState(out)
}

// grower carries the per-source turtle state through the recursion.
type grower struct {
	settings LSystemSettings
	source   procgeom.ShapeInstance
	srcIndex int
	group    *procgeom.GroupContext
	isGroup  bool
	emitted  int
}

// grow advances one segment, emits a clone, and recurses along the
// branch angles. It returns the accumulator so the recursion stays
// free of shared mutable state.
func (g *grower) grow(acc []procgeom.ShapeInstance, pos procgeom.Point, heading float64, depth, level int) []procgeom.ShapeInstance {
	if depth <= 0 {
		return acc
	}

	scale := math.Pow(g.settings.scale(), float64(level))
	next := pos.Add(procgeom.Pt(math.Cos(heading), math.Sin(heading)).Mul(g.settings.Length * scale))

	g.emitted++
	meta := procgeom.Metadata{
		ArrayIndex:     g.emitted,
		SourceInstance: g.srcIndex,
		GroupClone:     g.isGroup,
	}
	cloneCenter, cloneRot := applyGroupTransform(g.group, next, heading+math.Pi/2)
	acc = append(acc, placeClone(g.source, cloneCenter, cloneRot, scale, scale, meta))

	rng := newLCG(uint32(g.settings.Seed + level*levelSeedStride))
	prob := g.settings.probability()
	for _, branch := range g.settings.branchAngles() {
		if rng.Float() > prob {
			continue
		}
		jitter := 0.0
		if g.settings.AngleJitter > 0 {
			jitter = (rng.Float()*2 - 1) * procgeom.Radians(g.settings.AngleJitter)
		}
		acc = g.grow(acc, next, heading+procgeom.Radians(branch)+jitter, depth-1, level+1)
	}
	return acc
}

// lcg is the explicit-state linear congruential generator used for
// branch decisions:
//
//	state = (state*1664525 + 1013904223) mod 2^32
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

// Float advances the generator and returns a draw in [0, 1).
func (l *lcg) Float() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / (1 << 32)
}
