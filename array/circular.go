package array

import (
	"fmt"
	"math"

	"github.com/gogpu/procgeom"
)

// CircularSettings configures the Circular processor. Angles are in
// degrees.
type CircularSettings struct {
	// Count is the number of positions around the circle, including
	// the one coinciding with the source. Must be >= 2.
	Count int

	// Radius of the circle. Must be > 0.
	Radius float64

	// StartAngle and EndAngle bound the sweep; positions are spaced
	// in (Count - 1) equal steps between them.
	StartAngle, EndAngle float64

	// CenterX and CenterY offset the circle's center from the source
	// instance's visual center (or the group's center in group mode).
	CenterX, CenterY float64

	// RotateAll adds a fixed rotation to every copy.
	RotateAll float64

	// RotateEach adds an incremental rotation per position index.
	RotateEach float64

	// AlignToTangent orients each copy perpendicular to its radius
	// (base rotation = position angle + 90 degrees) instead of
	// keeping the source rotation.
	AlignToTangent bool
}

// Validate reports why the settings would be rejected, or nil.
func (s CircularSettings) Validate() error {
	if s.Count < 2 {
		return fmt.Errorf("%w: circular count %d < 2", ErrInvalidSettings, s.Count)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("%w: circular radius %v <= 0", ErrInvalidSettings, s.Radius)
	}
	return nil
}

func (s CircularSettings) valid() bool {
	return s.Validate() == nil
}

// angleAt returns the sweep angle in radians for position k.
func (s CircularSettings) angleAt(k int) float64 {
	start := procgeom.Radians(s.StartAngle)
	end := procgeom.Radians(s.EndAngle)
	step := (end - start) / float64(s.Count-1)
	return start + step*float64(k)
}

// radiusVector returns the point on the circle at angle a relative to
// the circle's center.
func (s CircularSettings) radiusVector(a float64) procgeom.Point {
	return procgeom.Pt(s.Radius*math.Cos(a), s.Radius*math.Sin(a))
}

// Circular places Count copies of each source instance around a
// circle, swept from StartAngle to EndAngle. The circle's naive center
// (source center plus the configured offset) is pulled back along the
// start angle so position 0 lands exactly on the source transform.
func Circular(state procgeom.ShapeState, settings CircularSettings, group *procgeom.GroupContext) procgeom.ShapeState {
	if !settings.valid() {
		return unchangedCopy(state, "circular")
	}

	if group != nil {
		return circularGroup(state, settings, group)
	}

	rotAll := procgeom.Radians(settings.RotateAll)
	rotEach := procgeom.Radians(settings.RotateEach)
	centerOffset := procgeom.Pt(settings.CenterX, settings.CenterY)
	startVec := settings.radiusVector(settings.angleAt(0))

	out := make([]procgeom.ShapeInstance, 0, state.Len()*settings.Count)
	for i, si := range state.Instances {
		t := si.Transform.Normalized()
		naive := instanceCenter(si).Add(centerOffset)
		circleCenter := naive.Sub(startVec)

		for k := 0; k < settings.Count; k++ {
			a := settings.angleAt(k)
			center := circleCenter.Add(settings.radiusVector(a))

			base := t.Rotation
			if settings.AlignToTangent {
				base = a + math.Pi/2
			}
			rotation := base + rotAll + rotEach*float64(k)

			meta := procgeom.Metadata{
				ArrayIndex:     k,
				SourceInstance: i,
				FirstClone:     k == 0,
			}
			out = append(out, placeClone(si, center, rotation, 1, 1, meta))
		}
	}
	return procgeom.NewShapeState(out)
}

// circularGroup treats the input as one rigid group: positions are
// computed from the group's center, and each non-zero index rotates
// the whole group around its target center. Index 0 keeps the source
// instances untouched.
func circularGroup(state procgeom.ShapeState, settings CircularSettings, ctx *procgeom.GroupContext) procgeom.ShapeState {
	rotAll := procgeom.Radians(settings.RotateAll)
	rotEach := procgeom.Radians(settings.RotateEach)
	startAngle := settings.angleAt(0)

	naive := ctx.Center().Add(procgeom.Pt(settings.CenterX, settings.CenterY))
	circleCenter := naive.Sub(settings.radiusVector(startAngle))

	out := sourceCopies(state, true)
	for k := 1; k < settings.Count; k++ {
		a := settings.angleAt(k)
		target := circleCenter.Add(settings.radiusVector(a))

		extraRot := rotAll + rotEach*float64(k)
		if settings.AlignToTangent {
			extraRot += a - startAngle
		}

		for i, si := range state.Instances {
			meta := procgeom.Metadata{ArrayIndex: k, SourceInstance: i}
			out = append(out, groupClone(si, ctx, target, extraRot, meta))
		}
	}
	return procgeom.NewShapeState(out)
}
