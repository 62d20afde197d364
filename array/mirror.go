package array

import (
	"fmt"
	"math"

	"github.com/gogpu/procgeom"
)

// MirrorAxis selects the reflection axis of the Mirror processor.
type MirrorAxis string

// Reflection axes.
const (
	// MirrorHorizontal reflects across the horizontal line y = AxisY.
	MirrorHorizontal MirrorAxis = "horizontal"

	// MirrorVertical reflects across the vertical line x = AxisX.
	MirrorVertical MirrorAxis = "vertical"

	// MirrorPoint reflects through the point (AxisX, AxisY).
	MirrorPoint MirrorAxis = "point"
)

// MirrorSettings configures the Mirror processor.
type MirrorSettings struct {
	Axis MirrorAxis

	// AxisX positions a vertical axis or the reflection point.
	AxisX float64

	// AxisY positions a horizontal axis or the reflection point.
	AxisY float64
}

// Validate reports why the settings would be rejected, or nil.
func (s MirrorSettings) Validate() error {
	switch s.Axis {
	case MirrorHorizontal, MirrorVertical, MirrorPoint:
		return nil
	default:
		return fmt.Errorf("%w: unknown mirror axis %q", ErrInvalidSettings, s.Axis)
	}
}

func (s MirrorSettings) valid() bool {
	return s.Validate() == nil
}

// Mirror appends a reflected copy of every source instance: the output
// holds the originals followed by their reflections. Rotation is
// negated or reflected according to the axis orientation.
//
// In group mode the reflection of each instance center equals the
// reflected group center plus the reflected offset, so the rigid group
// survives intact; the group's own transform layer is then re-applied
// around the source group's center so reflections track live edits to
// the group.
func Mirror(state procgeom.ShapeState, settings MirrorSettings, group *procgeom.GroupContext) procgeom.ShapeState {
	if !settings.valid() {
		return unchangedCopy(state, "mirror")
	}

	isGroup := group != nil
	out := sourceCopies(state, isGroup)
	for i, si := range state.Instances {
		center := instanceCenter(si)
		t := si.Transform.Normalized()

		var mirrored procgeom.Point
		var rotation float64
		switch settings.Axis {
		case MirrorHorizontal:
			mirrored = procgeom.Pt(center.X, 2*settings.AxisY-center.Y)
			rotation = -t.Rotation
		case MirrorVertical:
			mirrored = procgeom.Pt(2*settings.AxisX-center.X, center.Y)
			rotation = math.Pi - t.Rotation
		case MirrorPoint:
			mirrored = procgeom.Pt(2*settings.AxisX-center.X, 2*settings.AxisY-center.Y)
			rotation = t.Rotation + math.Pi
		}

		mirrored, rotation = applyGroupTransform(group, mirrored, rotation)

		meta := procgeom.Metadata{
			ArrayIndex:     1,
			SourceInstance: i,
			GroupClone:     isGroup,
		}
		out = append(out, placeClone(si, mirrored, rotation, 1, 1, meta))
	}
	return procgeom.NewShapeState(out)
}
