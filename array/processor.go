package array

import (
	"errors"
	"log/slog"

	"github.com/gogpu/procgeom"
)

// ErrInvalidSettings is wrapped by every settings Validate failure.
var ErrInvalidSettings = errors.New("array: invalid settings")

// unchangedCopy returns a fresh state mirroring the input, used when
// settings fail validation.
func unchangedCopy(state procgeom.ShapeState, processor string) procgeom.ShapeState {
	procgeom.Logger().Debug("array settings rejected, returning input unchanged",
		slog.String("processor", processor))
	return procgeom.NewShapeState(state.Clone().Instances)
}

// scaledSize returns the instance's effective width and height under
// its transform scale.
func scaledSize(si procgeom.ShapeInstance) (w, h float64) {
	t := si.Transform.Normalized()
	return si.Shape.Width() * t.ScaleX, si.Shape.Height() * t.ScaleY
}

// instanceCenter returns the instance's visual center, honoring the
// host's corner-anchored rotation convention.
func instanceCenter(si procgeom.ShapeInstance) procgeom.Point {
	w, h := scaledSize(si)
	return procgeom.CenterForCorner(si.Transform.Position(), w, h, si.Transform.Rotation)
}

// placeClone derives a clone of si whose visual center lands on center
// with the given rotation and scale multipliers, emitting a
// corner-anchored transform.
func placeClone(si procgeom.ShapeInstance, center procgeom.Point, rotation, scaleMulX, scaleMulY float64, meta procgeom.Metadata) procgeom.ShapeInstance {
	t := si.Transform.Normalized()
	scaleX := t.ScaleX * scaleMulX
	scaleY := t.ScaleY * scaleMulY
	w := si.Shape.Width() * scaleX
	h := si.Shape.Height() * scaleY
	corner := procgeom.CornerForCenter(center, w, h, rotation)

	return procgeom.ShapeInstance{
		Shape: si.Shape.Clone(),
		Transform: procgeom.Transform{
			X:        corner.X,
			Y:        corner.Y,
			Rotation: rotation,
			ScaleX:   scaleX,
			ScaleY:   scaleY,
		},
		Meta: meta,
	}
}

// applyGroupTransform re-applies the group's own transform layer to a
// clone placement, rotating around the source group's bounding-box
// center and then translating, so clones keep tracking live edits to
// the group. A nil context or missing transform passes the placement
// through unchanged.
func applyGroupTransform(ctx *procgeom.GroupContext, center procgeom.Point, rotation float64) (procgeom.Point, float64) {
	if ctx == nil || ctx.Transform == nil {
		return center, rotation
	}
	gt := ctx.Transform.Normalized()
	center = procgeom.RotateAround(center, ctx.Center(), gt.Rotation)
	center = center.Add(gt.Position())
	return center, rotation + gt.Rotation
}

// groupClone re-expresses a source instance relative to a rigid group:
// the instance's offset from the source group's center is rotated by
// extraRot and attached to the target group center, then the group's
// own transform layer is re-applied.
func groupClone(si procgeom.ShapeInstance, ctx *procgeom.GroupContext, targetCenter procgeom.Point, extraRot float64, meta procgeom.Metadata) procgeom.ShapeInstance {
	groupCenter := ctx.Center()
	offset := instanceCenter(si).Sub(groupCenter)
	center := targetCenter.Add(offset.Rotate(extraRot))
	rotation := si.Transform.Normalized().Rotation + extraRot
	center, rotation = applyGroupTransform(ctx, center, rotation)

	meta.GroupClone = true
	return placeClone(si, center, rotation, 1, 1, meta)
}

// sourceCopies clones the input instances unchanged, tagging them as
// the pattern's first (overlapping) copies.
func sourceCopies(state procgeom.ShapeState, group bool) []procgeom.ShapeInstance {
	out := make([]procgeom.ShapeInstance, 0, len(state.Instances))
	for i, si := range state.Instances {
		c := si.Clone()
		c.Meta = procgeom.Metadata{
			ArrayIndex:     0,
			SourceInstance: i,
			FirstClone:     true,
			GroupClone:     group,
		}
		out = append(out, c)
	}
	return out
}
