package array

import (
	"fmt"
	"math"

	"github.com/gogpu/procgeom"
)

// LinearSettings configures the Linear processor.
type LinearSettings struct {
	// Count is the number of copies per source, including the one
	// that coincides with the source. Must be >= 1.
	Count int

	// OffsetX and OffsetY are the per-step displacement.
	OffsetX, OffsetY float64

	// RotateEach adds this many degrees of rotation per step index.
	RotateEach float64

	// ScaleStep multiplies the scale per step index. Zero means 1
	// (no incremental scaling); negative values are invalid.
	ScaleStep float64
}

// Validate reports why the settings would be rejected, or nil.
func (s LinearSettings) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("%w: linear count %d < 1", ErrInvalidSettings, s.Count)
	}
	if s.ScaleStep < 0 {
		return fmt.Errorf("%w: linear scale step %v < 0", ErrInvalidSettings, s.ScaleStep)
	}
	return nil
}

func (s LinearSettings) valid() bool {
	return s.Validate() == nil
}

func (s LinearSettings) scaleStep() float64 {
	if s.ScaleStep == 0 {
		return 1
	}
	return s.ScaleStep
}

// Linear places Count copies of each source instance along fixed-step
// offsets, optionally rotating and scaling incrementally per step.
// Step 0 coincides with the source.
func Linear(state procgeom.ShapeState, settings LinearSettings, group *procgeom.GroupContext) procgeom.ShapeState {
	if !settings.valid() {
		return unchangedCopy(state, "linear")
	}

	step := procgeom.Pt(settings.OffsetX, settings.OffsetY)
	rotStep := procgeom.Radians(settings.RotateEach)
	scaleStep := settings.scaleStep()

	if group != nil {
		return linearGroup(state, settings, group, step, rotStep)
	}

	out := make([]procgeom.ShapeInstance, 0, state.Len()*settings.Count)
	for i, si := range state.Instances {
		srcCenter := instanceCenter(si)
		t := si.Transform.Normalized()
		for k := 0; k < settings.Count; k++ {
			meta := procgeom.Metadata{
				ArrayIndex:     k,
				SourceInstance: i,
				FirstClone:     k == 0,
			}
			center := srcCenter.Add(step.Mul(float64(k)))
			rotation := t.Rotation + rotStep*float64(k)
			scale := math.Pow(scaleStep, float64(k))
			out = append(out, placeClone(si, center, rotation, scale, scale, meta))
		}
	}
	return procgeom.NewShapeState(out)
}

func linearGroup(state procgeom.ShapeState, settings LinearSettings, ctx *procgeom.GroupContext, step procgeom.Point, rotStep float64) procgeom.ShapeState {
	out := sourceCopies(state, true)
	groupCenter := ctx.Center()
	for k := 1; k < settings.Count; k++ {
		target := groupCenter.Add(step.Mul(float64(k)))
		extraRot := rotStep * float64(k)
		for i, si := range state.Instances {
			meta := procgeom.Metadata{ArrayIndex: k, SourceInstance: i}
			out = append(out, groupClone(si, ctx, target, extraRot, meta))
		}
	}
	return procgeom.NewShapeState(out)
}

// GridSettings configures the Grid processor.
type GridSettings struct {
	// Columns and Rows define the lattice. Both must be >= 1.
	Columns, Rows int

	// SpacingX and SpacingY are the cell offsets.
	SpacingX, SpacingY float64

	// RotateEach adds this many degrees of rotation per cell index
	// (row-major).
	RotateEach float64
}

// Validate reports why the settings would be rejected, or nil.
func (s GridSettings) Validate() error {
	if s.Columns < 1 || s.Rows < 1 {
		return fmt.Errorf("%w: grid %dx%d needs at least one column and row",
			ErrInvalidSettings, s.Columns, s.Rows)
	}
	return nil
}

func (s GridSettings) valid() bool {
	return s.Validate() == nil
}

// Grid places Columns x Rows copies of each source instance on a
// row-major lattice. Cell (0, 0) coincides with the source.
func Grid(state procgeom.ShapeState, settings GridSettings, group *procgeom.GroupContext) procgeom.ShapeState {
	if !settings.valid() {
		return unchangedCopy(state, "grid")
	}

	rotStep := procgeom.Radians(settings.RotateEach)

	if group != nil {
		return gridGroup(state, settings, group, rotStep)
	}

	count := settings.Columns * settings.Rows
	out := make([]procgeom.ShapeInstance, 0, state.Len()*count)
	for i, si := range state.Instances {
		srcCenter := instanceCenter(si)
		t := si.Transform.Normalized()
		for row := 0; row < settings.Rows; row++ {
			for col := 0; col < settings.Columns; col++ {
				k := row*settings.Columns + col
				meta := procgeom.Metadata{
					ArrayIndex:     k,
					SourceInstance: i,
					FirstClone:     k == 0,
				}
				center := srcCenter.Add(procgeom.Pt(
					settings.SpacingX*float64(col),
					settings.SpacingY*float64(row),
				))
				rotation := t.Rotation + rotStep*float64(k)
				out = append(out, placeClone(si, center, rotation, 1, 1, meta))
			}
		}
	}
	return procgeom.NewShapeState(out)
}

func gridGroup(state procgeom.ShapeState, settings GridSettings, ctx *procgeom.GroupContext, rotStep float64) procgeom.ShapeState {
	out := sourceCopies(state, true)
	groupCenter := ctx.Center()
	for row := 0; row < settings.Rows; row++ {
		for col := 0; col < settings.Columns; col++ {
			k := row*settings.Columns + col
			if k == 0 {
				continue
			}
			target := groupCenter.Add(procgeom.Pt(
				settings.SpacingX*float64(col),
				settings.SpacingY*float64(row),
			))
			extraRot := rotStep * float64(k)
			for i, si := range state.Instances {
				meta := procgeom.Metadata{ArrayIndex: k, SourceInstance: i}
				out = append(out, groupClone(si, ctx, target, extraRot, meta))
			}
		}
	}
	return procgeom.NewShapeState(out)
}
