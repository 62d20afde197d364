package procgeom

// Metadata carries an instance's provenance through processor passes.
// The engine assigns these fields but does not interpret them;
// downstream consumers use them to decide visibility and selection.
type Metadata struct {
	// ArrayIndex is the instance's position within the generated
	// pattern (0 for the copy that coincides with its source).
	ArrayIndex int

	// SourceInstance is the index of the input instance this one was
	// derived from.
	SourceInstance int

	// FirstClone marks the pattern copy that overlaps its source.
	FirstClone bool

	// GroupClone marks instances generated under a group context.
	GroupClone bool
}

// ShapeInstance is one positioned, rotated, scaled copy of a source
// shape. Instances own their Shape: processors clone shapes when
// deriving new instances.
type ShapeInstance struct {
	Shape     Shape
	Transform Transform
	Index     int
	Meta      Metadata
}

// Clone returns a deep copy of the instance.
func (si ShapeInstance) Clone() ShapeInstance {
	c := si
	c.Shape = si.Shape.Clone()
	return c
}

// ShapeState is an ordered collection of shape instances. Order is
// significant (z-order and selection order). Processors never mutate a
// state in place; each pass returns a fresh state with contiguous,
// reassigned indexes.
type ShapeState struct {
	Instances []ShapeInstance
}

// NewShapeState creates a state from the given instances, reassigning
// indexes to be 0-based and contiguous.
func NewShapeState(instances []ShapeInstance) ShapeState {
	for i := range instances {
		instances[i].Index = i
		instances[i].Transform = instances[i].Transform.Normalized()
	}
	return ShapeState{Instances: instances}
}

// SingleShapeState creates a state holding one instance of the shape.
func SingleShapeState(shape Shape, transform Transform) ShapeState {
	return NewShapeState([]ShapeInstance{{
		Shape:     shape,
		Transform: transform,
	}})
}

// Clone returns a deep copy of the state.
func (s ShapeState) Clone() ShapeState {
	instances := make([]ShapeInstance, len(s.Instances))
	for i, si := range s.Instances {
		instances[i] = si.Clone()
	}
	return ShapeState{Instances: instances}
}

// Len returns the number of instances.
func (s ShapeState) Len() int {
	return len(s.Instances)
}

// GroupContext tells a processor to treat the entire input state as one
// rigid group: position and rotation math is computed relative to the
// group's top-left and center rather than per instance.
type GroupContext struct {
	// TopLeft is the group's bounding-box top-left corner.
	TopLeft Point

	// Width and Height are the group's bounding-box dimensions.
	Width, Height float64

	// Transform, when non-nil, is the group's own current transform.
	// Processors re-apply it around the group's bounding-box center so
	// clones keep tracking live edits to the group.
	Transform *Transform
}

// Center returns the group's bounding-box center.
func (g GroupContext) Center() Point {
	return Point{X: g.TopLeft.X + g.Width/2, Y: g.TopLeft.Y + g.Height/2}
}
