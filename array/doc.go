// Package array expands source shape instances into positioned copies
// along geometric patterns.
//
// Each processor is a pure function from a [procgeom.ShapeState], a
// settings record, and an optional [procgeom.GroupContext] to a fresh
// ShapeState. For N source instances and pattern size K the output
// holds N*K instances, except [LSystem], which retains the sources and
// appends the generated branches. Invalid settings return a copy of
// the input unchanged.
//
// Hosts that anchor rotation at a shape's top-left corner receive
// compensated transforms: processors compute center-based targets and
// convert them with [procgeom.CornerForCenter], so copies visually
// rotate around their centers.
//
// When a GroupContext is supplied, the whole input state is treated as
// one rigid group: pattern math runs on the group's bounding box, and
// every clone's position is expressed relative to the group's center
// so later edits to the group carry over to the clones.
package array
