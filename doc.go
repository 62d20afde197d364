// Package procgeom provides a procedural geometry pipeline for 2D vector
// shapes: instance arrays, path modifiers, and boolean combination.
//
// # Overview
//
// procgeom generates and mutates collections of shape instances for a
// drawing surface. It is organized into three engines plus this root
// package of shared types:
//
//   - array: expands source shapes into positioned copies along linear,
//     grid, circular, mirror, and fractal-branching patterns.
//   - modifier: rewrites a shape's point and curve data (subdivide,
//     smooth, simplify, noise displacement).
//   - boolop: converts shapes to polygon rings, combines them with
//     union/difference/intersection/xor, and reconstructs an outline.
//
// The root package holds the Shape contract, the Transform and instance
// model, the PathData representation, and the transform math the engines
// share (rotation around a pivot, corner-anchor compensation, tangents
// and normals along point sequences).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/procgeom"
//	    "github.com/gogpu/procgeom/array"
//	)
//
//	shape := procgeom.Shape{ID: "a", Type: procgeom.ShapeRectangle}
//	state := procgeom.SingleShapeState(shape, procgeom.Transform{})
//
//	out := array.Circular(state, array.CircularSettings{
//	    Count:    6,
//	    Radius:   120,
//	    EndAngle: 300,
//	}, nil)
//
// # Design
//
// Every engine is a pure function over immutable inputs: processors
// return fresh ShapeStates, modifiers return fresh PathData, and invalid
// settings or degenerate geometry yield the input unchanged rather than
// an error. The only shared mutable state is the boolean engine's
// shape-to-polygon conversion cache, which is owned by a boolop.Engine
// and explicitly clearable.
package procgeom
