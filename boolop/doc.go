// Package boolop combines shapes with polygon boolean operations.
//
// An [Engine] converts shapes to multi-polygon ring sets, memoizing
// the conversions in a fingerprint-keyed cache, folds the set through
// a 2D polygon clipping primitive (union, difference, intersection,
// xor), and reconstructs a renderable outline from the result while
// preserving the visual position and inherited style of the dominant
// source shape.
//
// The reconstruction intentionally uses only the first ring of the
// first polygon: holes and secondary components of a clip result are
// dropped. Callers that need compound output must consume the
// MultiPolygon directly.
package boolop
