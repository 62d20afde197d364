// Package modifier rewrites a shape's point and curve data.
//
// Each modifier is a pure function from a [procgeom.PathData] and a
// settings record to a [Result]. Modifiers never mutate their input and
// never fail: invalid settings, degenerate geometry (too few points),
// and opaque svg curve data all return the input unchanged with
// Result.BoundsChanged false. Callers that need to distinguish a no-op
// inspect that flag.
//
// Available modifiers:
//
//   - [Subdivide]: inserts interpolated points between neighbors, with
//     optional post-pass smoothing.
//   - [Smooth]: weighted neighbor averaging with corner preservation.
//   - [Simplify]: Douglas-Peucker point reduction with a minimum point
//     floor and optional corner re-insertion.
//   - [NoiseOffset]: seeded multi-octave hash noise displacement along
//     normals, tangents, or noise-derived directions.
package modifier
