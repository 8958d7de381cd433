// Package vector provides the numeric primitives the rest of geomcore is
// built on: Point, Vector, and an affine Matrix.
//
// What:
//
//   - Point is an ordered (x, y) pair with tolerance-based equality.
//   - Vector supports dot product, squared length, and idempotent
//     normalization.
//   - Matrix composes a sequence of primitive transforms (translate,
//     scale, rotate, skew, raw 2x3) and flattens them to a single 6-tuple
//     on first query, caching the result until the next transform is
//     appended.
//
// Why:
//
//   - Every higher component (curve, polygon, segment, nfp, svgconv)
//     needs the same affine-transform semantics SVG itself uses, so the
//     parser and the geometry core agree on what "apply a transform"
//     means.
//
// Errors:
//
//   - NewPoint rejects NaN coordinates (ErrNaNCoordinate); everything
//     else in this package is a pure, always-succeeding computation.
package vector
