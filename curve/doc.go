// Package curve linearizes quadratic/cubic Bezier curves and SVG
// elliptical arcs into polylines whose every chord lies within a
// caller-supplied tolerance of the true curve.
//
// What:
//
//   - Adaptive subdivision with an explicit LIFO work queue: a segment
//     deemed flat contributes its endpoint; otherwise it is split at
//     t=0.5 and both halves are re-queued, second half behind the
//     first, so traversal reads left to right.
//   - One flatness test per curve kind (quadratic, cubic, arc), all
//     using a squared-distance comparison to avoid a sqrt per test.
//
// Why:
//
//   - svgconv needs every curve-bearing path command turned into a
//     polygon boundary before anything downstream (area, NFP, ...) can
//     run; this is the one place that happens.
//
// Errors:
//
//   - ErrIterationCap: adaptive subdivision exceeded its bound. The
//     curve's final endpoint is still appended, and the caller gets the
//     (truncated-precision but complete) polyline back alongside the
//     error so a pipeline can choose to continue.
package curve
