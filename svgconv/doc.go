// Package svgconv turns a parsed SVG document into a
// shape.ModelsToPlace: the parts a placement search must fit and the
// sheets it may fit them onto.
//
// What:
//
//   - Decode(r) reads raw XML into a generic DOM-like Node tree using
//     encoding/xml's any-element trick, rather than the streaming
//     token walk the rest of this codebase's SVG heritage uses, since
//     the converter needs to revisit an element's children twice (once
//     for its own geometry, once for the findHoles pass over its
//     sub-elements).
//   - Convert(root, filename, cfg) walks that tree accumulating a transform
//     stack (vector.Matrix), turning rect/circle/ellipse/polyline/
//     polygon/path/text elements into shape.Shape values, and sorting
//     each into the parts or sheets map of the returned
//     shape.ModelsToPlace according to its desiredQuantity/
//     availableQuantity/sheet attributes.
//   - text elements are resolved through a pluggable GlyphPathProvider
//     so this package never depends on a font-shaping engine.
//
// Why:
//
//   - This is the only boundary between a real SVG file and this
//     module's pure geometry types; every downstream component
//     (boolean ops, NFP) works exclusively in Polygon/Shape terms.
//
// Errors:
//
//   - Per-element problems (a degenerate rect, an unsupported path
//     command, an element outside the recognized set) are collected as
//     Diagnostic values and do not abort the walk; Convert returns the
//     diagnostics alongside whatever it could assemble, and Convert
//     only returns a non-nil error for input that as a whole cannot be
//     parsed as SVG.
package svgconv
