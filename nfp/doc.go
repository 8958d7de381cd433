// Package nfp computes the No-Fit Polygon: the locus of a moving
// polygon's reference vertex as it orbits a fixed polygon while
// maintaining tangential contact without interior penetration.
//
// What: a rectangle fast path for the common axis-aligned case, and a
// general orbiting engine (exterior and interior modes) driven by
// touch detection, candidate-translation-vector generation at each
// contact, and slide-distance selection via the segment package's
// projection algebra.
//
// Why: this is the computation the placement search depends on most
// directly — every candidate part position is validated or generated
// against an NFP. The orbiting loop has no closed form; it is an
// iterative walk with explicit termination conditions (loop closure,
// premature repeat, stuck, iteration cap), each surfaced as a
// Diagnostic rather than an error, since a partial NFP is still useful
// to a caller.
//
// Errors: Compute never returns a Go error for degenerate-but-valid
// geometry; it returns a Diagnostic describing why a loop ended early.
// Only malformed input (fewer than 3 vertices on either polygon)
// returns an error, since that is not a recoverable geometric
// condition.
package nfp
