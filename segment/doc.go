// Package segment implements the directional distance and containment
// primitives the NFP engine's correctness depends on: on-segment
// testing, line intersection, and signed point/segment distance along an
// arbitrary direction. Every predicate takes an explicit tolerance; none
// compares floats with ==.
package segment
