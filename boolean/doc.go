// Package boolean provides the polygon-overlap predicate the NFP engine
// uses to reject penetrating candidate translations, plus a facade over
// a Boolean/Minkowski provider (union, intersection, difference, xor,
// minkowski sum, simplify, clean, offset) so a higher-fidelity native
// implementation can be swapped in at the call site. A pure-software
// Provider is supplied as the default so the core runs with no optional
// dependency; ClipperProvider adapts github.com/go-clipper/clipper2 as
// the higher-fidelity option the facade documents.
package boolean
