package boolean

import "github.com/nestcore/geomcore/vector"

// Path is a single closed polyline, as consumed by the Boolean/Minkowski
// facade. Unlike polygon.Polygon, paths here carry no derived-attribute
// cache; they are the thin interchange format the facade's provider
// operates on.
type Path []vector.Point

// Provider is the abstract Boolean/Minkowski interface the core consumes.
// Every operation takes and returns float64 user-space coordinates; a
// provider that works on integer coordinates (ClipperProvider) scales
// them up and back down itself, by its own Scale field.
type Provider interface {
	Union(subject, clip []Path) ([]Path, error)
	Intersection(subject, clip []Path) ([]Path, error)
	Difference(subject, clip []Path) ([]Path, error)
	Xor(subject, clip []Path) ([]Path, error)
	MinkowskiSum(a, b Path) ([]Path, error)
	Simplify(paths []Path, tol float64) ([]Path, error)
	Clean(paths []Path, tol float64) ([]Path, error)
	Offset(paths []Path, delta float64) ([]Path, error)
}

// DefaultClipperScale is the integer scale used when bridging float64
// user-space coordinates to an integer-coordinate Provider such as
// ClipperProvider. Matches spec.md's clipper_scale default of 10^7.
const DefaultClipperScale = 1e7
