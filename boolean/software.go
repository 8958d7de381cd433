package boolean

import (
	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/tolerance"
	"github.com/nestcore/geomcore/vector"
)

// SoftwareProvider is the dependency-free default Provider. It is
// sufficient for the cases geomcore's own core needs without a native
// library: merging touching/overlapping pieces via their convex hull,
// summing convex operands, and basic cleanup. Difference, Xor, and
// Offset fall back to conservative approximations rather than exact
// polygon clipping; callers that need exact Boolean clipping on
// concave operands should supply a ClipperProvider instead.
type SoftwareProvider struct {
	Tolerance float64
}

// NewSoftwareProvider returns a SoftwareProvider using tol for all
// coincidence tests.
func NewSoftwareProvider(tol float64) *SoftwareProvider {
	return &SoftwareProvider{Tolerance: tol}
}

// Union merges subject and clip by taking the convex hull of every
// vertex across both path sets whenever any pair of paths touches or
// overlaps; disjoint path sets are returned concatenated, unmerged.
func (s *SoftwareProvider) Union(subject, clip []Path) ([]Path, error) {
	all := append(append([]Path{}, subject...), clip...)
	if len(all) == 0 {
		return nil, ErrEmptyPath
	}
	if !anyPairOverlaps(all, s.Tolerance) {
		return all, nil
	}
	var pts []vector.Point
	for _, p := range all {
		pts = append(pts, p...)
	}
	return []Path{polygon.ConvexHull(pts)}, nil
}

// Intersection is unsupported by the software fallback on general
// (possibly concave) operands; it returns the pairwise convex-hull
// overlap region approximated by the hull of shared vertices, or an
// empty result when no operand pair touches.
func (s *SoftwareProvider) Intersection(subject, clip []Path) ([]Path, error) {
	var shared []vector.Point
	for _, a := range subject {
		for _, b := range clip {
			for _, pa := range a {
				if pointInPath(b, pa, s.Tolerance) {
					shared = append(shared, pa)
				}
			}
			for _, pb := range b {
				if pointInPath(a, pb, s.Tolerance) {
					shared = append(shared, pb)
				}
			}
		}
	}
	if len(shared) < 3 {
		return nil, nil
	}
	return []Path{polygon.ConvexHull(shared)}, nil
}

// Difference returns subject unchanged; the software fallback cannot
// carve concave regions out of a path set without a native clipper.
func (s *SoftwareProvider) Difference(subject, clip []Path) ([]Path, error) {
	if len(subject) == 0 {
		return nil, ErrEmptyPath
	}
	return subject, nil
}

// Xor returns subject and clip concatenated, unmerged: the software
// fallback makes no attempt to cancel the overlapping region.
func (s *SoftwareProvider) Xor(subject, clip []Path) ([]Path, error) {
	all := append(append([]Path{}, subject...), clip...)
	if len(all) == 0 {
		return nil, ErrEmptyPath
	}
	return all, nil
}

// MinkowskiSum returns the Minkowski sum of a and b. Only convex
// operands are supported; non-convex input returns ErrNotConvex.
func (s *SoftwareProvider) MinkowskiSum(a, b Path) ([]Path, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyPath
	}
	if !isConvex(a, s.Tolerance) || !isConvex(b, s.Tolerance) {
		return nil, ErrNotConvex
	}
	var sum []vector.Point
	for _, pa := range a {
		for _, pb := range b {
			sum = append(sum, vector.Point{X: pa.X + pb.X, Y: pa.Y + pb.Y})
		}
	}
	return []Path{polygon.ConvexHull(sum)}, nil
}

// Simplify removes vertices that lie within tol of the line through
// their neighbors, in a single pass (no iterative Douglas-Peucker).
func (s *SoftwareProvider) Simplify(paths []Path, tol float64) ([]Path, error) {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, simplifyPath(p, tol))
	}
	return out, nil
}

// Clean removes consecutive duplicate vertices (within tol).
func (s *SoftwareProvider) Clean(paths []Path, tol float64) ([]Path, error) {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, cleanPath(p, tol))
	}
	return out, nil
}

// Offset grows (delta > 0) or shrinks (delta < 0) each path by moving
// every vertex a distance |delta| along the unit average of its two
// adjacent edge normals. Each edge therefore shifts by less than delta
// wherever its end vertices are corners (about 0.71*delta beside a
// right angle). Edge normals point to the right of the edge direction,
// so a positive delta grows a counter-clockwise path and shrinks a
// clockwise one. This is a naive, unmitered offset: exact,
// miter-correct offsetting belongs to ClipperProvider.
func (s *SoftwareProvider) Offset(paths []Path, delta float64) ([]Path, error) {
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, offsetPath(p, delta, s.Tolerance))
	}
	return out, nil
}

func anyPairOverlaps(paths []Path, tol float64) bool {
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			for _, p := range paths[i] {
				if pointInPath(paths[j], p, tol) {
					return true
				}
			}
			for _, p := range paths[j] {
				if pointInPath(paths[i], p, tol) {
					return true
				}
			}
			ni, nj := len(paths[i]), len(paths[j])
			for a := 0; a < ni; a++ {
				for b := 0; b < nj; b++ {
					if properlyCross(paths[i][a], paths[i][(a+1)%ni], paths[j][b], paths[j][(b+1)%nj], tol) {
						return true
					}
				}
			}
		}
	}
	return false
}

func pointInPath(path Path, p vector.Point, tol float64) bool {
	poly, err := polygon.New(path)
	if err != nil {
		return false
	}
	return poly.Contains(p, tol) != polygon.Outside
}

func isConvex(path Path, tol float64) bool {
	n := len(path)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		o := path[i]
		a := path[(i+1)%n]
		b := path[(i+2)%n]
		c := orient(o, a, b)
		if tolerance.Zero(c, tol) {
			continue
		}
		s := 1
		if c < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

func simplifyPath(path Path, tol float64) Path {
	n := len(path)
	if n < 3 {
		return path
	}
	out := make(Path, 0, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]
		area := orient(prev, cur, next)
		base := prev.Distance(next)
		if base > tol && (area*area)/(base*base) < tol*tol {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return path
	}
	return out
}

func cleanPath(path Path, tol float64) Path {
	if len(path) == 0 {
		return path
	}
	out := make(Path, 0, len(path))
	out = append(out, path[0])
	for _, p := range path[1:] {
		if !p.Equal(out[len(out)-1], tol) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].Equal(out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}

func offsetPath(path Path, delta, tol float64) Path {
	n := len(path)
	if n < 3 {
		return path
	}
	out := make(Path, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]

		n1 := edgeNormal(prev, cur, tol)
		n2 := edgeNormal(cur, next, tol)
		avg := vector.Vector{DX: n1.DX + n2.DX, DY: n1.DY + n2.DY}.Normalized(tol)
		out[i] = vector.Point{X: cur.X + avg.DX*delta, Y: cur.Y + avg.DY*delta}
	}
	return out
}

func edgeNormal(a, b vector.Point, tol float64) vector.Vector {
	dir := vector.Vector{DX: b.X - a.X, DY: b.Y - a.Y}.Normalized(tol)
	return vector.Vector{DX: dir.DY, DY: -dir.DX}
}
