package polygon

import (
	"sort"

	"github.com/nestcore/geomcore/vector"
)

// ConvexHull returns the convex hull of pts in counter-clockwise order,
// computed via Andrew's monotone chain. Collinear points along a hull
// edge are dropped. Fewer than 3 distinct points returns those distinct
// points, duplicates removed (no hull can be formed).
func ConvexHull(pts []vector.Point) []vector.Point {
	uniq := dedupe(pts)
	if len(uniq) < 3 {
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	lower := buildChain(uniq)
	upper := buildChain(reversed(uniq))

	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(lower, upper...)
}

func buildChain(pts []vector.Point) []vector.Point {
	chain := make([]vector.Point, 0, len(pts))
	for _, p := range pts {
		for len(chain) >= 2 && cross(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

func cross(o, a, b vector.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func dedupe(pts []vector.Point) []vector.Point {
	out := make([]vector.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Equal(q, 1e-9) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []vector.Point) []vector.Point {
	out := make([]vector.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
