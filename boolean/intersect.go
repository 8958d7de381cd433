package boolean

import (
	"math"

	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/tolerance"
	"github.com/nestcore/geomcore/vector"
)

// Intersect tests whether polygons a and b, translated by offsetA and
// offsetB respectively, overlap. For each pair of edges: if their open
// segments properly cross, the polygons overlap. If they share an
// endpoint or one segment contains the other's endpoint, the touch is
// classified as a tangent pass or an interior crossing by sweeping the
// angles of the neighboring edges around the touch point. Finally, if no
// edge pair resolves the question, an arbitrary vertex of one polygon is
// tested for strict containment in the other.
func Intersect(a, b *polygon.Polygon, offsetA, offsetB vector.Vector, tol float64) bool {
	av := translatedVertices(a, offsetA)
	bv := translatedVertices(b, offsetB)
	na, nb := len(av), len(bv)

	for i := 0; i < na; i++ {
		a0, a1 := av[i], av[(i+1)%na]
		for j := 0; j < nb; j++ {
			b0, b1 := bv[j], bv[(j+1)%nb]

			if properlyCross(a0, a1, b0, b1, tol) {
				return true
			}
			if touches(a0, a1, b0, b1, tol) {
				aPrev, aNext := av[(i-1+na)%na], av[(i+2)%na]
				bPrev, bNext := bv[(j-1+nb)%nb], bv[(j+2)%nb]
				if classifyTouch(a0, a1, b0, b1, aPrev, aNext, bPrev, bNext, tol) {
					return true
				}
			}
		}
	}

	if na > 0 {
		if poly2ContainsStrict(bv, av[0], tol) {
			return true
		}
	}
	if nb > 0 {
		if poly2ContainsStrict(av, bv[0], tol) {
			return true
		}
	}
	return false
}

func translatedVertices(p *polygon.Polygon, offset vector.Vector) []vector.Point {
	verts := p.Vertices()
	out := make([]vector.Point, len(verts))
	for i, v := range verts {
		out[i] = v.Add(offset)
	}
	return out
}

func orient(p, q, r vector.Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

func properlyCross(a0, a1, b0, b1 vector.Point, tol float64) bool {
	d1 := orient(b0, b1, a0)
	d2 := orient(b0, b1, a1)
	d3 := orient(a0, a1, b0)
	d4 := orient(a0, a1, b1)
	return signDiffers(d1, d2, tol) && signDiffers(d3, d4, tol)
}

func signDiffers(x, y, tol float64) bool {
	if tolerance.Zero(x, tol) || tolerance.Zero(y, tol) {
		return false
	}
	return (x > 0) != (y > 0)
}

// touches reports whether AB and EF share an endpoint, or one segment
// contains the other's endpoint.
func touches(a0, a1, b0, b1 vector.Point, tol float64) bool {
	if a0.Equal(b0, tol) || a0.Equal(b1, tol) || a1.Equal(b0, tol) || a1.Equal(b1, tol) {
		return true
	}
	if segment.OnSegment(a0, a1, b0, tol) || segment.OnSegment(a0, a1, b1, tol) {
		return true
	}
	if segment.OnSegment(b0, b1, a0, tol) || segment.OnSegment(b0, b1, a1, tol) {
		return true
	}
	return false
}

// classifyTouch discriminates a tangent pass from an interior crossing
// at a shared/contained point by sweeping the angles of the four rays
// leaving the touch point (the two neighboring edges of A, the two of
// B) and checking whether the A and B rays interleave around the
// circle. Interleaving means the polygons cross at the touch; grouped
// together (A,A,B,B in angular order) means they merely graze.
func classifyTouch(a0, a1, b0, b1, aPrev, aNext, bPrev, bNext vector.Point, tol float64) bool {
	p := touchPoint(a0, a1, b0, b1, tol)

	rays := []struct {
		angle float64
		tag   int // 0 = A, 1 = B
	}{
		{angleFrom(p, aPrev), 0},
		{angleFrom(p, aNext), 0},
		{angleFrom(p, bPrev), 1},
		{angleFrom(p, bNext), 1},
	}
	for i := 1; i < len(rays); i++ {
		for j := i; j > 0 && rays[j-1].angle > rays[j].angle; j-- {
			rays[j-1], rays[j] = rays[j], rays[j-1]
		}
	}
	// Interleaved iff consecutive tags (cyclically) are not grouped into
	// two contiguous runs.
	runs := 1
	for i := 1; i < len(rays); i++ {
		if rays[i].tag != rays[i-1].tag {
			runs++
		}
	}
	if rays[0].tag != rays[len(rays)-1].tag {
		// wrap-around boundary also changes run
	} else {
		runs--
	}
	return runs > 2
}

func touchPoint(a0, a1, b0, b1 vector.Point, tol float64) vector.Point {
	switch {
	case a0.Equal(b0, tol) || a0.Equal(b1, tol):
		return a0
	case a1.Equal(b0, tol) || a1.Equal(b1, tol):
		return a1
	case segment.OnSegment(a0, a1, b0, tol):
		return b0
	case segment.OnSegment(a0, a1, b1, tol):
		return b1
	case segment.OnSegment(b0, b1, a0, tol):
		return a0
	default:
		return a1
	}
}

func angleFrom(p, q vector.Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

func poly2ContainsStrict(loop []vector.Point, pt vector.Point, tol float64) bool {
	n := len(loop)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := loop[i], loop[j]
		if vi.Equal(pt, tol) || vj.Equal(pt, tol) {
			return false
		}
		if segment.OnSegment(vi, vj, pt, tol) {
			return false
		}
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xCross := (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
