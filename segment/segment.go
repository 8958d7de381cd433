package segment

import (
	"math"

	"github.com/nestcore/geomcore/tolerance"
	"github.com/nestcore/geomcore/vector"
)

// OnSegment reports whether p lies on the open segment AB, excluding
// both endpoints.
func OnSegment(a, b, p vector.Point, tol float64) bool {
	if p.Equal(a, tol) || p.Equal(b, tol) {
		return false
	}

	// Axis-aligned segments: use direct coordinate comparisons.
	if tolerance.Equal(a.X, b.X, tol) {
		if !tolerance.Equal(p.X, a.X, tol) {
			return false
		}
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.Y > lo+tol && p.Y < hi-tol
	}
	if tolerance.Equal(a.Y, b.Y, tol) {
		if !tolerance.Equal(p.Y, a.Y, tol) {
			return false
		}
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.X > lo+tol && p.X < hi-tol
	}

	abLen := a.Distance(b)
	cross := (p.Y-a.Y)*(b.X-a.X) - (p.X-a.X)*(b.Y-a.Y)
	if math.Abs(cross) > tol*abLen {
		return false
	}

	// Collinear: confirm p projects strictly between a and b.
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot <= tol {
		return false
	}
	if dot >= abLen*abLen-tol {
		return false
	}
	return true
}

// LineIntersect returns the intersection of line AB and line EF using
// determinants. If infinite is false, intersections outside either
// segment (within tol) are rejected. Colinear or parallel lines return
// ok=false.
func LineIntersect(a, b, e, f vector.Point, infinite bool, tol float64) (pt vector.Point, ok bool) {
	a1 := b.Y - a.Y
	b1 := a.X - b.X
	c1 := b.X*a.Y - a.X*b.Y
	a2 := f.Y - e.Y
	b2 := e.X - f.X
	c2 := f.X*e.Y - e.X*f.Y

	denom := a1*b2 - a2*b1
	if tolerance.Zero(denom, tol) {
		return vector.Point{}, false
	}

	x := (b1*c2 - b2*c1) / denom
	y := (a2*c1 - a1*c2) / denom

	if !infinite {
		if !withinSegmentRange(a, b, x, y, tol) || !withinSegmentRange(e, f, x, y, tol) {
			return vector.Point{}, false
		}
	}
	return vector.Point{X: x, Y: y}, true
}

func withinSegmentRange(s1, s2 vector.Point, x, y, tol float64) bool {
	minX, maxX := s1.X, s2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s1.Y, s2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return x >= minX-tol && x <= maxX+tol && y >= minY-tol && y <= maxY+tol
}

// PointDistance returns the signed scalar distance, measured along
// normal, from p to the line through s1-s2. Projections are taken onto
// the direction perpendicular to normal (dir); if infinite is false, nil
// is returned when p's projection on dir falls outside the s1-s2
// projection window (modulo tolerance). s1s2 collapsing to a point
// along dir (a zero-length segment, or one running along normal) is
// handled as an explicit special case; s1s2 parallel to dir needs none,
// the general slope formula covers it.
func PointDistance(p, s1, s2 vector.Point, normal vector.Vector, infinite bool, tol float64) (float64, bool) {
	normal = normal.Normalized(tol)
	dir := vector.Vector{DX: normal.DY, DY: -normal.DX}

	pDot := p.X*dir.DX + p.Y*dir.DY
	s1Dot := s1.X*dir.DX + s1.Y*dir.DY
	s2Dot := s2.X*dir.DX + s2.Y*dir.DY

	pNorm := p.X*normal.DX + p.Y*normal.DY
	s1Norm := s1.X*normal.DX + s1.Y*normal.DY
	s2Norm := s2.X*normal.DX + s2.Y*normal.DY

	if !infinite {
		lo, hi := s1Dot, s2Dot
		if lo > hi {
			lo, hi = hi, lo
		}
		if pDot < lo-tol || pDot > hi+tol {
			return 0, false
		}
	}

	// s1s2 collapses to a point along dir: treat as a direct point distance.
	if tolerance.Equal(s1Dot, s2Dot, tol) {
		if s1Norm < s2Norm {
			return s1Norm - pNorm, true
		}
		return s2Norm - pNorm, true
	}

	slope := (s2Norm - s1Norm) / (s2Dot - s1Dot)
	intercept := s1Norm - slope*s1Dot
	onLineNorm := slope*pDot + intercept
	return onLineNorm - pNorm, true
}

// SegmentDistance returns the smallest non-negative multiple
// d >= 0 of direction such that translating segment AB by d*direction causes AB and
// EF to touch without penetrating, or ok=false if no such translation
// brings them into contact along direction. Collinear segments use
// projections on direction directly. The general case enumerates the
// travel distance for each endpoint of AB to reach line EF, and for each
// endpoint of EF to reach line AB (travelling along -direction), and
// returns the minimum non-negative candidate.
func SegmentDistance(a, b, e, f vector.Point, direction vector.Vector, tol float64) (float64, bool) {
	dirLen := direction.Length()
	if dirLen <= tol {
		return 0, false
	}
	direction = direction.Scale(1 / dirLen)
	normal := vector.Vector{DX: direction.DY, DY: -direction.DX}
	reverse := vector.Vector{DX: -direction.DX, DY: -direction.DY}

	dotA := a.X*normal.DX + a.Y*normal.DY
	dotB := b.X*normal.DX + b.Y*normal.DY
	dotE := e.X*normal.DX + e.Y*normal.DY
	dotF := f.X*normal.DX + f.Y*normal.DY

	abMin, abMax := minMax(dotA, dotB)
	efMin, efMax := minMax(dotE, dotF)

	// AB and EF project to disjoint ranges along normal: they can never
	// be brought into contact by sliding along direction.
	if abMax < efMin-tol || abMin > efMax+tol {
		return 0, false
	}

	crossABE := (e.Y-a.Y)*(b.X-a.X) - (e.X-a.X)*(b.Y-a.Y)
	crossABF := (f.Y-a.Y)*(b.X-a.X) - (f.X-a.X)*(b.Y-a.Y)

	if tolerance.Zero(crossABE, tol) && tolerance.Zero(crossABF, tol) {
		d, ok := collinearSegmentDistance(a, b, e, f, direction, normal, tol)
		return d / dirLen, ok
	}

	var candidates []float64
	pushIfOK := func(d float64, ok bool) {
		if ok {
			candidates = append(candidates, d)
		}
	}

	if dotA >= efMin-tol && dotA <= efMax+tol {
		pushIfOK(PointDistance(a, e, f, direction, false, tol))
	}
	if dotB >= efMin-tol && dotB <= efMax+tol {
		pushIfOK(PointDistance(b, e, f, direction, false, tol))
	}
	if dotE >= abMin-tol && dotE <= abMax+tol {
		pushIfOK(PointDistance(e, a, b, reverse, false, tol))
	}
	if dotF >= abMin-tol && dotF <= abMax+tol {
		pushIfOK(PointDistance(f, a, b, reverse, false, tol))
	}

	d, ok := minNonNegative(candidates, tol)
	return d / dirLen, ok
}

func collinearSegmentDistance(a, b, e, f vector.Point, direction, normal vector.Vector, tol float64) (float64, bool) {
	abDir := vector.Vector{DX: b.X - a.X, DY: b.Y - a.Y}.Normalized(tol)
	efDir := vector.Vector{DX: f.X - e.X, DY: f.Y - e.Y}.Normalized(tol)
	antiParallel := math.Abs(abDir.Cross(efDir)) < tol && abDir.Dot(efDir) < 0

	// Direction does not run along the shared line: translating takes AB
	// off the line entirely, so this collinear pair can never be driven
	// into contact (or deeper penetration) by this direction, touching or
	// not. Leave the constraint to whichever non-collinear edge pair
	// actually bounds this direction.
	dirNorm := direction.Normalized(tol)
	parallelToLine := math.Abs(abDir.Cross(dirNorm)) < tol
	if !parallelToLine {
		return 0, false
	}

	dotA := a.X*direction.DX + a.Y*direction.DY
	dotB := b.X*direction.DX + b.Y*direction.DY
	dotE := e.X*direction.DX + e.Y*direction.DY
	dotF := f.X*direction.DX + f.Y*direction.DY

	abMin, abMax := minMax(dotA, dotB)
	efMin, efMax := minMax(dotE, dotF)

	if abMax <= efMin+tol {
		d := efMin - abMax
		// Anti-parallel collinear edges already touching, with direction
		// running along the shared line: pure sliding contact, not
		// penetration (spec.md:101).
		if antiParallel && parallelToLine && tolerance.Zero(d, tol) {
			return 0, false
		}
		return d, true
	}
	if efMax <= abMin+tol {
		return 0, false
	}
	return 0, false
}

func minMax(x, y float64) (float64, float64) {
	if x > y {
		return y, x
	}
	return x, y
}

func minNonNegative(candidates []float64, tol float64) (float64, bool) {
	found := false
	best := 0.0
	for _, c := range candidates {
		if c < -tol {
			continue
		}
		if c < 0 {
			c = 0
		}
		if !found || c < best {
			best = c
			found = true
		}
	}
	return best, found
}
