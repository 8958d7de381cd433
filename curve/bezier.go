package curve

import "github.com/nestcore/geomcore/vector"

// quadSegment is a work-queue entry for quadratic Bezier subdivision.
type quadSegment struct {
	p0, c, p1 vector.Point
}

func (s quadSegment) flat(tol float64) bool {
	dx := 2*s.c.X - s.p0.X - s.p1.X
	dy := 2*s.c.Y - s.p0.Y - s.p1.Y
	return dx*dx+dy*dy <= 4*tol*tol
}

func (s quadSegment) subdivide() (quadSegment, quadSegment) {
	m01 := midpoint(s.p0, s.c)
	m12 := midpoint(s.c, s.p1)
	m := midpoint(m01, m12)
	return quadSegment{s.p0, m01, m}, quadSegment{m, m12, s.p1}
}

// LinearizeQuadratic flattens the quadratic Bezier p0-c-p1 into a
// polyline whose first point is p0 and last point is p1, with every
// chord within tol of the analytic curve.
func LinearizeQuadratic(p0, c, p1 vector.Point, tol float64) ([]vector.Point, error) {
	out := []vector.Point{p0}
	stack := []quadSegment{{p0, c, p1}}
	iterations := 0
	for len(stack) > 0 {
		iterations++
		if iterations > maxIterations {
			out = append(out, p1)
			return out, ErrIterationCap
		}
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.flat(tol) {
			out = append(out, seg.p1)
			continue
		}
		left, right := seg.subdivide()
		stack = append(stack, right, left)
	}
	return out, nil
}

// cubicSegment is a work-queue entry for cubic Bezier subdivision.
type cubicSegment struct {
	p0, c1, c2, p1 vector.Point
}

func (s cubicSegment) flat(tol float64) bool {
	d1x := 3*s.c1.X - 2*s.p0.X - s.p1.X
	d1y := 3*s.c1.Y - 2*s.p0.Y - s.p1.Y
	d2x := 3*s.c2.X - 2*s.p1.X - s.p0.X
	d2y := 3*s.c2.Y - 2*s.p1.Y - s.p0.Y
	sq1 := d1x*d1x + d1y*d1y
	sq2 := d2x*d2x + d2y*d2y
	m := sq1
	if sq2 > m {
		m = sq2
	}
	return m <= 16*tol*tol
}

func (s cubicSegment) subdivide() (cubicSegment, cubicSegment) {
	m01 := midpoint(s.p0, s.c1)
	m12 := midpoint(s.c1, s.c2)
	m23 := midpoint(s.c2, s.p1)
	m012 := midpoint(m01, m12)
	m123 := midpoint(m12, m23)
	m0123 := midpoint(m012, m123)
	return cubicSegment{s.p0, m01, m012, m0123}, cubicSegment{m0123, m123, m23, s.p1}
}

// LinearizeCubic flattens the cubic Bezier p0-c1-c2-p1 into a polyline
// whose first point is p0 and last point is p1, with every chord within
// tol of the analytic curve.
func LinearizeCubic(p0, c1, c2, p1 vector.Point, tol float64) ([]vector.Point, error) {
	out := []vector.Point{p0}
	stack := []cubicSegment{{p0, c1, c2, p1}}
	iterations := 0
	for len(stack) > 0 {
		iterations++
		if iterations > maxIterations {
			out = append(out, p1)
			return out, ErrIterationCap
		}
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.flat(tol) {
			out = append(out, seg.p1)
			continue
		}
		left, right := seg.subdivide()
		stack = append(stack, right, left)
	}
	return out, nil
}

func midpoint(a, b vector.Point) vector.Point {
	return vector.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
