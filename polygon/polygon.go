package polygon

import (
	"math"

	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/tolerance"
	"github.com/nestcore/geomcore/vector"
)

// ContainsResult is the three-valued outcome of Polygon.Contains: a
// point on a vertex or on-segment is distinctly "on boundary", never
// folded into inside or outside.
type ContainsResult int

const (
	Outside ContainsResult = iota
	Inside
	OnBoundary
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Merge returns the bounds enclosing both b and other.
func (b Bounds) Merge(other Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Polygon is an ordered sequence of >= 3 points describing a closed
// boundary, plus an optional list of child Polygons interpreted as
// holes. Vertices are deep-copied on construction; the vertex slice is
// never mutated afterward. Derived attributes (area, bounds, centroid,
// perimeter) are computed on first use and cached.
type Polygon struct {
	vertices []vector.Point
	holes    []*Polygon

	cache cachedAttrs
}

type cachedAttrs struct {
	area      *float64
	bounds    *Bounds
	centroid  *vector.Point
	perimeter *float64
}

// New constructs a Polygon from the given vertices, deep-copying them.
// At least 3 vertices are required.
func New(vertices []vector.Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}
	cp := make([]vector.Point, len(vertices))
	copy(cp, vertices)
	return &Polygon{vertices: cp}, nil
}

// WithHoles returns a copy of p carrying the given holes. p's own
// vertices and cache are unaffected (the new Polygon gets a fresh cache).
func (p *Polygon) WithHoles(holes ...*Polygon) *Polygon {
	cp := make([]vector.Point, len(p.vertices))
	copy(cp, p.vertices)
	return &Polygon{vertices: cp, holes: holes}
}

// Holes returns p's child hole polygons, if any.
func (p *Polygon) Holes() []*Polygon {
	return p.holes
}

// Vertices returns a defensive copy of p's vertex sequence.
func (p *Polygon) Vertices() []vector.Point {
	cp := make([]vector.Point, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// Len returns the number of vertices in p.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i'th vertex, wrapping modulo Len.
func (p *Polygon) Vertex(i int) vector.Point {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Area returns the signed shoelace area; the sign encodes winding
// (negative for clockwise under this module's convention).
func (p *Polygon) Area() float64 {
	if p.cache.area != nil {
		return *p.cache.area
	}
	var sum float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		sum += (vj.X + vi.X) * (vj.Y - vi.Y)
	}
	area := sum / 2
	p.cache.area = &area
	return area
}

// IsClockwise reports whether p's vertex winding is clockwise under this
// module's signed-area convention.
func (p *Polygon) IsClockwise() bool {
	return p.Area() < 0
}

// Bounds returns p's axis-aligned bounding box in a single O(n) sweep.
func (p *Polygon) Bounds() Bounds {
	if p.cache.bounds != nil {
		return *p.cache.bounds
	}
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, v := range p.vertices {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	p.cache.bounds = &b
	return b
}

// Perimeter returns the sum of edge lengths.
func (p *Polygon) Perimeter() float64 {
	if p.cache.perimeter != nil {
		return *p.cache.perimeter
	}
	var sum float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.vertices[i].Distance(p.vertices[j])
	}
	p.cache.perimeter = &sum
	return sum
}

// Centroid returns the area-weighted centroid, falling back to the
// vertex average when the area magnitude is below tol.
func (p *Polygon) Centroid(tol float64) vector.Point {
	if p.cache.centroid != nil {
		return *p.cache.centroid
	}
	area := p.Area()
	if tolerance.Zero(area, tol) {
		var sx, sy float64
		for _, v := range p.vertices {
			sx += v.X
			sy += v.Y
		}
		n := float64(len(p.vertices))
		c := vector.Point{X: sx / n, Y: sy / n}
		p.cache.centroid = &c
		return c
	}
	var cx, cy float64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		cx += (vi.X + vj.X) * cross
		cy += (vi.Y + vj.Y) * cross
	}
	factor := 1 / (6 * area)
	c := vector.Point{X: cx * factor, Y: cy * factor}
	p.cache.centroid = &c
	return c
}

// Contains classifies p relative to pt: Inside, Outside, or OnBoundary
// (a point on a vertex, or for which OnSegment holds against some edge).
func (p *Polygon) Contains(pt vector.Point, tol float64) ContainsResult {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		v := p.vertices[i]
		if pt.Equal(v, tol) {
			return OnBoundary
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if segment.OnSegment(p.vertices[i], p.vertices[j], pt, tol) {
			return OnBoundary
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xCross := (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// IsRectangle reports whether p is a (possibly 5-vertex-with-coincident-
// closure) axis-aligned rectangle: every vertex lies on a corner of p's
// own bounding box, and all four corners are realized.
func (p *Polygon) IsRectangle(tol float64) bool {
	verts := p.vertices
	if len(verts) == 5 && verts[0].Equal(verts[4], tol) {
		verts = verts[:4]
	}
	if len(verts) != 4 {
		return false
	}
	b := p.Bounds()
	corners := [4]vector.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
	seen := make([]bool, 4)
	for _, v := range verts {
		matched := -1
		for ci, c := range corners {
			if v.Equal(c, tol) {
				matched = ci
				break
			}
		}
		if matched < 0 {
			return false
		}
		seen[matched] = true
	}
	for _, s := range seen {
		if !s {
			return false
		}
	}
	return true
}

// Reverse returns a new Polygon with the vertex order reversed (flips
// winding / the sign of Area). Holes are carried over unchanged.
func (p *Polygon) Reverse() *Polygon {
	n := len(p.vertices)
	rev := make([]vector.Point, n)
	for i, v := range p.vertices {
		rev[n-1-i] = v
	}
	out := &Polygon{vertices: rev, holes: p.holes}
	return out
}

// Translate returns a new Polygon shifted by (dx, dy), recursively
// applied to holes.
func (p *Polygon) Translate(dx, dy float64) *Polygon {
	return p.mapVertices(func(v vector.Point) vector.Point {
		return v.Translate(dx, dy)
	})
}

// Scale returns a new Polygon scaled by (sx, sy) about the origin,
// recursively applied to holes.
func (p *Polygon) Scale(sx, sy float64) *Polygon {
	return p.mapVertices(func(v vector.Point) vector.Point {
		return vector.Point{X: v.X * sx, Y: v.Y * sy}
	})
}

// Rotate returns a new Polygon rotated by angle radians about (cx, cy),
// recursively applied to holes.
func (p *Polygon) Rotate(angle, cx, cy float64) *Polygon {
	m := vector.Identity().Rotate(angle, cx, cy)
	return p.mapVertices(m.Apply)
}

func (p *Polygon) mapVertices(f func(vector.Point) vector.Point) *Polygon {
	verts := make([]vector.Point, len(p.vertices))
	for i, v := range p.vertices {
		verts[i] = f(v)
	}
	var holes []*Polygon
	if len(p.holes) > 0 {
		holes = make([]*Polygon, len(p.holes))
		for i, h := range p.holes {
			holes[i] = h.mapVertices(f)
		}
	}
	return &Polygon{vertices: verts, holes: holes}
}
