package shape

import "github.com/nestcore/geomcore/polygon"

// Provenance is the opaque bookkeeping a Shape carries through the
// pipeline: where it came from and how it should be displayed. The
// geometry core never interprets these fields; it only threads them
// through Map so they survive every transform.
type Provenance struct {
	SourceElement string // e.g. an SVG element id or tag path
	Filename      string
	Hidden        bool
}

// Shape is a collection of outer ("item") polygons plus a collection
// of hole ("inner") polygons, together with provenance. Item is never
// empty; a Shape with zero outer polygons cannot be constructed.
type Shape struct {
	Outer      []*polygon.Polygon
	Inner      []*polygon.Polygon
	Provenance Provenance
}

// New constructs a Shape. outer must be non-empty; holes may be nil.
func New(outer []*polygon.Polygon, holes []*polygon.Polygon, prov Provenance) (*Shape, error) {
	if len(outer) == 0 {
		return nil, ErrNoOuterPolygons
	}
	o := make([]*polygon.Polygon, len(outer))
	copy(o, outer)
	var h []*polygon.Polygon
	if len(holes) > 0 {
		h = make([]*polygon.Polygon, len(holes))
		copy(h, holes)
	}
	return &Shape{Outer: o, Inner: h, Provenance: prov}, nil
}

// Map returns a new Shape with f applied to every outer and inner
// polygon; provenance is carried over unchanged. This is how
// rotate/translate/simplify compose over a whole Shape.
func (s *Shape) Map(f func(*polygon.Polygon) *polygon.Polygon) *Shape {
	outer := make([]*polygon.Polygon, len(s.Outer))
	for i, p := range s.Outer {
		outer[i] = f(p)
	}
	var inner []*polygon.Polygon
	if len(s.Inner) > 0 {
		inner = make([]*polygon.Polygon, len(s.Inner))
		for i, p := range s.Inner {
			inner[i] = f(p)
		}
	}
	return &Shape{Outer: outer, Inner: inner, Provenance: s.Provenance}
}

// Bounds returns the axis-aligned bounds enclosing every outer and
// inner polygon of s.
func (s *Shape) Bounds() polygon.Bounds {
	b := s.Outer[0].Bounds()
	for _, p := range s.Outer[1:] {
		b = b.Merge(p.Bounds())
	}
	for _, p := range s.Inner {
		b = b.Merge(p.Bounds())
	}
	return b
}

// ModelsToPlace is the assembly output: the parts a placement search
// must fit, each with a desired count, and the sheets it may fit them
// onto, each with an available count.
type ModelsToPlace struct {
	Filename string
	Parts    map[*Shape]int
	Sheets   map[*Shape]int
}

// NewModelsToPlace returns an empty ModelsToPlace for filename.
func NewModelsToPlace(filename string) *ModelsToPlace {
	return &ModelsToPlace{
		Filename: filename,
		Parts:    make(map[*Shape]int),
		Sheets:   make(map[*Shape]int),
	}
}

// AddPart records desired additional copies of part under m's parts map.
func (m *ModelsToPlace) AddPart(part *Shape, desired int) {
	m.Parts[part] += desired
}

// AddSheet records additional available copies of sheet under m's
// sheets map.
func (m *ModelsToPlace) AddSheet(sheet *Shape, available int) {
	m.Sheets[sheet] += available
}
