package svgconv

import (
	"math"
	"sort"

	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/shape"
	"github.com/nestcore/geomcore/vector"
)

// candidateShape is a shape-producing element seen within one group
// scope, already resolved to world-space outer polygons, before the
// findHoles pass decides whether it stands alone or nests inside a
// sibling.
type candidateShape struct {
	node  *Node
	outer []*polygon.Polygon
}

func (c candidateShape) area() float64 {
	total := 0.0
	for _, p := range c.outer {
		total += math.Abs(p.Area())
	}
	return total
}

// Convert walks root (which must be an <svg> element) and assembles a
// ModelsToPlace. Per-element problems are returned as diagnostics
// rather than failing the whole conversion; Convert only returns an
// error when root itself is not an SVG document.
func Convert(root *Node, filename string, cfg Config) (*shape.ModelsToPlace, []Diagnostic, error) {
	if root.XMLName.Local != "svg" {
		return nil, nil, ErrNotSVG
	}
	cfg = cfg.withDefaults()
	models := shape.NewModelsToPlace(filename)
	var diags []Diagnostic
	walkGroup(root, vector.Identity(), models, &diags, cfg)
	return models, diags, nil
}

func localTransform(n *Node) vector.Matrix {
	s, ok := n.attr("transform")
	if !ok || s == "" {
		return vector.Identity()
	}
	return vector.ParseTransformString(s)
}

// walkGroup processes one <svg>/<g>/<image> scope: every direct child
// that is a recognized leaf geometry element becomes a candidateShape
// in world space; nested g/svg/image children recurse into their own
// scope. Once every direct child is visited, assembleShapes resolves
// the findHoles pass and emits parts/sheets into models.
func walkGroup(n *Node, transform vector.Matrix, models *shape.ModelsToPlace, diags *[]Diagnostic, cfg Config) {
	t := transform.Mul(localTransform(n))

	var candidates []candidateShape
	for i := range n.Children {
		child := &n.Children[i]
		switch child.XMLName.Local {
		case "g", "svg", "image":
			walkGroup(child, t, models, diags, cfg)
		case "rect", "circle", "ellipse", "polyline", "polygon", "path", "text":
			outer, ok := geometryFor(child, t, cfg, diags)
			if ok {
				candidates = append(candidates, candidateShape{node: child, outer: outer})
			}
		case "line":
			// a line has zero area; it contributes no fillable geometry.
		default:
			*diags = append(*diags, Diagnostic{Kind: UnsupportedElement, Element: child.XMLName.Local})
		}
	}

	assembleShapes(candidates, models, diags, cfg)
}

// assembleShapes runs the findHoles pass: the largest-area candidate
// in a cluster absorbs any other candidate whose representative point
// lies strictly inside it as a hole; what remains becomes independent
// parts or sheets.
func assembleShapes(candidates []candidateShape, models *shape.ModelsToPlace, diags *[]Diagnostic, cfg Config) {
	remaining := make([]candidateShape, len(candidates))
	copy(remaining, candidates)
	sort.SliceStable(remaining, func(i, j int) bool { return remaining[i].area() > remaining[j].area() })

	consumed := make([]bool, len(remaining))
	for i := range remaining {
		if consumed[i] {
			continue
		}
		holes := holesFor(remaining, consumed, i, cfg)
		emitShape(remaining[i], holes, models, diags, cfg)
	}
}

func holesFor(candidates []candidateShape, consumed []bool, hostIdx int, cfg Config) []*polygon.Polygon {
	host := candidates[hostIdx].outer[0]
	var holes []*polygon.Polygon
	for j := hostIdx + 1; j < len(candidates); j++ {
		if consumed[j] {
			continue
		}
		rep := representativePoint(candidates[j])
		if host.Contains(rep, cfg.ToleranceSVG) == polygon.Inside {
			holes = append(holes, candidates[j].outer...)
			consumed[j] = true
		}
	}
	return holes
}

func representativePoint(c candidateShape) vector.Point {
	return c.outer[0].Centroid(1e-9)
}

func emitShape(c candidateShape, holes []*polygon.Polygon, models *shape.ModelsToPlace, diags *[]Diagnostic, cfg Config) {
	prov := shape.Provenance{
		SourceElement: elementRef(c.node),
		Filename:      models.Filename,
	}
	s, err := shape.New(c.outer, holes, prov)
	if err != nil {
		*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: c.node.XMLName.Local, Detail: err.Error()})
		return
	}

	desired := c.node.intAttr("desiredQuantity", 1)
	available := c.node.intAttr("availableQuantity", 1)

	if c.node.boolAttrPresent("sheet") {
		models.AddSheet(s, available)
	} else {
		models.AddPart(s, desired)
	}
}

func elementRef(n *Node) string {
	if id, ok := n.attr("id"); ok && id != "" {
		return n.XMLName.Local + "#" + id
	}
	return n.XMLName.Local
}

// geometryFor converts one recognized leaf element into world-space
// outer polygons. ok is false when the element was dropped (degenerate
// geometry, an unsupported path command, or a missing glyph provider);
// in that case a Diagnostic has already been appended.
func geometryFor(n *Node, t vector.Matrix, cfg Config, diags *[]Diagnostic) ([]*polygon.Polygon, bool) {
	local := localTransform(n)
	world := t.Mul(local)

	var rawLoops [][]vector.Point
	switch n.XMLName.Local {
	case "rect":
		pts, err := rectPoints(n.floatAttr("x", 0), n.floatAttr("y", 0), n.floatAttr("width", 0), n.floatAttr("height", 0))
		if err != nil {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "rect", Detail: err.Error()})
			return nil, false
		}
		rawLoops = [][]vector.Point{pts}

	case "circle":
		pts, err := ellipsePoints(n.floatAttr("cx", 0), n.floatAttr("cy", 0), n.floatAttr("r", 0), n.floatAttr("r", 0), cfg)
		if err != nil {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "circle", Detail: err.Error()})
			return nil, false
		}
		rawLoops = [][]vector.Point{pts}

	case "ellipse":
		pts, err := ellipsePoints(n.floatAttr("cx", 0), n.floatAttr("cy", 0), n.floatAttr("rx", 0), n.floatAttr("ry", 0), cfg)
		if err != nil {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "ellipse", Detail: err.Error()})
			return nil, false
		}
		rawLoops = [][]vector.Point{pts}

	case "polyline", "polygon":
		s, _ := n.attr("points")
		pts, err := parsePointsList(s)
		if err != nil || len(pts) < 3 {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: n.XMLName.Local})
			return nil, false
		}
		if n.XMLName.Local == "polyline" && !pts[0].Equal(pts[len(pts)-1], cfg.EndpointTolerance) {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "polyline", Detail: "open polyline"})
			return nil, false
		}
		rawLoops = [][]vector.Point{pts}

	case "path":
		d, _ := n.attr("d")
		subs, err := parsePathData(d, cfg.Tolerance)
		if err != nil {
			*diags = append(*diags, Diagnostic{Kind: UnsupportedPathCommand, Element: "path", Detail: err.Error()})
			return nil, false
		}
		for _, sp := range subs {
			if !sp.closed {
				if len(sp.points) < 2 || !sp.points[0].Equal(sp.points[len(sp.points)-1], cfg.EndpointTolerance) {
					continue
				}
			}
			if len(sp.points) >= 3 {
				rawLoops = append(rawLoops, sp.points)
			}
		}
		if len(rawLoops) == 0 {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "path"})
			return nil, false
		}

	case "text":
		if cfg.Glyphs == nil {
			*diags = append(*diags, Diagnostic{Kind: UnsupportedElement, Element: "text", Detail: "no GlyphPathProvider configured"})
			return nil, false
		}
		rawLoops = glyphLoops(n, cfg)
		if len(rawLoops) == 0 {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: "text"})
			return nil, false
		}

	default:
		*diags = append(*diags, Diagnostic{Kind: UnsupportedElement, Element: n.XMLName.Local})
		return nil, false
	}

	polys := make([]*polygon.Polygon, 0, len(rawLoops))
	for _, loop := range rawLoops {
		transformed := make([]vector.Point, len(loop))
		for i, p := range loop {
			transformed[i] = world.Apply(p)
		}
		p, err := polygon.New(transformed)
		if err != nil {
			*diags = append(*diags, Diagnostic{Kind: DegenerateGeometry, Element: n.XMLName.Local, Detail: err.Error()})
			continue
		}
		polys = append(polys, p)
	}
	if len(polys) == 0 {
		return nil, false
	}
	return polys, true
}

func glyphLoops(n *Node, cfg Config) [][]vector.Point {
	size := n.floatAttr("font-size", 16)
	family, _ := n.attr("font-family")
	x := n.floatAttr("x", 0)
	y := n.floatAttr("y", 0)

	var loops [][]vector.Point
	advance := 0.0
	for _, r := range n.Chardata {
		for _, g := range cfg.Glyphs.GlyphPaths(r, family, size) {
			shifted := make([]vector.Point, len(g))
			for i, p := range g {
				shifted[i] = vector.Point{X: x + advance + p.X, Y: y + p.Y}
			}
			loops = append(loops, shifted)
		}
		advance += size * 0.6
	}
	return loops
}
