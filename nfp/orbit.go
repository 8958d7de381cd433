package nfp

import (
	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/vector"
)

// Mode selects exterior NFP (B orbits outside A, used to keep two
// parts from overlapping) or interior NFP / IFP (B is constrained to
// stay inside A, used to keep a part inside a sheet).
type Mode int

const (
	Exterior Mode = iota
	Interior
)

// Result is the set of NFP loops found. A traced loop with fewer than
// two points (for example one stuck at its starting position) is
// dropped, so Loops can be empty even when a starting position was
// found.
type Result struct {
	Loops [][]vector.Point
}

// Compute returns the NFP of A (fixed) and B (moving), plus zero or
// more diagnostics describing early loop termination. When mode is
// Interior and RectangleInterior accepts the pair (both axis-aligned
// rectangles, B fitting inside A), the O(1) rectangle fast path is used
// and no diagnostics are returned; otherwise the orbiting search runs.
func Compute(a, b *polygon.Polygon, mode Mode, searchEdges bool, tol float64) (Result, []Diagnostic, error) {
	if a.Len() < 3 || b.Len() < 3 {
		return Result{}, nil, ErrTooFewVertices
	}

	if mode == Interior {
		if loop, ok := RectangleInterior(a, b, tol); ok {
			return Result{Loops: [][]vector.Point{loop}}, nil, nil
		}
	}

	av, bv := a.Vertices(), b.Vertices()
	na := len(av)
	marked := make([]bool, na)

	var loops [][]vector.Point
	var diagnostics []Diagnostic

	for {
		offset, ok := findStart(mode, av, bv, marked, len(loops), loops, tol)
		if !ok {
			break
		}
		loop, diag := traceLoop(av, bv, marked, offset, tol, len(loops))
		if len(loop) >= 2 {
			loops = append(loops, loop)
		}
		if diag != nil {
			diagnostics = append(diagnostics, *diag)
		}
		if !searchEdges || len(loop) < 2 {
			break
		}
	}

	return Result{Loops: loops}, diagnostics, nil
}

func findStart(mode Mode, av, bv []vector.Point, marked []bool, loopIndex int, loops [][]vector.Point, tol float64) (vector.Vector, bool) {
	if mode == Exterior && loopIndex == 0 {
		return exteriorStart(av, bv), true
	}
	return searchUnmarkedStart(mode, av, bv, marked, loops, tol)
}

// exteriorStart places B's maximum-y vertex onto A's minimum-y vertex
// (first occurrence of each, in vertex order), so B starts tangent to
// A from outside at A's lowest point.
func exteriorStart(av, bv []vector.Point) vector.Vector {
	amin := 0
	for i := 1; i < len(av); i++ {
		if av[i].Y < av[amin].Y {
			amin = i
		}
	}
	bmax := 0
	for j := 1; j < len(bv); j++ {
		if bv[j].Y > bv[bmax].Y {
			bmax = j
		}
	}
	return av[amin].Sub(bv[bmax])
}

// searchUnmarkedStart tries every unmarked A vertex against every B
// vertex as a placement, accepting the first that fits without
// crossing and whose reference point is not already on a prior loop.
// Failing a direct match, it nudges B along the current A edge by the
// smaller of the two projection distances and retests once before
// giving up on that A vertex.
func searchUnmarkedStart(mode Mode, av, bv []vector.Point, marked []bool, loops [][]vector.Point, tol float64) (vector.Vector, bool) {
	na := len(av)
	for i := 0; i < na; i++ {
		if marked[i] {
			continue
		}
		for j := range bv {
			offset := av[i].Sub(bv[j])
			if candidate, ok := tryStart(mode, av, bv, offset, loops, tol); ok {
				marked[i] = true
				return candidate, true
			}
		}

		edgeDir := av[(i+1)%na].Sub(av[i]).Normalized(tol)
		base := av[i].Sub(bv[0])
		fWorld := translatePoints(bv, base)
		d1, ok1 := PolygonProjectionDistance(av, fWorld, edgeDir, tol)
		d2, ok2 := PolygonProjectionDistance(av, fWorld, edgeDir.Scale(-1), tol)
		var nudge vector.Vector
		switch {
		case ok1 && ok2 && d1 <= d2:
			nudge = edgeDir.Scale(d1)
		case ok1 && ok2:
			nudge = edgeDir.Scale(-d2)
		case ok1:
			nudge = edgeDir.Scale(d1)
		case ok2:
			nudge = edgeDir.Scale(-d2)
		}
		offset := addVec(base, nudge)
		if candidate, ok := tryStart(mode, av, bv, offset, loops, tol); ok {
			marked[i] = true
			return candidate, true
		}
		marked[i] = true
	}
	return vector.Vector{}, false
}

func tryStart(mode Mode, av, bv []vector.Point, offset vector.Vector, loops [][]vector.Point, tol float64) (vector.Vector, bool) {
	bWorld := translatePoints(bv, offset)

	switch mode {
	case Interior:
		if !fitsInside(av, bWorld, tol) {
			return vector.Vector{}, false
		}
	default:
		if !staysOutside(av, bWorld, tol) {
			return vector.Vector{}, false
		}
	}
	if edgesCross(av, bWorld, tol) {
		return vector.Vector{}, false
	}

	ref := bv[0].Add(offset)
	for _, loop := range loops {
		for _, p := range loop {
			if ref.Equal(p, tol) {
				return vector.Vector{}, false
			}
		}
	}
	return offset, true
}

// traceLoop walks the orbiting main loop from a validated starting
// offset until the loop closes, repeats a prior vertex, gets stuck, or
// exhausts its iteration budget.
func traceLoop(av, bv []vector.Point, marked []bool, startOffset vector.Vector, tol float64, loopIndex int) ([]vector.Point, *Diagnostic) {
	na, nb := len(av), len(bv)
	maxIter := 10 * (na + nb)

	offset := startOffset
	seed := bv[0].Add(offset)
	loop := []vector.Point{seed}
	var prev vector.Vector

	for iter := 0; iter < maxIter; iter++ {
		bWorld := translatePoints(bv, offset)
		touches := detectTouches(av, bWorld, tol)
		markTouchedVertices(marked, touches, na)

		var candidates []candidate
		for _, t := range touches {
			candidates = append(candidates, candidatesFor(t, av, bv)...)
		}

		translation, ok := selectBestCandidate(av, bWorld, candidates, prev, tol)
		if !ok {
			return simplifyLoop(loop, tol), &Diagnostic{Kind: Stuck, LoopIndex: loopIndex, IterationsUsed: iter}
		}

		offset = addVec(offset, translation)
		next := bv[0].Add(offset)

		if next.Equal(seed, tol) {
			return simplifyLoop(loop, tol), nil
		}
		for _, p := range loop[1:] {
			if next.Equal(p, tol) {
				return simplifyLoop(loop, tol), &Diagnostic{Kind: PrematureLoop, LoopIndex: loopIndex, IterationsUsed: iter}
			}
		}

		loop = append(loop, next)
		prev = translation
	}
	return simplifyLoop(loop, tol), &Diagnostic{Kind: IterationCap, LoopIndex: loopIndex, IterationsUsed: maxIter}
}

func markTouchedVertices(marked []bool, touches []touching, na int) {
	for _, t := range touches {
		switch t.kind {
		case vertexVertex, bEdgeContainsAVertex:
			marked[t.iA] = true
		case aEdgeContainsBVertex:
			marked[t.iA] = true
			marked[(t.iA+1)%na] = true
		}
	}
}

// selectBestCandidate picks the candidate translation vector yielding
// the largest feasible slide: the measured slide distance, taken as a
// multiplier in [0, 1] of the candidate's own vector (a multiplier
// above 1 would travel past the edge that licensed the candidate).
// Candidates within tol of zero length, or that reverse the previous
// step, are rejected outright.
func selectBestCandidate(av, bWorld []vector.Point, candidates []candidate, prev vector.Vector, tol float64) (vector.Vector, bool) {
	found := false
	var best vector.Vector
	bestLen := 0.0

	for _, c := range candidates {
		vLen := c.v.Length()
		if vLen <= tol {
			continue
		}
		if prev.Length() > tol && reverses(c.v, prev, tol) {
			continue
		}

		d, ok := PolygonSlideDistance(av, bWorld, c.v, true, tol)
		if !ok {
			continue
		}
		if d < 0 {
			d = 0
		}
		if d > 1 {
			d = 1
		}
		translation := c.v.Scale(d)
		length := translation.Length()
		if length <= tol {
			continue
		}
		if !found || length > bestLen {
			found = true
			bestLen = length
			best = translation
		}
	}
	return best, found
}

func reverses(v, prev vector.Vector, tol float64) bool {
	dot := v.Dot(prev)
	return dot < -0.999*v.Length()*prev.Length()-tol
}

func fitsInside(av, bWorld []vector.Point, tol float64) bool {
	a, err := polygon.New(av)
	if err != nil {
		return false
	}
	for _, p := range bWorld {
		if a.Contains(p, tol) == polygon.Outside {
			return false
		}
	}
	return true
}

func staysOutside(av, bWorld []vector.Point, tol float64) bool {
	a, err := polygon.New(av)
	if err != nil {
		return false
	}
	for _, p := range bWorld {
		if a.Contains(p, tol) == polygon.Inside {
			return false
		}
	}
	return true
}

func edgesCross(av, bWorld []vector.Point, tol float64) bool {
	na, nb := len(av), len(bWorld)
	for i := 0; i < na; i++ {
		a0, a1 := av[i], av[(i+1)%na]
		for j := 0; j < nb; j++ {
			b0, b1 := bWorld[j], bWorld[(j+1)%nb]
			if sharesEndpoint(a0, a1, b0, b1, tol) {
				continue
			}
			if _, ok := segment.LineIntersect(a0, a1, b0, b1, false, tol); ok {
				return true
			}
		}
	}
	return false
}

func sharesEndpoint(a0, a1, b0, b1 vector.Point, tol float64) bool {
	return a0.Equal(b0, tol) || a0.Equal(b1, tol) || a1.Equal(b0, tol) || a1.Equal(b1, tol)
}

func translatePoints(pts []vector.Point, offset vector.Vector) []vector.Point {
	out := make([]vector.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(offset)
	}
	return out
}

func addVec(a, b vector.Vector) vector.Vector {
	return vector.Vector{DX: a.DX + b.DX, DY: a.DY + b.DY}
}

// simplifyLoop drops vertices that lie within tol of the line through
// their cyclic neighbors, so a string of edge-length-bounded orbiting
// steps along one straight boundary collapses to its two endpoints.
func simplifyLoop(loop []vector.Point, tol float64) []vector.Point {
	n := len(loop)
	if n < 3 {
		return loop
	}
	out := make([]vector.Point, 0, n)
	for i := 0; i < n; i++ {
		prev := loop[(i-1+n)%n]
		cur := loop[i]
		next := loop[(i+1)%n]
		cross := (cur.X-prev.X)*(next.Y-prev.Y) - (cur.Y-prev.Y)*(next.X-prev.X)
		base := prev.Distance(next)
		if base > tol && (cross*cross)/(base*base) < tol*tol {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return loop
	}
	return out
}
