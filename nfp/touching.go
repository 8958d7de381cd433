package nfp

import (
	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/vector"
)

// touchKind tags how A and B are in contact at a point.
type touchKind int

const (
	vertexVertex touchKind = iota
	aEdgeContainsBVertex
	bEdgeContainsAVertex
)

// touching is the internal record of one contact event: iA and iB are
// interpreted per kind. For vertexVertex, both are vertex indices. For
// aEdgeContainsBVertex, iA is the index of the A edge's start vertex
// and iB is the contained B vertex. For bEdgeContainsAVertex, iA is the
// contained A vertex and iB is the B edge's start vertex.
type touching struct {
	kind   touchKind
	iA, iB int
}

// detectTouches enumerates every contact event between A (fixed,
// world coordinates) and bWorld (B's vertices translated by the
// current offset).
func detectTouches(aWorld, bWorld []vector.Point, tol float64) []touching {
	na, nb := len(aWorld), len(bWorld)
	var touches []touching

	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			if aWorld[i].Equal(bWorld[j], tol) {
				touches = append(touches, touching{kind: vertexVertex, iA: i, iB: j})
			}
		}
	}
	for i := 0; i < na; i++ {
		a0, a1 := aWorld[i], aWorld[(i+1)%na]
		for j := 0; j < nb; j++ {
			if segment.OnSegment(a0, a1, bWorld[j], tol) {
				touches = append(touches, touching{kind: aEdgeContainsBVertex, iA: i, iB: j})
			}
		}
	}
	for j := 0; j < nb; j++ {
		b0, b1 := bWorld[j], bWorld[(j+1)%nb]
		for i := 0; i < na; i++ {
			if segment.OnSegment(b0, b1, aWorld[i], tol) {
				touches = append(touches, touching{kind: bEdgeContainsAVertex, iA: i, iB: j})
			}
		}
	}
	return touches
}

// candidate is a directed translation vector proposed at a touch
// point. start and end record the edge it was derived from; nothing
// reads them when a candidate is chosen, since selectBestCandidate
// rejects a vector that reverses the previous step by comparing v with
// that step.
type candidate struct {
	v          vector.Vector
	start, end vector.Point
}

// candidatesFor emits the feasible edge-sliding translation vectors a
// touch event licenses. av and bv are the polygons' own (un-offset)
// vertex sequences; B's edge vectors are identical under any
// translation, so they are computed from the un-offset copy.
func candidatesFor(t touching, av, bv []vector.Point) []candidate {
	na, nb := len(av), len(bv)

	switch t.kind {
	case vertexVertex:
		i, j := t.iA, t.iB
		aNext, aPrev := av[(i+1)%na], av[(i-1+na)%na]
		bNext, bPrev := bv[(j+1)%nb], bv[(j-1+nb)%nb]
		return []candidate{
			{v: aNext.Sub(av[i]), start: av[i], end: aNext},
			{v: aPrev.Sub(av[i]), start: av[i], end: aPrev},
			{v: bNext.Sub(bv[j]), start: bv[j], end: bNext},
			{v: bPrev.Sub(bv[j]), start: bv[j], end: bPrev},
		}
	case aEdgeContainsBVertex:
		i := t.iA
		a0, a1 := av[i], av[(i+1)%na]
		edge := a1.Sub(a0)
		return []candidate{
			{v: edge, start: a0, end: a1},
			{v: edge.Scale(-1), start: a1, end: a0},
		}
	case bEdgeContainsAVertex:
		j := t.iB
		b0, b1 := bv[j], bv[(j+1)%nb]
		edge := b1.Sub(b0)
		return []candidate{
			{v: edge, start: b0, end: b1},
			{v: edge.Scale(-1), start: b1, end: b0},
		}
	default:
		return nil
	}
}
