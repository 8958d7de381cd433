package svgconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nestcore/geomcore/curve"
	"github.com/nestcore/geomcore/vector"
)

// subpath is one M-to-Z (or M-to-end-of-data) run of a path's `d`.
type subpath struct {
	points []vector.Point
	closed bool
}

const pathCommands = "MmLlHhVvCcSsQqTtAaZz"

// parsePathData parses the full grammar (M/m, L/l, H/h, V/v, C/c, S/s,
// Q/q, T/t, A/a, Z/z), converting relative commands to absolute as it
// goes, and linearizes every curve command through the curve package
// at chord tolerance tol. It returns one subpath per M...Z run.
func parsePathData(d string, tol float64) ([]subpath, error) {
	tokens := tokenizePathData(d)
	if len(tokens) == 0 {
		return nil, nil
	}

	var subpaths []subpath
	var pts []vector.Point
	var cur, start vector.Point
	var cmd byte
	var havePrevCubicCtrl, havePrevQuadCtrl bool
	var prevCubicCtrl, prevQuadCtrl vector.Point

	closeSubpath := func(closed bool) {
		if len(pts) > 0 {
			subpaths = append(subpaths, subpath{points: pts, closed: closed})
		}
		pts = nil
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if isPathCommand(tok) {
			cmd = tok[0]
			i++
		}
		if cmd == 0 {
			return nil, errors.New("path data must start with a command")
		}

		switch cmd {
		case 'M', 'm':
			x, y, err := readPair(tokens, &i)
			if err != nil {
				return nil, err
			}
			if cmd == 'm' {
				x, y = cur.X+x, cur.Y+y
			}
			closeSubpath(false)
			cur = vector.Point{X: x, Y: y}
			start = cur
			pts = append(pts, cur)
			havePrevCubicCtrl, havePrevQuadCtrl = false, false
			// subsequent coordinate pairs after M are implicit linetos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}

		case 'L', 'l':
			x, y, err := readPair(tokens, &i)
			if err != nil {
				return nil, err
			}
			if cmd == 'l' {
				x, y = cur.X+x, cur.Y+y
			}
			cur = vector.Point{X: x, Y: y}
			pts = append(pts, cur)
			havePrevCubicCtrl, havePrevQuadCtrl = false, false

		case 'H', 'h':
			x, err := readScalar(tokens, &i)
			if err != nil {
				return nil, err
			}
			if cmd == 'h' {
				cur.X += x
			} else {
				cur.X = x
			}
			pts = append(pts, cur)
			havePrevCubicCtrl, havePrevQuadCtrl = false, false

		case 'V', 'v':
			y, err := readScalar(tokens, &i)
			if err != nil {
				return nil, err
			}
			if cmd == 'v' {
				cur.Y += y
			} else {
				cur.Y = y
			}
			pts = append(pts, cur)
			havePrevCubicCtrl, havePrevQuadCtrl = false, false

		case 'C', 'c':
			x1, y1, x2, y2, x, y, err := readSix(tokens, &i)
			if err != nil {
				return nil, err
			}
			p1 := vector.Point{X: x1, Y: y1}
			p2 := vector.Point{X: x2, Y: y2}
			p3 := vector.Point{X: x, Y: y}
			if cmd == 'c' {
				p1 = vector.Point{X: cur.X + x1, Y: cur.Y + y1}
				p2 = vector.Point{X: cur.X + x2, Y: cur.Y + y2}
				p3 = vector.Point{X: cur.X + x, Y: cur.Y + y}
			}
			seg, _ := curve.LinearizeCubic(cur, p1, p2, p3, tol)
			pts = appendSegment(pts, seg)
			cur = p3
			prevCubicCtrl, havePrevCubicCtrl = p2, true
			havePrevQuadCtrl = false

		case 'S', 's':
			x2, y2, x, y, err := readFour(tokens, &i)
			if err != nil {
				return nil, err
			}
			p2 := vector.Point{X: x2, Y: y2}
			p3 := vector.Point{X: x, Y: y}
			if cmd == 's' {
				p2 = vector.Point{X: cur.X + x2, Y: cur.Y + y2}
				p3 = vector.Point{X: cur.X + x, Y: cur.Y + y}
			}
			p1 := cur
			if havePrevCubicCtrl {
				p1 = reflectPoint(cur, prevCubicCtrl)
			}
			seg, _ := curve.LinearizeCubic(cur, p1, p2, p3, tol)
			pts = appendSegment(pts, seg)
			cur = p3
			prevCubicCtrl, havePrevCubicCtrl = p2, true
			havePrevQuadCtrl = false

		case 'Q', 'q':
			x1, y1, x, y, err := readFour(tokens, &i)
			if err != nil {
				return nil, err
			}
			p1 := vector.Point{X: x1, Y: y1}
			p2 := vector.Point{X: x, Y: y}
			if cmd == 'q' {
				p1 = vector.Point{X: cur.X + x1, Y: cur.Y + y1}
				p2 = vector.Point{X: cur.X + x, Y: cur.Y + y}
			}
			seg, _ := curve.LinearizeQuadratic(cur, p1, p2, tol)
			pts = appendSegment(pts, seg)
			cur = p2
			prevQuadCtrl, havePrevQuadCtrl = p1, true
			havePrevCubicCtrl = false

		case 'T', 't':
			x, y, err := readPair(tokens, &i)
			if err != nil {
				return nil, err
			}
			p2 := vector.Point{X: x, Y: y}
			if cmd == 't' {
				p2 = vector.Point{X: cur.X + x, Y: cur.Y + y}
			}
			p1 := cur
			if havePrevQuadCtrl {
				p1 = reflectPoint(cur, prevQuadCtrl)
			}
			seg, _ := curve.LinearizeQuadratic(cur, p1, p2, tol)
			pts = appendSegment(pts, seg)
			cur = p2
			prevQuadCtrl, havePrevQuadCtrl = p1, true
			havePrevCubicCtrl = false

		case 'A', 'a':
			rx, ry, xrot, laf, sf, x, y, err := readArc(tokens, &i)
			if err != nil {
				return nil, err
			}
			end := vector.Point{X: x, Y: y}
			if cmd == 'a' {
				end = vector.Point{X: cur.X + x, Y: cur.Y + y}
			}
			seg, _ := curve.LinearizeArc(cur, end, rx, ry, xrot*math.Pi/180, laf, sf, tol)
			pts = appendSegment(pts, seg)
			cur = end
			havePrevCubicCtrl, havePrevQuadCtrl = false, false

		case 'Z', 'z':
			cur = start
			closeSubpath(true)
			havePrevCubicCtrl, havePrevQuadCtrl = false, false

		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}
	}
	closeSubpath(false)
	return subpaths, nil
}

func appendSegment(pts []vector.Point, seg []vector.Point) []vector.Point {
	if len(seg) == 0 {
		return pts
	}
	// seg[0] duplicates the current point already in pts.
	return append(pts, seg[1:]...)
}

func reflectPoint(current, control vector.Point) vector.Point {
	return vector.Point{X: 2*current.X - control.X, Y: 2*current.Y - control.Y}
}

func isPathCommand(tok string) bool {
	return len(tok) == 1 && strings.ContainsRune(pathCommands, rune(tok[0]))
}

func readScalar(tokens []string, i *int) (float64, error) {
	if *i >= len(tokens) {
		return 0, errors.New("path data: expected a number")
	}
	v, err := strconv.ParseFloat(tokens[*i], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", tokens[*i])
	}
	*i++
	return v, nil
}

func readPair(tokens []string, i *int) (x, y float64, err error) {
	if x, err = readScalar(tokens, i); err != nil {
		return
	}
	y, err = readScalar(tokens, i)
	return
}

func readFour(tokens []string, i *int) (a, b, c, d float64, err error) {
	if a, b, err = readPair(tokens, i); err != nil {
		return
	}
	c, d, err = readPair(tokens, i)
	return
}

func readSix(tokens []string, i *int) (a, b, c, d, e, f float64, err error) {
	if a, b, c, d, err = readFour(tokens, i); err != nil {
		return
	}
	e, f, err = readPair(tokens, i)
	return
}

func readArc(tokens []string, i *int) (rx, ry, xrot float64, laf, sf bool, x, y float64, err error) {
	if rx, err = readScalar(tokens, i); err != nil {
		return
	}
	if ry, err = readScalar(tokens, i); err != nil {
		return
	}
	if xrot, err = readScalar(tokens, i); err != nil {
		return
	}
	var lafN, sfN float64
	if lafN, err = readScalar(tokens, i); err != nil {
		return
	}
	if sfN, err = readScalar(tokens, i); err != nil {
		return
	}
	laf, sf = lafN != 0, sfN != 0
	x, y, err = readPair(tokens, i)
	return
}

// tokenizePathData inserts separators around every command letter and
// around every minus sign (so "10-5" tokenizes as "10", "-5") and
// splits on whitespace/commas.
func tokenizePathData(d string) []string {
	var b strings.Builder
	for _, r := range d {
		switch {
		case strings.ContainsRune(pathCommands, r):
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		case r == ',':
			b.WriteRune(' ')
		case r == '-':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}
