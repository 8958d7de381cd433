package vector

import (
	"math"
	"strconv"
	"strings"
)

// ParseTransformString accepts the SVG transform-list grammar: a
// whitespace-separated sequence of matrix(...), translate(...),
// scale(...), rotate(...), skewX(...), skewY(...) tokens. Tokens with
// the wrong argument arity are silently ignored rather than rejected,
// matching the grammar's permissive parsing convention; an empty or
// unparsable string yields the identity transform. Transforms compose
// left to right, matching the teacher's Transform.Mul convention: the
// leftmost listed transform is applied last, as SVG specifies.
func ParseTransformString(s string) Matrix {
	s = strings.TrimSpace(s)
	if s == "" {
		return Identity()
	}

	result := Identity()
	for _, tok := range splitTransformTokens(s) {
		name, args := parseTransformToken(tok)
		step, ok := transformStep(name, args)
		if !ok {
			continue
		}
		result = result.Mul(step)
	}
	return result
}

// splitTransformTokens splits "name(args) name(args) ..." into its
// individual "name(args)" tokens.
func splitTransformTokens(s string) []string {
	var toks []string
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = findTokenStart(s, i)
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				toks = append(toks, s[start:i+1])
				start = -1
			}
		}
	}
	return toks
}

// findTokenStart walks backward from the '(' at idx to find the start
// of the function-name token.
func findTokenStart(s string, idx int) int {
	i := idx
	for i > 0 && isTransformNameByte(s[i-1]) {
		i--
	}
	return i
}

func isTransformNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func parseTransformToken(tok string) (name string, args []float64) {
	open := strings.IndexByte(tok, '(')
	closeI := strings.LastIndexByte(tok, ')')
	if open < 0 || closeI < open {
		return tok, nil
	}
	name = strings.TrimSpace(tok[:open])
	body := tok[open+1 : closeI]
	body = strings.ReplaceAll(body, ",", " ")
	for _, f := range strings.Fields(body) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return name, nil
		}
		args = append(args, v)
	}
	return name, args
}

func transformStep(name string, args []float64) (Matrix, bool) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return Matrix{}, false
		}
		return Identity().MatrixRaw([6]float64{args[0], args[1], args[2], args[3], args[4], args[5]}), true
	case "translate":
		switch len(args) {
		case 1:
			return Identity().Translate(args[0], 0), true
		case 2:
			return Identity().Translate(args[0], args[1]), true
		}
		return Matrix{}, false
	case "scale":
		switch len(args) {
		case 1:
			return Identity().Scale(args[0], args[0]), true
		case 2:
			return Identity().Scale(args[0], args[1]), true
		}
		return Matrix{}, false
	case "rotate":
		switch len(args) {
		case 1:
			return Identity().Rotate(args[0]*math.Pi/180, 0, 0), true
		case 3:
			return Identity().Rotate(args[0]*math.Pi/180, args[1], args[2]), true
		}
		return Matrix{}, false
	case "skewX":
		if len(args) != 1 {
			return Matrix{}, false
		}
		return Identity().SkewX(args[0] * math.Pi / 180), true
	case "skewY":
		if len(args) != 1 {
			return Matrix{}, false
		}
		return Identity().SkewY(args[0] * math.Pi / 180), true
	}
	return Matrix{}, false
}
