package svgconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nestcore/geomcore/vector"
)

// parsePointsList parses an SVG points attribute ("x1,y1 x2,y2 ...")
// into vertices, grounded on the same comma-or-whitespace splitting
// the original teacher's parsePointsList used.
func parsePointsList(s string) ([]vector.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates in points list")
	}
	pts := make([]vector.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err1 := strconv.ParseFloat(fields[i], 64)
		y, err2 := strconv.ParseFloat(fields[i+1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("invalid coordinate pair %q,%q", fields[i], fields[i+1])
		}
		pts = append(pts, vector.Point{X: x, Y: y})
	}
	return pts, nil
}
