package svgconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePathDataLineTriangle(t *testing.T) {
	subs, err := parsePathData("M 0 0 L 10 0 L 5 10 Z", 0.5)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.True(t, subs[0].closed)
	require.Equal(t, 3, len(subs[0].points))
}

func TestParsePathDataRelativeCommands(t *testing.T) {
	subs, err := parsePathData("m 1 1 l 9 0 l -4 9 z", 0.5)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.InDelta(t, 1, subs[0].points[0].X, 1e-9)
	require.InDelta(t, 10, subs[0].points[1].X, 1e-9)
}

func TestParsePathDataHorizontalVerticalShorthand(t *testing.T) {
	subs, err := parsePathData("M 0 0 H 10 V 10 H 0 Z", 0.5)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Len(t, subs[0].points, 4)
}

func TestParsePathDataCubicLinearizesAndEndsAtFinalPoint(t *testing.T) {
	subs, err := parsePathData("M 0 0 C 0 10 10 10 10 0", 0.5)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	pts := subs[0].points
	require.InDelta(t, 0, pts[0].X, 1e-9)
	require.InDelta(t, 0, pts[0].Y, 1e-9)
	last := pts[len(pts)-1]
	require.InDelta(t, 10, last.X, 1e-9)
	require.InDelta(t, 0, last.Y, 1e-9)
}

func TestParsePathDataTwoSubpaths(t *testing.T) {
	subs, err := parsePathData("M 0 0 L 1 0 L 1 1 Z M 5 5 L 6 5 L 6 6 Z", 0.5)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.True(t, subs[0].closed)
	require.True(t, subs[1].closed)
}

func TestParsePathDataRejectsMissingLeadingCommand(t *testing.T) {
	_, err := parsePathData("10 10 L 5 5", 0.5)
	require.Error(t, err)
}
