package main

import (
	"bytes"
	"strings"
	"testing"

	triangulate "github.com/ecordell/FrechetPolygons-sub009"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygon_Text(t *testing.T) {
	in := strings.NewReader(`
# arrow
0 0
2 1
4,0.5

  2.1   5
`)
	points, err := readPolygon(in, false)
	require.NoError(t, err)
	assert.Equal(t, []*triangulate.Point{{0, 0}, {2, 1}, {4, 0.5}, {2.1, 5}}, points)
}

func TestReadPolygon_YAML(t *testing.T) {
	in := strings.NewReader(`
points:
  - [0, 0]
  - [2, 1]
  - [4, 0.5]
  - [2.1, 5]
`)
	points, err := readPolygon(in, true)
	require.NoError(t, err)
	assert.Equal(t, []*triangulate.Point{{0, 0}, {2, 1}, {4, 0.5}, {2.1, 5}}, points)
}

func TestReadPolygon_Errors(t *testing.T) {
	_, err := readPolygon(strings.NewReader("0 0\n1\n"), false)
	assert.ErrorContains(t, err, "line 2")

	_, err = readPolygon(strings.NewReader("0 zero\n"), false)
	assert.ErrorContains(t, err, "parsing y")

	_, err = readPolygon(strings.NewReader("points:\n  - [1, 2, 3]\n"), true)
	assert.ErrorContains(t, err, "point 0 has 3 coordinates")

	_, err = readPolygon(strings.NewReader("points: {"), true)
	assert.ErrorContains(t, err, "decoding yaml")
}

func TestWriteSVG(t *testing.T) {
	points := []*triangulate.Point{{0, 0}, {2, 1}, {4, 0.5}, {2.1, 5}}
	result, err := triangulate.Triangulate(points)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeSVG(&buf, result, triangulate.BuildDualGraph(result.Triangles), 10)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 1+len(result.MonotonePolygons)+len(result.Triangles), strings.Count(out, "<polygon"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Contains(t, out, "</svg>")
}

func TestCatImage(t *testing.T) {
	points := []*triangulate.Point{{0, 0}, {2, 1}, {4, 0.5}, {2.1, 5}}
	result, err := triangulate.Triangulate(points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, catImage(&buf, result, 10))
	assert.NotEmpty(t, buf.String())
}
