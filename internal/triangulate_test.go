package internal

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulateWithSeed(poly Polygon, seed int64) *Triangulation {
	return Triangulate(poly, rand.New(rand.NewSource(seed)), DefaultBound, nil)
}

func testPolygons() map[string]Polygon {
	polygons := map[string]Polygon{
		"star":     SimpleStar(),
		"arrow":    Arrow(),
		"sawtooth": Sawtooth(7),
		"pentagon": RegularPolygon(5, 3),
		"40-gon":   RegularPolygon(40, 100),
	}
	for _, name := range fixtureNames {
		polygons[name] = LoadFixture(name)
	}
	return polygons
}

func TestTriangulate(t *testing.T) {
	for name, poly := range testPolygons() {
		for seed := int64(0); seed < 8; seed++ {
			t.Run(fmt.Sprintf("%s seed %d", name, seed), func(t *testing.T) {
				tri := triangulateWithSeed(poly, seed)
				AssertValidTriangulation(t, poly, tri.Triangles)
				validateTrianglesBySampling(t, tri.Triangles, poly)
				assertValidDiagonals(t, poly, tri)
				assertValidMonotones(t, poly, tri)
			})
		}
	}
}

func TestTriangulate_SeedIndependentDecomposition(t *testing.T) {
	// The insertion order changes the query structure but never the map
	poly := LoadFixture("spiral")
	expected := triangulateWithSeed(poly, 0)
	for seed := int64(1); seed < 5; seed++ {
		actual := triangulateWithSeed(poly, seed)
		assert.Len(t, actual.InnerTrapezoids, len(expected.InnerTrapezoids))
		assert.Len(t, actual.Seams, len(expected.Seams))
		assert.Len(t, actual.SubPolygons, len(expected.SubPolygons))
	}
}

func TestTriangulate_Clockwise(t *testing.T) {
	poly := SimpleStar().Reverse()
	require.True(t, IsCW(&poly))
	tri := triangulateWithSeed(poly, 3)
	assert.True(t, IsCCW(&tri.Polygon))
	AssertValidTriangulation(t, tri.Polygon, tri.Triangles)
}

func TestTriangulate_Square(t *testing.T) {
	// Equal y values are broken lexicographically.
	poly := Polygon{[]*Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	for seed := int64(0); seed < 4; seed++ {
		tri := triangulateWithSeed(poly, seed)
		AssertValidTriangulation(t, poly, tri.Triangles)
		require.Len(t, tri.Diagonals, 1)
		// Lexicographically, (4, 0) sits just above (0, 0) and (0, 4) just
		// below (4, 4), so the middle trapezoid is split between those two.
		d := tri.Diagonals[0]
		assert.Same(t, poly.Points[1], d.Start)
		assert.Same(t, poly.Points[3], d.End)
	}
}

// The reflex vertex at the notch is handled by the monotone sweep's stack
func TestTriangulate_Arrow(t *testing.T) {
	poly := Arrow()
	for seed := int64(0); seed < 8; seed++ {
		tri := triangulateWithSeed(poly, seed)
		AssertValidTriangulation(t, poly, tri.Triangles)
		assertValidDiagonals(t, poly, tri)
		require.Len(t, tri.Diagonals, 1)
		// The only valid diagonal leaves the reflex vertex
		d := tri.Diagonals[0]
		assert.ElementsMatch(t, []*Point{poly.Points[1], poly.Points[3]}, []*Point{d.Start, d.End})
	}
}

func TestTriangulate_ConvexPentagon(t *testing.T) {
	poly := Polygon{[]*Point{{0, 0}, {2, 0.5}, {3, 2}, {1, 3}, {-1, 1.5}}}
	tri := triangulateWithSeed(poly, 0)
	AssertValidTriangulation(t, poly, tri.Triangles)
	assert.Len(t, tri.Diagonals, 2)
	assertValidDiagonals(t, poly, tri)
}

func TestLinkTriangles(t *testing.T) {
	a, b, c, d := &Point{0, 0}, &Point{1, 0.1}, &Point{1.1, 1}, &Point{0.1, 1.2}
	poly := Polygon{[]*Point{a, b, c, d}}
	left := &Triangle{A: a, B: c, C: d}
	right := &Triangle{A: a, B: b, C: c}
	connectors := LinkTriangles(TriangleList{left, right}, poly.EdgeSet())
	require.Len(t, connectors, 1)
	connector := connectors[0]
	assert.Same(t, a, connector.Start)
	assert.Same(t, c, connector.End)
	assert.Same(t, right, connector.Other(left))
	assert.Same(t, left, connector.Other(right))
	// Edge A-C is index 0 of left and index 2 of right
	assert.Same(t, connector, left.Neighbors[0])
	assert.Same(t, connector, right.Neighbors[2])
	assert.Nil(t, left.Neighbors[1])

	t.Run("unpaired interior edge", func(t *testing.T) {
		assert.Panics(t, func() {
			LinkTriangles(TriangleList{{A: a, B: b, C: c}}, poly.EdgeSet())
		})
	})
}

// Every diagonal joins two vertices of the polygon, isn't a polygon edge, and
// has a triangle on either side.
func assertValidDiagonals(t *testing.T, poly Polygon, tri *Triangulation) {
	t.Helper()
	n := len(poly.Points)
	require.Len(t, tri.Diagonals, n-3)
	vertices := make(PointSet)
	for _, p := range poly.Points {
		vertices.Add(p)
	}
	edges := poly.EdgeSet()
	seen := make(NormalizedSegmentSet)
	for _, d := range tri.Diagonals {
		assert.True(t, vertices.Contains(d.Start) && vertices.Contains(d.End), "diagonal %v-%v leaves the vertex set", d.Start, d.End)
		assert.False(t, edges.Contains(d.Start, d.End), "diagonal %v-%v is a polygon edge", d.Start, d.End)
		assert.False(t, seen.Contains(d.Start, d.End), "diagonal %v-%v repeats", d.Start, d.End)
		seen.Add(d.Start, d.End)
		require.NotNil(t, d.Triangles[0])
		require.NotNil(t, d.Triangles[1])
		assert.NotSame(t, d.Triangles[0], d.Triangles[1])
	}
	// Every seam added while splitting trapezoids survives as a diagonal
	for _, seam := range tri.Seams {
		assert.True(t, seen.Contains(seam.Start, seam.End), "seam %v-%v is not a diagonal", seam.Start, seam.End)
	}
}

// The monotone pieces are strictly monotone and tile the polygon.
func assertValidMonotones(t *testing.T, poly Polygon, tri *Triangulation) {
	t.Helper()
	var total float64
	vertices := make(PointSet)
	for _, sp := range tri.SubPolygons {
		assert.True(t, sp.IsStrictlyMonotone(), "%v is not monotone", sp)
		piece := sp.Polygon()
		assert.True(t, IsCCW(&piece), "%v is not counterclockwise", sp)
		total += Area(&piece)
		for _, cp := range sp.Chain {
			vertices.Add(cp.Point)
		}
	}
	assert.InDelta(t, Area(&poly), total, Tolerance)
	assert.Len(t, vertices, len(poly.Points))

	var trapezoidArea float64
	for _, shape := range tri.InnerTrapezoids {
		trapezoidArea += Area(&shape)
	}
	assert.InDelta(t, Area(&poly), trapezoidArea, Tolerance)
}

func TestDraw(t *testing.T) {
	poly := RegularPolygon(6, 10)
	tri := triangulateWithSeed(poly, 0)
	img := tri.Draw(5)
	// 20 units across at scale 5, plus padding
	assert.InDelta(t, 100+2*drawPadding, img.Bounds().Dx(), 2)
	// The center is covered by a trapezoid, so it isn't background black
	r, g, b, _ := img.At(img.Bounds().Dx()/2, img.Bounds().Dy()/2).RGBA()
	assert.NotZero(t, r+g+b)

	// The outline is 3 pixels wide, so the middle row crosses solid white on
	// both sides of the polygon
	y := img.Bounds().Dy() / 2
	var left, right int
	for x := 0; x < img.Bounds().Dx(); x++ {
		r, g, b, _ := img.At(x, y).RGBA()
		if r == 0xffff && g == 0xffff && b == 0xffff {
			if x < img.Bounds().Dx()/2 {
				left++
			} else {
				right++
			}
		}
	}
	assert.GreaterOrEqual(t, left, 1)
	assert.GreaterOrEqual(t, right, 1)
	assert.LessOrEqual(t, left+right, 12)
}
