package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
// 6. There are exactly n-2 triangles.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles TriangleList) {
	t.Helper()
	require.True(t, IsCCW(&polygon), "polygon is not counterclockwise")
	require.Len(t, triangles, len(polygon.Points)-2)

	polyPoints := make(PointSet)
	for _, p := range polygon.Points {
		polyPoints.Add(p)
	}
	trianglePoints := make(PointSet)
	for _, tri := range triangles {
		trianglePoints.Add(tri.A)
		trianglePoints.Add(tri.B)
		trianglePoints.Add(tri.C)
	}

	require.True(t, polyPoints.Equals(trianglePoints), "set of points in the triangles must equal the set of points in the polygon")

	var triangleArea float64
	triangleSegmentSet := make(NormalizedSegmentSet)
	for _, tri := range triangles {
		require.True(t, IsCCW(tri), "clockwise triangle: %s", tri)
		require.Greater(t, Area(tri), 0.0, "zero area triangle: %s", tri)
		triangleArea += Area(tri)
		for _, edge := range tri.Edges() {
			triangleSegmentSet.Add(edge.Start, edge.End)
		}
	}

	// Check every segment in the polygon is in the set
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, triangleSegmentSet.Contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	require.InDelta(t, Area(&polygon), triangleArea, Tolerance, "sum of the areas of all triangles is equal to the area of the polygon")
}

// Sample a grid over the polygon and check that every point inside it is
// covered by exactly one triangle, and every point outside by none. Points
// within tolerance of a triangle edge are ambiguous and skipped.
func validateTrianglesBySampling(t *testing.T, triangles TriangleList, polygon Polygon) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	// Offset the grid so that it doesn't line up with round coordinates.
	offset := step * 0.3719

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := &Point{X: x, Y: y}
			if nearAnyEdge(triangles, p) {
				continue
			}
			covering := 0
			for _, tri := range triangles {
				if triangleContains(tri, p) {
					covering++
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, covering, "point %v should be covered by exactly one triangle", p)
			} else {
				assert.Equal(t, 0, covering, "point %v should not be covered", p)
			}
		}
	}
}

func triangleContains(tri *Triangle, p *Point) bool {
	return Orientation(tri.A, tri.B, p) > 0 &&
		Orientation(tri.B, tri.C, p) > 0 &&
		Orientation(tri.C, tri.A, p) > 0
}

func nearAnyEdge(triangles TriangleList, p *Point) bool {
	for _, tri := range triangles {
		for _, edge := range tri.Edges() {
			if distanceToSegment(p, &edge) < Tolerance {
				return true
			}
		}
	}
	return false
}

func distanceToSegment(p *Point, s *Segment) float64 {
	a, b, v := s.Start.Vec(), s.End.Vec(), p.Vec()
	ab := b.Sub(a)
	t := v.Sub(a).Dot(ab) / ab.Dot(ab)
	t = math.Max(0, math.Min(1, t))
	return v.Sub(a.Add(ab.Mul(t))).Norm()
}
