package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	assert.Nil(t, ps.Pop())
	assert.Nil(t, ps.Peek())
	ps.Push(&Point{1, 2})
	ps.Push(&Point{3, 4})
	assert.Equal(t, &Point{3, 4}, ps.Peek())
	assert.Equal(t, &Point{3, 4}, ps.Pop())
	assert.False(t, ps.Empty())
	assert.Equal(t, &Point{1, 2}, ps.Pop())
	assert.True(t, ps.Empty())
}

func TestCircularIndex(t *testing.T) {
	expected := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expected[i+3], CircularIndex(i, 3))
	}
}

func TestBelow(t *testing.T) {
	assert.True(t, (&Point{5, 0}).Below(&Point{0, 1}))
	assert.False(t, (&Point{0, 1}).Below(&Point{5, 0}))
	// Equal heights break ties by x
	assert.True(t, (&Point{0, 1}).Below(&Point{2, 1}))
	assert.True(t, (&Point{2, 1}).Above(&Point{0, 1}))
	p := &Point{1, 1}
	assert.False(t, p.Below(p))
	assert.False(t, p.Above(p))
}

func TestSegmentSides(t *testing.T) {
	// Pointing down doesn't change which side is which
	for _, s := range []*Segment{
		{&Point{0, 0}, &Point{2, 4}},
		{&Point{2, 4}, &Point{0, 0}},
	} {
		assert.True(t, s.IsLeftOf(&Point{2, 1}))
		assert.True(t, s.IsRightOf(&Point{0, 3}))
		assert.False(t, s.IsLeftOf(&Point{1, 2}))
		assert.False(t, s.IsRightOf(&Point{1, 2}))
		assert.InDelta(t, 1, s.XAt(2), Epsilon)
		assert.Equal(t, &Point{2, 4}, s.Top())
		assert.Equal(t, &Point{0, 0}, s.Bottom())
	}
	s := &Segment{&Point{0, 3}, &Point{4, 3}}
	assert.True(t, s.IsHorizontal())
	assert.InDelta(t, 2, s.XAt(3), Epsilon)
	assert.False(t, s.PointsDown())
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := &Triangle{A: &Point{0, -1}, B: &Point{1, 0}, C: &Point{0, 1}}
			// Clockwise triangles have negative area
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), Epsilon)
			}
			assertArea(1)
			for _, p := range tri.PointList() {
				p.Y *= 2
			}
			assertArea(2)

			// Rotate and translate by weird amounts
			for i := 0; i < 14; i++ {
				for _, p := range tri.PointList() {
					rotatePoint(p, math.Pi/7)
					p.X += 5
					p.Y += 3
				}
				assertArea(2)
			}
		})
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := &Triangle{A: &Point{0, 0}, B: &Point{3, 0}, C: &Point{0, 3}}
	c := tri.Centroid()
	assert.InDelta(t, 1, c.X, Epsilon)
	assert.InDelta(t, 1, c.Y, Epsilon)
	edges := tri.Edges()
	assert.Same(t, tri.A, edges[0].Start)
	assert.Same(t, tri.A, edges[2].End)
}
