package internal

import "math"

const Tolerance = 1e-6

// Epsilon is the tolerance for comparing accumulated areas.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. This is
// only used for measurements (areas, drawing). Every decision the algorithm
// makes is combinatorial or an exact orientation test.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return otherPoint.Below(p)
}

func (p *Point) SamePosition(otherPoint *Point) bool {
	return p.X == otherPoint.X && p.Y == otherPoint.Y
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Orientation is twice the signed area of the triangle abc. Positive when c is
// left of the directed line a→b.
func Orientation(a, b, c *Point) float64 {
	return b.Vec().Sub(a.Vec()).Cross(c.Vec().Sub(a.Vec()))
}

func (s *Segment) Top() *Point {
	if s.Start.Below(s.End) {
		return s.End
	}
	return s.Start
}

func (s *Segment) Bottom() *Point {
	if s.Start.Below(s.End) {
		return s.Start
	}
	return s.End
}

func (s *Segment) HasEndpoint(p *Point) bool {
	return s.Start == p || s.End == p
}

// Other endpoint, given one of them.
func (s *Segment) Other(p *Point) *Point {
	if s.Start == p {
		return s.End
	}
	return s.Start
}

// Lexicographically, a segment points down if its start is above its end.
func (s *Segment) PointsDown() bool {
	return s.End.Below(s.Start)
}

func (s *Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// side is the orientation of p against the segment directed bottom to top.
// Positive means p lies to the left of the segment.
func (s *Segment) side(p *Point) float64 {
	return Orientation(s.Bottom(), s.Top(), p)
}

// Is the segment (as an infinite line) left of the point?
func (s *Segment) IsLeftOf(p *Point) bool {
	return s.side(p) < 0
}

// Is the segment (as an infinite line) right of the point?
func (s *Segment) IsRightOf(p *Point) bool {
	return s.side(p) > 0
}

// The x value where the segment's line crosses the given height. Horizontal
// segments have no single answer, so the midpoint is returned.
func (s *Segment) XAt(y float64) float64 {
	if s.IsHorizontal() {
		return (s.Start.X + s.End.X) / 2
	}
	t := (y - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + t*(s.End.X-s.Start.X)
}

type PointProvider interface {
	PointList() []*Point
}

// Shoelace formula. Counterclockwise shapes have positive area.
func SignedArea(shape PointProvider) float64 {
	points := shape.PointList()
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		sum += p.Vec().Cross(next.Vec())
	}
	return sum / 2
}

func Area(shape PointProvider) float64 {
	return math.Abs(SignedArea(shape))
}

func IsCCW(shape PointProvider) bool {
	return SignedArea(shape) > 0
}

func IsCW(shape PointProvider) bool {
	return SignedArea(shape) < 0
}
