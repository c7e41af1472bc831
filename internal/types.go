package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the triangulation are pointers. This means
// they can be used as keys, and pointer equality is vertex identity. We should
// never modify a point value from the original polygon, since some
// applications require exact equality, and we cannot tolerate loss of
// precision.
type Segment struct {
	Start *Point
	End   *Point
}

type Polygon struct {
	Points []*Point
}

type PolygonList []Polygon

// A triangle's neighbors are indexed by edge: Neighbors[0] is across A-B,
// Neighbors[1] across B-C and Neighbors[2] across C-A. Boundary edges have no
// connector.
type Triangle struct {
	A, B, C   *Point
	Neighbors [3]*Connector
}

type TriangleList []*Triangle

// A Connector joins two regions across a shared diagonal. During
// decomposition it pairs the two halves of a split trapezoid; after
// triangulation it pairs the two triangles that share the diagonal.
type Connector struct {
	Start, End *Point
	Trapezoids [2]*Trapezoid
	Triangles  [2]*Triangle
}

type PointStack []*Point

type PointSet map[*Point]struct{}

func (p *Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s *Segment) String() string {
	return fmt.Sprintf("%v→%v", s.Start, s.End)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("△%v%v%v", t.A, t.B, t.C)
}

func (t *Triangle) PointList() []*Point {
	return []*Point{t.A, t.B, t.C}
}

func (poly *Polygon) PointList() []*Point {
	return poly.Points
}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Edges gives the triangle's sides in neighbor order.
func (t *Triangle) Edges() [3]Segment {
	return [3]Segment{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t *Triangle) Centroid() Point {
	c := t.A.Vec().Add(t.B.Vec()).Add(t.C.Vec()).Mul(1.0 / 3)
	return Point{X: c.X, Y: c.Y}
}

func (t *Triangle) SignedArea() float64 {
	return SignedArea(t)
}

// Other returns the triangle across the connector from t, or nil.
func (c *Connector) Other(t *Triangle) *Triangle {
	switch t {
	case c.Triangles[0]:
		return c.Triangles[1]
	case c.Triangles[1]:
		return c.Triangles[0]
	}
	return nil
}

func (list TriangleList) ToPolygonList() PolygonList {
	result := make(PolygonList, 0, len(list))
	for _, t := range list {
		result = append(result, Polygon{[]*Point{t.A, t.B, t.C}})
	}
	return result
}
