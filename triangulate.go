// An asymptotically fast triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex, into a set
// of triangles containing only the original points. It follows Seidel's
// randomized algorithm: the polygon is decomposed into a trapezoidal map,
// which is split on diagonals into monotone pieces, each of which is
// triangulated with a linear sweep. Expected running time is O(n log n).
package triangulate

import (
	"image"
	"math"
	"math/rand"

	"github.com/ecordell/FrechetPolygons-sub009/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Connector = internal.Connector
type SubPolygon = internal.SubPolygon
type ChainPoint = internal.ChainPoint

// Result of triangulating a polygon. Everything here refers to the original
// point pointers.
type Result struct {
	// Counterclockwise triangles, n-2 of them. Each triangle's Neighbors hold
	// the connectors across its diagonals.
	Triangles []*Triangle
	// The n-3 triangle edges that are not polygon edges.
	Diagonals []*Segment
	// The monotone pieces as counterclockwise polygons.
	MonotonePolygons []Polygon
	// The monotone pieces as chains sorted from the bottom up, with each vertex
	// tagged by the side it is on.
	SubPolygons []*SubPolygon

	triangulation *internal.Triangulation
}

// InnerTrapezoids returns the trapezoids covering the polygon, as polygons, as
// they were before being split on diagonals.
func (r *Result) InnerTrapezoids() []Polygon {
	return r.triangulation.InnerTrapezoids
}

// Polygon returns the polygon that was triangulated. It is the input, reversed
// if the input was clockwise.
func (r *Result) Polygon() Polygon {
	return r.triangulation.Polygon
}

// ContainsPoint reports whether p is strictly inside the polygon, using the
// trapezoidal map. This is O(log n) expected per query.
func (r *Result) ContainsPoint(p *Point) bool {
	return r.triangulation.Graph.ContainsPoint(p)
}

// Draw renders the trapezoidal decomposition and the triangles over the
// polygon. Scale is in pixels per unit.
func (r *Result) Draw(scale float64) image.Image {
	return r.triangulation.Draw(scale)
}

// Triangulate a simple polygon given as an implicitly closed list of points,
// in either winding order.
//
// The polygon must be simple. This is not checked, and a self-intersecting
// polygon will usually produce an ErrInvariant error. Everything else about
// the input is checked before any work is done:
//   - there are at least 3 points, with finite coordinates
//   - no two points share a position
//   - no two points share a y coordinate, unless AllowEqualY is given
//   - every point is strictly inside the bounding square (see WithBound)
//   - the polygon has nonzero area
func Triangulate(points []*Point, opts ...Option) (result *Result, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(points, &o); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = Logger()
	}
	r := o.rand
	if r == nil {
		r = rand.New(rand.NewSource(o.seed))
	}

	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	tri := internal.Triangulate(Polygon{Points: points}, r, o.bound, logger)
	result = &Result{
		Triangles:     tri.Triangles,
		Diagonals:     make([]*Segment, 0, len(tri.Diagonals)),
		SubPolygons:   tri.SubPolygons,
		triangulation: tri,
	}
	for _, d := range tri.Diagonals {
		result.Diagonals = append(result.Diagonals, &Segment{Start: d.Start, End: d.End})
	}
	for _, sp := range tri.SubPolygons {
		result.MonotonePolygons = append(result.MonotonePolygons, sp.Polygon())
	}
	return result, nil
}

func validate(points []*Point, o *options) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}

	positions := make(map[[2]float64]int, len(points))
	heights := make(map[float64]int, len(points))
	for i, p := range points {
		if p == nil {
			return errors.Wrapf(ErrDegenerate, "point %d is nil", i)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrNonFinite, "point %d is %v", i, p)
		}
		if math.Abs(p.X) >= o.bound || math.Abs(p.Y) >= o.bound {
			return errors.Wrapf(ErrOutOfBounds, "point %d is %v, bound is %g", i, p, o.bound)
		}
		if j, ok := positions[[2]float64{p.X, p.Y}]; ok {
			return errors.Wrapf(ErrDuplicatePoint, "points %d and %d are both %v", j, i, p)
		}
		positions[[2]float64{p.X, p.Y}] = i
		if j, ok := heights[p.Y]; ok && !o.allowEqualY {
			return errors.Wrapf(ErrDuplicateY, "points %d and %d both have y = %g", j, i, p.Y)
		}
		heights[p.Y] = i
	}

	if internal.SignedArea(&Polygon{Points: points}) == 0 {
		return errors.Wrap(ErrDegenerate, "polygon has zero area")
	}
	return nil
}
