package internal

import (
	"log/slog"
	"math/rand"
)

// Triangulation holds every stage of decomposing one polygon.
type Triangulation struct {
	// The polygon as triangulated, counterclockwise.
	Polygon Polygon
	Graph   *QueryGraph

	// The inner trapezoids before splitting on diagonals, as polygons. Bounding
	// square sides never appear in these, since every inner trapezoid is
	// bounded.
	InnerTrapezoids PolygonList
	SubPolygons     []*SubPolygon
	// One connector per diagonal added while splitting trapezoids.
	Seams     []*Connector
	Triangles TriangleList
	// Triangle edges that are not polygon edges, one connector each, joining
	// the two triangles on either side.
	Diagonals []*Connector
}

// Triangulate runs the full decomposition. The polygon must be simple, with
// distinct vertices that all lie inside a square of the given half width
// around the origin. Broken invariants panic; use
// HandleTriangulatePanicRecover to turn them into errors.
func Triangulate(poly Polygon, r *rand.Rand, bound float64, logger *slog.Logger) *Triangulation {
	if len(poly.Points) < 3 {
		fatalf("polygon has %d points", len(poly.Points))
	}
	if IsCW(&poly) {
		poly = poly.Reverse()
	}
	tri := &Triangulation{Polygon: poly, Graph: NewQueryGraph(bound, logger)}
	g := tri.Graph

	g.AddPolygon(poly, r)
	anchor := g.LocateLowestTrapezoidOfPolygon(poly)

	inner := g.ExtractInnerTrapezoids(poly)
	if !containsTrapezoid(inner, anchor) {
		fatalf("trapezoid above lowest vertex %s was not kept", anchor)
	}
	inner = g.MergeIrrelevantTrapezoids(inner)
	for _, t := range inner {
		tri.InnerTrapezoids = append(tri.InnerTrapezoids, t.Polygon(g.Bounds))
	}

	pieces, seams := g.SplitTrapezoidsOnDiagonals(inner)
	tri.Seams = seams
	tri.SubPolygons = ConvertToMonotones(pieces)

	for _, sp := range tri.SubPolygons {
		if !sp.IsStrictlyMonotone() {
			fatalf("piece is not monotone: %v", sp)
		}
		tri.Triangles = append(tri.Triangles, TriangulateMonotone(sp)...)
	}

	n := len(poly.Points)
	if len(tri.Triangles) != n-2 {
		fatalf("expected %d triangles, got %d", n-2, len(tri.Triangles))
	}
	tri.Diagonals = LinkTriangles(tri.Triangles, poly.EdgeSet())
	if len(tri.Diagonals) != n-3 {
		fatalf("expected %d diagonals, got %d", n-3, len(tri.Diagonals))
	}

	g.logger.Debug("triangulated polygon",
		"points", n,
		"nodes", g.NodeCount(),
		"innerTrapezoids", len(tri.InnerTrapezoids),
		"seams", len(tri.Seams),
		"monotones", len(tri.SubPolygons),
		"triangles", len(tri.Triangles),
	)
	return tri
}

func containsTrapezoid(list []*Trapezoid, t *Trapezoid) bool {
	for _, candidate := range list {
		if candidate == t {
			return true
		}
	}
	return false
}

// LinkTriangles fills in the neighbors of each triangle, connecting triangles
// that share an edge which is not one of the boundary edges. Returns the
// connectors, one per interior edge, in the order they were found. An interior
// edge shared by anything other than exactly two triangles is fatal.
func LinkTriangles(triangles TriangleList, boundary NormalizedSegmentSet) []*Connector {
	type halfEdge struct {
		triangle *Triangle
		index    int
	}
	open := make(map[NormalizedSegment]halfEdge)
	var connectors []*Connector
	for _, t := range triangles {
		for i, edge := range t.Edges() {
			if boundary.Contains(edge.Start, edge.End) {
				continue
			}
			key := NewNormalizedSegment(edge.Start, edge.End)
			other, ok := open[key]
			if !ok {
				open[key] = halfEdge{t, i}
				continue
			}
			if other.triangle.Neighbors[other.index] != nil {
				fatalf("edge %v is shared by more than two triangles", key.Segment())
			}
			c := &Connector{
				Start:     key.Lower,
				End:       key.Upper,
				Triangles: [2]*Triangle{other.triangle, t},
			}
			other.triangle.Neighbors[other.index] = c
			t.Neighbors[i] = c
			connectors = append(connectors, c)
		}
	}
	for key, he := range open {
		if he.triangle.Neighbors[he.index] == nil {
			fatalf("interior edge %v has only one triangle", key.Segment())
		}
	}
	return connectors
}
