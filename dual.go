package triangulate

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// DualGraph has a node per triangle, placed at its centroid, and an edge
// between every pair of triangles that share an edge. For a triangulated
// simple polygon, this is a tree.
type DualGraph struct {
	*simple.UndirectedGraph
	byTriangle map[*Triangle]*DualNode
}

type DualNode struct {
	id       int64
	Triangle *Triangle
	Centroid Point
}

func (n *DualNode) ID() int64 { return n.id }

// DualEdge joins two triangles across the segment they share.
type DualEdge struct {
	F, T   *DualNode
	Shared Segment
}

func (e *DualEdge) From() graph.Node { return e.F }
func (e *DualEdge) To() graph.Node   { return e.T }
func (e *DualEdge) ReversedEdge() graph.Edge {
	return &DualEdge{F: e.T, T: e.F, Shared: e.Shared}
}

// Order independent key for an edge, by coordinates rather than identity, so
// that triangles from different sources can be joined.
type edgeKey [4]float64

func newEdgeKey(a, b *Point) edgeKey {
	if b.Below(a) {
		a, b = b, a
	}
	return edgeKey{a.X, a.Y, b.X, b.Y}
}

// BuildDualGraph builds the dual graph of a list of triangles. Node IDs are the
// triangles' indexes. Edges that only one triangle has, like the boundary of
// the polygon, produce nothing.
func BuildDualGraph(triangles []*Triangle) *DualGraph {
	g := &DualGraph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		byTriangle:      make(map[*Triangle]*DualNode, len(triangles)),
	}
	open := make(map[edgeKey]*DualNode)
	for i, t := range triangles {
		node := &DualNode{id: int64(i), Triangle: t, Centroid: t.Centroid()}
		g.AddNode(node)
		g.byTriangle[t] = node
		for _, edge := range t.Edges() {
			key := newEdgeKey(edge.Start, edge.End)
			other, ok := open[key]
			if !ok {
				open[key] = node
				continue
			}
			delete(open, key)
			g.SetEdge(&DualEdge{F: other, T: node, Shared: edge})
		}
	}
	return g
}

// NodeFor returns the node for a triangle, or nil if it isn't in the graph.
func (g *DualGraph) NodeFor(t *Triangle) *DualNode {
	return g.byTriangle[t]
}

// Across returns the segment shared by two adjacent triangles.
func (g *DualGraph) Across(a, b *Triangle) (Segment, bool) {
	na, nb := g.NodeFor(a), g.NodeFor(b)
	if na == nil || nb == nil {
		return Segment{}, false
	}
	e := g.EdgeBetween(na.ID(), nb.ID())
	if e == nil {
		return Segment{}, false
	}
	return e.(*DualEdge).Shared, true
}
