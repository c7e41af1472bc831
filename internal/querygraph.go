package internal

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/ecordell/FrechetPolygons-sub009/dbg"
	"github.com/golang/geo/r2"
)

// This implements the data structures for Seidel 1991 for trapezoidizing a
// polygon. It uses the same lexicographic convention as elsewhere which avoids
// equal y values by lexicographic rotation.

// DefaultBound is the half width of the bounding square.
const DefaultBound = 500

type QueryGraph struct {
	Root   NodeID
	Bounds r2.Rect

	nodes           []QueryNode
	nextTrapezoidID int
	logger          *slog.Logger
}

// The result of locating a point. Present means the point already is a vertex
// of the map (or lies on a segment), so there is no single trapezoid for it.
type Location struct {
	Sink      NodeID
	Trapezoid *Trapezoid
	Present   bool
}

// Create a graph holding a single trapezoid: the whole bounding square.
func NewQueryGraph(bound float64, logger *slog.Logger) *QueryGraph {
	if logger == nil {
		logger = NopLogger()
	}
	graph := &QueryGraph{
		Bounds: r2.RectFromCenterSize(r2.Point{}, r2.Point{X: 2 * bound, Y: 2 * bound}),
		logger: logger,
	}
	graph.Root = graph.newTrapezoid().Sink
	return graph
}

func (g *QueryGraph) Node(id NodeID) *QueryNode {
	return &g.nodes[id]
}

func (g *QueryGraph) NodeCount() int {
	return len(g.nodes)
}

func (g *QueryGraph) addNode(inner QueryNodeInner) NodeID {
	g.nodes = append(g.nodes, QueryNode{Inner: inner})
	return NodeID(len(g.nodes) - 1)
}

// Allocate a trapezoid that is not part of the query structure. Used once the
// query structure is no longer needed, when trapezoids are merged or split on
// diagonals.
func (g *QueryGraph) detachedTrapezoid() *Trapezoid {
	t := &Trapezoid{ID: g.nextTrapezoidID, Sink: NoNode}
	g.nextTrapezoidID++
	return t
}

// Allocate a trapezoid along with the sink that owns it.
func (g *QueryGraph) newTrapezoid() *Trapezoid {
	t := &Trapezoid{ID: g.nextTrapezoidID}
	g.nextTrapezoidID++
	t.Sink = g.addNode(SinkNode{Trapezoid: t})
	return t
}

func (g *QueryGraph) sinkTrapezoid(id NodeID) *Trapezoid {
	sink, ok := g.nodes[id].Inner.(SinkNode)
	if !ok {
		fatalf("node %d is not a sink", id)
	}
	return sink.Trapezoid
}

// A graph iterator lets you loop over the nodes in a graph exactly once.
// Traversal order is not defined. Behavior is also undefined if you modify the
// graph during iteration.
type GraphIterator struct {
	graph *QueryGraph
	stack []NodeID
	seen  map[NodeID]struct{}
}

func (g *QueryGraph) Iterate() *GraphIterator {
	return &GraphIterator{g, []NodeID{g.Root}, map[NodeID]struct{}{}}
}

func (iter *GraphIterator) Next() (NodeID, bool) {
	for len(iter.stack) > 0 {
		id := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the node before
		if _, ok := iter.seen[id]; ok {
			continue
		}
		iter.seen[id] = struct{}{}
		iter.stack = append(iter.stack, iter.graph.nodes[id].Inner.ChildNodes()...)
		return id, true
	}
	return NoNode, false
}

// All trapezoids reachable from the root, ordered by creation.
func (g *QueryGraph) Trapezoids() []*Trapezoid {
	var result []*Trapezoid
	iter := g.Iterate()
	for id, ok := iter.Next(); ok; id, ok = iter.Next() {
		if sink, ok := g.nodes[id].Inner.(SinkNode); ok {
			result = append(result, sink.Trapezoid)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Find the trapezoid containing the point.
func (g *QueryGraph) Locate(p *Point) Location {
	return g.locate(DirectionalPoint{Point: p})
}

func (g *QueryGraph) locate(dp DirectionalPoint) Location {
	id := g.Root
	for {
		node := g.nodes[id].Inner
		if sink, ok := node.(SinkNode); ok {
			return Location{Sink: id, Trapezoid: sink.Trapezoid}
		}
		next, present := node.Branch(dp)
		if present {
			return Location{Sink: NoNode, Present: true}
		}
		id = next
	}
}

// Add every edge of the polygon to the graph in a random order. This is what
// gives us expected O(nlogn) time. The permutation never affects the
// resulting map, only how long it takes to build.
func (g *QueryGraph) AddPolygon(poly Polygon, r *rand.Rand) {
	segments := poly.Segments()
	r.Shuffle(len(segments), func(i, j int) {
		segments[i], segments[j] = segments[j], segments[i]
	})
	for _, segment := range segments {
		g.logger.Debug("adding segment", "segment", segment, "name", dbg.Name(segment))
		g.AddSegment(segment)
	}
}

// Insert a segment. The segment must not cross any segment already in the
// graph, although it may share endpoints with them.
func (g *QueryGraph) AddSegment(segment *Segment) {
	if segment == nil || segment.Start == segment.End || segment.Start.SamePosition(segment.End) {
		fatalf("cannot add degenerate segment %v", segment)
	}
	g.InsertPoint(segment.Top())
	g.InsertPoint(segment.Bottom())
	g.threadSegment(segment)
}

// Insert a point, splitting the trapezoid containing it horizontally. Returns
// false when the point is already in the graph, in which case nothing changes.
func (g *QueryGraph) InsertPoint(p *Point) bool {
	if !g.Bounds.InteriorContainsPoint(p.Vec()) {
		fatalf("point %v is outside the bounding square", p)
	}
	loc := g.Locate(p)
	if loc.Present {
		return false
	}
	g.SplitTrapezoidHorizontally(loc.Sink, p)
	return true
}

// Split a trapezoid horizontally, and replace its sink with a y node. The node
// must be a sink whose trapezoid contains the point.
func (g *QueryGraph) SplitTrapezoidHorizontally(id NodeID, point *Point) {
	orig := g.sinkTrapezoid(id)
	if orig.Top != nil && !point.Below(orig.Top) {
		fatalf("cannot split on point %v above top of %s", point, orig)
	}
	if orig.Bottom != nil && !orig.Bottom.Below(point) {
		fatalf("cannot split on point %v below bottom of %s", point, orig)
	}

	top := g.newTrapezoid()
	bottom := g.newTrapezoid()
	top.Left, top.Right = orig.Left, orig.Right
	bottom.Left, bottom.Right = orig.Left, orig.Right

	// Create the dividing line at the point's Y value
	top.Top, top.Bottom = orig.Top, point
	bottom.Top, bottom.Bottom = point, orig.Bottom

	// Set neighbors. The top trapezoid retains the upper neighbors, and the
	// bottom trapezoid retains the lower neighbors
	top.TrapezoidsAbove = orig.TrapezoidsAbove
	top.LinkBottom(bottom)
	bottom.LinkTop(top)
	bottom.TrapezoidsBelow = orig.TrapezoidsBelow

	// Back link neighbors
	for _, neighbor := range top.TrapezoidsAbove {
		if neighbor != nil {
			neighbor.TrapezoidsBelow.Replace(orig, top)
		}
	}
	for _, neighbor := range bottom.TrapezoidsBelow {
		if neighbor != nil {
			neighbor.TrapezoidsAbove.Replace(orig, bottom)
		}
	}

	// Replace the original trapezoid's sink
	g.nodes[id].Inner = YNode{
		Key:   point,
		Above: top.Sink,
		Below: bottom.Sink,
	}
	g.logger.Debug("split horizontally", "point", point, "trapezoid", orig, "top", top, "bottom", bottom)
}

// Split every trapezoid the segment passes through into a left and right part.
// Both endpoints must already be in the graph.
//
// Walking down from the top, the segment crosses the horizontal line under
// each trapezoid it passes through. Each such line was drawn through a vertex
// v. Once the segment is in place, the line stops at the segment on the side
// away from v, so the pieces on that side merge into one trapezoid, and only
// the side containing v keeps the line.
func (g *QueryGraph) threadSegment(segment *Segment) {
	top, bottom := segment.Top(), segment.Bottom()

	crossed := g.trapezoidsAlong(segment)

	lefts := make([]*Trapezoid, len(crossed))
	rights := make([]*Trapezoid, len(crossed))

	first := crossed[0]
	curLeft := g.newTrapezoid()
	curLeft.Left, curLeft.Right, curLeft.Top = first.Left, segment, top
	curRight := g.newTrapezoid()
	curRight.Left, curRight.Right, curRight.Top = segment, first.Right, top
	linkSplitEnd(first, curLeft, curRight, top, Up)

	for i, upper := range crossed {
		lefts[i], rights[i] = curLeft, curRight
		if i == len(crossed)-1 {
			break
		}
		lower := crossed[i+1]
		v := upper.Bottom
		if segment.IsLeftOf(v) {
			// The line survives on the right. Left pieces continue through it.
			next := g.newTrapezoid()
			next.Left, next.Right, next.Top = segment, lower.Right, v
			curRight.Bottom = v
			relinkSurvivingLine(upper, lower, curRight, next)
			curRight = next
		} else if segment.IsRightOf(v) {
			next := g.newTrapezoid()
			next.Left, next.Right, next.Top = lower.Left, segment, v
			curLeft.Bottom = v
			relinkSurvivingLine(upper, lower, curLeft, next)
			curLeft = next
		} else {
			fatalf("vertex %v lies on segment %v", v, segment)
		}
	}

	last := crossed[len(crossed)-1]
	curLeft.Bottom, curRight.Bottom = bottom, bottom
	linkSplitEnd(last, curLeft, curRight, bottom, Down)

	// Every crossed sink becomes an x node. Consecutive sinks on the merged
	// side point at the same child, which is what makes this a DAG.
	for i, t := range crossed {
		g.nodes[t.Sink].Inner = XNode{
			Key:   segment,
			Left:  lefts[i].Sink,
			Right: rights[i].Sink,
		}
	}
	g.logger.Debug("threaded segment", "segment", segment, "crossed", len(crossed))
}

// The trapezoids a segment passes through, from top to bottom.
func (g *QueryGraph) trapezoidsAlong(segment *Segment) []*Trapezoid {
	top, bottom := segment.Top(), segment.Bottom()
	loc := g.locate(DirectionalPoint{Point: top, Toward: bottom})
	if loc.Present {
		fatalf("segment %v overlaps an existing segment", segment)
	}
	cur := loc.Trapezoid
	if cur.Top != top {
		fatalf("segment %v starts inside %s instead of at its top", segment, cur)
	}

	var crossed []*Trapezoid
	for {
		crossed = append(crossed, cur)
		if cur.Bottom == bottom {
			return crossed
		}
		if cur.Bottom == nil || cur.Bottom.Below(bottom) {
			fatalf("segment %v passed its bottom endpoint in %s", segment, cur)
		}
		// Find the next trapezoid out of the up to two neighbors below this one.
		// When there are two, they are separated at the bottom vertex, so the
		// segment enters the left one iff the vertex is right of it.
		switch cur.TrapezoidsBelow.Count() {
		case 1:
			cur = cur.TrapezoidsBelow[0]
		case 2:
			if segment.IsLeftOf(cur.Bottom) {
				cur = cur.TrapezoidsBelow[0]
			} else {
				cur = cur.TrapezoidsBelow[1]
			}
		default:
			fatalf("segment %v ran out of trapezoids at %s", segment, cur)
		}
	}
}

// Link the pieces of a split trapezoid to the neighbors on the horizontal line
// through p (the top when dir is Up, the bottom when dir is Down). A piece
// touches a neighbor iff both continue past p on the piece's side of the split.
// Everything here is decided by endpoint identity, never by coordinates.
func linkSplitEnd(orig, left, right *Trapezoid, p *Point, dir YDirection) {
	leftOpen := orig.extendsPast(p, Left)
	rightOpen := orig.extendsPast(p, Right)
	for _, neighbor := range *orig.Neighbors(dir) {
		if neighbor == nil {
			continue
		}
		var linked []*Trapezoid
		if leftOpen && neighbor.extendsPast(p, Left) {
			left.Neighbors(dir).Add(neighbor)
			linked = append(linked, left)
		}
		if rightOpen && neighbor.extendsPast(p, Right) {
			right.Neighbors(dir).Add(neighbor)
			linked = append(linked, right)
		}
		if len(linked) == 0 {
			fatalf("neighbor %s lost contact with %s at %v", neighbor, orig, p)
		}
		neighbor.Neighbors(dir.Opposite()).Replace(orig, linked...)
	}
}

// Wire up the two pieces on the side of a segment where a horizontal line
// survives. above and below replace upper and lower on that side; every other
// neighbor across the line is on the same side, so lists carry over with the
// crossed trapezoids swapped for their pieces.
func relinkSurvivingLine(upper, lower, above, below *Trapezoid) {
	above.TrapezoidsBelow = upper.TrapezoidsBelow
	above.TrapezoidsBelow.Replace(lower, below)
	below.TrapezoidsAbove = lower.TrapezoidsAbove
	below.TrapezoidsAbove.Replace(upper, above)
	for _, neighbor := range above.TrapezoidsBelow {
		if neighbor != nil && neighbor != below {
			neighbor.TrapezoidsAbove.Replace(upper, above)
		}
	}
	for _, neighbor := range below.TrapezoidsAbove {
		if neighbor != nil && neighbor != above {
			neighbor.TrapezoidsBelow.Replace(lower, below)
		}
	}
}

// Find a trapezoid guaranteed to be inside the polygon: the one directly above
// the lowest vertex, between the two edges that meet there. The polygon must
// already be in the graph.
func (g *QueryGraph) LocateLowestTrapezoidOfPolygon(poly Polygon) *Trapezoid {
	i, lowest := poly.Lowest()
	prev := poly.Points[CircularIndex(i-1, len(poly.Points))]
	next := poly.Points[CircularIndex(i+1, len(poly.Points))]
	// Both neighbors are above the lowest vertex, so the bisecting direction
	// points into the polygon.
	probe := &Point{(prev.X + next.X) / 2, (prev.Y + next.Y) / 2}
	loc := g.locate(DirectionalPoint{Point: lowest, Toward: probe})
	if loc.Present {
		fatalf("probe from lowest vertex %v hit an existing segment", lowest)
	}
	return loc.Trapezoid
}

// Fast test for point-in-polygon using the trapezoid graph. This relies on the
// winding rule, so the polygon must have been added counterclockwise. Output is
// false for points exactly on the boundary.
func (g *QueryGraph) ContainsPoint(point *Point) bool {
	if !g.Bounds.InteriorContainsPoint(point.Vec()) {
		return false
	}
	loc := g.Locate(point)
	if loc.Present {
		return false
	}
	return loc.Trapezoid.IsInside()
}
