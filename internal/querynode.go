package internal

// Node for the query structure. The query structure allows us to navigate the
// trapezoid set efficiently, and can be built in expected O(nlog(n)) time.
//
// Nodes live in an arena owned by the QueryGraph and refer to each other by
// NodeID. Splitting a trapezoid replaces its sink's variant in place, so every
// parent pointing at that sink sees the new decision without being touched.

type NodeID int32

const NoNode NodeID = -1

// Query nodes are polymorphic, and we need to be able to replace the content
// with a different node type in O(1) time. Therefore, we use this interface to
// provide a union between the different types of query node.
type QueryNodeInner interface {
	// Pick the child to descend into for the point. Sinks never branch.
	Branch(DirectionalPoint) (next NodeID, present bool)

	// Child nodes is useful for iterating over a graph
	ChildNodes() []NodeID

	// This is a dummy method that restricts the union to the types below.
	queryNodeInnerTypeHint()
}

// QueryNodeInner types enumerated here with type hint
func (SinkNode) queryNodeInnerTypeHint() {}
func (YNode) queryNodeInnerTypeHint()    {}
func (XNode) queryNodeInnerTypeHint()    {}

type QueryNode struct {
	Inner QueryNodeInner
}

// A point being searched for. When Toward is set, the search is for a point
// infinitesimally close to Point in the direction of Toward. This
// disambiguates searches that start at an existing vertex, such as finding
// the first trapezoid a new segment passes through.
type DirectionalPoint struct {
	Point  *Point
	Toward *Point
}

type SinkNode struct {
	Trapezoid *Trapezoid
}

func (node SinkNode) Branch(_ DirectionalPoint) (NodeID, bool) {
	// If we're at a sink, we can't traverse any further.
	fatalf("should not branch from a sink")
	return NoNode, false
}

func (node SinkNode) ChildNodes() []NodeID {
	return nil
}

// A Y Node is a node which lets us navigate up or down
type YNode struct {
	Above, Below NodeID
	Key          *Point // Point so that we can do the lexicographic thing
}

func (node YNode) Branch(dp DirectionalPoint) (NodeID, bool) {
	if node.Key == dp.Point || node.Key.SamePosition(dp.Point) {
		if dp.Toward == nil {
			return NoNode, true
		}
		// For equal points, we must use the direction given
		if dp.Toward.Below(node.Key) {
			return node.Below, false
		}
		return node.Above, false
	}
	if dp.Point.Below(node.Key) {
		return node.Below, false
	}
	return node.Above, false
}

func (node YNode) ChildNodes() []NodeID {
	return []NodeID{node.Above, node.Below}
}

// An X node
type XNode struct {
	Left, Right NodeID
	Key         *Segment
}

func (node XNode) Branch(dp DirectionalPoint) (NodeID, bool) {
	side := node.Key.side(dp.Point)

	// First check if it's an endpoint. If so, we use the direction to decide
	// what happens. There's a subtle point here: We are not asking if the
	// direction slopes left or right, but if it slopes _more_ left or right than
	// the node's key. Since the point lies on the key's line, the side of the
	// nudged point is the side of the direction vector.
	if node.Key.HasEndpoint(dp.Point) || side == 0 {
		if dp.Toward == nil {
			return NoNode, true
		}
		side = node.Key.Top().Vec().Sub(node.Key.Bottom().Vec()).Cross(dp.Toward.Vec().Sub(dp.Point.Vec()))
		if side == 0 {
			// Note that there is no middle here; that would imply overlapping line segments.
			fatalf("segment %v overlaps the direction %v→%v", node.Key, dp.Point, dp.Toward)
		}
	}

	if side < 0 {
		return node.Right, false
	}
	return node.Left, false
}

func (node XNode) ChildNodes() []NodeID {
	return []NodeID{node.Left, node.Right}
}
