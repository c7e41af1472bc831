package internal

// Even-odd rule point-in-polygon. This is used when classifying components of
// the trapezoid neighbor graph, and for testing. If you are checking many
// points inside the same large polygon, it can be more efficient to
// trapezoidize it and use the resulting QueryGraph.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if segment.IsRightOf(p) && vertex.Below(p) != nextVertex.Below(p) {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Boundary segments in winding order. Consecutive segments share point
// pointers, which is what lets the query graph recognize shared vertices.
func (poly Polygon) Segments() []*Segment {
	segments := make([]*Segment, 0, len(poly.Points))
	for i := 0; i < len(poly.Points); i++ {
		segments = append(segments, &Segment{poly.Points[i], poly.Points[(i+1)%len(poly.Points)]})
	}
	return segments
}

// Lowest vertex by the lexicographic order, along with its index.
func (poly Polygon) Lowest() (int, *Point) {
	lowest := 0
	for i, p := range poly.Points {
		if p.Below(poly.Points[lowest]) {
			lowest = i
		}
	}
	return lowest, poly.Points[lowest]
}

func (list PolygonList) ContainsPointByEvenOdd(p *Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}

// The set of boundary edges, for telling diagonals apart from polygon sides.
func (poly Polygon) EdgeSet() NormalizedSegmentSet {
	set := make(NormalizedSegmentSet, len(poly.Points))
	for i, p := range poly.Points {
		set.Add(p, poly.Points[CircularIndex(i+1, len(poly.Points))])
	}
	return set
}

// A "normalized" line segment, where the "lower" point (accounting for
// lexicographic adjustment) is always first. Two triangles sharing an edge
// produce the same key regardless of their winding.
type NormalizedSegment struct {
	Lower, Upper *Point
}

func NewNormalizedSegment(a, b *Point) NormalizedSegment {
	if a.Below(b) {
		return NormalizedSegment{a, b}
	}
	return NormalizedSegment{b, a}
}

func (s NormalizedSegment) Segment() *Segment {
	return &Segment{s.Lower, s.Upper}
}

type NormalizedSegmentSet map[NormalizedSegment]struct{}

func (set NormalizedSegmentSet) Add(a, b *Point) {
	set[NewNormalizedSegment(a, b)] = struct{}{}
}

func (set NormalizedSegmentSet) Contains(a, b *Point) bool {
	_, ok := set[NewNormalizedSegment(a, b)]
	return ok
}
