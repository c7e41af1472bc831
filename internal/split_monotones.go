package internal

import "fmt"

// A monotone piece of the polygon. Chain holds its vertices sorted from the
// bottom up, each tagged with the side of the piece it sits on. The top and
// bottom vertices belong to both sides and are tagged Left.
type SubPolygon struct {
	Chain []ChainPoint
	// The diagonals on the boundary of this piece.
	Seams []*Connector
}

type ChainPoint struct {
	Point *Point
	Side  XDirection
}

func (sp *SubPolygon) Top() *Point {
	return sp.Chain[len(sp.Chain)-1].Point
}

func (sp *SubPolygon) Bottom() *Point {
	return sp.Chain[0].Point
}

// The piece as a counterclockwise polygon, starting at the top and going down
// the left side.
func (sp *SubPolygon) Polygon() Polygon {
	points := make([]*Point, 0, len(sp.Chain))
	for i := len(sp.Chain) - 1; i >= 0; i-- {
		if sp.Chain[i].Side == Left {
			points = append(points, sp.Chain[i].Point)
		}
	}
	for _, cp := range sp.Chain {
		if cp.Side == Right {
			points = append(points, cp.Point)
		}
	}
	return Polygon{points}
}

// Check that the chain strictly increases in the lexicographic order.
func (sp *SubPolygon) IsStrictlyMonotone() bool {
	for i := 1; i < len(sp.Chain); i++ {
		if !sp.Chain[i-1].Point.Below(sp.Chain[i].Point) {
			return false
		}
	}
	return true
}

func (sp *SubPolygon) String() string {
	return fmt.Sprintf("monotone%v", sp.Polygon().Points)
}

// ConvertToMonotones walks the chains of a set of trapezoids that have been
// split on diagonals, producing one monotone piece per chain. Each chain is a
// vertical stack of trapezoids. Its top trapezoid is degenerate at the top,
// and the bottom vertex of each trapezoid along the way lies on either its left
// or right segment, which tells us which side of the piece it is on. The
// bottom vertex of the last trapezoid is on both.
func ConvertToMonotones(trapezoids []*Trapezoid) []*SubPolygon {
	remaining := make(map[*Trapezoid]bool, len(trapezoids))
	for _, t := range trapezoids {
		remaining[t] = true
	}

	var result []*SubPolygon
	for _, start := range trapezoids {
		if !remaining[start] {
			continue
		}
		// Walk up to the top of the chain.
		t := start
		for {
			above := t.TrapezoidsAbove.Only()
			if above == nil {
				break
			}
			if !remaining[above] {
				fatalf("chain above %s leaves the trapezoid set at %s", t, above)
			}
			t = above
		}
		if !t.TopDegenerate() {
			fatalf("top of chain %s is not degenerate", t)
		}
		result = append(result, walkChainDown(t, remaining))
	}
	return result
}

func walkChainDown(t *Trapezoid, remaining map[*Trapezoid]bool) *SubPolygon {
	descending := []ChainPoint{{t.Top, Left}}
	var seams []*Connector
	seen := make(map[*Connector]bool)
	for {
		delete(remaining, t)
		if t.Connector != nil && !seen[t.Connector] {
			seen[t.Connector] = true
			seams = append(seams, t.Connector)
		}

		bottom := t.Bottom
		onLeft := t.Left.HasEndpoint(bottom)
		onRight := t.Right.HasEndpoint(bottom)
		if onLeft && onRight {
			descending = append(descending, ChainPoint{bottom, Left})
			break
		}
		switch {
		case onLeft:
			descending = append(descending, ChainPoint{bottom, Left})
		case onRight:
			descending = append(descending, ChainPoint{bottom, Right})
		default:
			fatalf("bottom of %s is on neither side", t)
		}

		below := t.TrapezoidsBelow.Only()
		if below == nil || !remaining[below] {
			fatalf("chain ended early at %s", t)
		}
		t = below
	}

	chain := make([]ChainPoint, len(descending))
	for i, cp := range descending {
		chain[len(descending)-1-i] = cp
	}
	return &SubPolygon{Chain: chain, Seams: seams}
}

// NewSubPolygon builds the chain for a counterclockwise polygon that is already
// monotone, by merging its two sides from the top down.
func NewSubPolygon(poly Polygon) *SubPolygon {
	n := len(poly.Points)
	if n < 3 {
		fatalf("cannot build monotone from %d points", n)
	}
	var topIndex int
	for i, point := range poly.Points {
		if point.Above(poly.Points[topIndex]) {
			topIndex = i
		}
	}

	descending := []ChainPoint{{poly.Points[topIndex], Left}}
	// Going counterclockwise from the top walks down the left side.
	leftOffset, rightOffset := 1, 1
	for {
		leftPoint := poly.Points[CircularIndex(topIndex+leftOffset, n)]
		rightPoint := poly.Points[CircularIndex(topIndex-rightOffset, n)]
		if leftPoint == rightPoint {
			descending = append(descending, ChainPoint{leftPoint, Left})
			break
		}
		if leftPoint.Above(rightPoint) {
			descending = append(descending, ChainPoint{leftPoint, Left})
			leftOffset++
		} else {
			descending = append(descending, ChainPoint{rightPoint, Right})
			rightOffset++
		}
	}

	chain := make([]ChainPoint, len(descending))
	for i, cp := range descending {
		chain[len(descending)-1-i] = cp
	}
	return &SubPolygon{Chain: chain}
}
