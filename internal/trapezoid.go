package internal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ecordell/FrechetPolygons-sub009/dbg"
	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
)

type XDirection int

const (
	Left XDirection = iota
	Right
)

type YDirection int

const (
	Down YDirection = iota
	Up
)

func (d YDirection) Opposite() YDirection {
	return 1 - d
}

func (d XDirection) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

type Trapezoid struct {
	// Unique within one query graph, in creation order.
	ID int
	// A nil side is the corresponding side of the bounding square.
	Left, Right *Segment
	// The top and bottom are points, although geometrically, you can think of
	// them as the y values of those points. There are two reasons that points
	// must be used instead of y values:
	//
	// 1. A critical assumption of the algorithm is that no two points lie on the
	// same horizontal. This is simulated by lexicographic ordering, but it means
	// that _every_ Y comparison must have an X value involved to break ties.
	//
	// 2. The time will come when we ask every trapezoid "what points on your
	// boundary are vertices of the polygon"? Because of the unique Y value
	// assumption, the answer is _always_ two points. Those two points are the top
	// and bottom fields. Note that in some cases, these will be an endpoint of a
	// segment, and in some cases, they'll lie on the top or bottom of the
	// trapezoid, away from the left and right sides.
	//
	// A nil top or bottom is the corresponding side of the bounding square.
	Top, Bottom                      *Point
	TrapezoidsAbove, TrapezoidsBelow TrapezoidNeighborList
	Sink                             NodeID
	// Set when the trapezoid is one half of a diagonal split.
	Connector *Connector
}

// Trapezoids have up to two neighbors above and below them. When there are
// two, index 0 is the left one. When there is one, it is always at index 0.
type TrapezoidNeighborList [2]*Trapezoid

// Is the trapezoid inside a counterclockwise polygon?
func (t *Trapezoid) IsInside() bool {
	// A trapezoid is inside the polygon iff it has both a right and left segment,
	// and the left segment points down. Note that this implies, for any valid
	// polygon, that the right side points up. Note also that a right-to-left
	// horizontal segment "points down" because of the lexicographic rotation.
	return t.Left != nil && t.Right != nil && t.Left.PointsDown()
}

// Bounded trapezoids do not touch the bounding square.
func (t *Trapezoid) IsBounded() bool {
	return t.Left != nil && t.Right != nil && t.Top != nil && t.Bottom != nil
}

func (t *Trapezoid) Neighbors(side YDirection) *TrapezoidNeighborList {
	if side == Up {
		return &t.TrapezoidsAbove
	}
	return &t.TrapezoidsBelow
}

func (t *Trapezoid) NeighborCount(side YDirection) int {
	return t.Neighbors(side).Count()
}

func (t *Trapezoid) LinkTop(neighbors ...*Trapezoid) {
	t.TrapezoidsAbove = newNeighborList(neighbors...)
}

func (t *Trapezoid) LinkBottom(neighbors ...*Trapezoid) {
	t.TrapezoidsBelow = newNeighborList(neighbors...)
}

func (t *Trapezoid) RemoveTopLinks() {
	t.TrapezoidsAbove = TrapezoidNeighborList{}
}

func (t *Trapezoid) RemoveBottomLinks() {
	t.TrapezoidsBelow = TrapezoidNeighborList{}
}

// Remove the trapezoid from the neighbor graph entirely, so that nothing points
// at it anymore.
func (t *Trapezoid) Unlink() {
	for _, neighbor := range t.TrapezoidsAbove {
		if neighbor != nil {
			neighbor.TrapezoidsBelow.Remove(t)
		}
	}
	for _, neighbor := range t.TrapezoidsBelow {
		if neighbor != nil {
			neighbor.TrapezoidsAbove.Remove(t)
		}
	}
	t.RemoveTopLinks()
	t.RemoveBottomLinks()
}

// Is p an endpoint of the trapezoid's left or right side?
func (t *Trapezoid) HasCorner(p *Point) bool {
	return t.hasCornerOnSide(Left, p) || t.hasCornerOnSide(Right, p)
}

func (t *Trapezoid) hasCornerOnSide(side XDirection, p *Point) bool {
	segment := t.Left
	if side == Right {
		segment = t.Right
	}
	return segment != nil && segment.HasEndpoint(p)
}

// Does the trapezoid's edge along the horizontal line through p continue past
// p in the given direction? p must lie on that edge's closure, which holds
// whenever p is the trapezoid's top or bottom, or the top or bottom of one of
// its neighbors on that line.
func (t *Trapezoid) extendsPast(p *Point, side XDirection) bool {
	return !t.hasCornerOnSide(side, p)
}

// Check if the trapezoid has a degenerate side (is it a triangle). If either
// side is nil, then it's never degenerate. Otherwise, this holds when both
// sides meet at the top (or bottom) point.
func (t *Trapezoid) IsDegenerateOnSide(side YDirection) bool {
	p := t.Top
	if side == Down {
		p = t.Bottom
	}
	return p != nil && t.hasCornerOnSide(Left, p) && t.hasCornerOnSide(Right, p)
}

func (t *Trapezoid) TopDegenerate() bool {
	return t.IsDegenerateOnSide(Up)
}

func (t *Trapezoid) BottomDegenerate() bool {
	return t.IsDegenerateOnSide(Down)
}

// A point strictly inside a bounded trapezoid of positive height. ok is false
// when the trapezoid has zero height (only possible with equal y values).
func (t *Trapezoid) SamplePoint() (p *Point, ok bool) {
	if !t.IsBounded() || t.Top.Y == t.Bottom.Y {
		return nil, false
	}
	y := (t.Top.Y + t.Bottom.Y) / 2
	x := (t.Left.XAt(y) + t.Right.XAt(y)) / 2
	return &Point{x, y}, true
}

// The trapezoid's corners as a counterclockwise polygon, clipped to the
// bounding rectangle. Degenerate corners are collapsed.
func (t *Trapezoid) Polygon(bounds r2.Rect) Polygon {
	topY, bottomY := bounds.Hi().Y, bounds.Lo().Y
	if t.Top != nil {
		topY = t.Top.Y
	}
	if t.Bottom != nil {
		bottomY = t.Bottom.Y
	}
	xAt := func(s *Segment, y float64, fallback float64, corner *Point) float64 {
		if s == nil {
			return fallback
		}
		if corner != nil && s.HasEndpoint(corner) {
			return corner.X
		}
		return s.XAt(y)
	}
	lo, hi := bounds.Lo().X, bounds.Hi().X
	corners := []*Point{
		{xAt(t.Left, topY, lo, t.Top), topY},
		{xAt(t.Left, bottomY, lo, t.Bottom), bottomY},
		{xAt(t.Right, bottomY, hi, t.Bottom), bottomY},
		{xAt(t.Right, topY, hi, t.Top), topY},
	}
	poly := Polygon{}
	for i, c := range corners {
		if i > 0 && c.SamePosition(poly.Points[len(poly.Points)-1]) {
			continue
		}
		poly.Points = append(poly.Points, c)
	}
	if len(poly.Points) > 1 && poly.Points[0].SamePosition(poly.Points[len(poly.Points)-1]) {
		poly.Points = poly.Points[:len(poly.Points)-1]
	}
	return poly
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid %s { ⬆ %s, ⬇ %s } <L: %s, R: %s, T: %s, B: %s>",
		t.DbgName(),
		t.TrapezoidsAbove.String(),
		t.TrapezoidsBelow.String(),
		dbg.Name(t.Left),
		dbg.Name(t.Right),
		dbg.Name(t.Top),
		dbg.Name(t.Bottom),
	)
}

func (t *Trapezoid) DbgName() string {
	name := dbg.Name(t)
	if !t.IsBounded() { // Infinite in some direction
		name = aurora.Cyan(name).String()
	} else if t.Top.Y == t.Bottom.Y { // Zero height
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

// Names are only generated when a log record is actually written.
func (t *Trapezoid) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("id", t.ID),
		slog.String("name", dbg.Name(t)),
		slog.Any("top", t.Top),
		slog.Any("bottom", t.Bottom),
	)
}

func newNeighborList(neighbors ...*Trapezoid) TrapezoidNeighborList {
	var list TrapezoidNeighborList
	for _, neighbor := range neighbors {
		if neighbor != nil {
			list.Add(neighbor)
		}
	}
	return list
}

func (tl *TrapezoidNeighborList) String() string {
	var parts []string
	for _, neighbor := range *tl {
		if neighbor != nil {
			parts = append(parts, dbg.Name(neighbor))
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (tl *TrapezoidNeighborList) Count() int {
	count := 0
	for _, neighbor := range *tl {
		if neighbor != nil {
			count++
		}
	}
	return count
}

func (tl *TrapezoidNeighborList) Contains(t *Trapezoid) bool {
	return t != nil && (tl[0] == t || tl[1] == t)
}

// The only neighbor, or nil. Lists with two neighbors are a programming error
// for callers of this.
func (tl *TrapezoidNeighborList) Only() *Trapezoid {
	if tl[1] != nil {
		fatalf("expected at most one neighbor, found %s", tl.String())
	}
	return tl[0]
}

// Append a trapezoid to the list, if it isn't already there
func (tl *TrapezoidNeighborList) Add(t *Trapezoid) {
	for i, neighbor := range *tl {
		if neighbor == t {
			return
		}
		if neighbor == nil {
			(*tl)[i] = t
			return
		}
	}
	fatalf("too many neighbors adding %s to %s", dbg.Name(t), tl.String())
}

// Remove a trapezoid, shifting the remaining neighbor to index 0.
func (tl *TrapezoidNeighborList) Remove(t *Trapezoid) {
	if tl[0] == t {
		tl[0], tl[1] = tl[1], nil
	} else if tl[1] == t {
		tl[1] = nil
	}
}

// Replace a trapezoid in place with zero or more replacements, keeping the
// left to right order. The original must be present.
func (tl *TrapezoidNeighborList) Replace(orig *Trapezoid, replacements ...*Trapezoid) {
	if !tl.Contains(orig) {
		fatalf("neighbor list %s does not contain %s", tl.String(), dbg.Name(orig))
	}
	var result []*Trapezoid
	for _, neighbor := range *tl {
		switch neighbor {
		case nil:
		case orig:
			result = append(result, replacements...)
		default:
			result = append(result, neighbor)
		}
	}
	if len(result) > len(tl) {
		fatalf("too many neighbors replacing %s in %s", dbg.Name(orig), tl.String())
	}
	*tl = TrapezoidNeighborList{}
	copy(tl[:], result)
}
