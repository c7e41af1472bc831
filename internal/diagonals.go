package internal

// SplitTrapezoidsOnDiagonals splits each inner trapezoid whose top and bottom
// vertices are not on the same side of it, joining those two vertices with a
// diagonal. The halves are linked to the neighbors of the original and to each
// other through a Connector. Afterwards, each trapezoid has at most one
// neighbor above and below, so the set falls apart into chains, each of which
// covers a monotone polygon.
//
// Returns the new set of trapezoids and the connectors for the diagonals that
// were added. The query structure no longer describes these trapezoids.
func (g *QueryGraph) SplitTrapezoidsOnDiagonals(trapezoids []*Trapezoid) ([]*Trapezoid, []*Connector) {
	result := make([]*Trapezoid, 0, len(trapezoids))
	var connectors []*Connector
	// Iterate over the snapshot; the halves replace the original in its
	// neighbors' lists, which never affects whether another trapezoid needs a
	// split.
	for _, t := range trapezoids {
		top, bottom := t.Top, t.Bottom
		if top == nil || bottom == nil {
			fatalf("cannot split unbounded trapezoid %s", t)
		}
		// If the top and bottom are on the same side, there's nothing to split.
		// This includes triangles, where one segment holds both vertices.
		if t.Left.HasEndpoint(top) && t.Left.HasEndpoint(bottom) ||
			t.Right.HasEndpoint(top) && t.Right.HasEndpoint(bottom) {
			result = append(result, t)
			continue
		}

		diagonal := &Segment{top, bottom}
		left := g.detachedTrapezoid()
		left.Left, left.Right = t.Left, diagonal
		left.Top, left.Bottom = top, bottom
		right := g.detachedTrapezoid()
		right.Left, right.Right = diagonal, t.Right
		right.Top, right.Bottom = top, bottom

		linkSplitEnd(t, left, right, top, Up)
		linkSplitEnd(t, left, right, bottom, Down)

		connector := &Connector{Start: top, End: bottom, Trapezoids: [2]*Trapezoid{left, right}}
		left.Connector, right.Connector = connector, connector
		connectors = append(connectors, connector)
		result = append(result, left, right)
		g.logger.Debug("split on diagonal", "trapezoid", t, "diagonal", diagonal, "left", left, "right", right)
	}
	return result, connectors
}
