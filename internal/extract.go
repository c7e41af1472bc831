package internal

import "sort"

// ExtractInnerTrapezoids discards every trapezoid outside the polygon and
// returns the rest, ordered by ID. Discarded trapezoids are unlinked from the
// neighbor graph, so the returned trapezoids only refer to each other. The
// polygon must be the one that was added to the graph.
//
// Neighbors always share a horizontal edge, so they lie in the same face of the
// map. Each connected component of the neighbor graph is therefore entirely
// inside or entirely outside, and testing one point per component is enough.
func (g *QueryGraph) ExtractInnerTrapezoids(poly Polygon) []*Trapezoid {
	var bounded []*Trapezoid
	for _, t := range g.Trapezoids() {
		// Anything touching the bounding square is in the unbounded face.
		if !t.IsBounded() {
			t.Unlink()
			continue
		}
		bounded = append(bounded, t)
	}

	visited := make(map[*Trapezoid]bool, len(bounded))
	var inner []*Trapezoid
	components := 0
	for _, t := range bounded {
		if visited[t] {
			continue
		}
		component := collectComponent(t, visited)
		components++
		if g.componentInside(component, poly) {
			inner = append(inner, component...)
			continue
		}
		for _, outside := range component {
			outside.Unlink()
		}
	}

	// Anything left without neighbors contributes nothing.
	result := make([]*Trapezoid, 0, len(inner))
	for _, t := range inner {
		if t.NeighborCount(Up) == 0 && t.NeighborCount(Down) == 0 {
			g.logger.Warn("pruning isolated inner trapezoid", "trapezoid", t)
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	g.logger.Debug("extracted inner trapezoids", "bounded", len(bounded), "components", components, "inner", len(result))
	return result
}

func collectComponent(start *Trapezoid, visited map[*Trapezoid]bool) []*Trapezoid {
	var component []*Trapezoid
	stack := []*Trapezoid{start}
	visited[start] = true
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component = append(component, t)
		for _, list := range []TrapezoidNeighborList{t.TrapezoidsAbove, t.TrapezoidsBelow} {
			for _, neighbor := range list {
				if neighbor != nil && !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}
	}
	return component
}

// Test one positive height member of the component against the polygon. Zero
// height trapezoids only exist when y values repeat; if that is all there is,
// fall back on the winding rule.
func (g *QueryGraph) componentInside(component []*Trapezoid, poly Polygon) bool {
	for _, t := range component {
		if p, ok := t.SamplePoint(); ok {
			return poly.ContainsPointByEvenOdd(p)
		}
	}
	g.logger.Warn("component has no positive height trapezoid; using winding rule", "size", len(component))
	return component[0].IsInside()
}

// MergeIrrelevantTrapezoids folds together vertically stacked trapezoids whose
// shared horizontal edge is not anchored at a corner of either of them. Such an
// edge carries no polygon vertex, so the two are really one trapezoid. This is
// repeated until nothing more can be merged, and returns the surviving set
// ordered by ID.
//
// Maps built by QueryGraph only produce lines anchored at vertices, so on those
// this reaches its fixed point immediately.
func (g *QueryGraph) MergeIrrelevantTrapezoids(trapezoids []*Trapezoid) []*Trapezoid {
	live := make(map[*Trapezoid]bool, len(trapezoids))
	for _, t := range trapezoids {
		live[t] = true
	}

	for merged := true; merged; {
		merged = false
		for _, t := range sortedTrapezoids(live) {
			if !live[t] || t.TrapezoidsBelow.Count() != 1 {
				continue
			}
			below := t.TrapezoidsBelow[0]
			if !live[below] || below.TrapezoidsAbove.Count() != 1 {
				continue
			}
			if t.Left != below.Left || t.Right != below.Right || t.HasCorner(t.Bottom) {
				continue
			}
			m := g.mergeVertically(t, below)
			delete(live, t)
			delete(live, below)
			live[m] = true
			merged = true
			g.logger.Debug("merged irrelevant trapezoids", "upper", t, "lower", below, "merged", m)
		}
	}
	return sortedTrapezoids(live)
}

func (g *QueryGraph) mergeVertically(upper, lower *Trapezoid) *Trapezoid {
	m := g.detachedTrapezoid()
	m.Left, m.Right = upper.Left, upper.Right
	m.Top, m.Bottom = upper.Top, lower.Bottom
	m.TrapezoidsAbove = upper.TrapezoidsAbove
	m.TrapezoidsBelow = lower.TrapezoidsBelow
	for _, neighbor := range m.TrapezoidsAbove {
		if neighbor != nil {
			neighbor.TrapezoidsBelow.Replace(upper, m)
		}
	}
	for _, neighbor := range m.TrapezoidsBelow {
		if neighbor != nil {
			neighbor.TrapezoidsAbove.Replace(lower, m)
		}
	}
	return m
}

func sortedTrapezoids(set map[*Trapezoid]bool) []*Trapezoid {
	result := make([]*Trapezoid, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
