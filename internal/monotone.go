package internal

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Point.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments. On the left chain, a
// horizontal edge must sit _above_ the inside of the polygon, while on the
// right chain, it must sit _below_. Since this convention is consistent with
// the assumptions used in trapezoidation, this is not a problem.

// TriangulateMonotone triangulates a monotone piece with the classic stack
// sweep from the top down. Every triangle comes out counterclockwise. Reflex
// vertices wait on the stack until a later vertex can see them, so no separate
// fallback for non-convex chains is needed.
func TriangulateMonotone(sp *SubPolygon) TriangleList {
	n := len(sp.Chain)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}
	if n == 3 {
		poly := sp.Polygon()
		return TriangleList{{A: poly.Points[0], B: poly.Points[1], C: poly.Points[2]}}
	}

	triangles := make(TriangleList, 0, n-2)

	// Points sorted from the top down. The bottom point is handled separately at
	// the very end.
	sortedPoints := make([]*Point, 0, n-1)
	for i := n - 1; i >= 1; i-- {
		sortedPoints = append(sortedPoints, sp.Chain[i].Point)
	}
	bottomPoint := sp.Bottom()

	// The top point counts as being on the right chain. It is never compared
	// while on top of the stack, so this doesn't matter.
	leftChain := PointSet{}
	for _, cp := range sp.Chain[1 : n-1] {
		if cp.Side == Left {
			leftChain.Add(cp.Point)
		}
	}
	isLeft := leftChain.Contains

	// Create the stack and populate it with the first two points
	stack := make(PointStack, 0, n)
	stack.Push(sortedPoints[0])
	stack.Push(sortedPoints[1])
	// Iterate over the remainder of the sorted points
	for i := 2; i < len(sortedPoints); i++ {
		p := sortedPoints[i]
		left := isLeft(p)
		if left != isLeft(stack.Peek()) { // If switched to opposite side chain
			// If we've jumped to the other chain, monotonicity guarantees that all
			// stack points are visible from the current point. We can therefore
			// empty the entire stack, making new triangles
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(triangles, &Triangle{A: p, B: a, C: b})
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(triangles, &Triangle{A: a, B: p, C: b})
					}
				}
			}
			// Put the last two points on the stack
			stack.Push(sortedPoints[i-1])
			stack.Push(p)
		} else { // Same side chain
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()

			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The easiest way to see if the point "sees" the top of the stack is to
				// try creating the triangle, and see if it's CCW. A reflex vertex
				// makes it clockwise, and it stays on the stack until a later point
				// can see past it.
				var potentialTriangle *Triangle
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					potentialTriangle = &Triangle{A: p, B: topOfStack, C: v}
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					potentialTriangle = &Triangle{A: p, B: v, C: topOfStack}
				}
				if !IsCCW(potentialTriangle) {
					// Stop looping if we can't see the next point
					break
				}
				v = stack.Pop()
				triangles = append(triangles, potentialTriangle)
			}

			// Put the last v back on the stack, and then the current point
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack. Note that we
	// always have two points.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		// If we were just creating diagonals, we would stop at the last point.
		// However, we need to generate the final triangle. Where only two points
		// remain on the stack, stopping early would completely remove the bottom
		// point from the triangle list.
		if isLeft(l) {
			/*
				   p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, &Triangle{A: bottomPoint, B: p, C: l})
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, &Triangle{A: bottomPoint, B: l, C: p})
		}
		l = p
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles TriangleList, tri *Triangle) TriangleList {
	if IsCW(tri) {
		fatalf("triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
