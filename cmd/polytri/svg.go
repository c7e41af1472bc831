package main

import (
	"io"
	"math"

	triangulate "github.com/ecordell/FrechetPolygons-sub009"
	svg "github.com/ajstarks/svgo"
)

const (
	svgPadding = 20

	backgroundStyle = "fill:rgb(255,255,255)"
	monotoneStyle   = "fill:rgb(200,220,255);stroke:none"
	triangleStyle   = "fill:none;stroke:rgb(120,120,120);stroke-width:1;stroke-dasharray:4,2"
	outlineStyle    = "fill:none;stroke:rgb(0,0,0);stroke-width:2"
	dualStyle       = "stroke:rgb(220,40,40);stroke-width:1"
	centroidStyle   = "fill:rgb(220,40,40)"
)

// Maps polygon space to screen space, with y going up.
type projection struct {
	scale      float64
	minX, maxY float64
}

func newProjection(points []*triangulate.Point, scale float64) (projection, int, int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	width := int(scale*(maxX-minX)) + 2*svgPadding
	height := int(scale*(maxY-minY)) + 2*svgPadding
	return projection{scale: scale, minX: minX, maxY: maxY}, width, height
}

func (pr projection) screen(p triangulate.Point) (int, int) {
	x := (p.X-pr.minX)*pr.scale + svgPadding
	y := (pr.maxY-p.Y)*pr.scale + svgPadding
	return int(math.Round(x)), int(math.Round(y))
}

func (pr projection) polygon(points []*triangulate.Point) ([]int, []int) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = pr.screen(*p)
	}
	return xs, ys
}

// Write the monotone pieces, the triangles, and the polygon outline. If dual is
// non-nil, its edges are drawn between triangle centroids.
func writeSVG(w io.Writer, result *triangulate.Result, dual *triangulate.DualGraph, scale float64) {
	pr, width, height := newProjection(result.Polygon().Points, scale)
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	for _, poly := range result.MonotonePolygons {
		xs, ys := pr.polygon(poly.Points)
		canvas.Polygon(xs, ys, monotoneStyle)
	}
	for _, t := range result.Triangles {
		xs, ys := pr.polygon(t.PointList())
		canvas.Polygon(xs, ys, triangleStyle)
	}
	xs, ys := pr.polygon(result.Polygon().Points)
	canvas.Polygon(xs, ys, outlineStyle)

	if dual != nil {
		edges := dual.Edges()
		for edges.Next() {
			e := edges.Edge().(*triangulate.DualEdge)
			x1, y1 := pr.screen(e.F.Centroid)
			x2, y2 := pr.screen(e.T.Centroid)
			canvas.Line(x1, y1, x2, y2, dualStyle)
		}
		nodes := dual.Nodes()
		for nodes.Next() {
			x, y := pr.screen(nodes.Node().(*triangulate.DualNode).Centroid)
			canvas.Circle(x, y, 2, centroidStyle)
		}
	}
	canvas.End()
}
