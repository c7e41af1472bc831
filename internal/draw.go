package internal

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the shape, in pixels
const drawPadding = 20

// Create a context sized to fit the polygon at the given scale, flipped so that
// the origin is at the bottom left and y goes up.
func newCanvas(poly Polygon, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}

func tracePolygon(c *gg.Context, poly Polygon) {
	c.NewSubPath()
	for i, p := range poly.Points {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
}

// Draw renders the stages of the triangulation: the inner trapezoids, then the
// triangles, then the polygon outline on top. gg strokes in device space, so
// line widths and dashes are in pixels regardless of scale.
func (tri *Triangulation) Draw(scale float64) image.Image {
	c := newCanvas(tri.Polygon, scale)
	lineWidth := 1.0

	// Trapezoids are filled and then stroked
	for _, shape := range tri.InnerTrapezoids {
		tracePolygon(c, shape)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
	}
	c.SetLineWidth(lineWidth)
	for _, shape := range tri.InnerTrapezoids {
		tracePolygon(c, shape)
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	drawTriangles(c, tri.Triangles, lineWidth)

	c.SetLineWidth(3)
	tracePolygon(c, tri.Polygon)
	c.SetRGB(1, 1, 1)
	c.Stroke()
	return c.Image()
}

func drawTriangles(c *gg.Context, triangles TriangleList, lineWidth float64) {
	c.SetLineWidth(lineWidth)
	c.SetDash(4*lineWidth, 2*lineWidth)
	for _, t := range triangles {
		tracePolygon(c, Polygon{t.PointList()})
		c.SetRGB(1, 1, 0)
		c.Stroke()
	}
	c.SetDash()
}
