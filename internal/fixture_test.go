package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Polygon. If anything goes
// wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"asteroid",
	"comb",
	"monotone_c",
	"monotone_diamond",
	"spiral",
	"star",
}

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{x, y})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is CCW
	if IsCW(&result) {
		result = result.Reverse()
	}
	return result
}

// Mirror a polygon across the y axis, keeping it counterclockwise.
func reflectX(poly Polygon) Polygon {
	points := make([]*Point, len(poly.Points))
	for i, p := range poly.Points {
		points[len(points)-1-i] = &Point{-p.X, p.Y}
	}
	return Polygon{points}
}

// Mirror a polygon across the x axis, keeping it counterclockwise.
func reflectY(poly Polygon) Polygon {
	points := make([]*Point, len(poly.Points))
	for i, p := range poly.Points {
		points[len(points)-1-i] = &Point{p.X, -p.Y}
	}
	return Polygon{points}
}

func rotatePoint(p *Point, angle float64) {
	sin, cos := math.Sincos(angle)
	p.X, p.Y = p.X*cos-p.Y*sin, p.X*sin+p.Y*cos
}

// Some ad hoc fixtures

// A five pointed star. The rotation keeps the y values distinct.
func SimpleStar() Polygon {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(innerRadius)
		if i%2 == 0 {
			radius = outerRadius
		}
		angle := 2*math.Pi*float64(i)/10 + 0.1
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// A regular polygon with n sides, slightly rotated.
func RegularPolygon(n int, radius float64) Polygon {
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.05
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// An arrow pointing up, with a reflex vertex at the notch in its tail.
func Arrow() Polygon {
	return Polygon{[]*Point{
		{0, 0},
		{2, 1},
		{4, 0.5},
		{2.1, 5},
	}}
}

// A zigzag that is monotone in neither direction: each tooth points up, and
// each notch between teeth is a reflex vertex.
func Sawtooth(teeth int) Polygon {
	points := []*Point{{0, 0.01}, {float64(teeth) * 2, 0.02}}
	for i := teeth; i > 0; i-- {
		x := float64(i) * 2
		points = append(points,
			&Point{x - 0.1, 3 + float64(i)*0.013},
			&Point{x - 1, 1 + float64(i)*0.017},
		)
	}
	points = append(points, &Point{0.05, 3.5})
	return Polygon{points}
}
