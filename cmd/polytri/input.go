package main

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	triangulate "github.com/ecordell/FrechetPolygons-sub009"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML input looks like:
//
//	points:
//	  - [0, 0]
//	  - [2, 1]
//	  - [4, 0.5]
type document struct {
	Points [][]float64 `yaml:"points"`
}

// Read a polygon either as YAML or as newline separated "x y" points. Blank
// lines and lines starting with # are skipped in the text format.
func readPolygon(in io.Reader, asYAML bool) ([]*triangulate.Point, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if asYAML {
		return parseYAML(data)
	}
	return parseText(data)
}

func parseYAML(data []byte) ([]*triangulate.Point, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	points := make([]*triangulate.Point, 0, len(doc.Points))
	for i, pair := range doc.Points {
		if len(pair) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates", i, len(pair))
		}
		points = append(points, &triangulate.Point{X: pair[0], Y: pair[1]})
	}
	return points, nil
}

func parseText(data []byte) ([]*triangulate.Point, error) {
	points := []*triangulate.Point{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "scanning input")
}

func parsePoint(line string) (*triangulate.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrap(err, "parsing y")
	}
	return &triangulate.Point{X: x, Y: y}, nil
}
