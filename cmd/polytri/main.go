// Command polytri triangulates a polygon and renders the result.
//
// Input is newline separated points in the form "x y", or a YAML document with
// a "points" list, read from a file or stdin. The polygon must be simple, and
// may wind either way.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	triangulate "github.com/ecordell/FrechetPolygons-sub009"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("polytri", "Triangulate a simple polygon.")

	input       = app.Arg("input", "Polygon file. Reads stdin when omitted.").ExistingFile()
	output      = app.Flag("output", "Where to write the rendering.").Short('o').Default("triangulation.svg").String()
	format      = app.Flag("format", "Rendering format. Guessed from the output extension by default.").Enum("svg", "png")
	asYAML      = app.Flag("yaml", "Read YAML input. Implied by a .yaml or .yml input file.").Bool()
	seed        = app.Flag("seed", "Seed for the segment insertion order.").Short('s').Default("0").Int64()
	bound       = app.Flag("bound", "Half width of the bounding square around the origin.").Default("500").Float64()
	scale       = app.Flag("scale", "Pixels per unit.").Default("10").Float64()
	allowEqualY = app.Flag("allow-equal-y", "Accept vertices that share a y coordinate.").Bool()
	dual        = app.Flag("dual", "Draw the dual graph of the triangles.").Bool()
	show        = app.Flag("imgcat", "Print a PNG rendering to the terminal.").Bool()
	debug       = app.Flag("debug", "Log each step to stderr.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "polytri: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	points, err := readInput()
	if err != nil {
		return err
	}

	opts := []triangulate.Option{
		triangulate.WithSeed(*seed),
		triangulate.WithBound(*bound),
	}
	if *allowEqualY {
		opts = append(opts, triangulate.AllowEqualY())
	}
	if *debug {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, triangulate.WithLogger(slog.New(handler)))
	}

	result, err := triangulate.Triangulate(points, opts...)
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}

	var dualGraph *triangulate.DualGraph
	if *dual {
		dualGraph = triangulate.BuildDualGraph(result.Triangles)
	}
	fmt.Fprintf(os.Stderr, "%d points, %d trapezoids, %d monotone pieces, %d triangles\n",
		len(points), len(result.InnerTrapezoids()), len(result.MonotonePolygons), len(result.Triangles))

	if err := writeOutput(result, dualGraph); err != nil {
		return err
	}
	if *show {
		return errors.Wrap(catImage(os.Stdout, result, *scale), "printing to terminal")
	}
	return nil
}

func readInput() ([]*triangulate.Point, error) {
	var in io.Reader = os.Stdin
	yamlInput := *asYAML
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
		ext := strings.ToLower(filepath.Ext(*input))
		yamlInput = yamlInput || ext == ".yaml" || ext == ".yml"
	}
	return readPolygon(in, yamlInput)
}

func writeOutput(result *triangulate.Result, dualGraph *triangulate.DualGraph) error {
	f := *format
	if f == "" {
		f = "svg"
		if strings.EqualFold(filepath.Ext(*output), ".png") {
			f = "png"
		}
	}

	if f == "png" {
		return errors.Wrap(gg.SavePNG(*output, result.Draw(*scale)), "writing png")
	}

	file, err := os.Create(*output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	writeSVG(file, result, dualGraph, *scale)
	return errors.Wrap(file.Close(), "writing svg")
}

// Print a PNG rendering inline, for terminals that speak the iTerm image
// protocol.
func catImage(w io.Writer, result *triangulate.Result, scale float64) error {
	return imgcat.CatImage(result.Draw(scale), w)
}
