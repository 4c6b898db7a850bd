package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/partition"
	"github.com/osuushi/partition/advanced"
	"github.com/osuushi/partition/dbg"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Demo of convex partitioning. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra newline.
// Alternatively, pass an SVG file and every <polygon> element is read.
//
// Polygons should be simple and wind counterclockwise. A clockwise polygon is a
// hole, and must sit inside one of the counterclockwise polygons.
var (
	app          = kingpin.New("convexpart", "Split polygons into convex parts.")
	algorithm    = app.Flag("algorithm", "Partition algorithm: hm (Hertel-Mehlhorn) or opt (optimal, no holes).").Short('a').Default("hm").Enum("hm", "opt")
	triangulator = app.Flag("triangulator", "Triangulation used by hm.").Default("earclip").Enum("earclip", "earcut")
	format       = app.Flag("format", "Output format.").Short('f').Default("text").Enum("text", "yaml")
	pngPath      = app.Flag("png", "Render the partition to this PNG file.").String()
	scale        = app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	showImage    = app.Flag("imgcat", "Print the rendered PNG in the terminal (iTerm only).").Bool()
	verbose      = app.Flag("verbose", "Print each part with its vertices.").Short('v').Bool()
	svgPath      = app.Arg("svg", "SVG file to read polygons from, instead of stdin.").ExistingFile()
)

type partReport struct {
	Name    string  `yaml:"name"`
	Indices []int   `yaml:"indices"`
	Area    float64 `yaml:"area"`
}

type report struct {
	Algorithm string       `yaml:"algorithm"`
	Points    int          `yaml:"points"`
	Parts     []partReport `yaml:"parts"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("convexpart: ")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var (
		points []advanced.Point
		polys  []advanced.Polygon
		err    error
	)
	if *svgPath != "" {
		points, polys, err = readSVG(*svgPath)
	} else {
		points, polys, err = readPolygons(os.Stdin)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	// Winding decides what is a hole
	var outers, holes []advanced.Polygon
	for _, poly := range polys {
		if poly.IsCW(points) {
			holes = append(holes, poly)
		} else {
			outers = append(outers, poly)
		}
	}

	parts, err := run(points, outers, holes)
	if err != nil {
		log.Fatalf("partition failed: %v", err)
	}

	if err := writeReport(os.Stdout, points, parts); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	if *pngPath != "" {
		if err := advanced.DrawPartition(points, parts, holes, *scale, *pngPath); err != nil {
			log.Fatalf("rendering %s: %v", *pngPath, err)
		}
		if *showImage {
			if err := advanced.CatPNG(*pngPath, os.Stdout); err != nil {
				log.Fatalf("printing %s: %v", *pngPath, err)
			}
		}
	}
}

func run(points []advanced.Point, outers, holes []advanced.Polygon) (advanced.PolygonList, error) {
	if *algorithm == "opt" {
		if len(holes) > 0 {
			return nil, fmt.Errorf("the optimal algorithm does not support holes (got %d)", len(holes))
		}
		var result advanced.PolygonList
		for _, outer := range outers {
			parts, err := partition.ApplyOPT(outer.Points(points))
			if err != nil {
				return nil, err
			}
			// Parts index into the outer polygon, so map them back to the shared points
			for _, part := range parts {
				mapped := make(advanced.Polygon, len(part))
				for i, position := range part {
					mapped[i] = outer[position]
				}
				result = append(result, mapped)
			}
		}
		return result, nil
	}

	options := advanced.HMOptions{}
	if *triangulator == "earcut" {
		options.Triangulator = advanced.TriangulateEarcut
	}
	parts, err := partition.Apply(points, outers, holes, options)
	return parts, err
}

func writeReport(w io.Writer, points []advanced.Point, parts advanced.PolygonList) error {
	r := report{Algorithm: *algorithm, Points: len(points)}
	for i := range parts {
		r.Parts = append(r.Parts, partReport{
			Name:    dbg.Name(&parts[i]),
			Indices: parts[i],
			Area:    parts[i].Area(points),
		})
	}

	if *format == "yaml" {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s parts from %d points\n", aurora.Bold(len(parts)), len(points))
	if *verbose {
		for i, part := range r.Parts {
			fmt.Fprintf(w, "%s %s area %.4g\n", aurora.Cyan(part.Name), parts[i].DbgString(points), part.Area)
		}
	}
	return nil
}

// Read polygons as blocks of "x y" lines. All polygons share one point slice.
func readPolygons(in io.Reader) ([]advanced.Point, []advanced.Polygon, error) {
	var (
		points   []advanced.Point
		polygons []advanced.Polygon
		current  advanced.Polygon
	)
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(current) > 0 {
				polygons = append(polygons, current)
				current = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, nil, err
		}
		current = append(current, len(points))
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	// Handle trailing polygon if any
	if len(current) > 0 {
		polygons = append(polygons, current)
	}
	return points, polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return advanced.Point{}, fmt.Errorf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return advanced.Point{}, fmt.Errorf("invalid x value %q: %v", fields[0], err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return advanced.Point{}, fmt.Errorf("invalid y value %q: %v", fields[1], err)
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Read every <polygon> element of an SVG file. SVG's y axis points down, so y
// is negated to keep the winding convention of the stdin format.
func readSVG(path string) ([]advanced.Point, []advanced.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	root, err := svgparser.Parse(file, true)
	if err != nil {
		return nil, nil, err
	}

	var (
		points   []advanced.Point
		polygons []advanced.Polygon
	)
	for _, el := range root.FindAll("polygon") {
		var poly advanced.Polygon
		for _, pair := range strings.Fields(el.Attributes["points"]) {
			coords := strings.Split(pair, ",")
			if len(coords) != 2 {
				return nil, nil, fmt.Errorf("invalid point string %q", pair)
			}
			point, err := parsePoint(coords[0] + " " + coords[1])
			if err != nil {
				return nil, nil, err
			}
			point.Y = -point.Y
			poly = append(poly, len(points))
			points = append(points, point)
		}
		polygons = append(polygons, poly)
	}
	if len(polygons) == 0 {
		return nil, nil, fmt.Errorf("no polygons found in %s", path)
	}
	return points, polygons, nil
}
