package advanced

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
// first polygon is, then converts that into a CCW contour over its own point
// slice. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"spiral", "comb", "sawtooth"}

func LoadFixture(name string) ([]Point, Polygon) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	poly := IdentityPolygon(len(points))

	// Ensure that the polygon is CCW
	if poly.IsCW(points) {
		poly = poly.Reverse()
	}
	return points, poly
}

// Some ad hoc code specified fixtures

func Triangle() ([]Point, Polygon) {
	return []Point{{0, 0}, {4, 0}, {1, 3}}, Polygon{0, 1, 2}
}

// A 2x2 square with its top right quadrant cut away. One reflex vertex.
func LShape() ([]Point, Polygon) {
	points := []Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	return points, IdentityPolygon(len(points))
}

// A 3x3 square with a notch cut into the top edge. Two reflex vertices.
func UShape() ([]Point, Polygon) {
	points := []Point{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}}
	return points, IdentityPolygon(len(points))
}

func RegularPolygon(n int, radius float64) ([]Point, Polygon) {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points, IdentityPolygon(n)
}

func SimpleStar() ([]Point, Polygon) {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points, IdentityPolygon(len(points))
}

// Shapes with holes share a point slice between their outer contours and
// their holes.
type shapeWithHoles struct {
	points []Point
	polys  PolygonList
	holes  PolygonList
}

// Append a contour of the given points, returning its indices.
func (s *shapeWithHoles) add(points ...Point) Polygon {
	poly := make(Polygon, len(points))
	for i, p := range points {
		poly[i] = len(s.points)
		s.points = append(s.points, p)
	}
	return poly
}

func SquareWithHole() shapeWithHoles {
	var s shapeWithHoles
	s.polys = PolygonList{s.add(
		Point{X: 0, Y: 0},
		Point{X: 10, Y: 0},
		Point{X: 10, Y: 10},
		Point{X: 0, Y: 10},
	)}
	s.holes = PolygonList{s.add(
		Point{X: 3, Y: 3},
		Point{X: 3, Y: 7},
		Point{X: 7, Y: 7},
		Point{X: 7, Y: 3},
	)}
	return s
}

func SquareWithTwoHoles() shapeWithHoles {
	var s shapeWithHoles
	s.polys = PolygonList{s.add(
		Point{X: 0, Y: 0},
		Point{X: 12, Y: 0},
		Point{X: 12, Y: 6},
		Point{X: 0, Y: 6},
	)}
	s.holes = PolygonList{
		s.add(Point{X: 1, Y: 1}, Point{X: 1, Y: 5}, Point{X: 5, Y: 5}, Point{X: 5, Y: 1}),
		s.add(Point{X: 7, Y: 2}, Point{X: 8, Y: 4}, Point{X: 10, Y: 3}),
	}
	return s
}

func starPoints(x, y, outerRadius, innerRadius float64) []Point {
	points := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return points
}

func StarOutline() shapeWithHoles {
	var s shapeWithHoles
	s.polys = PolygonList{s.add(starPoints(0, 0, 10, 5)...)}
	s.holes = PolygonList{s.add(starPoints(0, 0, 8, 3)...).Reverse()}
	return s
}

func MultiLayeredHoles() shapeWithHoles {
	// In this test, we want multiple holes which contain filled shapes inside.
	var s shapeWithHoles
	s.polys = PolygonList{
		// Outer star
		s.add(starPoints(0, 0, 10, 7)...),
		// Top inner
		s.add(starPoints(1.5, 5, 2, 1)...),
		// Bottom inner
		s.add(starPoints(1.8, -5, 2, 1)...),
		// Left inner
		s.add(starPoints(-3, 0, 3, 1)...),
	}
	s.holes = PolygonList{
		// Top hole
		s.add(starPoints(1.5, 5, 3, 2)...).Reverse(),
		// Bottom hole
		s.add(starPoints(1.8, -5, 3, 2)...).Reverse(),
		// Left hole
		s.add(starPoints(-3, 0, 4, 2)...).Reverse(),
	}
	return s
}
