package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

type Point struct {
	X float64
	Y float64
}

// A Polygon is a contour given as indices into a shared point slice. Points are
// never copied into polygons, so every vertex of every output part refers back
// to an input point. Solid contours wind counterclockwise, holes clockwise.
type Polygon []int

// A pair of vertices joined by a segment through the interior of a contour.
// Depending on the function, A and B are either contour positions or point
// indices; each function says which.
type Diagonal struct {
	A, B int
}

type VertexKind int

const (
	Convex VertexKind = iota
	Reflex
)

func (k VertexKind) String() string {
	if k == Reflex {
		return "reflex"
	}
	return "convex"
}

// Resolve the polygon's indices into points.
func (poly Polygon) Points(points []Point) []Point {
	result := make([]Point, len(poly))
	for i, index := range poly {
		result[i] = points[index]
	}
	return result
}

// The contour position that follows i, wrapping around.
func (poly Polygon) Next(i int) int {
	return CircularIndex(i+1, len(poly))
}

// The contour position that precedes i, wrapping around.
func (poly Polygon) Prev(i int) int {
	return CircularIndex(i-1, len(poly))
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly))
	for i, index := range poly {
		parts[i] = fmt.Sprint(index)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Debug rendering of a polygon, with reflex vertices highlighted.
func (poly Polygon) DbgString(points []Point) string {
	kinds := Classify(points, poly)
	parts := make([]string, len(poly))
	for i, index := range poly {
		if kinds[i] == Reflex {
			parts[i] = aurora.Red(index).String()
		} else {
			parts[i] = aurora.Green(index).String()
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
