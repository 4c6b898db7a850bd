package advanced

// Vertex classification for counterclockwise contours. A vertex is reflex (a
// notch) when its incident edges turn clockwise. Collinear vertices have an
// interior angle of exactly 180° and count as convex.
//
// Classification is always recomputed from the current adjacency. Merging
// faces changes angles, so nothing here is cached.

func IsReflex(prev, v, next Point) bool {
	return !IsLeftOn(prev, v, next)
}

// Strictly convex: the interior angle is below 180°.
func IsConvex(prev, v, next Point) bool {
	return IsLeft(prev, v, next)
}

// Classify every position of a counterclockwise contour.
func Classify(points []Point, poly Polygon) []VertexKind {
	kinds := make([]VertexKind, len(poly))
	for i := range poly {
		prev := points[poly[poly.Prev(i)]]
		next := points[poly[poly.Next(i)]]
		if IsReflex(prev, points[poly[i]], next) {
			kinds[i] = Reflex
		}
	}
	return kinds
}

// Positions of the reflex vertices of a counterclockwise contour.
func ReflexVertices(points []Point, poly Polygon) []int {
	var result []int
	for i, kind := range Classify(points, poly) {
		if kind == Reflex {
			result = append(result, i)
		}
	}
	return result
}
