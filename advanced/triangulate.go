package advanced

// Ear clipping triangulation. This is the substrate for the Hertel-Mehlhorn
// reducer: the faces of the triangulation are merged back together across
// their diagonals.
//
// The contour must be counterclockwise. It may repeat a point index, which is
// what a contour looks like after a hole has been bridged into it; the bridge
// edge is then walked once in each direction. Vertices that coincide with a
// corner of a candidate ear are ignored by the emptiness test, which is what
// keeps those bridged contours clippable.

type Triangulation struct {
	// Counterclockwise triangles, as point indices
	Triangles []Polygon
	// Segments added by the triangulation, as point indices
	Diagonals []Diagonal
}

// Any function with this shape can stand in for Triangulate.
type Triangulator func(points []Point, poly Polygon) Triangulation

func Triangulate(points []Point, poly Polygon) Triangulation {
	n := len(poly)
	if n < 3 {
		fatalWrapf(ErrTooFewVertices, "cannot triangulate polygon with point count: %d", n)
	}

	result := Triangulation{
		Triangles: make([]Polygon, 0, n-2),
		Diagonals: make([]Diagonal, 0, n-3),
	}

	// Remaining vertices form a ring of positions
	next := make([]int, n)
	prev := make([]int, n)
	for i := range poly {
		next[i] = poly.Next(i)
		prev[i] = poly.Prev(i)
	}

	remaining := n
	current := 0
	for remaining > 3 {
		ear, ok := findEar(points, poly, next, prev, current, remaining)
		if !ok {
			// Without a strict ear, the only legal move is to drop a vertex that sits
			// in the middle of a straight run. This loses no area.
			ear, ok = findStraightVertex(points, poly, next, prev, current, remaining)
			if !ok {
				fatalWrapf(ErrDegenerate, "no ear found with %d of %d vertices remaining", remaining, n)
			}
		} else {
			p, q := prev[ear], next[ear]
			result.Triangles = append(result.Triangles, Polygon{poly[p], poly[ear], poly[q]})
			result.Diagonals = append(result.Diagonals, Diagonal{poly[p], poly[q]})
		}

		// Unlink the vertex, and resume the search from its predecessor, which is
		// the vertex most likely to have become an ear.
		p, q := prev[ear], next[ear]
		next[p] = q
		prev[q] = p
		remaining--
		current = p
	}

	a := current
	b := next[a]
	c := next[b]
	switch Orient(points[poly[a]], points[poly[b]], points[poly[c]]) {
	case CounterClockwise:
		result.Triangles = append(result.Triangles, Polygon{poly[a], poly[b], poly[c]})
	case Clockwise:
		fatalWrapf(ErrDegenerate, "final triangle %v is clockwise", Polygon{poly[a], poly[b], poly[c]})
	}

	if len(result.Triangles) == 0 {
		fatalWrapf(ErrDegenerate, "polygon has zero area")
	}
	return result
}

func findEar(points []Point, poly Polygon, next, prev []int, start, remaining int) (int, bool) {
	v := start
	for i := 0; i < remaining; i++ {
		if isEar(points, poly, next, prev, v) {
			return v, true
		}
		v = next[v]
	}
	return 0, false
}

// An ear is a strictly convex vertex whose triangle with its neighbors holds no
// other remaining vertex, on its boundary or inside.
func isEar(points []Point, poly Polygon, next, prev []int, v int) bool {
	p, q := prev[v], next[v]
	a := points[poly[p]]
	b := points[poly[v]]
	c := points[poly[q]]
	if !IsConvex(a, b, c) {
		return false
	}
	for k := next[q]; k != p; k = next[k] {
		x := points[poly[k]]
		if x == a || x == b || x == c {
			continue
		}
		if PointInTriangle(x, a, b, c) {
			return false
		}
	}
	return true
}

func findStraightVertex(points []Point, poly Polygon, next, prev []int, start, remaining int) (int, bool) {
	v := start
	for i := 0; i < remaining; i++ {
		if OnOpenSegment(points[poly[v]], points[poly[prev[v]]], points[poly[next[v]]]) {
			return v, true
		}
		v = next[v]
	}
	return 0, false
}

// Build a triangulation from bare triangles, recovering the diagonals as the
// triangle edges that are not contour edges.
func triangulationFromTriangles(poly Polygon, triangles []Polygon) Triangulation {
	contourEdges := make(map[Diagonal]struct{}, len(poly))
	for i, index := range poly {
		contourEdges[Diagonal{index, poly[poly.Next(i)]}] = struct{}{}
	}

	seen := make(map[Diagonal]struct{})
	result := Triangulation{Triangles: triangles}
	for _, tri := range triangles {
		for i, a := range tri {
			b := tri[tri.Next(i)]
			if _, ok := contourEdges[Diagonal{a, b}]; ok {
				continue
			}
			key := Diagonal{a, b}
			if b < a {
				key = Diagonal{b, a}
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result.Diagonals = append(result.Diagonals, key)
		}
	}
	return result
}
