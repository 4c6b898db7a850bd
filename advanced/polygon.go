package advanced

// Twice the signed area, positive for counterclockwise contours.
func (poly Polygon) doubleSignedArea(points []Point) float64 {
	var sum float64
	for i, index := range poly {
		p := points[index]
		q := points[poly[poly.Next(i)]]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// Signed area of the contour, positive when it winds counterclockwise.
func (poly Polygon) SignedArea(points []Point) float64 {
	return poly.doubleSignedArea(points) / 2
}

func (poly Polygon) Area(points []Point) float64 {
	area := poly.SignedArea(points)
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) IsCCW(points []Point) bool {
	return poly.doubleSignedArea(points) > 0
}

func (poly Polygon) IsCW(points []Point) bool {
	return poly.doubleSignedArea(points) < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		newPoly = append(newPoly, poly[i])
	}
	return newPoly
}

// A contour is convex when no vertex turns clockwise. Collinear vertices are
// allowed.
func (poly Polygon) IsConvex(points []Point) bool {
	for i := range poly {
		if IsReflex(points[poly[poly.Prev(i)]], points[poly[i]], points[poly[poly.Next(i)]]) {
			return false
		}
	}
	return true
}

// Even-odd rule point-in-polygon. Points exactly on the boundary may land on
// either side.
func (poly Polygon) ContainsPointByEvenOdd(points []Point, p Point) bool {
	return poly.CrossingCount(points, p)%2 == 1
}

// Crossing count helper for even odd rule: the number of edges crossed by a
// ray from p towards +x.
func (poly Polygon) CrossingCount(points []Point, p Point) int {
	crossingCount := 0
	for i, index := range poly {
		vertex := points[index]
		nextVertex := points[poly[poly.Next(i)]]

		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Position of the vertex with the largest x coordinate, breaking ties by the
// larger y.
func (poly Polygon) RightmostPosition(points []Point) int {
	best := 0
	for i := 1; i < len(poly); i++ {
		p := points[poly[i]]
		q := points[poly[best]]
		if p.X > q.X || (p.X == q.X && p.Y > q.Y) {
			best = i
		}
	}
	return best
}

// Rotate the contour so that position start comes first. The cyclic order is
// unchanged.
func (poly Polygon) RotateTo(start int) Polygon {
	result := make(Polygon, 0, len(poly))
	result = append(result, poly[start:]...)
	return append(result, poly[:start]...)
}

// A list of polygons sharing one point slice.
type PolygonList []Polygon

func (list PolygonList) ContainsPointByEvenOdd(points []Point, p Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(points, p)
	}
	return count%2 == 1
}

func (list PolygonList) Area(points []Point) float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area(points)
	}
	return area
}

// Identity contour 0..n-1, used when a polygon is given directly as its point
// list.
func IdentityPolygon(n int) Polygon {
	poly := make(Polygon, n)
	for i := range poly {
		poly[i] = i
	}
	return poly
}
