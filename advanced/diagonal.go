package advanced

// Visibility between contour vertices. Every query is O(n) against the edges
// of the contour, so enumerating all diagonals is O(n³). That enumeration is
// the dominant cost of the optimal partition.

// Whether p lies on the interior side of the angle prev -> v -> next of a
// counterclockwise contour.
func InCone(prev, v, next, p Point) bool {
	if IsConvex(prev, v, next) {
		return IsConvex(prev, v, p) && IsConvex(v, next, p)
	}
	return IsConvex(prev, v, p) || IsConvex(v, next, p)
}

// Whether the segment between contour positions i and j is a diagonal: the
// positions are not adjacent, the segment leaves both vertices into the
// interior, it touches no edge except at its own endpoints, and no other
// vertex lies on it.
func IsDiagonal(points []Point, poly Polygon, i, j int) bool {
	if i == j || poly.Next(i) == j || poly.Prev(i) == j {
		return false
	}
	a := points[poly[i]]
	b := points[poly[j]]
	if a == b {
		return false
	}
	if !InCone(points[poly[poly.Prev(i)]], a, points[poly[poly.Next(i)]], b) {
		return false
	}
	if !InCone(points[poly[poly.Prev(j)]], b, points[poly[poly.Next(j)]], a) {
		return false
	}
	return segmentClear(points, poly, a, b)
}

// Whether the segment ab crosses or touches no edge of the contour, other than
// edges that share an endpoint with it, and passes through no vertex.
func segmentClear(points []Point, poly Polygon, a, b Point) bool {
	for k, index := range poly {
		c := points[index]
		d := points[poly[poly.Next(k)]]
		if OnOpenSegment(c, a, b) {
			return false
		}
		if c == a || c == b || d == a || d == b {
			continue
		}
		if SegmentsIntersect(a, b, c, d) {
			return false
		}
	}
	return true
}

// All diagonals of the contour, as position pairs with A < B.
func Diagonals(points []Point, poly Polygon) []Diagonal {
	var result []Diagonal
	for i := 0; i < len(poly); i++ {
		for j := i + 2; j < len(poly); j++ {
			if IsDiagonal(points, poly, i, j) {
				result = append(result, Diagonal{i, j})
			}
		}
	}
	return result
}

// Table of mutual visibility between contour positions. Contour edges count as
// visible; a vertex is not visible from itself.
func VisibilityTable(points []Point, poly Polygon) [][]bool {
	n := len(poly)
	table := make([][]bool, n)
	for i := range table {
		table[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		table[i][poly.Next(i)] = true
		table[poly.Next(i)][i] = true
		for j := i + 2; j < n; j++ {
			if IsDiagonal(points, poly, i, j) {
				table[i][j] = true
				table[j][i] = true
			}
		}
	}
	return table
}
