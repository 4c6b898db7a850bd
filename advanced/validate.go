package advanced

import "math"

// Input validation. The algorithms assume simple contours with the declared
// winding, so anything else is rejected up front rather than producing an
// arbitrary partition.

// Check one contour: enough vertices, indices in range and unique, no
// coincident points, no self intersection, and the declared winding.
func ValidateContour(points []Point, poly Polygon, counterclockwise bool) {
	n := len(poly)
	if n < 3 {
		fatalWrapf(ErrTooFewVertices, "contour %v has %d vertices", poly, n)
	}

	seenIndices := make(map[int]struct{}, n)
	seenPoints := make(map[Point]int, n)
	for _, index := range poly {
		if index < 0 || index >= len(points) {
			fatalWrapf(ErrInvalidIndex, "index %d with %d points", index, len(points))
		}
		if _, ok := seenIndices[index]; ok {
			fatalWrapf(ErrRepeatedIndex, "index %d appears twice in contour %v", index, poly)
		}
		seenIndices[index] = struct{}{}
		if other, ok := seenPoints[points[index]]; ok {
			fatalWrapf(ErrDegenerate, "points %d and %d coincide", other, index)
		}
		seenPoints[points[index]] = index
	}

	for i := range poly {
		a := points[poly[i]]
		b := points[poly[poly.Next(i)]]
		// Adjacent edges may only share their common vertex
		c := points[poly[poly.Next(poly.Next(i))]]
		if OnOpenSegment(c, a, b) || OnOpenSegment(a, b, c) {
			fatalWrapf(ErrNotSimple, "edges at point %d fold back on themselves", poly[poly.Next(i)])
		}
		for j := i + 2; j < n; j++ {
			if poly.Next(j) == i {
				continue
			}
			if SegmentsIntersect(a, b, points[poly[j]], points[poly[poly.Next(j)]]) {
				fatalWrapf(ErrNotSimple, "edge %d-%d crosses edge %d-%d", poly[i], poly[poly.Next(i)], poly[j], poly[poly.Next(j)])
			}
		}
	}

	area := poly.doubleSignedArea(points)
	switch {
	case area == 0:
		fatalWrapf(ErrDegenerate, "contour %v has zero area", poly)
	case counterclockwise && area < 0:
		fatalWrapf(ErrOrientation, "outer contour %v is clockwise", poly)
	case !counterclockwise && area > 0:
		fatalWrapf(ErrOrientation, "hole %v is counterclockwise", poly)
	}
}

// Check every contour, then check that no two contours touch or cross.
func ValidateInput(points []Point, polys, holes PolygonList) {
	if len(polys) == 0 {
		fatalWrapf(ErrTooFewVertices, "no outer contours")
	}
	for _, poly := range polys {
		ValidateContour(points, poly, true)
	}
	for _, hole := range holes {
		ValidateContour(points, hole, false)
	}

	contours := make(PolygonList, 0, len(polys)+len(holes))
	contours = append(contours, polys...)
	contours = append(contours, holes...)
	for i := range contours {
		for j := i + 1; j < len(contours); j++ {
			if contoursTouch(points, contours[i], contours[j]) {
				fatalWrapf(ErrNotSimple, "contours %v and %v intersect", contours[i], contours[j])
			}
		}
	}

	// Contours are disjoint, so the ones around a hole are nested and the
	// smallest is the innermost. It must be an outer contour.
	for i, hole := range holes {
		p := points[hole[0]]
		innermost := -1
		innermostArea := math.Inf(1)
		for j, contour := range contours {
			if j == len(polys)+i || !contour.ContainsPointByEvenOdd(points, p) {
				continue
			}
			if area := contour.Area(points); area < innermostArea {
				innermost, innermostArea = j, area
			}
		}
		if innermost >= len(polys) {
			fatalWrapf(ErrUnresolvableHole, "hole %v lies inside hole %v", hole, contours[innermost])
		}
	}
}

func contoursTouch(points []Point, a, b Polygon) bool {
	for i := range a {
		p1 := points[a[i]]
		p2 := points[a[a.Next(i)]]
		for j := range b {
			if SegmentsIntersect(p1, p2, points[b[j]], points[b[b.Next(j)]]) {
				return true
			}
		}
	}
	return false
}
