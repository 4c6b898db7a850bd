package advanced

import "github.com/rclancey/earcut"

// Triangulator backed by the earcut library. It satisfies the same contract as
// Triangulate, with two differences: earcut may skip zero area triangles, and
// the orientation of its triangles is normalized here to counterclockwise.
func TriangulateEarcut(points []Point, poly Polygon) Triangulation {
	if len(poly) < 3 {
		fatalWrapf(ErrTooFewVertices, "cannot triangulate polygon with point count: %d", len(poly))
	}

	// Flat coordinate array required by earcut: [x0, y0, x1, y1, ...]
	coords := make([]float64, len(poly)*2)
	for i, index := range poly {
		coords[i*2] = points[index].X
		coords[i*2+1] = points[index].Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		fatalWrapf(ErrDegenerate, "earcut failed for %d-vertex polygon: %v", len(poly), err)
	}
	if len(indices)%3 != 0 {
		fatalWrapf(ErrDegenerate, "earcut returned %d indices, not divisible by 3", len(indices))
	}

	triangles := make([]Polygon, 0, len(indices)/3)
	for t := 0; t < len(indices); t += 3 {
		tri := Polygon{poly[indices[t]], poly[indices[t+1]], poly[indices[t+2]]}
		switch Orient(points[tri[0]], points[tri[1]], points[tri[2]]) {
		case Collinear:
			continue
		case Clockwise:
			tri[1], tri[2] = tri[2], tri[1]
		}
		triangles = append(triangles, tri)
	}
	if len(triangles) == 0 {
		fatalWrapf(ErrDegenerate, "earcut produced no triangles for %d-vertex polygon", len(poly))
	}
	return triangulationFromTriangles(poly, triangles)
}
