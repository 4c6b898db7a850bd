// Convex partition of simple polygons for Go.
//
// This package splits a simple polygon, which may be non-convex and may
// contain holes, into convex polygons built only from the original points.
// ApplyOPT gives the minimum number of parts, ApplyHM a fast approximation
// with at most four times as many, and Apply handles holes.
package partition

import "github.com/osuushi/partition/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type HMOptions = advanced.HMOptions

// Exact minimum convex partition of a single polygon without holes.
//
// The polygon is given as its points in counterclockwise order. Each returned
// part is a counterclockwise list of indices into poly. On failure the parts
// are nil. This takes O(n³) time and memory, so prefer ApplyHM for large
// polygons.
func ApplyOPT(poly []Point) (parts []Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			parts = nil
			err = recoveredErr
		}
	}()
	contour := advanced.IdentityPolygon(len(poly))
	advanced.ValidateContour(poly, contour, true)
	return advanced.OptimalPartition(poly, contour), nil
}

// Hertel-Mehlhorn convex partition of a single polygon without holes. Input
// and output are as for ApplyOPT.
func ApplyHM(poly []Point, options ...HMOptions) (parts []Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			parts = nil
			err = recoveredErr
		}
	}()
	contour := advanced.IdentityPolygon(len(poly))
	advanced.ValidateContour(poly, contour, true)
	return advanced.HertelMehlhorn(poly, contour, options...), nil
}

// Convex partition of any number of polygons and holes sharing one point
// slice.
//
// The polygons must be simple and must not touch each other. "Solid" polygons
// must give their indices in counterclockwise order, while holes must be in
// clockwise order, and every hole must lie inside a solid polygon. Parts are
// produced with the Hertel-Mehlhorn algorithm.
func Apply(points []Point, polys, holes []Polygon, options ...HMOptions) (parts []Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandlePartitionPanicRecover(recover())
		if recoveredErr != nil {
			parts = nil
			err = recoveredErr
		}
	}()
	return advanced.Partition(points, polys, holes, options...), nil
}
