package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are n-2 triangles and n-3 diagonals for a contour without straight vertices.
// 2. Every triangle is counterclockwise.
// 3. Every contour edge is an edge of some triangle.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
func assertValidTriangulation(t *testing.T, points []Point, poly Polygon, triangulation Triangulation) {
	t.Helper()
	assert.Len(t, triangulation.Triangles, len(poly)-2)
	assert.Len(t, triangulation.Diagonals, len(poly)-3)

	var area float64
	edges := make(map[Diagonal]struct{})
	for _, tri := range triangulation.Triangles {
		require.Len(t, tri, 3)
		require.True(t, tri.IsCCW(points), "clockwise triangle: %v", tri)
		area += tri.Area(points)
		for i := range tri {
			edges[Diagonal{tri[i], tri[tri.Next(i)]}] = struct{}{}
		}
	}
	for i, index := range poly {
		_, ok := edges[Diagonal{index, poly[poly.Next(i)]}]
		assert.True(t, ok, "contour edge %d-%d is not a triangle edge", index, poly[poly.Next(i)])
	}
	assert.InDelta(t, poly.Area(points), area, Epsilon)
}

func TestTriangulate(t *testing.T) {
	t.Run("triangle", func(t *testing.T) {
		points, poly := Triangle()
		triangulation := Triangulate(points, poly)
		assert.Equal(t, []Polygon{{0, 1, 2}}, triangulation.Triangles)
		assert.Empty(t, triangulation.Diagonals)
	})

	t.Run("L shape", func(t *testing.T) {
		points, poly := LShape()
		assertValidTriangulation(t, points, poly, Triangulate(points, poly))
	})

	t.Run("star", func(t *testing.T) {
		points, poly := SimpleStar()
		assertValidTriangulation(t, points, poly, Triangulate(points, poly))
	})

	for _, name := range fixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			points, poly := LoadFixture(name)
			assertValidTriangulation(t, points, poly, Triangulate(points, poly))
		})
	}

	t.Run("straight vertices", func(t *testing.T) {
		// A square with a vertex in the middle of every side
		points := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}
		poly := IdentityPolygon(len(points))
		triangulation := Triangulate(points, poly)
		var area float64
		for _, tri := range triangulation.Triangles {
			assert.True(t, tri.IsCCW(points))
			area += tri.Area(points)
		}
		assert.InDelta(t, 4.0, area, Epsilon)
	})

	t.Run("bridged contour", func(t *testing.T) {
		shape := SquareWithHole()
		contours := RemoveHoles(shape.points, shape.polys, shape.holes)
		require.Len(t, contours, 1)
		triangulation := Triangulate(shape.points, contours[0])
		var area float64
		for _, tri := range triangulation.Triangles {
			assert.True(t, tri.IsCCW(shape.points))
			area += tri.Area(shape.points)
		}
		assert.InDelta(t, 84.0, area, Epsilon)
	})

	t.Run("too few vertices", func(t *testing.T) {
		err := catchPartitionError(func() {
			Triangulate([]Point{{0, 0}, {1, 1}}, Polygon{0, 1})
		})
		assert.ErrorIs(t, err, ErrTooFewVertices)
	})

	t.Run("zero area", func(t *testing.T) {
		err := catchPartitionError(func() {
			Triangulate([]Point{{0, 0}, {1, 0}, {2, 0}}, Polygon{0, 1, 2})
		})
		assert.ErrorIs(t, err, ErrDegenerate)
	})
}

func TestTriangulateEarcut(t *testing.T) {
	t.Run("L shape", func(t *testing.T) {
		points, poly := LShape()
		assertValidTriangulation(t, points, poly, TriangulateEarcut(points, poly))
	})

	for _, name := range fixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			points, poly := LoadFixture(name)
			triangulation := TriangulateEarcut(points, poly)
			var area float64
			for _, tri := range triangulation.Triangles {
				assert.True(t, tri.IsCCW(points))
				area += tri.Area(points)
			}
			assert.InDelta(t, poly.Area(points), area, Epsilon)
		})
	}
}

func TestTriangulationFromTriangles(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	poly := IdentityPolygon(4)
	triangulation := triangulationFromTriangles(poly, []Polygon{{0, 1, 2}, {0, 2, 3}})
	assert.Equal(t, []Diagonal{{0, 2}}, triangulation.Diagonals)
	assertValidTriangulation(t, points, poly, triangulation)
}
