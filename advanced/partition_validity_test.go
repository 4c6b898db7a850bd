package advanced

// This contains no actual tests. It is just a helper for testing partition
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a partition is valid. The rules are:
// 1. Every part has at least three vertices, winds counterclockwise, and is convex.
// 2. Every vertex of every part is a vertex of the input.
// 3. The sum of the areas of the parts equals the area of the input, minus its holes.
// 4. Sampled points are covered by exactly one part inside the input, and by none outside.
func AssertValidPartition(t *testing.T, points []Point, polys, holes, parts PolygonList) {
	t.Helper()
	require.NotEmpty(t, parts, "partition is empty")

	inputIndices := make(map[int]struct{})
	for _, list := range []PolygonList{polys, holes} {
		for _, poly := range list {
			for _, index := range poly {
				inputIndices[index] = struct{}{}
			}
		}
	}

	var partArea float64
	for _, part := range parts {
		require.GreaterOrEqual(t, len(part), 3, "degenerate part: %v", part)
		require.True(t, part.IsCCW(points), "clockwise part: %v", part)
		require.True(t, part.IsConvex(points), "non-convex part: %v", part.DbgString(points))
		for _, index := range part {
			_, ok := inputIndices[index]
			require.True(t, ok, "part %v uses point %d, which is not in the input", part, index)
		}
		partArea += part.Area(points)
	}

	expectedArea := polys.Area(points) - holes.Area(points)
	require.InDelta(t, expectedArea, partArea, Epsilon*math.Max(1, expectedArea), "sum of the part areas must equal the area of the input")

	validatePartitionBySampling(t, points, append(append(PolygonList{}, polys...), holes...), parts)
}

func AssertValidSimplePartition(t *testing.T, points []Point, poly Polygon, parts PolygonList) {
	t.Helper()
	AssertValidPartition(t, points, PolygonList{poly}, nil, parts)
}

// Sample a grid over the bounding box. Every sample inside the input must be
// in exactly one part, and every sample outside it in none. The grid is offset
// by odd fractions of a step so samples don't land on the axis-aligned or 45°
// edges that the fixtures are full of.
func validatePartitionBySampling(t *testing.T, points []Point, expected PolygonList, parts PolygonList) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, poly := range expected {
		for _, p := range poly.Points(points) {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY + 0.613*step; y <= maxY; y += step {
		for x := minX + 0.371*step; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			count := 0
			for _, part := range parts {
				if part.ContainsPointByEvenOdd(points, p) {
					count++
				}
			}
			if expected.ContainsPointByEvenOdd(points, p) {
				assert.Equal(t, 1, count, "point %v should be in exactly one part", p)
			} else {
				assert.Equal(t, 0, count, "point %v should not be in any part", p)
			}
		}
	}
}

// Run fn, converting a partition panic into an error the way the public API
// does.
func catchPartitionError(fn func()) (err error) {
	defer func() {
		err = HandlePartitionPanicRecover(recover())
	}()
	fn()
	return nil
}
