package advanced

import (
	"math/rand"
	"time"
)

// Hertel-Mehlhorn convex partition. Triangulate, then greedily remove
// diagonals whose removal keeps both endpoints convex. The result has at most
// four times as many parts as the optimal partition, and in practice is
// usually much closer.

type HMOptions struct {
	// Triangulation used as the starting face set. Defaults to Triangulate.
	Triangulator Triangulator
	// By default, faces are visited in a pseudorandom but deterministic order,
	// so the same input always gives the same partition. Set this to use a
	// time based seed instead.
	Nondeterministic bool
}

// Partition a counterclockwise contour into convex parts. The contour may be
// a bridged contour produced by RemoveHoles.
func HertelMehlhorn(points []Point, poly Polygon, options ...HMOptions) PolygonList {
	var opts HMOptions
	if len(options) > 0 {
		opts = options[0]
	}
	triangulate := opts.Triangulator
	if triangulate == nil {
		triangulate = Triangulate
	}

	if len(poly) < 3 {
		fatalWrapf(ErrTooFewVertices, "cannot partition polygon with point count: %d", len(poly))
	}
	if poly.IsConvex(points) && poly.IsCCW(points) {
		return PolygonList{append(Polygon(nil), poly...)}
	}

	triangulation := triangulate(points, poly)
	faces := make(PolygonList, len(triangulation.Triangles))
	copy(faces, triangulation.Triangles)

	var seed int64
	if opts.Nondeterministic {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})

	// Directed edge -> face holding it. Every diagonal is held by exactly two
	// faces, once in each direction.
	owners := make(map[Diagonal]int, 3*len(faces))
	for f, face := range faces {
		for i, a := range face {
			owners[Diagonal{a, face[face.Next(i)]}] = f
		}
	}

	for f := range faces {
		for i := 0; i < len(faces[f]); i++ {
			face := faces[f]
			a := face[i]
			b := face[face.Next(i)]
			other, ok := owners[Diagonal{b, a}]
			if !ok || other == f {
				continue
			}
			merged, ok := mergeFaces(points, face, i, faces[other])
			if !ok {
				continue
			}

			delete(owners, Diagonal{a, b})
			delete(owners, Diagonal{b, a})
			for j, c := range faces[other] {
				key := Diagonal{c, faces[other][faces[other].Next(j)]}
				if _, ok := owners[key]; ok {
					owners[key] = f
				}
			}
			faces[f] = merged
			faces[other] = nil
			// Angles of the merged face changed, so scan it again from the start
			i = -1
		}
	}

	result := make(PolygonList, 0, len(faces))
	for _, face := range faces {
		if face != nil {
			result = append(result, face)
		}
	}
	return result
}

// Merge two faces across the edge face1[i] -> face1[i+1], which face2 holds in
// the opposite direction. The merge is refused if either endpoint of the edge
// would turn clockwise in the merged face.
func mergeFaces(points []Point, face1 Polygon, i int, face2 Polygon) (Polygon, bool) {
	a := face1[i]
	b := face1[face1.Next(i)]

	j := -1
	for k, index := range face2 {
		if index == b && face2[face2.Next(k)] == a {
			j = k
			break
		}
	}
	if j < 0 {
		return nil, false
	}

	// At a, the merged face comes in along face1 and leaves along face2
	if IsReflex(points[face1[face1.Prev(i)]], points[a], points[face2[CircularIndex(j+2, len(face2))]]) {
		return nil, false
	}
	// At b, it comes in along face2 and leaves along face1
	if IsReflex(points[face2[face2.Prev(j)]], points[b], points[face1[CircularIndex(i+2, len(face1))]]) {
		return nil, false
	}

	merged := make(Polygon, 0, len(face1)+len(face2)-2)
	// All of face1, starting at b and ending at a
	for k := 1; k <= len(face1); k++ {
		merged = append(merged, face1[CircularIndex(i+k, len(face1))])
	}
	// Then face2 from the vertex after a up to the vertex before b
	for k := 2; k < len(face2); k++ {
		merged = append(merged, face2[CircularIndex(j+k, len(face2))])
	}
	return merged, true
}
